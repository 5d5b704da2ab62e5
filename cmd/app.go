// Package cmd implements the CLI application to track cost per use.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	costperuse "github.com/pastor0711/Cost-Per-Use"
	"github.com/pastor0711/Cost-Per-Use/i18n"
)

// Commands lists every subcommand. A main package registers them all and
// executes the user-selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&useCmd{},
	&listCmd{},
	&showCmd{},
	&editCmd{},
	&rmCmd{},
	&exportCmd{},
	&langCmd{},
	&currencyCmd{},
	&offlineCmd{},
	&serveCmd{},
}

// Config holds the environment-driven configuration. Flags override it.
type Config struct {
	DataDir   string `envconfig:"CPU_DATA_DIR" default:""`
	ExportDir string `envconfig:"CPU_EXPORT_DIR" default:"."`
	CacheDir  string `envconfig:"CPU_CACHE_DIR" default:""`
	Origin    string `envconfig:"CPU_ORIGIN" default:"https://pastor0711.github.io/Cost-Per-Use/"`
	ServeAddr string `envconfig:"CPU_SERVE_ADDR" default:"localhost:8750"`
}

// as a CLI application the lifecycle is a single short-lived invocation, so
// globals for configuration are fine here.
var cfg Config

var dataDirFlag = flag.String("data-dir", "", "Path to the data directory (defaults to the user config dir)")

func init() {
	// a .env next to the binary is a convenience, its absence is not an error
	_ = godotenv.Load()
	if err := envconfig.Process("", &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading configuration from environment: %v\n", err)
		os.Exit(2)
	}
}

// DataDir resolves the data directory: flag, then environment, then the
// platform user config dir.
func DataDir() string {
	if *dataDirFlag != "" {
		return *dataDirFlag
	}
	if cfg.DataDir != "" {
		return cfg.DataDir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(base, "cost-per-use")
}

// CacheDir resolves the offline asset cache directory.
func CacheDir() string {
	if cfg.CacheDir != "" {
		return cfg.CacheDir
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(DataDir(), "cache")
	}
	return filepath.Join(base, "cost-per-use")
}

// OpenStore loads the inventory and the persisted locale settings from the
// data directory.
func OpenStore() (*costperuse.Inventory, *i18n.Translator) {
	dir := DataDir()
	return costperuse.OpenInventory(dir), i18n.Open(dir)
}

// printMarkdown renders a markdown view-model for the terminal. When glamour
// cannot set up a renderer (odd TERM, no tty) the raw markdown is still
// perfectly readable, so print that instead.
func printMarkdown(view string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Println(view)
		return
	}
	out, err := r.Render(view)
	if err != nil {
		fmt.Println(view)
		return
	}
	fmt.Print(out)
}

// captureSurface retains the most recent view so a one-shot command can
// print exactly one final screen, however many renders the controller
// performed on the way.
type captureSurface struct {
	last string
}

func (s *captureSurface) Render(view string) { s.last = view }
func (s *captureSurface) Update(view string) { s.last = view }

// resolveItem locates an item by id, or by exact name when the id does not
// match. A name shared by several items is ambiguous.
func resolveItem(inv *costperuse.Inventory, query string) (costperuse.Item, error) {
	if it, ok := inv.Get(query); ok {
		return it, nil
	}
	var matches []costperuse.Item
	for _, it := range inv.Items() {
		if strings.EqualFold(it.Name, query) {
			matches = append(matches, it)
		}
	}
	switch len(matches) {
	case 0:
		return costperuse.Item{}, fmt.Errorf("no item matches %q", query)
	case 1:
		return matches[0], nil
	default:
		return costperuse.Item{}, fmt.Errorf("%d items are named %q, use the id instead", len(matches), query)
	}
}
