package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	costperuse "github.com/pastor0711/Cost-Per-Use"
)

type exportCmd struct {
	format string
	dir    string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the collection to a file" }
func (*exportCmd) Usage() string {
	return `cpu export [-format <json|csv|markdown>] [-dir <directory>]

  Writes the full item collection to a dated export file. The JSON export is
  lossless and can be dropped back in place of the data file; CSV and
  markdown are localized to the selected language and currency.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "json", "Export format: json, csv or markdown")
	f.StringVar(&c.dir, "dir", "", "Output directory (defaults to CPU_EXPORT_DIR)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	format, err := costperuse.ParseExportFormat(c.format)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	inv, tr := OpenStore()

	file, err := costperuse.Export(inv.Items(), format, tr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering export: %v\n", err)
		return subcommands.ExitFailure
	}

	dir := c.dir
	if dir == "" {
		dir = cfg.ExportDir
	}
	path, err := costperuse.WriteExport(dir, file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing export: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Wrote %s (%s).\n", path, file.MediaType)
	return subcommands.ExitSuccess
}
