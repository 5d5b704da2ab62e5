package cmd

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"os"

	"github.com/google/subcommands"

	"github.com/pastor0711/Cost-Per-Use/assetcache"
)

type offlineCmd struct {
	origin string
}

func (*offlineCmd) Name() string     { return "offline" }
func (*offlineCmd) Synopsis() string { return "install the offline asset cache" }
func (*offlineCmd) Usage() string {
	return `cpu offline [-origin <url>]

  Fetches the full app-shell asset manifest into the versioned offline
  cache, then activates it, deleting every older cache generation. A single
  failed fetch aborts the install and leaves no partial cache behind.
`
}

func (c *offlineCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.origin, "origin", "", "Origin the relative assets are fetched from (defaults to CPU_ORIGIN)")
}

func (c *offlineCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	origin := c.origin
	if origin == "" {
		origin = cfg.Origin
	}
	base, err := url.Parse(origin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid origin %q: %v\n", origin, err)
		return subcommands.ExitUsageError
	}

	cache := assetcache.New(CacheDir(), assetcache.Version, nil)

	if err := cache.Install(ctx, base, assetcache.DefaultManifest); err != nil {
		fmt.Fprintf(os.Stderr, "Error installing asset cache: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := cache.Activate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error activating asset cache: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Cached %d assets under %s.\n", len(assetcache.DefaultManifest), cache.Dir())
	return subcommands.ExitSuccess
}
