package cmd

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/subcommands"

	"github.com/pastor0711/Cost-Per-Use/assetcache"
)

type serveCmd struct {
	addr   string
	origin string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the app shell through the offline cache" }
func (*serveCmd) Usage() string {
	return `cpu serve [-addr <host:port>] [-origin <url>]

  Serves the app's static assets locally, cache-first: anything installed by
  'cpu offline' is answered from the cache, everything else falls through to
  the network. With the cache installed the app shell works fully offline.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", "", "Listen address (defaults to CPU_SERVE_ADDR)")
	f.StringVar(&c.origin, "origin", "", "Origin the assets belong to (defaults to CPU_ORIGIN)")
}

func (c *serveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	origin := c.origin
	if origin == "" {
		origin = cfg.Origin
	}
	base, err := url.Parse(origin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid origin %q: %v\n", origin, err)
		return subcommands.ExitUsageError
	}

	addr := c.addr
	if addr == "" {
		addr = cfg.ServeAddr
	}

	cache := assetcache.New(CacheDir(), assetcache.Version, nil)
	// serving a new version must never mix in assets of an old one
	if err := cache.Activate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error pruning stale caches: %v\n", err)
		return subcommands.ExitFailure
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Handle("/*", cache.Handler(base))

	fmt.Printf("Serving %s cache-first on http://%s\n", base, addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
