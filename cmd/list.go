package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	costperuse "github.com/pastor0711/Cost-Per-Use"
	"github.com/pastor0711/Cost-Per-Use/ui"
)

type listCmd struct {
	sort string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display the item list" }
func (*listCmd) Usage() string {
	return `cpu list [-sort <mode>]

  Displays the tracked items. Sort modes: newest (default), most-used,
  best-value, waste, price. Sorting is display-only and never changes the
  stored order.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sort, "sort", "newest", "Display sort mode")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	mode, err := costperuse.ParseSortMode(c.sort)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	inv, tr := OpenStore()
	surface := &captureSurface{}
	ctl := ui.New(inv, tr, surface)
	defer ctl.Close()

	ctl.SetSortMode(mode)

	printMarkdown(surface.last)
	return subcommands.ExitSuccess
}
