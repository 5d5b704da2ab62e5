package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/pastor0711/Cost-Per-Use/ui"
)

type showCmd struct{}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display an item's detail view" }
func (*showCmd) Usage() string {
	return `cpu show <item>

  Displays the detail view of an item (by id or exact name): the computed
  cost-per-use metrics and the usage-progression chart.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one item (id or name) is required.")
		return subcommands.ExitUsageError
	}

	inv, tr := OpenStore()
	item, err := resolveItem(inv, f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	surface := &captureSurface{}
	ctl := ui.New(inv, tr, surface)
	defer ctl.Close()

	ctl.OpenDetail(item.ID)

	printMarkdown(surface.last)
	return subcommands.ExitSuccess
}
