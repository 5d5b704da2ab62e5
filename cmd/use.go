package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/pastor0711/Cost-Per-Use/ui"
)

type useCmd struct {
	times int
}

func (*useCmd) Name() string     { return "use" }
func (*useCmd) Synopsis() string { return "record one use of an item" }
func (*useCmd) Usage() string {
	return `cpu use [-n <times>] <item>

  Records a use of the item (by id or exact name): bumps the use counter,
  stamps the time and appends to the usage history. This is the
  high-frequency action, so it uses the silent store path and prints only
  the updated item card.
`
}

func (c *useCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.times, "n", 1, "Number of uses to record")
}

func (c *useCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one item (id or name) is required.")
		return subcommands.ExitUsageError
	}
	if c.times < 1 {
		fmt.Fprintln(os.Stderr, "Error: -n must be at least 1.")
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

	for n := 0; n < c.times; n++ {
		if err := ctl.UseItem(item.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error recording use: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(surface.last)
	return subcommands.ExitSuccess
}
