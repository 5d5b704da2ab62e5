package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/pastor0711/Cost-Per-Use/ui"
)

type rmCmd struct {
	yes bool
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete an item permanently" }
func (*rmCmd) Usage() string {
	return `cpu rm [-y] <item>

  Deletes the item (by id or exact name) and its whole usage history. There
  is no soft delete: the record is gone for good, which is why the command
  asks for confirmation unless -y is given.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Skip the confirmation prompt")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	// deletion goes through the detail view's confirmation layer
	ctl.OpenDetail(item.ID)
	ctl.RequestDeleteCurrent()

	if !c.yes {
		printMarkdown(surface.last)
		fmt.Fprintf(os.Stderr, "%s [y/N]: ", item.Name)
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			ctl.CancelConfirm()
			fmt.Println("Cancelled.")
			return subcommands.ExitSuccess
		}
	}

	if err := ctl.Confirm(); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting item: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Deleted %q.\n", item.Name)
	return subcommands.ExitSuccess
}
