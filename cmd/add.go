package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/pastor0711/Cost-Per-Use/ui"
)

type addCmd struct {
	name     string
	price    string
	resale   string
	category string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "track a new item" }
func (*addCmd) Usage() string {
	return `cpu add -name <name> -price <price> [-resale <value>] [-category <category>]

  Adds a new item to the inventory:
  - name: display name of the item (required).
  - price: purchase price (required, clamped to >= 0).
  - resale: expected resale value, defaults to 0 on missing or invalid input.
  - category: free-text category.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Item name (required)")
	f.StringVar(&c.price, "price", "", "Purchase price (required)")
	f.StringVar(&c.resale, "resale", "", "Expected resale value")
	f.StringVar(&c.category, "category", "", "Free-text category")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv, tr := OpenStore()

	surface := &captureSurface{}
	ctl := ui.New(inv, tr, surface)
	defer ctl.Close()

	ctl.OpenForm()
	ok, err := ctl.SubmitForm(ui.FormInput{
		Name:     c.name,
		Price:    c.price,
		Resale:   c.resale,
		Category: c.category,
	})
	if !ok {
		fmt.Fprintln(os.Stderr, "Error: -name and -price are required.")
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving item: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(surface.last)
	fmt.Printf("✅ Added %q.\n", c.name)
	return subcommands.ExitSuccess
}
