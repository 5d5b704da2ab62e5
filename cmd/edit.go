package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/pastor0711/Cost-Per-Use/ui"
)

type editCmd struct {
	name     string
	price    string
	resale   string
	category string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "update an item's editable fields" }
func (*editCmd) Usage() string {
	return `cpu edit <item> [-name <name>] [-price <price>] [-resale <value>] [-category <category>]

  Updates the item's editable fields. Omitted flags keep their current
  values; id, creation date and use counters can never be edited.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "New item name")
	f.StringVar(&c.price, "price", "", "New purchase price")
	f.StringVar(&c.resale, "resale", "", "New resale value")
	f.StringVar(&c.category, "category", "", "New category")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	// the form opens pre-filled with the item; flags override field by field
	in := ui.FormInput{
		Name:     item.Name,
		Price:    item.Price.String(),
		Resale:   item.ResaleValue.String(),
		Category: item.Category,
	}
	if c.name != "" {
		in.Name = c.name
	}
	if c.price != "" {
		in.Price = c.price
	}
	if c.resale != "" {
		in.Resale = c.resale
	}
	if c.category != "" {
		in.Category = c.category
	}

	ctl.OpenEdit(item.ID)
	ok, err := ctl.SubmitForm(in)
	if !ok {
		fmt.Fprintln(os.Stderr, "Error: an item needs a non-empty name and a price.")
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving item: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(surface.last)
	fmt.Printf("✅ Updated %q.\n", in.Name)
	return subcommands.ExitSuccess
}
