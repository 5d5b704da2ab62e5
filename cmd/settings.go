package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/pastor0711/Cost-Per-Use/i18n"
	"github.com/pastor0711/Cost-Per-Use/ui"
)

// langCmd and currencyCmd are the settings panel: with no argument they
// display the current selection, with one they change and persist it.

type langCmd struct{}

func (*langCmd) Name() string     { return "lang" }
func (*langCmd) Synopsis() string { return "display or change the interface language" }
func (*langCmd) Usage() string {
	return `cpu lang [<code>]

  Without an argument, displays the settings view with the selectable
  languages. With a code (en, de, fr), switches the interface language and
  persists the choice.
`
}

func (c *langCmd) SetFlags(f *flag.FlagSet) {}

func (c *langCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return changeSetting(f, func(tr *i18n.Translator, code string) error {
		return tr.SetLanguage(code)
	})
}

type currencyCmd struct{}

func (*currencyCmd) Name() string     { return "currency" }
func (*currencyCmd) Synopsis() string { return "display or change the display currency" }
func (*currencyCmd) Usage() string {
	return `cpu currency [<code>]

  Without an argument, displays the settings view with the selectable
  currencies. With a code (USD, EUR, GBP, JPY), switches the display
  currency and persists the choice.
`
}

func (c *currencyCmd) SetFlags(f *flag.FlagSet) {}

func (c *currencyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return changeSetting(f, func(tr *i18n.Translator, code string) error {
		return tr.SetCurrency(code)
	})
}

func changeSetting(f *flag.FlagSet, set func(*i18n.Translator, string) error) subcommands.ExitStatus {
	inv, tr := OpenStore()

	surface := &captureSurface{}
	ctl := ui.New(inv, tr, surface)
	defer ctl.Close()

	if f.NArg() > 0 {
		if err := set(tr, f.Arg(0)); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		if err := i18n.SaveSettings(DataDir(), tr); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving settings: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	ctl.ShowSettings()
	printMarkdown(surface.last)
	return subcommands.ExitSuccess
}
