// Package renderer turns store snapshots into markdown view-models. The
// functions here are pure: they read an item collection and a translator and
// produce text, leaving the terminal (or any other surface) to a thin
// adapter layer.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	costperuse "github.com/pastor0711/Cost-Per-Use"
	"github.com/pastor0711/Cost-Per-Use/i18n"
)

// ListMarkdown renders the item list view. Items are expected to be already
// sorted for display; the function never reorders them.
func ListMarkdown(items []costperuse.Item, mode costperuse.SortMode, tr *i18n.Translator) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(tr.T("appTitle"))

	if len(items) == 0 {
		doc.PlainText(tr.T("emptyStateAction"))
		return doc.String()
	}

	doc.PlainText(md.Italic(sortLabel(mode, tr)))

	table := md.TableSet{
		Header: []string{
			tr.T("csvName"),
			tr.T("csvCategory"),
			tr.T("costPerUse"),
			tr.T("uses"),
			tr.T("resalePrefix"),
		},
	}
	for _, it := range items {
		table.Rows = append(table.Rows, itemRow(it, tr))
	}
	doc.Table(table)

	return doc.String()
}

// ItemCardMarkdown renders a single item as a compact card, the targeted
// update used by the silent use path instead of a full list render.
func ItemCardMarkdown(it costperuse.Item, tr *i18n.Translator) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	label := tr.T("costPerUse")
	if it.UseCount == 0 {
		label = tr.T("netCost")
	}
	doc.PlainText(fmt.Sprintf("%s — %s %s (%d %s)",
		md.Bold(it.Name),
		label,
		md.Bold(tr.FormatMoneyCompact(it.CostPerUse())),
		it.UseCount,
		tr.T("uses"),
	))
	return doc.String()
}

func itemRow(it costperuse.Item, tr *i18n.Translator) []string {
	category := it.Category
	if category == "" {
		category = "-"
	}

	// an unused item shows its full net cost, not a per-use figure
	cost := tr.FormatMoneyCompact(it.CostPerUse())
	if it.UseCount == 0 {
		cost = fmt.Sprintf("%s (%s)", cost, tr.T("netCost"))
	}

	resale := "-"
	if it.ResaleValue.IsPositive() {
		resale = tr.FormatMoneyCompact(it.ResaleValue)
	}

	return []string{
		md.Bold(it.Name),
		category,
		cost,
		fmt.Sprintf("%d", it.UseCount),
		resale,
	}
}

func sortLabel(mode costperuse.SortMode, tr *i18n.Translator) string {
	switch mode {
	case costperuse.SortMostUsed:
		return tr.T("sortMostUsed")
	case costperuse.SortBestValue:
		return tr.T("sortBestValue")
	case costperuse.SortWaste:
		return tr.T("sortWaste")
	case costperuse.SortPrice:
		return tr.T("sortHighestPrice")
	default:
		return tr.T("sortNewest")
	}
}
