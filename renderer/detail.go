package renderer

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"

	costperuse "github.com/pastor0711/Cost-Per-Use"
	"github.com/pastor0711/Cost-Per-Use/i18n"
)

// chartWidth is the bar length, in cells, of the tallest point of the usage
// chart.
const chartWidth = 24

// DetailMarkdown renders the detail view of a single item: the computed
// metrics and the usage-progression chart.
func DetailMarkdown(it costperuse.Item, tr *i18n.Translator) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(it.Name)
	doc.PlainText(fmt.Sprintf("%s: %s",
		tr.T("currentCostPerUse"),
		md.Bold(tr.FormatMoneyCompact(it.CostPerUse())),
	))

	category := it.Category
	if category == "" {
		category = tr.T("categoryNone")
	}
	table := md.TableSet{
		Header: []string{tr.T("labelPrice"), tr.T("labelTotalUses"), tr.T("labelNetCost")},
		Rows: [][]string{{
			tr.FormatMoneyCompact(it.Price),
			fmt.Sprintf("%d", it.UseCount),
			tr.FormatMoneyCompact(it.NetCost()),
		}},
	}
	doc.Table(table)

	doc.BulletList(
		fmt.Sprintf("%s: %s", md.Bold(tr.T("labelCategory")), category),
		fmt.Sprintf("%s: %s", md.Bold(tr.T("labelAddedOn")), tr.FormatDate(it.DateCreated)),
	)

	doc.H2(tr.T("graphGrossCPU"))
	doc.CodeBlocks(md.SyntaxHighlightText, usageChart(it, tr))
	if it.ResaleValue.IsPositive() {
		doc.PlainText(md.Italic(fmt.Sprintf("●  %s", tr.T("graphTrueCost"))))
	}

	return doc.String()
}

// usageChart draws the amortization curve as horizontal bars, one per use.
// The final point carries the true net cost marker when resale applies.
func usageChart(it costperuse.Item, tr *i18n.Translator) string {
	series := it.UsageSeries()

	// scale bars against the tallest gross point (the first one, since the
	// curve only decays)
	max := series[0].Gross
	if !max.IsPositive() {
		max = decimal.New(1, 0)
	}

	var b strings.Builder
	for n, p := range series {
		cells := int(p.Gross.Div(max).Mul(decimal.NewFromInt(chartWidth)).Round(0).IntPart())
		if cells < 1 && p.Gross.IsPositive() {
			cells = 1
		}
		if cells < 0 {
			cells = 0
		}
		fmt.Fprintf(&b, "%s %3d  %-*s %s",
			tr.T("btnUseLabel"), p.Use,
			chartWidth, strings.Repeat("█", cells),
			tr.FormatMoney(p.Gross),
		)
		if p.Net != nil {
			fmt.Fprintf(&b, "  ● %s", tr.FormatMoney(*p.Net))
		}
		if n < len(series)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
