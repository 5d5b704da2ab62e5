package costperuse

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"

	"github.com/pastor0711/Cost-Per-Use/i18n"
)

// This file contains the export transforms: pure functions from a snapshot
// of the item collection to literal text in one of three formats. They never
// read or write the store.

// ExportFormat selects one of the export file formats.
type ExportFormat int

const (
	// FormatJSON is a lossless, pretty-printed dump of the collection,
	// identical in shape to the data file so it can be reimported as-is.
	FormatJSON ExportFormat = iota
	// FormatCSV is a spreadsheet-friendly table with localized headers.
	FormatCSV
	// FormatMarkdown is a human-readable report with a summary block.
	FormatMarkdown
)

func (f ExportFormat) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatCSV:
		return "csv"
	case FormatMarkdown:
		return "markdown"
	default:
		return "unknown"
	}
}

// ParseExportFormat parses a string into an ExportFormat.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch s {
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return 0, fmt.Errorf("unknown export format: %q", s)
	}
}

// MediaType returns the media type of files in this format.
func (f ExportFormat) MediaType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatCSV:
		return "text/csv"
	case FormatMarkdown:
		return "text/markdown"
	default:
		return "application/octet-stream"
	}
}

// Filename returns the dated export file name for this format.
func (f ExportFormat) Filename(on time.Time) string {
	day := on.Format("2006-01-02")
	switch f {
	case FormatCSV:
		return fmt.Sprintf("cost-per-use-export-%s.csv", day)
	case FormatMarkdown:
		return fmt.Sprintf("cost-per-use-report-%s.md", day)
	default:
		return fmt.Sprintf("cost-per-use-export-%s.json", day)
	}
}

// ExportFile is a rendered export ready to be written to disk.
type ExportFile struct {
	Name      string
	MediaType string
	Content   string
}

// Export renders the item collection in the given format.
func Export(items []Item, format ExportFormat, tr *i18n.Translator) (ExportFile, error) {
	f := ExportFile{
		Name:      format.Filename(time.Now()),
		MediaType: format.MediaType(),
	}
	switch format {
	case FormatCSV:
		f.Content = ExportCSV(items, tr)
	case FormatMarkdown:
		f.Content = ExportMarkdown(items, tr)
	default:
		content, err := ExportJSON(items)
		if err != nil {
			return ExportFile{}, err
		}
		f.Content = content
	}
	return f, nil
}

// WriteExport writes the export file into dir and returns its full path.
// There is no retry: a failed write fails that one export.
func WriteExport(dir string, f ExportFile) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("could not create export directory %q: %w", dir, err)
	}
	path := filepath.Join(dir, f.Name)
	if err := os.WriteFile(path, []byte(f.Content), 0644); err != nil {
		return "", fmt.Errorf("could not write export %q: %w", path, err)
	}
	return path, nil
}

// ExportJSON serializes the full collection as a pretty-printed JSON array,
// faithful enough to round-trip through DecodeItems without loss.
func ExportJSON(items []Item) (string, error) {
	var buf bytes.Buffer
	if err := EncodeItems(&buf, items); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// ExportCSV renders one localized header row plus one row per item. An empty
// collection yields an empty string.
func ExportCSV(items []Item, tr *i18n.Translator) string {
	if len(items) == 0 {
		return ""
	}

	headers := []string{
		tr.T("csvName"),
		tr.T("csvCategory"),
		tr.T("csvBuyPrice"),
		tr.T("csvResaleValue"),
		tr.T("csvNetCost"),
		tr.T("csvUses"),
		tr.T("csvCPU"),
		tr.T("csvCreated"),
	}

	lines := make([]string, 0, len(items)+1)
	lines = append(lines, strings.Join(headers, ","))
	for _, it := range items {
		row := []string{
			csvQuote(it.Name),
			csvQuote(it.Category),
			it.Price.StringFixed(2),
			it.ResaleValue.StringFixed(2),
			it.NetCost().StringFixed(2),
			fmt.Sprintf("%d", it.UseCount),
			it.CostPerUse().StringFixed(2),
			tr.FormatDate(it.DateCreated),
		}
		lines = append(lines, strings.Join(row, ","))
	}
	return strings.Join(lines, "\n")
}

// csvQuote wraps a free-text field in double quotes, doubling any embedded
// quote per RFC 4180.
func csvQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// ExportMarkdown renders the report: a title, a per-item summary table and a
// trailing summary block. An empty collection yields the title and a "no
// items" placeholder, no table.
func ExportMarkdown(items []Item, tr *i18n.Translator) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(tr.T("reportTitle"))

	if len(items) == 0 {
		doc.PlainText(tr.T("reportNoItems"))
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{
			tr.T("reportHeaderName"),
			tr.T("reportHeaderCategory"),
			tr.T("reportHeaderNetCost"),
			tr.T("reportHeaderUses"),
			tr.T("reportHeaderCPU"),
		},
	}
	totalInvestment := decimal.Zero
	totalNet := decimal.Zero
	for _, it := range items {
		category := it.Category
		if category == "" {
			category = "-"
		}
		table.Rows = append(table.Rows, []string{
			it.Name,
			category,
			tr.FormatMoney(it.NetCost()),
			fmt.Sprintf("%d", it.UseCount),
			md.Bold(tr.FormatMoney(it.CostPerUse())),
		})
		totalInvestment = totalInvestment.Add(it.Price)
		totalNet = totalNet.Add(it.NetCost())
	}
	doc.Table(table)

	doc.H3(tr.T("reportSummary"))
	doc.BulletList(
		fmt.Sprintf("%s: %d", md.Bold(tr.T("reportTotalItems")), len(items)),
		fmt.Sprintf("%s: %s", md.Bold(tr.T("reportTotalInvestment")), tr.FormatMoney(totalInvestment)),
		fmt.Sprintf("%s: %s", md.Bold(tr.T("reportTotalNetValue")), tr.FormatMoney(totalNet)),
	)
	doc.PlainText(md.Italic(fmt.Sprintf("%s %s", tr.T("reportGenerated"), tr.FormatDate(time.Now()))))

	return doc.String()
}
