package costperuse

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/pastor0711/Cost-Per-Use/i18n"
)

func exportFixture() []Item {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	return []Item{
		testItem("Jacket", "120", "30", "Outerwear", 3, created),
		testItem("Mug", "12.5", "0", "", 4, created.AddDate(0, 0, 1)),
	}
}

func TestExportJSON(t *testing.T) {
	content, err := ExportJSON(exportFixture())
	if err != nil {
		t.Fatalf("ExportJSON() returned an unexpected error: %v", err)
	}

	var doc interface{}
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		t.Fatalf("ExportJSON() output is not valid JSON: %v", err)
	}

	cases := []struct {
		path string
		want interface{}
	}{
		{"$[0].name", "Jacket"},
		{"$[0].price", 120.0},
		{"$[0].resaleValue", 30.0},
		{"$[0].useCount", 3.0},
		{"$[1].name", "Mug"},
		{"$[1].price", 12.5},
	}
	for _, c := range cases {
		got, err := jsonpath.Get(c.path, doc)
		if err != nil {
			t.Fatalf("jsonpath %s: %v", c.path, err)
		}
		if got != c.want {
			t.Errorf("jsonpath %s = %v, want %v", c.path, got, c.want)
		}
	}

	// lossless: the export is a valid data file
	back := DecodeItems(strings.NewReader(content))
	if len(back) != 2 || back[0].Name != "Jacket" || back[0].UseCount != 3 {
		t.Errorf("JSON export does not reimport: %+v", back)
	}
}

func TestExportJSONEmpty(t *testing.T) {
	content, err := ExportJSON(nil)
	if err != nil {
		t.Fatalf("ExportJSON(nil) returned an unexpected error: %v", err)
	}
	if content != "[]" {
		t.Errorf("ExportJSON(nil) = %q, want []", content)
	}
}

func TestExportCSV(t *testing.T) {
	tr := i18n.New("en", "USD")
	content := ExportCSV(exportFixture(), tr)
	lines := strings.Split(content, "\n")
	if len(lines) != 3 {
		t.Fatalf("CSV has %d lines, want header + 2 rows", len(lines))
	}
	if lines[0] != "Name,Category,Buy Price,Resale Value,Net Cost,Uses,Cost Per Use,Created" {
		t.Errorf("CSV header = %q", lines[0])
	}
	if lines[1] != `"Jacket","Outerwear",120.00,30.00,90.00,3,30.00,3/1/2025` {
		t.Errorf("CSV row = %q", lines[1])
	}
}

func TestExportCSVQuoting(t *testing.T) {
	tr := i18n.New("en", "USD")
	items := []Item{testItem(`Mug, the "best" one`, "12", "0", "", 0, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))}
	content := ExportCSV(items, tr)
	if !strings.Contains(content, `"Mug, the ""best"" one"`) {
		t.Errorf("embedded quotes and commas not escaped: %q", content)
	}
}

func TestExportCSVLocalized(t *testing.T) {
	tr := i18n.New("de", "EUR")
	content := ExportCSV(exportFixture(), tr)
	lines := strings.Split(content, "\n")
	if lines[0] != "Name,Kategorie,Kaufpreis,Wiederverkaufswert,Nettokosten,Nutzungen,Kosten pro Nutzung,Erstellt" {
		t.Errorf("German CSV header = %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "1.3.2025") {
		t.Errorf("German date format missing: %q", lines[1])
	}
}

func TestExportCSVEmpty(t *testing.T) {
	if got := ExportCSV(nil, i18n.New("en", "USD")); got != "" {
		t.Errorf("ExportCSV(nil) = %q, want empty string", got)
	}
}

// parseReport parses a markdown report and returns the level-1 heading text
// and the number of GFM tables.
func parseReport(t *testing.T, report string) (title string, tables int) {
	t.Helper()
	source := []byte(report)
	parser := goldmark.New(goldmark.WithExtensions(extension.GFM)).Parser()
	root := parser.Parse(text.NewReader(source))

	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.Heading:
			if v.Level == 1 {
				title = string(v.Text(source))
			}
		case *extast.Table:
			tables++
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walking report AST: %v", err)
	}
	return title, tables
}

func TestExportMarkdown(t *testing.T) {
	tr := i18n.New("en", "USD")
	report := ExportMarkdown(exportFixture(), tr)

	title, tables := parseReport(t, report)
	if title != "Cost Per Use Report" {
		t.Errorf("report title = %q", title)
	}
	if tables != 1 {
		t.Errorf("report has %d tables, want 1", tables)
	}

	for _, want := range []string{
		"Jacket", "Outerwear",
		"$90.00",          // net cost
		"**$30.00**",      // cost per use, bold
		"### Summary",
		"**Total Items**: 2",
		"**Total Investment**: $132.50",
		"**Total Net Value**: $102.50",
		"Generated on",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report is missing %q:\n%s", want, report)
		}
	}
}

func TestExportMarkdownEmpty(t *testing.T) {
	tr := i18n.New("en", "USD")
	report := ExportMarkdown(nil, tr)

	title, tables := parseReport(t, report)
	if title != "Cost Per Use Report" {
		t.Errorf("empty report title = %q", title)
	}
	if tables != 0 {
		t.Errorf("empty report has %d tables, want none", tables)
	}
	if !strings.Contains(report, "No items tracked yet.") {
		t.Errorf("empty report is missing the placeholder:\n%s", report)
	}
}

func TestExportFormat(t *testing.T) {
	day := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		format ExportFormat
		name   string
		media  string
	}{
		{FormatJSON, "cost-per-use-export-2025-03-01.json", "application/json"},
		{FormatCSV, "cost-per-use-export-2025-03-01.csv", "text/csv"},
		{FormatMarkdown, "cost-per-use-report-2025-03-01.md", "text/markdown"},
	}
	for _, c := range cases {
		if got := c.format.Filename(day); got != c.name {
			t.Errorf("%s Filename() = %q, want %q", c.format, got, c.name)
		}
		if got := c.format.MediaType(); got != c.media {
			t.Errorf("%s MediaType() = %q, want %q", c.format, got, c.media)
		}
		parsed, err := ParseExportFormat(c.format.String())
		if err != nil || parsed != c.format {
			t.Errorf("ParseExportFormat(%q) = %v, %v", c.format.String(), parsed, err)
		}
	}
	if f, err := ParseExportFormat("md"); err != nil || f != FormatMarkdown {
		t.Errorf(`ParseExportFormat("md") = %v, %v; want markdown`, f, err)
	}
	if _, err := ParseExportFormat("xlsx"); err == nil {
		t.Error("ParseExportFormat accepted an unknown format")
	}
}

func TestWriteExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	file, err := Export(exportFixture(), FormatCSV, i18n.New("en", "USD"))
	if err != nil {
		t.Fatalf("Export() returned an unexpected error: %v", err)
	}

	path, err := WriteExport(dir, file)
	if err != nil {
		t.Fatalf("WriteExport() returned an unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading the export back: %v", err)
	}
	if string(data) != file.Content {
		t.Error("written export differs from the rendered content")
	}
}
