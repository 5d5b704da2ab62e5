package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/pastor0711/Cost-Per-Use/i18n"
)

// FormView is the view-model of the add/edit form overlay.
type FormView struct {
	Edit     bool // true when editing an existing item
	Name     string
	Price    string
	Resale   string
	Category string
}

// FormMarkdown renders the add/edit form overlay with its current field
// values.
func FormMarkdown(f FormView, tr *i18n.Translator) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if f.Edit {
		doc.H2(tr.T("editItem"))
	} else {
		doc.H2(tr.T("addNewItem"))
	}
	doc.BulletList(
		fmt.Sprintf("%s: %s", md.Bold(tr.T("csvName")), f.Name),
		fmt.Sprintf("%s: %s", md.Bold(tr.T("csvBuyPrice")), f.Price),
		fmt.Sprintf("%s: %s", md.Bold(tr.T("csvResaleValue")), f.Resale),
		fmt.Sprintf("%s: %s", md.Bold(tr.T("csvCategory")), f.Category),
	)
	return doc.String()
}

// ConfirmMarkdown renders the confirmation dialog overlay.
func ConfirmMarkdown(message string, tr *i18n.Translator) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2(tr.T("confirmTitle"))
	if message == "" {
		message = tr.T("confirmDefault")
	}
	doc.PlainText(message)
	doc.PlainText(fmt.Sprintf("[%s / %s]", md.Bold(tr.T("confirmDelete")), tr.T("confirmCancel")))
	return doc.String()
}

// SettingsMarkdown renders the settings view: the selectable languages and
// currencies with the active ones marked.
func SettingsMarkdown(tr *i18n.Translator) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(tr.T("settingsTitle"))

	doc.H2(tr.T("settingsLanguage"))
	langs := make([]string, 0, len(i18n.Languages))
	for _, l := range i18n.Languages {
		label := l.Label
		if l.Code == tr.Lang() {
			label = md.Bold(label + " ✓")
		}
		langs = append(langs, fmt.Sprintf("%s — %s", l.Code, label))
	}
	doc.BulletList(langs...)

	doc.H2(tr.T("settingsCurrency"))
	curs := make([]string, 0, len(i18n.Currencies))
	for _, c := range i18n.Currencies {
		label := fmt.Sprintf("%s %s", c.Symbol, tr.CurrencyName(c.Code))
		if c.Code == tr.Currency() {
			label = md.Bold(label + " ✓")
		}
		curs = append(curs, fmt.Sprintf("%s — %s", c.Code, label))
	}
	doc.BulletList(curs...)

	return doc.String()
}
