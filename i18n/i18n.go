// Package i18n provides the translation catalogs and the locale-aware
// currency and date formatting used by every user-facing surface.
package i18n

import (
	"fmt"
	"slices"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Language describes a selectable interface language.
type Language struct {
	Code  string // ISO 639-1 code, also the catalog key
	Label string // self-describing native label
}

// Languages lists the supported interface languages. The first entry is the
// default and the fallback for missing translations.
var Languages = []Language{
	{Code: "en", Label: "English"},
	{Code: "de", Label: "Deutsch"},
	{Code: "fr", Label: "Français"},
}

// compactThreshold is the absolute amount at which formatting switches to
// the abbreviated notation.
var compactThreshold = decimal.New(1, 6) // 1,000,000

// Translator resolves catalog keys and formats money and dates for one
// selected language and currency. Consumers can subscribe to be re-rendered
// when either selection changes.
type Translator struct {
	lang     string
	currency string

	subscribers []subscriber
	nextSub     int
}

type subscriber struct {
	id int
	fn func()
}

// New creates a translator. Unknown language or currency codes fall back to
// the defaults (English, USD).
func New(lang, currency string) *Translator {
	t := &Translator{lang: Languages[0].Code, currency: Currencies[0].Code}
	// ignore errors: unknown codes keep the defaults
	_ = t.setLanguage(lang)
	_ = t.setCurrency(currency)
	return t
}

// Lang returns the active language code.
func (t *Translator) Lang() string { return t.lang }

// Currency returns the active currency code.
func (t *Translator) Currency() string { return t.currency }

// T resolves a catalog key in the active language. Keys missing from the
// active catalog fall back to English; a key unknown even there is returned
// verbatim so the gap is visible instead of silent.
func (t *Translator) T(key string) string {
	if cat, ok := catalogs[t.lang]; ok {
		if s, ok := cat[key]; ok {
			return s
		}
	}
	if s, ok := catalogs["en"][key]; ok {
		return s
	}
	return key
}

// SetLanguage switches the interface language and notifies subscribers.
func (t *Translator) SetLanguage(code string) error {
	if err := t.setLanguage(code); err != nil {
		return err
	}
	t.notify()
	return nil
}

func (t *Translator) setLanguage(code string) error {
	if !slices.ContainsFunc(Languages, func(l Language) bool { return l.Code == code }) {
		return fmt.Errorf("unknown language: %q", code)
	}
	t.lang = code
	return nil
}

// SetCurrency switches the display currency and notifies subscribers.
func (t *Translator) SetCurrency(code string) error {
	if err := t.setCurrency(code); err != nil {
		return err
	}
	t.notify()
	return nil
}

func (t *Translator) setCurrency(code string) error {
	if !slices.ContainsFunc(Currencies, func(c Currency) bool { return c.Code == code }) {
		return fmt.Errorf("unknown currency: %q", code)
	}
	t.currency = code
	return nil
}

// Subscribe registers fn to be invoked after every language or currency
// change. The returned func cancels the subscription.
func (t *Translator) Subscribe(fn func()) (cancel func()) {
	id := t.nextSub
	t.nextSub++
	t.subscribers = append(t.subscribers, subscriber{id: id, fn: fn})
	return func() {
		t.subscribers = slices.DeleteFunc(t.subscribers, func(s subscriber) bool {
			return s.id == id
		})
	}
}

func (t *Translator) notify() {
	for _, s := range t.subscribers {
		s.fn()
	}
}

// FormatMoney formats an amount in the selected currency, with the
// currency's own symbol, grouping and fraction rules.
func (t *Translator) FormatMoney(amount decimal.Decimal) string {
	cur := *money.New(0, t.currency).Currency()
	minor := amount.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

// FormatMoneyCompact is FormatMoney with an abbreviated notation once the
// absolute amount reaches one million, keeping large figures readable on a
// narrow surface.
func (t *Translator) FormatMoneyCompact(amount decimal.Decimal) string {
	if amount.Abs().LessThan(compactThreshold) {
		return t.FormatMoney(amount)
	}

	unit, suffix := compactThreshold, t.T("compactMillions")
	billion := decimal.New(1, 9)
	if amount.Abs().GreaterThanOrEqual(billion) {
		unit, suffix = billion, t.T("compactBillions")
	}

	cur := *money.New(0, t.currency).Currency()
	scaled := amount.Div(unit).Round(1)
	return cur.Grapheme + scaled.String() + suffix
}

// FormatDate formats a timestamp as a short date in the convention of the
// active language.
func (t *Translator) FormatDate(tm time.Time) string {
	layout := "1/2/2006"
	switch t.lang {
	case "de":
		layout = "2.1.2006"
	case "fr":
		layout = "02/01/2006"
	}
	return tm.Format(layout)
}
