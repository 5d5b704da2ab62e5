package i18n

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestNewFallsBackToDefaults(t *testing.T) {
	tr := New("xx", "XXX")
	assert.Equal(t, "en", tr.Lang())
	assert.Equal(t, "USD", tr.Currency())
}

func TestTranslate(t *testing.T) {
	tr := New("de", "EUR")
	assert.Equal(t, "Einstellungen", tr.T("settingsTitle"))

	// missing keys fall back to English, unknown keys come back verbatim
	assert.Equal(t, "Settings", New("en", "USD").T("settingsTitle"))
	assert.Equal(t, "noSuchKey", tr.T("noSuchKey"))
}

func TestSetLanguage(t *testing.T) {
	tr := New("en", "USD")

	notified := 0
	cancel := tr.Subscribe(func() { notified++ })

	require.NoError(t, tr.SetLanguage("fr"))
	assert.Equal(t, "fr", tr.Lang())
	assert.Equal(t, 1, notified)

	// unknown codes are rejected without touching the selection
	require.Error(t, tr.SetLanguage("xx"))
	assert.Equal(t, "fr", tr.Lang())
	assert.Equal(t, 1, notified)

	cancel()
	require.NoError(t, tr.SetLanguage("de"))
	assert.Equal(t, 1, notified, "cancelled subscriber must not fire")
}

func TestSetCurrency(t *testing.T) {
	tr := New("en", "USD")
	require.NoError(t, tr.SetCurrency("JPY"))
	assert.Equal(t, "JPY", tr.Currency())
	require.Error(t, tr.SetCurrency("BTC"))
	assert.Equal(t, "JPY", tr.Currency())
}

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		currency string
		amount   string
		want     string
	}{
		{"USD", "1234.56", "$1,234.56"},
		{"USD", "0", "$0.00"},
		{"EUR", "90", "€90,00"}, // go-money carries the continental separators
		{"GBP", "19.99", "£19.99"},
		{"JPY", "1234.6", "¥1,235"}, // yen has no minor unit
	}
	for _, c := range cases {
		tr := New("en", c.currency)
		assert.Equal(t, c.want, tr.FormatMoney(d(c.amount)), "%s %s", c.currency, c.amount)
	}
}

func TestFormatMoneyCompact(t *testing.T) {
	cases := []struct {
		lang     string
		currency string
		amount   string
		want     string
	}{
		{"en", "USD", "999999.99", "$999,999.99"}, // below the threshold: plain formatting
		{"en", "USD", "1500000", "$1.5M"},
		{"en", "USD", "1000000", "$1M"},
		{"en", "USD", "2340000000", "$2.3B"},
		{"de", "EUR", "1500000", "€1.5 Mio."},
		{"fr", "EUR", "2000000000", "€2 Md"},
	}
	for _, c := range cases {
		tr := New(c.lang, c.currency)
		assert.Equal(t, c.want, tr.FormatMoneyCompact(d(c.amount)), "%s %s", c.lang, c.amount)
	}
}

func TestFormatDate(t *testing.T) {
	day := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "3/9/2025", New("en", "USD").FormatDate(day))
	assert.Equal(t, "9.3.2025", New("de", "EUR").FormatDate(day))
	assert.Equal(t, "09/03/2025", New("fr", "EUR").FormatDate(day))
}

func TestCurrencyName(t *testing.T) {
	assert.Equal(t, "US Dollar", New("en", "USD").CurrencyName("USD"))
	assert.Equal(t, "Livre sterling", New("fr", "EUR").CurrencyName("GBP"))
	assert.Equal(t, "XYZ", New("en", "USD").CurrencyName("XYZ"))
}

func TestSettingsRoundTrip(t *testing.T) {
	dir := t.TempDir()

	tr := New("de", "EUR")
	require.NoError(t, SaveSettings(dir, tr))

	again := Open(dir)
	assert.Equal(t, "de", again.Lang())
	assert.Equal(t, "EUR", again.Currency())
}

func TestSettingsFailSoft(t *testing.T) {
	dir := t.TempDir()

	// no file yet: defaults
	tr := Open(dir)
	assert.Equal(t, "en", tr.Lang())
	assert.Equal(t, "USD", tr.Currency())

	// corrupted file: defaults again, no error
	require.NoError(t, os.WriteFile(filepath.Join(dir, SettingsFilename), []byte("{broken"), 0644))
	tr = Open(dir)
	assert.Equal(t, "en", tr.Lang())
	assert.Equal(t, "USD", tr.Currency())
}

func TestCatalogsComplete(t *testing.T) {
	// every key of the reference catalog must exist in the other languages,
	// so a selected language never silently mixes English in
	for lang, cat := range catalogs {
		if lang == "en" {
			continue
		}
		for key := range catalogs["en"] {
			_, ok := cat[key]
			assert.True(t, ok, "catalog %q is missing %q", lang, key)
		}
	}
}
