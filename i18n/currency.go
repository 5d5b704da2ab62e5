package i18n

// Currency describes a selectable display currency. Formatting rules
// (symbol placement, grouping, minor-unit fraction) come from the currency
// definition itself, not from the interface language.
type Currency struct {
	Code   string // ISO 4217 code
	Symbol string
}

// Currencies lists the selectable display currencies. The first entry is the
// default.
var Currencies = []Currency{
	{Code: "USD", Symbol: "$"},
	{Code: "EUR", Symbol: "€"},
	{Code: "GBP", Symbol: "£"},
	{Code: "JPY", Symbol: "¥"},
}

// currencyNames gives the localized display name of each currency, per
// language.
var currencyNames = map[string]map[string]string{
	"en": {"USD": "US Dollar", "EUR": "Euro", "GBP": "British Pound", "JPY": "Japanese Yen"},
	"de": {"USD": "US-Dollar", "EUR": "Euro", "GBP": "Britisches Pfund", "JPY": "Japanischer Yen"},
	"fr": {"USD": "Dollar américain", "EUR": "Euro", "GBP": "Livre sterling", "JPY": "Yen japonais"},
}

// CurrencyName returns the display name of the currency with the given code
// in the active language.
func (t *Translator) CurrencyName(code string) string {
	names, ok := currencyNames[t.lang]
	if !ok {
		names = currencyNames["en"]
	}
	if name, ok := names[code]; ok {
		return name
	}
	return code
}
