// Package costperuse tracks the real cost of the things you buy: record a
// purchase with its price and optional resale value, log every use, and the
// cost per use falls as the item earns its keep.
//
// The package owns the domain model and its persistence: the Item record,
// the Inventory store with its change subscriptions, the derived sort
// orders, the amortization series behind the usage chart, and the JSON, CSV
// and Markdown export transforms. Everything is local-first: the collection
// lives in a single JSON file that every mutation rewrites in full before
// subscribers are told about the change.
//
// Presentation lives in the ui and renderer packages, translations and
// currency formatting in i18n, and the offline asset cache in assetcache.
package costperuse
