package costperuse

import (
	"time"

	"github.com/shopspring/decimal"
)

// dec is a helper for tests to build decimal expectations from const.
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// testItem builds a fully formed item with uses stamped one minute apart
// after created, so useCount and usageHistory stay consistent.
func testItem(name, price, resale, category string, uses int, created time.Time) Item {
	it := Item{
		ID:          "id-" + name,
		Name:        name,
		Price:       ParseAmount(price),
		ResaleValue: ParseAmount(resale),
		Category:    category,
		DateCreated: created,
	}
	for n := 0; n < uses; n++ {
		at := created.Add(time.Duration(n+1) * time.Minute)
		it.UseCount++
		it.LastUsed = &at
		it.UsageHistory = append(it.UsageHistory, at)
	}
	return it
}
