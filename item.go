package costperuse

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is a tracked purchase: something bought once and used many times.
//
// ID, DateCreated, UseCount and UsageHistory are managed by the Inventory
// and must never be written by callers; the only caller-editable fields are
// the ones reachable through an ItemPatch.
type Item struct {
	ID           string
	Name         string
	Price        decimal.Decimal
	ResaleValue  decimal.Decimal
	Category     string
	UseCount     int
	UsageHistory []time.Time
	DateCreated  time.Time
	LastUsed     *time.Time
}

// NewItem creates an item with a fresh id, zero counters and the creation
// timestamp fixed to now. Price and resale are coerced with ParseAmount.
func NewItem(name, price, category, resale string) Item {
	return Item{
		ID:          uuid.NewString(),
		Name:        name,
		Price:       ParseAmount(price),
		ResaleValue: ParseAmount(resale),
		Category:    category,
		DateCreated: time.Now(),
	}
}

// NetCost is the purchase price minus the resale value.
//
// Resale value is deliberately not capped at the price, so a net cost can go
// negative when an item resells above what it cost.
func (i Item) NetCost() decimal.Decimal {
	return i.Price.Sub(i.ResaleValue)
}

// CostPerUse amortizes the net cost over the recorded uses. An unused item
// reports its full net cost.
func (i Item) CostPerUse() decimal.Decimal {
	if i.UseCount == 0 {
		return i.NetCost()
	}
	return i.NetCost().Div(decimal.NewFromInt(int64(i.UseCount)))
}

// ParseAmount coerces a user-supplied numeric string into a non-negative
// amount. Unparseable input and negative values degrade to zero, they never
// fail the operation.
func ParseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// ItemPatch is a partial update of the caller-editable fields of an item.
// Nil fields are left untouched. Identity, timestamps and counters are not
// representable here on purpose.
type ItemPatch struct {
	Name        *string
	Price       *decimal.Decimal
	ResaleValue *decimal.Decimal
	Category    *string
}

// apply merges the patch into the item.
func (p ItemPatch) apply(i *Item) {
	if p.Name != nil {
		i.Name = *p.Name
	}
	if p.Price != nil {
		i.Price = *p.Price
	}
	if p.ResaleValue != nil {
		i.ResaleValue = *p.ResaleValue
	}
	if p.Category != nil {
		i.Category = *p.Category
	}
}
