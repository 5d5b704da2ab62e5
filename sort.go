package costperuse

import (
	"fmt"
	"slices"
)

// SortMode selects the display ordering of the item list. Display order is
// derived on every render and never persisted; the storage order of the
// collection is untouched.
type SortMode int

const (
	// SortNewest orders by creation date, most recent first. This is the default.
	SortNewest SortMode = iota
	// SortMostUsed orders by descending use count.
	SortMostUsed
	// SortBestValue orders by ascending cost per use.
	SortBestValue
	// SortWaste orders by descending cost per use, most wasteful first.
	SortWaste
	// SortPrice orders by descending purchase price.
	SortPrice
)

func (m SortMode) String() string {
	switch m {
	case SortNewest:
		return "newest"
	case SortMostUsed:
		return "most-used"
	case SortBestValue:
		return "best-value"
	case SortWaste:
		return "waste"
	case SortPrice:
		return "price"
	default:
		return "unknown"
	}
}

// ParseSortMode parses a string into a SortMode.
func ParseSortMode(s string) (SortMode, error) {
	switch s {
	case "newest":
		return SortNewest, nil
	case "most-used":
		return SortMostUsed, nil
	case "best-value":
		return SortBestValue, nil
	case "waste":
		return SortWaste, nil
	case "price":
		return SortPrice, nil
	default:
		return 0, fmt.Errorf("unknown sort mode: %q", s)
	}
}

// SortItems returns a fresh copy of items ordered by the given mode. The
// input slice is never mutated. The sort is stable, so applying the same
// mode twice yields the same order.
func SortItems(items []Item, mode SortMode) []Item {
	sorted := slices.Clone(items)
	switch mode {
	case SortMostUsed:
		slices.SortStableFunc(sorted, func(a, b Item) int { return b.UseCount - a.UseCount })
	case SortBestValue:
		slices.SortStableFunc(sorted, func(a, b Item) int { return a.CostPerUse().Cmp(b.CostPerUse()) })
	case SortWaste:
		slices.SortStableFunc(sorted, func(a, b Item) int { return b.CostPerUse().Cmp(a.CostPerUse()) })
	case SortPrice:
		slices.SortStableFunc(sorted, func(a, b Item) int { return b.Price.Cmp(a.Price) })
	default:
		slices.SortStableFunc(sorted, func(a, b Item) int { return b.DateCreated.Compare(a.DateCreated) })
	}
	return sorted
}
