package costperuse

import "github.com/shopspring/decimal"

// UsagePoint is one point of an item's amortization curve.
type UsagePoint struct {
	// Use is the 1-based use index.
	Use int
	// Gross is the price amortized over the first Use uses, ignoring resale.
	Gross decimal.Decimal
	// Net is only set on the last point, and only when the item carries a
	// positive resale value: the true net cost per use at that point.
	Net *decimal.Decimal
}

// UsageSeries computes the amortization curve of the item: for each use index
// from 1 to the use count (minimum 1, so unused items still chart a single
// point) the gross cost per use at that point. The final point additionally
// carries the net cost per use when a resale value makes it differ, which
// visualizes the one-time step down that resale creates at the end of the
// curve.
func (i Item) UsageSeries() []UsagePoint {
	maxUses := i.UseCount
	if maxUses < 1 {
		maxUses = 1
	}
	series := make([]UsagePoint, 0, maxUses)
	for n := 1; n <= maxUses; n++ {
		p := UsagePoint{
			Use:   n,
			Gross: i.Price.Div(decimal.NewFromInt(int64(n))),
		}
		if n == maxUses && i.ResaleValue.IsPositive() {
			net := i.NetCost().Div(decimal.NewFromInt(int64(n)))
			p.Net = &net
		}
		series = append(series, p)
	}
	return series
}
