package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/taxgo/itr-calculator/internal/domain"
)

// SlabCalculator applies one regime's progressive bracket ladder to
// taxable ordinary income.
type SlabCalculator struct {
	Table domain.SlabTable
}

// NewSlabCalculator creates a slab calculator for one regime's table.
func NewSlabCalculator(table domain.SlabTable) *SlabCalculator {
	return &SlabCalculator{Table: table}
}

// Tax returns the slab tax before surcharge and cess, and whether the
// full rebate zeroed it out. Bracket boundaries are inclusive of the
// lower rate: income exactly at a threshold stays in the lower bracket.
// The rebate check uses taxable ordinary income only, not special-rate
// gains.
func (sc *SlabCalculator) Tax(taxable decimal.Decimal) (decimal.Decimal, bool) {
	if taxable.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, false
	}

	tax := decimal.Zero
	for _, bracket := range sc.Table.Brackets {
		if taxable.LessThanOrEqual(bracket.Min) {
			break
		}
		inBracket := decimal.Min(taxable, bracket.Max).Sub(bracket.Min)
		if inBracket.GreaterThan(decimal.Zero) {
			tax = tax.Add(inBracket.Mul(bracket.Rate))
		}
	}

	if taxable.LessThanOrEqual(sc.Table.RebateCeiling) && tax.GreaterThan(decimal.Zero) {
		return decimal.Zero, true
	}
	return tax, false
}
