package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/taxgo/itr-calculator/internal/domain"
)

// SurchargeCalculator applies the income-tier surcharge and the flat
// cess on top of base tax.
type SurchargeCalculator struct {
	Tiers    []domain.SurchargeTier
	CessRate decimal.Decimal
}

// NewSurchargeCalculator creates a surcharge and cess calculator.
func NewSurchargeCalculator(rates *domain.RateSchedule) *SurchargeCalculator {
	return &SurchargeCalculator{Tiers: rates.SurchargeTiers, CessRate: rates.CessRate}
}

// surchargeRate returns the tier rate for a total-income figure. Tier
// boundaries are inclusive of the lower rate.
func (sc *SurchargeCalculator) surchargeRate(totalIncome decimal.Decimal) decimal.Decimal {
	for _, tier := range sc.Tiers {
		if totalIncome.LessThanOrEqual(tier.UpTo) {
			return tier.Rate
		}
	}
	if len(sc.Tiers) == 0 {
		return decimal.Zero
	}
	return sc.Tiers[len(sc.Tiers)-1].Rate
}

// Apply returns the surcharge, the cess, and the final tax. The
// surcharge is a percentage of tax keyed off total income (taxable
// ordinary plus all special-rate gains); cess applies to tax plus
// surcharge.
func (sc *SurchargeCalculator) Apply(baseTax, totalIncome decimal.Decimal) (surcharge, cess, total decimal.Decimal) {
	surcharge = baseTax.Mul(sc.surchargeRate(totalIncome))
	withSurcharge := baseTax.Add(surcharge)
	cess = withSurcharge.Mul(sc.CessRate)
	total = withSurcharge.Add(cess)
	return surcharge, cess, total
}
