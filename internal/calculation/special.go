package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/taxgo/itr-calculator/internal/domain"
)

// SpecialRateCalculator taxes each capital-gains bucket at its flat
// rate, independent of the slab ladder. Buckets are additive; a loss in
// one never offsets another.
type SpecialRateCalculator struct {
	Rates domain.SpecialRates
}

// NewSpecialRateCalculator creates a special-rate calculator.
func NewSpecialRateCalculator(rates domain.SpecialRates) *SpecialRateCalculator {
	return &SpecialRateCalculator{Rates: rates}
}

// Tax returns the combined flat-rate tax on all special buckets. Equity
// LTCG is taxed only on the excess over the annual exemption.
func (sp *SpecialRateCalculator) Tax(gains domain.GainSummary) decimal.Decimal {
	tax := gains.EquitySTCG.Mul(sp.Rates.EquitySTCG)

	taxableEquityLTCG := gains.EquityLTCG.Sub(sp.Rates.EquityLTCGExemption)
	if taxableEquityLTCG.GreaterThan(decimal.Zero) {
		tax = tax.Add(taxableEquityLTCG.Mul(sp.Rates.EquityLTCG))
	}

	tax = tax.Add(gains.DebtLTCG.Mul(sp.Rates.DebtLTCG))
	tax = tax.Add(gains.ForeignLTCG.Mul(sp.Rates.ForeignLTCG))
	tax = tax.Add(gains.ForeignSTCG.Mul(sp.Rates.ForeignSTCG))
	return tax
}
