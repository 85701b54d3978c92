package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/taxgo/itr-calculator/internal/domain"
)

// InterestCalculator computes sections 234B and 234C simple interest on
// advance-tax shortfalls. Both are no-ops for exempt taxpayers and when
// the tax due never crossed the minimum advance-tax liability.
type InterestCalculator struct {
	Config           domain.InterestConfig
	Rules            []domain.InstallmentRule
	MinimumLiability decimal.Decimal
}

// NewInterestCalculator creates a 234B/234C calculator.
func NewInterestCalculator(rates *domain.RateSchedule) *InterestCalculator {
	return &InterestCalculator{
		Config:           rates.Interest,
		Rules:            rates.AdvanceTax.Installments,
		MinimumLiability: rates.AdvanceTax.MinimumLiability,
	}
}

// Section234C fills per-installment interest into a copy of the
// schedule and returns it with the total. Each installment accrues
// simple interest on its own shortfall for its own window; shortfalls do
// not compound across installments.
func (ic *InterestCalculator) Section234C(schedule []domain.InstallmentStatus, exempt bool) ([]domain.InstallmentStatus, decimal.Decimal) {
	out := make([]domain.InstallmentStatus, len(schedule))
	copy(out, schedule)
	total := decimal.Zero
	if exempt {
		return out, total
	}

	for i := range out {
		if i >= len(ic.Rules) {
			break
		}
		if out[i].Shortfall.GreaterThan(decimal.Zero) {
			months := decimal.NewFromInt(int64(ic.Rules[i].InterestMonths))
			interest := out[i].Shortfall.Mul(ic.Config.MonthlyRate).Mul(months)
			out[i].Interest = interest
			total = total.Add(interest)
		}
	}
	return out, total
}

// Section234B accrues interest when payments through fiscal-year end
// fall below 90% of the assessed tax (final tax minus TDS). The default
// base is the gap to the 90% threshold; Section234BFullBase switches to
// the gap to the full assessed tax. Assessed tax at or below the
// minimum advance-tax liability accrues nothing, matching the
// scheduler's gate.
func (ic *InterestCalculator) Section234B(assessedTax, paidThroughYearEnd decimal.Decimal, exempt bool) decimal.Decimal {
	if exempt || assessedTax.LessThanOrEqual(ic.MinimumLiability) {
		return decimal.Zero
	}

	threshold := assessedTax.Mul(ic.Config.Section234BFraction)
	if paidThroughYearEnd.GreaterThanOrEqual(threshold) {
		return decimal.Zero
	}

	base := threshold.Sub(paidThroughYearEnd)
	if ic.Config.Section234BFullBase {
		base = assessedTax.Sub(paidThroughYearEnd)
	}
	if base.LessThan(decimal.Zero) {
		return decimal.Zero
	}

	months := decimal.NewFromInt(int64(ic.Config.Section234BMonths))
	return base.Mul(ic.Config.MonthlyRate).Mul(months)
}
