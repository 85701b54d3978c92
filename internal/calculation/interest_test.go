package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/taxgo/itr-calculator/internal/domain"
)

func newInterestCalc() *InterestCalculator {
	return NewInterestCalculator(domain.DefaultRateSchedule(2024))
}

func TestSection234C(t *testing.T) {
	ic := newInterestCalc()

	schedule := []domain.InstallmentStatus{
		{Shortfall: d(15000)},
		{Shortfall: d(30000)},
		{Shortfall: decimal.Zero},
		{Shortfall: d(10000)},
	}

	out, total := ic.Section234C(schedule, false)

	// Three-month windows for the first three installments, one for March.
	assertDecimal(t, d(450), out[0].Interest)
	assertDecimal(t, d(900), out[1].Interest)
	assertDecimal(t, decimal.Zero, out[2].Interest)
	assertDecimal(t, d(100), out[3].Interest)
	assertDecimal(t, d(1450), total)

	// The input schedule is left untouched.
	assertDecimal(t, decimal.Zero, schedule[0].Interest)
}

func TestSection234CFullyPaid(t *testing.T) {
	ic := newInterestCalc()
	schedule := []domain.InstallmentStatus{
		{Shortfall: decimal.Zero},
		{Shortfall: decimal.Zero},
		{Shortfall: decimal.Zero},
		{Shortfall: decimal.Zero},
	}
	_, total := ic.Section234C(schedule, false)
	assertDecimal(t, decimal.Zero, total)
}

func TestSection234CExempt(t *testing.T) {
	ic := newInterestCalc()
	schedule := []domain.InstallmentStatus{{Shortfall: d(15000)}}
	out, total := ic.Section234C(schedule, true)
	assertDecimal(t, decimal.Zero, total)
	assertDecimal(t, decimal.Zero, out[0].Interest)
}

func TestSection234BThresholdBase(t *testing.T) {
	ic := newInterestCalc()

	tests := []struct {
		name     string
		assessed decimal.Decimal
		paid     decimal.Decimal
		exempt   bool
		expected decimal.Decimal
	}{
		{"ninety percent paid owes nothing", d(100000), d(90000), false, decimal.Zero},
		{"overpaid owes nothing", d(100000), d(120000), false, decimal.Zero},
		{"one rupee under the threshold", d(100000), d(89999), false, d(0.04)},
		{"nothing paid", d(100000), decimal.Zero, false, d(3600)},
		{"partially paid", d(100000), d(50000), false, d(1600)},
		{"exempt taxpayer", d(100000), decimal.Zero, true, decimal.Zero},
		{"zero assessed tax", decimal.Zero, decimal.Zero, false, decimal.Zero},
		{"below the minimum liability", d(6200), decimal.Zero, false, decimal.Zero},
		{"at the minimum liability", d(10000), decimal.Zero, false, decimal.Zero},
		{"one rupee over the minimum liability", d(10001), decimal.Zero, false, d(360.036)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, tt.expected, ic.Section234B(tt.assessed, tt.paid, tt.exempt))
		})
	}
}

func TestSection234BFullBase(t *testing.T) {
	rates := domain.DefaultRateSchedule(2024)
	rates.Interest.Section234BFullBase = true
	ic := NewInterestCalculator(rates)

	// The 90% threshold still gates whether interest accrues at all.
	assertDecimal(t, decimal.Zero, ic.Section234B(d(100000), d(90000), false))

	// But the base is the gap to the full assessed tax.
	assertDecimal(t, d(4000), ic.Section234B(d(100000), decimal.Zero, false))
	assertDecimal(t, d(400.04), ic.Section234B(d(100000), d(89999), false))
}

func TestSection234BRespectsConfiguredMonths(t *testing.T) {
	rates := domain.DefaultRateSchedule(2024)
	rates.Interest.Section234BMonths = 1
	ic := NewInterestCalculator(rates)
	assert.True(t, ic.Section234B(d(100000), decimal.Zero, false).Equal(d(900)))
}
