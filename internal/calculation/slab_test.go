package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/taxgo/itr-calculator/internal/domain"
)

func TestSlabTaxOldRegime(t *testing.T) {
	sc := NewSlabCalculator(domain.DefaultRateSchedule(2024).OldRegime)

	tests := []struct {
		name        string
		taxable     decimal.Decimal
		expectedTax decimal.Decimal
		rebate      bool
	}{
		{"zero income", decimal.Zero, decimal.Zero, false},
		{"negative clamps to zero", d(-1000), decimal.Zero, false},
		{"at the basic exemption limit", d(250000), decimal.Zero, false},
		{"one rupee over exemption rebates to zero", d(250001), decimal.Zero, true},
		{"at the rebate ceiling", d(500000), decimal.Zero, true},
		{"one rupee over the rebate ceiling", d(500001), d(12500.2), false},
		{"twenty percent band", d(800000), d(72500), false},
		{"into the top band", d(1147600), d(156780), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tax, rebate := sc.Tax(tt.taxable)
			assertDecimal(t, tt.expectedTax, tax)
			assert.Equal(t, tt.rebate, rebate)
		})
	}
}

func TestSlabTaxNewRegime(t *testing.T) {
	sc := NewSlabCalculator(domain.DefaultRateSchedule(2024).NewRegime)

	tests := []struct {
		name        string
		taxable     decimal.Decimal
		expectedTax decimal.Decimal
		rebate      bool
	}{
		{"at the basic exemption limit", d(300000), decimal.Zero, false},
		{"at the rebate ceiling", d(700000), decimal.Zero, true},
		{"one rupee over the rebate ceiling", d(700001), d(20000.1), false},
		{"fifteen percent band", d(1147600), d(72140), false},
		{"top band", d(2000000), d(290000), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tax, rebate := sc.Tax(tt.taxable)
			assertDecimal(t, tt.expectedTax, tax)
			assert.Equal(t, tt.rebate, rebate)
		})
	}
}

// Outside the rebate cliff the ladder must never charge less on more
// income.
func TestSlabTaxMonotonicAboveRebate(t *testing.T) {
	for _, table := range []domain.SlabTable{
		domain.DefaultRateSchedule(2024).OldRegime,
		domain.DefaultRateSchedule(2024).NewRegime,
	} {
		sc := NewSlabCalculator(table)
		prev := decimal.Zero
		income := table.RebateCeiling
		for i := 0; i < 40; i++ {
			income = income.Add(d(50000))
			tax, _ := sc.Tax(income)
			assert.True(t, tax.GreaterThanOrEqual(prev),
				"tax fell from %s to %s at income %s", prev, tax, income)
			prev = tax
		}
	}
}
