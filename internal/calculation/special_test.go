package calculation

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/taxgo/itr-calculator/internal/domain"
)

func TestSpecialRateTax(t *testing.T) {
	sp := NewSpecialRateCalculator(domain.DefaultRateSchedule(2024).Special)

	tests := []struct {
		name     string
		gains    domain.GainSummary
		expected decimal.Decimal
	}{
		{
			"empty summary",
			domain.GainSummary{},
			decimal.Zero,
		},
		{
			"equity ltcg below exemption owes nothing",
			domain.GainSummary{EquityLTCG: d(100000)},
			decimal.Zero,
		},
		{
			"equity ltcg taxed only above exemption",
			domain.GainSummary{EquityLTCG: d(150000)},
			d(5000),
		},
		{
			"equity stcg at fifteen percent",
			domain.GainSummary{EquitySTCG: d(20000)},
			d(3000),
		},
		{
			"debt ltcg at twenty percent",
			domain.GainSummary{DebtLTCG: d(30000)},
			d(6000),
		},
		{
			"foreign buckets",
			domain.GainSummary{ForeignLTCG: d(10000), ForeignSTCG: d(10000)},
			d(5000),
		},
		{
			"buckets are additive",
			domain.GainSummary{
				EquityLTCG:  d(150000),
				EquitySTCG:  d(20000),
				DebtLTCG:    d(30000),
				ForeignLTCG: d(10000),
				ForeignSTCG: d(10000),
			},
			d(19000),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, tt.expected, sp.Tax(tt.gains))
		})
	}
}

func TestSpecialRateIgnoresSlabBuckets(t *testing.T) {
	sp := NewSpecialRateCalculator(domain.DefaultRateSchedule(2024).Special)
	// Debt STCG folds into ordinary income; it must not be taxed here.
	assertDecimal(t, decimal.Zero, sp.Tax(domain.GainSummary{DebtSTCGAtSlab: d(500000)}))
}

func TestSurchargeTiers(t *testing.T) {
	sc := NewSurchargeCalculator(domain.DefaultRateSchedule(2024))
	baseTax := d(100000)

	tests := []struct {
		name        string
		totalIncome decimal.Decimal
		surcharge   decimal.Decimal
		total       decimal.Decimal
	}{
		{"below fifty lakh", d(4000000), decimal.Zero, d(104000)},
		{"exactly fifty lakh stays in the lower tier", d(5000000), decimal.Zero, d(104000)},
		{"one rupee over fifty lakh", d(5000001), d(10000), d(114400)},
		{"exactly one crore", d(10000000), d(10000), d(114400)},
		{"over one crore", d(10000001), d(15000), d(119600)},
		{"over two crore", d(20000001), d(25000), d(130000)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surcharge, cess, total := sc.Apply(baseTax, tt.totalIncome)
			assertDecimal(t, tt.surcharge, surcharge)
			assertDecimal(t, baseTax.Add(surcharge).Mul(d(0.04)), cess)
			assertDecimal(t, tt.total, total)
		})
	}
}

func TestSurchargeZeroBaseTax(t *testing.T) {
	sc := NewSurchargeCalculator(domain.DefaultRateSchedule(2024))
	surcharge, cess, total := sc.Apply(decimal.Zero, d(60000000))
	assertDecimal(t, decimal.Zero, surcharge)
	assertDecimal(t, decimal.Zero, cess)
	assertDecimal(t, decimal.Zero, total)
}
