package domain

import (
	"github.com/shopspring/decimal"
)

// TAX RATE ASSUMPTIONS:
//
// 1. Slab tables follow the FY 2024-25 rule sets: the old regime keeps
//    the 2.5L/5L/10L ladder with an 87A rebate up to 5L; the new regime
//    uses the 3L/7L/10L/12L/15L ladder with a rebate up to 7L.
//
// 2. Special capital-gains rates: 111A equity STCG 15%, 112A equity LTCG
//    10% above a 1L annual exemption, indexed debt and foreign LTCG 20%,
//    foreign STCG 30%.
//
// 3. Indexation uses a flat 5% annual cost uplift per elapsed whole
//    year. This stands in for the published cost-inflation-index table;
//    see calculation.CostIndexer for the substitution point.

// TaxBracket is one progressive slab. Boundaries are inclusive of the
// lower rate: income exactly at Max is taxed in this bracket.
type TaxBracket struct {
	Min  decimal.Decimal `yaml:"min" json:"min"`
	Max  decimal.Decimal `yaml:"max" json:"max"`
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
}

// SlabTable is the progressive ladder plus rebate ceiling for one regime.
type SlabTable struct {
	Brackets      []TaxBracket    `yaml:"brackets" json:"brackets"`
	RebateCeiling decimal.Decimal `yaml:"rebate_ceiling" json:"rebate_ceiling"`
}

// SpecialRates are the flat rates applied to capital-gains buckets
// outside the slab ladder.
type SpecialRates struct {
	EquitySTCG          decimal.Decimal `yaml:"equity_stcg" json:"equity_stcg"`
	EquityLTCG          decimal.Decimal `yaml:"equity_ltcg" json:"equity_ltcg"`
	EquityLTCGExemption decimal.Decimal `yaml:"equity_ltcg_exemption" json:"equity_ltcg_exemption"`
	DebtLTCG            decimal.Decimal `yaml:"debt_ltcg" json:"debt_ltcg"`
	ForeignLTCG         decimal.Decimal `yaml:"foreign_ltcg" json:"foreign_ltcg"`
	ForeignSTCG         decimal.Decimal `yaml:"foreign_stcg" json:"foreign_stcg"`
}

// SurchargeTier maps a total-income band to a surcharge rate on tax.
type SurchargeTier struct {
	UpTo decimal.Decimal `yaml:"up_to" json:"up_to"`
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
}

// HoldingThresholds are the long-term classification cutoffs in whole
// months. Holding strictly greater than the threshold is long-term.
type HoldingThresholds struct {
	EquityMonths  int `yaml:"equity_months" json:"equity_months"`
	ForeignMonths int `yaml:"foreign_months" json:"foreign_months"`
	DebtMonths    int `yaml:"debt_months" json:"debt_months"`
}

// DeductionCaps bound the old-regime deduction buckets. Donations,
// home-loan interest and "other" are uncapped.
type DeductionCaps struct {
	Savings          decimal.Decimal `yaml:"savings" json:"savings"`
	HealthBelow60    decimal.Decimal `yaml:"health_below_60" json:"health_below_60"`
	HealthSenior     decimal.Decimal `yaml:"health_senior" json:"health_senior"`
	RetirementScheme decimal.Decimal `yaml:"retirement_scheme" json:"retirement_scheme"`
}

// InstallmentRule is one advance-tax due date: month/day within the
// fiscal year, the cumulative percentage of tax due required by then,
// and the 234C interest window applied to a shortfall at that date.
type InstallmentRule struct {
	Month             int             `yaml:"month" json:"month"`
	Day               int             `yaml:"day" json:"day"`
	CumulativePercent decimal.Decimal `yaml:"cumulative_percent" json:"cumulative_percent"`
	InterestMonths    int             `yaml:"interest_months" json:"interest_months"`
}

// AdvanceTaxConfig drives the installment schedule.
type AdvanceTaxConfig struct {
	MinimumLiability decimal.Decimal   `yaml:"minimum_liability" json:"minimum_liability"`
	Installments     []InstallmentRule `yaml:"installments" json:"installments"`
}

// InterestConfig drives sections 234B and 234C.
type InterestConfig struct {
	MonthlyRate         decimal.Decimal `yaml:"monthly_rate" json:"monthly_rate"`
	Section234BMonths   int             `yaml:"section_234b_months" json:"section_234b_months"`
	Section234BFraction decimal.Decimal `yaml:"section_234b_fraction" json:"section_234b_fraction"`
	// Section234BFullBase switches the 234B shortfall base from the
	// 90%-of-assessed-tax threshold (the worksheet reading, default) to
	// the full assessed tax.
	Section234BFullBase bool `yaml:"section_234b_full_base" json:"section_234b_full_base"`
}

// RateSchedule bundles every rate, threshold and calendar rule for one
// fiscal year. All amounts are INR.
type RateSchedule struct {
	FiscalYear           int               `yaml:"fiscal_year" json:"fiscal_year"`
	OldRegime            SlabTable         `yaml:"old_regime" json:"old_regime"`
	NewRegime            SlabTable         `yaml:"new_regime" json:"new_regime"`
	Special              SpecialRates      `yaml:"special" json:"special"`
	SurchargeTiers       []SurchargeTier   `yaml:"surcharge_tiers" json:"surcharge_tiers"`
	CessRate             decimal.Decimal   `yaml:"cess_rate" json:"cess_rate"`
	StandardDeductionCap decimal.Decimal   `yaml:"standard_deduction_cap" json:"standard_deduction_cap"`
	DeductionCaps        DeductionCaps     `yaml:"deduction_caps" json:"deduction_caps"`
	Holding              HoldingThresholds `yaml:"holding" json:"holding"`
	IndexationAnnualRate decimal.Decimal   `yaml:"indexation_annual_rate" json:"indexation_annual_rate"`
	AdvanceTax           AdvanceTaxConfig  `yaml:"advance_tax" json:"advance_tax"`
	Interest             InterestConfig    `yaml:"interest" json:"interest"`
}

// unbounded is the sentinel upper limit for the top bracket/tier.
var unbounded = decimal.NewFromInt(999999999999)

// DefaultRateSchedule returns the FY rule set described in the
// assumptions block above.
func DefaultRateSchedule(fiscalYear int) *RateSchedule {
	return &RateSchedule{
		FiscalYear: fiscalYear,
		OldRegime: SlabTable{
			Brackets: []TaxBracket{
				{decimal.Zero, decimal.NewFromInt(250000), decimal.Zero},
				{decimal.NewFromInt(250000), decimal.NewFromInt(500000), decimal.NewFromFloat(0.05)},
				{decimal.NewFromInt(500000), decimal.NewFromInt(1000000), decimal.NewFromFloat(0.20)},
				{decimal.NewFromInt(1000000), unbounded, decimal.NewFromFloat(0.30)},
			},
			RebateCeiling: decimal.NewFromInt(500000),
		},
		NewRegime: SlabTable{
			Brackets: []TaxBracket{
				{decimal.Zero, decimal.NewFromInt(300000), decimal.Zero},
				{decimal.NewFromInt(300000), decimal.NewFromInt(700000), decimal.NewFromFloat(0.05)},
				{decimal.NewFromInt(700000), decimal.NewFromInt(1000000), decimal.NewFromFloat(0.10)},
				{decimal.NewFromInt(1000000), decimal.NewFromInt(1200000), decimal.NewFromFloat(0.15)},
				{decimal.NewFromInt(1200000), decimal.NewFromInt(1500000), decimal.NewFromFloat(0.20)},
				{decimal.NewFromInt(1500000), unbounded, decimal.NewFromFloat(0.30)},
			},
			RebateCeiling: decimal.NewFromInt(700000),
		},
		Special: SpecialRates{
			EquitySTCG:          decimal.NewFromFloat(0.15),
			EquityLTCG:          decimal.NewFromFloat(0.10),
			EquityLTCGExemption: decimal.NewFromInt(100000),
			DebtLTCG:            decimal.NewFromFloat(0.20),
			ForeignLTCG:         decimal.NewFromFloat(0.20),
			ForeignSTCG:         decimal.NewFromFloat(0.30),
		},
		SurchargeTiers: []SurchargeTier{
			{decimal.NewFromInt(5000000), decimal.Zero},
			{decimal.NewFromInt(10000000), decimal.NewFromFloat(0.10)},
			{decimal.NewFromInt(20000000), decimal.NewFromFloat(0.15)},
			{unbounded, decimal.NewFromFloat(0.25)},
		},
		CessRate:             decimal.NewFromFloat(0.04),
		StandardDeductionCap: decimal.NewFromInt(50000),
		DeductionCaps: DeductionCaps{
			Savings:          decimal.NewFromInt(150000),
			HealthBelow60:    decimal.NewFromInt(25000),
			HealthSenior:     decimal.NewFromInt(50000),
			RetirementScheme: decimal.NewFromInt(50000),
		},
		Holding: HoldingThresholds{
			EquityMonths:  12,
			ForeignMonths: 24,
			DebtMonths:    36,
		},
		IndexationAnnualRate: decimal.NewFromFloat(0.05),
		AdvanceTax: AdvanceTaxConfig{
			MinimumLiability: decimal.NewFromInt(10000),
			Installments: []InstallmentRule{
				{Month: 6, Day: 15, CumulativePercent: decimal.NewFromFloat(0.15), InterestMonths: 3},
				{Month: 9, Day: 15, CumulativePercent: decimal.NewFromFloat(0.45), InterestMonths: 3},
				{Month: 12, Day: 15, CumulativePercent: decimal.NewFromFloat(0.75), InterestMonths: 3},
				{Month: 3, Day: 15, CumulativePercent: decimal.NewFromInt(1), InterestMonths: 1},
			},
		},
		Interest: InterestConfig{
			MonthlyRate:         decimal.NewFromFloat(0.01),
			Section234BMonths:   4,
			Section234BFraction: decimal.NewFromFloat(0.90),
		},
	}
}

// HealthInsuranceCap returns the 80D ceiling for the age bracket.
func (dc DeductionCaps) HealthInsuranceCap(bracket AgeBracket) decimal.Decimal {
	if bracket == Age60To80 || bracket == AgeAbove80 {
		return dc.HealthSenior
	}
	return dc.HealthBelow60
}

// ThresholdFor returns the long-term cutoff in whole months for a fund
// category.
func (h HoldingThresholds) ThresholdFor(category FundCategory) int {
	if category == FundDebt {
		return h.DebtMonths
	}
	return h.EquityMonths
}
