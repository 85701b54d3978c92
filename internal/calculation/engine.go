package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/taxgo/itr-calculator/internal/domain"
	"github.com/taxgo/itr-calculator/pkg/dateutil"
)

// Engine orchestrates the worksheet pipeline: classify gains, aggregate,
// compute both regimes, schedule advance tax and accrue interest. It is
// stateless between calls; every step consumes the previous step's value
// and produces a new one.
type Engine struct {
	Debug  bool
	logger Logger
}

// NewEngine creates a worksheet engine.
func NewEngine() *Engine {
	return &Engine{logger: NopLogger{}}
}

// SetLogger installs a logger; nil restores the no-op default.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	e.logger = l
}

// GenerateWorksheet computes the full tax worksheet for one assessment.
// Inputs are assumed validated by the caller; within the pipeline,
// missing optional dates fall back to documented defaults and negative
// intermediate values are clamped, so the computation always terminates
// with a result.
func (e *Engine) GenerateWorksheet(a *domain.Assessment) (*domain.Worksheet, error) {
	if a == nil {
		return nil, fmt.Errorf("assessment is required")
	}

	rates := a.Rates
	if rates == nil {
		rates = domain.DefaultRateSchedule(a.FiscalYear)
	}

	classifier := NewGainClassifier(rates)
	gains := AggregateGains(classifier.ClassifyAll(a))

	salaryIncome, standardDeduction := e.salaryComponents(a, rates)
	otherIncome := decimal.Zero
	for _, oi := range a.OtherIncomes {
		otherIncome = otherIncome.Add(oi.Amount)
	}

	// Debt-fund STCG folds into ordinary income rather than taking a
	// special rate.
	ordinaryIncome := salaryIncome.Add(otherIncome).Add(gains.DebtSTCGAtSlab)

	oldRegime := e.computeRegime(domain.RegimeOld, ordinaryIncome, gains, a, rates)
	newRegime := e.computeRegime(domain.RegimeNew, ordinaryIncome, gains, a, rates)

	recommended := domain.RegimeNew
	if oldRegime.TotalTax.LessThan(newRegime.TotalTax) {
		recommended = domain.RegimeOld
	}

	selected := a.Regime
	if selected == "" || selected == domain.RegimeAuto {
		selected = recommended
	}
	final := newRegime
	if selected == domain.RegimeOld {
		final = oldRegime
	}

	tds := a.TotalTDS()
	assessed := final.TotalTax.Sub(tds)
	if assessed.LessThan(decimal.Zero) {
		assessed = decimal.Zero
	}

	exempt := a.Profile.AdvanceTaxExempt()
	scheduler := NewAdvanceTaxCalculator(rates)
	schedule := scheduler.BuildSchedule(assessed, a.Payments, exempt)

	interestCalc := NewInterestCalculator(rates)
	schedule, total234C := interestCalc.Section234C(schedule, exempt)

	paidThroughYearEnd := PaidBy(a.Payments, dateutil.FiscalYearEnd(rates.FiscalYear))
	total234B := interestCalc.Section234B(assessed, paidThroughYearEnd, exempt)

	advancePaid := a.TotalAdvancePaid()
	netPayable := final.TotalTax.Add(total234B).Add(total234C).Sub(tds).Sub(advancePaid)

	ws := &domain.Worksheet{
		FiscalYear:        rates.FiscalYear,
		Taxpayer:          a.Profile.Name,
		TotalIncome:       ordinaryIncome.Add(gains.TotalSpecialRateGains()),
		StandardDeduction: standardDeduction,
		Gains:             gains,
		OldRegime:         oldRegime,
		NewRegime:         newRegime,
		Recommended:       recommended,
		Selected:          selected,
		FinalTax:          final.TotalTax,
		TDSCredited:       tds,
		AdvanceTaxDue:     assessed,
		AdvanceTaxExempt:  exempt,
		Schedule:          schedule,
		Interest234B:      total234B,
		Interest234C:      total234C,
		TotalAdvancePaid:  advancePaid,
		NetPayable:        netPayable,
	}

	if e.Debug {
		e.logger.Debugf("worksheet FY%d: income=%s oldTax=%s newTax=%s recommended=%s due=%s 234B=%s 234C=%s",
			ws.FiscalYear, ws.TotalIncome.StringFixed(2), oldRegime.TotalTax.StringFixed(2),
			newRegime.TotalTax.StringFixed(2), recommended, assessed.StringFixed(2),
			total234B.StringFixed(2), total234C.StringFixed(2))
	}

	return ws, nil
}

// salaryComponents returns the salary contribution to ordinary income
// and the standard deduction actually applied. The deduction cap is
// pro-rated by employment months within the fiscal year and never
// exceeds gross minus professional tax.
func (e *Engine) salaryComponents(a *domain.Assessment, rates *domain.RateSchedule) (decimal.Decimal, decimal.Decimal) {
	if a.Salary == nil {
		return decimal.Zero, decimal.Zero
	}
	s := a.Salary

	months := dateutil.MonthsEmployed(s.EmploymentStart, s.EmploymentEnd, rates.FiscalYear)
	prorated := rates.StandardDeductionCap.
		Mul(decimal.NewFromInt(int64(months))).
		Div(decimal.NewFromInt(12))

	afterProfessionalTax := s.GrossAmount.Sub(s.ProfessionalTax)
	if afterProfessionalTax.LessThan(decimal.Zero) {
		afterProfessionalTax = decimal.Zero
	}
	deduction := decimal.Min(prorated, afterProfessionalTax)

	income := afterProfessionalTax.Sub(deduction)
	return income, deduction
}

// computeRegime derives the complete tax figure under one regime.
// Deduction buckets apply only under the old regime; the rebate check
// uses taxable ordinary income alone, and the surcharge keys off
// ordinary taxable income plus all special-rate gains.
func (e *Engine) computeRegime(regime domain.TaxRegime, ordinaryIncome decimal.Decimal, gains domain.GainSummary, a *domain.Assessment, rates *domain.RateSchedule) domain.RegimeComputation {
	table := rates.NewRegime
	deductions := decimal.Zero
	if regime == domain.RegimeOld {
		table = rates.OldRegime
		deductions = e.cappedDeductions(a, rates)
	}

	taxable := ordinaryIncome.Sub(deductions)
	if taxable.LessThan(decimal.Zero) {
		taxable = decimal.Zero
	}

	slabTax, rebate := NewSlabCalculator(table).Tax(taxable)
	specialTax := NewSpecialRateCalculator(rates.Special).Tax(gains)
	baseTax := slabTax.Add(specialTax)

	totalIncome := taxable.Add(gains.TotalSpecialRateGains())
	surcharge, cess, totalTax := NewSurchargeCalculator(rates).Apply(baseTax, totalIncome)

	return domain.RegimeComputation{
		Regime:            regime,
		OrdinaryIncome:    ordinaryIncome,
		DeductionsApplied: deductions,
		TaxableOrdinary:   taxable,
		SlabTax:           slabTax,
		RebateApplied:     rebate,
		SpecialRateTax:    specialTax,
		BaseTax:           baseTax,
		Surcharge:         surcharge,
		Cess:              cess,
		TotalTax:          totalTax,
	}
}

// cappedDeductions sums the six buckets with their statutory caps.
// Donations, home-loan interest and "other" are uncapped in this
// design.
func (e *Engine) cappedDeductions(a *domain.Assessment, rates *domain.RateSchedule) decimal.Decimal {
	caps := rates.DeductionCaps
	d := a.Deductions

	total := decimal.Min(d.Savings, caps.Savings)
	total = total.Add(decimal.Min(d.HealthInsurance, caps.HealthInsuranceCap(a.Profile.AgeBracket)))
	total = total.Add(decimal.Min(d.RetirementScheme, caps.RetirementScheme))
	total = total.Add(d.Donations)
	total = total.Add(d.HomeLoanInterest)
	total = total.Add(d.Other)
	return total
}
