package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/taxgo/itr-calculator/internal/domain"
)

// AdvanceTaxCalculator derives the quarterly installment schedule and
// compares it against actual payments.
type AdvanceTaxCalculator struct {
	Config     domain.AdvanceTaxConfig
	FiscalYear int
}

// NewAdvanceTaxCalculator creates an advance-tax scheduler.
func NewAdvanceTaxCalculator(rates *domain.RateSchedule) *AdvanceTaxCalculator {
	return &AdvanceTaxCalculator{Config: rates.AdvanceTax, FiscalYear: rates.FiscalYear}
}

// DueDate resolves an installment rule to a calendar date. Rules for
// January through March fall in the second calendar year of the fiscal
// year.
func (ac *AdvanceTaxCalculator) DueDate(rule domain.InstallmentRule) time.Time {
	year := ac.FiscalYear
	if rule.Month < int(time.April) {
		year++
	}
	return time.Date(year, time.Month(rule.Month), rule.Day, 0, 0, 0, 0, time.UTC)
}

// PaidBy sums every payment made on or before the given date. Payments
// are matched by actual payment date, not by nominal quarter, so a late
// payment still counts toward every later installment.
func PaidBy(payments []domain.AdvanceTaxPayment, date time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		if !p.PaymentDate.After(date) {
			total = total.Add(p.Amount)
		}
	}
	return total
}

// LiabilityApplies reports whether the advance-tax regime binds: the
// taxpayer is not exempt and the tax due exceeds the minimum liability.
func (ac *AdvanceTaxCalculator) LiabilityApplies(taxDue decimal.Decimal, exempt bool) bool {
	return !exempt && taxDue.GreaterThan(ac.Config.MinimumLiability)
}

// BuildSchedule produces the four-row schedule. taxDue is final tax
// minus TDS credited (the assessed-tax-minus-TDS basis). When the
// liability does not apply, every required amount and shortfall is zero
// while actual payments are still reported.
func (ac *AdvanceTaxCalculator) BuildSchedule(taxDue decimal.Decimal, payments []domain.AdvanceTaxPayment, exempt bool) []domain.InstallmentStatus {
	applies := ac.LiabilityApplies(taxDue, exempt)

	schedule := make([]domain.InstallmentStatus, 0, len(ac.Config.Installments))
	for _, rule := range ac.Config.Installments {
		due := ac.DueDate(rule)
		paid := PaidBy(payments, due)

		required := decimal.Zero
		if applies {
			required = taxDue.Mul(rule.CumulativePercent)
		}

		shortfall := required.Sub(paid)
		if shortfall.LessThan(decimal.Zero) {
			shortfall = decimal.Zero
		}

		schedule = append(schedule, domain.InstallmentStatus{
			DueDate:           due,
			CumulativePercent: rule.CumulativePercent,
			Required:          required,
			Paid:              paid,
			Shortfall:         shortfall,
		})
	}
	return schedule
}
