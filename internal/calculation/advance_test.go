package calculation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxgo/itr-calculator/internal/domain"
)

func newScheduler() *AdvanceTaxCalculator {
	return NewAdvanceTaxCalculator(domain.DefaultRateSchedule(2024))
}

func TestDueDates(t *testing.T) {
	ac := newScheduler()
	rules := ac.Config.Installments
	require.Len(t, rules, 4)

	assert.Equal(t, day(2024, time.June, 15), ac.DueDate(rules[0]))
	assert.Equal(t, day(2024, time.September, 15), ac.DueDate(rules[1]))
	assert.Equal(t, day(2024, time.December, 15), ac.DueDate(rules[2]))
	// The March installment lands in the second calendar year.
	assert.Equal(t, day(2025, time.March, 15), ac.DueDate(rules[3]))
}

func TestPaidBy(t *testing.T) {
	payments := []domain.AdvanceTaxPayment{
		{Amount: d(10000), PaymentDate: day(2024, time.June, 15)},
		{Amount: d(20000), PaymentDate: day(2024, time.June, 16)},
	}

	// Payment on the due date itself counts.
	assertDecimal(t, d(10000), PaidBy(payments, day(2024, time.June, 15)))
	assertDecimal(t, d(30000), PaidBy(payments, day(2024, time.June, 16)))
	assertDecimal(t, decimal.Zero, PaidBy(payments, day(2024, time.June, 14)))
}

func TestBuildScheduleNoPayments(t *testing.T) {
	ac := newScheduler()
	schedule := ac.BuildSchedule(d(100000), nil, false)
	require.Len(t, schedule, 4)

	expected := []decimal.Decimal{d(15000), d(45000), d(75000), d(100000)}
	for i, row := range schedule {
		assertDecimal(t, expected[i], row.Required, "row %d required", i)
		assertDecimal(t, decimal.Zero, row.Paid, "row %d paid", i)
		assertDecimal(t, expected[i], row.Shortfall, "row %d shortfall", i)
	}
}

func TestBuildScheduleMinimumLiability(t *testing.T) {
	ac := newScheduler()

	// Exactly at the threshold the regime does not bind.
	for _, row := range ac.BuildSchedule(d(10000), nil, false) {
		assertDecimal(t, decimal.Zero, row.Required)
		assertDecimal(t, decimal.Zero, row.Shortfall)
	}

	// One rupee over, it does.
	schedule := ac.BuildSchedule(d(10001), nil, false)
	assertDecimal(t, d(1500.15), schedule[0].Required)
}

func TestBuildScheduleExempt(t *testing.T) {
	ac := newScheduler()
	payments := []domain.AdvanceTaxPayment{
		{Amount: d(5000), PaymentDate: day(2024, time.May, 1)},
	}

	schedule := ac.BuildSchedule(d(100000), payments, true)
	for _, row := range schedule {
		assertDecimal(t, decimal.Zero, row.Required)
		assertDecimal(t, decimal.Zero, row.Shortfall)
		// Actual payments are still reported.
		assertDecimal(t, d(5000), row.Paid)
	}
}

func TestBuildSchedulePaymentTiming(t *testing.T) {
	ac := newScheduler()

	t.Run("on-time payment clears the installment", func(t *testing.T) {
		payments := []domain.AdvanceTaxPayment{
			{Amount: d(15000), PaymentDate: day(2024, time.June, 15)},
		}
		schedule := ac.BuildSchedule(d(100000), payments, false)
		assertDecimal(t, decimal.Zero, schedule[0].Shortfall)
		assertDecimal(t, d(30000), schedule[1].Shortfall)
	})

	t.Run("late payment counts only toward later installments", func(t *testing.T) {
		payments := []domain.AdvanceTaxPayment{
			{Amount: d(15000), PaymentDate: day(2024, time.June, 16)},
		}
		schedule := ac.BuildSchedule(d(100000), payments, false)
		assertDecimal(t, d(15000), schedule[0].Shortfall)
		assertDecimal(t, d(15000), schedule[1].Paid)
		assertDecimal(t, d(30000), schedule[1].Shortfall)
	})

	t.Run("overpayment never yields a negative shortfall", func(t *testing.T) {
		payments := []domain.AdvanceTaxPayment{
			{Amount: d(60000), PaymentDate: day(2024, time.May, 1)},
		}
		schedule := ac.BuildSchedule(d(100000), payments, false)
		assertDecimal(t, decimal.Zero, schedule[0].Shortfall)
		assertDecimal(t, decimal.Zero, schedule[1].Shortfall)
		assertDecimal(t, d(15000), schedule[2].Shortfall)
		assertDecimal(t, d(40000), schedule[3].Shortfall)
	})
}
