package calculation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func d(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func day(y int, m time.Month, dd int) time.Time {
	return time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
}

// assertDecimal compares decimals by value rather than representation.
func assertDecimal(t *testing.T, expected, actual decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	if !actual.Equal(expected) {
		t.Errorf("expected %s, got %s %v", expected.String(), actual.String(), msgAndArgs)
	}
}
