package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFiscalYearBounds(t *testing.T) {
	assert.Equal(t, date(2024, time.April, 1), FiscalYearStart(2024))
	assert.Equal(t, date(2025, time.March, 31), FiscalYearEnd(2024))
}

func TestFiscalYearFor(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected int
	}{
		{"mid year", date(2024, time.October, 10), 2024},
		{"january belongs to previous start year", date(2025, time.January, 5), 2024},
		{"april first day", date(2024, time.April, 1), 2024},
		{"march end", date(2024, time.March, 31), 2023},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FiscalYearFor(tt.date))
		})
	}
}

func TestWholeMonthsBetween(t *testing.T) {
	tests := []struct {
		name     string
		from     time.Time
		to       time.Time
		expected int
	}{
		{"exact year", date(2023, time.April, 1), date(2024, time.April, 1), 12},
		{"one day short of a month", date(2024, time.January, 15), date(2024, time.February, 14), 0},
		{"partial month truncates", date(2023, time.January, 10), date(2024, time.March, 9), 13},
		{"same day", date(2024, time.June, 1), date(2024, time.June, 1), 0},
		{"reversed floors at zero", date(2024, time.June, 1), date(2024, time.January, 1), 0},
		{"three years", date(2021, time.May, 20), date(2024, time.May, 20), 36},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WholeMonthsBetween(tt.from, tt.to))
		})
	}
}

func TestMonthsEmployed(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		fyStart  int
		expected int
	}{
		{"full year", date(2024, time.April, 1), time.Time{}, 2024, 12},
		{"started before the year", date(2020, time.January, 1), time.Time{}, 2024, 12},
		{"joined in October", date(2024, time.October, 5), time.Time{}, 2024, 6},
		{"left in September", date(2024, time.April, 1), date(2024, time.September, 30), 2024, 6},
		{"starts after the year ends", date(2026, time.January, 1), time.Time{}, 2024, 0},
		{"ended before the year", date(2020, time.January, 1), date(2023, time.December, 31), 2024, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MonthsEmployed(tt.start, tt.end, tt.fyStart))
		})
	}
}

func TestWholeYearsBetween(t *testing.T) {
	assert.Equal(t, 2, WholeYearsBetween(date(2021, time.June, 15), date(2024, time.June, 14)))
	assert.Equal(t, 3, WholeYearsBetween(date(2021, time.June, 15), date(2024, time.June, 15)))
	assert.Equal(t, 0, WholeYearsBetween(date(2024, time.June, 15), date(2023, time.June, 15)))
}
