// Package dateutil provides date arithmetic for the Indian fiscal year
// (1 April through 31 March) and for capital-gains holding periods.
package dateutil

import (
	"time"
)

// FiscalYearStart returns 1 April of the fiscal year that starts in the
// given calendar year.
func FiscalYearStart(startYear int) time.Time {
	return time.Date(startYear, time.April, 1, 0, 0, 0, 0, time.UTC)
}

// FiscalYearEnd returns 31 March of the following calendar year.
func FiscalYearEnd(startYear int) time.Time {
	return time.Date(startYear+1, time.March, 31, 0, 0, 0, 0, time.UTC)
}

// FiscalYearFor returns the start year of the fiscal year containing the
// given date (e.g. 15 Feb 2025 -> 2024).
func FiscalYearFor(date time.Time) int {
	if date.Month() < time.April {
		return date.Year() - 1
	}
	return date.Year()
}

// WholeMonthsBetween returns the number of whole calendar months from
// `from` to `to`, truncated (a partial month does not count) and floored
// at zero when `to` precedes `from`.
func WholeMonthsBetween(from, to time.Time) int {
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// MonthsEmployed returns the count of calendar months, inclusive on both
// ends, during which an employment spell overlaps the fiscal year
// starting in fyStart. A zero end date means still employed at year end.
// Returns a value in [0, 12].
func MonthsEmployed(start, end time.Time, fyStart int) int {
	lo := FiscalYearStart(fyStart)
	hi := FiscalYearEnd(fyStart)
	if end.IsZero() || end.After(hi) {
		end = hi
	}
	if start.Before(lo) {
		start = lo
	}
	if end.Before(start) {
		return 0
	}
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month()) + 1
	if months > 12 {
		months = 12
	}
	return months
}

// WholeYearsBetween returns the number of elapsed whole years between two
// dates, floored at zero. Used for cost-inflation uplift.
func WholeYearsBetween(from, to time.Time) int {
	years := to.Year() - from.Year()
	if to.Month() < from.Month() || (to.Month() == from.Month() && to.Day() < from.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
