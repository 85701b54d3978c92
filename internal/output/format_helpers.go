package output

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatINR formats a decimal with Indian digit grouping: the last three
// digits form one group, every group before that has two digits
// (e.g. 12345678.5 -> "Rs 1,23,45,678.50"). The rupee sign is avoided so
// the output survives Latin-1 PDF fonts and plain terminals alike.
func FormatINR(amount decimal.Decimal) string {
	return "Rs " + GroupINR(amount)
}

// GroupINR returns the grouped number without a currency prefix.
func GroupINR(amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, fracPart = s[:dot], s[dot:]
	}

	grouped := groupIndian(intPart)
	if neg {
		return "-" + grouped + fracPart
	}
	return grouped + fracPart
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}

var hundred = decimal.NewFromInt(100)

// FormatPercent formats a fractional rate as a percentage with no
// trailing zeros (0.15 -> "15%").
func FormatPercent(rate decimal.Decimal) string {
	return rate.Mul(hundred).String() + "%"
}
