package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/taxgo/itr-calculator/internal/domain"
)

// ConsoleFormatter renders the worksheet as a plain-text report.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(ws *domain.Worksheet) ([]byte, error) {
	buf := &bytes.Buffer{}

	rule := strings.Repeat("=", 72)
	fmt.Fprintln(buf, rule)
	fmt.Fprintf(buf, "INCOME TAX WORKSHEET - FY %d-%d\n", ws.FiscalYear, (ws.FiscalYear+1)%100)
	if ws.Taxpayer != "" {
		fmt.Fprintf(buf, "Taxpayer: %s\n", ws.Taxpayer)
	}
	fmt.Fprintln(buf, rule)
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "INCOME")
	fmt.Fprintln(buf, strings.Repeat("-", 30))
	fmt.Fprintf(buf, "  Total Income:          %s\n", FormatINR(ws.TotalIncome))
	fmt.Fprintf(buf, "  Standard Deduction:    %s\n", FormatINR(ws.StandardDeduction))
	fmt.Fprintln(buf)

	g := ws.Gains
	if g.TotalSpecialRateGains().GreaterThan(decimal.Zero) || g.DebtSTCGAtSlab.GreaterThan(decimal.Zero) {
		fmt.Fprintln(buf, "CAPITAL GAINS")
		fmt.Fprintln(buf, strings.Repeat("-", 30))
		writeGainLine(buf, "Equity LTCG", g.EquityLTCG)
		writeGainLine(buf, "Equity STCG", g.EquitySTCG)
		writeGainLine(buf, "Debt LTCG (indexed)", g.DebtLTCG)
		writeGainLine(buf, "Debt STCG (at slab)", g.DebtSTCGAtSlab)
		writeGainLine(buf, "Foreign LTCG (indexed)", g.ForeignLTCG)
		writeGainLine(buf, "Foreign STCG", g.ForeignSTCG)
		fmt.Fprintln(buf)
	}

	fmt.Fprintln(buf, "REGIME COMPARISON")
	fmt.Fprintln(buf, strings.Repeat("-", 30))
	writeRegime(buf, "Old regime (with deductions)", ws.OldRegime)
	writeRegime(buf, "New regime (default)", ws.NewRegime)
	fmt.Fprintf(buf, "  Recommended regime:    %s\n", strings.ToUpper(string(ws.Recommended)))
	fmt.Fprintf(buf, "  Selected regime:       %s\n", strings.ToUpper(string(ws.Selected)))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "ADVANCE TAX SCHEDULE")
	fmt.Fprintln(buf, strings.Repeat("-", 72))
	if ws.AdvanceTaxExempt {
		fmt.Fprintln(buf, "  Taxpayer is exempt from advance tax (resident senior, no business income).")
	}
	fmt.Fprintf(buf, "  %-12s %8s %16s %16s %14s\n", "Due Date", "Target", "Required", "Paid", "Shortfall")
	for _, row := range ws.Schedule {
		fmt.Fprintf(buf, "  %-12s %8s %16s %16s %14s\n",
			row.DueDate.Format("02 Jan 2006"),
			FormatPercent(row.CumulativePercent),
			GroupINR(row.Required),
			GroupINR(row.Paid),
			GroupINR(row.Shortfall))
	}
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "SETTLEMENT")
	fmt.Fprintln(buf, strings.Repeat("-", 30))
	fmt.Fprintf(buf, "  Final Tax:             %s\n", FormatINR(ws.FinalTax))
	fmt.Fprintf(buf, "  TDS Credited:          %s\n", FormatINR(ws.TDSCredited))
	fmt.Fprintf(buf, "  Advance Tax Due:       %s\n", FormatINR(ws.AdvanceTaxDue))
	fmt.Fprintf(buf, "  Advance Tax Paid:      %s\n", FormatINR(ws.TotalAdvancePaid))
	fmt.Fprintf(buf, "  Interest u/s 234B:     %s\n", FormatINR(ws.Interest234B))
	fmt.Fprintf(buf, "  Interest u/s 234C:     %s\n", FormatINR(ws.Interest234C))
	fmt.Fprintf(buf, "  NET PAYABLE:           %s\n", FormatINR(ws.NetPayable))

	return buf.Bytes(), nil
}

func writeGainLine(buf *bytes.Buffer, label string, amount decimal.Decimal) {
	if amount.IsZero() {
		return
	}
	fmt.Fprintf(buf, "  %-24s %s\n", label+":", FormatINR(amount))
}

func writeRegime(buf *bytes.Buffer, label string, rc domain.RegimeComputation) {
	fmt.Fprintf(buf, "  %s\n", label)
	fmt.Fprintf(buf, "    Taxable Ordinary:    %s\n", FormatINR(rc.TaxableOrdinary))
	if rc.DeductionsApplied.GreaterThan(decimal.Zero) {
		fmt.Fprintf(buf, "    Deductions Applied:  %s\n", FormatINR(rc.DeductionsApplied))
	}
	slabNote := ""
	if rc.RebateApplied {
		slabNote = "  (rebate applied)"
	}
	fmt.Fprintf(buf, "    Slab Tax:            %s%s\n", FormatINR(rc.SlabTax), slabNote)
	fmt.Fprintf(buf, "    Special-Rate Tax:    %s\n", FormatINR(rc.SpecialRateTax))
	fmt.Fprintf(buf, "    Surcharge:           %s\n", FormatINR(rc.Surcharge))
	fmt.Fprintf(buf, "    Cess:                %s\n", FormatINR(rc.Cess))
	fmt.Fprintf(buf, "    TOTAL TAX:           %s\n", FormatINR(rc.TotalTax))
}
