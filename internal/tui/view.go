package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/taxgo/itr-calculator/internal/domain"
	"github.com/taxgo/itr-calculator/internal/output"
)

// View renders the current state of the browser.
func (m Model) View() string {
	if m.loading {
		return subtitleStyle.Render("Computing worksheet...")
	}
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}
	if m.ws == nil {
		return subtitleStyle.Render("No worksheet loaded")
	}

	title := titleStyle.Render(fmt.Sprintf("Income Tax Worksheet FY %d-%d", m.ws.FiscalYear, (m.ws.FiscalYear+1)%100))
	if m.ws.Taxpayer != "" {
		title = lipgloss.JoinHorizontal(lipgloss.Top, title, subtitleStyle.Render(m.ws.Taxpayer))
	}

	var content string
	switch m.scene {
	case sceneSchedule:
		content = m.renderSchedule()
	default:
		content = m.renderSummary()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		content,
		"",
		m.help.View(m.keys),
	)
}

// renderSummary shows the headline figures and the regime breakdown for
// the currently toggled regime.
func (m Model) renderSummary() string {
	ws := m.ws

	cards := lipgloss.JoinHorizontal(
		lipgloss.Top,
		metricCard("Total Income", output.FormatINR(ws.TotalIncome)),
		metricCard("Final Tax", output.FormatINR(ws.FinalTax)),
		metricCard("Interest 234B+234C", output.FormatINR(ws.TotalInterest())),
		metricCard("Net Payable", output.FormatINR(ws.NetPayable)),
	)

	rc := ws.NewRegime
	if m.regime == domain.RegimeOld {
		rc = ws.OldRegime
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s regime", strings.ToUpper(string(rc.Regime)))
	if rc.Regime == ws.Recommended {
		b.WriteString(highlightStyle.Render("  (recommended)"))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Taxable ordinary income  %s\n", output.FormatINR(rc.TaxableOrdinary))
	if rc.DeductionsApplied.GreaterThan(decimal.Zero) {
		fmt.Fprintf(&b, "  Deductions applied       %s\n", output.FormatINR(rc.DeductionsApplied))
	}
	rebate := ""
	if rc.RebateApplied {
		rebate = highlightStyle.Render("  rebate")
	}
	fmt.Fprintf(&b, "  Slab tax                 %s%s\n", output.FormatINR(rc.SlabTax), rebate)
	fmt.Fprintf(&b, "  Special-rate tax         %s\n", output.FormatINR(rc.SpecialRateTax))
	fmt.Fprintf(&b, "  Surcharge                %s\n", output.FormatINR(rc.Surcharge))
	fmt.Fprintf(&b, "  Cess                     %s\n", output.FormatINR(rc.Cess))
	fmt.Fprintf(&b, "  Total tax                %s\n", output.FormatINR(rc.TotalTax))

	return lipgloss.JoinVertical(lipgloss.Left, cards, "", cardStyle.Render(b.String()))
}

// renderSchedule shows the advance-tax installment table.
func (m Model) renderSchedule() string {
	parts := []string{}
	if m.ws.AdvanceTaxExempt {
		parts = append(parts, exemptStyle.Render("Exempt from advance tax (resident senior, no business income)"))
	}
	parts = append(parts,
		subtitleStyle.Render(fmt.Sprintf("Advance tax due: %s", output.FormatINR(m.ws.AdvanceTaxDue))),
		m.table.View(),
		subtitleStyle.Render(fmt.Sprintf("234C interest: %s   234B interest: %s",
			output.FormatINR(m.ws.Interest234C), output.FormatINR(m.ws.Interest234B))),
	)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
