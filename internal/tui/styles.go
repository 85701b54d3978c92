package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary = lipgloss.Color("33")  // blue
	colorAccent  = lipgloss.Color("214") // amber
	colorMuted   = lipgloss.Color("241")
	colorDanger  = lipgloss.Color("160")
	colorSuccess = lipgloss.Color("35")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 2).
			Margin(0, 1)

	cardLabelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	cardValueStyle = lipgloss.NewStyle().
			Bold(true)

	highlightStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorDanger).
			Padding(1, 2)

	exemptStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Padding(0, 1)
)

// scheduleTableStyles returns the bubbles table styling.
func scheduleTableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		Bold(true).
		Foreground(colorPrimary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(colorMuted)
	s.Selected = s.Selected.
		Foreground(colorAccent).
		Bold(true)
	return s
}

// metricCard renders one labeled value in a bordered card.
func metricCard(label, value string) string {
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		cardLabelStyle.Render(label),
		cardValueStyle.Render(value),
	)
	return cardStyle.Render(content)
}
