package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taxgo/itr-calculator/internal/domain"
	"github.com/taxgo/itr-calculator/internal/output"
)

// Update handles all messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextScene):
			if m.scene == sceneSummary {
				m.scene = sceneSchedule
			} else {
				m.scene = sceneSummary
			}
			return m, nil
		case key.Matches(msg, m.keys.ToggleRegime):
			if m.regime == domain.RegimeOld {
				m.regime = domain.RegimeNew
			} else {
				m.regime = domain.RegimeOld
			}
			return m, nil
		}
		// Scrolling inside the schedule table.
		if m.scene == sceneSchedule {
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case worksheetLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.ws = msg.ws
		m.regime = msg.ws.Selected
		m.table = newScheduleTable(msg.ws)
		return m, nil
	}

	return m, nil
}

// newScheduleTable builds the installment table from the worksheet.
func newScheduleTable(ws *domain.Worksheet) table.Model {
	columns := []table.Column{
		{Title: "Due Date", Width: 13},
		{Title: "Target", Width: 7},
		{Title: "Required", Width: 15},
		{Title: "Paid", Width: 15},
		{Title: "Shortfall", Width: 15},
		{Title: "234C", Width: 13},
	}

	rows := make([]table.Row, 0, len(ws.Schedule))
	for _, r := range ws.Schedule {
		rows = append(rows, table.Row{
			r.DueDate.Format("02 Jan 2006"),
			output.FormatPercent(r.CumulativePercent),
			output.GroupINR(r.Required),
			output.GroupINR(r.Paid),
			output.GroupINR(r.Shortfall),
			output.GroupINR(r.Interest),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)
	t.SetStyles(scheduleTableStyles())
	return t
}
