package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taxgo/itr-calculator/internal/calculation"
	"github.com/taxgo/itr-calculator/internal/config"
	"github.com/taxgo/itr-calculator/internal/domain"
)

// scene identifies which view is active.
type scene int

const (
	sceneSummary scene = iota
	sceneSchedule
)

// worksheetLoadedMsg carries the computed worksheet (or the load error).
type worksheetLoadedMsg struct {
	ws  *domain.Worksheet
	err error
}

// keyMap defines the key bindings for the worksheet browser.
type keyMap struct {
	NextScene    key.Binding
	ToggleRegime key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextScene: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch view"),
		),
		ToggleRegime: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "toggle regime"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextScene, k.ToggleRegime, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.NextScene, k.ToggleRegime, k.Quit}}
}

// Model is the worksheet browser state. The browser is read-only: it
// loads the assessment once, computes the worksheet, and renders it.
type Model struct {
	inputPath string

	width  int
	height int

	scene  scene
	regime domain.TaxRegime

	ws      *domain.Worksheet
	table   table.Model
	help    help.Model
	keys    keyMap
	loading bool
	err     error
}

// NewModel creates the browser model for an assessment file.
func NewModel(inputPath string) Model {
	return Model{
		inputPath: inputPath,
		scene:     sceneSummary,
		keys:      defaultKeyMap(),
		help:      help.New(),
		loading:   true,
		width:     80,
		height:    24,
	}
}

// Init kicks off the load-and-compute command.
func (m Model) Init() tea.Cmd {
	return loadWorksheetCmd(m.inputPath)
}

// loadWorksheetCmd parses the assessment and computes its worksheet.
func loadWorksheetCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		assessment, err := parser.LoadFromFile(path)
		if err != nil {
			return worksheetLoadedMsg{err: err}
		}
		ws, err := calculation.NewEngine().GenerateWorksheet(assessment)
		return worksheetLoadedMsg{ws: ws, err: err}
	}
}
