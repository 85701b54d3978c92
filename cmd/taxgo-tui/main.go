package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/taxgo/itr-calculator/internal/tui"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: taxgo-tui <assessment-file>")
		os.Exit(1)
	}
	inputPath := os.Args[1]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		fmt.Printf("Error: assessment file not found: %s\n", inputPath)
		os.Exit(1)
	}

	p := tea.NewProgram(
		tui.NewModel(inputPath),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
