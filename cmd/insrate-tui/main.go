package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/insrate/insrate/internal/ratetable"
	"github.com/insrate/insrate/internal/rating"
	"github.com/insrate/insrate/internal/tui"
)

func main() {
	// Optional rating table path; default rates apply without one.
	var table *ratetable.Table
	if len(os.Args) > 1 {
		var err error
		table, err = ratetable.Load(os.Args[1])
		if err != nil {
			fmt.Printf("Warning: rating table unavailable, using default rates: %v\n", err)
			table = nil
		}
	}

	model := tui.NewModel(rating.NewEngine(table))

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
