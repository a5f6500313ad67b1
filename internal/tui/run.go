package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/theme"
)

var runProgram = func(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m, tea.WithAltScreen()).Run()
}

// Browse runs the terminal browser over cat until the user quits.
func Browse(cat *catalog.Catalog, pageSize int, initial theme.Name) error {
	m := NewModel(catalog.NewBrowser(cat, pageSize), initial)

	final, err := runProgram(m)
	if err != nil {
		return fmt.Errorf("terminal browser: %w", err)
	}
	if _, ok := final.(Model); !ok {
		return fmt.Errorf("unexpected program result")
	}
	return nil
}
