package tui

import (
	"fmt"

	"github.com/afuentes/centinela/internal/store"
	"github.com/afuentes/centinela/internal/tui/views"
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive TUI over the violation store and auditor.
func Run(violations *store.Store, auditor views.Auditor) error {
	m := NewModel(violations, auditor)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
