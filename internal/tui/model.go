package tui

import (
	"github.com/afuentes/centinela/internal/store"
	"github.com/afuentes/centinela/internal/tui/views"
	tea "github.com/charmbracelet/bubbletea"
)

// appState represents which view is currently active.
type appState int

const (
	stateMenu       appState = iota // Action selection menu
	stateViolations                 // Violations browser
	stateInput                      // Audit file path input
	stateAudit                      // Audit in progress
	stateResults                    // Audit result display
)

// menuItems are the fixed actions of the interactive mode.
var menuItems = []views.MenuItem{
	{Name: "violaciones", Description: "Explorar las violaciones registradas"},
	{Name: "auditar", Description: "Ejecutar una Auditoría de Experto sobre un archivo"},
}

// Model is the root Bubble Tea model that manages view transitions.
type Model struct {
	state   appState
	store   *store.Store
	auditor views.Auditor
	width   int
	height  int

	// Sub-models for each view.
	menu       views.MenuModel
	violations views.ViolationsModel
	input      views.InputModel
	audit      views.AuditModel
	results    views.ResultsModel
}

// NewModel creates a root model over the violation store and auditor.
func NewModel(violations *store.Store, auditor views.Auditor) Model {
	return Model{
		state:   stateMenu,
		store:   violations,
		auditor: auditor,
		menu:    views.NewMenuModel(menuItems),
		input:   views.NewInputModel(),
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return m.input.Init()
}

// Update handles messages and manages state transitions.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			return m.handleBack()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	switch m.state {
	case stateMenu:
		return m.updateMenu(msg)
	case stateViolations:
		return m.updateViolations(msg)
	case stateInput:
		return m.updateInput(msg)
	case stateAudit:
		return m.updateAudit(msg)
	case stateResults:
		return m.updateResults(msg)
	}

	return m, nil
}

// View renders the current view.
func (m Model) View() string {
	switch m.state {
	case stateMenu:
		return m.menu.View()
	case stateViolations:
		return m.violations.View()
	case stateInput:
		return m.input.View()
	case stateAudit:
		return m.audit.View()
	case stateResults:
		return m.results.View()
	}
	return ""
}

func (m Model) handleBack() (tea.Model, tea.Cmd) {
	switch m.state {
	case stateViolations, stateInput, stateResults:
		m.state = stateMenu
		return m, nil
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
		selected := m.menu.Selected()
		if selected != nil {
			switch selected.Name {
			case "violaciones":
				m.violations = views.NewViolationsModel(m.store.List(store.Filter{}))
				m.state = stateViolations
				return m, nil
			case "auditar":
				m.input = views.NewInputModel()
				m.state = stateInput
				return m, m.input.Init()
			}
		}
	}

	updated, cmd := m.menu.Update(msg)
	m.menu = updated.(views.MenuModel)
	return m, cmd
}

func (m Model) updateViolations(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.violations.Update(msg)
	m.violations = updated.(views.ViolationsModel)
	return m, cmd
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
		content, label, err := m.input.ValidatedContent()
		if err == nil {
			m.audit = views.NewAuditModel(m.auditor, content, label)
			m.state = stateAudit
			return m, m.audit.Init()
		}
	}

	updated, cmd := m.input.Update(msg)
	m.input = updated.(views.InputModel)
	return m, cmd
}

func (m Model) updateAudit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if auditMsg, ok := msg.(views.AuditCompleteMsg); ok {
		m.results = views.NewResultsModel(auditMsg.Result)
		m.state = stateResults
		return m, nil
	}

	updated, cmd := m.audit.Update(msg)
	m.audit = updated.(views.AuditModel)
	return m, cmd
}

func (m Model) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.results.Update(msg)
	m.results = updated.(views.ResultsModel)
	return m, cmd
}
