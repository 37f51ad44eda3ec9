package views

import (
	"fmt"
	"os"
	"strings"

	"github.com/afuentes/centinela/internal/tui/styles"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// InputModel is the view model for the audit file path input.
type InputModel struct {
	textInput textinput.Model
	err       string
}

// NewInputModel creates a new audit input view.
func NewInputModel() InputModel {
	ti := textinput.New()
	ti.Placeholder = "p. ej. ./main.go o /ruta/al/archivo"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50
	ti.PromptStyle = styles.CursorStyle
	ti.TextStyle = styles.SelectedStyle

	return InputModel{textInput: ti}
}

// Init returns the text input blink command.
func (m InputModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input events.
func (m InputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
		if _, _, err := m.ValidatedContent(); err != nil {
			m.err = err.Error()
			return m, nil
		}
		m.err = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.err = ""
	return m, cmd
}

// View renders the file path input form.
func (m InputModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Centinela — Modo Interactivo"))
	b.WriteString("\n\n")
	b.WriteString(styles.HeaderStyle.Render("Auditoría de Experto"))
	b.WriteString("\n")
	b.WriteString("Introduce la ruta del archivo a auditar:\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n")

	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorStyle.Render(m.err))
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("enter enviar • esc volver"))

	return b.String()
}

// ValidatedContent reads the entered file and returns its content and a
// display label, or an error if the path is empty or unreadable.
func (m InputModel) ValidatedContent() (content, label string, err error) {
	path := strings.TrimSpace(m.textInput.Value())
	if path == "" {
		return "", "", fmt.Errorf("la ruta del archivo es obligatoria")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("no se pudo leer %s: %w", path, err)
	}

	parts := strings.Split(path, "/")
	return string(data), parts[len(parts)-1], nil
}
