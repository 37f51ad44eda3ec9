package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/afuentes/centinela/internal/gemini"
	"github.com/afuentes/centinela/internal/tui/styles"
	"github.com/afuentes/centinela/pkg/types"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Auditor runs a single expert audit. Implemented by *gemini.Gateway.
type Auditor interface {
	Scan(ctx context.Context, req gemini.ScanRequest, obs gemini.Observer) (*types.ScanResult, error)
}

// AuditCompleteMsg is sent when an audit finishes.
type AuditCompleteMsg struct {
	Result types.ScanResult
}

// auditErrorMsg is sent when an audit encounters an error.
type auditErrorMsg struct {
	err error
}

// AuditModel is the view model for the audit progress view.
type AuditModel struct {
	spinner spinner.Model
	auditor Auditor
	content string
	label   string
	done    bool
	err     string
	result  types.ScanResult
}

// NewAuditModel creates an audit progress view for the given content.
func NewAuditModel(auditor Auditor, content, label string) AuditModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.ColorAccent)

	return AuditModel{
		spinner: sp,
		auditor: auditor,
		content: content,
		label:   label,
	}
}

// Init starts the spinner and launches the audit.
func (m AuditModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runAudit())
}

// Update handles spinner ticks and audit completion.
func (m AuditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case AuditCompleteMsg:
		m.done = true
		m.result = msg.Result
		return m, nil

	case auditErrorMsg:
		m.done = true
		m.err = msg.err.Error()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the audit progress.
func (m AuditModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Centinela — Modo Interactivo"))
	b.WriteString("\n\n")

	if m.done {
		if m.err != "" {
			b.WriteString(styles.ErrorStyle.Render(fmt.Sprintf("La auditoría falló: %s", m.err)))
		} else {
			b.WriteString(fmt.Sprintf("¡Auditoría completada! %d hallazgos.\n",
				len(m.result.Findings)))
		}
	} else {
		b.WriteString(fmt.Sprintf("%s Auditando %s...\n",
			m.spinner.View(),
			styles.SelectedStyle.Render(m.label)))
		b.WriteString("  Esto puede tardar mientras la IA analiza el contenido.\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("ctrl+c salir"))

	return b.String()
}

func (m AuditModel) runAudit() tea.Cmd {
	auditor := m.auditor
	req := gemini.ScanRequest{Content: m.content, Label: m.label}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		result, err := auditor.Scan(ctx, req, nil)
		if err != nil {
			return auditErrorMsg{err: err}
		}
		return AuditCompleteMsg{Result: *result}
	}
}
