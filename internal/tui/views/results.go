package views

import (
	"fmt"
	"strings"

	"github.com/afuentes/centinela/internal/tui/styles"
	"github.com/afuentes/centinela/pkg/types"
	tea "github.com/charmbracelet/bubbletea"
)

// ResultsModel is the view model for displaying an audit result.
type ResultsModel struct {
	result  types.ScanResult
	cursor  int
	offset  int
	maxRows int
}

// NewResultsModel creates a results view from an audit result.
func NewResultsModel(result types.ScanResult) ResultsModel {
	return ResultsModel{
		result:  result,
		maxRows: 15,
	}
}

// Init returns nil (no initial command).
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles key events for scrolling.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.result.Findings)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.maxRows {
					m.offset = m.cursor - m.maxRows + 1
				}
			}
		case "q":
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the audit result with scores and the findings table.
func (m ResultsModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Centinela — Resultado de Auditoría"))
	b.WriteString("\n\n")

	classStyle := styles.RiskStyle(strings.TrimPrefix(m.result.Classification, "Riesgo "))
	b.WriteString(fmt.Sprintf("Clasificación: %s\n", classStyle.Render(m.result.Classification)))
	b.WriteString(fmt.Sprintf("Arquitectura: %d/100   Seguridad de Datos: %d/100\n",
		m.result.ArchitectureScore, m.result.DataSecurityScore))

	if m.result.Description != "" {
		b.WriteString("\n")
		b.WriteString(m.result.Description)
		b.WriteString("\n")
	}

	findings := m.result.Findings
	if len(findings) == 0 {
		b.WriteString("\nNo se encontraron hallazgos.\n")
	} else {
		b.WriteString("\n")
		header := fmt.Sprintf("  %-12s %-24s %s", "NIVEL", "POLÍTICA", "UBICACIÓN")
		b.WriteString(styles.HeaderStyle.Render(header))
		b.WriteString("\n")
		b.WriteString(strings.Repeat("─", 80))
		b.WriteString("\n")

		end := m.offset + m.maxRows
		if end > len(findings) {
			end = len(findings)
		}

		for i := m.offset; i < end; i++ {
			f := findings[i]
			cursor := "  "
			if i == m.cursor {
				cursor = styles.CursorStyle.Render("> ")
			}

			level := styles.RiskStyle(string(f.Status)).Render(fmt.Sprintf("%-12s", f.Status))
			loc := f.File
			if f.Line > 0 {
				loc = fmt.Sprintf("%s:%d", f.File, f.Line)
			}

			b.WriteString(fmt.Sprintf("%s%s %-24s %s\n",
				cursor, level, truncate(f.Policy, 24), styles.HelpStyle.Render(loc)))
		}

		if len(findings) > m.maxRows {
			b.WriteString(fmt.Sprintf("\n  Mostrando %d-%d de %d hallazgos\n",
				m.offset+1, end, len(findings)))
		}

		if m.cursor < len(findings) {
			b.WriteString("\n")
			b.WriteString(m.detailView(findings[m.cursor]))
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("↑/↓ desplazar • esc volver • q salir"))

	return b.String()
}

// Cursor returns the current cursor position.
func (m ResultsModel) Cursor() int {
	return m.cursor
}

func (m ResultsModel) detailView(f types.ScanFinding) string {
	var b strings.Builder
	b.WriteString(styles.BorderStyle.Render(
		fmt.Sprintf("Política: %s\nNivel: %s\nAnálisis: %s",
			f.Policy,
			f.Status,
			f.Analysis,
		),
	))

	if f.Snippet != "" {
		b.WriteString(fmt.Sprintf("\n  Snippet: %s", truncate(f.Snippet, 70)))
	}

	return b.String()
}
