package views

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/afuentes/centinela/internal/tui/styles"
	"github.com/afuentes/centinela/pkg/types"
	tea "github.com/charmbracelet/bubbletea"
)

const exportFile = "centinela-violaciones.json"

// ViolationsModel is the view model for browsing recorded violations.
type ViolationsModel struct {
	violations []types.Violation
	cursor     int
	offset     int
	maxRows    int
	exported   bool
	exportErr  string
}

// NewViolationsModel creates a violations browser over the given records.
func NewViolationsModel(violations []types.Violation) ViolationsModel {
	return ViolationsModel{
		violations: violations,
		maxRows:    15,
	}
}

// Init returns nil (no initial command).
func (m ViolationsModel) Init() tea.Cmd {
	return nil
}

// Update handles key events for scrolling and export.
func (m ViolationsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.cursor < len(m.violations)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.maxRows {
					m.offset = m.cursor - m.maxRows + 1
				}
			}
		case "e":
			m.exportJSON()
		case "q":
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the violations table with a detail box for the selection.
func (m ViolationsModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Centinela — Violaciones Registradas"))
	b.WriteString("\n\n")

	if len(m.violations) == 0 {
		b.WriteString("No hay violaciones registradas.\n")
	} else {
		b.WriteString(m.summaryLine())
		b.WriteString("\n\n")

		header := fmt.Sprintf("  %-10s %-20s %-24s %-10s %s", "ID", "APLICACIÓN", "POLÍTICA", "RIESGO", "ESTADO")
		b.WriteString(styles.HeaderStyle.Render(header))
		b.WriteString("\n")
		b.WriteString(strings.Repeat("─", 80))
		b.WriteString("\n")

		end := m.offset + m.maxRows
		if end > len(m.violations) {
			end = len(m.violations)
		}

		for i := m.offset; i < end; i++ {
			v := m.violations[i]
			cursor := "  "
			if i == m.cursor {
				cursor = styles.CursorStyle.Render("> ")
			}

			risk := styles.RiskStyle(string(v.Risk)).Render(fmt.Sprintf("%-10s", v.Risk))
			b.WriteString(fmt.Sprintf("%s%-10s %-20s %-24s %s %s\n",
				cursor,
				v.ID,
				truncate(v.Name, 20),
				truncate(v.Policy, 24),
				risk,
				styles.HelpStyle.Render(string(v.Status)),
			))
		}

		if len(m.violations) > m.maxRows {
			b.WriteString(fmt.Sprintf("\n  Mostrando %d-%d de %d violaciones\n",
				m.offset+1, end, len(m.violations)))
		}
	}

	if len(m.violations) > 0 && m.cursor < len(m.violations) {
		b.WriteString("\n")
		b.WriteString(m.detailView(m.violations[m.cursor]))
	}

	if m.exported {
		b.WriteString("\n")
		b.WriteString(styles.SelectedStyle.Render("Violaciones exportadas a " + exportFile))
	}
	if m.exportErr != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorStyle.Render(m.exportErr))
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("↑/↓ desplazar • e exportar JSON • esc volver • q salir"))

	return b.String()
}

// Cursor returns the current cursor position.
func (m ViolationsModel) Cursor() int {
	return m.cursor
}

func (m ViolationsModel) summaryLine() string {
	counts := map[types.Risk]int{}
	for _, v := range m.violations {
		counts[v.Risk]++
	}

	parts := []string{}
	for _, risk := range []types.Risk{
		types.RiskCritical, types.RiskHigh, types.RiskMedium, types.RiskLow,
	} {
		if c, ok := counts[risk]; ok && c > 0 {
			style := styles.RiskStyle(string(risk))
			parts = append(parts, style.Render(fmt.Sprintf("%s: %d", risk, c)))
		}
	}

	return fmt.Sprintf("Total: %d violaciones  [%s]", len(m.violations), strings.Join(parts, "  "))
}

func (m ViolationsModel) detailView(v types.Violation) string {
	var b strings.Builder
	b.WriteString(styles.BorderStyle.Render(
		fmt.Sprintf("Aplicación: %s\nPolítica: %s\nFecha: %s\nÁrea: %s\nUbicación: %s",
			v.Name,
			v.Policy,
			v.Date,
			v.Area,
			v.Details.Location,
		),
	))

	if v.Details.Snippet != "" {
		b.WriteString(fmt.Sprintf("\n  Snippet: %s", truncate(v.Details.Snippet, 70)))
	}
	if v.Details.Explanation != "" {
		b.WriteString(fmt.Sprintf("\n  Análisis: %s", truncate(v.Details.Explanation, 70)))
	}

	return b.String()
}

func (m *ViolationsModel) exportJSON() {
	data, err := json.MarshalIndent(m.violations, "", "  ")
	if err != nil {
		m.exportErr = fmt.Sprintf("error al exportar: %v", err)
		return
	}

	if err := os.WriteFile(exportFile, data, 0644); err != nil {
		m.exportErr = fmt.Sprintf("error al exportar: %v", err)
		return
	}

	m.exported = true
	m.exportErr = ""
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
