package styles

import "github.com/charmbracelet/lipgloss"

// Risk colors.
var (
	ColorCritical = lipgloss.Color("#FF0000")
	ColorHigh     = lipgloss.Color("#FF6600")
	ColorMedium   = lipgloss.Color("#FFCC00")
	ColorLow      = lipgloss.Color("#00CC00")
	ColorInfo     = lipgloss.Color("#0099FF")
	ColorMuted    = lipgloss.Color("#666666")
	ColorAccent   = lipgloss.Color("#7D56F4")
)

// Styles used across TUI views.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(ColorAccent).
			Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			MarginBottom(1)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(1, 2)

	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	CursorStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	RiskCriticalStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorCritical)
	RiskHighStyle     = lipgloss.NewStyle().Bold(true).Foreground(ColorHigh)
	RiskMediumStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorMedium)
	RiskLowStyle      = lipgloss.NewStyle().Foreground(ColorLow)
	RiskInfoStyle     = lipgloss.NewStyle().Foreground(ColorInfo)
)

// RiskStyle returns the appropriate style for a risk or finding level.
func RiskStyle(risk string) lipgloss.Style {
	switch risk {
	case "Crítico":
		return RiskCriticalStyle
	case "Alto":
		return RiskHighStyle
	case "Medio":
		return RiskMediumStyle
	case "Bajo":
		return RiskLowStyle
	case "Informativo":
		return RiskInfoStyle
	default:
		return lipgloss.NewStyle()
	}
}
