package output

import (
	"fmt"
	"io"

	"github.com/afuentes/centinela/pkg/types"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// TableFormatter renders the audit result as a colored terminal table.
type TableFormatter struct{}

func (f *TableFormatter) Format(w io.Writer, result *types.ScanResult) error {
	fmt.Fprintf(w, "\n[%s] %s\n", result.AppName, colorClassification(result.Classification))
	fmt.Fprintf(w, "  Arquitectura: %s/100 — Seguridad de Datos: %s/100\n",
		colorScore(result.ArchitectureScore), colorScore(result.DataSecurityScore))
	if result.Description != "" {
		fmt.Fprintf(w, "  %s\n", result.Description)
	}

	findings := sortedFindings(result)
	if len(findings) == 0 {
		fmt.Fprintln(w, "  Sin hallazgos.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Severidad", "Archivo", "Política", "Análisis"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetColumnSeparator("│")

	for _, finding := range findings {
		location := finding.File
		if finding.Line > 0 {
			location = fmt.Sprintf("%s:%d", finding.File, finding.Line)
		}
		table.Append([]string{colorFindingStatus(finding.Status), location, finding.Policy, finding.Analysis})
	}

	table.Render()

	fmt.Fprintf(w, "  Resumen: %s\n", summaryLine(countFindings(findings)))
	return nil
}

func colorFindingStatus(s types.FindingStatus) string {
	switch s {
	case types.FindingCritical:
		return color.RedString(string(s))
	case types.FindingHigh:
		return color.RedString(string(s))
	case types.FindingMedium:
		return color.YellowString(string(s))
	case types.FindingInfo:
		return color.WhiteString(string(s))
	default:
		return string(s)
	}
}

func colorClassification(c string) string {
	if c == "" {
		return "Sin clasificación"
	}
	return color.New(color.Bold).Sprint(c)
}

func colorScore(score int) string {
	switch {
	case score >= 80:
		return color.GreenString("%d", score)
	case score >= 50:
		return color.YellowString("%d", score)
	default:
		return color.RedString("%d", score)
	}
}
