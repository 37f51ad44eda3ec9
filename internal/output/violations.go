package output

import (
	"fmt"
	"io"

	"github.com/afuentes/centinela/pkg/types"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// ViolationsTable renders a violation list as a colored terminal table.
func ViolationsTable(w io.Writer, violations []types.Violation) {
	if len(violations) == 0 {
		fmt.Fprintln(w, "Sin violaciones registradas.")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Aplicación", "Política", "Estado", "Riesgo", "Fecha"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetColumnSeparator("│")

	for _, v := range violations {
		table.Append([]string{v.ID, v.Name, v.Policy, string(v.Status), colorRisk(v.Risk), v.Date})
	}

	table.Render()
	fmt.Fprintf(w, "  %d violaciones\n", len(violations))
}

func colorRisk(r types.Risk) string {
	switch r {
	case types.RiskCritical:
		return color.RedString(string(r))
	case types.RiskHigh:
		return color.RedString(string(r))
	case types.RiskMedium:
		return color.YellowString(string(r))
	case types.RiskLow:
		return color.CyanString(string(r))
	default:
		return string(r)
	}
}
