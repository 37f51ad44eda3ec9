package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/afuentes/centinela/pkg/types"
)

// MarkdownFormatter renders the audit result as Markdown suitable for
// pasting into docs, issues, or pull-request descriptions.
type MarkdownFormatter struct{}

func (f *MarkdownFormatter) Format(w io.Writer, result *types.ScanResult) error {
	fmt.Fprintf(w, "## Auditoría — %s\n\n", result.AppName)
	fmt.Fprintf(w, "**Clasificación:** %s  \n", result.Classification)
	fmt.Fprintf(w, "**Arquitectura:** %d/100 — **Seguridad de Datos:** %d/100\n\n", result.ArchitectureScore, result.DataSecurityScore)

	if result.Description != "" {
		fmt.Fprintf(w, "> %s\n\n", escapeMarkdown(result.Description))
	}

	findings := sortedFindings(result)
	if len(findings) == 0 {
		fmt.Fprintln(w, "_Sin hallazgos._")
		return nil
	}

	fmt.Fprintln(w, "| Severidad | Archivo | Política | Análisis |")
	fmt.Fprintln(w, "|-----------|---------|----------|----------|")

	for _, finding := range findings {
		location := finding.File
		if finding.Line > 0 {
			location = fmt.Sprintf("%s:%d", finding.File, finding.Line)
		}
		fmt.Fprintf(w, "| **%s** | %s | %s | %s |\n",
			finding.Status,
			escapeMarkdown(location),
			escapeMarkdown(finding.Policy),
			escapeMarkdown(finding.Analysis),
		)
	}

	fmt.Fprintf(w, "\n**Resumen:** %s\n", summaryLine(countFindings(findings)))
	return nil
}

// escapeMarkdown escapes pipe characters that would break Markdown tables.
func escapeMarkdown(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
