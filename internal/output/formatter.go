package output

import (
	"fmt"
	"io"
	"sort"

	"github.com/afuentes/centinela/pkg/types"
)

// Formatter renders an audit result to a writer.
type Formatter interface {
	Format(w io.Writer, result *types.ScanResult) error
}

// GetFormatter returns the appropriate formatter for the given format string.
func GetFormatter(format string) (Formatter, error) {
	switch format {
	case "table":
		return &TableFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	case "markdown":
		return &MarkdownFormatter{}, nil
	case "html":
		return &HTMLFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (supported: table, json, markdown, html)", format)
	}
}

// sortedFindings returns the findings ordered most severe first, without
// touching the result's own slice (a ScanResult is never mutated after
// creation).
func sortedFindings(result *types.ScanResult) []types.ScanFinding {
	findings := make([]types.ScanFinding, len(result.Findings))
	copy(findings, result.Findings)
	sort.SliceStable(findings, func(i, j int) bool {
		return types.FindingRank(findings[i].Status) < types.FindingRank(findings[j].Status)
	})
	return findings
}

func countFindings(findings []types.ScanFinding) map[types.FindingStatus]int {
	counts := map[types.FindingStatus]int{}
	for _, f := range findings {
		counts[f.Status]++
	}
	return counts
}

func summaryLine(counts map[types.FindingStatus]int) string {
	total := 0
	for _, c := range counts {
		total += c
	}
	return fmt.Sprintf("%d hallazgos (%d críticos, %d altos, %d medios, %d informativos)",
		total,
		counts[types.FindingCritical],
		counts[types.FindingHigh],
		counts[types.FindingMedium],
		counts[types.FindingInfo],
	)
}
