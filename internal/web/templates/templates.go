package templates

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/afuentes/centinela/pkg/types"
)

//go:embed *.html
var templateFS embed.FS

// pages holds a per-page template set, each cloned from the base layout.
var pages map[string]*template.Template

func init() {
	funcMap := template.FuncMap{
		"riskColor":   riskColor,
		"riskClass":   riskClass,
		"statusClass": statusClass,
		"scoreClass":  scoreClass,
		"truncateID":  truncateID,
		"formatTime":  formatTime,
		"countRisk":   countRisk,
		"location":    location,
		"lower":       strings.ToLower,
	}

	// Parse the base layout first.
	base := template.Must(template.New("").Funcs(funcMap).ParseFS(templateFS, "base.html"))

	// Each page template clones the base and adds its own content block.
	pageNames := []string{"dashboard.html", "scanner.html", "scan_detail.html", "policies.html", "login.html", "not_found.html"}
	pages = make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		clone := template.Must(base.Clone())
		pages[name] = template.Must(clone.ParseFS(templateFS, name))
	}
}

// RenderPage executes the named page template into the response writer.
func RenderPage(w http.ResponseWriter, name string, data interface{}) error {
	tmpl, ok := pages[name]
	if !ok {
		return fmt.Errorf("render template %q: template not found", name)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		return fmt.Errorf("render template %q: %w", name, err)
	}
	return nil
}

// riskColor returns a CSS color for the given risk level.
func riskColor(r types.Risk) string {
	switch r {
	case types.RiskCritical:
		return "#dc2626"
	case types.RiskHigh:
		return "#ea580c"
	case types.RiskMedium:
		return "#ca8a04"
	case types.RiskLow:
		return "#0891b2"
	default:
		return "#6b7280"
	}
}

// riskClass returns a CSS class name for the given risk level.
func riskClass(r types.Risk) string {
	switch r {
	case types.RiskCritical:
		return "critical"
	case types.RiskHigh:
		return "high"
	case types.RiskMedium:
		return "medium"
	case types.RiskLow:
		return "low"
	default:
		return "info"
	}
}

// statusClass returns a CSS class name for a violation status.
func statusClass(s types.ViolationStatus) string {
	switch s {
	case types.StatusFlagged:
		return "flagged"
	case types.StatusInReview:
		return "in-review"
	case types.StatusResolved:
		return "resolved"
	case types.StatusBanned:
		return "banned"
	case types.StatusAppeal:
		return "appeal"
	default:
		return "unknown"
	}
}

// scoreClass buckets a 0-100 score for coloring.
func scoreClass(score int) string {
	switch {
	case score >= 80:
		return "score-good"
	case score >= 50:
		return "score-warn"
	default:
		return "score-bad"
	}
}

// truncateID shortens a UUID for display.
func truncateID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// formatTime formats a time for display.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04:05")
}

// countRisk counts violations with the given risk level.
func countRisk(violations []types.Violation, risk string) int {
	n := 0
	for _, v := range violations {
		if string(v.Risk) == risk {
			n++
		}
	}
	return n
}

// location renders a file:line reference for a finding.
func location(f types.ScanFinding) string {
	if f.Line > 0 {
		return fmt.Sprintf("%s:%d", f.File, f.Line)
	}
	return f.File
}
