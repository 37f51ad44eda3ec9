// Package sanitize repairs untrusted model output into valid domain values.
// Nothing outside this package consumes raw model responses directly.
package sanitize

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/afuentes/centinela/pkg/types"
)

// Placeholder text substituted when the model omits finding fields.
const (
	PlaceholderSnippet  = "/* Ver análisis del experto para más detalles */"
	PlaceholderAnalysis = "Se detectó una vulnerabilidad potencial que requiere revisión manual."
)

// Score caps applied when a critical or high finding is present. A result
// with such a finding cannot keep a near-perfect score.
const (
	scoreCapTrigger = 80
	architectureCap = 75
	dataSecurityCap = 70
)

// ParseError reports a response that is not valid JSON after fence stripping.
// Raw holds the original text for diagnosis.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("la respuesta de la IA no tiene un formato JSON válido: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ExtractJSON strips an optional markdown code fence (```json ... ``` or
// ``` ... ```) from the text and parses the remainder as a JSON object.
func ExtractJSON(text string) (map[string]any, error) {
	cleaned := strings.TrimSpace(text)

	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimPrefix(cleaned, "json")
		if idx := strings.LastIndex(cleaned, "```"); idx >= 0 {
			cleaned = cleaned[:idx]
		}
		cleaned = strings.TrimSpace(cleaned)
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(cleaned), &obj); err != nil {
		return nil, &ParseError{Raw: text, Err: err}
	}
	return obj, nil
}

// ScanResult converts a loosely-shaped response object into a valid
// ScanResult. It is total over any object shape: missing or mistyped fields
// get defaults, scores are coerced and capped, and every finding ends up with
// non-empty snippet and analysis text. Applying it to an already-sanitized
// value changes nothing.
func ScanResult(raw map[string]any, appName string) types.ScanResult {
	result := types.ScanResult{
		Classification:      asString(raw["classification"]),
		ArchitectureScore:   asInt(raw["architectureScore"]),
		DataSecurityScore:   asInt(raw["dataSecurityScore"]),
		Description:         asString(raw["description"]),
		ArchitectureDetails: asDetailList(raw["architectureDetails"]),
		DataSecurityDetails: asDetailList(raw["dataSecurityDetails"]),
		Findings:            asFindings(raw["findings"]),
		AppName:             appName,
	}

	// A critical or high finding can never coexist with a near-perfect score.
	hasCritical := false
	for _, f := range result.Findings {
		if f.Status == types.FindingCritical || f.Status == types.FindingHigh {
			hasCritical = true
			break
		}
	}
	if hasCritical {
		if result.ArchitectureScore > scoreCapTrigger {
			result.ArchitectureScore = architectureCap
		}
		if result.DataSecurityScore > scoreCapTrigger {
			result.DataSecurityScore = dataSecurityCap
		}
	}

	return result
}

func asFindings(v any) []types.ScanFinding {
	list, ok := v.([]any)
	if !ok {
		return []types.ScanFinding{}
	}

	findings := make([]types.ScanFinding, 0, len(list))
	for _, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		f := types.ScanFinding{
			File:     asString(obj["file"]),
			Policy:   asString(obj["policy"]),
			Status:   types.FindingStatus(asString(obj["status"])),
			Line:     asInt(obj["line"]),
			Language: asString(obj["language"]),
			Snippet:  asString(obj["snippet"]),
			Analysis: asString(obj["analysis"]),
		}
		if f.Snippet == "" {
			f.Snippet = PlaceholderSnippet
		}
		if f.Analysis == "" {
			f.Analysis = PlaceholderAnalysis
		}
		if f.Line < 0 {
			f.Line = 0
		}
		findings = append(findings, f)
	}
	return findings
}

func asDetailList(v any) []map[string]any {
	list, ok := v.([]any)
	if !ok {
		return []map[string]any{}
	}
	details := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if obj, ok := item.(map[string]any); ok {
			details = append(details, obj)
		}
	}
	return details
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// asInt coerces JSON numbers and numeric strings; anything else is 0.
func asInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0
		}
		return int(i)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}
