package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/afuentes/centinela/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *types.ScanResult {
	return &types.ScanResult{
		Classification:    "Riesgo Alto",
		ArchitectureScore: 62,
		DataSecurityScore: 45,
		Description:       "La aplicación expone datos sensibles.",
		AppName:           "EasyScraper",
		Findings: []types.ScanFinding{
			{File: "util.js", Policy: "Política General", Status: types.FindingInfo, Line: 3, Snippet: "let x;", Analysis: "Sin impacto."},
			{File: "index.html", Policy: "Malware, phishing o suplantación de identidad", Status: types.FindingCritical, Line: 12, Snippet: "<script src=\"evil\">", Analysis: "Script externo malicioso."},
		},
	}
}

func TestGetFormatter(t *testing.T) {
	tests := []struct {
		format string
		want   Formatter
	}{
		{"table", &TableFormatter{}},
		{"json", &JSONFormatter{}},
		{"markdown", &MarkdownFormatter{}},
		{"html", &HTMLFormatter{}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			f, err := GetFormatter(tt.format)
			require.NoError(t, err)
			assert.IsType(t, tt.want, f)
		})
	}
}

func TestGetFormatter_Unknown(t *testing.T) {
	_, err := GetFormatter("xml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown")
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{}
	err := f.Format(&buf, sampleResult())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "EasyScraper")
	assert.Contains(t, out, "Riesgo Alto")
	assert.Contains(t, out, "index.html:12")
	assert.Contains(t, out, "2 hallazgos")
	assert.Contains(t, out, "1 críticos")
}

func TestTableFormatter_NoFindings(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{}
	err := f.Format(&buf, &types.ScanResult{AppName: "Limpia"})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Sin hallazgos.")
}

func TestJSONFormatter_RoundTrips(t *testing.T) {
	var buf bytes.Buffer
	f := &JSONFormatter{}
	err := f.Format(&buf, sampleResult())
	require.NoError(t, err)

	var decoded types.ScanResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "EasyScraper", decoded.AppName)
	assert.Len(t, decoded.Findings, 2)
}

func TestMarkdownFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &MarkdownFormatter{}
	err := f.Format(&buf, sampleResult())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "## Auditoría — EasyScraper")
	assert.Contains(t, out, "| Severidad | Archivo | Política | Análisis |")
	assert.Contains(t, out, "**Crítico**")
	// Critical sorts before informational.
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("index.html")), bytes.Index(buf.Bytes(), []byte("util.js")))
}

func TestMarkdownFormatter_EscapesPipes(t *testing.T) {
	result := &types.ScanResult{
		AppName: "App",
		Findings: []types.ScanFinding{
			{File: "a.go", Status: types.FindingMedium, Analysis: "usa a | b", Snippet: "x"},
		},
	}

	var buf bytes.Buffer
	f := &MarkdownFormatter{}
	require.NoError(t, f.Format(&buf, result))
	assert.Contains(t, buf.String(), `a \| b`)
}

func TestHTMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &HTMLFormatter{}
	err := f.Format(&buf, sampleResult())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "EasyScraper")
	assert.Contains(t, out, `class="badge critical"`)
	assert.Contains(t, out, "62/100")
}

func TestHTMLFormatter_EscapesContent(t *testing.T) {
	result := &types.ScanResult{
		AppName:     "App",
		Description: "<script>alert(1)</script>",
	}

	var buf bytes.Buffer
	f := &HTMLFormatter{}
	require.NoError(t, f.Format(&buf, result))

	assert.NotContains(t, buf.String(), "<script>alert(1)</script>")
	assert.Contains(t, buf.String(), "&lt;script&gt;")
}

func TestFormatters_DoNotMutateResult(t *testing.T) {
	result := sampleResult()
	first := result.Findings[0].File

	var buf bytes.Buffer
	for _, name := range []string{"table", "json", "markdown", "html"} {
		f, err := GetFormatter(name)
		require.NoError(t, err)
		require.NoError(t, f.Format(&buf, result))
	}

	assert.Equal(t, first, result.Findings[0].File)
}

func TestViolationsTable(t *testing.T) {
	var buf bytes.Buffer
	ViolationsTable(&buf, []types.Violation{
		{ID: "APP-102", Name: "EasyScraper", Policy: "Acoso", Status: types.StatusBanned, Risk: types.RiskCritical, Date: "2026-01-20"},
	})

	out := buf.String()
	assert.Contains(t, out, "APP-102")
	assert.Contains(t, out, "EasyScraper")
	assert.Contains(t, out, "1 violaciones")
}

func TestViolationsTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	ViolationsTable(&buf, nil)
	assert.Contains(t, buf.String(), "Sin violaciones registradas.")
}
