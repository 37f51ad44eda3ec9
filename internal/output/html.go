package output

import (
	"fmt"
	"html/template"
	"io"

	"github.com/afuentes/centinela/pkg/types"
)

// HTMLFormatter renders the audit result as a self-contained HTML report
// with styled severity badges and score cards.
type HTMLFormatter struct{}

func (f *HTMLFormatter) Format(w io.Writer, result *types.ScanResult) error {
	data := reportData{
		Result:   result,
		Findings: sortedFindings(result),
	}
	return htmlTpl.Execute(w, data)
}

type reportData struct {
	Result   *types.ScanResult
	Findings []types.ScanFinding
}

// statusClass maps a finding status to a CSS class name.
func statusClass(s types.FindingStatus) string {
	switch s {
	case types.FindingCritical:
		return "critical"
	case types.FindingHigh:
		return "high"
	case types.FindingMedium:
		return "medium"
	default:
		return "info"
	}
}

var funcMap = template.FuncMap{
	"statusClass": statusClass,
	"location": func(f types.ScanFinding) string {
		if f.Line > 0 {
			return fmt.Sprintf("%s:%d", f.File, f.Line)
		}
		return f.File
	},
	"scoreClass": func(score int) string {
		switch {
		case score >= 80:
			return "good"
		case score >= 50:
			return "warn"
		default:
			return "bad"
		}
	},
}

var htmlTpl = template.Must(template.New("report").Funcs(funcMap).Parse(fmt.Sprintf(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Centinela — Informe de Auditoría</title>
<style>%s</style>
</head>
<body>
<div class="container">
  <h1>Informe de Auditoría — {{.Result.AppName}}</h1>

  <div class="summary-bar">
    <span class="classification">{{.Result.Classification}}</span>
    <span class="score {{scoreClass .Result.ArchitectureScore}}">Arquitectura {{.Result.ArchitectureScore}}/100</span>
    <span class="score {{scoreClass .Result.DataSecurityScore}}">Seguridad de Datos {{.Result.DataSecurityScore}}/100</span>
  </div>

  {{if .Result.Description}}<p class="description">{{.Result.Description}}</p>{{end}}

  {{if not .Findings}}
    <p class="no-findings">Sin hallazgos.</p>
  {{else}}
    <table>
      <thead>
        <tr><th>Severidad</th><th>Archivo</th><th>Política</th><th>Análisis</th></tr>
      </thead>
      <tbody>
        {{range .Findings}}
        <tr>
          <td><span class="badge {{statusClass .Status}}">{{.Status}}</span></td>
          <td><code>{{location .}}</code></td>
          <td>{{.Policy}}</td>
          <td>
            {{.Analysis}}
            {{if .Snippet}}
            <details>
              <summary>Snippet</summary>
              <pre>{{.Snippet}}</pre>
            </details>
            {{end}}
          </td>
        </tr>
        {{end}}
      </tbody>
    </table>
  {{end}}
</div>
</body>
</html>`, cssStyles)))

const cssStyles = `
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:-apple-system,BlinkMacSystemFont,"Segoe UI",Roboto,Helvetica,Arial,sans-serif;
     line-height:1.6;color:#1a1a2e;background:#f5f5fa;padding:2rem}
.container{max-width:960px;margin:0 auto}
h1{margin-bottom:1rem;font-size:1.8rem}
.summary-bar{display:flex;gap:.5rem;flex-wrap:wrap;align-items:center;margin-bottom:1.5rem}
.classification{font-weight:700;padding:2px 10px;border-radius:12px;background:#1a1a2e;color:#fff}
.score{padding:2px 10px;border-radius:12px;font-weight:700;color:#fff}
.score.good{background:#2e7d32}
.score.warn{background:#f9a825;color:#333}
.score.bad{background:#d32f2f}
.badge{display:inline-block;padding:2px 10px;border-radius:12px;font-size:.8rem;font-weight:700;color:#fff}
.badge.critical{background:#d32f2f}
.badge.high{background:#e53935}
.badge.medium{background:#f9a825;color:#333}
.badge.info{background:#757575}
.description{margin-bottom:1rem}
table{width:100%;border-collapse:collapse;margin-bottom:1rem}
th,td{text-align:left;padding:.5rem .75rem;border-bottom:1px solid #e0e0e0}
th{background:#eaeaea;font-weight:600}
tr:hover{background:#f0f0ff}
details{margin-top:.4rem}
summary{cursor:pointer;color:#1565c0;font-size:.85rem}
pre{background:#1a1a2e;color:#e0e0e0;padding:.5rem;border-radius:6px;overflow-x:auto;font-size:.8rem}
code{background:#eaeaea;padding:1px 4px;border-radius:4px;font-size:.85rem}
.no-findings{color:#666;font-style:italic}
`
