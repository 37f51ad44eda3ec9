// Package prompt renders the text payloads sent to the Gemini model.
// Both builders are deterministic: the same inputs always produce the
// same rendered text.
package prompt

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/afuentes/centinela/pkg/types"
)

// MaxContentChars is the maximum number of characters of submitted content
// embedded in an audit prompt. Longer content is truncated.
const MaxContentChars = 20000

// TruncationMarker is appended when submitted content exceeds MaxContentChars.
const TruncationMarker = "...(truncado)"

// defaultModes is the phrase used when no audit modes are selected.
const defaultModes = "Auditoría Integral"

// BuildSummaryPrompt renders the executive-summary request for a list of
// violations. Violations are serialized in ID order so the rendered text does
// not depend on the order the caller holds them in.
func BuildSummaryPrompt(violations []types.Violation) string {
	sorted := make([]types.Violation, len(violations))
	copy(sorted, violations)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	serialized, err := json.Marshal(sorted)
	if err != nil {
		// Violation contains only marshalable fields; this cannot happen.
		serialized = []byte("[]")
	}

	return fmt.Sprintf(`Como experto en seguridad de aplicaciones, resume de forma ejecutiva el estado de estas violaciones detectadas: %s.
Proporciona una recomendación de prioridad en español.
FORMATO DE SALIDA (JSON): { "summary": "tu resumen aquí" }`, serialized)
}

// BuildAuditPrompt renders the expert-audit request. content is the pasted
// code or fetched document, label is the display name or URL it came from,
// and modes selects the audit dimensions (empty means a comprehensive audit).
func BuildAuditPrompt(content, label string, modes []string) string {
	truncated := content
	if len(content) > MaxContentChars {
		truncated = content[:MaxContentChars] + " " + TruncationMarker
	}

	modeList := defaultModes
	if len(modes) > 0 {
		modeList = strings.Join(modes, ", ")
	}

	return fmt.Sprintf(`Actúa como un Auditor de Ciberseguridad de Élite y Arquitecto de Sistemas Principal. Tu tarea es realizar un análisis de profundidad sobre el código o contexto proporcionado.

CONTENIDO A ANALIZAR:
Nombre: %s
Contenido: %s

MODOS SELECCIONADOS: %s

INSTRUCCIONES DE PUNTUACIÓN (ESTRICTO):
- Inicia con 100 puntos en Arquitectura y Seguridad.
- DEBES RESTAR entre 10 y 25 puntos por cada hallazgo "Crítico" o "Alto".
- Si hay un Riesgo Crítico general, los puntajes NO PUEDEN ser 100/100.

DIMENSIONES DE ANÁLISIS REQUERIDAS:
1. ARQUITECTURA DE DATOS Y FLUJO: Analiza patrones de diseño, acoplamiento, cohesión, gestión de estado y eficiencia.
2. SEGURIDAD DE DATOS DE ALTA RIGOR: Identifica falta de saneamiento, exposición de PII, gestión insegura de secretos, y riesgos de inyección (SQL, Prompt Injection, XSS) según OWASP y NIST CSF.

FORMATO DE SALIDA (JSON ESTRICTO):
{
  "classification": "Riesgo Crítico|Alto|Medio|Bajo",
  "architectureScore": 0-100,
  "dataSecurityScore": 0-100,
  "description": "Análisis ejecutivo detallado.",
  "architectureDetails": [{"failure": "string", "impact": "Crítico|Alto|Medio", "location": "string", "snippet": "string"}],
  "dataSecurityDetails": [{"failure": "string", "impact": "Crítico|Alto|Medio", "location": "string", "snippet": "string"}],
  "findings": [{"file": "string", "policy": "string", "status": "Crítico|Alto|Medio|Informativo", "line": 0, "language": "string", "snippet": "string", "analysis": "string"}]
}`, label, truncated, modeList)
}
