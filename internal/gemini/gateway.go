// Package gemini owns every interaction with the hosted generation model:
// credential resolution, the generation call, transient-failure retry, and
// handing raw responses to the sanitizer. Callers get back either a valid
// domain value or a classified error, never a partial result.
package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/afuentes/centinela/internal/prompt"
	"github.com/afuentes/centinela/internal/sanitize"
	"github.com/afuentes/centinela/pkg/types"
)

// APIKeyPrefix is the leading characters of every valid Gemini API key.
const APIKeyPrefix = "AIzaSy"

// SummaryFallback is returned when the model answers without a summary field.
const SummaryFallback = "No se pudo generar el resumen."

// Retry policy for the scan path: 1 initial attempt plus maxRetries retries,
// delayed baseDelay×2^attempt (3s, 6s, 12s).
const (
	maxRetries = 3
	baseDelay  = 3 * time.Second
)

// ScanRequest describes one audit invocation.
type ScanRequest struct {
	// Content is the pasted code or fetched document to audit.
	Content string
	// Label is the display name or URL the content came from.
	Label string
	// Modes selects audit dimensions; empty means a comprehensive audit.
	Modes []string
}

// Gateway issues summarize and scan calls against the model. It holds no
// mutable state: the credential is re-resolved on every call and concurrent
// calls are independent.
type Gateway struct {
	client     Client
	resolveKey func() string
	model      string

	// sleep is replaceable for retry-timing tests.
	sleep func(time.Duration)
}

// NewGateway creates a gateway. resolveKey is the single
// credential-resolution function; it is consulted at call time, never cached.
func NewGateway(client Client, resolveKey func() string, model string) *Gateway {
	if model == "" {
		model = DefaultModel
	}
	return &Gateway{
		client:     client,
		resolveKey: resolveKey,
		model:      model,
		sleep:      time.Sleep,
	}
}

// ValidKey reports whether key is non-empty and carries the provider's
// known prefix. Anything else is treated as absent.
func ValidKey(key string) bool {
	return key != "" && strings.HasPrefix(key, APIKeyPrefix)
}

// Summarize asks the model for an executive summary of the given violations.
// Unlike Scan, a transient provider failure is not retried here.
func (g *Gateway) Summarize(ctx context.Context, violations []types.Violation) (string, error) {
	p := prompt.BuildSummaryPrompt(violations)

	text, err := g.client.Generate(ctx, GenerateRequest{Model: g.model, Prompt: p})
	if err != nil {
		return "", &Error{Kind: KindPermanent, Message: "error al conectar con la IA, verifica tu API Key", Err: err}
	}

	obj, err := sanitize.ExtractJSON(text)
	if err != nil {
		return "", &Error{Kind: KindInvalidFormat, Message: "la respuesta del resumen no es JSON válido", Err: err}
	}

	summary, _ := obj["summary"].(string)
	if summary == "" {
		return SummaryFallback, nil
	}
	return summary, nil
}

// Scan runs one expert audit over the request content and returns the
// sanitized result. Transient provider failures (quota, overload) are retried
// up to three times with exponential backoff; any other failure propagates
// immediately. obs receives progress and log events and may be nil.
func (g *Gateway) Scan(ctx context.Context, req ScanRequest, obs Observer) (*types.ScanResult, error) {
	obs = orNop(obs)

	key := g.resolveKey()
	if !ValidKey(key) {
		obs.Log("❌ Error: no se detectó una GEMINI_API_KEY válida en la configuración.")
		obs.Log("💡 Acción requerida: verifica tu configuración y reinicia el servidor.")
		return nil, &Error{Kind: KindMissingCredential, Message: "API Key faltante o con formato inválido"}
	}

	obs.Progress(10)
	obs.Log("🚀 Iniciando Auditoría de Experto...")
	p := prompt.BuildAuditPrompt(req.Content, req.Label, req.Modes)

	obs.Progress(40)
	text, err := g.generateWithRetry(ctx, p, obs)
	if err != nil {
		return nil, err
	}

	obj, err := sanitize.ExtractJSON(text)
	if err != nil {
		return nil, &Error{Kind: KindInvalidFormat, Message: "la respuesta de la auditoría no es JSON válido", Err: err}
	}

	result := sanitize.ScanResult(obj, req.Label)

	obs.Progress(100)
	obs.Log("✅ Análisis de profundidad completado.")
	return &result, nil
}

// generateWithRetry is the bounded retry loop around the generation call.
// Attempt N+1 never starts before attempt N's backoff delay has elapsed.
func (g *Gateway) generateWithRetry(ctx context.Context, p string, obs Observer) (string, error) {
	var lastErr *Error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		obs.Log(fmt.Sprintf("🔍 Analizando vulnerabilidades y arquitectura [Fase %d]...", attempt+1))

		text, err := g.client.Generate(ctx, GenerateRequest{Model: g.model, Prompt: p})
		if err == nil {
			return text, nil
		}

		lastErr = classify(err)
		if lastErr.Kind != KindTransient {
			return "", lastErr
		}
		if attempt == maxRetries {
			break
		}

		delay := baseDelay << attempt
		obs.Log(fmt.Sprintf("⚠️ [!] Límite de cuota o alta demanda. Reintentando en %ds...", int(delay.Seconds())))
		g.sleep(delay)
	}

	return "", lastErr
}
