package gemini

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/afuentes/centinela/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "AIzaSyTESTKEY0000000000000000000000000"

// scriptedClient replays a fixed sequence of responses and records the
// prompts it was called with.
type scriptedClient struct {
	responses []scriptedResponse
	calls     []GenerateRequest
}

type scriptedResponse struct {
	text string
	err  error
}

func (c *scriptedClient) Generate(_ context.Context, req GenerateRequest) (string, error) {
	c.calls = append(c.calls, req)
	idx := len(c.calls) - 1
	if idx >= len(c.responses) {
		idx = len(c.responses) - 1
	}
	r := c.responses[idx]
	return r.text, r.err
}

// recordingObserver captures progress and log events.
type recordingObserver struct {
	progress []int
	logs     []string
}

func (o *recordingObserver) Progress(pct int) { o.progress = append(o.progress, pct) }
func (o *recordingObserver) Log(line string)  { o.logs = append(o.logs, line) }

func newTestGateway(client Client, key string) (*Gateway, *[]time.Duration) {
	g := NewGateway(client, func() string { return key }, "")
	var delays []time.Duration
	g.sleep = func(d time.Duration) { delays = append(delays, d) }
	return g, &delays
}

const validScanResponse = `{
	"classification": "Riesgo Alto",
	"architectureScore": 95,
	"dataSecurityScore": 88,
	"description": "Resumen ejecutivo.",
	"findings": [{"file": "main.go", "policy": "Acoso", "status": "Alto", "line": 10, "language": "go", "snippet": "x", "analysis": "y"}]
}`

func TestScan_Success(t *testing.T) {
	client := &scriptedClient{responses: []scriptedResponse{{text: validScanResponse}}}
	g, _ := newTestGateway(client, testKey)
	obs := &recordingObserver{}

	result, err := g.Scan(context.Background(), ScanRequest{Content: "code", Label: "app.go"}, obs)
	require.NoError(t, err)

	assert.Len(t, client.calls, 1)
	assert.Equal(t, "Riesgo Alto", result.Classification)
	assert.Equal(t, "app.go", result.AppName)
	// The high finding caps both scores.
	assert.Equal(t, 75, result.ArchitectureScore)
	assert.Equal(t, 70, result.DataSecurityScore)
}

func TestScan_ProgressMonotonic(t *testing.T) {
	client := &scriptedClient{responses: []scriptedResponse{{text: validScanResponse}}}
	g, _ := newTestGateway(client, testKey)
	obs := &recordingObserver{}

	_, err := g.Scan(context.Background(), ScanRequest{Content: "code", Label: "app.go"}, obs)
	require.NoError(t, err)

	require.NotEmpty(t, obs.progress)
	assert.Equal(t, 10, obs.progress[0])
	assert.Equal(t, 100, obs.progress[len(obs.progress)-1])
	for i := 1; i < len(obs.progress); i++ {
		assert.GreaterOrEqual(t, obs.progress[i], obs.progress[i-1])
	}
	assert.Contains(t, obs.progress, 40)
}

func TestScan_NilObserver(t *testing.T) {
	client := &scriptedClient{responses: []scriptedResponse{{text: validScanResponse}}}
	g, _ := newTestGateway(client, testKey)

	result, err := g.Scan(context.Background(), ScanRequest{Content: "code", Label: "app.go"}, nil)
	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestScan_MissingCredentialShortCircuit(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"empty key", ""},
		{"wrong prefix", "sk-notageminikey"},
		{"placeholder", "tu_llave_aqui"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &scriptedClient{responses: []scriptedResponse{{text: validScanResponse}}}
			g, _ := newTestGateway(client, tt.key)

			_, err := g.Scan(context.Background(), ScanRequest{Content: "x", Label: "x"}, nil)
			require.Error(t, err)

			var gerr *Error
			require.ErrorAs(t, err, &gerr)
			assert.Equal(t, KindMissingCredential, gerr.Kind)
			assert.Empty(t, client.calls, "no network call may be made without a credential")
		})
	}
}

func TestScan_RetryTimingOnTransientFailures(t *testing.T) {
	transient := errors.New("429 RESOURCE_EXHAUSTED: quota exceeded")
	client := &scriptedClient{responses: []scriptedResponse{
		{err: transient},
		{err: transient},
		{err: transient},
		{text: validScanResponse},
	}}
	g, delays := newTestGateway(client, testKey)
	obs := &recordingObserver{}

	result, err := g.Scan(context.Background(), ScanRequest{Content: "x", Label: "x"}, obs)
	require.NoError(t, err)
	assert.NotNil(t, result)

	assert.Len(t, client.calls, 4, "3 transient failures then success = 4 calls")
	require.Len(t, *delays, 3)
	assert.Equal(t, 3*time.Second, (*delays)[0])
	assert.Equal(t, 6*time.Second, (*delays)[1])
	assert.Equal(t, 12*time.Second, (*delays)[2])
}

func TestScan_RetryExhaustion(t *testing.T) {
	client := &scriptedClient{responses: []scriptedResponse{
		{err: errors.New("503 Service Unavailable: high demand")},
	}}
	g, delays := newTestGateway(client, testKey)

	_, err := g.Scan(context.Background(), ScanRequest{Content: "x", Label: "x"}, nil)
	require.Error(t, err)

	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, KindTransient, gerr.Kind)
	assert.Len(t, client.calls, 4, "1 initial + 3 retries")
	assert.Len(t, *delays, 3)
}

func TestScan_NoRetryOnPermanentFailure(t *testing.T) {
	client := &scriptedClient{responses: []scriptedResponse{
		{err: errors.New("400 INVALID_ARGUMENT: bad request")},
	}}
	g, delays := newTestGateway(client, testKey)

	_, err := g.Scan(context.Background(), ScanRequest{Content: "x", Label: "x"}, nil)
	require.Error(t, err)

	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, KindPermanent, gerr.Kind)
	assert.Len(t, client.calls, 1)
	assert.Empty(t, *delays)
}

func TestScan_RetryLogsEveryAttempt(t *testing.T) {
	transient := errors.New("503 unavailable")
	client := &scriptedClient{responses: []scriptedResponse{
		{err: transient},
		{text: validScanResponse},
	}}
	g, _ := newTestGateway(client, testKey)
	obs := &recordingObserver{}

	_, err := g.Scan(context.Background(), ScanRequest{Content: "x", Label: "x"}, obs)
	require.NoError(t, err)

	joined := ""
	for _, l := range obs.logs {
		joined += l + "\n"
	}
	assert.Contains(t, joined, "[Fase 1]")
	assert.Contains(t, joined, "[Fase 2]")
	assert.Contains(t, joined, "Reintentando en 3s")
	assert.Contains(t, joined, "✅")
}

func TestScan_InvalidFormatKeepsRawText(t *testing.T) {
	client := &scriptedClient{responses: []scriptedResponse{
		{text: "no soy JSON"},
	}}
	g, _ := newTestGateway(client, testKey)

	_, err := g.Scan(context.Background(), ScanRequest{Content: "x", Label: "x"}, nil)
	require.Error(t, err)

	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, KindInvalidFormat, gerr.Kind)
}

func TestScan_FenceWrappedResponse(t *testing.T) {
	client := &scriptedClient{responses: []scriptedResponse{
		{text: "```json\n" + validScanResponse + "\n```"},
	}}
	g, _ := newTestGateway(client, testKey)

	result, err := g.Scan(context.Background(), ScanRequest{Content: "x", Label: "x"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Riesgo Alto", result.Classification)
}

func TestSummarize_ReturnsSummary(t *testing.T) {
	client := &scriptedClient{responses: []scriptedResponse{
		{text: `{"summary": "Dos violaciones críticas requieren atención inmediata."}`},
	}}
	g, _ := newTestGateway(client, testKey)

	summary, err := g.Summarize(context.Background(), []types.Violation{{ID: "APP-102"}})
	require.NoError(t, err)
	assert.Equal(t, "Dos violaciones críticas requieren atención inmediata.", summary)
	assert.Contains(t, client.calls[0].Prompt, `"APP-102"`)
}

func TestSummarize_FallbackWhenSummaryAbsent(t *testing.T) {
	client := &scriptedClient{responses: []scriptedResponse{
		{text: `{"otro": "campo"}`},
	}}
	g, _ := newTestGateway(client, testKey)

	summary, err := g.Summarize(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, SummaryFallback, summary)
}

func TestSummarize_NoRetryOnTransientFailure(t *testing.T) {
	// The summary path intentionally does not retry, unlike Scan.
	client := &scriptedClient{responses: []scriptedResponse{
		{err: errors.New("429 quota exceeded")},
	}}
	g, delays := newTestGateway(client, testKey)

	_, err := g.Summarize(context.Background(), nil)
	require.Error(t, err)
	assert.Len(t, client.calls, 1)
	assert.Empty(t, *delays)
}

func TestValidKey(t *testing.T) {
	assert.True(t, ValidKey("AIzaSyABC123"))
	assert.False(t, ValidKey(""))
	assert.False(t, ValidKey("sk-openai-style"))
	assert.False(t, ValidKey("aizasy-lowercase"))
}
