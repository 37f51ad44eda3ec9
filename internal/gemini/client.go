package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultModel is the generation model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1"

// GenerateRequest is one generation call: a single user prompt expecting a
// JSON-formatted response.
type GenerateRequest struct {
	Model  string
	Prompt string
}

// Client issues generation requests against the hosted model.
type Client interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// HTTPClient is the REST implementation of Client against the Gemini
// generateContent endpoint.
type HTTPClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewHTTPClient creates a client that authenticates with the given API key.
func NewHTTPClient(apiKey string) *HTTPClient {
	return &HTTPClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 120 * time.Second},
	}
}

// generateContent wire types. Only the fields this application reads and
// writes are modeled.
type generatePayload struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string `json:"responseMimeType"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Generate sends the prompt and returns the raw response text. Provider
// errors carry the HTTP status and message so callers can classify them.
func (c *HTTPClient) Generate(ctx context.Context, genReq GenerateRequest) (string, error) {
	model := genReq.Model
	if model == "" {
		model = DefaultModel
	}

	payload := generatePayload{
		Contents: []content{
			{Role: "user", Parts: []part{{Text: genReq.Prompt}}},
		},
		GenerationConfig: generationConfig{ResponseMIMEType: "application/json"},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20)) // 4 MB limit
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	var decoded generateResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("decoding response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := decoded.errorMessage()
		return "", fmt.Errorf("gemini API error %d: %s", resp.StatusCode, msg)
	}

	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini response has no candidates")
	}

	return decoded.Candidates[0].Content.Parts[0].Text, nil
}

func (r *generateResponse) errorMessage() string {
	if r.Error == nil {
		return "unknown error"
	}
	if r.Error.Status != "" {
		return fmt.Sprintf("%s: %s", r.Error.Status, r.Error.Message)
	}
	return r.Error.Message
}
