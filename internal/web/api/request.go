package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// defaultLabel names a scan whose submitter provided no file name or URL.
const defaultLabel = "App Escaneada"

// CreateScanRequest is the JSON body for POST /api/v1/scans.
type CreateScanRequest struct {
	Content string   `json:"content"`
	Label   string   `json:"label"`
	Modes   []string `json:"modes"`
}

// decodeCreateScanRequest reads and validates the request body.
func decodeCreateScanRequest(r *http.Request) (*CreateScanRequest, error) {
	var req CreateScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	if req.Content == "" {
		return nil, fmt.Errorf("content is required")
	}
	if req.Label == "" {
		req.Label = defaultLabel
	}

	return &req, nil
}

// UpdateViolationRequest is the JSON body for PATCH /api/v1/violations/{id}.
type UpdateViolationRequest struct {
	Status string `json:"status"`
}

func decodeUpdateViolationRequest(r *http.Request) (*UpdateViolationRequest, error) {
	var req UpdateViolationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if req.Status == "" {
		return nil, fmt.Errorf("status is required")
	}
	return &req, nil
}
