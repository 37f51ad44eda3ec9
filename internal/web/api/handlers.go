package api

import (
	"bytes"
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/afuentes/centinela/internal/output"
	"github.com/afuentes/centinela/internal/store"
	"github.com/afuentes/centinela/internal/web/jobs"
	"github.com/afuentes/centinela/pkg/types"
	"github.com/go-chi/chi/v5"
)

// Summarizer produces an executive summary of a violation list. Implemented
// by *gemini.Gateway.
type Summarizer interface {
	Summarize(ctx context.Context, violations []types.Violation) (string, error)
}

// Handlers holds dependencies for the REST API handlers.
type Handlers struct {
	Manager    *jobs.Manager
	Store      *store.Store
	Summarizer Summarizer
}

// NewHandlers creates API handlers with the given dependencies.
func NewHandlers(manager *jobs.Manager, violations *store.Store, summarizer Summarizer) *Handlers {
	return &Handlers{Manager: manager, Store: violations, Summarizer: summarizer}
}

// CreateScan handles POST /api/v1/scans.
func (h *Handlers) CreateScan(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCreateScanRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	job := h.Manager.Create(req.Label, req.Modes)
	if err := h.Manager.Start(job.ID, req.Content); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to start scan: "+err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":     job.ID,
		"status": job.Status,
	})
}

// ListScans handles GET /api/v1/scans.
func (h *Handlers) ListScans(w http.ResponseWriter, r *http.Request) {
	jobList := h.Manager.List()

	type scanSummary struct {
		ID           string         `json:"id"`
		Label        string         `json:"label"`
		Status       jobs.JobStatus `json:"status"`
		Progress     int            `json:"progress"`
		CreatedAt    time.Time      `json:"created_at"`
		FindingCount int            `json:"finding_count"`
	}

	summaries := make([]scanSummary, len(jobList))
	for i, j := range jobList {
		summaries[i] = scanSummary{
			ID:           j.ID,
			Label:        j.Label,
			Status:       j.Status,
			Progress:     j.Progress,
			CreatedAt:    j.CreatedAt,
			FindingCount: j.FindingCount(),
		}
	}

	writeJSON(w, http.StatusOK, summaries)
}

// GetScan handles GET /api/v1/scans/{id}.
func (h *Handlers) GetScan(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	snap, err := h.Manager.Snapshot(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, snap)
}

// GetScanReport handles GET /api/v1/scans/{id}/report.
func (h *Handlers) GetScanReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	snap, err := h.Manager.Snapshot(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	if snap.Status != jobs.StatusCompleted || snap.Result == nil {
		writeError(w, http.StatusConflict, "scan is not yet completed")
		return
	}

	formatter := &output.HTMLFormatter{}
	var buf bytes.Buffer
	if err := formatter.Format(&buf, snap.Result); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to render report: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// DeleteScan handles DELETE /api/v1/scans/{id}.
func (h *Handlers) DeleteScan(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Manager.Delete(id); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Summary handles POST /api/v1/summary: it summarizes the violations
// matching the same filters ListViolations accepts.
func (h *Handlers) Summary(w http.ResponseWriter, r *http.Request) {
	violations := h.Store.List(filterFromQuery(r))

	summary, err := h.Summarizer.Summarize(r.Context(), violations)
	if err != nil {
		writeGatewayError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"summary": summary})
}

// ListViolations handles GET /api/v1/violations.
func (h *Handlers) ListViolations(w http.ResponseWriter, r *http.Request) {
	violations := h.Store.List(filterFromQuery(r))
	if violations == nil {
		violations = []types.Violation{}
	}
	writeJSON(w, http.StatusOK, violations)
}

// UpdateViolation handles PATCH /api/v1/violations/{id}.
func (h *Handlers) UpdateViolation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	req, err := decodeUpdateViolationRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Store.SetStatus(id, types.ViolationStatus(req.Status)); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	v, _ := h.Store.Get(id)
	writeJSON(w, http.StatusOK, v)
}

// DeleteViolation handles DELETE /api/v1/violations/{id}.
func (h *Handlers) DeleteViolation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Store.Delete(id); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Stats handles GET /api/v1/stats: the dashboard chart series.
func (h *Handlers) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"monthly": h.Store.MonthlySeries(),
		"risk":    h.Store.RiskDistribution(),
	})
}

func filterFromQuery(r *http.Request) store.Filter {
	q := r.URL.Query()
	year, _ := strconv.Atoi(q.Get("year"))
	return store.Filter{
		Status: types.ViolationStatus(q.Get("status")),
		Risk:   types.Risk(q.Get("risk")),
		Policy: q.Get("policy"),
		Year:   year,
		Month:  q.Get("month"),
		Query:  q.Get("q"),
	}
}
