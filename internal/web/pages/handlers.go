package pages

import (
	"net/http"
	"strconv"

	"github.com/afuentes/centinela/internal/catalog"
	"github.com/afuentes/centinela/internal/store"
	"github.com/afuentes/centinela/internal/web/jobs"
	"github.com/afuentes/centinela/internal/web/templates"
	"github.com/afuentes/centinela/pkg/types"
	"github.com/go-chi/chi/v5"
)

// DashboardData is the template data for the violations dashboard.
type DashboardData struct {
	Violations []types.Violation
	Monthly    []store.MonthCount
	RiskDist   []store.RiskCount
	Statuses   []types.ViolationStatus
	Risks      []types.Risk
	Filter     store.Filter
}

// ScannerData is the template data for the external scanner page.
type ScannerData struct {
	Policies   []types.Policy
	Jobs       []jobs.Job
	HasRunning bool
}

// ScanDetailData is the template data for the scan detail page.
type ScanDetailData struct {
	Job jobs.Job
}

// PoliciesData is the template data for the policy catalog page.
type PoliciesData struct {
	Policies []types.Policy
}

// NotFoundData is the template data for the 404 page.
type NotFoundData struct {
	Message string
}

// PageHandlers serves the HTML pages of the web application.
type PageHandlers struct {
	manager *jobs.Manager
	store   *store.Store
}

// NewPageHandlers creates a new PageHandlers.
func NewPageHandlers(manager *jobs.Manager, violations *store.Store) *PageHandlers {
	return &PageHandlers{
		manager: manager,
		store:   violations,
	}
}

// Dashboard renders the violations dashboard with filters and charts.
func (h *PageHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	year, _ := strconv.Atoi(q.Get("year"))
	filter := store.Filter{
		Status: types.ViolationStatus(q.Get("status")),
		Risk:   types.Risk(q.Get("risk")),
		Policy: q.Get("policy"),
		Year:   year,
		Month:  q.Get("month"),
		Query:  q.Get("q"),
	}

	data := DashboardData{
		Violations: h.store.List(filter),
		Monthly:    h.store.MonthlySeries(),
		RiskDist:   h.store.RiskDistribution(),
		Statuses: []types.ViolationStatus{
			types.StatusFlagged, types.StatusInReview, types.StatusResolved,
			types.StatusBanned, types.StatusAppeal,
		},
		Risks: []types.Risk{
			types.RiskCritical, types.RiskHigh, types.RiskMedium, types.RiskLow,
		},
		Filter: filter,
	}
	if err := templates.RenderPage(w, "dashboard.html", data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Scanner renders the external scanner page with the audit form and history.
func (h *PageHandlers) Scanner(w http.ResponseWriter, r *http.Request) {
	jobList := h.manager.List()
	hasRunning := false
	for _, j := range jobList {
		if j.Status == jobs.StatusRunning || j.Status == jobs.StatusPending {
			hasRunning = true
			break
		}
	}
	data := ScannerData{
		Policies:   catalog.All(),
		Jobs:       jobList,
		HasRunning: hasRunning,
	}
	if err := templates.RenderPage(w, "scanner.html", data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// ScanDetail renders the detail page for a single audit.
func (h *PageHandlers) ScanDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	snap, err := h.manager.Snapshot(id)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		templates.RenderPage(w, "not_found.html", NotFoundData{
			Message: "Auditoría no encontrada.",
		})
		return
	}

	data := ScanDetailData{Job: snap}
	if err := templates.RenderPage(w, "scan_detail.html", data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Policies renders the policy catalog page.
func (h *PageHandlers) Policies(w http.ResponseWriter, r *http.Request) {
	data := PoliciesData{Policies: catalog.All()}
	if err := templates.RenderPage(w, "policies.html", data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// NotFound renders the 404 page.
func (h *PageHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	templates.RenderPage(w, "not_found.html", NotFoundData{
		Message: "Página no encontrada.",
	})
}
