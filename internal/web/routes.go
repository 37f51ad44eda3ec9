package web

import (
	"encoding/json"
	"io/fs"
	"net/http"

	"github.com/afuentes/centinela/internal/web/api"
	"github.com/afuentes/centinela/internal/web/pages"
	"github.com/go-chi/chi/v5"
)

// registerRoutes mounts all route groups on the server's router.
func (s *Server) registerRoutes() {
	pageHandlers := pages.NewPageHandlers(s.manager, s.store)
	apiHandlers := api.NewHandlers(s.manager, s.store, s.gateway)

	// Login and health stay outside the auth wall.
	s.router.Get("/login", s.handleLoginPage)
	s.router.Post("/login", s.handleLogin)
	s.router.Get("/logout", s.handleLogout)
	s.router.Get("/health", s.handleHealth)

	// Page routes
	s.router.Group(func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Get("/", pageHandlers.Dashboard)
		r.Get("/scanner", pageHandlers.Scanner)
		r.Get("/scans/{id}", pageHandlers.ScanDetail)
		r.Get("/policies", pageHandlers.Policies)
	})

	// REST API
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Post("/scans", apiHandlers.CreateScan)
		r.Get("/scans", apiHandlers.ListScans)
		r.Get("/scans/{id}", apiHandlers.GetScan)
		r.Get("/scans/{id}/report", apiHandlers.GetScanReport)
		r.Delete("/scans/{id}", apiHandlers.DeleteScan)
		r.Post("/summary", apiHandlers.Summary)
		r.Get("/violations", apiHandlers.ListViolations)
		r.Patch("/violations/{id}", apiHandlers.UpdateViolation)
		r.Delete("/violations/{id}", apiHandlers.DeleteViolation)
		r.Get("/stats", apiHandlers.Stats)
	})

	s.router.NotFound(pageHandlers.NotFound)

	// Embedded static files
	staticSub, _ := fs.Sub(staticFS, "static")
	s.router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))
}

// handleHealth returns a simple health check response.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
