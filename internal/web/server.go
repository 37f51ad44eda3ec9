package web

import (
	"embed"
	"net/http"
	"time"

	"github.com/afuentes/centinela/internal/config"
	"github.com/afuentes/centinela/internal/gemini"
	"github.com/afuentes/centinela/internal/store"
	"github.com/afuentes/centinela/internal/web/jobs"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:embed static/*
var staticFS embed.FS

// Server is the HTTP server for the Centinela web application.
type Server struct {
	router   chi.Router
	addr     string
	store    *store.Store
	gateway  *gemini.Gateway
	manager  *jobs.Manager
	sessions *sessions
	username string
	password string
}

// NewServer builds a new Server with middleware and routes configured.
func NewServer(cfg *config.Config, violations *store.Store, gateway *gemini.Gateway) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		addr:     cfg.Addr,
		store:    violations,
		gateway:  gateway,
		manager:  jobs.NewManager(gateway, violations),
		sessions: newSessions(12 * time.Hour),
		username: cfg.Username,
		password: cfg.Password,
	}

	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Timeout(5 * time.Minute))

	s.registerRoutes()

	return s
}

// Start begins listening on the configured address.
func (s *Server) Start() error {
	return http.ListenAndServe(s.addr, s.router)
}

// Router exposes the chi.Router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}
