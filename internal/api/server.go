package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/parascope/parascope/internal/config"
	"github.com/parascope/parascope/internal/profile"
	"github.com/parascope/parascope/internal/runstore"
)

// Server is the HTTP API server for parascope.
type Server struct {
	router   chi.Router
	runs     *runstore.Store
	profiles map[string]*profile.Profile
	log      *slog.Logger
	cfg      config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(runs *runstore.Store, profiles map[string]*profile.Profile, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		runs:     runs,
		profiles: profiles,
		log:      log,
		cfg:      cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// API endpoints; authenticated when an API key is configured.
	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Post("/api/analyze", s.handleAnalyze)
		r.Get("/api/runs/{runID}", s.handleGetRun)
		r.Get("/api/runs/{runID}/paragraphs.csv", s.handleRunParagraphsCSV)
		r.Get("/api/runs/{runID}/tokens.csv", s.handleRunTokensCSV)
		r.Get("/api/profiles", s.handleListProfiles)
		r.Get("/api/stats/runs", s.handleRunStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
