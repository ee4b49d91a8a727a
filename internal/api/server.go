// Package api provides the HTTP REST handlers for claim analysis.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rumorlens/internal/core"
)

// Analyzer produces a verdict for a claim. It must be total: implementations
// degrade to a fallback result instead of returning an error.
type Analyzer interface {
	Analyze(ctx context.Context, query string) core.AnalysisResult
}

// Server holds the API route handlers.
type Server struct {
	analyzer Analyzer
	logger   *slog.Logger
	version  string
}

// ServerOption configures the server.
type ServerOption func(*Server)

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithVersion sets the version string reported by the API root.
func WithVersion(version string) ServerOption {
	return func(s *Server) {
		s.version = version
	}
}

// NewServer creates a new API server.
func NewServer(analyzer Analyzer, opts ...ServerOption) *Server {
	s := &Server{
		analyzer: analyzer,
		logger:   slog.Default(),
		version:  "dev",
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// RegisterRoutes attaches the API endpoints to a router.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Get("/health", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/", s.handleAPIRoot)
		r.Post("/analyze", s.handleAnalyze)
	})
}

// Handler returns a standalone handler with all routes registered.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	s.RegisterRoutes(r)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleAPIRoot(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"name":    "rumorlens-api",
		"version": s.version,
	})
}

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Default().Error("failed to encode response", "error", err)
	}
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
