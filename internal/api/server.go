// Package api exposes the progression engine to the presentation layer over
// HTTP. The UI is a separate process; this surface is the collaborator
// contract it consumes.
package api

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ecoheroes/ecoheroes-go/internal/engine"
	"github.com/ecoheroes/ecoheroes-go/internal/store"
)

// Version is reported by health and error responses.
const Version = "1.0.0"

// AttemptLister serves the paginated attempt history. Implemented by
// store.SQLiteDB; nil disables the attempts endpoint data.
type AttemptLister interface {
	ListAttempts(levelID string, page, perPage int) (*store.AttemptsPage, error)
}

// Server handles HTTP requests against the progression engine.
type Server struct {
	engine    *engine.Engine
	attempts  AttemptLister
	logger    *log.Logger
	startTime time.Time
}

// NewServer creates a new API server.
func NewServer(eng *engine.Engine, attempts AttemptLister) *Server {
	return &Server{
		engine:    eng,
		attempts:  attempts,
		logger:    log.New(os.Stdout, "[API] ", log.LstdFlags),
		startTime: time.Now(),
	}
}

// Routes sets up the HTTP routes with middleware.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))

	r.Get("/health", s.handleHealth)
	r.Get("/health/live", s.handleLiveness)
	r.Get("/health/ready", s.handleReadiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/player", s.handleGetPlayer)
		r.Put("/player/name", s.handleSetName)
		r.Put("/player/world", s.handleSetWorld)
		r.Get("/stars", s.handleGetStars)
		r.Get("/worlds", s.handleListWorlds)
		r.Get("/worlds/{worldID}/levels", s.handleListWorldLevels)
		r.Get("/badges", s.handleListBadges)
		r.Post("/levels/{levelID}/complete", s.handleCompleteLevel)
		r.Get("/levels/{levelID}/attempts", s.handleListAttempts)
		r.Post("/reset", s.handleReset)
	})

	return r
}

// writeJSON writes a JSON response with proper headers.
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Engine-Version", Version)
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// writeError writes a structured error response.
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, ErrorResponse{Error: message})
}
