// Package server provides the HTTP REST API for skill gap analysis and
// learning roadmaps.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/skillsync/internal/catalog"
	"github.com/jonathan/skillsync/internal/db"
	"github.com/jonathan/skillsync/internal/gap"
	"github.com/jonathan/skillsync/internal/roadmap"
	"github.com/jonathan/skillsync/internal/scoring"
)

// ProgressStore is the mutable user store behind the user endpoints.
// *db.DB implements it; tests substitute an in-memory fake. A nil store
// disables the user endpoints.
type ProgressStore interface {
	UpsertProfile(ctx context.Context, p *db.UserProfile) error
	GetProfile(ctx context.Context, userID string) (*db.UserProfile, error)
	GetProgress(ctx context.Context, userID string) (map[string]string, error)
	SetProgress(ctx context.Context, userID, skillID, status string) error
}

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	catalog    *catalog.Catalog
	analyzer   *gap.Analyzer
	builder    *roadmap.Builder
	store      ProgressStore
}

// Config holds server configuration.
type Config struct {
	Port    int
	DataDir string
	Model   scoring.Model // nil selects the fallback scorer
	Store   ProgressStore // nil disables user endpoints
}

// New creates a new server instance. The catalog is loaded once here and is
// read-only for the server's lifetime.
func New(cfg Config) *Server {
	cat := catalog.Load(cfg.DataDir)
	scorer := scoring.NewScorer(cfg.Model)

	s := &Server{
		catalog:  cat,
		analyzer: gap.NewAnalyzer(cat, scorer),
		builder:  roadmap.NewBuilder(cat),
		store:    cfg.Store,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// routes builds the request router.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)

	// Read-only catalog endpoints
	mux.HandleFunc("GET /api/skills", s.handleListSkills)
	mux.HandleFunc("GET /api/skills/{id}", s.handleGetSkill)
	mux.HandleFunc("GET /api/job-roles", s.handleListRoles)
	mux.HandleFunc("GET /api/job-roles/{id}", s.handleGetRole)
	mux.HandleFunc("GET /api/resources/{skill_id}", s.handleGetResources)

	// Core operations
	mux.HandleFunc("POST /api/analyze-gap", s.handleAnalyzeGap)
	mux.HandleFunc("POST /api/roadmap", s.handleRoadmap)

	// User profile and progress
	mux.HandleFunc("POST /api/users/{id}", s.handleSaveProfile)
	mux.HandleFunc("GET /api/users/{id}", s.handleGetProfile)
	mux.HandleFunc("GET /api/users/{id}/progress", s.handleGetProgress)
	mux.HandleFunc("POST /api/users/{id}/progress", s.handleUpdateProgress)

	return mux
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

// withLogging tags each request with an id and logs method, path and duration.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.New().String()[:8]
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s (%v)", requestID, r.Method, r.URL.Path, time.Since(start))
	})
}

// withCORS adds CORS headers so browser and mobile frontends can call the API.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// handleHealth reports service liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
