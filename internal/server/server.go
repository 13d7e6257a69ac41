// Package server provides the HTTP REST API for the resume studio.
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

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-studio/internal/analysis"
	"github.com/jonathan/resume-studio/internal/editor"
	"github.com/jonathan/resume-studio/internal/export"
	"github.com/jonathan/resume-studio/internal/gateway"
	"github.com/jonathan/resume-studio/internal/store"
)

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	store      *store.Store
	bridge     *editor.Bridge
	cache      *analysis.Cache
	gateway    *gateway.Gateway
	exporter   *export.Exporter
	validator  *validator.Validate
}

// Config holds server configuration.
type Config struct {
	Port int
}

// New creates a new server instance over an already-wired document store,
// gateway and exporter.
func New(cfg Config, st *store.Store, cache *analysis.Cache, gw *gateway.Gateway, exporter *export.Exporter) *Server {
	s := &Server{
		store:     st,
		bridge:    editor.New(st),
		cache:     cache,
		gateway:   gw,
		exporter:  exporter,
		validator: validator.New(),
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // AI and export calls can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// routes builds the router.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	// Document endpoints
	mux.HandleFunc("GET /api/resume", s.handleGetResume)
	mux.HandleFunc("PUT /api/resume", s.handleReplaceResume)
	mux.HandleFunc("PATCH /api/resume/field", s.handleSetField)
	mux.HandleFunc("POST /api/resume/{collection}", s.handleAddItem)
	mux.HandleFunc("PATCH /api/resume/{collection}/{id}", s.handleSetItemField)
	mux.HandleFunc("DELETE /api/resume/{collection}/{id}", s.handleRemoveItem)

	// Skills are a flat string list, not an id-keyed collection
	mux.HandleFunc("POST /api/resume/skills", s.handleAddSkill)
	mux.HandleFunc("DELETE /api/resume/skills", s.handleRemoveSkill)

	// Job context
	mux.HandleFunc("GET /api/job-context", s.handleGetJobContext)
	mux.HandleFunc("PUT /api/job-context", s.handleSetJobContext)

	// AI operations
	mux.HandleFunc("POST /api/ai/summary", s.handleAISummary)
	mux.HandleFunc("POST /api/ai/experience/{id}", s.handleAIExperience)
	mux.HandleFunc("POST /api/ai/suggestions/{id}", s.handleAISuggestions)
	mux.HandleFunc("POST /api/ai/suggestions/{id}/accept", s.handleAcceptSuggestion)
	mux.HandleFunc("POST /api/ai/keywords", s.handleAIKeywords)
	mux.HandleFunc("POST /api/ai/skills", s.handleAISkills)
	mux.HandleFunc("POST /api/ai/ats", s.handleAIATS)
	mux.HandleFunc("POST /api/ai/match", s.handleAIMatch)
	mux.HandleFunc("POST /api/ai/cover-letter", s.handleAICoverLetter)
	mux.HandleFunc("POST /api/ai/parse", s.handleAIParse)

	// Read-only gateway state
	mux.HandleFunc("GET /api/analysis", s.handleGetAnalysis)
	mux.HandleFunc("GET /api/loading", s.handleGetLoading)
	mux.HandleFunc("GET /api/cover-letter", s.handleGetCoverLetter)

	// Export
	mux.HandleFunc("POST /api/export/{format}", s.handleExport)
	mux.HandleFunc("POST /api/export", s.handleExportAll)

	mux.HandleFunc("GET /health", s.handleHealth)

	return mux
}

// Handler exposes the full middleware-wrapped handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// operationError maps a gateway/store error onto the wire.
func (s *Server) operationError(w http.ResponseWriter, err error) {
	s.errorResponse(w, HTTPStatus(err), err.Error())
}
