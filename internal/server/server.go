// Package server provides the HTTP REST API for resume analysis.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jonathan/resume-match/internal/store"
	"github.com/jonathan/resume-match/internal/types"
)

// Analyzer runs the resume analysis pipeline.
type Analyzer interface {
	ExtractText(data []byte) (string, error)
	Analyze(ctx context.Context, resumeText string, job types.JobData) (*types.AnalysisResult, error)
}

// JobProvider fetches job postings by ID.
type JobProvider interface {
	GetJobDetails(ctx context.Context, jobID int) (types.JobData, error)
}

// ChatService answers free-form questions.
type ChatService interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

// Cache stores completed analyses keyed by resume hash and job fingerprint.
// A nil Cache disables caching; every upload is analyzed fresh.
type Cache interface {
	Find(ctx context.Context, fileHash, jobFingerprint string) (*store.Analysis, error)
	Save(ctx context.Context, a *store.Analysis) error
}

// Config holds server configuration
type Config struct {
	Port int
}

// Deps holds the services the server routes requests to.
type Deps struct {
	Analyzer Analyzer
	Jobs     JobProvider
	Chat     ChatService
	Cache    Cache
	Logger   *zap.Logger
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	analyzer   Analyzer
	jobs       JobProvider
	chat       ChatService
	cache      Cache
	logger     *zap.Logger
	validator  *validator.Validate
	limiter    *limiter
}

// New creates a new server instance
func New(cfg Config, deps Deps) (*Server, error) {
	if deps.Analyzer == nil {
		return nil, fmt.Errorf("analyzer is required")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	s := &Server{
		analyzer:  deps.Analyzer,
		jobs:      deps.Jobs,
		chat:      deps.Chat,
		cache:     deps.Cache,
		logger:    deps.Logger,
		validator: validator.New(),
		limiter:   newLimiter(defaultRateLimit, time.Minute),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/resume/analyze", s.handleAnalyze)
	mux.HandleFunc("POST /api/chat", s.handleChat)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // analysis calls out to the language model
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-stop
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
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

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// withRateLimit throttles clients by IP. Health checks are exempt.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			next.ServeHTTP(w, r)
			return
		}
		if !s.limiter.allow(clientID(r)) {
			s.errorResponse(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encoding JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// clientID identifies the client by IP for rate limiting.
func clientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
