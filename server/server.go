// Package server provides the HTTP API over the news orchestrator: news
// retrieval, summarization, voice synthesis, audio delivery, and the
// source and voice catalogs.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/newsbreeze/pkg/domain"
	"github.com/umputun/newsbreeze/pkg/service"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/news_service.go -pkg mocks -skip-ensure -fmt goimports . NewsService

// Server represents HTTP server instance
type Server struct {
	config   ConfigProvider
	news     NewsService
	audioDir string
	version  string
	debug    bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// NewsService is the orchestrator surface used by the handlers
type NewsService interface {
	GetNews(ctx context.Context, sources []string, category string, forceRefresh bool) domain.NewsResult
	Summarize(ctx context.Context, text, sourceURL string) domain.SummaryResult
	Synthesize(ctx context.Context, text, voiceID string) domain.AudioResult
	Voices() []domain.VoiceProfile
	CloneVoice(referencePath, id, description string) error
	Sources() []domain.SourceInfo
	TestSource(ctx context.Context, name string) domain.SourceStatus
	Health() service.Health
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, news NewsService, audioDir, version string, debug bool) *Server {
	s := &Server{
		config:   cfg,
		news:     news,
		audioDir: audioDir,
		version:  version,
		debug:    debug,
		router:   routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("newsbreeze", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /news", s.newsHandler)
		r.HandleFunc("POST /summarize", s.summarizeHandler)
		r.HandleFunc("POST /synthesize", s.synthesizeHandler)
		r.HandleFunc("GET /voices", s.voicesHandler)
		r.HandleFunc("POST /voices/clone", s.cloneVoiceHandler)
		r.HandleFunc("GET /sources", s.sourcesHandler)
		r.HandleFunc("GET /sources/{name}/test", s.testSourceHandler)
		r.HandleFunc("GET /health", s.healthHandler)
		r.HandleFunc("GET /status", s.statusHandler)
	})

	s.router.HandleFunc("GET /audio/{filename}", s.audioHandler)
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// healthHandler reports engine readiness and cache state
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	RenderJSON(w, r, http.StatusOK, s.news.Health())
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}
