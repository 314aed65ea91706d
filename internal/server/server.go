// Package server provides the thin HTTP request/response boundary around the
// decision engine. It holds no state between requests; persistence of the
// seen-set remains the caller's job via the seen-store collaborator.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/melissa/career-advisor/internal/db"
	"github.com/melissa/career-advisor/internal/discovery"
)

// Server exposes the engine's four operations as JSON endpoints
type Server struct {
	httpServer *http.Server
	pipeline   *discovery.Pipeline
	seenStore  db.SeenStore // optional; nil means the caller supplies seen IDs per request
	log        *zap.Logger
}

// Config holds server configuration
type Config struct {
	Port      int
	Pipeline  *discovery.Pipeline
	SeenStore db.SeenStore
	Logger    *zap.Logger
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Pipeline == nil {
		return nil, fmt.Errorf("server requires a discovery pipeline")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	s := &Server{
		pipeline:  cfg.Pipeline,
		seenStore: cfg.SeenStore,
		log:       cfg.Logger,
	}

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// routes builds the request mux
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/classify", s.handleClassify)
	mux.HandleFunc("POST /v1/discover", s.handleDiscover)
	mux.HandleFunc("POST /v1/optimize", s.handleOptimize)
	mux.HandleFunc("POST /v1/market", s.handleMarket)
	mux.HandleFunc("GET /health", s.handleHealth)
	return mux
}

// Start begins listening. Blocks until the server stops.
func (s *Server) Start() error {
	s.log.Info("server listening", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
