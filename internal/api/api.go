// Package api provides HTTP handlers and the main API server logic for
// Sunshine.
//
// It exposes the chat endpoint plus read-only views of sessions,
// transcripts, and aggregate stats. Handlers never expose internal
// analysis labels; clients only ever see the composed reply.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/sunshine-labs/sunshine/internal/engine"
	"github.com/sunshine-labs/sunshine/internal/models"
	"github.com/sunshine-labs/sunshine/internal/session"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = ":8080"

// Opts holds server configuration.
type Opts struct {
	Addr string
}

// Option defines a configuration option for the server.
type Option func(*Opts)

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	return func(o *Opts) { o.Addr = addr }
}

// Server wires the engine and session manager to HTTP.
type Server struct {
	eng      *engine.Engine
	sessions *session.Manager
	addr     string
}

// NewServer creates a server over the engine and session manager.
func NewServer(eng *engine.Engine, sessions *session.Manager, opts ...Option) *Server {
	var cfg Opts
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	return &Server{eng: eng, sessions: sessions, addr: cfg.Addr}
}

// Handler builds the route table. Exposed separately from Run so tests
// can drive it through httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/chat", s.chatHandler)
	mux.HandleFunc("/api/sessions/", s.sessionHandler)
	mux.HandleFunc("/api/messages", s.messagesHandler)
	mux.HandleFunc("/api/stats", s.statsHandler)
	mux.HandleFunc("/health", s.healthHandler)
	return mux
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Sunshine API listening", "addr", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		slog.Info("Shutting down API server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// mapError translates domain errors to HTTP responses.
func mapError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrSessionNotFound):
		writeJSONResponse(w, http.StatusNotFound, models.Error("Session not found"))
	case errors.Is(err, models.ErrEmptyMessage),
		errors.Is(err, models.ErrMessageTooLong),
		errors.Is(err, models.ErrSessionIDTooLong):
		writeJSONResponse(w, http.StatusBadRequest, models.Error(err.Error()))
	default:
		slog.Error("Server: request failed", "error", err)
		writeJSONResponse(w, http.StatusInternalServerError, models.Error("Internal server error"))
	}
}
