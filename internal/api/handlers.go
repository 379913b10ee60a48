// Package api provides HTTP handlers for Sunshine endpoints.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sunshine-labs/sunshine/internal/models"
)

// chatHandler handles POST /api/chat.
func (s *Server) chatHandler(w http.ResponseWriter, r *http.Request) {
	if r.Body != nil {
		defer r.Body.Close()
	}
	slog.Debug("Server.chatHandler: processing chat request", "method", r.Method, "path", r.URL.Path)
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		slog.Warn("Server.chatHandler: method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Warn("Server.chatHandler: failed to decode JSON", "error", err)
		writeJSONResponse(w, http.StatusBadRequest, models.Error("Invalid JSON format"))
		return
	}
	if err := req.Validate(); err != nil {
		slog.Warn("Server.chatHandler: validation failed", "error", err)
		mapError(w, err)
		return
	}

	resp, err := s.eng.ProcessTurn(req.SessionID, req.Message)
	if err != nil {
		mapError(w, err)
		return
	}
	slog.Debug("Server.chatHandler: turn complete", "session_id", resp.SessionID)
	writeJSONResponse(w, http.StatusOK, models.Success(resp))
}

// sessionHandler handles GET /api/sessions/{id}.
func (s *Server) sessionHandler(w http.ResponseWriter, r *http.Request) {
	slog.Debug("Server.sessionHandler: processing session request", "method", r.Method, "path", r.URL.Path)
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/sessions/")
	if id == "" || strings.Contains(id, "/") {
		writeJSONResponse(w, http.StatusBadRequest, models.Error("Session id required"))
		return
	}

	state, err := s.sessions.Get(id)
	if err != nil {
		mapError(w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, models.Success(state.Summary()))
}

// messagesHandler handles GET /api/messages?session_id={id}.
func (s *Server) messagesHandler(w http.ResponseWriter, r *http.Request) {
	slog.Debug("Server.messagesHandler: processing transcript request", "method", r.Method)
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("session_id")
	if id == "" {
		writeJSONResponse(w, http.StatusBadRequest, models.Error("session_id query parameter required"))
		return
	}

	msgs, err := s.sessions.Transcript(id)
	if err != nil {
		mapError(w, err)
		return
	}
	if msgs == nil {
		msgs = []models.Message{}
	}
	writeJSONResponse(w, http.StatusOK, models.Success(msgs))
}

// statsHandler handles GET /api/stats.
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	stats, err := s.sessions.Stats()
	if err != nil {
		mapError(w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, models.Success(stats))
}

// healthHandler handles GET /health.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSONResponse(w, http.StatusOK, models.SuccessWithMessage("ok", nil))
}
