// Package session manages conversation state across turns.
//
// The manager fronts the store with per-session locking so a turn's
// load-modify-save cycle is atomic even when a client sends
// overlapping requests for the same session id.
package session

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sunshine-labs/sunshine/internal/models"
	"github.com/sunshine-labs/sunshine/internal/store"
	"github.com/sunshine-labs/sunshine/internal/util"
)

// Manager coordinates session state access through the store.
type Manager struct {
	store store.Store

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewManager creates a session manager over the given store.
func NewManager(s store.Store) *Manager {
	return &Manager{
		store: s,
		locks: make(map[string]*sync.Mutex),
	}
}

// lockFor returns the mutex serializing one session's turns.
func (m *Manager) lockFor(id string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.locks[id]
	if !ok {
		l = &sync.Mutex{}
		m.locks[id] = l
	}
	return l
}

// NewID generates a fresh session id.
func (m *Manager) NewID() string {
	return util.GenerateSessionID()
}

// Update runs fn against the session's state under the session lock
// and persists the result. A session that does not exist yet is
// created on the way in, so the first turn of a conversation and the
// hundredth go through the same path.
func (m *Manager) Update(id string, fn func(state *models.SessionState) error) (*models.SessionState, error) {
	l := m.lockFor(id)
	l.Lock()
	defer l.Unlock()

	state, err := m.store.GetSession(id)
	if err != nil {
		slog.Error("Manager.Update: failed to load session", "error", err, "session_id", id)
		return nil, fmt.Errorf("failed to load session %s: %w", id, err)
	}
	if state == nil {
		slog.Debug("Manager.Update: creating new session", "session_id", id)
		state = models.NewSessionState(id)
	}

	if err := fn(state); err != nil {
		return nil, err
	}

	state.UpdatedAt = time.Now()
	if err := m.store.SaveSession(state); err != nil {
		slog.Error("Manager.Update: failed to save session", "error", err, "session_id", id)
		return nil, fmt.Errorf("failed to save session %s: %w", id, err)
	}
	slog.Debug("Manager.Update: session persisted", "session_id", id, "session_length", state.Memory.SessionLength)
	return state, nil
}

// Get loads a session read-only, returning models.ErrSessionNotFound
// for unknown ids.
func (m *Manager) Get(id string) (*models.SessionState, error) {
	state, err := m.store.GetSession(id)
	if err != nil {
		slog.Error("Manager.Get: failed to load session", "error", err, "session_id", id)
		return nil, fmt.Errorf("failed to load session %s: %w", id, err)
	}
	if state == nil {
		return nil, models.ErrSessionNotFound
	}
	return state, nil
}

// AddMessage appends a transcript entry.
func (m *Manager) AddMessage(msg models.Message) error {
	return m.store.AddMessage(msg)
}

// Transcript returns a session's messages, oldest first. Unknown
// sessions yield models.ErrSessionNotFound rather than an empty list.
func (m *Manager) Transcript(id string) ([]models.Message, error) {
	state, err := m.store.GetSession(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", id, err)
	}
	if state == nil {
		return nil, models.ErrSessionNotFound
	}
	return m.store.GetMessages(id)
}

// Stats returns the aggregate counters.
func (m *Manager) Stats() (models.Stats, error) {
	return m.store.Stats()
}
