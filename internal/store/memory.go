package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/sunshine-labs/sunshine/internal/models"
)

// InMemoryStore keeps sessions and transcripts in process memory. It
// round-trips session state through JSON so callers never share
// pointers with the store, matching the persistent backends.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]byte
	messages map[string][]models.Message
}

// NewInMemoryStore creates an empty in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		sessions: make(map[string][]byte),
		messages: make(map[string][]models.Message),
	}
}

func (s *InMemoryStore) SaveSession(state *models.SessionState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", state.ID, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[state.ID] = data
	return nil
}

func (s *InMemoryStore) GetSession(id string) (*models.SessionState, error) {
	s.mu.RLock()
	data, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	var state models.SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", id, err)
	}
	return &state, nil
}

func (s *InMemoryStore) AddMessage(m models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages[m.SessionID] = append(s.messages[m.SessionID], m)
	return nil
}

func (s *InMemoryStore) GetMessages(sessionID string) ([]models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	msgs := s.messages[sessionID]
	out := make([]models.Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

func (s *InMemoryStore) Stats() (models.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var stats models.Stats
	stats.Sessions = len(s.sessions)
	for _, msgs := range s.messages {
		for _, m := range msgs {
			if m.Role == models.RoleUser {
				stats.Turns++
				if m.Crisis {
					stats.CrisisTurns++
				}
			}
		}
	}
	return stats, nil
}

func (s *InMemoryStore) Close() error {
	return nil
}
