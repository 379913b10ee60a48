package session

import (
	"errors"
	"sync"
	"testing"

	"github.com/sunshine-labs/sunshine/internal/models"
	"github.com/sunshine-labs/sunshine/internal/store"
)

func TestUpdateCreatesSession(t *testing.T) {
	m := NewManager(store.NewInMemoryStore())
	state, err := m.Update("s_abc", func(s *models.SessionState) error {
		s.Memory.SessionLength++
		return nil
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if state.ID != "s_abc" || state.Memory.SessionLength != 1 {
		t.Errorf("unexpected state after create: %+v", state)
	}

	loaded, err := m.Get("s_abc")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if loaded.Memory.SessionLength != 1 {
		t.Errorf("persisted session length = %d, want 1", loaded.Memory.SessionLength)
	}
}

func TestUpdatePropagatesCallbackError(t *testing.T) {
	m := NewManager(store.NewInMemoryStore())
	wantErr := errors.New("turn failed")
	if _, err := m.Update("s_err", func(*models.SessionState) error { return wantErr }); !errors.Is(err, wantErr) {
		t.Errorf("Update error = %v, want %v", err, wantErr)
	}
	if _, err := m.Get("s_err"); !errors.Is(err, models.ErrSessionNotFound) {
		t.Errorf("failed turn should not persist the session, got %v", err)
	}
}

func TestGetUnknownSession(t *testing.T) {
	m := NewManager(store.NewInMemoryStore())
	if _, err := m.Get("s_missing"); !errors.Is(err, models.ErrSessionNotFound) {
		t.Errorf("Get unknown = %v, want ErrSessionNotFound", err)
	}
	if _, err := m.Transcript("s_missing"); !errors.Is(err, models.ErrSessionNotFound) {
		t.Errorf("Transcript unknown = %v, want ErrSessionNotFound", err)
	}
}

func TestUpdateSerializesConcurrentTurns(t *testing.T) {
	m := NewManager(store.NewInMemoryStore())
	const turns = 50
	var wg sync.WaitGroup
	for i := 0; i < turns; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.Update("s_conc", func(s *models.SessionState) error {
				s.Memory.SessionLength++
				return nil
			})
			if err != nil {
				t.Errorf("concurrent Update failed: %v", err)
			}
		}()
	}
	wg.Wait()

	state, err := m.Get("s_conc")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if state.Memory.SessionLength != turns {
		t.Errorf("session length = %d after %d turns, want %d", state.Memory.SessionLength, turns, turns)
	}
}

func TestNewID(t *testing.T) {
	m := NewManager(store.NewInMemoryStore())
	if id := m.NewID(); len(id) != 34 || id[:2] != "s_" {
		t.Errorf("NewID() = %q, want s_ prefix and 34 chars", id)
	}
}
