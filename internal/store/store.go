// Package store provides storage backends for Sunshine sessions and
// transcripts.
//
// Three backends implement the same interface: an in-memory store for
// tests and ephemeral runs, SQLite for single-node deployments, and
// Postgres for shared ones. Session state is persisted as a JSON
// document; transcripts are row-per-message.
package store

import (
	"fmt"
	"strings"

	"github.com/sunshine-labs/sunshine/internal/models"
)

// Store is the persistence interface the session manager depends on.
type Store interface {
	// SaveSession upserts the full session state document.
	SaveSession(state *models.SessionState) error
	// GetSession loads a session by id, returning (nil, nil) when the
	// session does not exist.
	GetSession(id string) (*models.SessionState, error)
	// AddMessage appends one transcript entry.
	AddMessage(m models.Message) error
	// GetMessages returns a session's transcript, oldest first.
	GetMessages(sessionID string) ([]models.Message, error)
	// Stats returns aggregate counters across all sessions.
	Stats() (models.Stats, error)
	// Close releases the backend's resources.
	Close() error
}

// Opts holds configuration for the persistent backends.
type Opts struct {
	DSN string
}

// Option defines a configuration option for a store backend.
type Option func(*Opts)

// WithDSN sets the database connection string.
func WithDSN(dsn string) Option {
	return func(o *Opts) { o.DSN = dsn }
}

// FromDSN picks a backend from the connection string: Postgres for
// postgres:// URLs, in-memory when empty, SQLite file path otherwise.
func FromDSN(dsn string) (Store, error) {
	switch {
	case dsn == "":
		return NewInMemoryStore(), nil
	case strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://"):
		s, err := NewPostgresStore(WithDSN(dsn))
		if err != nil {
			return nil, fmt.Errorf("store.FromDSN: %w", err)
		}
		return s, nil
	default:
		s, err := NewSQLiteStore(WithDSN(dsn))
		if err != nil {
			return nil, fmt.Errorf("store.FromDSN: %w", err)
		}
		return s, nil
	}
}
