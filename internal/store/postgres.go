// Package store provides storage backends for Sunshine sessions and
// transcripts.
//
// This file implements the Postgres-backed store.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	_ "embed"

	"github.com/sunshine-labs/sunshine/internal/models"
	_ "github.com/lib/pq"
)

//go:embed migrations_postgres.sql
var postgresMigrations string

type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new Postgres store from a postgres:// DSN.
func NewPostgresStore(opts ...Option) (*PostgresStore, error) {
	var cfg Opts
	for _, opt := range opts {
		opt(&cfg)
	}
	slog.Debug("NewPostgresStore invoked", "DSN_set", cfg.DSN != "")

	dsn := cfg.DSN
	if dsn == "" {
		slog.Error("PostgresStore DSN not set")
		return nil, fmt.Errorf("database DSN not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		slog.Error("Failed to open Postgres connection", "error", err)
		return nil, err
	}
	if err := db.Ping(); err != nil {
		slog.Error("Postgres ping failed", "error", err)
		return nil, err
	}

	slog.Debug("Running Postgres migrations")
	if _, err := db.Exec(postgresMigrations); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.Debug("Postgres migrations applied successfully")

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) SaveSession(state *models.SessionState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", state.ID, err)
	}
	_, err = s.db.Exec(
		`INSERT INTO sessions (id, state, created_at, updated_at) VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE SET state = EXCLUDED.state, updated_at = EXCLUDED.updated_at`,
		state.ID, string(data), state.CreatedAt, state.UpdatedAt,
	)
	if err != nil {
		slog.Error("PostgresStore SaveSession failed", "error", err, "session_id", state.ID)
		return fmt.Errorf("failed to upsert session %s: %w", state.ID, err)
	}
	slog.Debug("PostgresStore SaveSession succeeded", "session_id", state.ID)
	return nil
}

func (s *PostgresStore) GetSession(id string) (*models.SessionState, error) {
	row := s.db.QueryRow(`SELECT state FROM sessions WHERE id = $1`, id)
	return scanSessionRow(row, id)
}

func (s *PostgresStore) AddMessage(m models.Message) error {
	_, err := s.db.Exec(
		`INSERT INTO messages (session_id, role, body, crisis, time) VALUES ($1, $2, $3, $4, $5)`,
		m.SessionID, m.Role, m.Body, m.Crisis, m.Time,
	)
	if err != nil {
		slog.Error("PostgresStore AddMessage failed", "error", err, "session_id", m.SessionID)
		return fmt.Errorf("failed to insert message for %s: %w", m.SessionID, err)
	}
	slog.Debug("PostgresStore AddMessage succeeded", "session_id", m.SessionID, "role", m.Role)
	return nil
}

func (s *PostgresStore) GetMessages(sessionID string) ([]models.Message, error) {
	rows, err := s.db.Query(
		`SELECT session_id, role, body, crisis, time FROM messages WHERE session_id = $1 ORDER BY id`,
		sessionID,
	)
	if err != nil {
		slog.Error("PostgresStore GetMessages query failed", "error", err, "session_id", sessionID)
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()
	return scanMessages(rows)
}

func (s *PostgresStore) Stats() (models.Stats, error) {
	return queryStats(s.db)
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
