// Package store provides storage backends for Sunshine sessions and
// transcripts.
//
// This file implements the SQLite-backed store.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "embed"

	"github.com/sunshine-labs/sunshine/internal/models"
	_ "github.com/mattn/go-sqlite3"
)

// DefaultDirPermissions defines the default permissions for database
// directories.
const DefaultDirPermissions = 0755

//go:embed migrations_sqlite.sql
var sqliteMigrations string

type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store. The DSN is a file path to
// the database file; its directory is created when missing.
func NewSQLiteStore(opts ...Option) (*SQLiteStore, error) {
	var cfg Opts
	for _, opt := range opts {
		opt(&cfg)
	}
	slog.Debug("NewSQLiteStore invoked", "DSN_set", cfg.DSN != "")

	dsn := cfg.DSN
	if dsn == "" {
		slog.Error("SQLiteStore DSN not set")
		return nil, fmt.Errorf("database DSN not set")
	}

	dir := filepath.Dir(dsn)
	if err := os.MkdirAll(dir, DefaultDirPermissions); err != nil {
		slog.Error("Failed to create database directory", "error", err, "dir", dir)
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		slog.Error("Failed to open SQLite connection", "error", err)
		return nil, err
	}
	if err := db.Ping(); err != nil {
		slog.Error("SQLite ping failed", "error", err)
		return nil, err
	}

	slog.Debug("Running SQLite migrations")
	if _, err := db.Exec(sqliteMigrations); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.Debug("SQLite migrations applied successfully")

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) SaveSession(state *models.SessionState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", state.ID, err)
	}
	_, err = s.db.Exec(
		`INSERT INTO sessions (id, state, created_at, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET state = excluded.state, updated_at = excluded.updated_at`,
		state.ID, string(data), state.CreatedAt, state.UpdatedAt,
	)
	if err != nil {
		slog.Error("SQLiteStore SaveSession failed", "error", err, "session_id", state.ID)
		return fmt.Errorf("failed to upsert session %s: %w", state.ID, err)
	}
	slog.Debug("SQLiteStore SaveSession succeeded", "session_id", state.ID)
	return nil
}

func (s *SQLiteStore) GetSession(id string) (*models.SessionState, error) {
	row := s.db.QueryRow(`SELECT state FROM sessions WHERE id = ?`, id)
	return scanSessionRow(row, id)
}

func (s *SQLiteStore) AddMessage(m models.Message) error {
	_, err := s.db.Exec(
		`INSERT INTO messages (session_id, role, body, crisis, time) VALUES (?, ?, ?, ?, ?)`,
		m.SessionID, m.Role, m.Body, m.Crisis, m.Time,
	)
	if err != nil {
		slog.Error("SQLiteStore AddMessage failed", "error", err, "session_id", m.SessionID)
		return fmt.Errorf("failed to insert message for %s: %w", m.SessionID, err)
	}
	slog.Debug("SQLiteStore AddMessage succeeded", "session_id", m.SessionID, "role", m.Role)
	return nil
}

func (s *SQLiteStore) GetMessages(sessionID string) ([]models.Message, error) {
	rows, err := s.db.Query(
		`SELECT session_id, role, body, crisis, time FROM messages WHERE session_id = ? ORDER BY id`,
		sessionID,
	)
	if err != nil {
		slog.Error("SQLiteStore GetMessages query failed", "error", err, "session_id", sessionID)
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()
	return scanMessages(rows)
}

func (s *SQLiteStore) Stats() (models.Stats, error) {
	return queryStats(s.db)
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
