package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/sunshine-labs/sunshine/internal/models"
)

// scanSessionRow decodes a session state document from a single row,
// mapping sql.ErrNoRows to the (nil, nil) miss contract.
func scanSessionRow(row *sql.Row, id string) (*models.SessionState, error) {
	var data string
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load session %s: %w", id, err)
	}
	var state models.SessionState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", id, err)
	}
	return &state, nil
}

// scanMessages drains a transcript query.
func scanMessages(rows *sql.Rows) ([]models.Message, error) {
	var msgs []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.SessionID, &m.Role, &m.Body, &m.Crisis, &m.Time); err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate message rows: %w", err)
	}
	return msgs, nil
}

// queryStats computes the aggregate counters. The SQL is portable
// across both persistent backends.
func queryStats(db *sql.DB) (models.Stats, error) {
	var stats models.Stats
	if err := db.QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&stats.Sessions); err != nil {
		return stats, fmt.Errorf("failed to count sessions: %w", err)
	}
	err := db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(CASE WHEN crisis THEN 1 ELSE 0 END), 0) FROM messages WHERE role = 'user'`,
	).Scan(&stats.Turns, &stats.CrisisTurns)
	if err != nil {
		return stats, fmt.Errorf("failed to count turns: %w", err)
	}
	return stats, nil
}
