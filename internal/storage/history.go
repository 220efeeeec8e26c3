// Package storage persists practice history in SQLite.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrHistoryDisabled is returned by OpenHistory when no database path is configured.
var ErrHistoryDisabled = errors.New("practice history is disabled (set history_db in config or pass --history-db)")

// Session is one run through practice mode.
type Session struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"started_at"`
	DeckSize  int       `json:"deck_size"`
	Revealed  int       `json:"revealed"`  // cards whose meaning was shown
	Completed bool      `json:"completed"` // false when the user quit early
}

// Summary aggregates all recorded sessions.
type Summary struct {
	Sessions  int `json:"sessions"`
	Completed int `json:"completed"`
	Revealed  int `json:"revealed"`
}

// DB wraps a SQLite database connection.
type DB struct {
	db *sql.DB
}

// OpenHistory opens the history database at path, or returns ErrHistoryDisabled
// when path is empty.
func OpenHistory(path string) (*DB, error) {
	if path == "" {
		return nil, ErrHistoryDisabled
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}
	return OpenDB(path)
}

// OpenDB opens or creates a SQLite database at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the database schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS practice_sessions (
			id TEXT PRIMARY KEY,
			started_at INTEGER NOT NULL,
			deck_size INTEGER NOT NULL,
			revealed INTEGER NOT NULL,
			completed INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_sessions_started ON practice_sessions(started_at);
	`

	_, err := db.Exec(schema)
	return err
}

// RecordSession stores s. A missing ID is filled with a new UUID and a zero
// StartedAt with the current time; the stored session is returned.
func (d *DB) RecordSession(s Session) (Session, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.StartedAt.IsZero() {
		s.StartedAt = time.Now().UTC()
	}
	if s.Revealed < 0 || s.Revealed > s.DeckSize {
		return Session{}, fmt.Errorf("revealed %d outside deck of %d", s.Revealed, s.DeckSize)
	}

	_, err := d.db.Exec(`
		INSERT INTO practice_sessions (id, started_at, deck_size, revealed, completed)
		VALUES (?, ?, ?, ?, ?)
	`, s.ID, s.StartedAt.UnixNano(), s.DeckSize, s.Revealed, boolToInt(s.Completed))
	if err != nil {
		return Session{}, fmt.Errorf("inserting session %s: %w", s.ID, err)
	}
	return s, nil
}

// RecentSessions returns up to limit sessions, newest first.
// A limit <= 0 returns all sessions.
func (d *DB) RecentSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := d.db.Query(`
		SELECT id, started_at, deck_size, revealed, completed
		FROM practice_sessions
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var (
			s         Session
			startedAt int64
			completed int
		)
		if err := rows.Scan(&s.ID, &startedAt, &s.DeckSize, &s.Revealed, &completed); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		s.StartedAt = time.Unix(0, startedAt).UTC()
		s.Completed = completed != 0
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}

	return sessions, nil
}

// Summarize returns totals over every recorded session.
func (d *DB) Summarize() (Summary, error) {
	var s Summary
	err := d.db.QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(completed), 0), COALESCE(SUM(revealed), 0)
		FROM practice_sessions
	`).Scan(&s.Sessions, &s.Completed, &s.Revealed)
	if err != nil {
		return Summary{}, fmt.Errorf("summarizing sessions: %w", err)
	}
	return s, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
