// Package history persists a local ledger of past "sluc run" invocations
// to an on-disk SQLite database, queried by the "sluc history" subcommand.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Record is one completed run.
type Record struct {
	ID       string
	FilePath string
	Success  bool
	ErrorMsg string
	Duration time.Duration
	RanAt    time.Time
}

// Store wraps a SQLite connection holding the run ledger.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the SQLite database at path and
// ensures its schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}
	return &Store{db: db}, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	file_path TEXT NOT NULL,
	success INTEGER NOT NULL,
	error_message TEXT,
	duration_ms INTEGER NOT NULL,
	ran_at TEXT NOT NULL
);`

// Close releases the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts one run, assigning it a fresh UUID.
func (s *Store) Record(filePath string, runErr error, duration time.Duration) (string, error) {
	id := uuid.NewString()
	success := runErr == nil
	errMsg := ""
	if runErr != nil {
		errMsg = runErr.Error()
	}
	_, err := s.db.Exec(
		`INSERT INTO runs (id, file_path, success, error_message, duration_ms, ran_at) VALUES (?, ?, ?, ?, ?, ?)`,
		// Fixed-width fractional seconds so ORDER BY ran_at sorts by time.
		id, filePath, success, errMsg, duration.Milliseconds(), time.Now().UTC().Format("2006-01-02T15:04:05.000000000Z07:00"),
	)
	if err != nil {
		return "", fmt.Errorf("recording run: %w", err)
	}
	return id, nil
}

// Recent returns the most recent n runs, newest first.
func (s *Store) Recent(n int) ([]Record, error) {
	rows, err := s.db.Query(
		`SELECT id, file_path, success, error_message, duration_ms, ran_at FROM runs ORDER BY ran_at DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		var success int
		var durationMs int64
		var ranAt string
		if err := rows.Scan(&r.ID, &r.FilePath, &success, &r.ErrorMsg, &durationMs, &ranAt); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		r.Success = success != 0
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.RanAt, _ = time.Parse(time.RFC3339Nano, ranAt)
		out = append(out, r)
	}
	return out, rows.Err()
}
