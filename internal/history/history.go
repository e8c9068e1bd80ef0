// Package history persists an execution journal in SQLite.
// Journaling is best-effort: failures are logged by callers, never
// allowed to block or fail an execution.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SchemaVersion is bumped when the journal schema changes.
const SchemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS schema_meta (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS executions (
	id          TEXT PRIMARY KEY,
	action_id   TEXT NOT NULL,
	command     TEXT NOT NULL,
	tier        TEXT NOT NULL,
	exit_code   INTEGER NOT NULL,
	outcome     TEXT NOT NULL,
	started_at  TIMESTAMP NOT NULL,
	duration_ms INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_executions_started ON executions(started_at);
`

// Record is one journaled execution.
type Record struct {
	ID         string        `json:"id"`
	ActionID   string        `json:"action_id"`
	Command    string        `json:"command"`
	Tier       string        `json:"tier"`
	ExitCode   int           `json:"exit_code"`
	Outcome    string        `json:"outcome"`
	StartedAt  time.Time     `json:"started_at"`
	Duration   time.Duration `json:"-"`
	DurationMS int64         `json:"duration_ms"`
}

// Journal is a handle to the execution journal database.
type Journal struct {
	db   *sql.DB
	path string
}

// DefaultPath returns ~/.syswiz/history.db.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".syswiz", "history.db"), nil
}

// Open opens (creating if needed) the journal at path and ensures the
// schema is current.
func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating journal dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening journal %s: %w", path, err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL; PRAGMA busy_timeout=5000;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("configuring journal: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	var version int
	err = db.QueryRow("SELECT version FROM schema_meta LIMIT 1").Scan(&version)
	switch {
	case err == sql.ErrNoRows:
		if _, err := db.Exec("INSERT INTO schema_meta (version) VALUES (?)", SchemaVersion); err != nil {
			db.Close()
			return nil, fmt.Errorf("writing schema version: %w", err)
		}
	case err != nil:
		db.Close()
		return nil, fmt.Errorf("reading schema version: %w", err)
	case version > SchemaVersion:
		db.Close()
		return nil, fmt.Errorf("journal schema version %d is newer than supported %d", version, SchemaVersion)
	}

	return &Journal{db: db, path: path}, nil
}

// Path returns the database file path.
func (j *Journal) Path() string {
	return j.path
}

// Close releases the database handle.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Append journals one execution. A missing ID is filled with a new UUID
// and returned via the record.
func (j *Journal) Append(rec *Record) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.StartedAt.IsZero() {
		rec.StartedAt = time.Now().UTC()
	}
	rec.DurationMS = rec.Duration.Milliseconds()

	_, err := j.db.Exec(`
		INSERT INTO executions (id, action_id, command, tier, exit_code, outcome, started_at, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.ActionID, rec.Command, rec.Tier, rec.ExitCode, rec.Outcome,
		rec.StartedAt.UTC(), rec.DurationMS,
	)
	if err != nil {
		return fmt.Errorf("appending journal record: %w", err)
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (j *Journal) Recent(limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := j.db.Query(`
		SELECT id, action_id, command, tier, exit_code, outcome, started_at, duration_ms
		FROM executions ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying journal: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.ActionID, &rec.Command, &rec.Tier,
			&rec.ExitCode, &rec.Outcome, &rec.StartedAt, &rec.DurationMS); err != nil {
			return nil, fmt.Errorf("scanning journal record: %w", err)
		}
		rec.Duration = time.Duration(rec.DurationMS) * time.Millisecond
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Prune deletes records older than retentionDays and returns the number
// removed. retentionDays <= 0 disables pruning.
func (j *Journal) Prune(retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)
	res, err := j.db.Exec("DELETE FROM executions WHERE started_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("pruning journal: %w", err)
	}
	return res.RowsAffected()
}
