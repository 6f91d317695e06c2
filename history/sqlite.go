package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SchemaVersion is the current history schema version
const SchemaVersion = "1"

const driverName = "sqlite3"

// SQLite is a SQLite-backed store.
type SQLite struct {
	mu sync.Mutex
	db *sql.DB
}

// NewSQLite opens or creates the history database at path.
func NewSQLite(ctx context.Context, path string) (*SQLite, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history %s: %w", path, err)
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS entries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session TEXT NOT NULL,
			mode TEXT NOT NULL,
			input TEXT NOT NULL,
			output TEXT NOT NULL,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS entries_session ON entries (session);
		CREATE TABLE IF NOT EXISTS metadata (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create history tables: %w", err)
	}

	s := &SQLite{db: db}

	version, err := s.metadata(ctx, "schema_version")
	if err != nil {
		db.Close()
		return nil, err
	}

	switch version {
	case "":
		if err := s.setMetadata(ctx, "schema_version", SchemaVersion); err != nil {
			db.Close()
			return nil, err
		}
	case SchemaVersion:
	default:
		db.Close()
		return nil, fmt.Errorf("%w: %s (expected %s)", ErrUnsupportedSchemaVersion, version, SchemaVersion)
	}

	return s, nil
}

// Append stores an entry.
func (s *SQLite) Append(ctx context.Context, e Entry) (Entry, error) {
	e, err := prepare(e, time.Now())
	if err != nil {
		return Entry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO entries (session, mode, input, output, created_at) VALUES (?, ?, ?, ?, ?)
	`, e.Session, string(e.Mode), e.Input, e.Output, e.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return Entry{}, fmt.Errorf("failed to append history: %w", err)
	}

	e.ID, err = result.LastInsertId()
	if err != nil {
		return Entry{}, err
	}

	return e, nil
}

// Recent returns the newest entries.
func (s *SQLite) Recent(ctx context.Context, limit int) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 {
		limit = -1 // no limit
	}

	entries, err := s.query(ctx, `
		SELECT id, session, mode, input, output, created_at FROM entries ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}

	slices.Reverse(entries)

	return entries, nil
}

// Session returns the entries of one session.
func (s *SQLite) Session(ctx context.Context, session string) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.query(ctx, `
		SELECT id, session, mode, input, output, created_at FROM entries WHERE session = ? ORDER BY id
	`, session)
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// query runs a select over entries (caller must hold lock).
func (s *SQLite) query(ctx context.Context, query string, args ...any) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	defer rows.Close()

	var entries []Entry

	for rows.Next() {
		var (
			e         Entry
			mode      string
			createdAt string
		)

		if err := rows.Scan(&e.ID, &e.Session, &mode, &e.Input, &e.Output, &createdAt); err != nil {
			return nil, err
		}

		e.Mode = Mode(mode)

		e.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("invalid timestamp in history entry %d: %w", e.ID, err)
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// metadata retrieves a metadata value by key (caller must hold lock).
func (s *SQLite) metadata(ctx context.Context, key string) (string, error) {
	var value string

	err := s.db.QueryRowContext(ctx, "SELECT value FROM metadata WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}

	if err != nil {
		return "", err
	}

	return value, nil
}

// setMetadata stores a metadata value by key (caller must hold lock).
func (s *SQLite) setMetadata(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)

	return err
}
