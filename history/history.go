// Package history persists interactive session input and output.
package history

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Mode records which transformation produced an entry's output.
type Mode string

const (
	ModeTranslate Mode = "translate"
	ModePronounce Mode = "pronounce"
	ModeSteps     Mode = "steps"
)

// Entry is one line of input and what it produced.
type Entry struct {
	ID        int64
	Session   string
	Mode      Mode
	Input     string
	Output    string
	CreatedAt time.Time
}

// Store is the interface for history persistence.
type Store interface {
	// Append stores e and returns it with ID and CreatedAt filled in.
	Append(ctx context.Context, e Entry) (Entry, error)
	// Recent returns up to limit of the newest entries, oldest first.
	Recent(ctx context.Context, limit int) ([]Entry, error)
	// Session returns every entry of one session, oldest first.
	Session(ctx context.Context, session string) ([]Entry, error)
	// Close releases resources.
	Close() error
}

// NewSessionID returns a fresh random session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

func prepare(e Entry, now time.Time) (Entry, error) {
	if e.Input == "" {
		return Entry{}, ErrEmptyInput
	}

	if e.Session == "" {
		e.Session = NewSessionID()
	}

	if e.Mode == "" {
		e.Mode = ModeTranslate
	}

	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}

	e.CreatedAt = e.CreatedAt.UTC()

	return e, nil
}
