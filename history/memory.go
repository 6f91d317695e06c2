package history

import (
	"context"
	"slices"
	"sync"
	"time"
)

// Memory is an in-memory store, used when history is disabled and in tests.
type Memory struct {
	mu      sync.RWMutex
	entries []Entry
	nextID  int64
}

// NewMemory creates a new in-memory store.
func NewMemory() *Memory {
	return &Memory{nextID: 1}
}

// Append stores an entry.
func (m *Memory) Append(_ context.Context, e Entry) (Entry, error) {
	e, err := prepare(e, time.Now())
	if err != nil {
		return Entry{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	e.ID = m.nextID
	m.nextID++
	m.entries = append(m.entries, e)

	return e, nil
}

// Recent returns the newest entries.
func (m *Memory) Recent(_ context.Context, limit int) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if limit <= 0 || limit > len(m.entries) {
		limit = len(m.entries)
	}

	return slices.Clone(m.entries[len(m.entries)-limit:]), nil
}

// Session returns the entries of one session.
func (m *Memory) Session(_ context.Context, session string) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []Entry
	for _, e := range m.entries {
		if e.Session == session {
			result = append(result, e)
		}
	}

	return result, nil
}

// Close is a no-op for memory store.
func (m *Memory) Close() error {
	return nil
}
