// Package store persists small string values by key. It is the only place
// the application touches durable state; everything above it sees the KV
// interface.
package store

import (
	"context"
	"sync"
)

// KV is a string key/value store. Get reports absence with ok=false and
// treats backend failures as absence. Set reports failures so callers can
// surface them, but callers are expected to carry on regardless.
type KV interface {
	Get(key string) (value string, ok bool)
	Set(key, value string) error
}

// Closer is implemented by stores holding OS resources.
type Closer interface {
	Close() error
}

// Memory is an in-process KV used for ephemeral sessions and tests.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
	// SetErr, when non-nil, is returned by every Set without storing.
	SetErr error
	// Writes counts Set calls, successful or not.
	Writes int
}

// NewMemory creates an empty Memory store, optionally pre-populated.
func NewMemory(initial map[string]string) *Memory {
	values := make(map[string]string, len(initial))
	for k, v := range initial {
		values[k] = v
	}
	return &Memory{values: values}
}

// Get implements KV.
func (m *Memory) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

// Set implements KV.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Writes++
	if m.SetErr != nil {
		return m.SetErr
	}
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}

// Open returns a SQLite-backed store at path, or a Memory store when path
// is empty.
func Open(ctx context.Context, path string) (KV, error) {
	if path == "" {
		return NewMemory(nil), nil
	}
	return OpenSQLite(ctx, path)
}
