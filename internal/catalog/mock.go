package catalog

import (
	"context"
	"errors"
	"sync"

	"societies/internal/domain"
)

// ErrMockNotImplemented is returned when a MockSource lacks an override.
var ErrMockNotImplemented = errors.New("catalog.MockSource: method not implemented")

// MockSource is a test double for Source.
type MockSource struct {
	ListFn func(context.Context) ([]domain.Society, error)

	mu            sync.Mutex
	ListCallCount int
}

// NewMockSource returns a MockSource that serves societies.
func NewMockSource(societies ...domain.Society) *MockSource {
	return &MockSource{
		ListFn: func(context.Context) ([]domain.Society, error) {
			return append([]domain.Society(nil), societies...), nil
		},
	}
}

// List records the call and invokes ListFn.
func (m *MockSource) List(ctx context.Context) ([]domain.Society, error) {
	m.mu.Lock()
	m.ListCallCount++
	fn := m.ListFn
	m.mu.Unlock()
	if fn == nil {
		return nil, ErrMockNotImplemented
	}
	return fn(ctx)
}

// Calls returns how many times List ran.
func (m *MockSource) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ListCallCount
}
