package sink

import (
	"context"
	"sync"

	"github.com/dukerupert/signup/internal/domain"
)

// MockSink is a test implementation of Sink. It records every registration
// it receives and delegates to SubmitFunc when set.
type MockSink struct {
	SubmitFunc func(ctx context.Context, reg *domain.Registration) error

	mu    sync.Mutex
	calls []*domain.Registration
}

// NewMockSink creates a MockSink that accepts everything.
func NewMockSink() *MockSink {
	return &MockSink{}
}

// Submit records reg and delegates to SubmitFunc, returning nil when unset.
func (m *MockSink) Submit(ctx context.Context, reg *domain.Registration) error {
	m.mu.Lock()
	if reg != nil {
		cp := *reg
		m.calls = append(m.calls, &cp)
	}
	fn := m.SubmitFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, reg)
	}
	return nil
}

// Calls returns copies of the registrations received so far.
func (m *MockSink) Calls() []*domain.Registration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*domain.Registration(nil), m.calls...)
}

var (
	_ Sink = (*LogSink)(nil)
	_ Sink = (*MockSink)(nil)
)
