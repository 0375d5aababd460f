package state

import (
	"context"
	"sync"
)

// Mutation tracks write operations against a backing store. It counts
// in-flight runs and remembers the last error. Concurrent runs are
// allowed; callers that need single-flight semantics should gate on
// InFlight themselves.
type Mutation struct {
	mu       sync.Mutex
	inFlight int
	lastErr  error
}

// NewMutation returns an idle Mutation.
func NewMutation() *Mutation {
	return &Mutation{}
}

// Run executes fn synchronously, tracking it as in flight for the
// duration. The error from fn is recorded and returned.
func (m *Mutation) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	m.inFlight++
	m.mu.Unlock()

	err := fn(ctx)

	m.mu.Lock()
	m.inFlight--
	m.lastErr = err
	m.mu.Unlock()

	return err
}

// InFlight reports how many runs are currently executing.
func (m *Mutation) InFlight() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inFlight
}

// Err returns the error from the most recently completed run, or nil.
func (m *Mutation) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}
