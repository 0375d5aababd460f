// Package state provides observable containers for data fetched from a
// backing store. A Resource tracks a single keyed fetch through its
// loading lifecycle and discards responses that arrive after a newer
// fetch has started. A Mutation tracks in-flight write operations.
package state

import (
	"context"
	"sync"
)

// Phase is the lifecycle stage of a Resource.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseReady   Phase = "ready"
	PhaseFailed  Phase = "failed"
)

// Snapshot is a point-in-time view of a Resource. Data is retained from
// the last successful fetch even while a newer fetch is loading or has
// failed, so HasData can be true in any phase after the first success.
type Snapshot[T any] struct {
	Phase   Phase
	Key     string
	Data    T
	HasData bool
	Err     error
}

// FetchFunc loads the value for a key.
type FetchFunc[T any] func(ctx context.Context, key string) (T, error)

// Resource is a concurrency-safe container for one keyed fetch. Each
// Load bumps a generation counter; a fetch result is applied only if no
// newer Load has started since it began, so out-of-order completions
// can never overwrite fresher data.
type Resource[T any] struct {
	mu         sync.Mutex
	phase      Phase
	key        string
	data       T
	hasData    bool
	err        error
	generation uint64

	subsMu sync.Mutex
	subs   map[int]func(Snapshot[T])
	nextID int
}

// NewResource returns a Resource in the idle phase.
func NewResource[T any]() *Resource[T] {
	return &Resource[T]{
		phase: PhaseIdle,
		subs:  make(map[int]func(Snapshot[T])),
	}
}

// Snapshot returns the current state.
func (r *Resource[T]) Snapshot() Snapshot[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

func (r *Resource[T]) snapshotLocked() Snapshot[T] {
	return Snapshot[T]{
		Phase:   r.phase,
		Key:     r.key,
		Data:    r.data,
		HasData: r.hasData,
		Err:     r.err,
	}
}

// Load starts fetching the value for key in a new goroutine and moves
// the Resource to the loading phase. If another Load begins before this
// fetch completes, this fetch's result is discarded. Previously loaded
// data stays visible while the fetch is in flight.
func (r *Resource[T]) Load(ctx context.Context, key string, fetch FetchFunc[T]) {
	r.mu.Lock()
	r.generation++
	gen := r.generation
	r.phase = PhaseLoading
	r.key = key
	r.err = nil
	snap := r.snapshotLocked()
	r.mu.Unlock()

	r.notify(snap)

	go func() {
		data, err := fetch(ctx, key)

		r.mu.Lock()
		if r.generation != gen {
			// A newer Load superseded this fetch.
			r.mu.Unlock()
			return
		}
		if err != nil {
			r.phase = PhaseFailed
			r.err = err
		} else {
			r.phase = PhaseReady
			r.data = data
			r.hasData = true
			r.err = nil
		}
		snap := r.snapshotLocked()
		r.mu.Unlock()

		r.notify(snap)
	}()
}

// Reset returns the Resource to idle and clears any held data. In-flight
// fetches are invalidated.
func (r *Resource[T]) Reset() {
	r.mu.Lock()
	r.generation++
	r.phase = PhaseIdle
	r.key = ""
	var zero T
	r.data = zero
	r.hasData = false
	r.err = nil
	snap := r.snapshotLocked()
	r.mu.Unlock()

	r.notify(snap)
}

// Subscribe registers fn to be called with a snapshot after every state
// change. The returned function removes the subscription.
func (r *Resource[T]) Subscribe(fn func(Snapshot[T])) (cancel func()) {
	r.subsMu.Lock()
	id := r.nextID
	r.nextID++
	r.subs[id] = fn
	r.subsMu.Unlock()

	return func() {
		r.subsMu.Lock()
		delete(r.subs, id)
		r.subsMu.Unlock()
	}
}

func (r *Resource[T]) notify(snap Snapshot[T]) {
	r.subsMu.Lock()
	fns := make([]func(Snapshot[T]), 0, len(r.subs))
	for _, fn := range r.subs {
		fns = append(fns, fn)
	}
	r.subsMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
