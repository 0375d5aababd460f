package state

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func waitPhase[T any](t *testing.T, r *Resource[T], want Phase) Snapshot[T] {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		snap := r.Snapshot()
		if snap.Phase == want {
			return snap
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("resource never reached phase %q, stuck at %q", want, r.Snapshot().Phase)
	return Snapshot[T]{}
}

func TestResourceLifecycle(t *testing.T) {
	r := NewResource[string]()

	if got := r.Snapshot().Phase; got != PhaseIdle {
		t.Fatalf("initial phase = %q, want %q", got, PhaseIdle)
	}

	r.Load(context.Background(), "prop_1", func(ctx context.Context, key string) (string, error) {
		return "value-for-" + key, nil
	})

	snap := waitPhase(t, r, PhaseReady)
	if snap.Data != "value-for-prop_1" {
		t.Errorf("Data = %q, want %q", snap.Data, "value-for-prop_1")
	}
	if !snap.HasData {
		t.Errorf("HasData = false, want true")
	}
	if snap.Err != nil {
		t.Errorf("Err = %v, want nil", snap.Err)
	}
}

func TestResourceFailureRetainsData(t *testing.T) {
	r := NewResource[string]()

	r.Load(context.Background(), "a", func(ctx context.Context, key string) (string, error) {
		return "good", nil
	})
	waitPhase(t, r, PhaseReady)

	fetchErr := errors.New("backend down")
	r.Load(context.Background(), "b", func(ctx context.Context, key string) (string, error) {
		return "", fetchErr
	})
	snap := waitPhase(t, r, PhaseFailed)

	if !errors.Is(snap.Err, fetchErr) {
		t.Errorf("Err = %v, want %v", snap.Err, fetchErr)
	}
	if !snap.HasData || snap.Data != "good" {
		t.Errorf("failed fetch dropped last known data: HasData=%v Data=%q", snap.HasData, snap.Data)
	}
}

// A slow response for the first key must never overwrite the result of
// a fetch started afterwards for a second key.
func TestResourceStaleResponseDiscarded(t *testing.T) {
	r := NewResource[string]()

	firstStarted := make(chan struct{})
	release := make(chan struct{})

	r.Load(context.Background(), "id", func(ctx context.Context, key string) (string, error) {
		close(firstStarted)
		<-release
		return "stale", nil
	})
	<-firstStarted

	r.Load(context.Background(), "id2", func(ctx context.Context, key string) (string, error) {
		return "fresh", nil
	})
	waitPhase(t, r, PhaseReady)

	// Let the first fetch complete late, then give it a moment to
	// (incorrectly) apply if the guard were missing.
	close(release)
	time.Sleep(20 * time.Millisecond)

	snap := r.Snapshot()
	if snap.Key != "id2" {
		t.Errorf("Key = %q, want %q", snap.Key, "id2")
	}
	if snap.Data != "fresh" {
		t.Errorf("Data = %q, want %q: stale response overwrote fresh data", snap.Data, "fresh")
	}
	if snap.Phase != PhaseReady {
		t.Errorf("Phase = %q, want %q", snap.Phase, PhaseReady)
	}
}

func TestResourceReset(t *testing.T) {
	r := NewResource[int]()

	r.Load(context.Background(), "k", func(ctx context.Context, key string) (int, error) {
		return 42, nil
	})
	waitPhase(t, r, PhaseReady)

	r.Reset()
	snap := r.Snapshot()
	if snap.Phase != PhaseIdle {
		t.Errorf("Phase = %q, want %q", snap.Phase, PhaseIdle)
	}
	if snap.HasData || snap.Data != 0 {
		t.Errorf("Reset kept data: HasData=%v Data=%d", snap.HasData, snap.Data)
	}
}

func TestResourceSubscribe(t *testing.T) {
	r := NewResource[string]()

	var mu sync.Mutex
	var phases []Phase
	cancel := r.Subscribe(func(snap Snapshot[string]) {
		mu.Lock()
		phases = append(phases, snap.Phase)
		mu.Unlock()
	})
	defer cancel()

	r.Load(context.Background(), "k", func(ctx context.Context, key string) (string, error) {
		return "v", nil
	})
	waitPhase(t, r, PhaseReady)

	mu.Lock()
	defer mu.Unlock()
	if len(phases) != 2 || phases[0] != PhaseLoading || phases[1] != PhaseReady {
		t.Errorf("observed phases = %v, want [loading ready]", phases)
	}
}

func TestMutationTracksInFlightAndError(t *testing.T) {
	m := NewMutation()

	if m.InFlight() != 0 {
		t.Fatalf("InFlight = %d, want 0", m.InFlight())
	}

	entered := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		m.Run(context.Background(), func(ctx context.Context) error {
			close(entered)
			<-release
			return nil
		})
	}()
	<-entered

	if m.InFlight() != 1 {
		t.Errorf("InFlight during run = %d, want 1", m.InFlight())
	}
	close(release)
	<-done

	if m.InFlight() != 0 {
		t.Errorf("InFlight after run = %d, want 0", m.InFlight())
	}

	wantErr := errors.New("save failed")
	if err := m.Run(context.Background(), func(ctx context.Context) error { return wantErr }); !errors.Is(err, wantErr) {
		t.Errorf("Run error = %v, want %v", err, wantErr)
	}
	if !errors.Is(m.Err(), wantErr) {
		t.Errorf("Err() = %v, want %v", m.Err(), wantErr)
	}
}
