package poll

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

// Test live sampling: flipping the source produces a rise report, flipping
// it back produces a fall report.
func TestRunnerReportsEdges(t *testing.T) {
	var observed atomic.Bool

	r, err := NewRunner(observed.Load, Config{TickRate: time.Millisecond})
	if err != nil {
		t.Fatal(err)
	}

	if err := r.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer r.Stop()

	observed.Store(true)
	e := waitReport(t, r)
	if !e.Rose || e.Fell {
		t.Fatalf("expected rise report, got %+v", e)
	}

	observed.Store(false)
	e = waitReport(t, r)
	if e.Rose || !e.Fell {
		t.Fatalf("expected fall report, got %+v", e)
	}
}

// Test lifecycle: double start fails, stop is idempotent, restart works.
func TestRunnerLifecycle(t *testing.T) {
	r, err := NewRunner(func() bool { return false }, Config{TickRate: time.Millisecond})
	if err != nil {
		t.Fatal(err)
	}

	if err := r.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := r.Start(context.Background()); err == nil {
		t.Error("expected second Start to fail")
	}

	r.Stop()
	r.Stop() // idempotent

	if err := r.Start(context.Background()); err != nil {
		t.Errorf("expected restart to succeed, got %v", err)
	}
	r.Stop()
}

// Test constructor validation.
func TestRunnerNilSource(t *testing.T) {
	if _, err := NewRunner(nil, Config{}); err == nil {
		t.Error("expected error for nil source")
	}
}

func waitReport(t *testing.T, r *Runner) Edge {
	t.Helper()
	select {
	case e := <-r.Reports():
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for edge report")
		return Edge{}
	}
}
