package poll

import (
	"testing"
)

// Test the canonical button sequence: one rise at tick 2, one fall at tick 4,
// nothing elsewhere.
func TestLoopCanonicalSequence(t *testing.T) {
	samples := []bool{false, false, true, true, false, false}

	var loop Loop
	for i, sample := range samples {
		e := loop.Step(sample)

		if e.Tick != uint64(i) {
			t.Errorf("step %d: tick = %d", i, e.Tick)
		}

		switch i {
		case 2:
			if !e.Rose || e.Fell {
				t.Errorf("tick 2: expected rise only, got %+v", e)
			}
		case 4:
			if e.Rose || !e.Fell {
				t.Errorf("tick 4: expected fall only, got %+v", e)
			}
		default:
			if !e.None() {
				t.Errorf("tick %d: expected no edge, got %+v", i, e)
			}
		}
	}

	if loop.Tick() != uint64(len(samples)) {
		t.Errorf("expected %d ticks applied, got %d", len(samples), loop.Tick())
	}
	if loop.On() {
		t.Error("expected loop off after final sample")
	}
}

// Test that Step consumes edges: the same transition never reports twice.
func TestLoopReportsEachEdgeOnce(t *testing.T) {
	var loop Loop

	if e := loop.Step(true); !e.Rose {
		t.Fatal("expected rise on first on-sample")
	}
	if e := loop.Step(true); !e.None() {
		t.Errorf("expected no edge on repeated on-sample, got %+v", e)
	}
}

// Test Loop snapshots: captures the state after the most recent sample.
func TestLoopSnapshot(t *testing.T) {
	var loop Loop
	loop.Step(true)

	snap := loop.Snapshot("loop-1")
	if snap.ID != "loop-1" || !snap.On {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	// Step consumed the rise, so the snapshot carries no pending edge.
	if snap.Rose || snap.Fell {
		t.Errorf("expected no pending edge in snapshot, got %+v", snap)
	}
}
