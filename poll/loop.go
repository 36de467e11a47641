package poll

import (
	"github.com/comalice/edgeswitch"
)

// Edge reports what a single tick observed.
type Edge struct {
	Tick uint64 // index of the sample that produced this report, starting at 0
	Rose bool
	Fell bool
}

// None reports whether the tick observed no transition.
func (e Edge) None() bool { return !e.Rose && !e.Fell }

// Loop is a synchronous polling stepper around a Switch. Each Step applies
// one observed sample and consumes any edge it produced, so a transition is
// reported on exactly one tick. Tick numbers are monotonic.
//
// Loop is single-threaded like the Switch it wraps; Runner adds the locking
// needed for live use.
type Loop struct {
	sw   edgeswitch.Switch
	tick uint64
}

// Step applies one observed sample and returns this tick's edge report.
func (l *Loop) Step(observed bool) Edge {
	l.sw.Set(observed)
	e := Edge{
		Tick: l.tick,
		Rose: l.sw.ConsumeTurnedOn(),
		Fell: l.sw.ConsumeTurnedOff(),
	}
	l.tick++
	return e
}

// Tick returns the number of samples applied so far.
func (l *Loop) Tick() uint64 { return l.tick }

// On reports the state after the most recent sample.
func (l *Loop) On() bool { return l.sw.IsOn() }

// Snapshot captures the underlying switch under the given ID.
func (l *Loop) Snapshot(id string) edgeswitch.Snapshot {
	return l.sw.Snapshot(id)
}
