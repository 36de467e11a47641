package edgeswitch

import (
	"errors"
	"time"
)

// Snapshot is a serializable capture of a Switch. The persisters under
// internal/production write these to disk; anything that can round-trip
// the three booleans works.
type Snapshot struct {
	ID        string    `json:"id" yaml:"id"`
	On        bool      `json:"on" yaml:"on"`
	Rose      bool      `json:"rose,omitempty" yaml:"rose,omitempty"`
	Fell      bool      `json:"fell,omitempty" yaml:"fell,omitempty"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// Snapshot captures the current state and pending edge under the given ID.
func (s *Switch) Snapshot(id string) Snapshot {
	return Snapshot{
		ID:        id,
		On:        s.state,
		Rose:      s.rose,
		Fell:      s.fell,
		Timestamp: time.Now(),
	}
}

// ErrInvalidSnapshot is returned by Restore for a snapshot no sequence of
// setter calls could have produced.
var ErrInvalidSnapshot = errors.New("snapshot has both rising and falling edges pending")

// Restore overwrites the switch from a snapshot. A snapshot claiming both
// a pending rise and a pending fall is rejected; a single transition is
// one or the other, never both.
func (s *Switch) Restore(snap Snapshot) error {
	if snap.Rose && snap.Fell {
		return ErrInvalidSnapshot
	}
	s.state = snap.On
	s.rose = snap.Rose
	s.fell = snap.Fell
	return nil
}
