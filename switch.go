package edgeswitch

// Switch is a binary switch that remembers whether the most recent state
// change was a rising (off to on) or falling (on to off) edge. It is built
// for polling consumers that need to tell "is currently on" apart from
// "just became on this cycle": call one of the setters once per observation,
// then query edges either non-destructively (JustTurnedOn/JustTurnedOff) or
// destructively (ConsumeTurnedOn/ConsumeTurnedOff).
//
// The zero value is ready to use: off, with no pending edges.
//
// Switch is a plain value with no internal locking. Copies are fully
// independent. Callers sharing one Switch across goroutines must provide
// their own mutual exclusion; the poll package does exactly that for live
// sampling.
type Switch struct {
	state bool
	rose  bool // last change was a rise, not yet consumed
	fell  bool // last change was a fall, not yet consumed
}

// At most one of rose/fell is true at any time. A rise clears a pending
// fall and vice versa; a same-state call flattens its own direction's flag
// and never touches the other's.

// SetOn sets the switch to on. If it was off, this records a rising edge
// and clears any pending falling edge. If it was already on, no edge
// occurred and any stale rising edge is flattened to false.
func (s *Switch) SetOn() {
	if !s.state {
		s.rose = true
		s.fell = false
	} else {
		s.rose = false
	}
	s.state = true
}

// SetOff sets the switch to off. If it was on, this records a falling edge
// and clears any pending rising edge. If it was already off, no edge
// occurred and any stale falling edge is flattened to false.
func (s *Switch) SetOff() {
	if s.state {
		s.fell = true
		s.rose = false
	} else {
		s.fell = false
	}
	s.state = false
}

// Set dispatches to SetOn or SetOff depending on v.
func (s *Switch) Set(v bool) {
	if v {
		s.SetOn()
	} else {
		s.SetOff()
	}
}

// IsOn reports the current state. Pure read.
func (s *Switch) IsOn() bool { return s.state }

// JustTurnedOn reports whether the most recent state change was a rising
// edge that has not yet been consumed. Pure read: repeated calls keep
// returning the same value until the next setter or consuming read.
func (s *Switch) JustTurnedOn() bool { return s.rose }

// JustTurnedOff is the falling-edge counterpart of JustTurnedOn.
func (s *Switch) JustTurnedOff() bool { return s.fell }

// ConsumeTurnedOn reports a pending rising edge and clears it, so of any
// run of consecutive calls with no setter in between, at most the first
// returns true.
func (s *Switch) ConsumeTurnedOn() bool {
	if s.rose {
		s.rose = false
		return true
	}
	return false
}

// ConsumeTurnedOff is the falling-edge counterpart of ConsumeTurnedOn.
func (s *Switch) ConsumeTurnedOff() bool {
	if s.fell {
		s.fell = false
		return true
	}
	return false
}
