// Package poll provides the host side of an edge-tracking switch: tick-based
// sampling of an observed boolean, with each transition reported exactly once.
//
// Two styles are offered:
//   - Loop: synchronous, single-threaded, fully deterministic. One Step call
//     per observation cycle. The caller owns the cadence.
//   - Runner: live sampling of a Source on a fixed time.Ticker, edge reports
//     delivered on a channel. The Runner guards its Loop with a mutex so the
//     core Switch can stay lock-free.
//
// Scenarios (recorded sample sequences, YAML on disk) replay through a Loop
// and always produce the same edge reports, which makes captured input
// traces reusable in tests and debugging sessions.
//
// # Example Usage
//
//	var loop poll.Loop
//	for _, observed := range samples {
//		if e := loop.Step(observed); e.Rose {
//			fmt.Println("turned on at tick", e.Tick)
//		}
//	}
package poll
