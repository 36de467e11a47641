package poll

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Source is sampled once per tick for the externally observed state.
type Source func() bool

// Config configures a Runner.
type Config struct {
	TickRate time.Duration // sampling interval (default: 60 Hz)
	Buffer   int           // report channel capacity (default: 64)
}

// Runner samples a Source at a fixed tick rate and delivers edge reports on
// a channel. Ticks that observe no transition emit nothing. The embedded
// Loop is guarded by a mutex; this is the external mutual exclusion the
// core Switch deliberately does not provide.
type Runner struct {
	src      Source
	tickRate time.Duration
	reports  chan Edge

	mu   sync.Mutex
	loop Loop

	cancel  context.CancelFunc
	stopped chan struct{}
}

// NewRunner creates a stopped Runner for the given source.
func NewRunner(src Source, cfg Config) (*Runner, error) {
	if src == nil {
		return nil, errors.New("nil source")
	}
	if cfg.TickRate == 0 {
		cfg.TickRate = 16667 * time.Microsecond // 60 Hz
	}
	if cfg.Buffer == 0 {
		cfg.Buffer = 64
	}
	return &Runner{
		src:      src,
		tickRate: cfg.TickRate,
		reports:  make(chan Edge, cfg.Buffer),
	}, nil
}

// Start begins sampling until ctx is canceled or Stop is called.
func (r *Runner) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return errors.New("runner already started")
	}
	ctx, r.cancel = context.WithCancel(ctx)
	r.stopped = make(chan struct{})
	go r.run(ctx)
	return nil
}

func (r *Runner) run(ctx context.Context) {
	defer close(r.stopped)

	ticker := time.NewTicker(r.tickRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.sample()
		}
	}
}

func (r *Runner) sample() {
	r.mu.Lock()
	e := r.loop.Step(r.src())
	r.mu.Unlock()

	if e.None() {
		return
	}

	select {
	case r.reports <- e:
	default:
		// Channel full: drop the oldest pending report rather than
		// stall the sampler.
		select {
		case <-r.reports:
		default:
		}
		select {
		case r.reports <- e:
		default:
		}
	}
}

// Reports returns the channel edge reports are delivered on.
func (r *Runner) Reports() <-chan Edge { return r.reports }

// On reports the most recently sampled state.
func (r *Runner) On() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loop.On()
}

// Stop halts sampling and waits for the sampler goroutine to exit. A
// stopped Runner may be started again; its switch state carries over.
func (r *Runner) Stop() {
	r.mu.Lock()
	cancel := r.cancel
	stopped := r.stopped
	r.cancel = nil
	r.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-stopped
}
