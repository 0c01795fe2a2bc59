// Package loop hosts a game on its own goroutine. The Runner owns the frame
// clock and is the only goroutine that touches game state; frontends reach
// it through HeldKeys, the Prompter and Do.
package loop

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Runner is a core.Scheduler driven by a time.Ticker.
type Runner struct {
	interval time.Duration
	logger   *log.Logger

	pending func() // Next tick callback; runner goroutine only
	calls   chan func()
	frames  uint64

	done     chan struct{}
	doneOnce sync.Once
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithRunnerLogger sets the runner's logger.
func WithRunnerLogger(l *log.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRunner creates a runner ticking tickRate times per second.
// A non-positive rate falls back to 60.
func NewRunner(tickRate int, opts ...RunnerOption) *Runner {
	if tickRate <= 0 {
		tickRate = 60
	}
	r := &Runner{
		interval: time.Second / time.Duration(tickRate),
		logger:   log.New(io.Discard),
		calls:    make(chan func(), 16),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RequestTick registers fn for the next frame, replacing any callback that
// is already pending. It must be called from the runner goroutine, which
// includes tick callbacks and functions passed to Do, or before Run starts.
func (r *Runner) RequestTick(fn func()) {
	r.pending = fn
}

// Do queues fn to run on the runner goroutine between frames.
// Returns false if the runner has stopped.
func (r *Runner) Do(fn func()) bool {
	select {
	case <-r.done:
		return false
	default:
	}

	select {
	case r.calls <- fn:
		return true
	case <-r.done:
		return false
	}
}

// Run drives the frame clock until ctx is cancelled or Stop is called.
func (r *Runner) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, r.Stop)
	defer stop()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Debug("runner started", "interval", r.interval)
	defer func() {
		r.logger.Debug("runner stopped", "frames", r.frames)
	}()

	for {
		// Stop wins over a ready tick
		select {
		case <-r.done:
			return nil
		default:
		}

		select {
		case <-r.done:
			return nil
		case fn := <-r.calls:
			fn()
		case <-ticker.C:
			r.fire()
		}
	}
}

// fire runs the pending callback, if any.
func (r *Runner) fire() {
	fn := r.pending
	if fn == nil {
		return
	}
	r.pending = nil
	r.frames++
	fn()
}

// Stop ends Run. Safe to call multiple times and from any goroutine.
func (r *Runner) Stop() {
	r.doneOnce.Do(func() {
		close(r.done)
	})
}

// Done returns a channel that closes when the runner stops.
func (r *Runner) Done() <-chan struct{} {
	return r.done
}

// Frames returns how many tick callbacks have been delivered.
// Only meaningful from the runner goroutine or after Run returns.
func (r *Runner) Frames() uint64 {
	return r.frames
}
