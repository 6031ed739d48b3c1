package typewriter

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is the reference reveal cadence
const DefaultInterval = 50 * time.Millisecond

// Animator drives a Reveal on a ticker and hands every frame to emit.
//
// Only one run is active at a time. Start and Stop wait for the previous run's
// goroutine to exit, so once they return no frame of the old run is emitted.
type Animator struct {
	parent   context.Context
	interval time.Duration
	emit     func(Frame)

	mu      sync.Mutex
	source  string
	started bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewAnimator creates an idle animator. Cancelling ctx stops any run.
func NewAnimator(ctx context.Context, interval time.Duration, emit func(Frame)) *Animator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Animator{
		parent:   ctx,
		interval: interval,
		emit:     emit,
	}
}

// Start reveals source from the beginning, invalidating any in-flight run.
// Starting with the source already assigned is a no-op and returns false.
func (a *Animator) Start(source string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.started && a.source == source {
		return false
	}
	a.stopLocked()

	if a.parent.Err() != nil {
		return false
	}

	ctx, cancel := context.WithCancel(a.parent)
	done := make(chan struct{})
	a.source = source
	a.started = true
	a.cancel = cancel
	a.done = done

	go a.run(ctx, New(source), done)
	return true
}

// Stop cancels the current run and waits for it to exit.
func (a *Animator) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopLocked()
	a.started = false
	a.source = ""
}

// Wait blocks until the current run completes or is cancelled.
func (a *Animator) Wait() {
	a.mu.Lock()
	done := a.done
	a.mu.Unlock()

	if done != nil {
		<-done
	}
}

// Source returns the string of the current run
func (a *Animator) Source() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.source
}

func (a *Animator) stopLocked() {
	if a.cancel == nil {
		return
	}
	a.cancel()
	<-a.done
	a.cancel = nil
}

func (a *Animator) run(ctx context.Context, r *Reveal, done chan struct{}) {
	defer close(done)

	a.emit(r.Frame())
	if r.Done() {
		return
	}

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// A tick and a cancel can be ready together
			if ctx.Err() != nil {
				return
			}
			r.Tick()
			a.emit(r.Frame())
			if r.Done() {
				return
			}
		}
	}
}
