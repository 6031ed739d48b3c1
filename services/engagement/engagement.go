// Package engagement decides when the signup modal is surfaced during a
// scroll session. A Trigger fires at most once per page load.
package engagement

import (
	"context"
	"sync"
)

const (
	// DefaultRatioThreshold is the fraction of the scrollable range that must be passed
	DefaultRatioThreshold = 0.8
	// DefaultMinScrollPosition is the absolute scroll offset (px) that must be passed
	DefaultMinScrollPosition = 2000
)

// ScrollMetrics is one scroll sample reported by the page
type ScrollMetrics struct {
	ScrollPosition float64 `json:"scrollY"`
	ViewportHeight float64 `json:"viewportHeight"`
	DocumentHeight float64 `json:"documentHeight"`
}

// TriggerState is the one-shot state of a trigger
type TriggerState int

const (
	Armed TriggerState = iota
	Fired
)

func (s TriggerState) String() string {
	if s == Fired {
		return "fired"
	}
	return "armed"
}

// ModalState is the visual state of the modal, orthogonal to TriggerState
type ModalState int

const (
	Hidden ModalState = iota
	Shown
	Dismissed
)

func (s ModalState) String() string {
	switch s {
	case Shown:
		return "shown"
	case Dismissed:
		return "dismissed"
	default:
		return "hidden"
	}
}

// Signal is what a trigger asks the page to do with the modal
type Signal int

const (
	None Signal = iota
	Show
	Hide
)

func (s Signal) String() string {
	switch s {
	case Show:
		return "show"
	case Hide:
		return "hide"
	default:
		return "none"
	}
}

// Options holds the firing thresholds
type Options struct {
	RatioThreshold    float64
	MinScrollPosition float64
}

// DefaultOptions returns the landing page thresholds
func DefaultOptions() Options {
	return Options{
		RatioThreshold:    DefaultRatioThreshold,
		MinScrollPosition: DefaultMinScrollPosition,
	}
}

// Ratio returns the fraction of the scrollable distance already traversed.
// ok is false when the document has no scrollable range.
func Ratio(m ScrollMetrics) (ratio float64, ok bool) {
	scrollable := m.DocumentHeight - m.ViewportHeight
	if scrollable <= 0 {
		return 0, false
	}
	return m.ScrollPosition / scrollable, true
}

// Evaluate is the pure transition function of the trigger.
func Evaluate(state TriggerState, m ScrollMetrics, opts Options) (TriggerState, Signal) {
	if state != Armed {
		return state, None
	}
	ratio, ok := Ratio(m)
	if !ok {
		return state, None
	}
	if ratio > opts.RatioThreshold && m.ScrollPosition > opts.MinScrollPosition {
		return Fired, Show
	}
	return state, None
}

// Trigger is the per-mount owner of a TriggerState and its modal state.
type Trigger struct {
	mu     sync.Mutex
	opts   Options
	state  TriggerState
	modal  ModalState
	closed bool
}

// New creates an armed trigger with the default thresholds
func New() *Trigger {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates an armed trigger with custom thresholds
func NewWithOptions(opts Options) *Trigger {
	return &Trigger{opts: opts}
}

// Observe feeds one scroll sample and returns Show the first time the firing
// rule holds. Every later sample is a no-op.
func (t *Trigger) Observe(m ScrollMetrics) Signal {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return None
	}
	next, signal := Evaluate(t.state, m, t.opts)
	t.state = next
	if signal == Show {
		t.modal = Shown
	}
	return signal
}

// Dismiss closes the modal. It never re-arms the trigger: a dismissal of a
// manually opened modal while still armed consumes the one shot, so the
// scroll rule can no longer show it. Hide is returned only for a modal the
// trigger itself showed.
func (t *Trigger) Dismiss() Signal {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed || t.modal == Dismissed {
		return None
	}
	t.state = Fired
	wasShown := t.modal == Shown
	t.modal = Dismissed
	if !wasShown {
		return None
	}
	return Hide
}

// Close tears the trigger down; afterwards it emits nothing.
func (t *Trigger) Close() {
	t.mu.Lock()
	t.closed = true
	t.mu.Unlock()
}

func (t *Trigger) State() TriggerState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *Trigger) Modal() ModalState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.modal
}

// Watch observes samples until ctx is done or the channel is closed, calling
// emit for every non-None signal. The trigger is closed when Watch returns.
func (t *Trigger) Watch(ctx context.Context, samples <-chan ScrollMetrics, emit func(Signal)) {
	defer t.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-samples:
			if !ok {
				return
			}
			if signal := t.Observe(m); signal != None {
				emit(signal)
			}
		}
	}
}
