package animate

import (
	"log"
	"sync"
	"time"
)

// DefaultActivationDelay is the gap between a bind and its deferred
// activation step. The gap guarantees the renderer has committed the reflow
// before the class is added; rapid back-to-back binds inside the window are
// coalesced into the newest configuration.
const DefaultActivationDelay = 15 * time.Millisecond

// Option configures a Driver.
type Option func(*Driver)

// WithClock replaces the scheduler used for the deferred activation step.
func WithClock(clock Clock) Option {
	return func(d *Driver) { d.clock = clock }
}

// WithLogger replaces the logger used for invalid-configuration warnings.
func WithLogger(logger *log.Logger) Option {
	return func(d *Driver) { d.logger = logger }
}

// WithActivationDelay overrides DefaultActivationDelay.
func WithActivationDelay(delay time.Duration) Option {
	return func(d *Driver) { d.activationDelay = delay }
}

// Driver owns one element's animation lifecycle: it tears down the previous
// cycle's visual state, derives and applies the directional class and custom
// properties, forces the reflows that make a restarted animation play fresh,
// and manages the deferred activation task and completion listener. One
// driver per bound element; drivers share nothing.
type Driver struct {
	mu              sync.Mutex
	el              Element
	clock           Clock
	logger          *log.Logger
	activationDelay time.Duration

	generation     int
	firstBind      bool
	pending        *task
	removeListener func()
	onReplay       func(generation int)
}

// NewDriver creates a driver bound to el. The driver borrows el; it never
// extends the node's lifetime past the host framework's own teardown.
func NewDriver(el Element, opts ...Option) *Driver {
	d := &Driver{
		el:              el,
		clock:           SystemClock(),
		logger:          log.Default(),
		activationDelay: DefaultActivationDelay,
		firstBind:       true,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Generation returns the current replay generation. It starts at 0 and is
// advanced only by Replay, never reset.
func (d *Driver) Generation() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.generation
}

// OnReplay registers fn to run after Replay advances the generation. The
// caller is expected to re-invoke Bind with its current configuration from
// fn; that re-entry is what makes the cycle repeatable on the same element.
func (d *Driver) OnReplay(fn func(generation int)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onReplay = fn
}

// Handle is the caller-facing view of a driver: the element reference, the
// generation current at the time the handle was taken, and the replay
// trigger.
type Handle struct {
	Element    Element
	Generation int
	Replay     func()
}

// Handle returns the caller-facing handle for the driver.
func (d *Driver) Handle() Handle {
	return Handle{
		Element:    d.el,
		Generation: d.Generation(),
		Replay:     d.Replay,
	}
}

// Bind tears down any previous animation state on the element and starts a
// fresh cycle for cfg. Binding to a nil or detached element is a silent
// no-op; an unresolvable kind is logged and suppresses the animation. The
// visible class is applied on a deferred activation step after a forced
// reflow.
func (d *Driver) Bind(cfg Resolved) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.el == nil || !d.el.Alive() {
		return
	}

	d.cancelCycleLocked()

	removeAnimationClasses(d.el)
	// Transition-based rotation can leave inline transforms behind; clear
	// them so consecutive binds do not compound.
	d.el.SetStyle("transform", "")
	d.el.SetStyle("transition", "")

	rotationStart := cfg.RotationStart
	if cfg.Kind == KindRotate && cfg.ContinuousRotation {
		if deg, ok := renderedRotation(d.el); ok {
			rotationStart = deg
		}
	}

	withStart := cfg
	withStart.RotationStart = rotationStart
	class, err := withStart.ClassName()
	if err != nil {
		d.logger.Printf("animate: bind: %v", err)
		return
	}

	applyProperties(d.el, cfg, rotationStart)

	if d.firstBind && !cfg.AnimateOnMount {
		applyEndState(d.el, cfg)
		d.firstBind = false
		return
	}
	d.firstBind = false

	d.el.Reflow()
	generation := d.generation
	d.pending = startTask(d.clock, d.activationDelay, func(tk *task) {
		d.activate(cfg, class, generation, tk)
	})
}

// activate is the deferred half of Bind. It re-checks the element,
// neutralizes any inline animation override, forces a second reflow, applies
// the class, and wires the one-shot completion listener.
func (d *Driver) activate(cfg Resolved, class string, generation int, tk *task) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending != tk || generation != d.generation {
		// A newer bind or a replay superseded this cycle between fire and
		// lock acquisition.
		return
	}
	d.pending = nil
	if d.el == nil || !d.el.Alive() {
		return
	}

	d.el.SetStyle("animation", "")
	d.el.Reflow()
	d.el.AddClass(class)

	if cfg.OnComplete == nil {
		return
	}

	el := d.el
	var remove func()
	remove = el.OnAnimationEnd(func(ev CompletionEvent) {
		if ev.Target != el {
			// Bubbled completion from a descendant.
			return
		}
		d.mu.Lock()
		if d.removeListener == nil || generation != d.generation {
			d.mu.Unlock()
			return
		}
		d.removeListener = nil
		d.mu.Unlock()
		remove()
		cfg.OnComplete(ev)
	})
	d.removeListener = remove
}

// Replay cancels the superseded cycle's task and listener, strips the
// element's animation state under a temporary inline animation override,
// forces a reflow so the renderer commits the removal, restores the override
// state and advances the generation. The OnReplay hook then re-enters Bind
// with the caller's current configuration. The generation advances even when
// the element is detached.
func (d *Driver) Replay() {
	d.mu.Lock()
	d.cancelCycleLocked()
	if d.el != nil && d.el.Alive() {
		previous := d.el.Style("animation")
		d.el.SetStyle("animation", "none")
		removeAnimationClasses(d.el)
		d.el.Reflow()
		d.el.SetStyle("animation", previous)
	}
	d.generation++
	generation := d.generation
	fn := d.onReplay
	d.mu.Unlock()

	if fn != nil {
		fn(generation)
	}
}

// Unbind cancels any pending activation task and detaches the completion
// listener. The element's current classes are left untouched; the host
// framework tears the node down on its own schedule.
func (d *Driver) Unbind() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelCycleLocked()
}

// cancelCycleLocked releases the previous cycle's task and listener. Callers
// hold d.mu.
func (d *Driver) cancelCycleLocked() {
	if d.pending != nil {
		d.pending.Cancel()
		d.pending = nil
	}
	if d.removeListener != nil {
		d.removeListener()
		d.removeListener = nil
	}
}
