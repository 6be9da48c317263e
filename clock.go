package animate

import (
	"sort"
	"sync"
	"time"
)

// Timer is a handle to a scheduled function. Stop prevents the function from
// running and reports whether it did so before the function started.
type Timer interface {
	Stop() bool
}

// Clock schedules deferred work. The driver uses it for the short gap
// between a bind and its activation step that lets the renderer commit the
// reflow first.
type Clock interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// SystemClock returns the wall-clock scheduler used by default.
func SystemClock() Clock {
	return systemClock{}
}

// MockClock is a controllable Clock for tests. Scheduled functions run
// synchronously on the goroutine calling Advance, in deadline order.
type MockClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*mockTimer
}

// NewMockClock creates a mock clock at time zero.
func NewMockClock() *MockClock {
	return &MockClock{}
}

// AfterFunc schedules fn to run d after the clock's current time.
func (c *MockClock) AfterFunc(d time.Duration, fn func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &mockTimer{clock: c, when: c.now + d, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward by d and runs every timer that came due.
func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due []*mockTimer
	remaining := c.timers[:0]
	for _, t := range c.timers {
		switch {
		case t.stopped:
		case t.when <= c.now:
			t.fired = true
			due = append(due, t)
		default:
			remaining = append(remaining, t)
		}
	}
	c.timers = remaining
	sort.Slice(due, func(i, j int) bool { return due[i].when < due[j].when })
	c.mu.Unlock()

	for _, t := range due {
		t.fn()
	}
}

type mockTimer struct {
	clock   *MockClock
	when    time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *mockTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}
