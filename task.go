package animate

import (
	"sync"
	"time"
)

// task is one scheduled activation step. Cancel both stops the underlying
// timer and marks the task dead, so a fire that already left the timer heap
// cannot run after its bind cycle has been superseded.
type task struct {
	mu    sync.Mutex
	timer Timer
	done  bool
}

// startTask schedules fn on clock after d. fn runs at most once and receives
// the task itself, so callers can identify the firing cycle without sharing a
// task variable across goroutines.
func startTask(clock Clock, d time.Duration, fn func(*task)) *task {
	t := &task{}
	t.timer = clock.AfterFunc(d, func() {
		t.mu.Lock()
		if t.done {
			t.mu.Unlock()
			return
		}
		t.done = true
		t.mu.Unlock()
		fn(t)
	})
	return t
}

// Cancel prevents fn from running if it has not started yet.
func (t *task) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return
	}
	t.done = true
	if t.timer != nil {
		t.timer.Stop()
	}
}
