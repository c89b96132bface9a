// Package debounce provides a cancellable scheduled-task primitive: an
// action runs only after a quiet period with no new triggers.
package debounce

import (
	"sync"
	"time"
)

// Debouncer delays a function until its delay has elapsed without another
// Schedule call. Scheduling replaces any previously scheduled run that has
// not fired yet, so only the trailing trigger of a burst executes.
//
// Debouncer is safe for concurrent use. The scheduled function runs on a
// timer goroutine; at most one pending run exists at a time, but a run that
// has already started is not interrupted by a later Schedule.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Schedule arranges for fn to run after the quiet period, cancelling any
// pending unexecuted run.
func (d *Debouncer) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels the pending run, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
