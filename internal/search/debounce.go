package search

import (
	"sync"
	"time"
)

// DefaultDelay is the quiet period a query must hold before it takes effect.
const DefaultDelay = 300 * time.Millisecond

// Debouncer delays a callback until its input has been stable for a fixed
// delay. Every Trigger cancels the pending task and schedules a new one, so
// only the last value of a burst is delivered.
//
// The Debouncer is owned by whoever created it and must be stopped when that
// owner goes away; Stop cancels the pending task and ignores later triggers.
// Callbacks never overlap, and a callback superseded while waiting for an
// earlier one to finish is dropped.
type Debouncer[T any] struct {
	runMu sync.Mutex // held while fn runs

	mu      sync.Mutex
	delay   time.Duration
	fn      func(T)
	timer   *time.Timer
	seq     uint64
	stopped bool
}

// NewDebouncer creates a Debouncer calling fn after delay. A non-positive
// delay falls back to DefaultDelay.
func NewDebouncer[T any](delay time.Duration, fn func(T)) *Debouncer[T] {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer[T]{
		delay: delay,
		fn:    fn,
	}
}

// Delay returns the configured quiet period.
func (d *Debouncer[T]) Delay() time.Duration {
	return d.delay
}

// Trigger schedules fn(value), superseding any pending call.
func (d *Debouncer[T]) Trigger(value T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if d.timer != nil {
		d.timer.Stop()
	}

	d.seq++
	seq := d.seq
	d.timer = time.AfterFunc(d.delay, func() {
		d.fire(seq, value)
	})
}

// fire runs fn unless the task was superseded or cancelled after its timer
// had already expired.
func (d *Debouncer[T]) fire(seq uint64, value T) {
	d.runMu.Lock()
	defer d.runMu.Unlock()

	d.mu.Lock()
	if d.stopped || seq != d.seq {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	d.fn(value)
}

// Flush cancels the pending call and calls fn(value) right away, after any
// callback already running. It does nothing once the Debouncer is stopped.
func (d *Debouncer[T]) Flush(value T) {
	d.runMu.Lock()
	defer d.runMu.Unlock()

	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.cancelLocked()
	d.mu.Unlock()

	d.fn(value)
}

// Pending reports whether a call is scheduled and not yet delivered.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Cancel drops the pending call, if any. The Debouncer stays usable.
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
}

// Stop cancels the pending call and disables the Debouncer.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
	d.stopped = true
}

func (d *Debouncer[T]) cancelLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	// Invalidate a callback whose timer already fired but has not yet
	// acquired the lock.
	d.seq++
}
