// Package trigger coalesces bursts of data changes into single analysis
// runs. Remote analysis is expensive and rate-limited, so edits made in
// quick succession must produce one request, not one per keystroke.
package trigger

import (
	"sync"
	"time"
)

// Debouncer schedules a callback after a quiet period. Each Notify
// resets the pending timer and advances the sequence number; the
// callback receives the sequence it was scheduled under, so consumers
// can drop results that were overtaken by a later notification.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	seq     uint64
	stopped bool
	fn      func(seq uint64)
}

// NewDebouncer creates a Debouncer firing fn after delay of quiet.
// fn runs on a timer goroutine; it must do its own synchronization.
func NewDebouncer(delay time.Duration, fn func(seq uint64)) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Notify records a change and (re)starts the quiet-period timer. It
// returns the new sequence number. Only the latest notification's
// callback ever fires; earlier pending timers are cancelled.
func (d *Debouncer) Notify() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return d.seq
	}

	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.fire(seq)
	})
	return seq
}

// fire runs the callback if seq is still the latest. A Notify that
// lands between timer expiry and this check wins, and its own timer
// will fire later.
func (d *Debouncer) fire(seq uint64) {
	d.mu.Lock()
	if d.stopped || seq != d.seq {
		d.mu.Unlock()
		return
	}
	fn := d.fn
	d.mu.Unlock()

	fn(seq)
}

// Seq returns the latest sequence number issued. Results computed for
// an earlier sequence are stale.
func (d *Debouncer) Seq() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.seq
}

// Flush cancels any pending timer and fires the callback immediately
// with the current sequence. It is a no-op if nothing was notified.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.stopped || d.seq == 0 {
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	seq := d.seq
	fn := d.fn
	d.mu.Unlock()

	fn(seq)
}

// Stop cancels any pending timer and prevents future firings.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
