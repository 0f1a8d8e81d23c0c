package search

import (
	"sync"
	"time"
)

// DefaultDebounceInterval is the pause after the last keystroke before
// suggestions are recomputed. Matches the ~300ms the search page waits.
const DefaultDebounceInterval = 300 * time.Millisecond

// Debouncer delays a function until its trigger has been quiet for the
// configured interval. A new Trigger supersedes the pending timer
// rather than queuing behind it, so a burst of keystrokes runs the
// function exactly once.
//
// This is a UI-performance concern only: callers that want immediate
// resolution call the function directly.
//
// Thread-safety: Trigger and Stop are safe for concurrent use; the
// wrapped function fires on a runtime timer goroutine.
type Debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	fn       func()
	timer    *time.Timer
}

// NewDebouncer creates a debouncer around fn. A non-positive interval
// falls back to DefaultDebounceInterval.
func NewDebouncer(interval time.Duration, fn func()) *Debouncer {
	if interval <= 0 {
		interval = DefaultDebounceInterval
	}
	return &Debouncer{interval: interval, fn: fn}
}

// Trigger schedules the function to run after the interval, cancelling
// any pending run first.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, d.fn)
}

// Stop cancels any pending run. Safe to call multiple times.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
