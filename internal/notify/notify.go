// Package notify is the notification surface: fire-and-forget toasts.
// Core logic never consumes a return value from it.
package notify

import (
	"log/slog"
	"sync"
	"time"
)

// Default display durations, matching the short/long toast convention.
const (
	DurationShort = 2 * time.Second
	DurationLong  = 3500 * time.Millisecond
)

// Notifier shows a user-facing message. Implementations are injected
// at startup, never selected per call.
type Notifier interface {
	Show(message string, duration time.Duration)
}

// SlogNotifier writes notifications to a structured logger. This is the
// headless implementation; an app shell would render toasts instead.
type SlogNotifier struct {
	Logger *slog.Logger
}

// Show logs the message at info level.
func (n SlogNotifier) Show(message string, duration time.Duration) {
	logger := n.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("notification", "message", message, "duration", duration)
}

// Recorder captures notifications for tests.
//
// Thread-safety: safe for concurrent use; Show may be called from timer
// goroutines.
type Recorder struct {
	mu       sync.Mutex
	messages []string
}

// Show records the message.
func (r *Recorder) Show(message string, duration time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
}

// Messages returns the recorded messages in order.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.messages...)
}
