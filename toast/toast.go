// Package toast is the notification sink behind store mutations: short
// human-readable messages with a severity, kept for a fixed display duration
// and then dropped.
package toast

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Severity string

const (
	Success Severity = "success"
	Error   Severity = "error"
	Warning Severity = "warning"
	Info    Severity = "info"
)

// DefaultDuration matches the display duration of the customer-facing toast
// container.
const DefaultDuration = 3 * time.Second

type Toast struct {
	ID       string   `json:"id"`
	Message  string   `json:"message"`
	Severity Severity `json:"type"`
}

// Notifier receives event notifications, fire-and-forget.
type Notifier interface {
	Notify(message string, severity Severity)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(message string, severity Severity)

func (f NotifierFunc) Notify(message string, severity Severity) {
	f(message, severity)
}

// Multi fans a notification out to several sinks.
func Multi(notifiers ...Notifier) Notifier {
	return NotifierFunc(func(message string, severity Severity) {
		for _, n := range notifiers {
			n.Notify(message, severity)
		}
	})
}

// Queue holds active toasts and expires each one after the display duration.
type Queue struct {
	mu       sync.Mutex
	duration time.Duration
	toasts   []Toast
}

func NewQueue(duration time.Duration) *Queue {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Queue{duration: duration}
}

func (q *Queue) Notify(message string, severity Severity) {
	if severity == "" {
		severity = Info
	}
	t := Toast{
		ID:       uuid.NewString(),
		Message:  message,
		Severity: severity,
	}

	q.mu.Lock()
	q.toasts = append(q.toasts, t)
	q.mu.Unlock()

	time.AfterFunc(q.duration, func() {
		q.Remove(t.ID)
	})
}

func (q *Queue) Remove(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, t := range q.toasts {
		if t.ID == id {
			q.toasts = append(q.toasts[:i], q.toasts[i+1:]...)
			return
		}
	}
}

// Active returns the toasts that have not expired yet.
func (q *Queue) Active() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Toast, len(q.toasts))
	copy(out, q.toasts)
	return out
}
