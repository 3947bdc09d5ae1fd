// Package event defines the calendar event value types shared by the
// layout engine and the lifecycle façade. Events are owned by the host's
// store; the widget only ever holds a read-only snapshot per render pass
// and expresses changes as Draft/Patch requests.
package event

import "time"

// Event is a single committed calendar entry. ID is an opaque unique
// identifier assigned by the host store. End is strictly after Start.
type Event struct {
	ID    string
	Title string
	Start time.Time
	End   time.Time
	Color string // optional renderer hint, empty = default
}

// Draft is the payload handed to the host's create callback. The host
// assigns the ID and returns the persisted Event.
type Draft struct {
	Title string
	Start time.Time
	End   time.Time
	Color string
}

// Patch is a partial update; nil fields are left unchanged by the host.
type Patch struct {
	Title *string
	Start *time.Time
	End   *time.Time
	Color *string
}

// Duration returns the event length.
func (e Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// Overlaps reports whether the event's half-open [Start, End) interval
// intersects [from, to).
func (e Event) Overlaps(from, to time.Time) bool {
	return e.Start.Before(to) && e.End.After(from)
}
