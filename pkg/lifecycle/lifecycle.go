// Package lifecycle orchestrates event mutations against host-supplied
// callbacks. The host's store is the single source of truth: the façade
// never caches or reconciles event state, it only forwards requests,
// guards against concurrent creates, and reports failures to the log sink.
package lifecycle

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"weekview/pkg/event"
)

// Validation errors. None of these reach the host callbacks.
var (
	ErrBlankTitle     = errors.New("title is blank")
	ErrNoSelection    = errors.New("no selection range")
	ErrCreateInFlight = errors.New("a create is already in flight")
)

// Callbacks are the external boundary operations the widget consumes.
// OnEventCreate must return the persisted event with its assigned ID;
// the caller appends it to the live snapshot.
type Callbacks struct {
	OnEventSelect func(ev event.Event)
	OnEventCreate func(ctx context.Context, draft event.Draft) (event.Event, error)
	OnEventUpdate func(ctx context.Context, id string, patch event.Patch) error
	OnEventDelete func(ctx context.Context, id string) error
}

// Facade serializes create attempts and exposes a process-wide busy flag
// covering all three mutating operations. Update and delete carry no
// mutual-exclusion guard of their own and may race; that is accepted.
type Facade struct {
	cb  Callbacks
	log *zap.Logger

	busy           atomic.Int32
	createInFlight atomic.Bool
}

// New returns a façade over the given callbacks. A nil logger falls back
// to a no-op sink.
func New(cb Callbacks, log *zap.Logger) *Facade {
	if log == nil {
		log = zap.NewNop()
	}
	return &Facade{cb: cb, log: log}
}

// Busy reports whether any mutating operation is outstanding. The widget
// suppresses interaction while true.
func (f *Facade) Busy() bool {
	return f.busy.Load() > 0
}

// Create validates the draft and forwards it to the host. Blank titles
// (after trimming) and missing/inverted ranges are refused without any
// external call. Concurrent creates while one is pending are dropped, not
// queued. The busy flag is always released, including on callback failure,
// so the UI can never stick in a busy state.
func (f *Facade) Create(ctx context.Context, title string, start, end time.Time, color string) (event.Event, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return event.Event{}, ErrBlankTitle
	}
	if start.IsZero() || end.IsZero() || !end.After(start) {
		return event.Event{}, ErrNoSelection
	}
	if !f.createInFlight.CompareAndSwap(false, true) {
		return event.Event{}, ErrCreateInFlight
	}
	defer f.createInFlight.Store(false)

	f.busy.Add(1)
	defer f.busy.Add(-1)

	ev, err := f.cb.OnEventCreate(ctx, event.Draft{
		Title: title,
		Start: start,
		End:   end,
		Color: color,
	})
	if err != nil {
		f.log.Error("event create failed",
			zap.String("title", title),
			zap.Time("start", start),
			zap.Error(err))
		return event.Event{}, err
	}

	f.log.Info("event created", zap.String("id", ev.ID), zap.String("title", ev.Title))
	return ev, nil
}

// Select notifies the host that an event was opened. Fire-and-forget.
func (f *Facade) Select(ev event.Event) {
	if f.cb.OnEventSelect != nil {
		f.cb.OnEventSelect(ev)
	}
}

// Update forwards a partial update to the host. The snapshot is not
// touched; the host publishes a fresh one.
func (f *Facade) Update(ctx context.Context, id string, patch event.Patch) error {
	f.busy.Add(1)
	defer f.busy.Add(-1)

	if err := f.cb.OnEventUpdate(ctx, id, patch); err != nil {
		f.log.Error("event update failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// Delete forwards a deletion to the host.
func (f *Facade) Delete(ctx context.Context, id string) error {
	f.busy.Add(1)
	defer f.busy.Add(-1)

	if err := f.cb.OnEventDelete(ctx, id); err != nil {
		f.log.Error("event delete failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}
