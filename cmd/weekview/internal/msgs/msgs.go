// Package msgs holds the typed tea.Msg values crossing between the model
// and its asynchronous commands.
package msgs

import "weekview/pkg/event"

// CreateDoneMsg is returned by the tea.Cmd that calls the lifecycle
// façade's Create. On success Event carries the persisted event for the
// caller to append to its snapshot.
type CreateDoneMsg struct {
	Event event.Event
	Err   error
}

// UpdateDoneMsg is returned after an update attempt. Events is the store's
// refreshed snapshot (the store is the source of truth).
type UpdateDoneMsg struct {
	Events []event.Event
	Err    error
}

// DeleteDoneMsg is returned after a delete attempt.
type DeleteDoneMsg struct {
	Events []event.Event
	Err    error
}
