package main

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"weekview/pkg/event"
	"weekview/pkg/lifecycle"
)

// memStore is the demo host store: an in-memory event list seeded with a
// few sample entries. It owns the events; the widget only reads snapshots.
type memStore struct {
	mu     sync.Mutex
	events []event.Event
}

func newMemStore(ref time.Time) *memStore {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	at := func(h, m int) time.Time { return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute) }

	return &memStore{events: []event.Event{
		{ID: uuid.NewString(), Title: "Standup", Start: at(9, 0), End: at(9, 30), Color: "green"},
		{ID: uuid.NewString(), Title: "Design review", Start: at(14, 0), End: at(15, 30), Color: "purple"},
		{ID: uuid.NewString(), Title: "1:1", Start: at(14, 0), End: at(14, 30), Color: "amber"},
	}}
}

// Snapshot returns a copy of the committed event list.
func (s *memStore) Snapshot() []event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]event.Event(nil), s.events...)
}

// Callbacks exposes the store as the widget's external boundary.
func (s *memStore) Callbacks() lifecycle.Callbacks {
	return lifecycle.Callbacks{
		OnEventSelect: func(event.Event) {},
		OnEventCreate: s.create,
		OnEventUpdate: s.update,
		OnEventDelete: s.delete,
	}
}

func (s *memStore) create(_ context.Context, d event.Draft) (event.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ev := event.Event{
		ID:    uuid.NewString(),
		Title: d.Title,
		Start: d.Start,
		End:   d.End,
		Color: d.Color,
	}
	s.events = append(s.events, ev)
	return ev, nil
}

func (s *memStore) update(_ context.Context, id string, p event.Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID != id {
			continue
		}
		if p.Title != nil {
			s.events[i].Title = *p.Title
		}
		if p.Start != nil {
			s.events[i].Start = *p.Start
		}
		if p.End != nil {
			s.events[i].End = *p.End
		}
		if p.Color != nil {
			s.events[i].Color = *p.Color
		}
		return nil
	}
	return nil
}

func (s *memStore) delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.events[:0]
	for _, ev := range s.events {
		if ev.ID != id {
			kept = append(kept, ev)
		}
	}
	s.events = kept
	return nil
}
