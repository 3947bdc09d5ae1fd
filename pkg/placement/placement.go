// Package placement decides which events occupy which slot and how
// simultaneous events share a day column: each group of events with an
// identical start instant is split into equal-width sub-columns, later
// columns stacking above earlier ones.
package placement

import (
	"sort"
	"time"

	"weekview/pkg/event"
	"weekview/pkg/timegrid"
)

// Entry is the ephemeral visual placement of one event within its starting
// slot. Width and offset are percentages of the day column; StackIndex is
// the z-order (higher renders above). Entries are recomputed every render
// and never persisted.
type Entry struct {
	Event      event.Event
	WidthPct   float64
	LeftPct    float64
	StackIndex int
}

// SlotEvents returns the subset of events overlapping the slot's half-open
// [start, end) window. An event ending exactly at slot start is excluded,
// as is one starting exactly at slot end.
func SlotEvents(g timegrid.Grid, day time.Time, slotIndex int, events []event.Event) []event.Event {
	slotStart := g.SlotStart(day, slotIndex)
	slotEnd := g.SlotEnd(day, slotIndex)

	var out []event.Event
	for _, ev := range events {
		if ev.Overlaps(slotStart, slotEnd) {
			out = append(out, ev)
		}
	}
	return out
}

// Layout computes column placements for the events whose start instant
// falls inside the given slot. An event spanning multiple slots is placed
// once, here in its starting slot; SlotSpan tells the renderer how many
// rows the block covers.
//
// Events are grouped by identical start instant only. Overlapping events
// with staggered starts are not re-partitioned and will visually collide;
// stronger interval coloring is out of scope.
func Layout(g timegrid.Grid, day time.Time, slotIndex int, events []event.Event) []Entry {
	slotStart := g.SlotStart(day, slotIndex)
	slotEnd := g.SlotEnd(day, slotIndex)

	var starting []event.Event
	for _, ev := range events {
		if !ev.Start.Before(slotStart) && ev.Start.Before(slotEnd) {
			starting = append(starting, ev)
		}
	}
	if len(starting) == 0 {
		return nil
	}

	// Group by exact start instant, keeping first-seen group order.
	groups := make(map[int64][]event.Event)
	var order []int64
	for _, ev := range starting {
		key := ev.Start.UnixNano()
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], ev)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	var entries []Entry
	for _, key := range order {
		group := groups[key]
		sort.Slice(group, func(i, j int) bool {
			di, dj := group[i].Duration(), group[j].Duration()
			if di != dj {
				return di > dj // longer first
			}
			return group[i].Title < group[j].Title
		})

		width := 100.0 / float64(len(group))
		for col, ev := range group {
			entries = append(entries, Entry{
				Event:      ev,
				WidthPct:   width,
				LeftPct:    float64(col) * width,
				StackIndex: col,
			})
		}
	}
	return entries
}

// SlotSpan returns how many slot rows the event's block visually covers:
// its duration in whole slots, rounded up, never less than one so sub-slot
// events still get a readable block.
func SlotSpan(g timegrid.Grid, ev event.Event) int {
	dur := ev.Duration()
	slot := g.SlotDuration()
	span := int((dur + slot - 1) / slot)
	if span < 1 {
		return 1
	}
	return span
}

// HomeSlot returns the index of the slot the event is placed in (where its
// start instant falls), or -1 when the start is outside the visible grid.
func HomeSlot(g timegrid.Grid, ev event.Event) int {
	return g.IndexOf(ev.Start)
}
