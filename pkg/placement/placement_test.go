package placement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weekview/pkg/event"
	"weekview/pkg/timegrid"
)

var day = time.Date(2024, 12, 16, 0, 0, 0, 0, time.Local)

func at(hour, minute int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func ev(id, title string, start, end time.Time) event.Event {
	return event.Event{ID: id, Title: title, Start: start, End: end}
}

func TestSlotEventsHalfOpenOverlap(t *testing.T) {
	g := timegrid.New(9, 17, 30)
	e := ev("1", "standup", at(9, 0), at(9, 30))

	// Included in its own slot [09:00, 09:30).
	assert.Len(t, SlotEvents(g, day, 0, []event.Event{e}), 1)
	// Excluded from the next slot [09:30, 10:00) — it ends exactly there.
	assert.Empty(t, SlotEvents(g, day, 1, []event.Event{e}))
}

func TestSlotEventsExcludesEventStartingAtSlotEnd(t *testing.T) {
	g := timegrid.New(9, 17, 30)
	e := ev("1", "later", at(9, 30), at(10, 0))

	assert.Empty(t, SlotEvents(g, day, 0, []event.Event{e}))
	assert.Len(t, SlotEvents(g, day, 1, []event.Event{e}), 1)
}

func TestSlotEventsSpanningEvent(t *testing.T) {
	g := timegrid.New(9, 17, 30)
	e := ev("1", "workshop", at(10, 0), at(12, 0))

	// Covers slots 2..5 (10:00 through 11:30) but not 12:00.
	for idx := 2; idx <= 5; idx++ {
		assert.Len(t, SlotEvents(g, day, idx, []event.Event{e}), 1, "slot %d", idx)
	}
	assert.Empty(t, SlotEvents(g, day, 6, []event.Event{e}))
}

func TestSlotEventsOtherDayExcluded(t *testing.T) {
	g := timegrid.New(9, 17, 30)
	other := day.AddDate(0, 0, 1)
	e := ev("1", "tomorrow", other.Add(9*time.Hour), other.Add(10*time.Hour))

	assert.Empty(t, SlotEvents(g, day, 0, []event.Event{e}))
}

func TestSlotEventsEndToEnd(t *testing.T) {
	g := timegrid.New(9, 17, 30)
	events := []event.Event{
		ev("1", "standup", at(9, 0), at(9, 30)),
		ev("2", "review", at(14, 0), at(15, 30)),
	}

	got := SlotEvents(g, day, g.IndexOf(at(14, 0)), events)
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestLayoutPlacesEventOnlyInStartingSlot(t *testing.T) {
	g := timegrid.New(9, 17, 30)
	events := []event.Event{ev("1", "workshop", at(10, 0), at(12, 0))}

	require.Len(t, Layout(g, day, 2, events), 1)
	assert.Empty(t, Layout(g, day, 3, events))
	assert.Empty(t, Layout(g, day, 4, events))
}

func TestLayoutEqualStartColumns(t *testing.T) {
	g := timegrid.New(9, 17, 30)
	events := []event.Event{
		ev("short", "b-short", at(10, 0), at(10, 30)),
		ev("long", "a-long", at(10, 0), at(11, 0)),
	}

	entries := Layout(g, day, 2, events)
	require.Len(t, entries, 2)

	// Longer duration sorts into column 0.
	assert.Equal(t, "long", entries[0].Event.ID)
	assert.InDelta(t, 50.0, entries[0].WidthPct, 1e-9)
	assert.InDelta(t, 0.0, entries[0].LeftPct, 1e-9)
	assert.Equal(t, 0, entries[0].StackIndex)

	assert.Equal(t, "short", entries[1].Event.ID)
	assert.InDelta(t, 50.0, entries[1].WidthPct, 1e-9)
	assert.InDelta(t, 50.0, entries[1].LeftPct, 1e-9)
	assert.Equal(t, 1, entries[1].StackIndex)
}

func TestLayoutDurationTieBreaksOnTitle(t *testing.T) {
	g := timegrid.New(9, 17, 30)
	events := []event.Event{
		ev("z", "zebra", at(10, 0), at(11, 0)),
		ev("a", "aardvark", at(10, 0), at(11, 0)),
	}

	entries := Layout(g, day, 2, events)
	require.Len(t, entries, 2)
	assert.Equal(t, "aardvark", entries[0].Event.Title)
	assert.Equal(t, "zebra", entries[1].Event.Title)
}

func TestLayoutStaggeredStartsNotGrouped(t *testing.T) {
	g := timegrid.New(9, 17, 30)
	// Both start inside slot 2 but one minute apart: two full-width
	// entries, not two columns.
	events := []event.Event{
		ev("1", "first", at(10, 0), at(11, 0)),
		ev("2", "second", at(10, 1), at(11, 0)),
	}

	entries := Layout(g, day, 2, events)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.InDelta(t, 100.0, e.WidthPct, 1e-9)
		assert.InDelta(t, 0.0, e.LeftPct, 1e-9)
	}
}

func TestSlotSpan(t *testing.T) {
	g := timegrid.New(9, 17, 30)

	assert.Equal(t, 1, SlotSpan(g, ev("1", "", at(9, 0), at(9, 30))))
	assert.Equal(t, 3, SlotSpan(g, ev("2", "", at(14, 0), at(15, 30))))
	// Sub-slot events still occupy one full row.
	assert.Equal(t, 1, SlotSpan(g, ev("3", "", at(9, 0), at(9, 10))))
	// Partial trailing slot rounds up.
	assert.Equal(t, 2, SlotSpan(g, ev("4", "", at(9, 0), at(9, 45))))
}

func TestHomeSlot(t *testing.T) {
	g := timegrid.New(9, 17, 30)

	assert.Equal(t, 10, HomeSlot(g, ev("1", "", at(14, 0), at(15, 0))))
	assert.Equal(t, -1, HomeSlot(g, ev("2", "", at(3, 0), at(4, 0))))
}
