// Package selection tracks click-drag gestures over the week grid and
// normalizes them into a canonical half-open time range aligned to whole
// slots. The machine is an explicit two-phase FSM (Idle, Selecting);
// confirmation and detail states live in the widget model on top of it.
package selection

import (
	"time"

	"weekview/pkg/timegrid"
)

// Phase is the drag gesture state.
type Phase int

const (
	Idle Phase = iota
	Selecting
)

// Point addresses one grid cell: a day index within the displayed week and
// a slot index within the day.
type Point struct {
	Day  int
	Slot int
}

// Range is the canonical [Start, End) interval produced from a gesture.
// End is strictly after Start and the length is a whole multiple of the
// slot duration.
type Range struct {
	Start time.Time
	End   time.Time
}

// IsZero reports whether the range is unset.
func (r Range) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// Duration returns the range length.
func (r Range) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Machine is the drag-selection state machine. It is bound to a grid and
// the current week's day starts; navigation replaces the days and resets
// any open gesture (selections are transient).
type Machine struct {
	grid   timegrid.Grid
	days   []time.Time
	phase  Phase
	anchor Point
	hover  Point
}

// New returns an idle machine over the given grid and day starts.
func New(grid timegrid.Grid, days []time.Time) *Machine {
	return &Machine{grid: grid, days: days}
}

// SetDays rebinds the machine to a new week and discards any open gesture.
func (m *Machine) SetDays(days []time.Time) {
	m.days = days
	m.phase = Idle
}

// Phase returns the current gesture phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Press starts a gesture at the given cell. No-op unless idle or the cell
// is out of bounds; the caller suppresses presses landing on event blocks.
func (m *Machine) Press(day, slot int) {
	if m.phase != Idle || !m.valid(day, slot) {
		return
	}
	m.anchor = Point{Day: day, Slot: slot}
	m.hover = m.anchor
	m.phase = Selecting
}

// Point extends the gesture to the given cell while selecting. Out-of-bounds
// cells are ignored so dragging past the grid edge keeps the last coherent
// hover.
func (m *Machine) Point(day, slot int) {
	if m.phase != Selecting || !m.valid(day, slot) {
		return
	}
	m.hover = Point{Day: day, Slot: slot}
}

// Release finalizes the gesture, returning the canonical range and true,
// or a zero range and false when no gesture was open. The machine returns
// to Idle either way.
func (m *Machine) Release() (Range, bool) {
	if m.phase != Selecting {
		return Range{}, false
	}
	r := m.Range()
	m.phase = Idle
	return r, true
}

// Cancel discards any open gesture.
func (m *Machine) Cancel() {
	m.phase = Idle
}

// Range returns the canonical range for the gesture in progress. Zero when
// idle.
func (m *Machine) Range() Range {
	if m.phase != Selecting {
		return Range{}
	}
	anchorStart := m.grid.SlotStart(m.days[m.anchor.Day], m.anchor.Slot)
	hoverStart := m.grid.SlotStart(m.days[m.hover.Day], m.hover.Slot)
	return Normalize(anchorStart, hoverStart, m.grid.SlotDuration())
}

// Covers reports whether the given cell's start instant falls inside the
// current gesture's [Start, End), for live highlighting while dragging.
func (m *Machine) Covers(day, slot int) bool {
	if m.phase != Selecting || !m.valid(day, slot) {
		return false
	}
	r := m.Range()
	t := m.grid.SlotStart(m.days[day], slot)
	return !t.Before(r.Start) && t.Before(r.End)
}

func (m *Machine) valid(day, slot int) bool {
	return day >= 0 && day < len(m.days) && slot >= 0 && slot < m.grid.Len()
}

// Normalize converts the anchor and hover slot starts into the canonical
// range. A single cell yields one slot. A backward drag keeps the hover
// slot's start as the earlier boundary and pushes the later boundary one
// slot past the anchor; a forward drag pushes the later boundary one slot
// past the hover. Both the anchor and hover slots are always included
// whole.
func Normalize(anchorStart, hoverStart time.Time, slotDuration time.Duration) Range {
	switch {
	case anchorStart.Equal(hoverStart):
		return Range{Start: anchorStart, End: anchorStart.Add(slotDuration)}
	case anchorStart.After(hoverStart):
		return Range{Start: hoverStart, End: anchorStart.Add(slotDuration)}
	default:
		return Range{Start: anchorStart, End: hoverStart.Add(slotDuration)}
	}
}
