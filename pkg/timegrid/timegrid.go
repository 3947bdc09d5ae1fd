// Package timegrid derives the vertical slot axis of the week view: the
// ordered set of fixed-duration time slots between a day's configured
// bounds, plus the label formatting for the time gutter.
package timegrid

import (
	"fmt"
	"time"
)

// Slot is one fixed-duration subdivision of the visible day.
type Slot struct {
	Hour   int
	Minute int
	Index  int
}

// Grid holds the slot axis configuration and the derived slot list.
// Grids are immutable once built.
type Grid struct {
	minTime      int // first visible hour, 0-23
	maxTime      int // last visible hour, 0-23, inclusive
	slotDuration int // minutes per slot
	slots        []Slot
}

// New builds a Grid covering [minTime:00, maxTime:59] in slotDuration-minute
// steps. A span that does not divide evenly truncates to whole slots; this
// is a caller-visible simplification, not an error.
func New(minTime, maxTime, slotDuration int) Grid {
	g := Grid{
		minTime:      minTime,
		maxTime:      maxTime,
		slotDuration: slotDuration,
	}
	g.slots = generate(minTime, maxTime, slotDuration)
	return g
}

func generate(minTime, maxTime, slotDuration int) []Slot {
	span := (maxTime - minTime + 1) * 60
	count := span / slotDuration

	slots := make([]Slot, 0, count)
	for i := 0; i < count; i++ {
		hour := minTime + i*slotDuration/60
		if hour > maxTime {
			// Guards against overshoot at the boundary when the
			// span does not divide evenly.
			break
		}
		slots = append(slots, Slot{
			Hour:   hour,
			Minute: (i * slotDuration) % 60,
			Index:  i,
		})
	}
	return slots
}

// Slots returns the ordered slot list. The returned slice is shared; callers
// must not mutate it.
func (g Grid) Slots() []Slot {
	return g.slots
}

// Len returns the number of slots per day.
func (g Grid) Len() int {
	return len(g.slots)
}

// SlotDuration returns the slot length.
func (g Grid) SlotDuration() time.Duration {
	return time.Duration(g.slotDuration) * time.Minute
}

// SlotStart returns the instant slot index begins on the given day.
// Day is expected at local midnight.
func (g Grid) SlotStart(day time.Time, index int) time.Time {
	s := g.slots[index]
	return time.Date(day.Year(), day.Month(), day.Day(), s.Hour, s.Minute, 0, 0, day.Location())
}

// SlotEnd returns the instant slot index ends (exclusive) on the given day.
func (g Grid) SlotEnd(day time.Time, index int) time.Time {
	return g.SlotStart(day, index).Add(g.SlotDuration())
}

// IndexOf returns the index of the slot whose [start, end) window contains
// t on t's own day, or -1 when t falls outside the visible bounds.
func (g Grid) IndexOf(t time.Time) int {
	mins := t.Hour()*60 + t.Minute()
	if mins < g.minTime*60 {
		return -1
	}
	i := (mins - g.minTime*60) / g.slotDuration
	if i >= len(g.slots) {
		return -1
	}
	return i
}

// FormatLabel renders a gutter label for the given time of day. 24h mode
// zero-pads to HH:MM. 12h mode drops the leading zero and the minutes when
// they are zero, e.g. "9AM", "9:30AM", "12PM", "1:30PM".
func FormatLabel(hour, minute int, use24h bool) string {
	if use24h {
		return fmt.Sprintf("%02d:%02d", hour, minute)
	}

	switch {
	case hour == 0:
		if minute == 0 {
			return "12AM"
		}
		return fmt.Sprintf("12:%02dAM", minute)
	case hour == 12:
		if minute == 0 {
			return "12PM"
		}
		return fmt.Sprintf("12:%02dPM", minute)
	case hour < 12:
		if minute == 0 {
			return fmt.Sprintf("%dAM", hour)
		}
		return fmt.Sprintf("%d:%02dAM", hour, minute)
	default:
		if minute == 0 {
			return fmt.Sprintf("%dPM", hour-12)
		}
		return fmt.Sprintf("%d:%02dPM", hour-12, minute)
	}
}

// Label renders the slot's own gutter label.
func (s Slot) Label(use24h bool) string {
	return FormatLabel(s.Hour, s.Minute, use24h)
}
