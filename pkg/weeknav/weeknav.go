// Package weeknav computes the displayed week's boundaries and day list
// from a reference date. Weeks start on Sunday at local midnight.
package weeknav

import (
	"fmt"
	"time"
)

// DaysPerWeek is the number of days in a displayed week.
const DaysPerWeek = 7

// Week is a derived value: the Sunday at or before the reference date plus
// the seven day starts it anchors.
type Week struct {
	Start time.Time
	Days  [DaysPerWeek]time.Time
}

// Of returns the week containing ref. Start is ref's preceding (or same)
// Sunday at local midnight.
func Of(ref time.Time) Week {
	midnight := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	start := midnight.AddDate(0, 0, -int(midnight.Weekday()))

	var w Week
	w.Start = start
	for i := range w.Days {
		w.Days[i] = start.AddDate(0, 0, i)
	}
	return w
}

// Next returns the following week.
func (w Week) Next() Week {
	return Of(w.Start.AddDate(0, 0, DaysPerWeek))
}

// Prev returns the preceding week.
func (w Week) Prev() Week {
	return Of(w.Start.AddDate(0, 0, -DaysPerWeek))
}

// End returns the exclusive end of the week (the next week's start).
func (w Week) End() time.Time {
	return w.Start.AddDate(0, 0, DaysPerWeek)
}

// Contains reports whether t falls within the week.
func (w Week) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End())
}

// DisplayDays returns the visible day sequence: all seven days, or Monday
// through Friday when weekends are hidden.
func (w Week) DisplayDays(showWeekends bool) []time.Time {
	if showWeekends {
		return w.Days[:]
	}
	return w.Days[1:6]
}

// Title formats the week's date range for the header, e.g.
// "Dec 15 – Dec 21, 2024".
func (w Week) Title() string {
	last := w.Days[DaysPerWeek-1]
	if w.Start.Year() != last.Year() {
		return fmt.Sprintf("%s – %s", w.Start.Format("Jan 2, 2006"), last.Format("Jan 2, 2006"))
	}
	return fmt.Sprintf("%s – %s", w.Start.Format("Jan 2"), last.Format("Jan 2, 2006"))
}
