package app

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"weekview/cmd/weekview/internal/styles"
	"weekview/pkg/event"
	"weekview/pkg/placement"
)

// Fixed chrome rows above the slot grid: week title and day header.
const headerRows = 2

// gutterWidth returns the width of the time label column, sized to the
// widest label the current format can produce.
func (m Model) gutterWidth() int {
	w := 0
	for _, s := range m.grid.Slots() {
		if lw := runewidth.StringWidth(s.Label(m.opts.Use24h())); lw > w {
			w = lw
		}
	}
	return w + 1 // trailing space before the first day column
}

// colWidth returns the width of one day column, separator included.
func (m Model) colWidth() int {
	if len(m.days) == 0 {
		return 0
	}
	return (m.width - m.gutterWidth()) / len(m.days)
}

// cellAt maps terminal coordinates to a grid cell. x is returned relative
// to the cell's content area (separator excluded); ok is false outside the
// grid.
func (m Model) cellAt(x, y int) (day, slot, cellX int, ok bool) {
	slot = y - headerRows
	if slot < 0 || slot >= m.grid.Len() {
		return 0, 0, 0, false
	}

	gutter := m.gutterWidth()
	cw := m.colWidth()
	if cw <= 1 || x < gutter {
		return 0, 0, 0, false
	}
	day = (x - gutter) / cw
	if day >= len(m.days) {
		return 0, 0, 0, false
	}
	cellX = (x-gutter)%cw - 1 // -1 on the separator char
	return day, slot, cellX, true
}

// cellOwners computes which event, if any, owns each content column of the
// cell, resolving stacked columns by overdraw in ascending stack order so
// later columns paint over earlier ones. It returns the owner index per
// column (-1 for empty) and the covering events the indices refer to.
func (m Model) cellOwners(day, slot, width int) ([]int, []event.Event) {
	owners := make([]int, width)
	for i := range owners {
		owners[i] = -1
	}

	dayStart := m.days[day]
	covering := placement.SlotEvents(m.grid, dayStart, slot, m.events)

	type span struct {
		idx, left, w, stack int
	}
	spans := make([]span, len(covering))
	for i, ev := range covering {
		left, w, stack := m.blockSpan(day, ev, width)
		spans[i] = span{idx: i, left: left, w: w, stack: stack}
	}
	sort.SliceStable(spans, func(i, j int) bool { return spans[i].stack < spans[j].stack })

	for _, s := range spans {
		for x := s.left; x < s.left+s.w && x < width; x++ {
			owners[x] = s.idx
		}
	}
	return owners, covering
}

// blockSpan converts an event's percent geometry (computed in its home
// slot) to content columns plus its stack position. Events starting before
// the visible grid have no home slot and get the full cell width at the
// bottom of the stack.
func (m Model) blockSpan(day int, ev event.Event, width int) (left, w, stack int) {
	home := placement.HomeSlot(m.grid, ev)
	if home < 0 {
		return 0, width, 0
	}

	for _, entry := range placement.Layout(m.grid, m.days[day], home, m.events) {
		if entry.Event.ID != ev.ID {
			continue
		}
		left = int(math.Round(entry.LeftPct * float64(width) / 100))
		w = int(math.Round(entry.WidthPct * float64(width) / 100))
		if w < 1 {
			w = 1
		}
		if left > width-1 {
			left = width - 1
		}
		if left+w > width {
			w = width - left
		}
		return left, w, entry.StackIndex
	}
	return 0, width, 0
}

// eventAt returns the event block under a cell content column, if any.
func (m Model) eventAt(day, slot, cellX int) (event.Event, bool) {
	cw := m.colWidth() - 1
	if cellX < 0 || cellX >= cw {
		return event.Event{}, false
	}
	owners, covering := m.cellOwners(day, slot, cw)
	if idx := owners[cellX]; idx >= 0 {
		return covering[idx], true
	}
	return event.Event{}, false
}

// renderCell draws one (day, slot) cell: the leading separator plus the
// content area compositing event blocks, drag highlight and empty space.
func (m Model) renderCell(day, slot, width int) string {
	owners, covering := m.cellOwners(day, slot, width)
	selected := m.sel.Covers(day, slot)

	var sb strings.Builder
	sb.WriteString(styles.GridLineStyle.Render("│"))

	dayStart := m.days[day]
	slotStart := m.grid.SlotStart(dayStart, slot)
	slotEnd := m.grid.SlotEnd(dayStart, slot)

	for x := 0; x < width; {
		idx := owners[x]
		run := x + 1
		for run < width && owners[run] == idx {
			run++
		}
		runW := run - x

		if idx < 0 {
			blank := strings.Repeat(" ", runW)
			if selected {
				sb.WriteString(styles.SelectionStyle.Render(blank))
			} else {
				sb.WriteString(blank)
			}
		} else {
			ev := covering[idx]
			text := ""
			// The title is drawn once, on the row holding the start.
			if !ev.Start.Before(slotStart) && ev.Start.Before(slotEnd) {
				text = ev.Title
			}
			text = runewidth.Truncate(text, runW, "…")
			text += strings.Repeat(" ", runW-runewidth.StringWidth(text))
			sb.WriteString(styles.EventBlock(ev.Color).Render(text))
		}
		x = run
	}
	return sb.String()
}

// renderGrid draws the day header and every slot row.
func (m Model) renderGrid() string {
	gutter := m.gutterWidth()
	cw := m.colWidth()
	contentW := cw - 1
	if contentW < 1 {
		return styles.DimStyle.Render("window too narrow")
	}

	var lines []string

	// Day header.
	var head strings.Builder
	head.WriteString(strings.Repeat(" ", gutter))
	today := m.todayIndex()
	for i, d := range m.days {
		label := d.Format("Mon 02")
		label = runewidth.Truncate(label, contentW, "")
		label += strings.Repeat(" ", contentW-runewidth.StringWidth(label))
		style := styles.DayHeaderStyle
		if i == today {
			style = styles.TodayStyle
		}
		head.WriteString(styles.GridLineStyle.Render("│"))
		head.WriteString(style.Render(label))
	}
	lines = append(lines, head.String())

	// Slot rows.
	use24h := m.opts.Use24h()
	for _, s := range m.grid.Slots() {
		var row strings.Builder
		label := s.Label(use24h)
		pad := gutter - runewidth.StringWidth(label)
		row.WriteString(styles.GutterStyle.Render(label))
		row.WriteString(strings.Repeat(" ", pad))
		for day := range m.days {
			row.WriteString(m.renderCell(day, s.Index, contentW))
		}
		lines = append(lines, row.String())
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
