package app

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weekview/pkg/config"
	"weekview/pkg/event"
	"weekview/pkg/lifecycle"
)

func TestCellAtMapsCoordinates(t *testing.T) {
	m := newTestModel(t, &testStore{})
	gutter := m.gutterWidth()
	cw := m.colWidth()

	day, slot, cellX, ok := m.cellAt(gutter+1, headerRows)
	require.True(t, ok)
	assert.Equal(t, 0, day)
	assert.Equal(t, 0, slot)
	assert.Equal(t, 0, cellX)

	day, slot, _, ok = m.cellAt(gutter+cw*3+2, headerRows+5)
	require.True(t, ok)
	assert.Equal(t, 3, day)
	assert.Equal(t, 5, slot)
}

func TestCellAtRejectsChrome(t *testing.T) {
	m := newTestModel(t, &testStore{})

	_, _, _, ok := m.cellAt(20, 0) // title row
	assert.False(t, ok)
	_, _, _, ok = m.cellAt(20, 1) // day header
	assert.False(t, ok)
	_, _, _, ok = m.cellAt(2, headerRows) // gutter
	assert.False(t, ok)
	_, _, _, ok = m.cellAt(20, headerRows+m.grid.Len()) // below the grid
	assert.False(t, ok)
}

func TestBlockSpanEqualStartSplitsCell(t *testing.T) {
	store := &testStore{events: []event.Event{
		{ID: "long", Title: "planning", Start: monday(10, 0), End: monday(11, 0)},
		{ID: "short", Title: "sync", Start: monday(10, 0), End: monday(10, 30)},
	}}
	m := newTestModel(t, store)

	width := m.colWidth() - 1 // 11 content cells

	left, w, stack := m.blockSpan(1, store.events[0], width)
	assert.Equal(t, 0, left)
	assert.Equal(t, 6, w) // round(50% of 11)
	assert.Equal(t, 0, stack)

	left, w, stack = m.blockSpan(1, store.events[1], width)
	assert.Equal(t, 6, left) // round(50% of 11)
	assert.Equal(t, 5, w)    // clamped to the cell edge
	assert.Equal(t, 1, stack)
}

func TestBlockSpanBeforeVisibleGridFillsCell(t *testing.T) {
	store := &testStore{events: []event.Event{
		{ID: "early", Title: "red-eye", Start: monday(5, 0), End: monday(9, 30)},
	}}
	m := newTestModel(t, store)

	left, w, stack := m.blockSpan(1, store.events[0], 11)
	assert.Equal(t, 0, left)
	assert.Equal(t, 11, w)
	assert.Equal(t, 0, stack)
}

func TestEventAtRespectsColumns(t *testing.T) {
	store := &testStore{events: []event.Event{
		{ID: "long", Title: "planning", Start: monday(10, 0), End: monday(11, 0)},
		{ID: "short", Title: "sync", Start: monday(10, 0), End: monday(10, 30)},
	}}
	m := newTestModel(t, store)

	// Slot 2 = 10:00. Left half belongs to the longer event.
	ev, ok := m.eventAt(1, 2, 0)
	require.True(t, ok)
	assert.Equal(t, "long", ev.ID)

	ev, ok = m.eventAt(1, 2, 8)
	require.True(t, ok)
	assert.Equal(t, "short", ev.ID)

	// Slot 3 = 10:30: only the hour-long event remains.
	ev, ok = m.eventAt(1, 3, 0)
	require.True(t, ok)
	assert.Equal(t, "long", ev.ID)
	_, ok = m.eventAt(1, 3, 8)
	assert.False(t, ok)
}

func TestCellOwnersFollowStackOrder(t *testing.T) {
	// Snapshot order deliberately differs from column order. The rounded
	// spans of columns 1 and 2 both touch content cell 7 of an 11-cell
	// column; the later column must own the boundary cell.
	store := &testStore{events: []event.Event{
		{ID: "plan", Title: "planning", Start: monday(13, 0), End: monday(14, 30)},
		{ID: "sync", Title: "sync", Start: monday(13, 0), End: monday(13, 30)},
		{ID: "rev", Title: "review", Start: monday(13, 0), End: monday(14, 0)},
	}}
	m := newTestModel(t, store)

	// Columns by duration: planning=0, review=1, sync=2.
	ev, ok := m.eventAt(1, 8, 7)
	require.True(t, ok)
	assert.Equal(t, "sync", ev.ID)

	ev, ok = m.eventAt(1, 8, 4)
	require.True(t, ok)
	assert.Equal(t, "rev", ev.ID)
}

func TestEventAtEmptyCell(t *testing.T) {
	m := newTestModel(t, &testStore{})
	_, ok := m.eventAt(1, 2, 3)
	assert.False(t, ok)
}

func TestRenderGridShowsTitleOnceInStartSlot(t *testing.T) {
	store := &testStore{events: []event.Event{
		{ID: "ev1", Title: "review", Start: monday(14, 0), End: monday(15, 30)},
	}}
	m := newTestModel(t, store)

	out := m.renderGrid()
	assert.Equal(t, 1, strings.Count(out, "review"))
}

func TestRenderGridTruncatesLongTitles(t *testing.T) {
	store := &testStore{events: []event.Event{
		{ID: "ev1", Title: "quarterly business review with the whole team", Start: monday(14, 0), End: monday(15, 0)},
	}}
	m := newTestModel(t, store)

	out := m.renderGrid()
	assert.NotContains(t, out, "quarterly business review with the whole team")
	assert.Contains(t, out, "…")
}

func TestRenderGridGutterLabels(t *testing.T) {
	m := newTestModel(t, &testStore{})
	out := m.renderGrid()

	assert.Contains(t, out, "9AM")
	assert.Contains(t, out, "12PM")
	assert.Contains(t, out, "1:30PM")
}

func TestRenderGrid24hLabels(t *testing.T) {
	m := newTestModel(t, &testStore{}, func(o *config.Options) { o.TimeFormat = config.Format24h })
	out := m.renderGrid()

	assert.Contains(t, out, "09:00")
	assert.Contains(t, out, "13:30")
}

func TestViewShowsLoadingPlaceholder(t *testing.T) {
	m := newTestModel(t, &testStore{}, func(o *config.Options) { o.Loading = true })
	out := m.View()

	assert.Contains(t, out, "loading events...")
	assert.NotContains(t, out, "9AM")
}

func TestViewHeaderShowsWeekTitle(t *testing.T) {
	m := newTestModel(t, &testStore{})
	assert.Contains(t, m.View(), "Dec 15 – Dec 21, 2024")
}

func TestViewCreateDialogShowsRange(t *testing.T) {
	m := newTestModel(t, &testStore{})

	x, y := cellXY(m, 1, 8)
	m = step(t, m, press(x, y))
	m = step(t, m, release(x, y))
	require.Equal(t, StateCreating, m.state)

	out := m.View()
	assert.Contains(t, out, "New event")
	assert.Contains(t, out, "1PM")
}

func TestViewNarrowWindow(t *testing.T) {
	store := &testStore{events: []event.Event{
		{ID: "ev1", Title: "review", Start: monday(14, 0), End: monday(15, 30)},
	}}
	m := newTestModel(t, store)
	m = step(t, m, tea.WindowSizeMsg{Width: 10, Height: 40})

	out := m.View()
	assert.Contains(t, out, "window too narrow")
	assert.NotContains(t, out, "review")
}

func TestViewBeforeResize(t *testing.T) {
	store := &testStore{}
	opts := config.Default()
	fac := lifecycle.New(store.callbacks(), nil)
	m := New(context.Background(), opts, fac, store.snapshot, refDate)

	assert.Equal(t, "Loading...", m.View())
}
