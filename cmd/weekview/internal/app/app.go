// Package app is the root bubbletea model for the week-view widget: it
// routes pointer and key events into the selection machine and the
// lifecycle façade and renders the slot grid.
package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"weekview/cmd/weekview/internal/msgs"
	"weekview/cmd/weekview/internal/styles"
	"weekview/pkg/config"
	"weekview/pkg/event"
	"weekview/pkg/lifecycle"
	"weekview/pkg/selection"
	"weekview/pkg/timegrid"
	"weekview/pkg/weeknav"
)

// State represents the widget state machine. The drag gesture itself is
// tracked by the selection machine; these are the dialog states layered
// on top of it.
type State int

const (
	StateBrowsing State = iota
	StateCreating       // confirmation dialog open, draft title being typed
	StateViewing        // detail view open for one event
	StateEditing        // renaming the viewed event
)

// Snapshot supplies the current committed event list. The store owns the
// events; the model only holds the returned slice for the render pass.
type Snapshot func() []event.Event

// Model is the root bubbletea model.
type Model struct {
	ctx      context.Context
	opts     *config.Options
	grid     timegrid.Grid
	week     weeknav.Week
	days     []time.Time
	events   []event.Event
	fac      *lifecycle.Facade
	snapshot Snapshot
	sel      *selection.Machine
	state    State

	pending    selection.Range // range awaiting confirmation
	titleInput textinput.Model
	colorIdx   int
	viewing    event.Event
	errLine    string

	width  int
	height int
}

// New creates a Model over the given options, façade and snapshot source.
func New(ctx context.Context, opts *config.Options, fac *lifecycle.Facade, snapshot Snapshot, ref time.Time) Model {
	grid := timegrid.New(opts.MinTime, opts.MaxTime, opts.SlotDuration)
	week := weeknav.Of(ref)
	days := week.DisplayDays(opts.ShowWeekends)

	ti := textinput.New()
	ti.Placeholder = "Event title"
	ti.CharLimit = 120
	ti.Prompt = "> "

	return Model{
		ctx:        ctx,
		opts:       opts,
		grid:       grid,
		week:       week,
		days:       days,
		events:     snapshot(),
		fac:        fac,
		snapshot:   snapshot,
		sel:        selection.New(grid, days),
		state:      StateBrowsing,
		titleInput: ti,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case msgs.CreateDoneMsg:
		return m.handleCreateDone(msg)

	case msgs.UpdateDoneMsg:
		if msg.Err != nil {
			m.errLine = "update failed: " + msg.Err.Error()
			return m, nil
		}
		m.events = msg.Events
		m.errLine = ""
		m.state = StateBrowsing
		return m, nil

	case msgs.DeleteDoneMsg:
		if msg.Err != nil {
			m.errLine = "delete failed: " + msg.Err.Error()
			return m, nil
		}
		m.events = msg.Events
		m.errLine = ""
		m.state = StateBrowsing
		return m, nil
	}

	// Delegate remaining messages to the title input while it is focused.
	if m.state == StateCreating || m.state == StateEditing {
		var cmd tea.Cmd
		m.titleInput, cmd = m.titleInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// interactive reports whether pointer and editing keys are accepted.
// Quitting and closing dialogs always work.
func (m Model) interactive() bool {
	return !m.fac.Busy() && !m.opts.Loading && !m.opts.Disabled
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.state {
	case StateCreating, StateEditing:
		return m.handleDialogKey(msg)
	case StateViewing:
		return m.handleDetailKey(msg)
	}

	// Browsing.
	if msg.Type == tea.KeyEsc {
		m.sel.Cancel()
		m.errLine = ""
		return m, nil
	}

	if !m.interactive() {
		if msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "left", "h":
		m.setWeek(m.week.Prev())
	case "right", "l":
		m.setWeek(m.week.Next())
	case "t":
		m.setWeek(weeknav.Of(time.Now()))
	case "w":
		m.opts.ShowWeekends = !m.opts.ShowWeekends
		m.setWeek(m.week)
	}
	return m, nil
}

func (m *Model) setWeek(w weeknav.Week) {
	m.week = w
	m.days = w.DisplayDays(m.opts.ShowWeekends)
	m.sel.SetDays(m.days)
}

func (m *Model) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		// Closing the dialog does not abort an in-flight call, it only
		// hides the UI for it.
		m.state = StateBrowsing
		m.titleInput.Reset()
		m.errLine = ""
		return m, nil

	case tea.KeyEnter:
		title := m.titleInput.Value()
		if strings.TrimSpace(title) == "" {
			// Silent refusal: no external call, dialog unchanged.
			return m, nil
		}
		if m.state == StateEditing {
			return m, m.updateTitleCmd(m.viewing.ID, title)
		}
		return m, m.createCmd(title, m.pending, styles.EventColors()[m.colorIdx])

	case tea.KeyTab:
		m.colorIdx = (m.colorIdx + 1) % len(styles.EventColors())
		return m, nil
	}

	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.state = StateBrowsing
		m.errLine = ""
		return m, nil
	}

	if !m.interactive() {
		return m, nil
	}

	switch msg.String() {
	case "d":
		return m, m.deleteCmd(m.viewing.ID)
	case "e":
		m.state = StateEditing
		m.titleInput.SetValue(m.viewing.Title)
		m.titleInput.CursorEnd()
		return m, m.titleInput.Focus()
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// Event blocks, dialogs and the busy flag all suppress grid gestures.
	// A release still closes any open gesture so the machine cannot stay
	// stuck in Selecting when interaction is cut off mid-drag.
	if m.state != StateBrowsing || !m.interactive() {
		if msg.Action == tea.MouseActionRelease {
			m.sel.Cancel()
		}
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		day, slot, x, ok := m.cellAt(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		if ev, hit := m.eventAt(day, slot, x); hit {
			// Pointer on an event block never starts a selection.
			m.viewing = ev
			m.state = StateViewing
			m.fac.Select(ev)
			return m, nil
		}
		m.sel.Press(day, slot)

	case tea.MouseActionMotion:
		if m.sel.Phase() != selection.Selecting {
			return m, nil
		}
		if day, slot, _, ok := m.cellAt(msg.X, msg.Y); ok {
			m.sel.Point(day, slot)
		}

	case tea.MouseActionRelease:
		r, ok := m.sel.Release()
		if !ok {
			return m, nil
		}
		m.pending = r
		m.state = StateCreating
		m.titleInput.Reset()
		m.errLine = ""
		return m, m.titleInput.Focus()
	}
	return m, nil
}

func (m *Model) handleCreateDone(msg msgs.CreateDoneMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Err == nil:
		// Appending the returned event is the caller's half of the
		// create contract.
		m.events = append(m.events, msg.Event)
		m.pending = selection.Range{}
		m.state = StateBrowsing
		m.titleInput.Reset()
		m.errLine = ""

	case errors.Is(msg.Err, lifecycle.ErrCreateInFlight),
		errors.Is(msg.Err, lifecycle.ErrBlankTitle),
		errors.Is(msg.Err, lifecycle.ErrNoSelection):
		// Dropped or refused silently; dialog state unchanged.

	default:
		// Dialog stays open with the typed title preserved for retry.
		m.errLine = "create failed: " + msg.Err.Error()
	}
	return m, nil
}

func (m Model) createCmd(title string, r selection.Range, color string) tea.Cmd {
	fac, ctx := m.fac, m.ctx
	return func() tea.Msg {
		ev, err := fac.Create(ctx, title, r.Start, r.End, color)
		return msgs.CreateDoneMsg{Event: ev, Err: err}
	}
}

func (m Model) updateTitleCmd(id, title string) tea.Cmd {
	fac, ctx, snap := m.fac, m.ctx, m.snapshot
	title = strings.TrimSpace(title)
	return func() tea.Msg {
		err := fac.Update(ctx, id, event.Patch{Title: &title})
		return msgs.UpdateDoneMsg{Events: snap(), Err: err}
	}
}

func (m Model) deleteCmd(id string) tea.Cmd {
	fac, ctx, snap := m.fac, m.ctx, m.snapshot
	return func() tea.Msg {
		err := fac.Delete(ctx, id)
		return msgs.DeleteDoneMsg{Events: snap(), Err: err}
	}
}
