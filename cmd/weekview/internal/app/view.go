package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"weekview/cmd/weekview/internal/styles"
	"weekview/pkg/selection"
	"weekview/pkg/timegrid"
)

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var parts []string
	parts = append(parts, m.renderHeader())

	if m.opts.Loading {
		parts = append(parts, styles.DimStyle.Render("loading events..."))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	parts = append(parts, m.renderGrid())

	switch m.state {
	case StateCreating:
		parts = append(parts, m.renderCreateDialog())
	case StateEditing:
		parts = append(parts, m.renderEditDialog())
	case StateViewing:
		parts = append(parts, m.renderDetail())
	default:
		parts = append(parts, m.renderStatus())
	}

	if m.errLine != "" {
		parts = append(parts, styles.ErrorStyle.Render(m.errLine))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderHeader() string {
	title := styles.TitleStyle.Render(m.week.Title())
	hints := styles.HintStyle.Render("←/→ week  t today  w weekends  q quit")

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(hints)
	if gap < 1 {
		return title
	}
	return title + strings.Repeat(" ", gap) + hints
}

// todayIndex returns the displayed column holding today, or -1.
func (m Model) todayIndex() int {
	now := time.Now()
	for i, d := range m.days {
		if d.Year() == now.Year() && d.YearDay() == now.YearDay() {
			return i
		}
	}
	return -1
}

func (m Model) renderStatus() string {
	switch {
	case m.opts.Disabled:
		return styles.DimStyle.Render("calendar disabled")
	case m.fac.Busy():
		return styles.BusyStyle.Render("working...")
	case m.sel.Phase() == selection.Selecting:
		r := m.sel.Range()
		return styles.DimStyle.Render("selecting " + rangeLabel(r.Start, r.End, m.opts.Use24h()))
	default:
		return styles.DimStyle.Render("drag to select a time range, click an event to inspect")
	}
}

func (m Model) renderCreateDialog() string {
	var sb strings.Builder
	sb.WriteString(styles.DialogTitleStyle.Render("New event"))
	sb.WriteString("\n")
	sb.WriteString(styles.DimStyle.Render(fullRangeLabel(m.pending.Start, m.pending.End, m.opts.Use24h())))
	sb.WriteString("\n")
	sb.WriteString(m.titleInput.View())
	sb.WriteString("\n")
	color := styles.EventColors()[m.colorIdx]
	sb.WriteString(styles.EventBlock(color).Render(" "+color+" "))
	sb.WriteString(styles.HintStyle.Render("  enter create  tab color  esc cancel"))
	return styles.DialogBorder.Width(min(m.width-2, 60)).Render(sb.String())
}

func (m Model) renderEditDialog() string {
	var sb strings.Builder
	sb.WriteString(styles.DialogTitleStyle.Render("Rename event"))
	sb.WriteString("\n")
	sb.WriteString(m.titleInput.View())
	sb.WriteString("\n")
	sb.WriteString(styles.HintStyle.Render("enter save  esc cancel"))
	return styles.DialogBorder.Width(min(m.width-2, 60)).Render(sb.String())
}

func (m Model) renderDetail() string {
	ev := m.viewing
	var sb strings.Builder
	sb.WriteString(styles.DialogTitleStyle.Render(ev.Title))
	sb.WriteString("\n")
	sb.WriteString(styles.DimStyle.Render(ev.Start.Format("Mon Jan 2") + "  " + fullRangeLabel(ev.Start, ev.End, m.opts.Use24h())))
	sb.WriteString("\n")
	sb.WriteString(styles.DimStyle.Render(fmt.Sprintf("duration %s", ev.Duration())))
	sb.WriteString("\n")
	sb.WriteString(styles.HintStyle.Render("e rename  d delete  esc close"))
	return styles.DetailBorder.Width(min(m.width-2, 60)).Render(sb.String())
}

func rangeLabel(start, end time.Time, use24h bool) string {
	return timegrid.FormatLabel(start.Hour(), start.Minute(), use24h) +
		" – " +
		timegrid.FormatLabel(end.Hour(), end.Minute(), use24h)
}

func fullRangeLabel(start, end time.Time, use24h bool) string {
	return start.Format("Mon Jan 2") + " " + rangeLabel(start, end, use24h)
}
