package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/five82/progressdash/internal/canvas"
	"github.com/five82/progressdash/internal/format"
	"github.com/five82/progressdash/internal/progress"
	"github.com/five82/progressdash/internal/viewport"
)

// detailPriority lists the fields shown first, in this order.
var detailPriority = []string{"task", "summary", "details", "challenges", "solutions", "decisions", "tests", "files"}

// detailHidden lists fields already shown in the detail title.
var detailHidden = map[string]struct{}{"ts": {}, "type": {}}

// render draws the active screen onto c.
func (m Model) render(c canvas.Canvas) {
	c.Clear()
	if ev, ok := m.selectedEvent(); ok && m.view.Mode == ModeDetail {
		m.renderDetail(c, ev)
		return
	}
	m.renderList(c)
}

// renderList draws the header, status line, event rows and footer.
func (m Model) renderList(c canvas.Canvas) {
	rows, cols := c.Size()

	header := fmt.Sprintf("PROGRESS dashboard | %s | refresh %s | last update %s",
		m.path, formatInterval(m.interval), formatClock(m.status.LastChange))
	writeLine(c, 0, header)

	status := fmt.Sprintf("Now: %s | Last reload: %s | Status: %s",
		formatClock(m.now), formatClock(m.status.LastSuccess), m.status.Label)
	writeLine(c, 1, status)
	c.HorizontalRule(2, 0, '-', cols)

	const top = 3
	if len(m.events) == 0 {
		writeLine(c, top, "(no events)")
	}
	start, end := viewport.VisibleRange(m.view.ScrollTop, listRows(rows), len(m.events))
	for idx := start; idx < end; idx++ {
		line := eventRow(m.events[idx], cols)
		if idx == m.view.Selected {
			c.SetHighlight(true)
			c.WriteClipped(top+idx-start, 0, format.Pad(line, cols), cols)
			c.SetHighlight(false)
			continue
		}
		writeLine(c, top+idx-start, line)
	}

	m.renderFooter(c)
}

// eventRow lays out one list row: timestamp, type and title columns.
func eventRow(ev progress.Event, cols int) string {
	titleWidth := max(1, cols-TimestampWidth-KindWidth-2*ColumnGap)
	gap := strings.Repeat(" ", ColumnGap)
	return format.Pad(ev.Timestamp, TimestampWidth) + gap +
		format.Pad(ev.Kind, KindWidth) + gap +
		format.Truncate(ev.Title, titleWidth)
}

// renderDetail draws the title, the field dump of ev and the footer.
func (m Model) renderDetail(c canvas.Canvas, ev progress.Event) {
	rows, cols := c.Size()

	writeLine(c, 0, fmt.Sprintf("Event detail | %s | %s", ev.Timestamp, ev.Kind))
	c.HorizontalRule(1, 0, '-', cols)

	const top = 2
	lines := detailLines(ev, cols)
	visible := detailRows(rows)
	scroll := viewport.ClampDetail(m.view.DetailScroll, len(lines), visible)
	for i := 0; i < visible && scroll+i < len(lines); i++ {
		writeLine(c, top+i, lines[scroll+i])
	}

	m.renderFooter(c)
}

// detailLines dumps the fields of ev: priority fields first, then the rest
// in file order, each under an upper-cased heading.
func detailLines(ev progress.Event, cols int) []string {
	width := max(1, cols-detailMargin)
	used := make(map[string]struct{}, len(detailPriority))
	var lines []string

	appendField := func(name string, val progress.Value) {
		used[name] = struct{}{}
		lines = append(lines, strings.ToUpper(name))
		lines = append(lines, fieldBody(val, width)...)
		lines = append(lines, "")
	}

	for _, name := range detailPriority {
		if val, ok := ev.Fields.Get(name); ok {
			appendField(name, val)
		}
	}
	for _, name := range ev.Fields.Keys() {
		if _, ok := used[name]; ok {
			continue
		}
		if _, ok := detailHidden[name]; ok {
			continue
		}
		val, _ := ev.Fields.Get(name)
		appendField(name, val)
	}

	if len(lines) == 0 {
		return []string{"(no details)"}
	}
	return lines
}

// fieldBody formats val to width and indents it. Sequences reserve room for
// their bullets; mapping entries wider than width are wrapped here.
func fieldBody(val progress.Value, width int) []string {
	budget := width
	if val.Kind == progress.KindSequence {
		budget = max(1, width-len(detailIndent))
	}
	var out []string
	for _, line := range format.Lines(val, budget) {
		if runewidth.StringWidth(line) <= width {
			out = append(out, detailIndent+line)
			continue
		}
		for _, segment := range format.Wrap(line, width) {
			out = append(out, detailIndent+segment)
		}
	}
	return out
}

// renderFooter draws the divider and key hints on the last two rows.
func (m Model) renderFooter(c canvas.Canvas) {
	rows, cols := c.Size()
	c.HorizontalRule(rows-2, 0, '-', cols)
	writeLine(c, rows-1, m.help.ShortHelpView(m.keys.hints(m.view.Mode)))
}

// writeLine writes text on row, cutting it with an ellipsis at the edge.
func writeLine(c canvas.Canvas, row int, text string) {
	_, cols := c.Size()
	c.WriteClipped(row, 0, format.Truncate(text, cols), cols)
}
