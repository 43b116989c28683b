// Package canvas provides a fixed-size character grid the views draw on.
//
// Writes are clipped to the grid: text past the right edge or rows outside
// the grid are dropped, never reported. Grid.String presents the frame for
// Bubble Tea, rendering highlighted runs in reverse video via lipgloss.
package canvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Canvas is the drawing surface used by the renderers.
type Canvas interface {
	Size() (rows, cols int)
	Clear()
	WriteClipped(row, col int, text string, maxWidth int)
	HorizontalRule(row, col int, ch rune, width int)
	SetHighlight(on bool)
}

type cell struct {
	r         rune
	highlight bool
	// filler marks the second column of a wide rune.
	filler bool
}

// Grid is an in-memory Canvas.
type Grid struct {
	rows, cols int
	cells      [][]cell
	highlight  bool
	style      lipgloss.Style
}

var _ Canvas = (*Grid)(nil)

// NewGrid returns a blank grid. Negative sizes are treated as zero.
func NewGrid(rows, cols int) *Grid {
	rows = max(0, rows)
	cols = max(0, cols)
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([][]cell, rows),
		style: lipgloss.NewStyle().Reverse(true),
	}
	for i := range g.cells {
		g.cells[i] = make([]cell, cols)
	}
	g.Clear()
	return g
}

// Size returns the grid dimensions.
func (g *Grid) Size() (rows, cols int) {
	return g.rows, g.cols
}

// Clear blanks every cell and turns highlighting off.
func (g *Grid) Clear() {
	for _, line := range g.cells {
		for i := range line {
			line[i] = cell{r: ' '}
		}
	}
	g.highlight = false
}

// SetHighlight toggles the highlight attribute for subsequent writes.
func (g *Grid) SetHighlight(on bool) {
	g.highlight = on
}

// WriteClipped writes text starting at (row, col), using at most maxWidth
// columns and never past the right edge. Control characters are written as
// spaces. A wide rune that does not fit is dropped.
func (g *Grid) WriteClipped(row, col int, text string, maxWidth int) {
	if row < 0 || row >= g.rows || col >= g.cols || maxWidth <= 0 {
		return
	}
	limit := min(g.cols, col+maxWidth)
	x := col
	for _, r := range text {
		if x >= limit {
			return
		}
		if r < ' ' || r == 0x7f {
			r = ' '
		}
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > limit {
			return
		}
		if x >= 0 {
			g.cells[row][x] = cell{r: r, highlight: g.highlight}
			if w == 2 {
				g.cells[row][x+1] = cell{highlight: g.highlight, filler: true}
			}
		}
		x += w
	}
}

// HorizontalRule repeats ch across width columns from (row, col).
func (g *Grid) HorizontalRule(row, col int, ch rune, width int) {
	if width <= 0 {
		return
	}
	g.WriteClipped(row, col, strings.Repeat(string(ch), width), width)
}

// Line returns the plain text of row without trailing spaces.
func (g *Grid) Line(row int) string {
	if row < 0 || row >= g.rows {
		return ""
	}
	var b strings.Builder
	for _, c := range g.cells[row] {
		if c.filler {
			continue
		}
		b.WriteRune(c.r)
	}
	return strings.TrimRight(b.String(), " ")
}

// Highlighted reports whether any cell of row carries the highlight.
func (g *Grid) Highlighted(row int) bool {
	if row < 0 || row >= g.rows {
		return false
	}
	for _, c := range g.cells[row] {
		if c.highlight {
			return true
		}
	}
	return false
}

// String presents the frame, one line per row.
func (g *Grid) String() string {
	lines := make([]string, g.rows)
	for i, row := range g.cells {
		lines[i] = g.renderRow(row)
	}
	return strings.Join(lines, "\n")
}

func (g *Grid) renderRow(row []cell) string {
	var out, run strings.Builder
	runHighlight := false
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if runHighlight {
			out.WriteString(g.style.Render(run.String()))
		} else {
			out.WriteString(run.String())
		}
		run.Reset()
	}
	for _, c := range row {
		if c.filler {
			continue
		}
		if c.highlight != runHighlight {
			flush()
			runHighlight = c.highlight
		}
		run.WriteRune(c.r)
	}
	flush()
	return out.String()
}
