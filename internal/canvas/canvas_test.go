package canvas

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrid_WriteClipped(t *testing.T) {
	g := NewGrid(3, 10)
	g.WriteClipped(0, 0, "hello world", 20)
	g.WriteClipped(1, 2, "abcdef", 3)
	g.WriteClipped(2, 8, "xyz", 5)

	assert.Equal(t, "hello worl", g.Line(0))
	assert.Equal(t, "  abc", g.Line(1))
	assert.Equal(t, "        xy", g.Line(2))
}

func TestGrid_OutOfBoundsWritesAreDropped(t *testing.T) {
	g := NewGrid(2, 5)
	assert.NotPanics(t, func() {
		g.WriteClipped(-1, 0, "nope", 5)
		g.WriteClipped(2, 0, "nope", 5)
		g.WriteClipped(0, 9, "nope", 5)
		g.WriteClipped(0, -2, "abcdef", 10)
		g.HorizontalRule(5, 0, '-', 50)
	})
	assert.Equal(t, "cdef", g.Line(0))
	assert.Equal(t, "", g.Line(1))
}

func TestGrid_ControlCharactersBecomeSpaces(t *testing.T) {
	g := NewGrid(1, 10)
	g.WriteClipped(0, 0, "a\nb\tc", 10)
	assert.Equal(t, "a b c", g.Line(0))
}

func TestGrid_WideRunes(t *testing.T) {
	g := NewGrid(1, 5)
	g.WriteClipped(0, 0, "日本語", 5)
	assert.Equal(t, "日本", g.Line(0))
}

func TestGrid_HighlightAndClear(t *testing.T) {
	g := NewGrid(2, 6)
	g.SetHighlight(true)
	g.WriteClipped(0, 0, "sel", 6)
	g.SetHighlight(false)
	g.WriteClipped(1, 0, "plain", 6)

	assert.True(t, g.Highlighted(0))
	assert.False(t, g.Highlighted(1))
	assert.Contains(t, g.String(), "sel")

	g.HorizontalRule(1, 0, '-', 6)
	assert.Equal(t, "------", g.Line(1))

	g.Clear()
	assert.False(t, g.Highlighted(0))
	assert.Equal(t, "", strings.TrimSpace(g.String()))
}

func TestGrid_ZeroSize(t *testing.T) {
	g := NewGrid(0, 0)
	rows, cols := g.Size()
	assert.Equal(t, 0, rows)
	assert.Equal(t, 0, cols)
	g.WriteClipped(0, 0, "x", 1)
	assert.Equal(t, "", g.String())
}
