package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/five82/progressdash/internal/progress"
)

func eventWith(pairs ...any) progress.Event {
	fields := progress.NewMap()
	for i := 0; i+1 < len(pairs); i += 2 {
		fields.Set(pairs[i].(string), pairs[i+1].(progress.Value))
	}
	return progress.Event{Timestamp: "2024-01-01", Kind: "note", Fields: fields}
}

func TestDetailLines_PriorityThenFileOrder(t *testing.T) {
	ev := eventWith(
		"ts", progress.Scalar("2024-01-01"),
		"type", progress.Scalar("note"),
		"zeta", progress.Scalar("z"),
		"files", progress.Sequence(progress.Scalar("a.go"), progress.Scalar("b.go")),
		"task", progress.Scalar("Ship it"),
	)

	want := []string{
		"TASK", "  Ship it", "",
		"FILES", "  - a.go", "  - b.go", "",
		"ZETA", "  z", "",
	}
	assert.Equal(t, want, detailLines(ev, 40))
}

func TestDetailLines_NoDetails(t *testing.T) {
	ev := eventWith("ts", progress.Scalar("2024"), "type", progress.Scalar("note"))
	assert.Equal(t, []string{"(no details)"}, detailLines(ev, 40))
}

func TestDetailLines_WrapsToWidth(t *testing.T) {
	ev := eventWith("summary", progress.Scalar(strings.Repeat("word ", 20)))
	lines := detailLines(ev, 24)
	assert.Equal(t, "SUMMARY", lines[0])
	for _, line := range lines[1 : len(lines)-1] {
		assert.True(t, strings.HasPrefix(line, detailIndent), "line %q lacks indent", line)
		assert.LessOrEqual(t, len(line), 24-detailMargin+len(detailIndent))
	}
}

func TestEventRow_TruncatesTitle(t *testing.T) {
	ev := progress.Event{Timestamp: "2024-01-01", Kind: "note", Title: "abcdefghij"}
	row := eventRow(ev, 40)
	want := "2024-01-01" + strings.Repeat(" ", 12) + "note" + strings.Repeat(" ", 8) + "abcde…"
	assert.Equal(t, want, row)
}

func TestEventRow_LongColumnsAreCut(t *testing.T) {
	ev := progress.Event{Timestamp: "2024-01-01T12:34:56.789Z", Kind: "milestone-long", Title: "T"}
	row := eventRow(ev, 80)
	assert.True(t, strings.HasPrefix(row, "2024-01-01T12:34:56…  milestone…  T"), "row = %q", row)
}
