// Package format turns field values into display lines for the detail view.
package format

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/five82/progressdash/internal/progress"
)

// Ellipsis marks text cut to fit a column.
const Ellipsis = "…"

const (
	bullet       = "- "
	continuation = "  "
)

// Lines renders v as an ordered list of lines wrapped to width columns.
// Mapping entries are not wrapped.
func Lines(v progress.Value, width int) []string {
	if width < 1 {
		width = 1
	}
	switch v.Kind {
	case progress.KindScalar:
		wrapped := Wrap(v.Text, width)
		if len(wrapped) == 0 {
			return []string{""}
		}
		return wrapped
	case progress.KindSequence:
		if len(v.Items) == 0 {
			return []string{bullet + "(empty)"}
		}
		lines := make([]string, 0, len(v.Items))
		for _, item := range v.Items {
			for i, line := range Wrap(item.String(), width) {
				if i == 0 {
					lines = append(lines, bullet+line)
				} else {
					lines = append(lines, continuation+line)
				}
			}
		}
		if len(lines) == 0 {
			return []string{bullet + "(empty)"}
		}
		return lines
	case progress.KindMapping:
		if v.Map.Len() == 0 {
			return []string{"(empty)"}
		}
		lines := make([]string, 0, v.Map.Len())
		for _, key := range v.Map.Keys() {
			val, _ := v.Map.Get(key)
			lines = append(lines, key+": "+val.String())
		}
		return lines
	default:
		return []string{"(none)"}
	}
}

// Wrap collapses whitespace in text and word-wraps it to width columns.
// Words longer than width are broken. Blank text yields no lines.
func Wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	normalized := strings.Join(strings.Fields(text), " ")
	if normalized == "" {
		return nil
	}
	if runewidth.StringWidth(normalized) <= width {
		return []string{normalized}
	}
	wrapped := wrap.String(wordwrap.String(normalized, width), width)
	var lines []string
	for _, line := range strings.Split(wrapped, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// Truncate cuts text to at most width columns, ending with an ellipsis when
// anything was removed.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return truncate.String(text, 1)
	}
	return truncate.StringWithTail(text, uint(width), Ellipsis)
}

// Pad truncates text to width and fills the remainder with spaces.
func Pad(text string, width int) string {
	text = Truncate(text, width)
	if gap := width - runewidth.StringWidth(text); gap > 0 {
		return text + strings.Repeat(" ", gap)
	}
	return text
}
