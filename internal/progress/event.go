package progress

import (
	"slices"
	"strings"
)

// NoTitle is shown for entries that carry neither a task nor a summary.
const NoTitle = "(no task)"

// titleFields are tried in order; the first non-empty one becomes the title.
var titleFields = []string{"task", "summary"}

// Event is one entry of the progress log, ready for display.
type Event struct {
	Timestamp string
	Kind      string
	Title     string
	Fields    *Map
}

// Parse converts raw entries into events, keeping input order.
func Parse(entries []*Map) []Event {
	events := make([]Event, 0, len(entries))
	for _, entry := range entries {
		if entry == nil {
			entry = NewMap()
		}
		events = append(events, Event{
			Timestamp: text(entry, "ts"),
			Kind:      text(entry, "type"),
			Title:     title(entry),
			Fields:    entry,
		})
	}
	return events
}

// SortDescending orders events most recent first. Timestamps compare as
// plain strings; equal timestamps keep their relative order.
func SortDescending(events []Event) {
	slices.SortStableFunc(events, func(a, b Event) int {
		return strings.Compare(b.Timestamp, a.Timestamp)
	})
}

// Load decodes a progress document into events sorted most recent first.
func Load(data []byte) ([]Event, error) {
	entries, err := Decode(data)
	if err != nil {
		return nil, err
	}
	events := Parse(entries)
	SortDescending(events)
	return events, nil
}

func text(entry *Map, key string) string {
	val, ok := entry.Get(key)
	if !ok || val.Kind == KindNull {
		return ""
	}
	return val.String()
}

func title(entry *Map) string {
	for _, key := range titleFields {
		val, ok := entry.Get(key)
		if !ok || val.Empty() {
			continue
		}
		line := strings.Join(strings.Fields(val.String()), " ")
		if line != "" {
			return line
		}
	}
	return NoTitle
}
