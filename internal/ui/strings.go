package ui

import (
	"fmt"
	"time"
)

// formatClock renders t in local time, or "never" for the zero time.
func formatClock(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Local().Format(clockLayout)
}

// formatInterval renders a refresh interval the way the header shows it.
func formatInterval(d time.Duration) string {
	if d%time.Second == 0 {
		return fmt.Sprintf("%ds", int(d/time.Second))
	}
	return d.String()
}
