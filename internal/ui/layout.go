package ui

import "time"

// List columns.
const (
	// TimestampWidth is the width of the timestamp column.
	TimestampWidth = 20

	// KindWidth is the width of the event type column.
	KindWidth = 10

	// ColumnGap separates list columns.
	ColumnGap = 2
)

// Screen chrome.
const (
	// listChromeRows counts header, status, divider, footer divider and hints.
	listChromeRows = 5

	// detailChromeRows counts title, divider, footer divider and hints.
	detailChromeRows = 4

	// detailIndent prefixes every field body line.
	detailIndent = "  "

	// detailMargin is the horizontal space reserved around field bodies.
	detailMargin = 4
)

// Timing constants.
const (
	// PollInterval is how long the loop waits for input before ticking.
	PollInterval = 100 * time.Millisecond

	// clockLayout formats wall-clock times in the header.
	clockLayout = "2006-01-02 15:04:05"
)

// listRows returns the number of event rows visible on a screen of height.
func listRows(height int) int {
	return max(1, height-listChromeRows)
}

// detailRows returns the number of body rows visible on a screen of height.
func detailRows(height int) int {
	return max(1, height-detailChromeRows)
}
