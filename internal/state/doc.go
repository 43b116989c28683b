// Package state tracks reloads of the progress file for the dashboard.
//
// # Overview
//
// The Tracker owns the displayed event sequence and the LoadStatus shown in
// the status line. The UI loop calls Due on every tick and Tick when a reload
// is due; nothing else mutates the tracker, so it carries no locks.
//
//	UI loop (one goroutine):
//	┌──────────────────────────────┐
//	│ tick                         │
//	│  ├─> tracker.Due(now)?       │
//	│  │     └─> tracker.Tick(...) │
//	│  ├─> clamp selection         │
//	│  └─> render                  │
//	└──────────────────────────────┘
//
// # Status Labels
//
//   - waiting: no reload has run yet
//   - loaded: the reload succeeded and the content differs from the last
//     successful reload (or there was none)
//   - loaded-unchanged: the reload succeeded with identical content
//   - not-found: the file is missing; the event list is cleared
//   - load-error: the file exists but could not be read or parsed; the
//     previous events stay on screen
//
// # Timestamps
//
//   - LastAttempt: every Tick
//   - LastSuccess: successful Ticks only
//   - LastChange: successful Ticks whose content marker changed
//
// # Change Detection
//
// Content is compared through source.Marker (byte length and xxhash64
// digest) rather than the modification time. Saving the file without edits
// therefore reports loaded-unchanged. A not-found reload forgets the marker
// so the file reappearing is reported as loaded.
//
// # Update Semantics
//
//	// Success: replace the whole sequence
//	events, status := tracker.Tick(path, now)
//	→ events = freshly parsed, sorted most recent first
//	→ status.LastSuccess = now
//
//	// Parse error: keep old data, record error
//	→ events = previous sequence
//	→ status.Label = load-error, status.Err = err
//
// Events are returned as copies; callers may modify them freely.
//
// # Testing Considerations
//
// The zero Tracker is usable: it reports waiting, is due immediately and
// uses DefaultInterval. Tick takes the current time as an argument so tests
// drive it with fixed clocks.
package state
