package state

import (
	"errors"
	"log/slog"
	"time"

	"github.com/five82/progressdash/internal/progress"
	"github.com/five82/progressdash/internal/source"
)

// DefaultInterval is the reload cadence used when none is configured.
const DefaultInterval = 10 * time.Second

// Label summarises the outcome of the latest reload.
type Label string

const (
	LabelWaiting   Label = "waiting"
	LabelLoaded    Label = "loaded"
	LabelUnchanged Label = "loaded-unchanged"
	LabelNotFound  Label = "not-found"
	LabelError     Label = "load-error"
)

// LoadStatus describes the reload history shown in the status line. Zero
// times mean "never".
type LoadStatus struct {
	LastAttempt time.Time
	LastSuccess time.Time
	LastChange  time.Time
	Label       Label
	Err         error
}

// Tracker reloads the progress file and tells re-reads apart from content
// changes. It is not safe for concurrent use; the UI loop owns it.
type Tracker struct {
	Interval time.Duration
	Logger   *slog.Logger

	events    []progress.Event
	status    LoadStatus
	marker    source.Marker
	hasMarker bool
	attempted bool
}

// NewTracker returns a tracker reloading every interval. A non-positive
// interval uses DefaultInterval.
func NewTracker(interval time.Duration, logger *slog.Logger) *Tracker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Tracker{
		Interval: interval,
		Logger:   logger,
		status:   LoadStatus{Label: LabelWaiting},
	}
}

// Due reports whether a reload should run at now.
func (t *Tracker) Due(now time.Time) bool {
	if !t.attempted {
		return true
	}
	interval := t.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	return now.Sub(t.status.LastAttempt) >= interval
}

// Tick reloads path once and returns the events to display with the updated
// status. Failures are absorbed: a missing file clears the events, any other
// failure keeps the previous ones.
func (t *Tracker) Tick(path string, now time.Time) ([]progress.Event, LoadStatus) {
	t.attempted = true
	t.status.LastAttempt = now

	snap, err := source.Read(path)
	if err == nil {
		var events []progress.Event
		events, err = progress.Load(snap.Data)
		if err == nil {
			t.applySuccess(snap, events, now)
			return t.Events(), t.Status()
		}
	}

	switch {
	case errors.Is(err, source.ErrNotFound):
		t.events = nil
		t.hasMarker = false
		t.status.Label = LabelNotFound
		t.logger().Warn("progress file not found", "path", path)
	default:
		t.status.Label = LabelError
		t.logger().Warn("progress reload failed", "path", path, "error", err)
	}
	t.status.Err = err
	return t.Events(), t.Status()
}

func (t *Tracker) applySuccess(snap source.Snapshot, events []progress.Event, now time.Time) {
	marker := snap.Marker()
	changed := !t.hasMarker || marker != t.marker
	t.events = events
	t.marker = marker
	t.hasMarker = true
	t.status.LastSuccess = now
	t.status.Err = nil
	if changed {
		t.status.Label = LabelLoaded
		t.status.LastChange = now
	} else {
		t.status.Label = LabelUnchanged
	}
	t.logger().Debug("progress reloaded",
		"events", len(events),
		"changed", changed,
		"size", snap.Size,
		"modified", snap.ModTime.Format(time.DateTime))
}

// Events returns a copy of the current events.
func (t *Tracker) Events() []progress.Event {
	return cloneEvents(t.events)
}

// Status returns the current load status.
func (t *Tracker) Status() LoadStatus {
	status := t.status
	if status.Label == "" {
		status.Label = LabelWaiting
	}
	return status
}

func (t *Tracker) logger() *slog.Logger {
	if t.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return t.Logger
}

func cloneEvents(events []progress.Event) []progress.Event {
	if len(events) == 0 {
		return nil
	}
	dup := make([]progress.Event, len(events))
	copy(dup, events)
	return dup
}
