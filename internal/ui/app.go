package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/progressdash/internal/canvas"
	"github.com/five82/progressdash/internal/progress"
	"github.com/five82/progressdash/internal/state"
	"github.com/five82/progressdash/internal/viewport"
)

// Clock supplies wall-clock readings. time.Time values carry the monotonic
// reading the reload schedule relies on.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Options configures the UI.
type Options struct {
	Context    context.Context
	SourcePath string
	Interval   time.Duration
	Tracker    *state.Tracker
	Clock      Clock
	Logger     *slog.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	path     string
	interval time.Duration
	tracker  *state.Tracker
	clock    Clock
	logger   *slog.Logger

	// UI state
	keys   keyMap
	help   help.Model
	view   ViewState
	width  int
	height int
	ready  bool
	now    time.Time

	// Data state
	events []progress.Event
	status state.LoadStatus
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	interval := opts.Interval
	if interval <= 0 {
		interval = state.DefaultInterval
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	tracker := opts.Tracker
	if tracker == nil {
		tracker = state.NewTracker(interval, logger)
	}

	clock := opts.Clock
	if clock == nil {
		clock = systemClock{}
	}

	return Model{
		path:     opts.SourcePath,
		interval: interval,
		tracker:  tracker,
		clock:    clock,
		logger:   logger,
		keys:     DefaultKeyMap(),
		help:     newHelp(),
		now:      clock.Now(),
		status:   tracker.Status(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	// Reload right away rather than after the first poll interval.
	return func() tea.Msg { return tickMsg(m.clock.Now()) }
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		return m, nil

	case tickMsg:
		return m.handleTick()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	grid := canvas.NewGrid(m.height, m.width)
	m.render(grid)
	return grid.String()
}

// handleKey applies one key press to the view state.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys.resolve(msg)
	if k == KeyNone {
		return m, nil
	}
	prev := m.view.Mode
	next, quit := m.view.Apply(k, len(m.events))
	if quit {
		return m, tea.Quit
	}
	m.view = next
	if next.Mode != prev {
		m.logger.Debug("mode changed", "from", prev, "to", next.Mode, "selected", next.Selected)
	}
	m.layout()
	return m, nil
}

// handleTick reloads the source when due and schedules the next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.now = m.clock.Now()
	if m.tracker.Due(m.now) {
		events, status := m.tracker.Tick(m.path, m.now)
		replaced := status.Label != state.LabelError
		m.events = events
		m.status = status
		m.view = m.view.Reconcile(len(events), replaced)
	}
	m.layout()
	return m, tickCmd(PollInterval)
}

// layout keeps the scroll offsets valid for the current screen size.
func (m *Model) layout() {
	if !m.ready {
		return
	}
	switch m.view.Mode {
	case ModeDetail:
		ev, ok := m.selectedEvent()
		if !ok {
			m.view.Mode = ModeList
			m.layout()
			return
		}
		lines := detailLines(ev, m.width)
		m.view.DetailScroll = viewport.ClampDetail(m.view.DetailScroll, len(lines), detailRows(m.height))
	default:
		m.view.ScrollTop = viewport.AdjustScroll(m.view.Selected, m.view.ScrollTop, listRows(m.height), len(m.events))
	}
}

func (m Model) selectedEvent() (progress.Event, bool) {
	if m.view.Selected < 0 || m.view.Selected >= len(m.events) {
		return progress.Event{}, false
	}
	return m.events[m.view.Selected], true
}

// State returns the current view state.
func (m Model) State() ViewState {
	return m.view
}

// Messages

type tickMsg time.Time

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
