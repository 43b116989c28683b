// Package ui provides the Bubble Tea dashboard for a progress event file.
//
// # Architecture Overview
//
// Model is a tea.Model. Every state change happens in Update:
//
//   - tickMsg fires every PollInterval. When the state.Tracker reports a
//     reload is due, the file is re-read and the view state is reconciled
//     with the new event list.
//   - tea.KeyMsg is resolved through keyMap into a Key and applied to
//     ViewState by the input state machine in input.go.
//   - tea.WindowSizeMsg records the screen size.
//
// After each message a layout pass clamps the scroll offsets, so View only
// reads state. View draws into a canvas.Grid and returns its string form.
//
// # Package Structure
//
//   - app.go: Model, Options, tick scheduling and the Run function
//   - input.go: Mode, Key, ViewState and the Apply/Reconcile transitions
//   - keys.go: key bindings and footer hints
//   - render.go: list and detail screens
//   - layout.go: column widths, chrome rows and timing constants
//   - help.go: plain-text help model for the footer
//   - strings.go: clock and interval formatting
//
// # Screens
//
// The list screen shows a header, a status line and one row per event,
// newest first, with the selected row in reverse video. The detail screen
// dumps every field of the selected event under an upper-cased heading,
// priority fields first. Up/Down (or k/j) move the selection or scroll the
// detail body. Enter opens the detail screen; Esc or q goes back, or quits
// from the list. Ctrl+C always quits.
package ui
