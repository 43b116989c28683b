package ui

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Enter     key.Binding
	Back      key.Binding
	Interrupt key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "Move down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc", "quit"),
		),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// resolve maps a key press to the input the state machine understands.
func (k keyMap) resolve(msg tea.KeyMsg) Key {
	switch {
	case key.Matches(msg, k.Interrupt):
		return KeyInterrupt
	case key.Matches(msg, k.Up):
		return KeyUp
	case key.Matches(msg, k.Down):
		return KeyDown
	case key.Matches(msg, k.Enter):
		return KeyEnter
	case key.Matches(msg, k.Back):
		return KeyBack
	default:
		return KeyNone
	}
}

// hints returns the bindings advertised in the footer for mode.
func (k keyMap) hints(mode Mode) []key.Binding {
	if mode == ModeDetail {
		return []key.Binding{
			key.NewBinding(key.WithKeys(slices.Concat(k.Up.Keys(), k.Down.Keys())...), key.WithHelp("↑/↓", "scroll")),
			key.NewBinding(key.WithKeys(k.Back.Keys()...), key.WithHelp("esc", "back")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys(slices.Concat(k.Up.Keys(), k.Down.Keys())...), key.WithHelp("↑/↓", "select")),
		k.Enter,
		k.Back,
	}
}
