package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// newHelp returns a help model that renders plain text. The canvas applies
// its own attributes, so styled output would corrupt column accounting.
func newHelp() help.Model {
	h := help.New()
	plain := lipgloss.NewStyle()
	h.Styles = help.Styles{
		Ellipsis:       plain,
		ShortKey:       plain,
		ShortDesc:      plain,
		ShortSeparator: plain,
		FullKey:        plain,
		FullDesc:       plain,
		FullSeparator:  plain,
	}
	h.ShortSeparator = "  "
	return h
}
