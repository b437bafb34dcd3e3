// Package screen declares the contract every screen implements. The
// router owns a stack of these.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"gyanguru/internal/ui/layout"
)

// Screen is one full-terminal view.
type Screen interface {
	// Init runs when the screen becomes active.
	Init() tea.Cmd

	// Update handles a message and returns the screen to keep showing.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area. The header and footer are drawn
	// around it by the app model.
	View(width, height int) string

	// Title is shown centered in the header.
	Title() string
}

// KeyHintProvider lets a screen put its own key hints in the footer.
// Screens without it get the default hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
