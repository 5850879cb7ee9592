package screen

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []key.Binding
}

// StatusProvider is an optional interface for screens that show a status
// on the right of the header.
type StatusProvider interface {
	Status() string
}

// ContentSizeMsg reports the size of the area between header and footer.
// Screens receive it instead of tea.WindowSizeMsg.
type ContentSizeMsg struct {
	Width  int
	Height int
}

// PointerLeaveMsg reports that the pointer left the content area or the
// terminal lost focus.
type PointerLeaveMsg struct{}
