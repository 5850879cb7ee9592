// Package howto shows how to play and the full key help.
package howto

import (
	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/trigbot/internal/screen"
	"github.com/abhisek/trigbot/internal/ui/keys"
	"github.com/abhisek/trigbot/internal/ui/theme"
)

const instructions = `Each round shows a right triangle with one angle and one side
named, and asks for another side.

Pick the equation that links the given angle, the given side
and the wanted side. Only one of the six boxes is right.

A wrong pick marks your box and outlines the right one.`

// HelpScreen is pushed on top of the quiz and popped with esc.
type HelpScreen struct {
	keys keys.KeyMap
	help help.Model
}

var (
	_ screen.Screen          = (*HelpScreen)(nil)
	_ screen.KeyHintProvider = (*HelpScreen)(nil)
)

// New creates a HelpScreen describing km.
func New(km keys.KeyMap) *HelpScreen {
	h := help.New()
	h.Styles = help.DefaultDarkStyles()
	return &HelpScreen{keys: km, help: h}
}

func (s *HelpScreen) Init() tea.Cmd {
	return nil
}

func (s *HelpScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(screen.ContentSizeMsg); ok {
		s.help.SetWidth(msg.Width)
	}
	return s, nil
}

func (s *HelpScreen) View(width, height int) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		theme.Body.Render(instructions),
		"",
		s.help.FullHelpView(s.keys.FullHelp()),
		"",
		theme.Hint.Render("esc returns to the quiz"),
	)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (s *HelpScreen) Title() string {
	return "How to play"
}

func (s *HelpScreen) KeyHints() []key.Binding {
	return []key.Binding{s.keys.Back, s.keys.Quit}
}
