// Package keys defines the terminal key bindings and their help text.
package keys

import "charm.land/bubbles/v2/key"

// KeyMap holds every binding of the terminal quiz.
type KeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Choose   key.Binding
	NewRound key.Binding
	Restart  key.Binding
	Help     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// Default returns the standard bindings.
func Default() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous answer"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next answer"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "answer above"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "answer below"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter", "space"),
			key.WithHelp("enter", "choose"),
		),
		NewRound: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new triangle"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "start screen"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Choose, k.NewRound, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.Choose},
		{k.NewRound, k.Restart},
		{k.Help, k.Back, k.Quit},
	}
}
