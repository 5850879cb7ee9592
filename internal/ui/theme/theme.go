package theme

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/trigbot/internal/render"
)

// Color palette for a dark terminal.
var (
	Primary = lipgloss.Color("#8B5CF6") // Vivid Purple
	Success = lipgloss.Color("#22C55E") // Green
	Error   = lipgloss.Color("#F43F5E") // Rose
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	BgCard  = lipgloss.Color("#1E293B") // Dark Slate
	Border  = lipgloss.Color("#334155") // Slate

	// Answer box fills need to stay readable under white text.
	HoverFill   = lipgloss.Color("#3B3470") // Dim Purple
	CorrectFill = lipgloss.Color("#166534") // Deep Green
	WrongFill   = lipgloss.Color("#9F1239") // Deep Rose
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Failure = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Layout
var (
	Bar = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Foreground(Success)

	ProgressEmpty = lipgloss.NewStyle().
			Foreground(Border)
)

// Palette returns the renderer colors for the terminal cell surface.
func Palette() render.Palette {
	return render.Palette{
		Ink:            Text,
		Muted:          TextDim,
		BoxOutline:     TextDim,
		HighlightFill:  HoverFill,
		CorrectFill:    CorrectFill,
		WrongFill:      WrongFill,
		CorrectOutline: Success,
	}
}
