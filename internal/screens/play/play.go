// Package play is the terminal quiz screen. It draws the session on a cell
// grid and feeds it mouse and keyboard events.
package play

import (
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/trigbot/internal/layout"
	"github.com/abhisek/trigbot/internal/quiz"
	"github.com/abhisek/trigbot/internal/render"
	"github.com/abhisek/trigbot/internal/render/cells"
	"github.com/abhisek/trigbot/internal/router"
	"github.com/abhisek/trigbot/internal/screen"
	"github.com/abhisek/trigbot/internal/screens/howto"
	"github.com/abhisek/trigbot/internal/ui/components"
	"github.com/abhisek/trigbot/internal/ui/keys"
	"github.com/abhisek/trigbot/internal/ui/theme"
)

const scoreWidth = 16

// PlayScreen hosts one quiz session.
type PlayScreen struct {
	session *quiz.Session
	grid    *cells.Grid
	keys    keys.KeyMap

	// cursor is the display slot focused from the keyboard, -1 when the
	// mouse is in charge.
	cursor int
	err    error
}

var (
	_ screen.Screen          = (*PlayScreen)(nil)
	_ screen.KeyHintProvider = (*PlayScreen)(nil)
	_ screen.StatusProvider  = (*PlayScreen)(nil)
)

// New creates a PlayScreen drawing rounds from src.
func New(src quiz.ProblemSource, logger *slog.Logger) *PlayScreen {
	grid := cells.New(0, 0)
	return &PlayScreen{
		session: quiz.NewSession(quiz.Options{
			Source:   src,
			Surface:  grid,
			Renderer: render.New(theme.Palette()),
			Metrics:  layout.TerminalMetrics(),
			Logger:   logger,
		}),
		grid:   grid,
		keys:   keys.Default(),
		cursor: -1,
	}
}

// Session returns the hosted session.
func (p *PlayScreen) Session() *quiz.Session { return p.session }

func (p *PlayScreen) Title() string {
	if p.session.Mode() == quiz.ModeStart {
		return ""
	}
	return "Which equation fits?"
}

func (p *PlayScreen) Init() tea.Cmd {
	return nil
}

// cellCenter maps a mouse cell to the point at its centre, so that hit
// tests against whole-cell boxes are strict.
func cellCenter(m tea.Mouse) (float64, float64) {
	return float64(m.X) + 0.5, float64(m.Y) + 0.5
}

func (p *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.ContentSizeMsg:
		p.grid.Resize(msg.Width, msg.Height)
		p.session.Resize(float64(msg.Width), float64(msg.Height))

	case tea.MouseMotionMsg:
		p.cursor = -1
		p.session.PointerMove(cellCenter(msg.Mouse()))

	case tea.MouseClickMsg:
		m := msg.Mouse()
		if m.Button == tea.MouseLeft {
			p.click(cellCenter(m))
		}

	case screen.PointerLeaveMsg:
		p.session.PointerLeave()

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, p.keys.NewRound):
			p.cursor = -1
			p.err = p.session.NewRound()
		case key.Matches(msg, p.keys.Restart):
			p.cursor = -1
			p.err = nil
			p.session.Restart()
		case key.Matches(msg, p.keys.Help):
			help := howto.New(p.keys)
			return p, func() tea.Msg { return router.PushScreenMsg{Screen: help} }
		case key.Matches(msg, p.keys.Choose):
			p.choose()
		case key.Matches(msg, p.keys.Left):
			p.moveCursor(-1, 0)
		case key.Matches(msg, p.keys.Right):
			p.moveCursor(1, 0)
		case key.Matches(msg, p.keys.Up):
			p.moveCursor(0, -1)
		case key.Matches(msg, p.keys.Down):
			p.moveCursor(0, 1)
		}
	}

	return p, nil
}

func (p *PlayScreen) click(x, y float64) {
	if _, err := p.session.Click(x, y); err != nil {
		p.err = err
		return
	}
	p.err = nil
}

// choose answers with the focused box, or starts a round from the start
// screen.
func (p *PlayScreen) choose() {
	if p.session.Mode() == quiz.ModeStart {
		p.click(0, 0)
		return
	}
	boxes := p.session.Boxes()
	if p.cursor < 0 || p.cursor >= len(boxes) {
		return
	}
	p.click(center(boxes[p.cursor]))
}

// moveCursor moves keyboard focus across the answer grid and hovers the
// focused box.
func (p *PlayScreen) moveCursor(dx, dy int) {
	if p.session.Mode() != quiz.ModePlaying || p.session.Answered() {
		return
	}
	boxes := p.session.Boxes()
	if len(boxes) == 0 {
		return
	}

	if p.cursor < 0 {
		p.cursor = 0
	} else {
		cols := p.session.Regions().Columns
		p.cursor = min(max(p.cursor+dx+dy*cols, 0), len(boxes)-1)
	}
	p.session.PointerMove(center(boxes[p.cursor]))
}

func center(b render.AnswerBox) (float64, float64) {
	return b.Rect.X + b.Rect.W/2, b.Rect.Y + b.Rect.H/2
}

func (p *PlayScreen) View(width, height int) string {
	if w, h := p.grid.Size(); w == 0 || h == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, "")
	}
	return p.grid.String()
}

// Status shows the score, or the last error until the next successful
// action.
func (p *PlayScreen) Status() string {
	if p.err != nil {
		return theme.Failure.Render("could not build a round")
	}
	answered, correct := p.session.Score()
	return components.NewScoreBar(correct, answered, scoreWidth).View()
}

func (p *PlayScreen) KeyHints() []key.Binding {
	if p.session.Mode() == quiz.ModeStart {
		return []key.Binding{p.keys.Choose, p.keys.Help, p.keys.Quit}
	}
	return []key.Binding{p.keys.Left, p.keys.Right, p.keys.Choose, p.keys.NewRound, p.keys.Help, p.keys.Quit}
}
