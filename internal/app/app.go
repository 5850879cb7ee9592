package app

import (
	"fmt"
	"log/slog"
	"os"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/trigbot/internal/quiz"
	"github.com/abhisek/trigbot/internal/router"
	"github.com/abhisek/trigbot/internal/screen"
	"github.com/abhisek/trigbot/internal/screens/play"
	"github.com/abhisek/trigbot/internal/ui/frame"
	"github.com/abhisek/trigbot/internal/ui/keys"
)

// Options holds the dependencies of the terminal app.
type Options struct {
	Source quiz.ProblemSource
	Logger *slog.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	keys   keys.KeyMap
	log    *slog.Logger
	width  int
	height int
}

// newAppModel creates a new AppModel with the quiz screen.
func newAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = quiz.NopLogger()
	}
	return AppModel{
		router: router.New(play.New(opts.Source, logger)),
		keys:   keys.Default(),
		log:    logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if frame.IsTooSmall(m.width, m.height) {
			m.log.Debug("terminal too small", "width", m.width, "height", m.height)
			return m, nil
		}
		return m, m.router.Update(screen.ContentSizeMsg{
			Width:  m.width,
			Height: frame.ContentHeight(m.height),
		})

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}

	case tea.MouseMotionMsg:
		mouse, inside := m.toContent(msg.Mouse())
		if !inside {
			return m, m.router.Update(screen.PointerLeaveMsg{})
		}
		return m, m.router.Update(tea.MouseMotionMsg(mouse))

	case tea.MouseClickMsg:
		mouse, inside := m.toContent(msg.Mouse())
		if !inside {
			return m, nil
		}
		return m, m.router.Update(tea.MouseClickMsg(mouse))

	case tea.MouseReleaseMsg, tea.MouseWheelMsg:
		return m, nil

	case tea.BlurMsg:
		return m, m.router.Update(screen.PointerLeaveMsg{})
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// toContent moves a mouse event from terminal cells into the content area
// between header and footer.
func (m AppModel) toContent(mouse tea.Mouse) (tea.Mouse, bool) {
	mouse.Y -= frame.HeaderHeight
	if frame.IsTooSmall(m.width, m.height) {
		return mouse, false
	}
	inside := mouse.X >= 0 && mouse.X < m.width &&
		mouse.Y >= 0 && mouse.Y < frame.ContentHeight(m.height)
	return mouse, inside
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	v.ReportFocus = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if frame.IsTooSmall(m.width, m.height) {
		v.SetContent(frame.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title, status := "", ""
	hints := []key.Binding{m.keys.Back, m.keys.Quit}
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
		if kp, ok := active.(screen.KeyHintProvider); ok {
			hints = kp.KeyHints()
		}
	}

	header := frame.RenderHeader(title, status, m.width)
	footer := frame.RenderFooter(hints, m.width)
	content := m.router.View(m.width, frame.ContentHeight(m.height))

	v.SetContent(frame.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
