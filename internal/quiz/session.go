// Package quiz is the interaction controller: it owns one quiz session,
// turns resize, pointer and click events into state changes, and redraws
// the round on its surface when something visible changed.
package quiz

import (
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/abhisek/trigbot/internal/layout"
	"github.com/abhisek/trigbot/internal/problemgen"
	"github.com/abhisek/trigbot/internal/render"
)

// Mode is the session's top-level state.
type Mode int

const (
	// ModeStart shows the start prompt and waits for a click.
	ModeStart Mode = iota
	// ModePlaying shows a round.
	ModePlaying
)

func (m Mode) String() string {
	switch m {
	case ModeStart:
		return "start"
	case ModePlaying:
		return "playing"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ProblemSource produces rounds. *problemgen.Generator implements it.
type ProblemSource interface {
	Generate() (*problemgen.Problem, error)
}

// Options configures a Session.
type Options struct {
	Source ProblemSource
	// Surface may be nil, in which case nothing is drawn.
	Surface  render.Surface
	Renderer *render.Renderer
	Metrics  layout.Metrics
	Logger   *slog.Logger
}

// Session is one quiz session. It is not safe for concurrent use: every
// handler must be called from the same event loop.
type Session struct {
	id       string
	log      *slog.Logger
	source   ProblemSource
	surface  render.Surface
	renderer *render.Renderer
	metrics  layout.Metrics

	mode     Mode
	regions  layout.Regions
	problem  *problemgen.Problem
	boxes    []render.AnswerBox
	answered bool

	// pointer is the last position seen by PointerMove, valid while
	// pointerIn is set.
	pointerX, pointerY float64
	pointerIn          bool

	rounds  int
	answers int
	correct int
}

// NewSession creates a session in ModeStart. Nothing is drawn until the
// first Resize.
func NewSession(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = NopLogger()
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = render.New(render.PaperPalette())
	}

	id := uuid.NewString()
	return &Session{
		id:       id,
		log:      logger.With("session", id),
		source:   opts.Source,
		surface:  opts.Surface,
		renderer: renderer,
		metrics:  opts.Metrics,
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Mode returns the current mode.
func (s *Session) Mode() Mode { return s.mode }

// Problem returns the current round's problem, or nil in ModeStart.
func (s *Session) Problem() *problemgen.Problem { return s.problem }

// Regions returns the current layout.
func (s *Session) Regions() layout.Regions { return s.regions }

// Answered reports whether a choice has been made this round.
func (s *Session) Answered() bool { return s.answered }

// Boxes returns a copy of the answer boxes in display-slot order.
func (s *Session) Boxes() []render.AnswerBox {
	out := make([]render.AnswerBox, len(s.boxes))
	copy(out, s.boxes)
	return out
}

// Score returns how many rounds were answered, and how many of those
// correctly.
func (s *Session) Score() (answered, correct int) { return s.answers, s.correct }

// Resize relayouts for a width×height viewport and redraws. The surface
// must already have the new size. Hover is tested again against the last
// pointer position, since the boxes moved under it.
func (s *Session) Resize(width, height float64) bool {
	s.regions = layout.Compute(s.metrics, width, height)
	if s.problem != nil {
		s.placeBoxes()
		for i := range s.boxes {
			b := &s.boxes[i]
			b.Highlighted = s.pointerIn && !s.answered && b.Rect.Contains(s.pointerX, s.pointerY)
		}
	}
	s.log.Debug("resize", "width", width, "height", height, "wide", s.regions.Wide, "columns", s.regions.Columns)
	s.redraw()
	return true
}

// PointerMove updates hover highlighting. It redraws only when the set of
// highlighted boxes changed.
func (s *Session) PointerMove(x, y float64) bool {
	s.pointerX, s.pointerY, s.pointerIn = x, y, true
	if s.mode != ModePlaying || s.answered {
		return false
	}

	changed := false
	for i := range s.boxes {
		b := &s.boxes[i]
		hit := b.Rect.Contains(x, y)
		if hit != b.Highlighted {
			b.Highlighted = hit
			changed = true
		}
	}
	if changed {
		s.redraw()
	}
	return changed
}

// PointerLeave clears all hover highlighting.
func (s *Session) PointerLeave() bool {
	s.pointerIn = false
	if s.mode != ModePlaying {
		return false
	}

	changed := false
	for i := range s.boxes {
		if s.boxes[i].Highlighted {
			s.boxes[i].Highlighted = false
			changed = true
		}
	}
	if changed {
		s.redraw()
	}
	return changed
}

// Click starts the first round from ModeStart, or answers the current
// round when it lands inside an answer box. Once a round is answered,
// clicks are ignored until the next round.
func (s *Session) Click(x, y float64) (bool, error) {
	switch s.mode {
	case ModeStart:
		if err := s.NewRound(); err != nil {
			return false, err
		}
		return true, nil

	case ModePlaying:
		if s.answered {
			return false, nil
		}
		for i := range s.boxes {
			b := &s.boxes[i]
			if !b.Rect.Contains(x, y) {
				continue
			}
			b.Chosen = true
			s.answered = true
			s.answers++
			if b.Correct {
				s.correct++
			}
			s.log.Info("answer chosen",
				"round", s.rounds,
				"answer", s.problem.Answers[b.Index],
				"correct", b.Correct)
			s.redraw()
			return true, nil
		}
	}
	return false, nil
}

// NewRound replaces the current round with a freshly generated one and
// switches to ModePlaying. On failure the previous state is kept.
func (s *Session) NewRound() error {
	p, err := s.source.Generate()
	if err != nil {
		s.log.Error("generate round", "error", err)
		return fmt.Errorf("new round: %w", err)
	}

	boxes, err := tokenizeBoxes(p)
	if err != nil {
		s.log.Error("tokenize answers", "error", err)
		return fmt.Errorf("new round: %w", err)
	}

	s.mode = ModePlaying
	s.problem = p
	s.boxes = boxes
	s.answered = false
	s.rounds++
	s.placeBoxes()

	s.log.Info("round started",
		"round", s.rounds,
		"function", p.Func.String(),
		"question", p.Question(),
		"clockwise", p.Triangle.Clockwise())
	s.redraw()
	return nil
}

// Restart drops the current round and returns to the start prompt.
func (s *Session) Restart() bool {
	if s.mode == ModeStart {
		return false
	}
	s.mode = ModeStart
	s.problem = nil
	s.boxes = nil
	s.answered = false
	s.redraw()
	return true
}

// Scene returns what the next redraw will paint.
func (s *Session) Scene() render.Scene {
	return render.Scene{
		Metrics:  s.metrics,
		Regions:  s.regions,
		Problem:  s.problem,
		Boxes:    s.Boxes(),
		Answered: s.answered,
	}
}

// Redraw paints the current scene again, e.g. after the host recreated
// its surface.
func (s *Session) Redraw() {
	s.redraw()
}

func (s *Session) redraw() {
	if s.surface == nil || s.regions.Width == 0 {
		return
	}
	s.renderer.Draw(s.surface, s.Scene())
}

// tokenizeBoxes builds the answer boxes of p in display-slot order, without
// positions.
func tokenizeBoxes(p *problemgen.Problem) ([]render.AnswerBox, error) {
	boxes := make([]render.AnswerBox, len(p.Order))
	for slot, idx := range p.Order {
		tokens, err := problemgen.Tokenize(p.Answers[idx])
		if err != nil {
			return nil, err
		}
		boxes[slot] = render.AnswerBox{
			Index:   idx,
			Tokens:  tokens,
			Correct: p.IsCorrect(idx),
		}
	}
	return boxes, nil
}

// placeBoxes measures the boxes on the surface and lays them out in the
// current choice region, keeping their interaction state. Without a
// surface, text widths are estimated from the font size.
func (s *Session) placeBoxes() {
	var tm layout.TextMeasurer = estimateMeasurer{}
	if s.surface != nil {
		tm = s.surface
	}
	sizes := make([]layout.Size, len(s.boxes))
	for i, b := range s.boxes {
		sizes[i] = layout.MeasureAnswer(b.Tokens, tm, s.metrics)
	}
	for i, r := range layout.PlaceAnswers(s.regions, s.metrics, sizes) {
		s.boxes[i].Rect = r
	}
}

// estimateMeasurer sizes text at half an em per rune.
type estimateMeasurer struct{}

func (estimateMeasurer) MeasureText(str string, f layout.Font) float64 {
	return float64(utf8.RuneCountInString(str)) * f.Size / 2
}
