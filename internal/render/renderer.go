package render

import (
	"github.com/abhisek/trigbot/internal/layout"
	"github.com/abhisek/trigbot/internal/problemgen"
)

const (
	// RightAngleSize is the length of the right-angle marker legs, as a
	// fraction of the diagram box.
	RightAngleSize = 0.06

	// StartTitle and StartPrompt are drawn on the START screen.
	StartTitle  = "Trig Bot"
	StartPrompt = "Click anywhere to start"
)

// AnswerBox is one clickable answer as laid out on screen.
type AnswerBox struct {
	// Index is the answer's index in Problem.Answers.
	Index  int
	Tokens []problemgen.Token
	Rect   layout.Box

	Highlighted bool
	Chosen      bool
	// Correct marks the box holding the correct answer.
	Correct bool
}

// Scene is everything one frame shows. A nil Problem draws the START screen.
type Scene struct {
	Metrics  layout.Metrics
	Regions  layout.Regions
	Problem  *problemgen.Problem
	Boxes    []AnswerBox
	Answered bool
}

// Renderer draws Scenes.
type Renderer struct {
	Palette Palette

	// LineWidth is used for the triangle; box outlines use half of it and
	// the correct-answer outline one and a half times it.
	LineWidth float64
}

// New returns a Renderer painting with p.
func New(p Palette) *Renderer {
	return &Renderer{Palette: p, LineWidth: 2}
}

// Draw clears the surface and paints sc.
func (r *Renderer) Draw(s Surface, sc Scene) {
	s.Clear(0, 0, sc.Regions.Width, sc.Regions.Height)

	if sc.Problem == nil {
		r.drawStart(s, sc)
		return
	}

	r.drawTriangle(s, sc)
	r.drawLabels(s, sc)
	r.drawQuestion(s, sc)
	for _, b := range sc.Boxes {
		r.drawBox(s, sc, b)
	}
}

func (r *Renderer) drawStart(s Surface, sc Scene) {
	m := sc.Metrics
	cx, cy := sc.Regions.Width/2, sc.Regions.Height/2

	title := layout.Font{Size: m.FontSize, Bold: true}
	s.SetFont(title)
	s.SetFillColor(r.Palette.Ink)
	s.FillText(StartTitle, cx-s.MeasureText(StartTitle, title)/2, cy-m.RowHeight)

	prompt := m.TextFont()
	s.SetFont(prompt)
	s.SetFillColor(r.Palette.Muted)
	s.FillText(StartPrompt, cx-s.MeasureText(StartPrompt, prompt)/2, cy)
}

func (r *Renderer) drawTriangle(s Surface, sc Scene) {
	d := sc.Regions.Diagram
	t := sc.Problem.Triangle

	s.SetStrokeColor(r.Palette.Ink)
	s.SetLineWidth(r.LineWidth)

	s.MoveTo(d.Map(t.A))
	s.LineTo(d.Map(t.B))
	s.LineTo(d.Map(t.C))
	s.LineTo(d.Map(t.A))
	s.Stroke()

	mark := RightAngleMarker(t, RightAngleSize)
	s.MoveTo(d.Map(mark[0]))
	s.LineTo(d.Map(mark[1]))
	s.LineTo(d.Map(mark[2]))
	s.Stroke()
}

// labelClearance is the radius of a label in unit-square coordinates.
func labelClearance(sc Scene) float64 {
	if sc.Regions.Diagram.H <= 0 {
		return 0
	}
	return 0.75 * sc.Metrics.RowHeight / sc.Regions.Diagram.H
}

func (r *Renderer) drawLabels(s Surface, sc Scene) {
	d := sc.Regions.Diagram
	p := sc.Problem
	clearance := labelClearance(sc)
	f := sc.Metrics.VariableFont()

	s.SetFont(f)
	s.SetFillColor(r.Palette.Ink)

	for i, name := range p.Scheme.Sides {
		x, y := d.Map(SideLabelPoint(p.Triangle, i, 1.2*clearance))
		r.centerText(s, sc, name, f, x, y)
	}
	for i, name := range p.Scheme.Angles {
		x, y := d.Map(AngleLabelPoint(p.Triangle, i, clearance))
		r.centerText(s, sc, name, f, x, y)
	}
}

func (r *Renderer) centerText(s Surface, sc Scene, text string, f layout.Font, x, y float64) {
	s.FillText(text, x-s.MeasureText(text, f)/2, y-sc.Metrics.RowHeight/2)
}

type run struct {
	text     string
	variable bool
}

func (r *Renderer) drawQuestion(s Surface, sc Scene) {
	p := sc.Problem
	lines := [][]run{
		{{"Given: ", false}, {p.AngleName(), true}, {" and ", false}, {p.SideName(p.KnownSide), true}, {";", false}},
		{{"Wanted: ", false}, {p.SideName(p.WantedSide), true}},
	}

	s.SetFillColor(r.Palette.Ink)
	for i, line := range lines {
		x, y := sc.Regions.QuestionLine(sc.Metrics, i)
		for _, part := range line {
			f := sc.Metrics.TextFont()
			if part.variable {
				f = sc.Metrics.VariableFont()
			}
			s.SetFont(f)
			s.FillText(part.text, x, y)
			x += s.MeasureText(part.text, f)
		}
	}
}

func (r *Renderer) drawBox(s Surface, sc Scene, b AnswerBox) {
	m := sc.Metrics
	rect := b.Rect

	fill := r.Palette.BoxFill
	switch {
	case b.Chosen && b.Correct:
		fill = r.Palette.CorrectFill
	case b.Chosen:
		fill = r.Palette.WrongFill
	case b.Highlighted:
		fill = r.Palette.HighlightFill
	}
	if fill != nil {
		s.SetFillColor(fill)
		s.FillRect(rect.X, rect.Y, rect.W, rect.H)
	}

	outline, width := r.Palette.BoxOutline, r.LineWidth/2
	if sc.Answered && b.Correct && !b.Chosen {
		outline, width = r.Palette.CorrectOutline, r.LineWidth*1.5
	}
	s.SetStrokeColor(outline)
	s.SetLineWidth(width)
	s.StrokeRect(rect.X, rect.Y, rect.W, rect.H)

	r.drawTokens(s, sc, b.Tokens, rect.X+m.BoxPadding, rect.Y+m.BoxPadding, rect.H-2*m.BoxPadding)
}

// drawTokens lays tokens left to right from (x, top), vertically centring
// single-row tokens within a content area of height contentH.
func (r *Renderer) drawTokens(s Surface, sc Scene, tokens []problemgen.Token, x, top, contentH float64) {
	m := sc.Metrics
	rowY := top + (contentH-m.RowHeight)/2

	s.SetFillColor(r.Palette.Ink)
	s.SetStrokeColor(r.Palette.Ink)
	s.SetLineWidth(r.LineWidth / 2)

	for i, tok := range tokens {
		if i > 0 {
			x += m.TokenSpacing
		}
		w := layout.TokenWidth(tok, s, m)

		switch tok.Kind {
		case problemgen.TokenFraction:
			f := m.VariableFont()
			s.SetFont(f)
			s.FillText(tok.Num, x+(w-s.MeasureText(tok.Num, f))/2, top)

			barY := top + m.RowHeight + m.BarGap/2
			s.MoveTo(x, barY)
			s.LineTo(x+w, barY)
			s.Stroke()

			s.FillText(tok.Den, x+(w-s.MeasureText(tok.Den, f))/2, top+m.RowHeight+m.BarGap)
		case problemgen.TokenVariable:
			s.SetFont(m.VariableFont())
			s.FillText(tok.Text, x, rowY)
		default:
			s.SetFont(m.TextFont())
			s.FillText(tok.Text, x, rowY)
		}
		x += w
	}
}
