package render

import (
	"image/color"
	"math/rand/v2"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/trigbot/internal/geom"
	"github.com/abhisek/trigbot/internal/layout"
	"github.com/abhisek/trigbot/internal/problemgen"
)

type op struct {
	name       string
	text       string
	x, y, w, h float64
	color      color.Color
	width      float64
	font       layout.Font
}

// recorder is a Surface that logs every call.
type recorder struct {
	ops    []op
	stroke color.Color
	fill   color.Color
	width  float64
	font   layout.Font
	path   int
}

func (r *recorder) MeasureText(s string, f layout.Font) float64 {
	return float64(utf8.RuneCountInString(s)) * f.Size / 2
}

func (r *recorder) Clear(x, y, w, h float64) {
	r.ops = append(r.ops, op{name: "clear", x: x, y: y, w: w, h: h})
}

func (r *recorder) SetStrokeColor(c color.Color) { r.stroke = c }
func (r *recorder) SetFillColor(c color.Color)   { r.fill = c }
func (r *recorder) SetLineWidth(w float64)       { r.width = w }
func (r *recorder) SetFont(f layout.Font)        { r.font = f }

func (r *recorder) MoveTo(x, y float64) { r.path++ }
func (r *recorder) LineTo(x, y float64) { r.path++ }

func (r *recorder) Stroke() {
	r.ops = append(r.ops, op{name: "stroke", color: r.stroke, width: r.width})
	r.path = 0
}

func (r *recorder) FillRect(x, y, w, h float64) {
	r.ops = append(r.ops, op{name: "fillRect", x: x, y: y, w: w, h: h, color: r.fill})
}

func (r *recorder) StrokeRect(x, y, w, h float64) {
	r.ops = append(r.ops, op{name: "strokeRect", x: x, y: y, w: w, h: h, color: r.stroke, width: r.width})
}

func (r *recorder) FillText(s string, x, y float64) {
	r.ops = append(r.ops, op{name: "text", text: s, x: x, y: y, color: r.fill, font: r.font})
}

func (r *recorder) find(name string) []op {
	var out []op
	for _, o := range r.ops {
		if o.name == name {
			out = append(out, o)
		}
	}
	return out
}

func (r *recorder) texts() []string {
	var out []string
	for _, o := range r.find("text") {
		out = append(out, o.text)
	}
	return out
}

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// inside reports whether p lies strictly inside t, for either winding.
func inside(t problemgen.Triangle, p geom.Point) bool {
	cross := func(a, b, c geom.Point) float64 {
		return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	}
	d1 := cross(t.A, t.B, p)
	d2 := cross(t.B, t.C, p)
	d3 := cross(t.C, t.A, p)
	return (d1 > 0 && d2 > 0 && d3 > 0) || (d1 < 0 && d2 < 0 && d3 < 0)
}

func TestLabelPlacement_BothWindings(t *testing.T) {
	rng := testRNG(7)
	cfg := problemgen.DefaultConfig()

	var cw, ccw int
	for i := 0; i < 1000; i++ {
		tri := problemgen.NewTriangle(rng, cfg)
		if tri.Clockwise() {
			cw++
		} else {
			ccw++
		}

		for side := 0; side < 3; side++ {
			p := SideLabelPoint(tri, side, 0.05)
			require.False(t, inside(tri, p), "side %d label inside %+v", side, tri)
		}
		for angle := 0; angle < 2; angle++ {
			p := AngleLabelPoint(tri, angle, 0.05)
			require.True(t, inside(tri, p), "angle %d label outside %+v", angle, tri)
		}
	}
	assert.Positive(t, cw)
	assert.Positive(t, ccw)
}

func TestSideLabelPoint_Distance(t *testing.T) {
	tri := problemgen.BuildTriangle(0.8, 0.4, 0.3, false)
	for side := 0; side < 3; side++ {
		p, q := tri.Side(side)
		mid := geom.Midpoint(p, q)
		assert.InDelta(t, 0.1, geom.Distance(mid, SideLabelPoint(tri, side, 0.1)), 1e-12)
	}
}

func TestAngleLabelPoint_NarrowAngleMovesOut(t *testing.T) {
	tri := problemgen.BuildTriangle(1.0, 0.2, 0, false)
	// Angle A is the narrow one: opposite leg 0.2 against adjacent leg 1.
	narrow := geom.Distance(tri.A, AngleLabelPoint(tri, 0, 0.03))
	wide := geom.Distance(tri.B, AngleLabelPoint(tri, 1, 0.03))
	assert.Greater(t, narrow, wide)
}

func TestRightAngleMarker(t *testing.T) {
	tri := problemgen.BuildTriangle(0.5, 0.5, 0.7, true)
	mark := RightAngleMarker(tri, 0.06)

	assert.InDelta(t, 0.06, geom.Distance(tri.C, mark[0]), 1e-12)
	assert.InDelta(t, 0.06, geom.Distance(tri.C, mark[2]), 1e-12)
	// The corner completes a square.
	assert.InDelta(t, 0.0, mark[0].Sub(mark[1]).Dot(mark[2].Sub(mark[1])), 1e-12)
	assert.True(t, inside(tri, mark[1]))
}

func TestDraw_Start(t *testing.T) {
	m := layout.PixelMetrics()
	s := &recorder{}
	New(PaperPalette()).Draw(s, Scene{Metrics: m, Regions: layout.Compute(m, 1000, 600)})

	require.NotEmpty(t, s.ops)
	assert.Equal(t, op{name: "clear", w: 1000, h: 600}, s.ops[0])
	assert.Equal(t, []string{StartTitle, StartPrompt}, s.texts())
	assert.Empty(t, s.find("stroke"))
	assert.Empty(t, s.find("strokeRect"))
}

// scene builds a sine round on a 1000×600 viewport with boxes in
// display-slot order.
func scene(t *testing.T) Scene {
	t.Helper()
	m := layout.PixelMetrics()
	tri := problemgen.BuildTriangle(0.9, 0.5, 0.4, false)
	scheme := problemgen.DefaultSchemes()[0]
	p, err := problemgen.Build(tri, scheme, problemgen.Sine, 0, false, [6]int{3, 0, 5, 1, 4, 2})
	require.NoError(t, err)

	r := layout.Compute(m, 1000, 600)
	sizes := make([]layout.Size, problemgen.AnswerCount)
	tokens := make([][]problemgen.Token, problemgen.AnswerCount)
	for slot, idx := range p.Order {
		tokens[slot], err = problemgen.Tokenize(p.Answers[idx])
		require.NoError(t, err)
		sizes[slot] = layout.MeasureAnswer(tokens[slot], &recorder{}, m)
	}
	rects := layout.PlaceAnswers(r, m, sizes)

	boxes := make([]AnswerBox, problemgen.AnswerCount)
	for slot, idx := range p.Order {
		boxes[slot] = AnswerBox{Index: idx, Tokens: tokens[slot], Rect: rects[slot], Correct: p.IsCorrect(idx)}
	}
	return Scene{Metrics: m, Regions: r, Problem: p, Boxes: boxes}
}

func TestDraw_Round(t *testing.T) {
	sc := scene(t)
	s := &recorder{}
	New(PaperPalette()).Draw(s, sc)

	texts := strings.Join(s.texts(), "|")
	for _, name := range []string{"P", "Q", "r", "s", "t", "Given: ", "Wanted: ", "sin", "cos", "tan", "="} {
		assert.Contains(t, texts, name)
	}

	// Triangle, right-angle marker and one fraction bar per box.
	assert.Len(t, s.find("stroke"), 2+problemgen.AnswerCount)
	assert.Len(t, s.find("strokeRect"), problemgen.AnswerCount)
	assert.Empty(t, s.find("fillRect"), "no box is highlighted or chosen")
}

func TestDraw_Highlight(t *testing.T) {
	sc := scene(t)
	sc.Boxes[4].Highlighted = true
	s := &recorder{}
	p := PaperPalette()
	New(p).Draw(s, sc)

	fills := s.find("fillRect")
	require.Len(t, fills, 1)
	assert.Equal(t, p.HighlightFill, fills[0].color)
	assert.Equal(t, sc.Boxes[4].Rect.X, fills[0].x)
}

func TestDraw_ChosenCorrect(t *testing.T) {
	sc := scene(t)
	slot := 1 // Order[1] == 0
	sc.Boxes[slot].Chosen = true
	sc.Answered = true

	s := &recorder{}
	p := PaperPalette()
	New(p).Draw(s, sc)

	fills := s.find("fillRect")
	require.Len(t, fills, 1)
	assert.Equal(t, p.CorrectFill, fills[0].color)
	for _, o := range s.find("strokeRect") {
		assert.NotEqual(t, p.CorrectOutline, o.color, "no box gets the correct outline")
	}
}

func TestDraw_ChosenWrong(t *testing.T) {
	sc := scene(t)
	sc.Boxes[0].Chosen = true
	sc.Answered = true

	s := &recorder{}
	p := PaperPalette()
	New(p).Draw(s, sc)

	fills := s.find("fillRect")
	require.Len(t, fills, 1)
	assert.Equal(t, p.WrongFill, fills[0].color)
	assert.Equal(t, sc.Boxes[0].Rect.X, fills[0].x)

	var outlined []op
	for _, o := range s.find("strokeRect") {
		if o.color == p.CorrectOutline {
			outlined = append(outlined, o)
		}
	}
	require.Len(t, outlined, 1)
	assert.Equal(t, sc.Boxes[1].Rect.X, outlined[0].x)
	assert.Equal(t, sc.Boxes[1].Rect.Y, outlined[0].y)
}
