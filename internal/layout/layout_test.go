package layout

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/trigbot/internal/geom"
	"github.com/abhisek/trigbot/internal/problemgen"
)

// fixedMeasurer measures every rune as perRune units wide, and italics a
// little wider so the font is observably passed through.
type fixedMeasurer struct {
	perRune float64
}

func (f fixedMeasurer) MeasureText(s string, font Font) float64 {
	w := float64(utf8.RuneCountInString(s)) * f.perRune
	if font.Italic {
		w += 1
	}
	return w
}

func TestCompute_WideViewport(t *testing.T) {
	m := PixelMetrics()
	r := Compute(m, 1000, 600)

	assert.True(t, r.Wide)
	assert.Equal(t, Box{X: 500 + m.Border, Y: m.Border, W: 500 - 2*m.Border, H: 600 - 2*m.Border}, r.Choice)

	side := 0.9 * 500
	assert.InDelta(t, side, r.Diagram.W, 1e-9)
	assert.InDelta(t, side, r.Diagram.H, 1e-9)
	assert.InDelta(t, (500-side)/2, r.Diagram.X, 1e-9)
	assert.InDelta(t, (600-side)/2, r.Diagram.Y, 1e-9)
	assert.Equal(t, 2, r.Columns)
}

func TestCompute_TallViewport(t *testing.T) {
	m := PixelMetrics()
	r := Compute(m, 600, 1000)

	assert.False(t, r.Wide)
	assert.InDelta(t, 0.9*500, r.Diagram.W, 1e-9)
	assert.InDelta(t, (600-0.9*500)/2, r.Diagram.X, 1e-9)
	assert.Equal(t, Box{X: m.Border, Y: 500 + m.Border, W: 600 - 2*m.Border, H: 500 - 2*m.Border}, r.Choice)
	assert.Equal(t, 2, r.Columns)

	r = Compute(m, 800, 1000)
	assert.Equal(t, 3, r.Columns)
}

func TestCompute_ChoiceRegionKeepsMinimumWidth(t *testing.T) {
	m := PixelMetrics()
	r := Compute(m, 620, 500)

	require.True(t, r.Wide)
	assert.InDelta(t, m.MinChoiceWidth-2*m.Border, r.Choice.W, 1e-9)
	assert.LessOrEqual(t, r.Diagram.Right(), 620-m.MinChoiceWidth)
}

func TestCompute_ClampsToMinimum(t *testing.T) {
	m := PixelMetrics()
	r := Compute(m, 10, -5)
	assert.Equal(t, m.MinWidth, r.Width)
	assert.Equal(t, m.MinHeight, r.Height)
	assert.Greater(t, r.Diagram.W, 0.0)
	assert.Greater(t, r.Choice.H, 0.0)
}

func TestCompute_RegionsNeverOverlap(t *testing.T) {
	for _, m := range []Metrics{PixelMetrics(), TerminalMetrics()} {
		for w := m.MinWidth; w <= m.MinWidth*5; w += m.MinWidth / 7 {
			for h := m.MinHeight; h <= m.MinHeight*5; h += m.MinHeight / 5 {
				r := Compute(m, w, h)
				require.Greater(t, r.Diagram.W, 0.0, "w=%v h=%v", w, h)
				require.Greater(t, r.Diagram.H, 0.0, "w=%v h=%v", w, h)
				require.Greater(t, r.Choice.W, 0.0, "w=%v h=%v", w, h)
				require.Greater(t, r.Choice.H, 0.0, "w=%v h=%v", w, h)
				require.False(t, r.Diagram.Overlaps(r.Choice), "w=%v h=%v: %+v / %+v", w, h, r.Diagram, r.Choice)

				// Both regions lie inside the viewport.
				for _, b := range []Box{r.Diagram, r.Choice} {
					require.GreaterOrEqual(t, b.X, 0.0)
					require.GreaterOrEqual(t, b.Y, 0.0)
					require.LessOrEqual(t, b.Right(), r.Width)
					require.LessOrEqual(t, b.Bottom(), r.Height)
				}
			}
		}
	}
}

func TestCompute_TerminalDiagramLooksSquare(t *testing.T) {
	m := TerminalMetrics()
	r := Compute(m, 80, 18)
	require.True(t, r.Wide)
	// Cells are twice as tall as wide: a visual square is twice as many
	// columns as rows, give or take snapping.
	assert.InDelta(t, r.Diagram.W, 2*r.Diagram.H, 2)
	assert.Equal(t, float64(int(r.Choice.X)), r.Choice.X)
}

func TestBoxContains(t *testing.T) {
	b := Box{X: 10, Y: 20, W: 30, H: 40}
	tests := []struct {
		x, y float64
		want bool
	}{
		{25, 40, true},
		{10.5, 20.5, true},
		{10, 40, false},
		{40, 40, false},
		{25, 20, false},
		{25, 60, false},
		{0, 0, false},
		{100, 100, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, b.Contains(tt.x, tt.y), "(%v,%v)", tt.x, tt.y)
	}
}

func TestBoxMapFlipsY(t *testing.T) {
	b := Box{X: 100, Y: 50, W: 200, H: 200}
	x, y := b.Map(geom.Point{X: 0, Y: 0})
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 250.0, y)

	x, y = b.Map(geom.Point{X: 1, Y: 1})
	assert.Equal(t, 300.0, x)
	assert.Equal(t, 50.0, y)
}

func TestMeasureAnswer(t *testing.T) {
	m := PixelMetrics()
	tm := fixedMeasurer{perRune: 10}
	tokens, err := problemgen.Tokenize("sin P = r/t")
	require.NoError(t, err)

	got := MeasureAnswer(tokens, tm, m)

	// sin(30) + P(10+1) + =(10) + fraction(max(11,11)+2*BarPad) + 3 spacings.
	want := 30 + 11 + 10 + (11 + 2*m.BarPad) + 3*m.TokenSpacing + 2*m.BoxPadding
	assert.Equal(t, want, got.W)
	assert.Equal(t, m.FractionHeight()+2*m.BoxPadding, got.H)
}

func TestMeasureAnswer_FractionUsesWiderPart(t *testing.T) {
	m := PixelMetrics()
	tm := fixedMeasurer{perRune: 10}
	tok := problemgen.Token{Kind: problemgen.TokenFraction, Num: "ab", Den: "abcd"}
	assert.Equal(t, 41+2*m.BarPad, FractionWidth(tok, tm, m))

	size := MeasureAnswer([]problemgen.Token{{Kind: problemgen.TokenOperator, Text: "x"}}, tm, m)
	assert.Equal(t, m.RowHeight+2*m.BoxPadding, size.H)
}

// viewports lists hand-picked sizes plus a sweep from the minimum upward.
func viewports(m Metrics) [][2]float64 {
	vps := [][2]float64{{1000, 600}, {1400, 800}, {600, 1000}, {480, 480}, {600, 600}, {80, 18}, {160, 40}, {60, 30}}
	for w := m.MinWidth; w <= m.MinWidth*5; w += m.MinWidth / 7 {
		for h := m.MinHeight; h <= m.MinHeight*5; h += m.MinHeight / 5 {
			vps = append(vps, [2]float64{w, h})
		}
	}
	return vps
}

func TestPlaceAnswers_GridDoesNotOverlap(t *testing.T) {
	for _, m := range []Metrics{PixelMetrics(), TerminalMetrics()} {
		for _, vp := range viewports(m) {
			r := Compute(m, vp[0], vp[1])
			sizes := make([]Size, problemgen.AnswerCount)
			for i := range sizes {
				sizes[i] = Size{W: 1000, H: m.AnswerBoxHeight()}
			}
			boxes := PlaceAnswers(r, m, sizes)
			require.Len(t, boxes, problemgen.AnswerCount)

			for i := range boxes {
				assert.False(t, boxes[i].Overlaps(r.Diagram), "box %d overlaps diagram at %v", i, vp)
				assert.GreaterOrEqual(t, boxes[i].X, r.Choice.X)
				assert.LessOrEqual(t, boxes[i].Right(), r.Choice.Right())
				assert.GreaterOrEqual(t, boxes[i].Y, r.GridTop(m))
				assert.LessOrEqual(t, boxes[i].Bottom(), r.Choice.Bottom(), "box %d below the choice region at %v", i, vp)
				assert.LessOrEqual(t, boxes[i].Bottom(), r.Height, "box %d off the viewport at %v", i, vp)
				for j := i + 1; j < len(boxes); j++ {
					assert.False(t, boxes[i].Overlaps(boxes[j]), "boxes %d and %d overlap at %v", i, j, vp)
				}
			}
		}
	}
}

func TestCompute_TallSplitLeavesRoomForAnswers(t *testing.T) {
	m := PixelMetrics()
	r := Compute(m, 480, 480)
	require.False(t, r.Wide)
	require.Equal(t, 2, r.Columns)

	assert.InDelta(t, m.MinChoiceHeight(2), r.Choice.H, 1e-9)
	assert.InDelta(t, 480-m.Border, r.Choice.Bottom(), 1e-9)
	assert.Less(t, r.Diagram.Bottom(), r.Choice.Y)
	assert.Greater(t, r.Diagram.W, 0.0)

	// Tall enough viewports keep the midpoint split.
	r = Compute(m, 600, 1000)
	assert.InDelta(t, 500+m.Border, r.Choice.Y, 1e-9)
}

func TestMinChoiceHeight(t *testing.T) {
	m := PixelMetrics()
	// Margin, two question rows, a gap, then three rows of 78px boxes
	// separated by gaps.
	assert.Equal(t, 10+56+10+3*78+2*10.0, m.MinChoiceHeight(2))
	assert.Equal(t, 10+56+10+2*78+10.0, m.MinChoiceHeight(3))

	// The minimum viewport holds the grid in the side-by-side layout.
	for _, m := range []Metrics{PixelMetrics(), TerminalMetrics()} {
		assert.LessOrEqual(t, m.MinChoiceHeight(2), m.MinHeight-2*m.Border)
	}
}

func TestPlaceAnswers_ColumnsFollowRegion(t *testing.T) {
	m := PixelMetrics()
	sizes := make([]Size, 6)
	for i := range sizes {
		sizes[i] = Size{W: 50, H: 40}
	}

	r := Compute(m, 1000, 600)
	boxes := PlaceAnswers(r, m, sizes)
	assert.Equal(t, boxes[0].Y, boxes[1].Y)
	assert.NotEqual(t, boxes[0].Y, boxes[2].Y)

	r = Compute(m, 1400, 800)
	require.Equal(t, 3, r.Columns)
	boxes = PlaceAnswers(r, m, sizes)
	assert.Equal(t, boxes[0].Y, boxes[2].Y)
	assert.NotEqual(t, boxes[0].Y, boxes[3].Y)
}
