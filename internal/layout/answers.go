package layout

import (
	"math"

	"github.com/abhisek/trigbot/internal/problemgen"
)

// TextMeasurer reports the rendered width of a string in a given font.
// Rendering surfaces implement it; the layout never draws.
type TextMeasurer interface {
	MeasureText(s string, f Font) float64
}

// Size is the extent of an answer box.
type Size struct {
	W, H float64
}

// FractionWidth returns the width of a stacked fraction token including the
// bar overhang on both sides.
func FractionWidth(tok problemgen.Token, tm TextMeasurer, m Metrics) float64 {
	f := m.VariableFont()
	return math.Max(tm.MeasureText(tok.Num, f), tm.MeasureText(tok.Den, f)) + 2*m.BarPad
}

// TokenWidth returns the width of a single token.
func TokenWidth(tok problemgen.Token, tm TextMeasurer, m Metrics) float64 {
	switch tok.Kind {
	case problemgen.TokenFraction:
		return FractionWidth(tok, tm, m)
	case problemgen.TokenVariable:
		return tm.MeasureText(tok.Text, m.VariableFont())
	default:
		return tm.MeasureText(tok.Text, m.TextFont())
	}
}

// MeasureAnswer returns the box size needed to show tokens.
func MeasureAnswer(tokens []problemgen.Token, tm TextMeasurer, m Metrics) Size {
	var w float64
	hasFraction := false
	for i, tok := range tokens {
		if i > 0 {
			w += m.TokenSpacing
		}
		w += TokenWidth(tok, tm, m)
		if tok.Kind == problemgen.TokenFraction {
			hasFraction = true
		}
	}

	h := m.RowHeight
	if hasFraction {
		h = m.FractionHeight()
	}
	return Size{W: math.Ceil(w + 2*m.BoxPadding), H: h + 2*m.BoxPadding}
}

// GridTop returns the y coordinate where the answer grid starts.
func (r Regions) GridTop(m Metrics) float64 {
	return r.Choice.Y + m.Margin + float64(m.QuestionRows)*m.RowHeight + m.BoxGap
}

// PlaceAnswers lays out one box per size, in display-slot order, on a grid
// of r.Columns columns under the question text. Box widths are capped to
// their cell so neighbouring boxes never overlap.
func PlaceAnswers(r Regions, m Metrics, sizes []Size) []Box {
	cols := r.Columns
	if cols < 1 {
		cols = 1
	}
	cellW := m.snap((r.Choice.W - 2*m.Margin) / float64(cols))

	var rowH float64
	for _, s := range sizes {
		rowH = math.Max(rowH, s.H)
	}
	rowH += m.BoxGap

	top := r.GridTop(m)
	boxes := make([]Box, len(sizes))
	for i, s := range sizes {
		col, row := i%cols, i/cols
		boxes[i] = Box{
			X: m.snap(r.Choice.X + m.Margin + float64(col)*cellW),
			Y: m.snap(top + float64(row)*rowH),
			W: math.Min(s.W, cellW-m.BoxGap),
			H: s.H,
		}
	}
	return boxes
}
