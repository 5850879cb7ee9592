// Package layout computes where the diagram and the answer boxes go for a
// given viewport. It is pure geometry: the only outside dependency is a
// TextMeasurer used to size answer boxes.
package layout

import (
	"math"

	"github.com/abhisek/trigbot/internal/problemgen"
)

// Metrics are the fixed constants the layout is computed from. Units are
// whatever the rendering surface uses (pixels, or terminal cells).
type Metrics struct {
	// MinWidth and MinHeight clamp the viewport upward.
	MinWidth  float64
	MinHeight float64

	// MinChoiceWidth is the narrowest the choice region may get in the
	// side-by-side layout.
	MinChoiceWidth float64

	// Border is subtracted from every side of the choice region.
	Border float64

	// DiagramFill is the fraction of the available square the diagram uses.
	DiagramFill float64

	// Aspect is the physical height of one vertical unit divided by the
	// physical width of one horizontal unit. 1 for pixels; 2 for terminal
	// cells, which are about twice as tall as they are wide.
	Aspect float64

	// Margin and RowHeight place text lines inside the choice region.
	Margin    float64
	RowHeight float64

	// QuestionRows is the number of text rows above the answer grid.
	QuestionRows int

	// ThreeColumnWidth is the choice-region width from which the answer
	// grid uses three columns instead of two.
	ThreeColumnWidth float64

	// FontSize is the text size passed to the surface.
	FontSize float64

	// BoxPadding surrounds an answer's tokens inside its box; TokenSpacing
	// separates tokens; BarPad extends a fraction bar past its text;
	// BarGap is the vertical room for the bar between numerator and
	// denominator; BoxGap separates neighbouring boxes.
	BoxPadding   float64
	TokenSpacing float64
	BarPad       float64
	BarGap       float64
	BoxGap       float64

	// Snap, when positive, floors every computed coordinate to a multiple
	// of itself. Terminal surfaces use 1 so boxes land on whole cells.
	Snap float64
}

// PixelMetrics returns metrics for a raster surface measured in pixels.
func PixelMetrics() Metrics {
	return Metrics{
		MinWidth:         480,
		MinHeight:        400,
		MinChoiceWidth:   360,
		Border:           10,
		DiagramFill:      0.9,
		Aspect:           1,
		Margin:           10,
		RowHeight:        28,
		QuestionRows:     2,
		ThreeColumnWidth: 600,
		FontSize:         22,
		BoxPadding:       8,
		TokenSpacing:     7,
		BarPad:           4,
		BarGap:           6,
		BoxGap:           10,
	}
}

// TerminalMetrics returns metrics for a terminal cell grid.
func TerminalMetrics() Metrics {
	return Metrics{
		MinWidth:         60,
		MinHeight:        18,
		MinChoiceWidth:   30,
		Border:           0,
		DiagramFill:      0.9,
		Aspect:           2,
		Margin:           1,
		RowHeight:        1,
		QuestionRows:     2,
		ThreeColumnWidth: 60,
		FontSize:         1,
		BoxPadding:       1,
		TokenSpacing:     1,
		BarPad:           1,
		BarGap:           1,
		BoxGap:           0,
		Snap:             1,
	}
}

func (m Metrics) snap(v float64) float64 {
	if m.Snap <= 0 {
		return v
	}
	return math.Floor(v/m.Snap) * m.Snap
}

// Font is a text style understood by both the layout and the surfaces.
type Font struct {
	Size   float64
	Italic bool
	Bold   bool
}

// TextFont returns the upright font used for operators and prose.
func (m Metrics) TextFont() Font {
	return Font{Size: m.FontSize}
}

// VariableFont returns the italic font used for angle and side names.
func (m Metrics) VariableFont() Font {
	return Font{Size: m.FontSize, Italic: true}
}

// FractionHeight is the height of a stacked fraction.
func (m Metrics) FractionHeight() float64 {
	return 2*m.RowHeight + m.BarGap
}

// AnswerBoxHeight is the height of the tallest answer box, one holding a
// fraction.
func (m Metrics) AnswerBoxHeight() float64 {
	return m.FractionHeight() + 2*m.BoxPadding
}

// Columns returns the answer grid's column count for a choice region of
// the given width.
func (m Metrics) Columns(choiceWidth float64) int {
	if choiceWidth >= m.ThreeColumnWidth {
		return 3
	}
	return 2
}

// MinChoiceHeight is the choice-region height that holds the question and
// a grid of the given column count down to the bottom of its last row.
func (m Metrics) MinChoiceHeight(columns int) float64 {
	columns = max(columns, 1)
	rows := (problemgen.AnswerCount + columns - 1) / columns
	rowH := m.AnswerBoxHeight() + m.BoxGap
	return m.Margin + float64(m.QuestionRows)*m.RowHeight + m.BoxGap + float64(rows)*rowH - m.BoxGap
}
