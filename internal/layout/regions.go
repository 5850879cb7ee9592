package layout

import (
	"math"

	"github.com/abhisek/trigbot/internal/geom"
)

// Box is an axis-aligned rectangle in surface coordinates (origin top-left,
// y increasing downward).
type Box struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Bottom returns the y coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H }

// Contains reports whether (x, y) lies strictly inside the box.
func (b Box) Contains(x, y float64) bool {
	return x > b.X && x < b.Right() && y > b.Y && y < b.Bottom()
}

// Overlaps reports whether the interiors of b and o intersect.
func (b Box) Overlaps(o Box) bool {
	return b.X < o.Right() && o.X < b.Right() && b.Y < o.Bottom() && o.Y < b.Bottom()
}

// Map converts a point of the unit square (y up) to surface coordinates
// inside the box (y down).
func (b Box) Map(p geom.Point) (x, y float64) {
	return b.X + p.X*b.W, b.Y + b.H - p.Y*b.H
}

// Regions is the result of laying out one viewport.
type Regions struct {
	// Width and Height are the viewport after clamping to the minimum.
	Width  float64
	Height float64

	// Wide is true for the side-by-side arrangement.
	Wide bool

	Diagram Box
	Choice  Box

	// Columns is the number of columns in the answer grid (2 or 3).
	Columns int
}

// Compute lays out a viewport of the given size.
func Compute(m Metrics, width, height float64) Regions {
	width = math.Max(width, m.MinWidth)
	height = math.Max(height, m.MinHeight)
	aspect := m.Aspect
	if aspect <= 0 {
		aspect = 1
	}

	r := Regions{Width: width, Height: height}

	// Compare physical extents so a terminal's tall cells are accounted for.
	if width > height*aspect {
		r.Wide = true
		split := width / 2
		if width-split < m.MinChoiceWidth {
			split = width - m.MinChoiceWidth
		}
		side := m.DiagramFill * math.Min(split, height*aspect)
		r.Diagram = m.snapBox(Box{
			X: (split - side) / 2,
			Y: (height - side/aspect) / 2,
			W: side,
			H: side / aspect,
		})
		r.Choice = m.snapBox(Box{
			X: split + m.Border,
			Y: m.Border,
			W: width - split - 2*m.Border,
			H: height - 2*m.Border,
		})
	} else {
		// Move the split up when the bottom half cannot hold every row
		// of answers.
		split := height / 2
		need := m.MinChoiceHeight(m.Columns(width-2*m.Border)) + 2*m.Border
		if height-split < need {
			split = math.Max(height-need, 0)
		}
		side := m.DiagramFill * math.Min(width, split*aspect)
		r.Diagram = m.snapBox(Box{
			X: (width - side) / 2,
			Y: (split - side/aspect) / 2,
			W: side,
			H: side / aspect,
		})
		r.Choice = m.snapBox(Box{
			X: m.Border,
			Y: split + m.Border,
			W: width - 2*m.Border,
			H: height - split - 2*m.Border,
		})
	}

	r.Columns = m.Columns(r.Choice.W)
	return r
}

// snapBox rounds the origin up and the far edges down so the box stays
// within its unsnapped extent.
func (m Metrics) snapBox(b Box) Box {
	if m.Snap <= 0 {
		return b
	}
	x, y := math.Ceil(b.X/m.Snap)*m.Snap, math.Ceil(b.Y/m.Snap)*m.Snap
	return Box{X: x, Y: y, W: m.snap(b.Right()) - x, H: m.snap(b.Bottom()) - y}
}

// QuestionLine returns the top-left corner of text row i of the question.
func (r Regions) QuestionLine(m Metrics, i int) (x, y float64) {
	return r.Choice.X + m.Margin, r.Choice.Y + m.Margin + float64(i)*m.RowHeight
}
