// Package render draws a quiz round onto a 2D Surface. The renderer holds
// no round state of its own: everything it draws comes from the Scene.
package render

import (
	"image/color"

	"github.com/abhisek/trigbot/internal/layout"
)

// Surface is the drawing contract the renderer needs. Coordinates have the
// origin at the top-left with y increasing downward.
//
// Path calls follow the canvas model: MoveTo/LineTo build a path that Stroke
// draws with the current stroke color and width, then discards.
type Surface interface {
	layout.TextMeasurer

	// Clear resets a region to the background.
	Clear(x, y, w, h float64)

	SetStrokeColor(c color.Color)
	SetFillColor(c color.Color)
	SetLineWidth(w float64)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()

	FillRect(x, y, w, h float64)
	StrokeRect(x, y, w, h float64)

	// SetFont selects the font for FillText.
	SetFont(f layout.Font)

	// FillText draws s in the fill color with its top-left corner at (x, y).
	FillText(s string, x, y float64)
}
