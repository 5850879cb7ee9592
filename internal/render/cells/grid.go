// Package cells implements render.Surface on a grid of terminal cells.
// One unit is one cell; the grid renders to a lipgloss-styled string.
package cells

import (
	"image/color"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/trigbot/internal/layout"
)

type cell struct {
	r      rune
	fg, bg color.Color
	italic bool
	bold   bool
}

func (c cell) sameStyle(o cell) bool {
	return c.fg == o.fg && c.bg == o.bg && c.italic == o.italic && c.bold == o.bold
}

type segment struct {
	x0, y0, x1, y1 float64
}

// Grid is a width×height block of cells. Lines are drawn with box-drawing
// characters; fills only set the background color.
type Grid struct {
	width, height int
	cells         []cell

	stroke color.Color
	fill   color.Color
	line   float64
	font   layout.Font

	curX, curY float64
	path       []segment
}

// New returns a blank grid.
func New(width, height int) *Grid {
	g := &Grid{}
	g.Resize(width, height)
	return g
}

// Resize changes the grid size, discarding its contents.
func (g *Grid) Resize(width, height int) {
	g.width, g.height = max(width, 0), max(height, 0)
	g.cells = make([]cell, g.width*g.height)
	g.Clear(0, 0, float64(g.width), float64(g.height))
}

// Size returns the grid size in cells.
func (g *Grid) Size() (width, height int) {
	return g.width, g.height
}

func (g *Grid) at(x, y int) *cell {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return nil
	}
	return &g.cells[y*g.width+x]
}

// Rune returns the character at (x, y), or 0 outside the grid.
func (g *Grid) Rune(x, y int) rune {
	if c := g.at(x, y); c != nil {
		return c.r
	}
	return 0
}

// Background returns the background color at (x, y).
func (g *Grid) Background(x, y int) color.Color {
	if c := g.at(x, y); c != nil {
		return c.bg
	}
	return nil
}

// Foreground returns the foreground color at (x, y).
func (g *Grid) Foreground(x, y int) color.Color {
	if c := g.at(x, y); c != nil {
		return c.fg
	}
	return nil
}

// MeasureText returns the display width of s in cells.
func (g *Grid) MeasureText(s string, _ layout.Font) float64 {
	return float64(lipgloss.Width(s))
}

// rect converts a float rectangle to the cell range it covers.
func rect(x, y, w, h float64) (x0, y0, x1, y1 int) {
	return int(math.Floor(x)), int(math.Floor(y)), int(math.Ceil(x + w)), int(math.Ceil(y + h))
}

func (g *Grid) Clear(x, y, w, h float64) {
	x0, y0, x1, y1 := rect(x, y, w, h)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			if c := g.at(cx, cy); c != nil {
				*c = cell{r: ' '}
			}
		}
	}
}

func (g *Grid) SetStrokeColor(c color.Color) { g.stroke = c }
func (g *Grid) SetFillColor(c color.Color)   { g.fill = c }
func (g *Grid) SetLineWidth(w float64)       { g.line = w }
func (g *Grid) SetFont(f layout.Font)        { g.font = f }

func (g *Grid) MoveTo(x, y float64) {
	g.curX, g.curY = x, y
}

func (g *Grid) LineTo(x, y float64) {
	g.path = append(g.path, segment{g.curX, g.curY, x, y})
	g.curX, g.curY = x, y
}

func (g *Grid) Stroke() {
	for _, s := range g.path {
		g.drawSegment(s)
	}
	g.path = g.path[:0]
}

// lineRune picks a character for a segment. Cells are about twice as tall
// as wide, so the vertical extent counts double when judging the slope.
func lineRune(dx, dy float64) rune {
	ax, ay := math.Abs(dx), 2*math.Abs(dy)
	switch {
	case ay < ax/2:
		return '─'
	case ax < ay/2:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

func (g *Grid) drawSegment(s segment) {
	dx, dy := s.x1-s.x0, s.y1-s.y0
	ch := lineRune(dx, dy)

	// The far end is exclusive, like a rectangle's right and bottom edges.
	const eps = 1e-6
	x0, y0 := int(math.Floor(s.x0)), int(math.Floor(s.y0))
	x1 := int(math.Floor(s.x1 - eps*sign(dx)))
	y1 := int(math.Floor(s.y1 - eps*sign(dy)))

	steps := max(abs(x1-x0), abs(y1-y0))
	for i := 0; i <= steps; i++ {
		var cx, cy int
		if steps == 0 {
			cx, cy = x0, y0
		} else {
			t := float64(i) / float64(steps)
			cx = x0 + int(math.Round(t*float64(x1-x0)))
			cy = y0 + int(math.Round(t*float64(y1-y0)))
		}
		if c := g.at(cx, cy); c != nil {
			c.r = ch
			c.fg = g.stroke
			c.italic, c.bold = false, false
		}
	}
}

func (g *Grid) FillRect(x, y, w, h float64) {
	x0, y0, x1, y1 := rect(x, y, w, h)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			if c := g.at(cx, cy); c != nil {
				c.bg = g.fill
			}
		}
	}
}

type border struct {
	h, v, tl, tr, bl, br rune
}

var (
	thinBorder  = border{'─', '│', '┌', '┐', '└', '┘'}
	heavyBorder = border{'━', '┃', '┏', '┓', '┗', '┛'}
)

// StrokeRect draws a box on the outermost cells of the rectangle. Line
// widths of 2 and above use heavy box characters.
func (g *Grid) StrokeRect(x, y, w, h float64) {
	x0, y0, x1, y1 := rect(x, y, w, h)
	x1, y1 = x1-1, y1-1
	if x1 <= x0 || y1 <= y0 {
		return
	}

	b := thinBorder
	if g.line >= 2 {
		b = heavyBorder
	}

	set := func(cx, cy int, r rune) {
		if c := g.at(cx, cy); c != nil {
			c.r = r
			c.fg = g.stroke
			c.italic, c.bold = false, false
		}
	}
	for cx := x0 + 1; cx < x1; cx++ {
		set(cx, y0, b.h)
		set(cx, y1, b.h)
	}
	for cy := y0 + 1; cy < y1; cy++ {
		set(x0, cy, b.v)
		set(x1, cy, b.v)
	}
	set(x0, y0, b.tl)
	set(x1, y0, b.tr)
	set(x0, y1, b.bl)
	set(x1, y1, b.br)
}

// FillText writes s starting at the cell containing (x, y), keeping the
// background already there. Text past the grid edge is clipped.
func (g *Grid) FillText(s string, x, y float64) {
	cx, cy := int(math.Floor(x)), int(math.Floor(y))
	for _, r := range s {
		if c := g.at(cx, cy); c != nil {
			c.r = r
			c.fg = g.fill
			c.italic = g.font.Italic
			c.bold = g.font.Bold
		}
		cx += max(lipgloss.Width(string(r)), 1)
	}
}

// Plain returns the grid's characters without styling, one line per row.
func (g *Grid) Plain() string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.width; x++ {
			sb.WriteRune(g.cells[y*g.width+x].r)
		}
	}
	return sb.String()
}

// String renders the grid with lipgloss, merging runs of equally styled
// cells into one styled span.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		row := g.cells[y*g.width : (y+1)*g.width]
		for start := 0; start < len(row); {
			end := start + 1
			for end < len(row) && row[end].sameStyle(row[start]) {
				end++
			}
			var run strings.Builder
			for _, c := range row[start:end] {
				run.WriteRune(c.r)
			}
			sb.WriteString(style(row[start]).Render(run.String()))
			start = end
		}
	}
	return sb.String()
}

func style(c cell) lipgloss.Style {
	st := lipgloss.NewStyle().Italic(c.italic).Bold(c.bold)
	if c.fg != nil {
		st = st.Foreground(c.fg)
	}
	if c.bg != nil {
		st = st.Background(c.bg)
	}
	return st
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
