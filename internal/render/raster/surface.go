// Package raster implements render.Surface on a gogpu/gg image context,
// using the embedded Go fonts so output does not depend on the host.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/abhisek/trigbot/internal/layout"
)

// ErrClosed is returned by operations on a closed Surface.
var ErrClosed = errors.New("raster: surface closed")

type style int

const (
	styleRegular style = iota
	styleItalic
	styleBold
)

// Surface draws onto an in-memory RGBA image. Drawing calls never fail
// individually; the first error is kept and reported by Err.
type Surface struct {
	dc      *gg.Context
	sources map[style]*text.FontSource
	faces   map[layout.Font]text.Face

	stroke color.Color
	fill   color.Color
	font   layout.Font

	err    error
	closed bool
}

// New creates a width×height surface with a white background.
func New(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster: invalid size %dx%d", width, height)
	}

	s := &Surface{
		dc:      gg.NewContext(width, height),
		sources: make(map[style]*text.FontSource, 3),
		faces:   make(map[layout.Font]text.Face),
		stroke:  color.Black,
		fill:    color.Black,
	}
	for st, ttf := range map[style][]byte{
		styleRegular: goregular.TTF,
		styleItalic:  goitalic.TTF,
		styleBold:    gobold.TTF,
	} {
		src, err := text.NewFontSource(ttf)
		if err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("raster: load font: %w", err)
		}
		s.sources[st] = src
	}

	s.dc.ClearWithColor(gg.White)
	return s, nil
}

// Resize changes the image size, discarding its contents.
func (s *Surface) Resize(width, height int) error {
	if s.closed {
		return ErrClosed
	}
	if err := s.dc.Resize(width, height); err != nil {
		return fmt.Errorf("raster: resize: %w", err)
	}
	s.dc.ClearWithColor(gg.White)
	return nil
}

// Size returns the image size in pixels.
func (s *Surface) Size() (width, height int) {
	return s.dc.Width(), s.dc.Height()
}

// Err returns the first error a drawing call ran into.
func (s *Surface) Err() error {
	return s.err
}

// Image returns the current image.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// EncodePNG writes the current image as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if s.closed {
		return ErrClosed
	}
	if s.err != nil {
		return s.err
	}
	return s.dc.EncodePNG(w)
}

// Close releases the context and the loaded fonts.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	for _, src := range s.sources {
		errs = append(errs, src.Close())
	}
	errs = append(errs, s.dc.Close())
	return errors.Join(errs...)
}

func (s *Surface) record(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}

func (s *Surface) face(f layout.Font) text.Face {
	if face, ok := s.faces[f]; ok {
		return face
	}
	st := styleRegular
	switch {
	case f.Bold:
		st = styleBold
	case f.Italic:
		st = styleItalic
	}
	face := s.sources[st].Face(f.Size)
	s.faces[f] = face
	return face
}

func (s *Surface) MeasureText(str string, f layout.Font) float64 {
	w, _ := text.Measure(str, s.face(f))
	return w
}

func (s *Surface) Clear(x, y, w, h float64) {
	s.dc.ClearPath()
	s.dc.SetColor(color.White)
	s.dc.DrawRectangle(x, y, w, h)
	s.record(s.dc.Fill())
}

func (s *Surface) SetStrokeColor(c color.Color) { s.stroke = c }
func (s *Surface) SetFillColor(c color.Color)   { s.fill = c }
func (s *Surface) SetLineWidth(w float64)       { s.dc.SetLineWidth(w) }
func (s *Surface) SetFont(f layout.Font)        { s.font = f }

func (s *Surface) MoveTo(x, y float64) { s.dc.MoveTo(x, y) }
func (s *Surface) LineTo(x, y float64) { s.dc.LineTo(x, y) }

func (s *Surface) Stroke() {
	s.dc.SetColor(s.stroke)
	s.record(s.dc.Stroke())
}

func (s *Surface) FillRect(x, y, w, h float64) {
	s.dc.ClearPath()
	s.dc.SetColor(s.fill)
	s.dc.DrawRectangle(x, y, w, h)
	s.record(s.dc.Fill())
}

func (s *Surface) StrokeRect(x, y, w, h float64) {
	s.dc.ClearPath()
	s.dc.SetColor(s.stroke)
	s.dc.DrawRectangle(x, y, w, h)
	s.record(s.dc.Stroke())
}

// FillText draws str with its top-left corner at (x, y). gg places text on
// its baseline, so y is shifted down by the face's ascent.
func (s *Surface) FillText(str string, x, y float64) {
	face := s.face(s.font)
	s.dc.SetFont(face)
	s.dc.SetColor(s.fill)
	s.dc.DrawString(str, x, y+face.Metrics().Ascent)
}
