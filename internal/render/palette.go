package render

import "image/color"

// Palette is the set of colors the renderer paints with.
type Palette struct {
	Ink            color.Color // triangle, labels, text
	Muted          color.Color // prompts and secondary text
	BoxOutline     color.Color
	BoxFill        color.Color // nil leaves the background showing
	HighlightFill  color.Color
	CorrectFill    color.Color
	WrongFill      color.Color
	CorrectOutline color.Color
}

// PaperPalette is for raster output on a white background.
func PaperPalette() Palette {
	return Palette{
		Ink:            color.RGBA{0x11, 0x18, 0x27, 0xff},
		Muted:          color.RGBA{0x64, 0x74, 0x8b, 0xff},
		BoxOutline:     color.RGBA{0x94, 0xa3, 0xb8, 0xff},
		HighlightFill:  color.RGBA{0xfe, 0xf9, 0xc3, 0xff},
		CorrectFill:    color.RGBA{0xbb, 0xf7, 0xd0, 0xff},
		WrongFill:      color.RGBA{0xfe, 0xca, 0xca, 0xff},
		CorrectOutline: color.RGBA{0x16, 0xa3, 0x4a, 0xff},
	}
}
