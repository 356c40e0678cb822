package render

import (
	"image/color"
)

var (
	// classColors is a list of colors cycled through when drawing plain
	// detection boxes
	classColors = []color.RGBA{
		{R: 255, G: 56, B: 56, A: 255},   // #FF3838
		{R: 255, G: 112, B: 31, A: 255},  // #FF701F
		{R: 255, G: 178, B: 29, A: 255},  // #FFB21D
		{R: 207, G: 210, B: 49, A: 255},  // #CFD231
		{R: 72, G: 249, B: 10, A: 255},   // #48F90A
		{R: 26, G: 147, B: 52, A: 255},   // #1A9334
		{R: 0, G: 212, B: 187, A: 255},   // #00D4BB
		{R: 0, G: 194, B: 255, A: 255},   // #00C2FF
		{R: 52, G: 69, B: 147, A: 255},   // #344593
		{R: 100, G: 115, B: 255, A: 255}, // #6473FF
	}

	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// opaque converts a non-premultiplied colour to the opaque RGBA value gocv
// draws with and returns its alpha as a 0-1 weight
func opaque(c color.NRGBA) (color.RGBA, float64) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}, float64(c.A) / 255
}
