package faceoverlay

import (
	"image"
	"image/color"
)

// FontFamily selects the typeface used to render text
type FontFamily int

const (
	// SansFont is a regular sans serif face
	SansFont FontFamily = iota
	// CondensedFont is the bold condensed face used for names
	CondensedFont
	// MonoFont is a monospaced face used for status lines
	MonoFont
)

// Stroke defines how a line or rectangle outline is painted
type Stroke struct {
	Color color.NRGBA
	Width float64
	// Dash alternates on and off lengths, nil draws a solid line
	Dash []float64
	// Glow is the radius of a soft halo painted under the stroke, zero
	// disables it
	Glow float64
}

// Font defines the parameters for rendering text
type Font struct {
	Family FontFamily
	// Size is the text size in display units
	Size  float64
	Color color.NRGBA
	Bold  bool
}

// Blur defines an opaque fill with feathered edges used to obscure a region
type Blur struct {
	Color  color.NRGBA
	Radius float64
}

// Canvas is a 2D drawing surface the overlay produces draw commands against.
// Text positions are the left end of the text baseline.
type Canvas interface {
	StrokeRect(r Rect, s Stroke)
	Line(from, to Point, s Stroke)
	FillRect(r Rect, clr color.NRGBA)
	BlurRect(r Rect, b Blur)
	DrawImage(img image.Image, at Point)
	Text(text string, at Point, f Font)
	MeasureText(text string, f Font) float64
}
