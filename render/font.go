package render

import (
	"github.com/swdee/go-faceoverlay"
	"gocv.io/x/gocv"
	"image/color"
	"math"
)

type Alignment int

const (
	Left   Alignment = 1
	Center Alignment = 2
	Right  Alignment = 3
)

// hersheyCapHeight is the approximate pixel height of the Hershey simplex
// capitals at scale 1.0, used to map font sizes to gocv scales
const hersheyCapHeight = 30.0

// Font defines the parameters for rendering text on an image using GoCV
type Font struct {
	Face      gocv.HersheyFont
	Scale     float64
	Color     color.RGBA
	Thickness int
	LineType  gocv.LineType
	// Padding to place around text
	LeftPad   int
	RightPad  int
	TopPad    int
	BottomPad int
	// Alignment of the text label to the bounding box
	Alignment Alignment
}

// DefaultFont returns default font settings
func DefaultFont() Font {
	return Font{
		Face:      gocv.FontHersheySimplex,
		Scale:     0.5,
		Color:     White,
		Thickness: 1,
		LineType:  gocv.LineAA,
		LeftPad:   4,
		RightPad:  4,
		TopPad:    4,
		BottomPad: 6,
		Alignment: Left,
	}
}

// HersheyFont maps an overlay font onto the closest Hershey face and scale
func HersheyFont(f faceoverlay.Font) Font {

	font := DefaultFont()

	switch f.Family {
	case faceoverlay.CondensedFont:
		font.Face = gocv.FontHersheyDuplex
	case faceoverlay.MonoFont:
		// plain is drawn at roughly half the size of the other faces
		font.Face = gocv.FontHersheyPlain
	default:
		font.Face = gocv.FontHersheySimplex
	}

	font.Scale = f.Size / hersheyCapHeight

	if font.Face == gocv.FontHersheyPlain {
		font.Scale *= 2
	}

	font.Color, _ = opaque(f.Color)
	font.Thickness = int(math.Max(1, math.Round(f.Size/30)))

	if f.Bold {
		font.Thickness++
	}

	return font
}
