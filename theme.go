package faceoverlay

import (
	"errors"
	"fmt"
	"image/color"
)

var (
	// Cyan is used for the outer frame, corner accents and names
	Cyan = color.NRGBA{R: 0, G: 255, B: 255, A: 255}
	// Magenta is used for the inner frame and status lines
	Magenta = color.NRGBA{R: 255, G: 0, B: 255, A: 255}
	// Black is the obscuring fill colour
	Black = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	// White is the default text colour
	White = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	// HalfMagenta is the translucent scan line colour (#80FF00FF)
	HalfMagenta = color.NRGBA{R: 255, G: 0, B: 255, A: 0x80}
	// HalfBlack is the translucent card background colour (#80000000)
	HalfBlack = color.NRGBA{R: 0, G: 0, B: 0, A: 0x80}
)

// Theme is the immutable set of styles the overlay draws with.  Copy it and
// change fields to derive a new theme, do not mutate one in use.
type Theme struct {
	// OuterFrame is the stroke of the frame drawn outside the box, also used
	// for the corner accents
	OuterFrame Stroke
	// InnerFrame is the stroke of the frame drawn inside the box
	InnerFrame Stroke
	// ScanLine is the stroke of the moving horizontal line
	ScanLine Stroke
	// CardBackground fills behind the identity card and score readout
	CardBackground color.NRGBA
	NameFont       Font
	StatusFont     Font
	// Obscure is painted over detections without a named identity
	Obscure Blur
	// OuterOffset is how far the outer frame sits outside the box
	OuterOffset float64
	// InnerInset is how far the inner frame sits inside the box
	InnerInset float64
	// CornerLength is the length of each arm of a corner accent
	CornerLength float64
	// CardMargin separates the card from the box and the card's contents
	CardMargin float64
	// LineSpacing is the vertical distance between card text lines
	LineSpacing float64
	// ScorePadding pads the score text inside its background
	ScorePadding float64
	// ScoreHeight is the height of the score background
	ScoreHeight float64
}

// DefaultTheme returns the neon theme settings
func DefaultTheme() Theme {
	return Theme{
		OuterFrame: Stroke{
			Color: Cyan,
			Width: 8,
			Dash:  []float64{10, 5},
			Glow:  15,
		},
		InnerFrame: Stroke{
			Color: Magenta,
			Width: 4,
			Dash:  []float64{5, 10},
		},
		ScanLine: Stroke{
			Color: HalfMagenta,
			Width: 5,
		},
		CardBackground: HalfBlack,
		NameFont: Font{
			Family: CondensedFont,
			Size:   40,
			Color:  Cyan,
			Bold:   true,
		},
		StatusFont: Font{
			Family: MonoFont,
			Size:   30,
			Color:  Magenta,
		},
		Obscure: Blur{
			Color:  Black,
			Radius: 50,
		},
		OuterOffset:  10,
		InnerInset:   5,
		CornerLength: 20,
		CardMargin:   10,
		LineSpacing:  40,
		ScorePadding: 10,
		ScoreHeight:  40,
	}
}

// Clone returns a deep copy of the theme so dash patterns are not shared
func (t Theme) Clone() Theme {
	t.OuterFrame.Dash = append([]float64(nil), t.OuterFrame.Dash...)
	t.InnerFrame.Dash = append([]float64(nil), t.InnerFrame.Dash...)
	t.ScanLine.Dash = append([]float64(nil), t.ScanLine.Dash...)
	return t
}

// Validate checks the theme has usable stroke widths, font sizes and spacing
func (t Theme) Validate() error {

	var errs []error

	strokes := map[string]Stroke{
		"outer frame": t.OuterFrame,
		"inner frame": t.InnerFrame,
		"scan line":   t.ScanLine,
	}

	for name, s := range strokes {
		if s.Width <= 0 {
			errs = append(errs, fmt.Errorf("%s stroke width must be positive", name))
		}
		for _, d := range s.Dash {
			if d < 0 {
				errs = append(errs, fmt.Errorf("%s dash lengths must not be negative", name))
				break
			}
		}
	}

	if t.NameFont.Size <= 0 || t.StatusFont.Size <= 0 {
		errs = append(errs, errors.New("font sizes must be positive"))
	}

	if t.Obscure.Radius < 0 {
		errs = append(errs, errors.New("obscure radius must not be negative"))
	}

	if t.OuterOffset < 0 || t.InnerInset < 0 || t.CornerLength < 0 ||
		t.CardMargin < 0 || t.LineSpacing < 0 || t.ScorePadding < 0 || t.ScoreHeight < 0 {
		errs = append(errs, errors.New("spacing values must not be negative"))
	}

	return errors.Join(errs...)
}
