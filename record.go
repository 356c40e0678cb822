package faceoverlay

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"unicode/utf8"
)

// Op identifies the kind of a recorded draw command
type Op int

const (
	OpStrokeRect Op = iota + 1
	OpLine
	OpFillRect
	OpBlurRect
	OpDrawImage
	OpText
)

var opNames = map[Op]string{
	OpStrokeRect: "stroke-rect",
	OpLine:       "line",
	OpFillRect:   "fill-rect",
	OpBlurRect:   "blur-rect",
	OpDrawImage:  "image",
	OpText:       "text",
}

// String returns the name of the operation
func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return fmt.Sprintf("op(%d)", int(o))
}

// Command is a single recorded draw call.  Only the fields relevant to Op
// are set.
type Command struct {
	Op     Op
	Rect   Rect
	From   Point
	To     Point
	Stroke Stroke
	Color  color.NRGBA
	Blur   Blur
	Image  image.Image
	At     Point
	Text   string
	Font   Font
}

// String renders the command in a compact human readable form
func (c Command) String() string {
	switch c.Op {
	case OpStrokeRect:
		return fmt.Sprintf("%s %s width=%.0f dash=%v", c.Op, fmtRect(c.Rect), c.Stroke.Width, c.Stroke.Dash)
	case OpLine:
		return fmt.Sprintf("%s (%.1f,%.1f)-(%.1f,%.1f) width=%.0f", c.Op,
			c.From.X, c.From.Y, c.To.X, c.To.Y, c.Stroke.Width)
	case OpFillRect:
		return fmt.Sprintf("%s %s color=%s", c.Op, fmtRect(c.Rect), fmtColor(c.Color))
	case OpBlurRect:
		return fmt.Sprintf("%s %s radius=%.0f", c.Op, fmtRect(c.Rect), c.Blur.Radius)
	case OpDrawImage:
		b := c.Image.Bounds()
		return fmt.Sprintf("%s %dx%d at (%.1f,%.1f)", c.Op, b.Dx(), b.Dy(), c.At.X, c.At.Y)
	case OpText:
		return fmt.Sprintf("%s %q at (%.1f,%.1f) size=%.0f", c.Op, c.Text, c.At.X, c.At.Y, c.Font.Size)
	}
	return c.Op.String()
}

func fmtRect(r Rect) string {
	return fmt.Sprintf("[%.1f,%.1f %.1f,%.1f]", r.Left, r.Top, r.Right, r.Bottom)
}

func fmtColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.A, c.R, c.G, c.B)
}

// Recorder is a Canvas that records every draw call instead of painting it
type Recorder struct {
	Commands []Command
	// Measure overrides the text width estimate, the default assumes every
	// rune is half the font size wide
	Measure func(text string, f Font) float64
}

// NewRecorder returns an empty Recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) StrokeRect(rect Rect, s Stroke) {
	r.Commands = append(r.Commands, Command{Op: OpStrokeRect, Rect: rect, Stroke: s})
}

func (r *Recorder) Line(from, to Point, s Stroke) {
	r.Commands = append(r.Commands, Command{Op: OpLine, From: from, To: to, Stroke: s})
}

func (r *Recorder) FillRect(rect Rect, clr color.NRGBA) {
	r.Commands = append(r.Commands, Command{Op: OpFillRect, Rect: rect, Color: clr})
}

func (r *Recorder) BlurRect(rect Rect, b Blur) {
	r.Commands = append(r.Commands, Command{Op: OpBlurRect, Rect: rect, Blur: b})
}

func (r *Recorder) DrawImage(img image.Image, at Point) {
	r.Commands = append(r.Commands, Command{Op: OpDrawImage, Image: img, At: at})
}

func (r *Recorder) Text(text string, at Point, f Font) {
	r.Commands = append(r.Commands, Command{Op: OpText, Text: text, At: at, Font: f})
}

func (r *Recorder) MeasureText(text string, f Font) float64 {
	if r.Measure != nil {
		return r.Measure(text, f)
	}
	return float64(utf8.RuneCountInString(text)) * f.Size / 2
}

// Reset discards the recorded commands
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

// Filter returns the recorded commands of the given kind in order
func (r *Recorder) Filter(op Op) []Command {
	var out []Command
	for _, c := range r.Commands {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Texts returns the strings of every recorded text command in order
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.Filter(OpText) {
		out = append(out, c.Text)
	}
	return out
}

// String lists the recorded commands one per line
func (r *Recorder) String() string {
	var sb strings.Builder
	for _, c := range r.Commands {
		sb.WriteString(c.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
