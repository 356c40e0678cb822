package raster

import (
	"github.com/swdee/go-faceoverlay"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"image"
	"image/color"
	"math"
)

// Canvas paints overlay draw commands onto an RGBA image in pure Go
type Canvas struct {
	img   *image.RGBA
	faces map[faceKey]font.Face
}

// New returns a canvas drawing onto img
func New(img *image.RGBA) *Canvas {
	return &Canvas{
		img:   img,
		faces: make(map[faceKey]font.Face),
	}
}

// NewBlank returns a canvas on a new transparent image of the given size
func NewBlank(width, height int) *Canvas {
	return New(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// Image returns the image being drawn on
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Close releases the cached font faces
func (c *Canvas) Close() error {
	for key, face := range c.faces {
		if face != basicfont.Face7x13 {
			face.Close()
		}
		delete(c.faces, key)
	}
	return nil
}

func opaque(clr color.NRGBA) color.NRGBA {
	clr.A = 255
	return clr
}

// StrokeRect draws the outline of r
func (c *Canvas) StrokeRect(r faceoverlay.Rect, s faceoverlay.Stroke) {

	corners := []faceoverlay.Point{
		faceoverlay.Pt(r.Left, r.Top),
		faceoverlay.Pt(r.Right, r.Top),
		faceoverlay.Pt(r.Right, r.Bottom),
		faceoverlay.Pt(r.Left, r.Bottom),
	}

	var segs []faceoverlay.Segment

	reach := c.reach(s)

	for i := range corners {
		segs = append(segs, faceoverlay.DashSegmentsIn(corners[i], corners[(i+1)%4], s.Dash, reach)...)
	}

	c.stroke(segs, s)
}

// Line draws a straight line
func (c *Canvas) Line(from, to faceoverlay.Point, s faceoverlay.Stroke) {
	c.stroke(faceoverlay.DashSegmentsIn(from, to, s.Dash, c.reach(s)), s)
}

// reach returns the image bounds grown by the stroke width and glow, the
// area outside which a segment cannot mark the image
func (c *Canvas) reach(s faceoverlay.Stroke) faceoverlay.Rect {

	pad := math.Max(1, s.Width) + 2*math.Max(0, s.Glow)
	b := c.img.Bounds()

	return faceoverlay.Rect{
		Left:   float64(b.Min.X) - pad,
		Top:    float64(b.Min.Y) - pad,
		Right:  float64(b.Max.X) + pad,
		Bottom: float64(b.Max.Y) + pad,
	}
}

func (c *Canvas) stroke(segs []faceoverlay.Segment, s faceoverlay.Stroke) {

	if len(segs) == 0 {
		return
	}

	width := math.Max(1, s.Width)
	pad := int(math.Ceil(width))

	if s.Glow > 0 {
		pad += 2 * int(math.Ceil(s.Glow))
	}

	area := segmentBounds(segs).Inset(-pad).Intersect(c.img.Bounds())

	if area.Empty() {
		return
	}

	weights := strokeWeights(segs, width, area)

	if s.Glow > 0 {
		glow := blurWeights(weights, area.Dx(), area.Dy(), gaussianKernel(s.Glow))
		c.composite(area, glow, s.Color)
	}

	c.composite(area, weights, s.Color)
}

// segmentBounds returns the pixel rectangle covering all segment end points
func segmentBounds(segs []faceoverlay.Segment) image.Rectangle {

	var r image.Rectangle

	for i, s := range segs {
		sr := image.Rect(
			int(math.Floor(math.Min(s.From.X, s.To.X))),
			int(math.Floor(math.Min(s.From.Y, s.To.Y))),
			int(math.Ceil(math.Max(s.From.X, s.To.X)))+1,
			int(math.Ceil(math.Max(s.From.Y, s.To.Y)))+1,
		)

		if i == 0 {
			r = sr
		} else {
			r = r.Union(sr)
		}
	}

	return r
}

// strokeWeights rasterises the segments at the given width into a weight
// grid covering area by stamping squares along each segment
func strokeWeights(segs []faceoverlay.Segment, width float64, area image.Rectangle) []float64 {

	w, h := area.Dx(), area.Dy()
	weights := make([]float64, w*h)
	half := width / 2

	for _, s := range segs {
		length := math.Hypot(s.To.X-s.From.X, s.To.Y-s.From.Y)
		steps := int(math.Ceil(length))

		for i := 0; i <= steps; i++ {
			t := 0.0
			if steps > 0 {
				t = float64(i) / float64(steps)
			}

			cx := s.From.X + (s.To.X-s.From.X)*t
			cy := s.From.Y + (s.To.Y-s.From.Y)*t

			x0 := int(math.Round(cx-half)) - area.Min.X
			y0 := int(math.Round(cy-half)) - area.Min.Y
			x1 := int(math.Round(cx+half)) - area.Min.X
			y1 := int(math.Round(cy+half)) - area.Min.Y

			// thin strokes still cover one pixel
			if x1 == x0 {
				x1++
			}
			if y1 == y0 {
				y1++
			}

			for y := max(y0, 0); y < min(y1, h); y++ {
				for x := max(x0, 0); x < min(x1, w); x++ {
					weights[y*w+x] = 1
				}
			}
		}
	}

	return weights
}

// composite paints clr over the area using per pixel weights in [0, 1]
// multiplied by the colour's own alpha
func (c *Canvas) composite(area image.Rectangle, weights []float64, clr color.NRGBA) {

	mask := image.NewAlpha(area)
	w := area.Dx()

	for y := 0; y < area.Dy(); y++ {
		for x := 0; x < w; x++ {
			v := math.Min(1, weights[y*w+x]) * float64(clr.A)
			mask.Pix[y*mask.Stride+x] = uint8(math.Round(v))
		}
	}

	draw.DrawMask(c.img, area, image.NewUniform(opaque(clr)), image.Point{},
		mask, area.Min, draw.Over)
}

func toImageRect(r faceoverlay.Rect) image.Rectangle {
	return image.Rect(
		int(math.Round(r.Left)), int(math.Round(r.Top)),
		int(math.Round(r.Right)), int(math.Round(r.Bottom)),
	)
}

// FillRect fills r with a possibly translucent colour
func (c *Canvas) FillRect(r faceoverlay.Rect, clr color.NRGBA) {
	area := toImageRect(r).Canon().Intersect(c.img.Bounds())
	draw.Draw(c.img, area, image.NewUniform(clr), image.Point{}, draw.Over)
}

// BlurRect paints an opaque fill over r whose edges fade out over the blur
// radius
func (c *Canvas) BlurRect(r faceoverlay.Rect, b faceoverlay.Blur) {

	rect := toImageRect(r).Canon()
	rad := int(math.Ceil(b.Radius))
	area := rect.Inset(-rad).Intersect(c.img.Bounds())

	if area.Empty() || rect.Empty() {
		return
	}

	w := area.Dx()
	weights := make([]float64, w*area.Dy())
	inner := rect.Intersect(area)

	for y := inner.Min.Y; y < inner.Max.Y; y++ {
		for x := inner.Min.X; x < inner.Max.X; x++ {
			weights[(y-area.Min.Y)*w+(x-area.Min.X)] = 1
		}
	}

	if rad > 0 {
		weights = blurWeights(weights, w, area.Dy(), gaussianKernel(b.Radius))
	}

	// doubling the feathered weights keeps the covered area fully opaque
	for i := range weights {
		weights[i] *= 2
	}

	c.composite(area, weights, b.Color)
}

// DrawImage composites img at the given top left corner
func (c *Canvas) DrawImage(img image.Image, at faceoverlay.Point) {

	src := img.Bounds()
	origin := image.Pt(int(math.Round(at.X)), int(math.Round(at.Y)))
	dst := src.Sub(src.Min).Add(origin)

	draw.Draw(c.img, dst, img, src.Min, draw.Over)
}

// Text draws text with its baseline starting at the given point
func (c *Canvas) Text(text string, at faceoverlay.Point, f faceoverlay.Font) {

	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(f.Color),
		Face: c.face(f),
		Dot:  fixed.Point26_6{X: fixed.Int26_6(at.X * 64), Y: fixed.Int26_6(at.Y * 64)},
	}

	d.DrawString(text)
}

// MeasureText returns the advance width of text
func (c *Canvas) MeasureText(text string, f faceoverlay.Font) float64 {
	return float64(font.MeasureString(c.face(f), text)) / 64
}
