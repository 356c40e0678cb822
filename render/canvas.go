package render

import (
	"errors"
	"fmt"
	"github.com/swdee/go-faceoverlay"
	"gocv.io/x/gocv"
	"image"
	"image/color"
	"math"
)

// ErrUnsupportedMat is returned when a Mat is not an 8 bit, 3 channel BGR
// image
var ErrUnsupportedMat = errors.New("canvas requires an 8 bit BGR Mat")

// MatCanvas paints overlay draw commands onto a BGR gocv Mat
type MatCanvas struct {
	img    *gocv.Mat
	bounds image.Rectangle
}

// NewMatCanvas returns a canvas drawing onto img, which must be CV8UC3
func NewMatCanvas(img *gocv.Mat) (*MatCanvas, error) {

	if img.Empty() || img.Type() != gocv.MatTypeCV8UC3 {
		return nil, ErrUnsupportedMat
	}

	return &MatCanvas{
		img:    img,
		bounds: image.Rect(0, 0, img.Cols(), img.Rows()),
	}, nil
}

// toImageRect rounds a display rectangle to pixel coordinates
func toImageRect(r faceoverlay.Rect) image.Rectangle {
	return image.Rect(
		int(math.Round(r.Left)), int(math.Round(r.Top)),
		int(math.Round(r.Right)), int(math.Round(r.Bottom)),
	)
}

func toImagePt(p faceoverlay.Point) image.Point {
	return image.Pt(int(math.Round(p.X)), int(math.Round(p.Y)))
}

func strokeWidth(s faceoverlay.Stroke) int {
	return int(math.Max(1, math.Round(s.Width)))
}

// segmentBounds returns the pixel area touched by the segments drawn at the
// given width
func segmentBounds(segs []faceoverlay.Segment, width int) image.Rectangle {

	var r image.Rectangle

	for i, s := range segs {
		sr := image.Rectangle{Min: toImagePt(s.From), Max: toImagePt(s.To)}.Canon()
		sr.Max = sr.Max.Add(image.Pt(1, 1))

		if i == 0 {
			r = sr
		} else {
			r = r.Union(sr)
		}
	}

	return r.Inset(-width)
}

// rectSegments returns the dashed outline of r within bounds
func rectSegments(r faceoverlay.Rect, dash []float64, bounds faceoverlay.Rect) []faceoverlay.Segment {

	corners := []faceoverlay.Point{
		faceoverlay.Pt(r.Left, r.Top),
		faceoverlay.Pt(r.Right, r.Top),
		faceoverlay.Pt(r.Right, r.Bottom),
		faceoverlay.Pt(r.Left, r.Bottom),
	}

	var segs []faceoverlay.Segment

	for i := range corners {
		segs = append(segs, faceoverlay.DashSegmentsIn(corners[i], corners[(i+1)%4], dash, bounds)...)
	}

	return segs
}

// StrokeRect draws the outline of r
func (m *MatCanvas) StrokeRect(r faceoverlay.Rect, s faceoverlay.Stroke) {
	m.strokeSegments(rectSegments(r, s.Dash, m.reach(s)), s)
}

// Line draws a straight line
func (m *MatCanvas) Line(from, to faceoverlay.Point, s faceoverlay.Stroke) {
	m.strokeSegments(faceoverlay.DashSegmentsIn(from, to, s.Dash, m.reach(s)), s)
}

// reach returns the canvas bounds grown by the stroke width and glow, the
// area outside which a segment cannot mark the image
func (m *MatCanvas) reach(s faceoverlay.Stroke) faceoverlay.Rect {

	pad := float64(strokeWidth(s)) + 2*math.Max(0, s.Glow)

	return faceoverlay.Rect{
		Left:   float64(m.bounds.Min.X) - pad,
		Top:    float64(m.bounds.Min.Y) - pad,
		Right:  float64(m.bounds.Max.X) + pad,
		Bottom: float64(m.bounds.Max.Y) + pad,
	}
}

func (m *MatCanvas) strokeSegments(segs []faceoverlay.Segment, s faceoverlay.Stroke) {

	if len(segs) == 0 {
		return
	}

	width := strokeWidth(s)
	clr, alpha := opaque(s.Color)

	if s.Glow > 0 {
		m.glow(segs, width, clr, s.Glow)
	}

	area := segmentBounds(segs, width).Intersect(m.bounds)

	if area.Empty() {
		return
	}

	m.blend(area, alpha, func(layer *gocv.Mat, offset image.Point) {
		for _, seg := range segs {
			gocv.Line(layer, toImagePt(seg.From).Sub(offset), toImagePt(seg.To).Sub(offset),
				clr, width)
		}
	})
}

// glow paints a blurred copy of the segments additively under the stroke
func (m *MatCanvas) glow(segs []faceoverlay.Segment, width int, clr color.RGBA, radius float64) {

	r := int(math.Ceil(radius))
	area := segmentBounds(segs, width+2*r).Intersect(m.bounds)

	if area.Empty() {
		return
	}

	roi := m.img.Region(area)
	defer roi.Close()

	layer := zeros(area, gocv.MatTypeCV8UC3)
	defer layer.Close()

	for _, seg := range segs {
		gocv.Line(&layer, toImagePt(seg.From).Sub(area.Min), toImagePt(seg.To).Sub(area.Min),
			clr, width+r/2)
	}

	ksize := 2*r + 1
	gocv.GaussianBlur(layer, &layer, image.Pt(ksize, ksize), radius/2, radius/2,
		gocv.BorderDefault)

	gocv.Add(roi, layer, &roi)
}

// blend runs draw against a copy of the area and mixes the result back in
// with the given alpha.  Fully opaque draws skip the copy.
func (m *MatCanvas) blend(area image.Rectangle, alpha float64,
	draw func(layer *gocv.Mat, offset image.Point)) {

	if alpha <= 0 {
		return
	}

	roi := m.img.Region(area)
	defer roi.Close()

	if alpha >= 1 {
		draw(&roi, area.Min)
		return
	}

	layer := roi.Clone()
	defer layer.Close()

	draw(&layer, area.Min)
	gocv.AddWeighted(roi, 1-alpha, layer, alpha, 0, &roi)
}

// FillRect fills r with a possibly translucent colour
func (m *MatCanvas) FillRect(r faceoverlay.Rect, c color.NRGBA) {

	area := toImageRect(r).Canon().Intersect(m.bounds)

	if area.Empty() {
		return
	}

	clr, alpha := opaque(c)

	m.blend(area, alpha, func(layer *gocv.Mat, offset image.Point) {
		gocv.Rectangle(layer, area.Sub(offset), clr, -1)
	})
}

// BlurRect paints an opaque fill over r whose edges fade out over the blur
// radius
func (m *MatCanvas) BlurRect(r faceoverlay.Rect, b faceoverlay.Blur) {

	rect := toImageRect(r).Canon()
	rad := int(math.Ceil(b.Radius))
	area := rect.Inset(-rad).Intersect(m.bounds)

	if area.Empty() || rect.Empty() {
		return
	}

	mask := zeros(area, gocv.MatTypeCV8U)
	defer mask.Close()

	gocv.Rectangle(&mask, rect.Sub(area.Min), White, -1)

	if rad > 0 {
		ksize := 2*rad + 1
		gocv.GaussianBlur(mask, &mask, image.Pt(ksize, ksize), b.Radius/2, b.Radius/2,
			gocv.BorderConstant)
	}

	weights := mask.ToBytes()
	clr, _ := opaque(b.Color)

	m.mixPixels(area, func(x, y int) (color.RGBA, float64) {
		// doubling the feathered mask keeps the covered area fully opaque
		w := math.Min(1, 2*float64(weights[y*area.Dx()+x])/255)
		return clr, w
	})
}

// DrawImage composites img with its alpha channel at the given top left
// corner
func (m *MatCanvas) DrawImage(img image.Image, at faceoverlay.Point) {

	src := img.Bounds()
	dst := src.Sub(src.Min).Add(toImagePt(at))
	area := dst.Intersect(m.bounds)

	if area.Empty() {
		return
	}

	// offset from the area origin to the source image pixel
	shift := src.Min.Add(area.Min.Sub(dst.Min))

	m.mixPixels(area, func(x, y int) (color.RGBA, float64) {
		nc := color.NRGBAModel.Convert(img.At(shift.X+x, shift.Y+y)).(color.NRGBA)
		return opaque(nc)
	})
}

// mixPixels blends a per pixel colour and weight into the area.  Pixel
// access over CGO is slow so the area is copied out as bytes, mixed and
// copied back.
func (m *MatCanvas) mixPixels(area image.Rectangle, px func(x, y int) (color.RGBA, float64)) {

	roi := m.img.Region(area)
	defer roi.Close()

	// a clone is continuous in memory so its bytes can be addressed directly
	tmp := roi.Clone()
	defer tmp.Close()

	data := tmp.ToBytes()
	width := area.Dx()

	for y := 0; y < area.Dy(); y++ {
		for x := 0; x < width; x++ {
			clr, w := px(x, y)

			if w <= 0 {
				continue
			}

			pos := (y*width + x) * 3
			data[pos+0] = mix(data[pos+0], clr.B, w)
			data[pos+1] = mix(data[pos+1], clr.G, w)
			data[pos+2] = mix(data[pos+2], clr.R, w)
		}
	}

	out, err := gocv.NewMatFromBytes(area.Dy(), area.Dx(), gocv.MatTypeCV8UC3, data)

	if err != nil {
		return
	}

	defer out.Close()
	out.CopyTo(&roi)
}

// zeros returns a black Mat the size of area
func zeros(area image.Rectangle, mt gocv.MatType) gocv.Mat {
	return gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), area.Dy(), area.Dx(), mt)
}

func mix(dst, src uint8, w float64) uint8 {
	return uint8(math.Round(float64(dst)*(1-w) + float64(src)*w))
}

// Text draws text with its baseline starting at the given point
func (m *MatCanvas) Text(text string, at faceoverlay.Point, f faceoverlay.Font) {

	font := HersheyFont(f)
	_, alpha := opaque(f.Color)

	size, baseline := gocv.GetTextSizeWithBaseline(text, font.Face, font.Scale, font.Thickness)
	org := toImagePt(at)

	// descenders reach baseline pixels below the origin
	area := image.Rect(org.X, org.Y-size.Y, org.X+size.X, org.Y+baseline+font.Thickness).
		Inset(-2 * font.Thickness).Intersect(m.bounds)

	if area.Empty() {
		return
	}

	m.blend(area, alpha, func(layer *gocv.Mat, offset image.Point) {
		gocv.PutTextWithParams(layer, text, org.Sub(offset), font.Face, font.Scale,
			font.Color, font.Thickness, font.LineType, false)
	})
}

// MeasureText returns the rendered width of text
func (m *MatCanvas) MeasureText(text string, f faceoverlay.Font) float64 {
	font := HersheyFont(f)
	return float64(gocv.GetTextSize(text, font.Face, font.Scale, font.Thickness).X)
}

// String describes the canvas
func (m *MatCanvas) String() string {
	return fmt.Sprintf("MatCanvas(%dx%d)", m.bounds.Dx(), m.bounds.Dy())
}
