package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swdee/go-faceoverlay"
	"github.com/swdee/go-faceoverlay/result"
)

func blackCanvas(w, h int) *Canvas {
	c := NewBlank(w, h)
	c.FillRect(faceoverlay.Rect{Right: float64(w), Bottom: float64(h)}, faceoverlay.Black)
	return c
}

func TestGaussianKernel(t *testing.T) {
	k := gaussianKernel(10)
	require.Len(t, k, 21)

	sum := 0.0
	for _, v := range k {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.Greater(t, k[10], k[0])
	assert.InDelta(t, k[0], k[20], 1e-12)

	assert.Equal(t, []float64{1}, gaussianKernel(0))
}

func TestBlurWeightsSpreads(t *testing.T) {
	w, h := 21, 21
	src := make([]float64, w*h)
	src[10*w+10] = 1

	out := blurWeights(src, w, h, gaussianKernel(4))

	assert.Less(t, out[10*w+10], 1.0)
	assert.Greater(t, out[10*w+12], 0.0)
	assert.InDelta(t, out[10*w+12], out[12*w+10], 1e-12)
}

func TestFillRect(t *testing.T) {
	c := blackCanvas(100, 100)
	defer c.Close()

	c.FillRect(faceoverlay.Rect{Left: 10, Top: 10, Right: 50, Bottom: 50},
		color.NRGBA{R: 255, A: 255})

	assert.Equal(t, color.RGBA{R: 255, A: 255}, c.Image().RGBAAt(20, 20))
	assert.Equal(t, color.RGBA{A: 255}, c.Image().RGBAAt(60, 60))

	c.FillRect(faceoverlay.Rect{Left: 60, Top: 60, Right: 90, Bottom: 90}, faceoverlay.HalfBlack)
	c.FillRect(faceoverlay.Rect{Left: -20, Top: -20, Right: 5, Bottom: 5}, faceoverlay.Cyan)

	assert.Equal(t, color.RGBA{G: 255, B: 255, A: 255}, c.Image().RGBAAt(0, 0))
}

func TestStrokeRect(t *testing.T) {
	c := blackCanvas(100, 100)
	defer c.Close()

	c.StrokeRect(faceoverlay.Rect{Left: 20, Top: 20, Right: 80, Bottom: 80},
		faceoverlay.Stroke{Color: faceoverlay.Cyan, Width: 4})

	assert.Equal(t, uint8(255), c.Image().RGBAAt(50, 20).G)
	assert.Equal(t, uint8(255), c.Image().RGBAAt(80, 50).B)
	assert.Equal(t, uint8(0), c.Image().RGBAAt(50, 50).G, "interior left untouched")
}

func TestDashedLine(t *testing.T) {
	c := blackCanvas(100, 20)
	defer c.Close()

	c.Line(faceoverlay.Pt(0, 10), faceoverlay.Pt(100, 10),
		faceoverlay.Stroke{Color: faceoverlay.White, Width: 2, Dash: []float64{10, 10}})

	assert.Equal(t, uint8(255), c.Image().RGBAAt(5, 10).R)
	assert.Equal(t, uint8(0), c.Image().RGBAAt(15, 10).R)
	assert.Equal(t, uint8(255), c.Image().RGBAAt(25, 10).R)
}

func TestStrokeHugeRect(t *testing.T) {
	c := blackCanvas(100, 100)
	defer c.Close()

	c.StrokeRect(faceoverlay.Rect{Left: 10, Top: 10, Right: 1e9, Bottom: 1e9},
		faceoverlay.Stroke{Color: faceoverlay.Cyan, Width: 2, Dash: []float64{10, 5}, Glow: 5})

	// the top edge dashes from x=10 land inside the image
	assert.Equal(t, uint8(255), c.Image().RGBAAt(15, 10).G)
	assert.Equal(t, uint8(255), c.Image().RGBAAt(30, 10).G)
}

func TestGlowSpreadsBeyondStroke(t *testing.T) {
	c := blackCanvas(100, 60)
	defer c.Close()

	c.Line(faceoverlay.Pt(10, 30), faceoverlay.Pt(90, 30),
		faceoverlay.Stroke{Color: faceoverlay.Cyan, Width: 2, Glow: 10})

	assert.Greater(t, c.Image().RGBAAt(50, 36).G, uint8(0))
	assert.Equal(t, uint8(0), c.Image().RGBAAt(50, 59).G)
}

func TestBlurRectObscures(t *testing.T) {
	c := NewBlank(200, 200)
	defer c.Close()

	c.FillRect(faceoverlay.Rect{Right: 200, Bottom: 200}, faceoverlay.White)
	c.BlurRect(faceoverlay.Rect{Left: 50, Top: 50, Right: 150, Bottom: 150},
		faceoverlay.Blur{Color: faceoverlay.Black, Radius: 10})

	for _, pt := range []image.Point{{100, 100}, {60, 100}, {100, 140}} {
		assert.LessOrEqual(t, c.Image().RGBAAt(pt.X, pt.Y).R, uint8(10), "pixel %v", pt)
	}

	assert.Equal(t, uint8(255), c.Image().RGBAAt(5, 5).R)
	// the edge fades out past the rectangle
	edge := c.Image().RGBAAt(155, 100).R
	assert.Greater(t, edge, uint8(0))
	assert.Less(t, edge, uint8(255))
}

func TestDrawImage(t *testing.T) {
	c := blackCanvas(100, 100)
	defer c.Close()

	avatar := faceoverlay.PlaceholderImage(20, faceoverlay.Magenta, faceoverlay.White)
	c.DrawImage(avatar, faceoverlay.Pt(30, 30))

	assert.Equal(t, color.RGBA{R: 255, B: 255, A: 255}, c.Image().RGBAAt(40, 40))
	assert.Equal(t, color.RGBA{A: 255}, c.Image().RGBAAt(55, 55))
}

func TestText(t *testing.T) {
	c := blackCanvas(300, 60)
	defer c.Close()

	f := faceoverlay.Font{Family: faceoverlay.MonoFont, Size: 30, Color: faceoverlay.White}

	w := c.MeasureText("MATCH", f)
	assert.Greater(t, w, 0.0)
	assert.Less(t, c.MeasureText("M", f), w)

	c.Text("MATCH", faceoverlay.Pt(10, 40), f)

	lit := 0
	for y := 10; y < 45; y++ {
		for x := 10; x < 10+int(w); x++ {
			if c.Image().RGBAAt(x, y).R > 128 {
				lit++
			}
		}
	}
	assert.Greater(t, lit, 0)

	// faces are cached per family, weight and size
	c.MeasureText("x", faceoverlay.Font{Family: faceoverlay.CondensedFont, Size: 40, Bold: true})
	assert.Len(t, c.faces, 2)
}

func TestRenderOverlay(t *testing.T) {
	c := NewBlank(640, 480)
	defer c.Close()

	o := faceoverlay.NewOverlay(640, 480, faceoverlay.DefaultTheme(),
		faceoverlay.DefaultIdentities(), faceoverlay.Options{Glyphs: true})

	res := &result.DetectionResult{
		ImageWidth:  640,
		ImageHeight: 480,
		Detections: []result.Detection{
			{Box: result.BoxRect{Left: 40, Top: 200, Right: 160, Bottom: 320},
				Categories: []result.Category{{Score: 0.9}}},
			{Box: result.BoxRect{Left: 240, Top: 200, Right: 360, Bottom: 320},
				Categories: []result.Category{{Score: 0.8}}},
			{Box: result.BoxRect{Left: 480, Top: 300, Right: 600, Bottom: 420},
				Categories: []result.Category{{Score: 0.4}}},
		},
	}

	require.NoError(t, o.SetResult(res, 640, 480))
	o.Render(c)

	// third face is obscured by an opaque black fill
	assert.Equal(t, color.RGBA{A: 255}, c.Image().RGBAAt(540, 385))
	// corner accent on the outer frame of the first face
	assert.Equal(t, uint8(255), c.Image().RGBAAt(30, 210).B)
}
