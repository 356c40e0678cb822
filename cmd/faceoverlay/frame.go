package main

import (
	"github.com/swdee/go-faceoverlay"
	"github.com/swdee/go-faceoverlay/preprocess"
	"github.com/swdee/go-faceoverlay/render"
	"github.com/swdee/go-faceoverlay/result"
	"gocv.io/x/gocv"
)

// frameFitter scales source frames into the overlay's view and keeps the
// overlay's origin in step with the letterbox padding
type frameFitter struct {
	resizer   *preprocess.Resizer
	letterbox bool
}

// newFrameFitter returns a fitter for source frames of srcWidth x srcHeight.
// Letterboxed frames are centred in the view, otherwise they are anchored at
// the top left corner.
func newFrameFitter(overlay *faceoverlay.Overlay, srcWidth, srcHeight int,
	letterbox bool) (*frameFitter, error) {

	viewW, viewH := overlay.ViewSize()

	resizer, err := preprocess.NewResizer(srcWidth, srcHeight, viewW, viewH)

	if err != nil {
		return nil, err
	}

	origin := faceoverlay.Point{}
	if letterbox {
		origin = faceoverlay.Pt(float64(resizer.XPad()), float64(resizer.YPad()))
	}

	overlay.SetOrigin(origin)

	return &frameFitter{
		resizer:   resizer,
		letterbox: letterbox,
	}, nil
}

// Fit scales src into dest
func (f *frameFitter) Fit(src gocv.Mat, dest *gocv.Mat) {
	if f.letterbox {
		f.resizer.LetterBoxResize(src, dest, render.Black)
		return
	}
	f.resizer.FitResize(src, dest, render.Black)
}

// SetResult hands the detections to the overlay with the source frame size
func (f *frameFitter) SetResult(overlay *faceoverlay.Overlay, res *result.DetectionResult) error {
	return overlay.SetResult(res, f.resizer.SrcWidth(), f.resizer.SrcHeight())
}

// ScaleFactor returns the source to view scale
func (f *frameFitter) ScaleFactor() float64 {
	return f.resizer.ScaleFactor()
}

func (f *frameFitter) Close() error {
	return f.resizer.Close()
}
