package preprocess

import (
	"github.com/swdee/go-faceoverlay"
	"gocv.io/x/gocv"
	"image"
	"image/color"
	"math"
)

// ErrInvalidDimensions is returned when a source or view dimension is zero or
// negative
var ErrInvalidDimensions = faceoverlay.ErrInvalidDimensions

// Resizer defines the struct used for scaling source frames onto the
// display view
type Resizer struct {
	// srcWidth is the width of the source image
	srcWidth int
	// srcHeight is the height of the source image
	srcHeight int
	// destWidth is the width to scale to
	destWidth int
	// destHeight is the height to scale to
	destHeight int
	// tempMat is a Mat used during the resize process
	tempMat gocv.Mat
	// letterbox parameters used in scaling
	xPad  int
	yPad  int
	scale float64
	// resize dimensions
	resizeW int
	resizeH int
}

// NewResizer returns a resizer used for scaling a source frame to the view
// dimensions
func NewResizer(srcWidth, srcHeight, destWidth, destHeight int) (*Resizer, error) {

	scale, err := faceoverlay.FitScale(destWidth, destHeight, srcWidth, srcHeight)

	if err != nil {
		return nil, err
	}

	r := &Resizer{
		srcWidth:   srcWidth,
		srcHeight:  srcHeight,
		destWidth:  destWidth,
		destHeight: destHeight,
		scale:      scale,
		tempMat:    gocv.NewMat(),
	}

	// precalculate scaling dimensions
	r.preCalc()

	return r, nil
}

// Close frees memory allocated during resize process
func (r *Resizer) Close() error {
	return r.tempMat.Close()
}

// preCalc the resize dimensions and padding for source and destination Mats
func (r *Resizer) preCalc() {

	r.resizeW = int(math.Round(float64(r.srcWidth) * r.scale))
	r.resizeH = int(math.Round(float64(r.srcHeight) * r.scale))

	// guard against rounding past the destination
	if r.resizeW > r.destWidth {
		r.resizeW = r.destWidth
	}

	if r.resizeH > r.destHeight {
		r.resizeH = r.destHeight
	}

	r.yPad = (r.destHeight - r.resizeH) / 2 // padding height / 2
	r.xPad = (r.destWidth - r.resizeW) / 2  // padding width / 2
}

// FitResize scales the source image into the destination view anchored at
// the top left corner, padding the right and bottom edges with color.  Source
// coordinates multiplied by ScaleFactor() land on the same content in the
// destination.
func (r *Resizer) FitResize(src gocv.Mat, dest *gocv.Mat, color color.RGBA) {

	gocv.Resize(src, &r.tempMat, image.Pt(r.resizeW, r.resizeH),
		0, 0, gocv.InterpolationArea)

	gocv.CopyMakeBorder(r.tempMat, dest, 0, r.destHeight-r.resizeH,
		0, r.destWidth-r.resizeW, gocv.BorderConstant, color)
}

// LetterBoxResize resizes the input image to the view dimensions whilst
// maintaining image aspect and centering it.  Color is that used for letter
// box padding.
func (r *Resizer) LetterBoxResize(src gocv.Mat, dest *gocv.Mat, color color.RGBA) {

	gocv.Resize(src, &r.tempMat, image.Pt(r.resizeW, r.resizeH),
		0, 0, gocv.InterpolationArea)

	gocv.CopyMakeBorder(r.tempMat, dest, r.yPad, r.destHeight-r.resizeH-r.yPad,
		r.xPad, r.destWidth-r.resizeW-r.xPad, gocv.BorderConstant, color)
}

// ScaleFactor returns the scale factor used in resizing
func (r *Resizer) ScaleFactor() float64 {
	return r.scale
}

// XPad returns the x padding used in letterbox resize
func (r *Resizer) XPad() int {
	return r.xPad
}

// YPad returns the y padding used in letterbox resize
func (r *Resizer) YPad() int {
	return r.yPad
}

// SrcWidth returns the width of the source image
func (r *Resizer) SrcWidth() int {
	return r.srcWidth
}

// SrcHeight returns the height of the source image
func (r *Resizer) SrcHeight() int {
	return r.srcHeight
}
