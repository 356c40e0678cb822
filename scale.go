package faceoverlay

import (
	"errors"
	"math"
)

// ErrInvalidDimensions is returned when a source or view dimension is zero or
// negative and no scale factor can be derived from it
var ErrInvalidDimensions = errors.New("image dimensions must be positive")

// FitScale returns the uniform "fit within" scale factor that maps a source
// image of srcWidth x srcHeight onto a view of viewWidth x viewHeight, being
// min(viewWidth/srcWidth, viewHeight/srcHeight)
func FitScale(viewWidth, viewHeight, srcWidth, srcHeight int) (float64, error) {

	if viewWidth <= 0 || viewHeight <= 0 || srcWidth <= 0 || srcHeight <= 0 {
		return 0, ErrInvalidDimensions
	}

	scaleW := float64(viewWidth) / float64(srcWidth)
	scaleH := float64(viewHeight) / float64(srcHeight)

	return math.Min(scaleW, scaleH), nil
}
