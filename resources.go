package faceoverlay

import (
	"fmt"
	"golang.org/x/image/draw"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// LoadImage decodes a PNG or JPEG file and scales it to width x height.  A
// missing or unreadable file returns a nil image with the error, callers
// treat that as a missing resource and carry on without it.
func LoadImage(file string, width, height int) (image.Image, error) {

	f, err := os.Open(file)

	if err != nil {
		return nil, fmt.Errorf("error opening image: %w", err)
	}

	defer f.Close()

	src, _, err := image.Decode(f)

	if err != nil {
		return nil, fmt.Errorf("error decoding image %s: %w", file, err)
	}

	return ScaleImage(src, width, height), nil
}

// ScaleImage resamples src to width x height
func ScaleImage(src image.Image, width, height int) image.Image {

	if src.Bounds().Dx() == width && src.Bounds().Dy() == height {
		return src
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	return dst
}
