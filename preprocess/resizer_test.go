package preprocess

import (
	"errors"
	"gocv.io/x/gocv"
	"image/color"
	"testing"
)

var (
	black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

func TestNewResizerInvalid(t *testing.T) {

	dims := [][4]int{
		{0, 10, 10, 10},
		{10, -1, 10, 10},
		{10, 10, 0, 10},
	}

	for _, d := range dims {
		if _, err := NewResizer(d[0], d[1], d[2], d[3]); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("expected NewResizer to reject %v, got %v", d, err)
		}
	}
}

func TestLetterBoxResize(t *testing.T) {

	tests := []struct {
		srcWidth      int
		srcHeight     int
		resizeWidth   int
		resizeHeight  int
		expectedXPad  int
		expectedYPad  int
		expectedScale float64
	}{
		{1280, 720, 640, 640, 0, 140, 0.50},
		{800, 1000, 640, 640, 64, 0, 0.64},
		{800, 800, 640, 640, 0, 0, 0.8},
	}

	for _, tc := range tests {
		img := gocv.NewMatWithSize(tc.srcHeight, tc.srcWidth, gocv.MatTypeCV8UC1)

		resizedImg := gocv.NewMat()

		resizer, err := NewResizer(tc.srcWidth, tc.srcHeight, tc.resizeWidth, tc.resizeHeight)

		if err != nil {
			t.Fatalf("error creating resizer: %v", err)
		}

		resizer.LetterBoxResize(img, &resizedImg, black)

		if resizer.XPad() != tc.expectedXPad || resizer.YPad() != tc.expectedYPad {
			t.Errorf("Test failed for src (%d, %d): Padding values wrong, expected XPad=%d, YPad=%d, got xPad=%d, yPad=%d",
				tc.srcWidth, tc.srcHeight, tc.expectedXPad, tc.expectedYPad, resizer.XPad(), resizer.YPad())
		}

		if resizer.ScaleFactor() != tc.expectedScale {
			t.Errorf("Test failed for src (%d, %d): Scalefactor incorrect, expected %f, got %f",
				tc.srcWidth, tc.srcHeight, tc.expectedScale, resizer.ScaleFactor())
		}

		if resizedImg.Cols() != tc.resizeWidth || resizedImg.Rows() != tc.resizeHeight {
			t.Errorf("Test failed for src (%d, %d): output size (%d, %d)",
				tc.srcWidth, tc.srcHeight, resizedImg.Cols(), resizedImg.Rows())
		}

		img.Close()
		resizedImg.Close()
		resizer.Close()
	}
}

func TestFitResize(t *testing.T) {

	img := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer img.Close()

	out := gocv.NewMat()
	defer out.Close()

	resizer, err := NewResizer(640, 480, 1080, 1920)

	if err != nil {
		t.Fatalf("error creating resizer: %v", err)
	}

	defer resizer.Close()

	resizer.FitResize(img, &out, black)

	if out.Cols() != 1080 || out.Rows() != 1920 {
		t.Errorf("expected 1080x1920 output, got %dx%d", out.Cols(), out.Rows())
	}

	if resizer.ScaleFactor() != 1.6875 {
		t.Errorf("expected scale 1.6875, got %f", resizer.ScaleFactor())
	}
}
