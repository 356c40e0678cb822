package render

import (
	"fmt"
	"github.com/swdee/go-faceoverlay/result"
	"gocv.io/x/gocv"
	"image"
	"image/color"
	"math"
)

// boxLabel defines where the detection label should be rendered on the
// image
type boxLabel struct {
	rect    image.Rectangle
	clr     color.RGBA
	text    string
	textPos image.Point
}

// DetectionBoxes renders plain bounding boxes and score labels for the
// detections without any identity decoration.  Box coordinates are
// multiplied by scale to map them onto img.
func DetectionBoxes(img *gocv.Mat, res *result.DetectionResult, scale float64,
	font Font, lineThickness int) {

	if res == nil {
		return
	}

	// keep a record of all box labels for later rendering
	boxLabels := make([]boxLabel, 0, len(res.Detections))

	for i, det := range res.Detections {

		// Get the color for this detection
		colorIndex := i % len(classColors)
		useClr := classColors[colorIndex]

		left := scaleCoord(det.Box.Left, scale)
		top := scaleCoord(det.Box.Top, scale)
		right := scaleCoord(det.Box.Right, scale)
		bottom := scaleCoord(det.Box.Bottom, scale)

		// draw rectangle around detected face
		rect := image.Rect(left, top, right, bottom)
		gocv.Rectangle(img, rect, useClr, lineThickness)

		// create text for label
		label := "face"
		if len(det.Categories) > 0 && det.Categories[0].Label != "" {
			label = det.Categories[0].Label
		}

		text := fmt.Sprintf("%s %.2f", label, det.Score())
		textSize := gocv.GetTextSize(text, font.Face, font.Scale, font.Thickness)

		// Calculate the alignment of text label
		var centerX int

		switch font.Alignment {
		case Center:
			centerX = (left + right) / 2

		case Right:
			centerX = right - (textSize.X / 2) - font.RightPad + (lineThickness / 2)

		case Left:
			fallthrough
		default:
			centerX = left + (textSize.X / 2) + font.LeftPad - (lineThickness / 2)
		}

		// Adjust the label position so the text is centered horizontally
		labelPosition := image.Pt(centerX-textSize.X/2, top-font.BottomPad)

		// create box for placing text on
		bRect := image.Rect(centerX-textSize.X/2-font.LeftPad,
			top-textSize.Y-font.TopPad-font.BottomPad,
			centerX+textSize.X/2+font.RightPad, top)

		boxLabels = append(boxLabels, boxLabel{
			rect:    bRect,
			clr:     useClr,
			text:    text,
			textPos: labelPosition,
		})
	}

	// draw all precalculated box labels so they are the top most layer on the
	// image and don't get overlapped by neighbouring boxes
	for _, box := range boxLabels {
		// draw box text gets written on
		gocv.Rectangle(img, box.rect, box.clr, -1)

		// Draw the label over box
		gocv.PutTextWithParams(img, box.text, box.textPos,
			font.Face, font.Scale, font.Color, font.Thickness,
			font.LineType, false)
	}
}

func scaleCoord(v int, scale float64) int {
	return int(math.Round(float64(v) * scale))
}
