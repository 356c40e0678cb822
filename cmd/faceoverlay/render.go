package main

import (
	"fmt"
	"github.com/spf13/cobra"
	"github.com/swdee/go-faceoverlay"
	"github.com/swdee/go-faceoverlay/raster"
	"github.com/swdee/go-faceoverlay/render"
	"github.com/swdee/go-faceoverlay/result"
	"gocv.io/x/gocv"
	"image"
	"image/draw"
	"log"
)

var (
	renderInput   string
	renderOutput  string
	renderBackend string
	renderPlain   bool
	// letterbox centres frames in the view instead of anchoring them top left
	letterbox bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Draw the overlay for a detection result onto an image",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return runRender()
	},
}

func init() {
	renderCmd.Flags().StringVarP(&rootOpts.Detections, "detections", "d", "", "Detection result JSON file")
	renderCmd.Flags().StringVarP(&renderInput, "input", "i", "", "Image file the detections were made on")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "overlay.jpg", "Output image file")
	renderCmd.Flags().StringVarP(&renderBackend, "backend", "b", "gocv", "Drawing backend [gocv|raster]")
	renderCmd.Flags().Float64Var(&rootOpts.Phase, "phase", 0, "Scan line phase between 0 and 1")
	renderCmd.Flags().BoolVar(&renderPlain, "plain", false, "Draw plain detection boxes instead of the overlay")
	renderCmd.Flags().BoolVar(&letterbox, "letterbox", false, "Centre the image in the view with padding on both sides")

	renderCmd.MarkFlagRequired("input")
	renderCmd.MarkFlagRequired("detections")
	rootCmd.AddCommand(renderCmd)
}

func runRender() error {

	if renderBackend != "gocv" && renderBackend != "raster" {
		return fmt.Errorf("unknown backend %q", renderBackend)
	}

	img := gocv.IMRead(renderInput, gocv.IMReadColor)

	if img.Empty() {
		return fmt.Errorf("error reading image from: %s", renderInput)
	}

	defer img.Close()

	res, err := result.LoadResult(rootOpts.Detections, result.NewIDGenerator())

	if err != nil {
		return err
	}

	if renderPlain && letterbox {
		return fmt.Errorf("plain boxes are drawn top left anchored and cannot be letterboxed")
	}

	overlay, err := newOverlay(faceoverlay.StaticPhase(rootOpts.Phase), nil)

	if err != nil {
		return err
	}

	fitter, err := newFrameFitter(overlay, img.Cols(), img.Rows(), letterbox)

	if err != nil {
		return err
	}

	defer fitter.Close()

	view := gocv.NewMat()
	defer view.Close()

	fitter.Fit(img, &view)

	log.Printf("Scale factor: %.4f\n", fitter.ScaleFactor())

	if renderPlain {
		render.DetectionBoxes(&view, res, fitter.ScaleFactor(), render.DefaultFont(), 2)
		return writeImage(view)
	}

	if err := fitter.SetResult(overlay, res); err != nil {
		return err
	}

	if renderBackend == "gocv" {
		canvas, err := render.NewMatCanvas(&view)

		if err != nil {
			return err
		}

		overlay.Render(canvas)

		return writeImage(view)
	}

	return renderRaster(overlay, view)
}

// renderRaster draws the overlay with the pure Go backend onto a copy of the
// view
func renderRaster(overlay *faceoverlay.Overlay, view gocv.Mat) error {

	src, err := view.ToImage()

	if err != nil {
		return fmt.Errorf("error converting view to image: %w", err)
	}

	rgba := image.NewRGBA(src.Bounds())
	draw.Draw(rgba, rgba.Bounds(), src, src.Bounds().Min, draw.Src)

	canvas := raster.New(rgba)
	defer canvas.Close()

	overlay.Render(canvas)

	out, err := gocv.ImageToMatRGB(rgba)

	if err != nil {
		return fmt.Errorf("error converting image to mat: %w", err)
	}

	defer out.Close()

	return writeImage(out)
}

func writeImage(img gocv.Mat) error {

	if ok := gocv.IMWrite(renderOutput, img); !ok {
		return fmt.Errorf("failed to write image to: %s", renderOutput)
	}

	log.Printf("Saved overlay to %s\n", renderOutput)

	return nil
}
