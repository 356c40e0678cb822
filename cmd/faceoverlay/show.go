package main

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"github.com/swdee/go-faceoverlay"
	"github.com/swdee/go-faceoverlay/render"
	"github.com/swdee/go-faceoverlay/result"
	"gocv.io/x/gocv"
	"time"
)

var (
	showInput  string
	showCamera int
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the animated overlay over a video or camera in a window",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return runShow(cmd.Context())
	},
}

func init() {
	showCmd.Flags().StringVarP(&rootOpts.Detections, "detections", "d", "", "Detections JSON lines file, one result per frame")
	showCmd.Flags().StringVarP(&showInput, "input", "i", "", "Video file to play, the camera is used if not set")
	showCmd.Flags().BoolVar(&letterbox, "letterbox", false, "Centre frames in the window with padding on both sides")
	showCmd.Flags().IntVar(&showCamera, "camera", 0, "Camera device ID")

	rootCmd.AddCommand(showCmd)
}

func runShow(ctx context.Context) error {

	var frames *result.FrameIndex

	if rootOpts.Detections != "" {
		var err error
		frames, err = result.LoadFrames(rootOpts.Detections, result.NewIDGenerator())

		if err != nil {
			return err
		}
	}

	var source interface{} = showCamera
	if showInput != "" {
		source = showInput
	}

	video, err := gocv.OpenVideoCapture(source)

	if err != nil {
		return fmt.Errorf("error opening video source %v: %w", source, err)
	}

	defer video.Close()

	srcW := int(video.Get(gocv.VideoCaptureFrameWidth))
	srcH := int(video.Get(gocv.VideoCaptureFrameHeight))

	frameDelay := faceoverlay.DefaultFrameInterval
	if fps := video.Get(gocv.VideoCaptureFPS); fps > 0 {
		frameDelay = time.Duration(float64(time.Second) / fps)
	}

	// redraw requests from the animator are coalesced
	redraw := make(chan struct{}, 1)
	invalidate := func() {
		select {
		case redraw <- struct{}{}:
		default:
		}
	}

	animator := faceoverlay.NewAnimator(cfg.ScanPeriod, faceoverlay.DefaultFrameInterval, invalidate)

	overlay, err := newOverlay(animator, invalidate)

	if err != nil {
		return err
	}

	fitter, err := newFrameFitter(overlay, srcW, srcH, letterbox)

	if err != nil {
		return err
	}

	defer fitter.Close()

	window := gocv.NewWindow("faceoverlay")
	defer window.Close()

	if err := animator.Start(ctx); err != nil {
		return err
	}

	// closing the window detaches the view so the animation must stop
	defer animator.Stop()

	img := gocv.NewMat()
	defer img.Close()

	view := gocv.NewMat()
	defer view.Close()

	display := gocv.NewMat()
	defer display.Close()

	ticker := time.NewTicker(frameDelay)
	defer ticker.Stop()

	var n int64

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-ticker.C:
			if ok := video.Read(&img); !ok || img.Empty() {
				return nil
			}

			fitter.Fit(img, &view)

			if frames != nil {
				if res, ok := frames.Get(n); ok {
					if err := fitter.SetResult(overlay, res); err != nil {
						return err
					}
				} else {
					overlay.Clear()
				}
			}

			n++

		case <-redraw:
		}

		if view.Empty() {
			continue
		}

		view.CopyTo(&display)

		canvas, err := render.NewMatCanvas(&display)

		if err != nil {
			return err
		}

		overlay.Render(canvas)
		window.IMShow(display)

		if key := window.WaitKey(1); key == 27 || key == 'q' {
			return nil
		}

		if window.GetWindowProperty(gocv.WindowPropertyVisible) < 1 {
			return nil
		}
	}
}
