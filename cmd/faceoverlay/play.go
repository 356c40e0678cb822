package main

import (
	"context"
	"fmt"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/swdee/go-faceoverlay"
	"github.com/swdee/go-faceoverlay/render"
	"github.com/swdee/go-faceoverlay/result"
	"gocv.io/x/gocv"
	"log"
	"os"
	"time"
)

var (
	playInput  string
	playOutput string
	playCodec  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Draw the overlay onto every frame of a video",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return runPlay(cmd.Context())
	},
}

func init() {
	playCmd.Flags().StringVarP(&rootOpts.Detections, "detections", "d", "", "Detections JSON lines file, one result per frame")
	playCmd.Flags().StringVarP(&playInput, "input", "i", "", "Video file the detections were made on")
	playCmd.Flags().StringVarP(&playOutput, "output", "o", "overlay.mp4", "Output video file")
	playCmd.Flags().BoolVar(&letterbox, "letterbox", false, "Centre frames in the view with padding on both sides")
	playCmd.Flags().StringVar(&playCodec, "codec", "mp4v", "FourCC codec of the output video")

	playCmd.MarkFlagRequired("input")
	playCmd.MarkFlagRequired("detections")
	rootCmd.AddCommand(playCmd)
}

// frameTime returns the presentation time of frame n
func frameTime(n int64, fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(n) / fps * float64(time.Second))
}

func runPlay(ctx context.Context) error {

	frames, err := result.LoadFrames(rootOpts.Detections, result.NewIDGenerator())

	if err != nil {
		return err
	}

	video, err := gocv.VideoCaptureFile(playInput)

	if err != nil {
		return fmt.Errorf("error opening video: %w", err)
	}

	defer video.Close()

	fps := video.Get(gocv.VideoCaptureFPS)
	total := int(video.Get(gocv.VideoCaptureFrameCount))
	srcW := int(video.Get(gocv.VideoCaptureFrameWidth))
	srcH := int(video.Get(gocv.VideoCaptureFrameHeight))

	writer, err := gocv.VideoWriterFile(playOutput, playCodec, fps,
		cfg.View.Width, cfg.View.Height, true)

	if err != nil {
		return fmt.Errorf("error creating video writer: %w", err)
	}

	defer writer.Close()

	// the scan line follows the video clock rather than wall time
	phase := new(faceoverlay.StaticPhase)

	overlay, err := newOverlay(phase, nil)

	if err != nil {
		return err
	}

	fitter, err := newFrameFitter(overlay, srcW, srcH, letterbox)

	if err != nil {
		return err
	}

	defer fitter.Close()

	log.Printf("Loaded detections for %d frames, video has %d frames at %.2f fps\n",
		frames.Len(), total, fps)

	bar := progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Rendering"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
	)

	img := gocv.NewMat()
	defer img.Close()

	view := gocv.NewMat()
	defer view.Close()

	for n := int64(0); ; n++ {

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if ok := video.Read(&img); !ok {
			break
		}

		if img.Empty() {
			continue
		}

		fitter.Fit(img, &view)

		*phase = faceoverlay.StaticPhase(faceoverlay.PhaseAt(frameTime(n, fps), cfg.ScanPeriod))

		if res, ok := frames.Get(n); ok {
			if err := fitter.SetResult(overlay, res); err != nil {
				return err
			}
		} else {
			overlay.Clear()
		}

		canvas, err := render.NewMatCanvas(&view)

		if err != nil {
			return err
		}

		overlay.Render(canvas)

		if err := writer.Write(view); err != nil {
			return fmt.Errorf("error writing frame %d: %w", n, err)
		}

		bar.Add(1)
	}

	bar.Finish()
	log.Printf("\nSaved overlay video to %s\n", playOutput)

	return nil
}
