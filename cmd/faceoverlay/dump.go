package main

import (
	"fmt"
	"github.com/spf13/cobra"
	"github.com/swdee/go-faceoverlay"
	"github.com/swdee/go-faceoverlay/result"
)

var (
	dumpSrcWidth  int
	dumpSrcHeight int
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the draw commands the overlay issues for a detection result",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		res, err := result.LoadResult(rootOpts.Detections, result.NewIDGenerator())

		if err != nil {
			return err
		}

		// fall back to the dimensions stored with the result
		srcW, srcH := dumpSrcWidth, dumpSrcHeight
		if srcW == 0 {
			srcW = res.ImageWidth
		}
		if srcH == 0 {
			srcH = res.ImageHeight
		}

		overlay, err := newOverlay(faceoverlay.StaticPhase(rootOpts.Phase), nil)

		if err != nil {
			return err
		}

		if err := overlay.SetResult(res, srcW, srcH); err != nil {
			return err
		}

		rec := faceoverlay.NewRecorder()
		overlay.Render(rec)

		fmt.Fprint(cmd.OutOrStdout(), rec.String())

		return nil
	},
}

func init() {
	dumpCmd.Flags().StringVarP(&rootOpts.Detections, "detections", "d", "", "Detection result JSON file")
	dumpCmd.Flags().IntVar(&dumpSrcWidth, "src-width", 0, "Source image width (default from detections file)")
	dumpCmd.Flags().IntVar(&dumpSrcHeight, "src-height", 0, "Source image height (default from detections file)")
	dumpCmd.Flags().Float64Var(&rootOpts.Phase, "phase", 0, "Scan line phase between 0 and 1")

	dumpCmd.MarkFlagRequired("detections")
	rootCmd.AddCommand(dumpCmd)
}
