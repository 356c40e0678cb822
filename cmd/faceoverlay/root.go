package main

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"github.com/swdee/go-faceoverlay"
	"github.com/swdee/go-faceoverlay/config"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
)

// Options holds the settings shared by every command
type Options struct {
	ConfigFile string
	EnvFile    string
	Detections string
	Phase      float64
}

var (
	rootOpts Options
	// cfg is the loaded configuration shared by subcommands
	cfg *config.Config
)

// Version is the application version
const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "faceoverlay",
	Short:   "Face detection overlay renderer",
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {

		if err := config.LoadDotEnv(rootOpts.EnvFile); err != nil {
			return err
		}

		var err error

		if rootOpts.ConfigFile != "" {
			cfg, err = config.Load(rootOpts.ConfigFile)

			if err != nil {
				return err
			}
		} else {
			cfg = config.Default()
		}

		cfg.ApplyEnv()

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		return nil
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootOpts.ConfigFile, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&rootOpts.EnvFile, "env", ".env", "Environment file with FACEOVERLAY_* overrides")
}

// newOverlay builds an overlay for the configured view.  Identity images that
// fail to load are logged and their cards skipped.
func newOverlay(phase faceoverlay.PhaseSource, invalidate func()) (*faceoverlay.Overlay, error) {

	theme, err := cfg.BuildTheme()

	if err != nil {
		return nil, err
	}

	baseDir := "."
	if rootOpts.ConfigFile != "" {
		baseDir = filepath.Dir(rootOpts.ConfigFile)
	}

	identities, err := cfg.BuildIdentities(baseDir)

	if err != nil {
		log.Printf("Warning: identity images not loaded: %v\n", err)
	}

	return faceoverlay.NewOverlay(cfg.View.Width, cfg.View.Height, theme, identities,
		faceoverlay.Options{
			Glyphs:     cfg.Glyphs,
			Phase:      phase,
			Invalidate: invalidate,
		}), nil
}
