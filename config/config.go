package config

import (
	"errors"
	"fmt"
	"github.com/swdee/go-faceoverlay"
	"gopkg.in/yaml.v3"
	"os"
	"time"
)

// ViewConfig is the size of the display the overlay is drawn on
type ViewConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ThemeConfig holds optional overrides of the default theme.  Colours are
// hex strings in #RRGGBB or #AARRGGBB form.
type ThemeConfig struct {
	OuterColor  string   `yaml:"outer_color"`
	InnerColor  string   `yaml:"inner_color"`
	ScanColor   string   `yaml:"scan_color"`
	CardColor   string   `yaml:"card_color"`
	NameColor   string   `yaml:"name_color"`
	StatusColor string   `yaml:"status_color"`
	OuterWidth  *float64 `yaml:"outer_width"`
	InnerWidth  *float64 `yaml:"inner_width"`
	ScanWidth   *float64 `yaml:"scan_width"`
	Glow        *float64 `yaml:"glow"`
	NameSize    *float64 `yaml:"name_size"`
	StatusSize  *float64 `yaml:"status_size"`
	BlurRadius  *float64 `yaml:"blur_radius"`
}

// ProfileConfig describes an identity profile.  Image paths are relative to
// the config file.
type ProfileConfig struct {
	Name   string `yaml:"name"`
	Status string `yaml:"status"`
	Avatar string `yaml:"avatar"`
	Glyph  string `yaml:"glyph"`
}

// Config is the overlay configuration file
type Config struct {
	View       ViewConfig      `yaml:"view"`
	ScanPeriod time.Duration   `yaml:"scan_period"`
	Glyphs     bool            `yaml:"glyphs"`
	Theme      ThemeConfig     `yaml:"theme"`
	Identities []ProfileConfig `yaml:"identities"`
	Fallback   *ProfileConfig  `yaml:"fallback"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		View: ViewConfig{
			Width:  1080,
			Height: 1920,
		},
		ScanPeriod: faceoverlay.DefaultScanPeriod,
	}
}

// Load reads a YAML configuration file on top of the defaults
func Load(file string) (*Config, error) {

	data, err := os.ReadFile(file)

	if err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config %s: %w", file, err)
	}

	return cfg, nil
}

// Validate checks the configuration can build a theme and identity table
func (c *Config) Validate() error {

	var errs []error

	if c.View.Width <= 0 || c.View.Height <= 0 {
		errs = append(errs, fmt.Errorf("view size %dx%d: %w",
			c.View.Width, c.View.Height, faceoverlay.ErrInvalidDimensions))
	}

	if c.ScanPeriod <= 0 {
		errs = append(errs, errors.New("scan period must be positive"))
	}

	if len(c.Identities) > faceoverlay.NamedSlots {
		errs = append(errs, fmt.Errorf("at most %d identities may be configured, got %d",
			faceoverlay.NamedSlots, len(c.Identities)))
	}

	if _, err := c.BuildTheme(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
