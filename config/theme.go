package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"github.com/swdee/go-faceoverlay"
	"image/color"
	"strings"
)

// ParseHexColor parses #RRGGBB or #AARRGGBB, alpha leading as in Android
// colour strings
func ParseHexColor(s string) (color.NRGBA, error) {

	b, err := hex.DecodeString(strings.TrimPrefix(s, "#"))

	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}

	switch len(b) {
	case 3:
		return color.NRGBA{R: b[0], G: b[1], B: b[2], A: 255}, nil
	case 4:
		return color.NRGBA{A: b[0], R: b[1], G: b[2], B: b[3]}, nil
	}

	return color.NRGBA{}, fmt.Errorf("invalid colour %q: expected 6 or 8 hex digits", s)
}

// BuildTheme applies the theme overrides to the default theme
func (c *Config) BuildTheme() (faceoverlay.Theme, error) {

	t := faceoverlay.DefaultTheme()
	tc := c.Theme

	var errs []error

	colors := []struct {
		value string
		dst   *color.NRGBA
	}{
		{tc.OuterColor, &t.OuterFrame.Color},
		{tc.InnerColor, &t.InnerFrame.Color},
		{tc.ScanColor, &t.ScanLine.Color},
		{tc.CardColor, &t.CardBackground},
		{tc.NameColor, &t.NameFont.Color},
		{tc.StatusColor, &t.StatusFont.Color},
	}

	for _, cl := range colors {
		if cl.value == "" {
			continue
		}

		v, err := ParseHexColor(cl.value)

		if err != nil {
			errs = append(errs, err)
			continue
		}

		*cl.dst = v
	}

	sizes := []struct {
		value *float64
		dst   *float64
	}{
		{tc.OuterWidth, &t.OuterFrame.Width},
		{tc.InnerWidth, &t.InnerFrame.Width},
		{tc.ScanWidth, &t.ScanLine.Width},
		{tc.Glow, &t.OuterFrame.Glow},
		{tc.NameSize, &t.NameFont.Size},
		{tc.StatusSize, &t.StatusFont.Size},
		{tc.BlurRadius, &t.Obscure.Radius},
	}

	for _, sz := range sizes {
		if sz.value != nil {
			*sz.dst = *sz.value
		}
	}

	if err := t.Validate(); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		return faceoverlay.Theme{}, fmt.Errorf("invalid theme: %w", err)
	}

	return t, nil
}
