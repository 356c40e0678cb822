package config

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swdee/go-faceoverlay"
)

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	file := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(file, []byte(data), 0o644))
	return file
}

func writePNG(t *testing.T, dir, name string) {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 30, 30))))
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 1500*time.Millisecond, cfg.ScanPeriod)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "overlay.yaml", `
view:
  width: 640
  height: 480
scan_period: 2s
glyphs: true
theme:
  outer_color: "#00FF00"
  scan_color: "#4000FF00"
  glow: 0
  blur_radius: 25
identities:
  - name: FIRST
  - name: SECOND
    status: "STATUS: WATCHED"
fallback:
  name: NOBODY
`)

	cfg, err := Load(file)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ViewConfig{Width: 640, Height: 480}, cfg.View)
	assert.Equal(t, 2*time.Second, cfg.ScanPeriod)
	assert.True(t, cfg.Glyphs)

	theme, err := cfg.BuildTheme()
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{G: 255, A: 255}, theme.OuterFrame.Color)
	assert.Equal(t, color.NRGBA{G: 255, A: 0x40}, theme.ScanLine.Color)
	assert.Equal(t, 0.0, theme.OuterFrame.Glow)
	assert.Equal(t, 25.0, theme.Obscure.Radius)
	// untouched settings keep their defaults
	assert.Equal(t, faceoverlay.DefaultTheme().InnerFrame, theme.InnerFrame)

	table, err := cfg.BuildIdentities(dir)
	require.NoError(t, err)
	assert.Equal(t, "FIRST", table.Named[0].Name)
	assert.Equal(t, faceoverlay.StatusIdentified, table.Named[0].Status)
	assert.Equal(t, "STATUS: WATCHED", table.Named[1].Status)
	assert.Equal(t, "NOBODY", table.Fallback.Name)
	assert.NotNil(t, table.Fallback.Avatar)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	file := writeFile(t, t.TempDir(), "bad.yaml", "view: [1, 2")
	_, err = Load(file)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.View.Width = 0
	assert.ErrorIs(t, cfg.Validate(), faceoverlay.ErrInvalidDimensions)

	cfg = Default()
	cfg.ScanPeriod = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Identities = make([]ProfileConfig, 3)
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Theme.InnerColor = "#12345"
	assert.Error(t, cfg.Validate())

	zero := 0.0
	cfg = Default()
	cfg.Theme.OuterWidth = &zero
	assert.Error(t, cfg.Validate())
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
		ok   bool
	}{
		{"#00FFFF", color.NRGBA{G: 255, B: 255, A: 255}, true},
		{"80FF00FF", color.NRGBA{R: 255, B: 255, A: 0x80}, true},
		{"#80000000", color.NRGBA{A: 0x80}, true},
		{"#FFF", color.NRGBA{}, false},
		{"#GGGGGG", color.NRGBA{}, false},
		{"", color.NRGBA{}, false},
	}

	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if !tt.ok {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestBuildIdentitiesImages(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "alpha.png")

	cfg := Default()
	cfg.Identities = []ProfileConfig{
		{Avatar: "alpha.png", Glyph: "missing.png"},
	}
	cfg.Fallback = &ProfileConfig{Avatar: "gone.png"}

	table, err := cfg.BuildIdentities(dir)
	assert.Error(t, err)

	require.NotNil(t, table.Named[0].Avatar)
	assert.Equal(t, faceoverlay.AvatarSize, table.Named[0].Avatar.Bounds().Dx())
	assert.Nil(t, table.Named[0].Glyph)
	assert.Nil(t, table.Fallback.Avatar)
	// the second slot keeps its default profile
	assert.Equal(t, faceoverlay.DefaultIdentities().Named[1].Name, table.Named[1].Name)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("FACEOVERLAY_VIEW_WIDTH", "720")
	t.Setenv("FACEOVERLAY_VIEW_HEIGHT", "not a number")
	t.Setenv("FACEOVERLAY_SCAN_PERIOD", "750ms")
	t.Setenv("FACEOVERLAY_GLYPHS", "true")
	t.Setenv("FACEOVERLAY_SCAN_COLOR", "#FF0000")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, 720, cfg.View.Width)
	assert.Equal(t, 1920, cfg.View.Height)
	assert.Equal(t, 750*time.Millisecond, cfg.ScanPeriod)
	assert.True(t, cfg.Glyphs)
	assert.Equal(t, "#FF0000", cfg.Theme.ScanColor)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, LoadDotEnv(filepath.Join(dir, ".env")))

	file := writeFile(t, dir, ".env", "FACEOVERLAY_TEST_DOTENV=loaded\n")
	t.Setenv("FACEOVERLAY_TEST_DOTENV", "")
	os.Unsetenv("FACEOVERLAY_TEST_DOTENV")

	require.NoError(t, LoadDotEnv(file))
	assert.Equal(t, "loaded", os.Getenv("FACEOVERLAY_TEST_DOTENV"))
}
