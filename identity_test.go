package faceoverlay

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	ids := testIdentities()

	p, named := ids.Resolve(0)
	assert.True(t, named)
	assert.Equal(t, "ALPHA", p.Name)

	p, named = ids.Resolve(1)
	assert.True(t, named)
	assert.Equal(t, "BETA", p.Name)

	for _, idx := range []int{2, 3, 100, -1} {
		p, named = ids.Resolve(idx)
		assert.False(t, named)
		assert.Equal(t, "UNKNOWN", p.Name)
		assert.Equal(t, StatusUnknown, p.Status)
	}
}

func TestDefaultIdentities(t *testing.T) {
	ids := DefaultIdentities()

	for i := 0; i < NamedSlots; i++ {
		p, _ := ids.Resolve(i)
		assert.Equal(t, StatusIdentified, p.Status)
		require.NotNil(t, p.Avatar)
		require.NotNil(t, p.Glyph)
		assert.Equal(t, image.Rect(0, 0, AvatarSize, AvatarSize), p.Avatar.Bounds())
	}

	assert.Equal(t, StatusUnknown, ids.Fallback.Status)
	assert.NotNil(t, ids.Fallback.Avatar)
	assert.Nil(t, ids.Fallback.Glyph)
}

func TestPlaceholderImage(t *testing.T) {
	img := PlaceholderImage(30, Black, Cyan)
	assert.Equal(t, color.NRGBAModel.Convert(Cyan), color.NRGBAModel.Convert(img.At(0, 0)))
	assert.Equal(t, color.NRGBAModel.Convert(Black), color.NRGBAModel.Convert(img.At(15, 15)))
}

func TestLoadImage(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "avatar.png")

	src := image.NewNRGBA(image.Rect(0, 0, 40, 20))
	f, err := os.Create(file)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, src))
	require.NoError(t, f.Close())

	img, err := LoadImage(file, AvatarSize, AvatarSize)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, AvatarSize, AvatarSize), img.Bounds())

	img, err = LoadImage(filepath.Join(dir, "missing.png"), AvatarSize, AvatarSize)
	assert.Error(t, err)
	assert.Nil(t, img)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.png"), []byte("nope"), 0o644))
	img, err = LoadImage(filepath.Join(dir, "bad.png"), AvatarSize, AvatarSize)
	assert.Error(t, err)
	assert.Nil(t, img)
}

func TestThemeValidate(t *testing.T) {
	assert.NoError(t, DefaultTheme().Validate())

	bad := DefaultTheme()
	bad.ScanLine.Width = 0
	bad.NameFont.Size = -1
	bad.InnerFrame.Dash = []float64{-1}
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scan line stroke width")
	assert.Contains(t, err.Error(), "font sizes")
	assert.Contains(t, err.Error(), "inner frame dash")
}

func TestThemeClone(t *testing.T) {
	base := DefaultTheme()
	c := base.Clone()
	c.OuterFrame.Dash[0] = 99
	assert.Equal(t, 10.0, base.OuterFrame.Dash[0])
}
