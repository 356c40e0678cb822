package raster

import (
	"fmt"
	"github.com/swdee/go-faceoverlay"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"sync"
)

// faceKey identifies a cached font face
type faceKey struct {
	family faceoverlay.FontFamily
	bold   bool
	size   float64
}

var (
	parseOnce sync.Once
	// typefaces are the parsed embedded Go fonts
	typefaces map[faceKey]*opentype.Font
	parseErr  error
)

// parseTypefaces parses the embedded Go fonts once.  The size field of the
// key is unused.
func parseTypefaces() (map[faceKey]*opentype.Font, error) {

	parseOnce.Do(func() {
		sources := map[faceKey][]byte{
			{family: faceoverlay.SansFont}:                  goregular.TTF,
			{family: faceoverlay.SansFont, bold: true}:      gobold.TTF,
			{family: faceoverlay.CondensedFont}:             gobold.TTF,
			{family: faceoverlay.CondensedFont, bold: true}: gobold.TTF,
			{family: faceoverlay.MonoFont}:                  gomono.TTF,
			{family: faceoverlay.MonoFont, bold: true}:      gomonobold.TTF,
		}

		typefaces = make(map[faceKey]*opentype.Font, len(sources))

		for key, data := range sources {
			f, err := opentype.Parse(data)

			if err != nil {
				parseErr = fmt.Errorf("failed to parse font: %w", err)
				return
			}

			typefaces[key] = f
		}
	})

	return typefaces, parseErr
}

// face returns a cached face for the font, falling back to the fixed 7x13
// bitmap face if the embedded fonts cannot be used
func (c *Canvas) face(f faceoverlay.Font) font.Face {

	key := faceKey{family: f.Family, bold: f.Bold, size: f.Size}

	if face, ok := c.faces[key]; ok {
		return face
	}

	var face font.Face = basicfont.Face7x13

	if fonts, err := parseTypefaces(); err == nil {
		if tf, ok := fonts[faceKey{family: f.Family, bold: f.Bold}]; ok {
			nf, err := opentype.NewFace(tf, &opentype.FaceOptions{
				Size:    f.Size,
				DPI:     72,
				Hinting: font.HintingFull,
			})

			if err == nil {
				face = nf
			}
		}
	}

	c.faces[key] = face

	return face
}
