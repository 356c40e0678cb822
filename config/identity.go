package config

import (
	"errors"
	"github.com/swdee/go-faceoverlay"
	"image"
	"path/filepath"
)

// BuildIdentities returns the default identity table with the configured
// profiles applied.  Image paths are resolved against baseDir.  Images that
// fail to load are left nil, so their card or glyph is not drawn, and the
// load errors are returned joined alongside the usable table.
func (c *Config) BuildIdentities(baseDir string) (faceoverlay.IdentityTable, error) {

	table := faceoverlay.DefaultIdentities()

	var errs []error

	for i, pc := range c.Identities {
		if i >= faceoverlay.NamedSlots {
			break
		}

		table.Named[i] = applyProfile(table.Named[i], pc, baseDir, &errs)
	}

	if c.Fallback != nil {
		table.Fallback = applyProfile(table.Fallback, *c.Fallback, baseDir, &errs)
	}

	return table, errors.Join(errs...)
}

func applyProfile(p faceoverlay.Profile, pc ProfileConfig, baseDir string,
	errs *[]error) faceoverlay.Profile {

	if pc.Name != "" {
		p.Name = pc.Name
	}

	if pc.Status != "" {
		p.Status = pc.Status
	}

	if pc.Avatar != "" {
		p.Avatar = loadImage(resolvePath(baseDir, pc.Avatar), errs)
	}

	if pc.Glyph != "" {
		p.Glyph = loadImage(resolvePath(baseDir, pc.Glyph), errs)
	}

	return p
}

// loadImage returns a nil interface rather than a typed nil on failure
func loadImage(file string, errs *[]error) image.Image {

	img, err := faceoverlay.LoadImage(file, faceoverlay.AvatarSize, faceoverlay.AvatarSize)

	if err != nil {
		*errs = append(*errs, err)
		return nil
	}

	return img
}

func resolvePath(baseDir, file string) string {
	if filepath.IsAbs(file) || baseDir == "" {
		return file
	}
	return filepath.Join(baseDir, file)
}
