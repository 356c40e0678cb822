package faceoverlay

import (
	"image"
	"image/color"
	"image/draw"
)

const (
	// StatusIdentified is shown for the named identity slots
	StatusIdentified = "STATUS: IDENTIFIED"
	// StatusUnknown is shown for the fallback slot
	StatusUnknown = "STATUS: UNKNOWN"

	// AvatarSize is the width and height avatars and glyphs are loaded at
	AvatarSize = 150

	// NamedSlots is the number of positional slots with a named identity
	NamedSlots = 2
)

// Profile is the static display bundle attached to a detection
type Profile struct {
	Name   string
	Status string
	// Avatar is drawn on the identity card, nil skips the card
	Avatar image.Image
	// Glyph is drawn to the right of the name, nil skips it
	Glyph image.Image
}

// IdentityTable maps a detection's position within its frame to a Profile.
// It is a placeholder for a recogniser: the same face can resolve to a
// different slot in the next frame if the detector orders it differently.
type IdentityTable struct {
	// Named are the profiles for detection index 0 and 1
	Named [NamedSlots]Profile
	// Fallback is the profile for every other index
	Fallback Profile
}

// Resolve returns the profile for the detection at the given index and
// whether it is one of the named slots
func (t IdentityTable) Resolve(index int) (Profile, bool) {
	if index >= 0 && index < NamedSlots {
		return t.Named[index], true
	}
	return t.Fallback, false
}

// DefaultIdentities returns the built in placeholder profiles with
// generated avatars and glyphs
func DefaultIdentities() IdentityTable {
	return IdentityTable{
		Named: [NamedSlots]Profile{
			{
				Name:   "SUBJECT ALPHA",
				Status: StatusIdentified,
				Avatar: PlaceholderImage(AvatarSize, color.NRGBA{R: 20, G: 90, B: 120, A: 255}, Cyan),
				Glyph:  PlaceholderImage(AvatarSize, color.NRGBA{A: 0}, Cyan),
			},
			{
				Name:   "SUBJECT BETA",
				Status: StatusIdentified,
				Avatar: PlaceholderImage(AvatarSize, color.NRGBA{R: 110, G: 30, B: 120, A: 255}, Magenta),
				Glyph:  PlaceholderImage(AvatarSize, color.NRGBA{A: 0}, Magenta),
			},
		},
		Fallback: Profile{
			Name:   "V. SILVERHAND",
			Status: StatusUnknown,
			Avatar: PlaceholderImage(AvatarSize, color.NRGBA{R: 60, G: 60, B: 60, A: 255}, White),
		},
	}
}

// PlaceholderImage returns a square image filled with fill and framed by a
// border of the given colour
func PlaceholderImage(size int, fill, border color.NRGBA) image.Image {

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(fill), image.Point{}, draw.Src)

	bw := size / 15
	if bw < 1 {
		bw = 1
	}

	src := image.NewUniform(border)
	edges := []image.Rectangle{
		image.Rect(0, 0, size, bw),
		image.Rect(0, size-bw, size, size),
		image.Rect(0, 0, bw, size),
		image.Rect(size-bw, 0, size, size),
	}

	for _, e := range edges {
		draw.Draw(img, e, src, image.Point{}, draw.Src)
	}

	return img
}
