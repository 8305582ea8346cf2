package pathview

import (
	"image/color"
	"strings"
)

// Appearance tells the projector how to fill an object.
type Appearance uint8

const (
	Opaque Appearance = iota
	Transparent
)

func (a Appearance) String() string {
	if a == Transparent {
		return "transparent"
	}
	return "opaque"
}

// Style is the fill and edge paint of an outline (non-premultiplied colors).
type Style struct {
	Fill color.NRGBA
	Edge color.NRGBA
}

var (
	glassFill  = color.NRGBA{0x00, 0xBF, 0xFF, alpha8(FillAlpha)} // deepskyblue
	opaqueFill = color.NRGBA{0x69, 0x69, 0x69, alpha8(FillAlpha)} // dimgray
	edgeColor  = color.NRGBA{0x00, 0x00, 0x00, alpha8(FillAlpha)}
)

func StyleFor(a Appearance) Style {
	if a == Transparent {
		return Style{Fill: glassFill, Edge: edgeColor}
	}
	return Style{Fill: opaqueFill, Edge: edgeColor}
}

// appearanceOf resolves the explicit appearance key, falling back to the material tag.
func appearanceOf(explicit, material string) (Appearance, bool) {
	switch strings.ToLower(strings.TrimSpace(explicit)) {
	case "transparent":
		return Transparent, true
	case "opaque":
		return Opaque, true
	case "":
		if strings.Contains(material, GlassMarker) {
			return Transparent, true
		}
		return Opaque, true
	}
	return Opaque, false
}

func alpha8(a Real) uint8 {
	if a <= 0 {
		return 0
	}
	if a >= 1 {
		return 0xFF
	}
	return uint8(a*255 + 0.5)
}
