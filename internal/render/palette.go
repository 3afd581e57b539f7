package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the named colors of the survey graphics.
type Palette struct {
	Water      colorful.Color // pond fill
	Outline    colorful.Color // shoreline stroke
	Glow       colorful.Color // inner highlight stroke
	Ink        colorful.Color // text and scale bar
	Spine      colorful.Color // axis lines
	Background colorful.Color // figure background
	Grid       colorful.Color // grid lines
}

// DefaultPalette returns the standard survey figure colors: sky-blue water
// with a dark blue shoreline on a near-white background, slate ink.
func DefaultPalette() Palette {
	return Palette{
		Water:      mustHex("#87CEEB"),
		Outline:    mustHex("#1E3F66"),
		Glow:       mustHex("#FFFFFF"),
		Ink:        mustHex("#2C3E50"),
		Spine:      mustHex("#7F8C8D"),
		Background: mustHex("#F8F9F9"),
		Grid:       mustHex("#808080"),
	}
}

// VertexMarker is the fill for simplified-polygon vertices on the overlay,
// a light blend of water and glow that stays visible on photographs.
func (p Palette) VertexMarker() colorful.Color {
	return p.Water.BlendLab(p.Glow, 0.7).Clamped()
}

// WithAlpha returns c with the given 8-bit alpha.
func WithAlpha(c colorful.Color, alpha uint8) color.Color {
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
