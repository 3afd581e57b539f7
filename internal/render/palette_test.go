package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPalette(t *testing.T) {
	pal := DefaultPalette()

	assert.Equal(t, "#87ceeb", pal.Water.Hex())
	assert.Equal(t, "#1e3f66", pal.Outline.Hex())
	assert.Equal(t, "#2c3e50", pal.Ink.Hex())
	assert.Equal(t, "#7f8c8d", pal.Spine.Hex())
	assert.Equal(t, "#f8f9f9", pal.Background.Hex())
}

func TestWithAlpha(t *testing.T) {
	pal := DefaultPalette()

	c := WithAlpha(pal.Water, 100)

	nrgba, ok := c.(color.NRGBA)
	assert.True(t, ok)
	assert.Equal(t, color.NRGBA{R: 0x87, G: 0xce, B: 0xeb, A: 100}, nrgba)
}

func TestVertexMarker(t *testing.T) {
	pal := DefaultPalette()
	m := pal.VertexMarker()

	// Blending toward white lightens every channel.
	assert.Greater(t, m.R, pal.Water.R)
	assert.Greater(t, m.G, pal.Water.G)
	assert.Greater(t, m.B, pal.Water.B)
	assert.LessOrEqual(t, m.R, 1.0)
}
