package imaging

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// maskWithRect builds a w x h mask with a filled foreground rectangle.
func maskWithRect(t *testing.T, w, h int, rect image.Rectangle) *image.Gray {
	t.Helper()
	mask := image.NewGray(image.Rect(0, 0, w, h))
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			mask.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	return mask
}

func countForeground(mask *image.Gray) int {
	n := 0
	b := mask.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if mask.GrayAt(x, y).Y >= 128 {
				n++
			}
		}
	}
	return n
}

func TestMaskDenseRoundTrip(t *testing.T) {
	mask := maskWithRect(t, 12, 9, image.Rect(3, 2, 8, 7))

	m := MaskToDense(mask)
	r, c := m.Dims()
	assert.Equal(t, 9, r)
	assert.Equal(t, 12, c)
	assert.Equal(t, 255.0, m.At(2, 3))
	assert.Equal(t, 0.0, m.At(0, 0))

	back := DenseToMask(m)
	assert.Equal(t, mask.Pix, back.Pix)
}

func TestErodeSquare_RemovesSpeck(t *testing.T) {
	mask := image.NewGray(image.Rect(0, 0, 10, 10))
	mask.SetGray(5, 5, color.Gray{Y: 255})

	out, err := ErodeSquare(MaskToDense(mask), 3)
	require.NoError(t, err)

	assert.Equal(t, 0, countForeground(DenseToMask(out)))
}

func TestErodeSquare_ShrinksRect(t *testing.T) {
	mask := maskWithRect(t, 20, 20, image.Rect(5, 5, 15, 15))

	out, err := ErodeSquare(MaskToDense(mask), 3)
	require.NoError(t, err)

	eroded := DenseToMask(out)
	// A 10x10 block eroded by 3x3 leaves an 8x8 core.
	assert.Equal(t, 64, countForeground(eroded))
	assert.Equal(t, uint8(255), eroded.GrayAt(10, 10).Y)
	assert.Equal(t, uint8(0), eroded.GrayAt(5, 5).Y)
}

func TestDilateSquare_GrowsPoint(t *testing.T) {
	mask := image.NewGray(image.Rect(0, 0, 10, 10))
	mask.SetGray(5, 5, color.Gray{Y: 255})

	out, err := DilateSquare(MaskToDense(mask), 3)
	require.NoError(t, err)

	assert.Equal(t, 9, countForeground(DenseToMask(out)))
}

func TestDilateSquare_ClampedAtBorder(t *testing.T) {
	mask := image.NewGray(image.Rect(0, 0, 10, 10))
	mask.SetGray(0, 0, color.Gray{Y: 255})

	out, err := DilateSquare(MaskToDense(mask), 3)
	require.NoError(t, err)

	// Only the in-bounds quarter of the neighborhood grows.
	assert.Equal(t, 4, countForeground(DenseToMask(out)))
}

func TestOpenSquare(t *testing.T) {
	mask := maskWithRect(t, 30, 30, image.Rect(5, 5, 20, 20))
	mask.SetGray(26, 26, color.Gray{Y: 255}) // isolated speck

	out, err := OpenSquare(MaskToDense(mask), 3)
	require.NoError(t, err)

	opened := DenseToMask(out)
	// The speck is gone, the block survives intact.
	assert.Equal(t, uint8(0), opened.GrayAt(26, 26).Y)
	assert.Equal(t, 225, countForeground(opened))
}

func TestCloseSquare_FillsPinhole(t *testing.T) {
	mask := maskWithRect(t, 30, 30, image.Rect(5, 5, 20, 20))
	mask.SetGray(12, 12, color.Gray{Y: 0}) // pinhole

	out, err := CloseSquare(MaskToDense(mask), 3)
	require.NoError(t, err)

	closed := DenseToMask(out)
	assert.Equal(t, uint8(255), closed.GrayAt(12, 12).Y)
	assert.Equal(t, 225, countForeground(closed))
}

func TestMorphology_KernelValidation(t *testing.T) {
	m := MaskToDense(image.NewGray(image.Rect(0, 0, 4, 4)))

	for _, k := range []int{-1, 0, 2, 4} {
		_, err := ErodeSquare(m, k)
		assert.Error(t, err, "erode k=%d", k)
		_, err = DilateSquare(m, k)
		assert.Error(t, err, "dilate k=%d", k)
	}
}
