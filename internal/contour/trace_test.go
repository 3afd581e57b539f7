package contour

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillRect marks a rectangle of mask pixels as foreground.
func fillRect(mask *image.Gray, r image.Rectangle) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			mask.SetGray(x, y, color.Gray{Y: 255})
		}
	}
}

func TestFindExternal_SingleBlock(t *testing.T) {
	mask := image.NewGray(image.Rect(0, 0, 8, 8))
	fillRect(mask, image.Rect(3, 2, 5, 4))

	contours := FindExternal(mask)
	require.Len(t, contours, 1)

	// Clockwise ring from the top-left pixel.
	want := Contour{{3, 2}, {4, 2}, {4, 3}, {3, 3}}
	assert.Equal(t, want, contours[0])
}

func TestFindExternal_BlockGeometry(t *testing.T) {
	mask := image.NewGray(image.Rect(0, 0, 30, 20))
	fillRect(mask, image.Rect(5, 5, 15, 11))

	contours := FindExternal(mask)
	require.Len(t, contours, 1)
	ring := contours[0]

	// Boundary pixel count of a 10x6 block.
	assert.Len(t, ring, 28)
	assert.Equal(t, image.Rect(5, 5, 15, 11), ring.BoundingBox())
	// Shoelace area over pixel centers spans (w-1)*(h-1).
	assert.Equal(t, 45.0, ring.Area())
}

func TestFindExternal_ScanOrder(t *testing.T) {
	mask := image.NewGray(image.Rect(0, 0, 40, 40))
	// A small blob above, a large one below.
	fillRect(mask, image.Rect(2, 2, 6, 6))
	fillRect(mask, image.Rect(10, 20, 30, 35))

	contours := FindExternal(mask)
	require.Len(t, contours, 2)
	assert.Equal(t, image.Pt(2, 2), contours[0][0])
	assert.Equal(t, image.Pt(10, 20), contours[1][0])

	largest, err := Largest(contours)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(10, 20, 30, 35), largest.BoundingBox())
}

func TestFindExternal_IgnoresHoles(t *testing.T) {
	mask := image.NewGray(image.Rect(0, 0, 20, 20))
	fillRect(mask, image.Rect(4, 4, 14, 14))
	// Punch a hole; only the outer boundary must be traced.
	for y := 8; y < 10; y++ {
		for x := 8; x < 10; x++ {
			mask.SetGray(x, y, color.Gray{Y: 0})
		}
	}

	contours := FindExternal(mask)
	require.Len(t, contours, 1)
	assert.Equal(t, image.Rect(4, 4, 14, 14), contours[0].BoundingBox())
}

func TestFindExternal_BorderBlob(t *testing.T) {
	mask := image.NewGray(image.Rect(0, 0, 10, 10))
	fillRect(mask, image.Rect(0, 0, 4, 3))

	contours := FindExternal(mask)
	require.Len(t, contours, 1)
	assert.Equal(t, image.Rect(0, 0, 4, 3), contours[0].BoundingBox())
}

func TestFindExternal_DropsSpecks(t *testing.T) {
	mask := image.NewGray(image.Rect(0, 0, 10, 10))
	mask.SetGray(5, 5, color.Gray{Y: 255})

	assert.Empty(t, FindExternal(mask))
}

func TestFindExternal_EmptyMask(t *testing.T) {
	mask := image.NewGray(image.Rect(0, 0, 10, 10))

	contours := FindExternal(mask)
	assert.Empty(t, contours)

	_, err := Largest(contours)
	assert.ErrorIs(t, err, ErrNoContours)
}

func TestFindExternal_OffsetBounds(t *testing.T) {
	// Masks not anchored at the origin report ring coordinates relative
	// to their bounds minimum.
	mask := image.NewGray(image.Rect(100, 50, 120, 70))
	fillRect(mask, image.Rect(105, 55, 110, 60))

	contours := FindExternal(mask)
	require.Len(t, contours, 1)
	assert.Equal(t, image.Pt(5, 5), contours[0][0])
}
