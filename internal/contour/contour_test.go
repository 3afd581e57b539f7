package contour

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squareRing(x, y, side int) Contour {
	return Contour{
		{X: x, Y: y},
		{X: x + side, Y: y},
		{X: x + side, Y: y + side},
		{X: x, Y: y + side},
	}
}

func TestContour_Area(t *testing.T) {
	assert.Equal(t, 100.0, squareRing(0, 0, 10).Area())
	assert.Equal(t, 100.0, squareRing(20, 30, 10).Area())
	assert.Equal(t, 0.0, Contour{{0, 0}, {5, 5}}.Area())
	assert.Equal(t, 0.0, Contour{}.Area())
}

func TestContour_SignedArea(t *testing.T) {
	ring := squareRing(0, 0, 10)
	assert.Equal(t, 100.0, ring.SignedArea())

	reversed := Contour{ring[3], ring[2], ring[1], ring[0]}
	assert.Equal(t, -100.0, reversed.SignedArea())
}

func TestContour_Perimeter(t *testing.T) {
	assert.Equal(t, 40.0, squareRing(5, 5, 10).Perimeter())

	// 3-4-5 triangle, closed.
	tri := Contour{{0, 0}, {3, 0}, {3, 4}}
	assert.Equal(t, 12.0, tri.Perimeter())

	assert.Equal(t, 0.0, Contour{{7, 7}}.Perimeter())
}

func TestContour_BoundingBox(t *testing.T) {
	ring := Contour{{2, 3}, {7, 3}, {7, 9}, {2, 9}}
	assert.Equal(t, image.Rect(2, 3, 8, 10), ring.BoundingBox())

	assert.Equal(t, image.Rectangle{}, Contour{}.BoundingBox())
	assert.Equal(t, image.Rect(4, 5, 5, 6), Contour{{4, 5}}.BoundingBox())
}

func TestContour_Points(t *testing.T) {
	ring := Contour{{1, 2}, {3, 4}}
	pts := ring.Points()
	require.Len(t, pts, 2)
	assert.Equal(t, 1.0, pts[0].X)
	assert.Equal(t, 2.0, pts[0].Y)
	assert.Equal(t, 3.0, pts[1].X)
	assert.Equal(t, 4.0, pts[1].Y)
}

func TestLargest(t *testing.T) {
	small := squareRing(0, 0, 5)
	big := squareRing(20, 20, 30)

	got, err := Largest([]Contour{small, big, squareRing(60, 0, 10)})
	require.NoError(t, err)
	assert.Equal(t, big, got)
}

func TestLargest_Empty(t *testing.T) {
	_, err := Largest(nil)
	assert.ErrorIs(t, err, ErrNoContours)
}
