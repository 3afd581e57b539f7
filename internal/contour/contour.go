package contour

import (
	"image"
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

var (
	// ErrNoContours indicates a mask with no foreground regions to trace.
	ErrNoContours = errors.New("no contours found in mask")

	// ErrDegenerateContour indicates a ring with too few distinct points
	// to bound an area.
	ErrDegenerateContour = errors.New("contour has fewer than 3 points")
)

// Contour is an ordered closed ring of pixel coordinates. The closing edge
// from the last point to the first is implicit.
type Contour []image.Point

// Area returns the enclosed area in square pixels, computed with the
// shoelace formula. Orientation does not matter.
func (c Contour) Area() float64 {
	return math.Abs(c.SignedArea())
}

// SignedArea returns the shoelace area. With Y growing downward, rings
// wound clockwise on screen come out positive.
func (c Contour) SignedArea() float64 {
	if len(c) < 3 {
		return 0
	}
	sum := 0.0
	for i, p := range c {
		q := c[(i+1)%len(c)]
		sum += float64(p.X)*float64(q.Y) - float64(q.X)*float64(p.Y)
	}
	return sum / 2
}

// Perimeter returns the length of the closed ring in pixels.
func (c Contour) Perimeter() float64 {
	if len(c) < 2 {
		return 0
	}
	sum := 0.0
	for i, p := range c {
		q := c[(i+1)%len(c)]
		sum += math.Hypot(float64(q.X-p.X), float64(q.Y-p.Y))
	}
	return sum
}

// BoundingBox returns the smallest rectangle containing every ring point.
// The zero rectangle is returned for an empty ring.
func (c Contour) BoundingBox() image.Rectangle {
	if len(c) == 0 {
		return image.Rectangle{}
	}
	r := image.Rectangle{Min: c[0], Max: c[0].Add(image.Pt(1, 1))}
	for _, p := range c[1:] {
		r = r.Union(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})
	}
	return r
}

// Points converts the ring to float coordinates.
func (c Contour) Points() []r2.Point {
	pts := make([]r2.Point, len(c))
	for i, p := range c {
		pts[i] = r2.Point{X: float64(p.X), Y: float64(p.Y)}
	}
	return pts
}

// Largest returns the contour enclosing the most area.
//
// Returns ErrNoContours when the slice is empty. Ties keep the earlier
// contour, which in scan order is the one whose top edge is highest.
func Largest(contours []Contour) (Contour, error) {
	if len(contours) == 0 {
		return nil, ErrNoContours
	}
	best := contours[0]
	bestArea := best.Area()
	for _, c := range contours[1:] {
		if a := c.Area(); a > bestArea {
			best, bestArea = c, a
		}
	}
	return best, nil
}
