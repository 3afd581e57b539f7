package measure

import (
	"image"
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// Scale converts pixel measurements into meters.
type Scale struct {
	// MetersPerPixel is the ground distance covered by one pixel.
	MetersPerPixel float64 `json:"meters_per_pixel"`
}

// NewScale builds a Scale from a reference feature of known length, such
// as a map scale bar: barPixels is its measured span in the photograph and
// barMeters its printed length.
//
// Returns an error when either value is not positive.
func NewScale(barPixels, barMeters float64) (Scale, error) {
	if barPixels <= 0 {
		return Scale{}, errors.Errorf("scale bar pixel span must be positive, got %g", barPixels)
	}
	if barMeters <= 0 {
		return Scale{}, errors.Errorf("scale bar length must be positive, got %g", barMeters)
	}
	return Scale{MetersPerPixel: barMeters / barPixels}, nil
}

// ScaleFromEndpoints builds a Scale from the two endpoints of a reference
// feature of known length in meters.
//
// Returns an error when the endpoints coincide or meters is not positive.
func ScaleFromEndpoints(p1, p2 image.Point, meters float64) (Scale, error) {
	px := math.Hypot(float64(p2.X-p1.X), float64(p2.Y-p1.Y))
	if px == 0 {
		return Scale{}, errors.New("scale reference endpoints coincide")
	}
	return NewScale(px, meters)
}

// Length converts a pixel distance to meters.
func (s Scale) Length(px float64) float64 {
	return px * s.MetersPerPixel
}

// Area converts a square-pixel area to square meters.
func (s Scale) Area(px2 float64) float64 {
	return px2 * s.MetersPerPixel * s.MetersPerPixel
}

// Denominator returns N for the representative fraction 1:N printed on the
// figure, the number of pixels covering one ground meter.
func (s Scale) Denominator() float64 {
	if s.MetersPerPixel == 0 {
		return 0
	}
	return 1 / s.MetersPerPixel
}

// Points converts a pixel-space outline to meters.
func (s Scale) Points(pts []r2.Point) []r2.Point {
	out := make([]r2.Point, len(pts))
	for i, p := range pts {
		out[i] = p.Mul(s.MetersPerPixel)
	}
	return out
}
