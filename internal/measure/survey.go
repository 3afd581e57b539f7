package measure

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"github.com/surveykit/pondtrace/internal/contour"
)

// Survey is the measured result of an outline extraction.
type Survey struct {
	// SurfaceAreaM2 is the enclosed water area in square meters, computed
	// from the simplified polygon.
	SurfaceAreaM2 float64 `json:"surface_area_m2"`

	// WidthM and HeightM are the east-west and north-south extents of the
	// smoothed outline in meters.
	WidthM  float64 `json:"width_m"`
	HeightM float64 `json:"height_m"`

	// ShorelineM is the closed length of the smoothed outline in meters.
	ShorelineM float64 `json:"shoreline_m"`

	// RawPoints, SimplifiedPoints and OutlinePoints count the traced ring,
	// the simplified polygon, and the smoothed outline.
	RawPoints        int `json:"raw_points"`
	SimplifiedPoints int `json:"simplified_points"`
	OutlinePoints    int `json:"outline_points"`

	// MetersPerPixel and ScaleDenominator echo the calibration used.
	MetersPerPixel   float64 `json:"meters_per_pixel"`
	ScaleDenominator float64 `json:"scale_denominator"`
}

// Compute measures the pond from its simplified polygon and smoothed
// outline. simplified is in pixels; outlineMeters is already scaled.
//
// The caller fills RawPoints, which is not derivable from the inputs here.
func Compute(simplified contour.Contour, outlineMeters []r2.Point, s Scale) (*Survey, error) {
	if len(simplified) < 3 {
		return nil, contour.ErrDegenerateContour
	}
	if len(outlineMeters) < 3 {
		return nil, errors.New("smoothed outline has fewer than 3 points")
	}

	minX, maxX := outlineMeters[0].X, outlineMeters[0].X
	minY, maxY := outlineMeters[0].Y, outlineMeters[0].Y
	shoreline := 0.0
	for i, p := range outlineMeters {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
		q := outlineMeters[(i+1)%len(outlineMeters)]
		shoreline += math.Hypot(q.X-p.X, q.Y-p.Y)
	}

	return &Survey{
		SurfaceAreaM2:    s.Area(simplified.Area()),
		WidthM:           maxX - minX,
		HeightM:          maxY - minY,
		ShorelineM:       shoreline,
		SimplifiedPoints: len(simplified),
		OutlinePoints:    len(outlineMeters),
		MetersPerPixel:   s.MetersPerPixel,
		ScaleDenominator: s.Denominator(),
	}, nil
}
