package render

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surveykit/pondtrace/internal/measure"
)

// circleOutline generates n points on a circle in meters.
func circleOutline(cx, cy, r float64, n int) []r2.Point {
	pts := make([]r2.Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = r2.Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
	}
	return pts
}

func testSurvey() *measure.Survey {
	return &measure.Survey{
		SurfaceAreaM2:    2827.4,
		WidthM:           60,
		HeightM:          60,
		ShorelineM:       188.5,
		RawPoints:        400,
		SimplifiedPoints: 24,
		OutlinePoints:    500,
		MetersPerPixel:   0.5,
		ScaleDenominator: 2,
	}
}

func TestSaveFigure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "figure.png")

	err := SaveFigure(circleOutline(50, 50, 30, 64), testSurvey(), FigureOptions{
		Title: "Reflection Pond\nHydraulic Analysis Model",
		Path:  path,
	})
	require.NoError(t, err)

	stat, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, stat.Size())
}

func TestSaveFigure_ExplicitScaleBar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "figure.png")

	err := SaveFigure(circleOutline(0, 0, 100, 48), testSurvey(), FigureOptions{
		Path:           path,
		ScaleBarMeters: 50,
	})
	require.NoError(t, err)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestSaveFigure_Invalid(t *testing.T) {
	dir := t.TempDir()

	err := SaveFigure(circleOutline(0, 0, 10, 2), testSurvey(), FigureOptions{
		Path: filepath.Join(dir, "f.png"),
	})
	assert.Error(t, err)

	err = SaveFigure(circleOutline(0, 0, 10, 32), nil, FigureOptions{
		Path: filepath.Join(dir, "f.png"),
	})
	assert.Error(t, err)

	// Collinear outline has no Y extent.
	flat := []r2.Point{{X: 0, Y: 5}, {X: 10, Y: 5}, {X: 20, Y: 5}}
	err = SaveFigure(flat, testSurvey(), FigureOptions{
		Path: filepath.Join(dir, "f.png"),
	})
	assert.Error(t, err)
}

func TestNiceLength(t *testing.T) {
	tests := []struct {
		target float64
		want   float64
	}{
		{47.5, 50},
		{10, 10},
		{8, 10},
		{30, 20},
		{0.3, 0.2},
		{120, 100},
		{-5, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, niceLength(tt.target), "target %g", tt.target)
	}
}
