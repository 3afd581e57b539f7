package contour

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/interp"
)

// smoothWrap is how many ring points are mirrored across the seam before
// spline fitting, so the fitted curve carries the same local shape on both
// sides of the closure.
const smoothWrap = 4

// Smooth turns a simplified ring into a dense, visually smooth closed
// outline.
//
// The ring is relaxed by neighbor averaging, then X and Y are fitted as
// periodic functions of the cumulative chord length with Akima splines and
// resampled uniformly. factor controls the relaxation strength: every
// 0.005 adds one averaging pass, and 0 disables relaxation. The result has
// max(minSamples, 3*len(ring)) points covering the closed curve exactly
// once, with no duplicate closing point.
//
// Returns ErrDegenerateContour when fewer than 3 distinct points remain
// after removing consecutive duplicates.
func Smooth(c Contour, factor float64, minSamples int) ([]r2.Point, error) {
	ring := dedupe(c)
	n := len(ring)
	if n < 3 {
		return nil, ErrDegenerateContour
	}

	pts := ring.Points()
	if passes := int(math.Round(factor * 200)); passes > 0 {
		pts = relax(pts, passes)
	}

	// Cumulative chord length; ts[n] closes the ring.
	ts := make([]float64, n+1)
	for i := 1; i <= n; i++ {
		prev, cur := pts[i-1], pts[i%n]
		ts[i] = ts[i-1] + math.Hypot(cur.X-prev.X, cur.Y-prev.Y)
	}
	total := ts[n]
	if total <= 0 {
		return nil, errors.Wrap(ErrDegenerateContour, "zero-length outline")
	}

	// Wrap the window so the spline sees the curve continue past the seam.
	// Tiny rings get a full extra turn of context instead of four points.
	wrap := smoothWrap
	if wrap > n {
		wrap = n
	}
	m := n + 2*wrap + 1
	tpad := make([]float64, 0, m)
	xpad := make([]float64, 0, m)
	ypad := make([]float64, 0, m)
	for j := -wrap; j <= n+wrap; j++ {
		var t float64
		switch {
		case j < 0:
			t = ts[n+j] - total
		case j >= n:
			t = ts[j-n] + total
		default:
			t = ts[j]
		}
		p := pts[((j%n)+n)%n]
		tpad = append(tpad, t)
		xpad = append(xpad, p.X)
		ypad = append(ypad, p.Y)
	}

	var sx, sy interp.AkimaSpline
	if err := sx.Fit(tpad, xpad); err != nil {
		return nil, errors.Wrap(err, "fitting x spline")
	}
	if err := sy.Fit(tpad, ypad); err != nil {
		return nil, errors.Wrap(err, "fitting y spline")
	}

	samples := minSamples
	if 3*n > samples {
		samples = 3 * n
	}
	if samples < 3 {
		samples = 3
	}
	out := make([]r2.Point, samples)
	for i := range out {
		t := total * float64(i) / float64(samples)
		out[i] = r2.Point{X: sx.Predict(t), Y: sy.Predict(t)}
	}
	return out, nil
}

// relax applies periodic neighbor averaging: each pass blends every point
// halfway toward the midpoint of its ring neighbors.
func relax(pts []r2.Point, passes int) []r2.Point {
	cur := append([]r2.Point(nil), pts...)
	next := make([]r2.Point, len(cur))
	n := len(cur)
	for p := 0; p < passes; p++ {
		for i := range cur {
			prev := cur[(i+n-1)%n]
			nxt := cur[(i+1)%n]
			mid := prev.Add(nxt).Mul(0.5)
			next[i] = cur[i].Mul(0.5).Add(mid.Mul(0.5))
		}
		cur, next = next, cur
	}
	return cur
}

// dedupe drops consecutive duplicate points and any trailing points equal
// to the ring start, which tracing can produce on single-pixel spurs.
func dedupe(c Contour) Contour {
	out := make(Contour, 0, len(c))
	for _, p := range c {
		if len(out) > 0 && p == out[len(out)-1] {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && out[len(out)-1] == out[0] {
		out = out[:len(out)-1]
	}
	return out
}
