package contour

import (
	"image"
	"math"
)

// Simplify reduces a closed ring to its structurally significant vertices
// using the Ramer-Douglas-Peucker algorithm with tolerance epsilon, in
// pixels.
//
// A closed ring has no natural endpoints, so it is split at the vertex
// farthest from the first point and each half is simplified as an open
// polyline. Rings of three or fewer points, or a non-positive epsilon,
// return an unmodified copy.
//
// Aggressive tolerances can collapse a ring below 3 points; callers that
// need an area should reject such results.
func Simplify(c Contour, epsilon float64) Contour {
	n := len(c)
	if n <= 3 || epsilon <= 0 {
		return append(Contour(nil), c...)
	}

	// Split at the vertex farthest from c[0]. Both anchors survive
	// simplification, so the two halves share exact endpoints.
	far, maxD := 1, -1.0
	for i := 1; i < n; i++ {
		dx := float64(c[i].X - c[0].X)
		dy := float64(c[i].Y - c[0].Y)
		if d := dx*dx + dy*dy; d > maxD {
			far, maxD = i, d
		}
	}

	firstHalf := rdp(c[:far+1], epsilon)
	secondArc := append(append(Contour(nil), c[far:]...), c[0])
	secondHalf := rdp(secondArc, epsilon)

	out := append(Contour(nil), firstHalf[:len(firstHalf)-1]...)
	out = append(out, secondHalf[:len(secondHalf)-1]...)
	return out
}

// rdp simplifies an open polyline, always keeping both endpoints.
func rdp(pts Contour, epsilon float64) Contour {
	if len(pts) < 3 {
		return append(Contour(nil), pts...)
	}
	a, b := pts[0], pts[len(pts)-1]
	idx, maxD := 0, 0.0
	for i := 1; i < len(pts)-1; i++ {
		if d := perpDistance(pts[i], a, b); d > maxD {
			idx, maxD = i, d
		}
	}
	if maxD <= epsilon {
		return Contour{a, b}
	}
	left := rdp(pts[:idx+1], epsilon)
	right := rdp(pts[idx:], epsilon)
	out := append(Contour(nil), left[:len(left)-1]...)
	return append(out, right...)
}

// perpDistance returns the distance from p to the line through a and b,
// falling back to point distance when a and b coincide.
func perpDistance(p, a, b image.Point) float64 {
	abx := float64(b.X - a.X)
	aby := float64(b.Y - a.Y)
	apx := float64(p.X - a.X)
	apy := float64(p.Y - a.Y)
	length := math.Hypot(abx, aby)
	if length == 0 {
		return math.Hypot(apx, apy)
	}
	return math.Abs(abx*apy-aby*apx) / length
}
