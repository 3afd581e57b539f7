// Package contour extracts and reshapes closed outlines from binary masks.
//
// The entry point is FindExternal, which walks a mask and traces the outer
// boundary of every 8-connected foreground region using Moore neighbor
// tracing. Interior holes are ignored. Largest then selects the dominant
// region, which for a pond photograph is the water body itself.
//
// A Contour is an ordered ring of pixel coordinates. The ring is implicitly
// closed: the edge from the last point back to the first is part of the
// outline, and no duplicate closing point is stored.
//
// Two reshaping stages follow tracing. Simplify reduces a ring to its
// structurally significant vertices with the Ramer-Douglas-Peucker
// algorithm, adapted to closed curves by splitting at the vertex farthest
// from the start. Smooth converts the ring into a dense, visually smooth
// outline by fitting periodic parametric splines over a chord-length
// parameterization.
//
// Complexity: tracing is O(n) in mask pixels, simplification O(v log v)
// expected in ring vertices, smoothing O(s) in requested samples.
package contour
