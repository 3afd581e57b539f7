package contour

import "image"

// mooreOffsets lists the 8-neighborhood clockwise starting east, in image
// coordinates (Y grows downward).
var mooreOffsets = [8]image.Point{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// dirIndex maps a unit king move back to its position in mooreOffsets.
var dirIndex = map[image.Point]int{
	{1, 0}: 0, {1, 1}: 1, {0, 1}: 2, {-1, 1}: 3,
	{-1, 0}: 4, {-1, -1}: 5, {0, -1}: 6, {1, -1}: 7,
}

// Rings shorter than this are specks left over from thresholding, not
// candidate water bodies.
const minRingPoints = 4

// FindExternal traces the outer boundary of every 8-connected foreground
// region in mask and returns one contour per region, in scan order.
//
// Foreground is any pixel with luminance >= 128. Interior holes are not
// traced. Returned coordinates are relative to the mask's bounds minimum,
// so for origin-anchored masks they are plain pixel coordinates.
func FindExternal(mask *image.Gray) []Contour {
	bounds := mask.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil
	}
	visited := make([]bool, w*h)

	var contours []Contour
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if visited[y*w+x] || !foreground(mask, bounds, image.Pt(x, y)) {
				continue
			}
			ring := traceBoundary(mask, bounds, image.Pt(x, y))
			markRegion(mask, bounds, visited, image.Pt(x, y))
			if len(ring) >= minRingPoints {
				contours = append(contours, ring)
			}
		}
	}
	return contours
}

// traceState identifies a tracing configuration: the current boundary pixel
// plus the direction back to the background pixel the walk arrived from.
// The walk is deterministic, so a repeated state means the ring is closed.
type traceState struct {
	p   image.Point
	dir int
}

// traceBoundary walks the outer boundary of the region containing start
// using Moore neighbor tracing. start must be the first pixel of its region
// in scan order, which guarantees its west neighbor is background.
func traceBoundary(mask *image.Gray, bounds image.Rectangle, start image.Point) Contour {
	const westDir = 4
	cur, dir := start, westDir
	seen := make(map[traceState]bool)
	var ring Contour

	for {
		st := traceState{cur, dir}
		if seen[st] {
			break
		}
		seen[st] = true
		ring = append(ring, cur)

		moved := false
		// Sweep clockwise starting just past the backtrack direction.
		for i := 1; i <= 8; i++ {
			d := (dir + i) % 8
			next := cur.Add(mooreOffsets[d])
			if !foreground(mask, bounds, next) {
				continue
			}
			// The neighbor checked immediately before next is background
			// and becomes the new backtrack.
			back := cur.Add(mooreOffsets[(d+7)%8])
			dir = dirIndex[back.Sub(next)]
			cur = next
			moved = true
			break
		}
		if !moved {
			// Isolated pixel.
			break
		}
	}

	// The closing pixel is implicit in a ring.
	for len(ring) > 1 && ring[len(ring)-1] == ring[0] {
		ring = ring[:len(ring)-1]
	}
	return ring
}

// markRegion flood-fills the 8-connected foreground region at seed into
// visited so the scan in FindExternal skips it.
func markRegion(mask *image.Gray, bounds image.Rectangle, visited []bool, seed image.Point) {
	w := bounds.Dx()
	visited[seed.Y*w+seed.X] = true
	stack := []image.Point{seed}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, off := range mooreOffsets {
			n := p.Add(off)
			if !foreground(mask, bounds, n) {
				continue
			}
			idx := n.Y*w + n.X
			if visited[idx] {
				continue
			}
			visited[idx] = true
			stack = append(stack, n)
		}
	}
}

func foreground(mask *image.Gray, bounds image.Rectangle, p image.Point) bool {
	if p.X < 0 || p.Y < 0 || p.X >= bounds.Dx() || p.Y >= bounds.Dy() {
		return false
	}
	return mask.GrayAt(bounds.Min.X+p.X, bounds.Min.Y+p.Y).Y >= 128
}
