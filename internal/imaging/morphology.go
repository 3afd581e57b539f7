package imaging

import (
	"image"
	"image/color"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// MaskToDense converts a binary mask into a float64 matrix with one row per
// image row. Pixel values carry over unchanged (0 or 255).
func MaskToDense(mask *image.Gray) *mat.Dense {
	bounds := mask.Bounds()
	h, w := bounds.Dy(), bounds.Dx()
	m := mat.NewDense(h, w, nil)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(y, x, float64(mask.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y))
		}
	}
	return m
}

// DenseToMask converts a matrix back into a binary mask anchored at (0,0).
// Values of 128 and above become foreground (255), the rest background (0).
func DenseToMask(m *mat.Dense) *image.Gray {
	h, w := m.Dims()
	mask := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if m.At(y, x) >= 128 {
				mask.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return mask
}

// ErodeSquare erodes the mask with a k x k square structuring element: each
// output cell is the minimum over its neighborhood. k must be odd and
// positive. Border neighborhoods use clamped edge values.
func ErodeSquare(m *mat.Dense, k int) (*mat.Dense, error) {
	if err := checkKernelSize(k); err != nil {
		return nil, err
	}
	return slideSquare(m, k, func(best, v float64) bool { return v < best }, math.MaxFloat64), nil
}

// DilateSquare dilates the mask with a k x k square structuring element:
// each output cell is the maximum over its neighborhood. k must be odd and
// positive. Border neighborhoods use clamped edge values.
func DilateSquare(m *mat.Dense, k int) (*mat.Dense, error) {
	if err := checkKernelSize(k); err != nil {
		return nil, err
	}
	return slideSquare(m, k, func(best, v float64) bool { return v > best }, -math.MaxFloat64), nil
}

// OpenSquare erodes then dilates, removing foreground specks smaller than
// the structuring element without shrinking larger regions.
func OpenSquare(m *mat.Dense, k int) (*mat.Dense, error) {
	eroded, err := ErodeSquare(m, k)
	if err != nil {
		return nil, err
	}
	return DilateSquare(eroded, k)
}

// CloseSquare dilates then erodes, filling background pits and pinholes
// smaller than the structuring element.
func CloseSquare(m *mat.Dense, k int) (*mat.Dense, error) {
	dilated, err := DilateSquare(m, k)
	if err != nil {
		return nil, err
	}
	return ErodeSquare(dilated, k)
}

func checkKernelSize(k int) error {
	if k < 1 || k%2 == 0 {
		return errors.Errorf("structuring element size must be odd and positive, got %d", k)
	}
	return nil
}

// slideSquare runs a k x k min/max filter over m. The better function
// reports whether v should replace the running best, seeded with init.
func slideSquare(m *mat.Dense, k int, better func(best, v float64) bool, init float64) *mat.Dense {
	h, w := m.Dims()
	out := mat.NewDense(h, w, nil)
	half := k / 2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			best := init
			for dy := -half; dy <= half; dy++ {
				yy := clamp(y+dy, 0, h-1)
				for dx := -half; dx <= half; dx++ {
					xx := clamp(x+dx, 0, w-1)
					if v := m.At(yy, xx); better(best, v) {
						best = v
					}
				}
			}
			out.Set(y, x, best)
		}
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
