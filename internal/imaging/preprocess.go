package imaging

import (
	"image"
	"image/draw"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// CropRegion extracts a rectangular region from an image.
//
// Parameters:
//   - img: Source image.
//   - x1, y1: Top-left corner of the region (inclusive).
//   - x2, y2: Bottom-right corner of the region (exclusive).
//
// Returns:
//   - image.Image: The cropped region with bounds anchored at (0,0).
//   - error: Non-nil if the region is inverted or falls outside the image.
func CropRegion(img image.Image, x1, y1, x2, y2 int) (image.Image, error) {
	bounds := img.Bounds()

	// Validate coordinates
	if x1 < bounds.Min.X || y1 < bounds.Min.Y || x2 > bounds.Max.X || y2 > bounds.Max.Y {
		return nil, errors.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			x1, y1, x2, y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if x1 >= x2 || y1 >= y2 {
		return nil, errors.New("invalid crop region: x1 must be < x2, y1 must be < y2")
	}

	return imaging.Crop(img, image.Rect(x1, y1, x2, y2)), nil
}

// Grayscale converts an image to 8-bit luminance.
//
// The result always has bounds anchored at (0,0), regardless of the source
// image's bounds, so downstream mask operations can index from the origin.
func Grayscale(img image.Image) *image.Gray {
	src := imaging.Grayscale(img)
	gray := image.NewGray(src.Bounds())
	draw.Draw(gray, gray.Bounds(), src, image.Point{}, draw.Src)
	return gray
}

// Blur applies a Gaussian blur with the given radius in pixels.
//
// A radius of 4 suppresses ripple and reflection texture on open water
// while keeping the shoreline edge intact. Non-positive radii return the
// input unchanged.
func Blur(gray *image.Gray, radius float64) *image.Gray {
	if radius <= 0 {
		return gray
	}
	blurred := blur.Gaussian(gray, radius)
	out := image.NewGray(blurred.Bounds())
	draw.Draw(out, out.Bounds(), blurred, image.Point{}, draw.Src)
	return out
}

// ThresholdInv produces a binary mask that is foreground (255) where the
// source is darker than level and background (0) elsewhere.
//
// The inversion makes the dark water region the foreground so that contour
// tracing follows the shoreline rather than the land.
func ThresholdInv(gray *image.Gray, level uint8) *image.Gray {
	th := segment.Threshold(gray, level)
	inv := imaging.Invert(th)
	out := image.NewGray(inv.Bounds())
	draw.Draw(out, out.Bounds(), inv, image.Point{}, draw.Src)
	return out
}

// OtsuLevel computes a global threshold for gray by maximizing the
// between-class variance of the luminance histogram.
//
// Returns the level that best separates the image into dark and bright
// populations, or 0 when the histogram has a single occupied bin. Callers
// generally pass the result to ThresholdInv.
func OtsuLevel(gray *image.Gray) uint8 {
	var hist [256]int
	bounds := gray.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total == 0 {
		return 0
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			hist[gray.GrayAt(x, y).Y]++
		}
	}

	var sum float64
	for i, n := range hist {
		sum += float64(i) * float64(n)
	}

	var (
		sumBack    float64
		weightBack int
		maxVar     float64
		level      uint8
	)
	for i := 0; i < 256; i++ {
		weightBack += hist[i]
		if weightBack == 0 {
			continue
		}
		weightFore := total - weightBack
		if weightFore == 0 {
			break
		}
		sumBack += float64(i) * float64(hist[i])

		meanBack := sumBack / float64(weightBack)
		meanFore := (sum - sumBack) / float64(weightFore)
		diff := meanBack - meanFore
		betweenVar := float64(weightBack) * float64(weightFore) * diff * diff
		if betweenVar > maxVar {
			maxVar = betweenVar
			level = uint8(i)
		}
	}
	return level
}
