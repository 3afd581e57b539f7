package pipeline

import (
	"image"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Options configure a single extraction run. The zero value is not usable;
// start from DefaultOptions.
type Options struct {
	// ImagePath is the photograph to trace. Required.
	ImagePath string

	// ScaleBarPixels and ScaleBarMeters calibrate the scale: the pixel
	// span of a reference feature and its real length in meters.
	ScaleBarPixels float64
	ScaleBarMeters float64

	// Threshold is the luminance cut for the inverse-binary mask
	// (1..255). Zero selects the level automatically with Otsu's method.
	Threshold int

	// BlurRadius is the Gaussian blur radius in pixels; zero disables
	// blurring.
	BlurRadius float64

	// MorphSize is the structuring element size for the close-then-open
	// cleanup. Must be odd; zero disables morphology.
	MorphSize int

	// SimplifyFactor scales the simplification tolerance: epsilon is
	// this factor times the traced perimeter.
	SimplifyFactor float64

	// SmoothingFactor controls outline relaxation before spline
	// resampling; zero keeps the polygon corners.
	SmoothingFactor float64

	// MinSamples floors the smoothed outline point count.
	MinSamples int

	// ROI restricts processing to a region of the photograph, in pixel
	// coordinates. Nil processes the full image.
	ROI *image.Rectangle

	// ReadScaleLabel OCRs the photograph for a printed scale length and,
	// when found, overrides ScaleBarMeters.
	ReadScaleLabel bool

	// Title is the figure heading.
	Title string

	// FigurePath is where the survey figure is written.
	FigurePath string

	// OverlayPath, when non-empty, also writes the photo overlay.
	OverlayPath string
}

// DefaultOptions returns the standard tuning: blur 4, threshold 80, 7x7
// morphology, simplification at 0.2% of perimeter, smoothing 0.005, and a
// 200 px = 100 m scale.
func DefaultOptions() Options {
	return Options{
		ScaleBarPixels:  200,
		ScaleBarMeters:  100,
		Threshold:       80,
		BlurRadius:      4,
		MorphSize:       7,
		SimplifyFactor:  0.002,
		SmoothingFactor: 0.005,
		MinSamples:      500,
		Title:           "Pond Outline\nSurface Survey",
		FigurePath:      "pond_survey.png",
	}
}

// Validate reports every invalid option at once.
func (o *Options) Validate() error {
	var err error
	if o.ImagePath == "" {
		err = multierr.Append(err, errors.New("image path is required"))
	}
	if o.ScaleBarPixels <= 0 {
		err = multierr.Append(err, errors.Errorf("scale bar pixel span must be positive, got %g", o.ScaleBarPixels))
	}
	if o.ScaleBarMeters <= 0 {
		err = multierr.Append(err, errors.Errorf("scale bar length must be positive, got %g", o.ScaleBarMeters))
	}
	if o.Threshold < 0 || o.Threshold > 255 {
		err = multierr.Append(err, errors.Errorf("threshold must be in 0..255, got %d", o.Threshold))
	}
	if o.BlurRadius < 0 {
		err = multierr.Append(err, errors.Errorf("blur radius must not be negative, got %g", o.BlurRadius))
	}
	if o.MorphSize < 0 || (o.MorphSize > 0 && o.MorphSize%2 == 0) {
		err = multierr.Append(err, errors.Errorf("morphology size must be odd or zero, got %d", o.MorphSize))
	}
	if o.SimplifyFactor < 0 {
		err = multierr.Append(err, errors.Errorf("simplify factor must not be negative, got %g", o.SimplifyFactor))
	}
	if o.SmoothingFactor < 0 {
		err = multierr.Append(err, errors.Errorf("smoothing factor must not be negative, got %g", o.SmoothingFactor))
	}
	if o.MinSamples < 3 {
		err = multierr.Append(err, errors.Errorf("minimum sample count must be at least 3, got %d", o.MinSamples))
	}
	if o.FigurePath == "" {
		err = multierr.Append(err, errors.New("figure path is required"))
	}
	if o.ROI != nil && (o.ROI.Dx() <= 0 || o.ROI.Dy() <= 0) {
		err = multierr.Append(err, errors.Errorf("region of interest %v is empty", *o.ROI))
	}
	return err
}

// ParseROI parses a region of interest given as "x1,y1,x2,y2".
func ParseROI(s string) (*image.Rectangle, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, errors.Errorf("region must be x1,y1,x2,y2, got %q", s)
	}
	vals := make([]int, 4)
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, errors.Wrapf(err, "region coordinate %d", i+1)
		}
		vals[i] = v
	}
	r := image.Rect(vals[0], vals[1], vals[2], vals[3])
	if r.Dx() == 0 || r.Dy() == 0 {
		return nil, errors.Errorf("region %q is empty", s)
	}
	return &r, nil
}
