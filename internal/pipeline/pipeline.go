package pipeline

import (
	"github.com/edaniels/golog"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"github.com/surveykit/pondtrace/internal/contour"
	"github.com/surveykit/pondtrace/internal/imaging"
	"github.com/surveykit/pondtrace/internal/measure"
	"github.com/surveykit/pondtrace/internal/ocr"
	"github.com/surveykit/pondtrace/internal/render"
)

// Result carries everything a run produced, for callers that want more
// than the side-effect files.
type Result struct {
	// Survey holds the measured numbers.
	Survey *measure.Survey

	// Raw and Simplified are the traced and reduced rings in pixels;
	// OutlineMeters is the smoothed outline in meters.
	Raw           contour.Contour
	Simplified    contour.Contour
	OutlineMeters []r2.Point

	// ThresholdLevel is the luminance cut actually used, after Otsu
	// selection when automatic thresholding was requested.
	ThresholdLevel uint8

	// FigurePath and OverlayPath are the files written; OverlayPath is
	// empty when no overlay was requested.
	FigurePath  string
	OverlayPath string
}

// Run executes the full extraction pipeline for one photograph.
//
// Stages follow the package doc. Errors are wrapped with the failing
// stage, so a caller can print them as-is; on error no Result is returned
// but output files written before the failure may remain.
func Run(opts Options, logger golog.Logger) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid options")
	}

	img, info, err := imaging.LoadImage(opts.ImagePath)
	if err != nil {
		return nil, errors.Wrap(err, "loading photograph")
	}
	logger.Infof("loaded %s: %dx%d %s (%s)",
		opts.ImagePath, info.Width, info.Height, info.Format, info.ColorDepth)

	if opts.ReadScaleLabel {
		text, err := ocr.ReadImageText(opts.ImagePath)
		if err != nil {
			return nil, errors.Wrap(err, "reading scale label")
		}
		if meters, ok := ocr.ParseScaleLength(text); ok {
			logger.Infof("scale label found: %g m", meters)
			opts.ScaleBarMeters = meters
		} else {
			logger.Warnf("no scale label recognized; keeping %g m", opts.ScaleBarMeters)
		}
	}

	if opts.ROI != nil {
		r := *opts.ROI
		img, err = imaging.CropRegion(img, r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
		if err != nil {
			return nil, errors.Wrap(err, "cropping region of interest")
		}
		logger.Infof("cropped to %v", r)
	}

	gray := imaging.Grayscale(img)
	gray = imaging.Blur(gray, opts.BlurRadius)

	level := uint8(opts.Threshold)
	if opts.Threshold == 0 {
		level = imaging.OtsuLevel(gray)
		logger.Infof("automatic threshold level: %d", level)
	}
	mask := imaging.ThresholdInv(gray, level)

	if opts.MorphSize > 0 {
		m := imaging.MaskToDense(mask)
		if m, err = imaging.CloseSquare(m, opts.MorphSize); err != nil {
			return nil, errors.Wrap(err, "closing mask")
		}
		if m, err = imaging.OpenSquare(m, opts.MorphSize); err != nil {
			return nil, errors.Wrap(err, "opening mask")
		}
		mask = imaging.DenseToMask(m)
	}

	pond, err := contour.Largest(contour.FindExternal(mask))
	if err != nil {
		return nil, errors.Wrap(err, "selecting pond outline")
	}
	logger.Infof("traced pond boundary: %d points", len(pond))

	simplified := contour.Simplify(pond, opts.SimplifyFactor*pond.Perimeter())
	if len(simplified) < 3 {
		return nil, errors.Wrap(contour.ErrDegenerateContour, "simplifying outline")
	}
	logger.Infof("simplified outline: %d points", len(simplified))

	outlinePixels, err := contour.Smooth(simplified, opts.SmoothingFactor, opts.MinSamples)
	if err != nil {
		return nil, errors.Wrap(err, "smoothing outline")
	}
	logger.Infof("smooth outline generated with %d points", len(outlinePixels))

	scale, err := measure.NewScale(opts.ScaleBarPixels, opts.ScaleBarMeters)
	if err != nil {
		return nil, errors.Wrap(err, "calibrating scale")
	}
	outlineMeters := scale.Points(outlinePixels)

	survey, err := measure.Compute(simplified, outlineMeters, scale)
	if err != nil {
		return nil, errors.Wrap(err, "measuring pond")
	}
	survey.RawPoints = len(pond)
	logger.Infof("pond surface area: %.2f square meters", survey.SurfaceAreaM2)
	logger.Infof("pond dimensions: %.1f x %.1f meters", survey.WidthM, survey.HeightM)
	logger.Infof("scale: 1 pixel = %.4f meters", scale.MetersPerPixel)

	if err := render.SaveFigure(outlineMeters, survey, render.FigureOptions{
		Title: opts.Title,
		Path:  opts.FigurePath,
	}); err != nil {
		return nil, errors.Wrap(err, "rendering figure")
	}
	logger.Infof("figure written to %s", opts.FigurePath)

	if opts.OverlayPath != "" {
		if err := render.SaveOverlay(img, simplified, outlinePixels, survey, opts.OverlayPath); err != nil {
			return nil, errors.Wrap(err, "rendering overlay")
		}
		logger.Infof("overlay written to %s", opts.OverlayPath)
	}

	return &Result{
		Survey:         survey,
		Raw:            pond,
		Simplified:     simplified,
		OutlineMeters:  outlineMeters,
		ThresholdLevel: level,
		FigurePath:     opts.FigurePath,
		OverlayPath:    opts.OverlayPath,
	}, nil
}
