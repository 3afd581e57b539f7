package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/edaniels/golog"

	"github.com/surveykit/pondtrace/internal/pipeline"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	defaults := pipeline.DefaultOptions()

	imagePath := flag.String("image", "", "path to the pond photograph")
	barPixels := flag.Float64("scale-bar-pixels", defaults.ScaleBarPixels, "length of the reference bar in pixels")
	barMeters := flag.Float64("scale-bar-meters", defaults.ScaleBarMeters, "ground length of the reference bar in meters")
	threshold := flag.Int("threshold", defaults.Threshold, "water luminance cutoff 1-255, 0 picks one automatically")
	blur := flag.Float64("blur", defaults.BlurRadius, "gaussian blur radius in pixels")
	morph := flag.Int("morph", defaults.MorphSize, "square cleanup kernel size, odd, 0 disables")
	simplify := flag.Float64("simplify", defaults.SimplifyFactor, "outline tolerance as a fraction of perimeter")
	smoothing := flag.Float64("smoothing", defaults.SmoothingFactor, "outline relaxation factor")
	samples := flag.Int("samples", defaults.MinSamples, "minimum points on the smooth outline")
	roi := flag.String("roi", "", "crop to x1,y1,x2,y2 before detection")
	title := flag.String("title", defaults.Title, "figure title")
	out := flag.String("out", defaults.FigurePath, "figure output path")
	overlay := flag.String("overlay", "", "also write the outline drawn over the photo")
	jsonOut := flag.Bool("json", false, "print the survey as JSON on stdout")
	readLabel := flag.Bool("read-scale-label", false, "read the scale bar length from text in the photo")
	debug := flag.Bool("debug", false, "enable debug logging")
	version := flag.Bool("version", false, "print version information")
	flag.Parse()

	if *version {
		fmt.Printf("pondtrace %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	logger := golog.NewDevelopmentLogger("pondtrace")
	if *debug {
		logger = golog.NewDebugLogger("pondtrace")
	}

	opts := defaults
	opts.ImagePath = *imagePath
	opts.ScaleBarPixels = *barPixels
	opts.ScaleBarMeters = *barMeters
	opts.Threshold = *threshold
	opts.BlurRadius = *blur
	opts.MorphSize = *morph
	opts.SimplifyFactor = *simplify
	opts.SmoothingFactor = *smoothing
	opts.MinSamples = *samples
	opts.Title = *title
	opts.FigurePath = *out
	opts.OverlayPath = *overlay
	opts.ReadScaleLabel = *readLabel

	if *roi != "" {
		rect, err := pipeline.ParseROI(*roi)
		if err != nil {
			logger.Fatal(err)
		}
		opts.ROI = rect
	}

	res, err := pipeline.Run(opts, logger)
	if err != nil {
		logger.Fatal(err)
	}

	if *jsonOut {
		data, err := json.MarshalIndent(res.Survey, "", "  ")
		if err != nil {
			logger.Fatal(err)
		}
		fmt.Println(string(data))
	}

	os.Exit(0)
}
