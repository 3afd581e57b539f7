package render

import (
	"image"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/surveykit/pondtrace/internal/contour"
	"github.com/surveykit/pondtrace/internal/measure"
)

var overlayFont *truetype.Font

// init sets up the font used for overlay captions.
func init() {
	var err error
	overlayFont, err = truetype.Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}
}

// SaveOverlay draws the extraction back onto the photograph and writes the
// result as PNG: the smoothed shoreline in the outline color, the
// simplified polygon's vertices as light dots, and a caption with the
// headline numbers. The overlay is the visual check that the trace follows
// the real shoreline; outlinePixels must therefore be in pixel
// coordinates, not meters.
func SaveOverlay(photo image.Image, simplified contour.Contour, outlinePixels []r2.Point, survey *measure.Survey, path string) error {
	if len(outlinePixels) < 3 {
		return errors.New("outline needs at least 3 points")
	}
	pal := DefaultPalette()
	dc := gg.NewContextForImage(photo)

	// Shoreline.
	dc.MoveTo(outlinePixels[0].X, outlinePixels[0].Y)
	for _, pt := range outlinePixels[1:] {
		dc.LineTo(pt.X, pt.Y)
	}
	dc.ClosePath()
	dc.SetColor(WithAlpha(pal.Outline, 230))
	dc.SetLineWidth(3)
	dc.Stroke()

	// Simplified vertices.
	dc.SetColor(pal.VertexMarker())
	for _, pt := range simplified {
		dc.DrawCircle(float64(pt.X), float64(pt.Y), 2.5)
		dc.Fill()
	}

	// Caption with a dark offset behind it so it reads on any photo.
	if survey != nil {
		pr := message.NewPrinter(language.English)
		caption := pr.Sprintf("%.0f m² · %.1f × %.1f m",
			survey.SurfaceAreaM2, survey.WidthM, survey.HeightM)
		dc.SetFontFace(truetype.NewFace(overlayFont, &truetype.Options{Size: 18}))
		dc.SetColor(pal.Ink)
		dc.DrawString(caption, 13, 25)
		dc.SetColor(pal.Glow)
		dc.DrawString(caption, 12, 24)
	}

	return errors.Wrap(dc.SavePNG(path), "saving overlay")
}
