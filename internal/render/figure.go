package render

import (
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	xfont "golang.org/x/image/font"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/surveykit/pondtrace/internal/measure"
)

// figureDPI is the raster resolution of PNG figures.
const figureDPI = 300

// FigureOptions configure the survey figure.
type FigureOptions struct {
	// Title is drawn above the plot; empty hides it. Multi-line titles
	// use \n separators.
	Title string

	// Path is the output file; the extension selects the format
	// (.png, .pdf, .svg, ...).
	Path string

	// ScaleBarMeters is the drawn reference bar length. Zero picks a
	// round length near a quarter of the plotted width.
	ScaleBarMeters float64

	// Palette overrides the figure colors; nil uses DefaultPalette.
	Palette *Palette
}

// SaveFigure renders the survey figure for an outline already scaled to
// meters.
//
// The outline is drawn as a filled polygon with a dark shoreline stroke
// and a faint inner glow, over a light grid with 12% margins. A scale bar
// sits at the bottom left, the headline numbers at the top right, and the
// extents at the bottom left corner. The figure is 14 inches wide; its
// height follows the outline's aspect ratio, so the plotted meters come
// out approximately square.
//
// The Y axis is not flipped: image-space Y grows downward, so the figure
// mirrors the photograph vertically. North-south extents are unaffected.
func SaveFigure(outlineMeters []r2.Point, survey *measure.Survey, opts FigureOptions) error {
	if len(outlineMeters) < 3 {
		return errors.New("outline needs at least 3 points")
	}
	if survey == nil {
		return errors.New("survey must not be nil")
	}
	pal := DefaultPalette()
	if opts.Palette != nil {
		pal = *opts.Palette
	}

	minX, maxX := outlineMeters[0].X, outlineMeters[0].X
	minY, maxY := outlineMeters[0].Y, outlineMeters[0].Y
	for _, pt := range outlineMeters[1:] {
		minX = math.Min(minX, pt.X)
		maxX = math.Max(maxX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxY = math.Max(maxY, pt.Y)
	}
	xRange := maxX - minX
	yRange := maxY - minY
	if xRange <= 0 || yRange <= 0 {
		return errors.New("outline has no extent")
	}
	marginX := 0.12 * xRange
	marginY := 0.12 * yRange

	p := plot.New()
	p.Title.Text = opts.Title
	p.Title.Padding = vg.Points(10)
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.Title.TextStyle.Font.Weight = xfont.WeightBold
	p.Title.TextStyle.Color = pal.Ink
	p.BackgroundColor = pal.Background

	p.X.Label.Text = "East-West Distance (meters)"
	p.Y.Label.Text = "North-South Distance (meters)"
	for _, axis := range []*plot.Axis{&p.X, &p.Y} {
		axis.Label.TextStyle.Font.Size = vg.Points(13)
		axis.Label.TextStyle.Font.Weight = xfont.WeightBold
		axis.Label.TextStyle.Color = pal.Ink
		axis.LineStyle.Width = vg.Points(1.2)
		axis.LineStyle.Color = pal.Spine
		axis.Tick.Label.Font.Size = vg.Points(10)
		axis.Tick.Label.Color = pal.Ink
		axis.Tick.LineStyle.Color = pal.Spine
	}
	p.X.Min, p.X.Max = minX-marginX, maxX+marginX
	p.Y.Min, p.Y.Max = minY-marginY, maxY+marginY

	grid := plotter.NewGrid()
	grid.Vertical.Color = WithAlpha(pal.Grid, 64)
	grid.Vertical.Width = vg.Points(0.8)
	grid.Horizontal.Color = WithAlpha(pal.Grid, 64)
	grid.Horizontal.Width = vg.Points(0.8)
	p.Add(grid)

	xys := make(plotter.XYs, len(outlineMeters))
	for i, pt := range outlineMeters {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	pond, err := plotter.NewPolygon(xys)
	if err != nil {
		return errors.Wrap(err, "building pond polygon")
	}
	pond.Color = WithAlpha(pal.Water, 230)
	pond.LineStyle.Color = WithAlpha(pal.Outline, 230)
	pond.LineStyle.Width = vg.Points(3.5)
	p.Add(pond)

	closed := append(append(plotter.XYs(nil), xys...), xys[0])
	glow, err := plotter.NewLine(closed)
	if err != nil {
		return errors.Wrap(err, "building glow line")
	}
	glow.LineStyle.Color = WithAlpha(pal.Glow, 76)
	glow.LineStyle.Width = vg.Points(1.5)
	p.Add(glow)

	if err := addScaleBar(p, pal, opts.ScaleBarMeters, marginX, marginY, xRange); err != nil {
		return err
	}
	if err := addAnnotations(p, pal, survey); err != nil {
		return err
	}

	const width = 14 * vg.Inch
	height := vg.Length(float64(width) * (yRange + 2*marginY) / (xRange + 2*marginX))
	if height < 4*vg.Inch {
		height = 4 * vg.Inch
	}
	if height > 28*vg.Inch {
		height = 28 * vg.Inch
	}
	return errors.Wrap(writeFigure(p, width, height, opts.Path), "saving figure")
}

// writeFigure rasters PNGs at figureDPI; other formats go through the
// plot package's extension-based saver.
func writeFigure(p *plot.Plot, width, height vg.Length, path string) error {
	if strings.ToLower(filepath.Ext(path)) != ".png" {
		return p.Save(width, height, path)
	}

	canvas := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(figureDPI))
	p.Draw(draw.New(canvas))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = vgimg.PngCanvas{Canvas: canvas}.WriteTo(f)
	return err
}

// addScaleBar draws the reference bar above the lower plot edge with its
// length printed over the midpoint.
func addScaleBar(p *plot.Plot, pal Palette, barMeters, marginX, marginY, xRange float64) error {
	if barMeters <= 0 {
		barMeters = niceLength(xRange / 4)
	}
	x0 := p.X.Min + marginX*0.5
	y := p.Y.Min + marginY*0.3

	bar, err := plotter.NewLine(plotter.XYs{{X: x0, Y: y}, {X: x0 + barMeters, Y: y}})
	if err != nil {
		return errors.Wrap(err, "building scale bar")
	}
	bar.LineStyle.Width = vg.Points(5)
	bar.LineStyle.Color = pal.Ink
	p.Add(bar)

	pr := message.NewPrinter(language.English)
	lbl, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: x0 + barMeters/2, Y: y + marginY*0.08}},
		Labels: []string{pr.Sprintf("%.0f METERS", barMeters)},
	})
	if err != nil {
		return errors.Wrap(err, "building scale bar label")
	}
	lbl.TextStyle[0].Font.Size = vg.Points(11)
	lbl.TextStyle[0].Font.Weight = xfont.WeightBold
	lbl.TextStyle[0].Color = pal.Ink
	lbl.TextStyle[0].XAlign = text.XCenter
	lbl.TextStyle[0].YAlign = text.YBottom
	p.Add(lbl)
	return nil
}

// addAnnotations places the headline numbers at the top right and the
// extents at the bottom left, 2% in from the plot edges.
func addAnnotations(p *plot.Plot, pal Palette, survey *measure.Survey) error {
	xr := p.X.Max - p.X.Min
	yr := p.Y.Max - p.Y.Min
	pr := message.NewPrinter(language.English)

	info, err := plotter.NewLabels(plotter.XYLabels{
		XYs: plotter.XYs{{X: p.X.Min + 0.98*xr, Y: p.Y.Min + 0.98*yr}},
		Labels: []string{pr.Sprintf("Surface Area: %.0f m²\nScale: 1:%.0f",
			survey.SurfaceAreaM2, survey.ScaleDenominator)},
	})
	if err != nil {
		return errors.Wrap(err, "building info label")
	}
	info.TextStyle[0].Font.Size = vg.Points(12)
	info.TextStyle[0].Font.Weight = xfont.WeightBold
	info.TextStyle[0].Color = pal.Ink
	info.TextStyle[0].XAlign = text.XRight
	info.TextStyle[0].YAlign = text.YTop
	p.Add(info)

	dims, err := plotter.NewLabels(plotter.XYLabels{
		XYs: plotter.XYs{{X: p.X.Min + 0.02*xr, Y: p.Y.Min + 0.02*yr}},
		Labels: []string{pr.Sprintf("Dimensions: %.1f × %.1f m",
			survey.WidthM, survey.HeightM)},
	})
	if err != nil {
		return errors.Wrap(err, "building dimension label")
	}
	dims.TextStyle[0].Font.Size = vg.Points(11)
	dims.TextStyle[0].Color = pal.Ink
	p.Add(dims)
	return nil
}

// niceLength rounds target to the nearest 1, 2 or 5 times a power of ten.
func niceLength(target float64) float64 {
	if target <= 0 {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(target)))
	frac := target / mag
	switch {
	case frac < 1.5:
		return mag
	case frac < 3.5:
		return 2 * mag
	case frac < 7.5:
		return 5 * mag
	default:
		return 10 * mag
	}
}
