package export

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/san-kum/rlocus/internal/analysis"
)

var (
	locusColor     = color.RGBA{R: 0, G: 160, B: 60, A: 255}
	poleColor      = color.RGBA{R: 220, G: 0, B: 80, A: 255}
	zeroColor      = color.RGBA{R: 0, G: 120, B: 220, A: 255}
	breakawayColor = color.RGBA{R: 230, G: 170, B: 0, A: 255}
	asymptoteColor = color.RGBA{R: 255, G: 136, B: 0, A: 255}
)

// LocusPlot builds a gonum plot of the report over its scan window.
func LocusPlot(r *analysis.Report) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "root locus: " + r.Name
	p.X.Label.Text = "Re(s)"
	p.Y.Label.Text = "Im(s)"
	p.Add(plotter.NewGrid())

	if r.Centroid != nil {
		reach := math.Hypot(r.ScanX.Max-r.ScanX.Min, r.ScanY.Max-r.ScanY.Min)
		for i, deg := range r.Asymptotes {
			rad := deg * math.Pi / 180
			ray := plotter.XYs{
				{X: r.Centroid.Re, Y: r.Centroid.Im},
				{X: r.Centroid.Re + reach*math.Cos(rad), Y: r.Centroid.Im + reach*math.Sin(rad)},
			}
			l, err := plotter.NewLine(ray)
			if err != nil {
				return nil, fmt.Errorf("asymptote: %w", err)
			}
			l.LineStyle.Color = asymptoteColor
			l.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
			p.Add(l)
			if i == 0 {
				p.Legend.Add("asymptotes", l)
			}
		}
	}

	series := []struct {
		name  string
		xys   plotter.XYs
		shape draw.GlyphDrawer
		color color.Color
		size  vg.Length
	}{
		{"locus", toXYs(r.Locus), draw.CircleGlyph{}, locusColor, vg.Points(1)},
		{"breakaway", realXYs(r.Breakaway), draw.PyramidGlyph{}, breakawayColor, vg.Points(4)},
		{"zeros", toXYs(r.Zeros), draw.RingGlyph{}, zeroColor, vg.Points(4)},
		{"poles", toXYs(r.Poles), draw.CrossGlyph{}, poleColor, vg.Points(4)},
	}
	for _, s := range series {
		if len(s.xys) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(s.xys)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.name, err)
		}
		sc.GlyphStyle.Shape = s.shape
		sc.GlyphStyle.Color = s.color
		sc.GlyphStyle.Radius = s.size
		p.Add(sc)
		p.Legend.Add(s.name, sc)
	}

	p.X.Min, p.X.Max = r.ScanX.Min, r.ScanX.Max
	p.Y.Min, p.Y.Max = r.ScanY.Min, r.ScanY.Max
	p.Legend.Top = true
	return p, nil
}

// WritePNG renders the report as a width×height point PNG.
func WritePNG(w io.Writer, r *analysis.Report, width, height vg.Length) error {
	p, err := LocusPlot(r)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// SavePlot writes the report plot to path; the format follows the
// extension (png, svg, pdf).
func SavePlot(path string, r *analysis.Report, width, height vg.Length) error {
	p, err := LocusPlot(r)
	if err != nil {
		return err
	}
	return p.Save(width, height, path)
}

func toXYs(ps []analysis.Point) plotter.XYs {
	xys := make(plotter.XYs, len(ps))
	for i, p := range ps {
		xys[i] = plotter.XY{X: p.Re, Y: p.Im}
	}
	return xys
}

func realXYs(vs []float64) plotter.XYs {
	xys := make(plotter.XYs, len(vs))
	for i, v := range vs {
		xys[i].X = v
	}
	return xys
}
