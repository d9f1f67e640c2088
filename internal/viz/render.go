package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/rlocus/internal/analysis"
)

const (
	PoleMarker      = '×'
	ZeroMarker      = '○'
	BreakawayMarker = '◆'
)

// Layers selects what RenderReport draws. Poles and zeros are always drawn.
type Layers struct {
	Axes       bool
	Locus      bool
	Asymptotes bool
	Breakaway  bool
}

// AllLayers draws everything.
var AllLayers = Layers{Axes: true, Locus: true, Asymptotes: true, Breakaway: true}

// Draw renders the report's landmarks onto a plane sized w×h cells.
func Draw(r *analysis.Report, w, h int, layers Layers) *Plane {
	p := NewPlane(w, h, r.ScanX, r.ScanY)

	if layers.Axes {
		if x, _, ok := p.Pixel(complex(0, p.Y.Min)); ok {
			p.DrawLine(x, 0, x, p.Height*4-1)
		}
		if _, y, ok := p.Pixel(complex(p.X.Min, 0)); ok {
			p.DrawLine(0, y, p.Width*2-1, y)
		}
	}

	if layers.Asymptotes && r.Centroid != nil {
		c := r.Centroid.Complex()
		reach := math.Hypot(p.X.Max-p.X.Min, p.Y.Max-p.Y.Min)
		for _, deg := range r.Asymptotes {
			rad := deg * math.Pi / 180
			end := c + complex(reach*math.Cos(rad), reach*math.Sin(rad))
			p.Line(c, end)
		}
	}

	if layers.Locus {
		for _, s := range r.Locus {
			p.Plot(s.Complex())
		}
	}

	if layers.Breakaway {
		for _, b := range r.Breakaway {
			p.MarkAt(complex(b, 0), BreakawayMarker)
		}
	}
	for _, z := range r.Zeros {
		p.MarkAt(z.Complex(), ZeroMarker)
	}
	for _, pole := range r.Poles {
		p.MarkAt(pole.Complex(), PoleMarker)
	}
	return p
}

// RenderReport draws the report and colors it with theme.
func RenderReport(r *analysis.Report, w, h int, layers Layers, theme Theme) string {
	p := Draw(r, w, h, layers)

	locusStyle := lipgloss.NewStyle().Foreground(theme.Locus)
	markerStyles := map[rune]lipgloss.Style{
		PoleMarker:      lipgloss.NewStyle().Bold(true).Foreground(theme.Pole),
		ZeroMarker:      lipgloss.NewStyle().Bold(true).Foreground(theme.Zero),
		BreakawayMarker: lipgloss.NewStyle().Bold(true).Foreground(theme.Breakaway),
	}

	var b strings.Builder
	for _, row := range p.Grid {
		var run strings.Builder
		flush := func() {
			if run.Len() > 0 {
				b.WriteString(locusStyle.Render(run.String()))
				run.Reset()
			}
		}
		for _, cell := range row {
			if st, ok := markerStyles[cell]; ok {
				flush()
				b.WriteString(st.Render(string(cell)))
				continue
			}
			run.WriteRune(cell)
		}
		flush()
		b.WriteByte('\n')
	}
	return b.String()
}

// Summary lists the landmarks of a report as styled text.
func Summary(r *analysis.Report, theme Theme) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(theme.Title)
	label := lipgloss.NewStyle().Foreground(theme.Label)
	value := lipgloss.NewStyle().Bold(true).Foreground(theme.Value)

	line := func(name, v string) string {
		return label.Render(fmt.Sprintf("%-12s", name)) + " " + value.Render(v) + "\n"
	}

	var b strings.Builder
	b.WriteString(title.Render("root locus: "+r.Name) + "\n")
	b.WriteString(line("poles", formatPoints(r.Poles)))
	b.WriteString(line("zeros", formatPoints(r.Zeros)))
	if r.Centroid != nil {
		b.WriteString(line("centroid", fmt.Sprintf("%.5g", r.Centroid.Re)))
		b.WriteString(line("asymptotes", formatDegrees(r.Asymptotes)))
	} else {
		b.WriteString(line("asymptotes", "none (n <= m)"))
	}
	b.WriteString(line("segments", formatSegments(r)))
	b.WriteString(line("breakaway", formatFloats(r.Breakaway)))
	for _, d := range r.Departures {
		b.WriteString(line("departure", fmt.Sprintf("%s at %s", fmtDeg(d.Degrees), formatPoint(d.At))))
	}
	for _, a := range r.Arrivals {
		b.WriteString(line("arrival", fmt.Sprintf("%s at %s", fmtDeg(a.Degrees), formatPoint(a.At))))
	}
	b.WriteString(line("samples", fmt.Sprintf("%d", len(r.Locus))))
	return b.String()
}

func formatPoint(p analysis.Point) string {
	if p.Im == 0 {
		return fmt.Sprintf("%.4g", p.Re)
	}
	return fmt.Sprintf("%.4g%+.4gi", p.Re, p.Im)
}

func formatPoints(ps []analysis.Point) string {
	if len(ps) == 0 {
		return "-"
	}
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = formatPoint(p)
	}
	return strings.Join(parts, ", ")
}

func formatFloats(vs []float64) string {
	if len(vs) == 0 {
		return "-"
	}
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprintf("%.5f", v)
	}
	return strings.Join(parts, ", ")
}

func formatDegrees(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmtDeg(v)
	}
	return strings.Join(parts, ", ")
}

func fmtDeg(v float64) string {
	return fmt.Sprintf("%.2f°", v)
}

func formatSegments(r *analysis.Report) string {
	if len(r.Segments) == 0 {
		return "-"
	}
	parts := make([]string, len(r.Segments))
	for i, g := range r.Segments {
		lo := "-∞"
		if !math.IsInf(g.Min, -1) {
			lo = fmt.Sprintf("%.4g", g.Min)
		}
		parts[i] = fmt.Sprintf("[%s, %.4g]", lo, g.Max)
	}
	return strings.Join(parts, " ")
}
