package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/rlocus/internal/analysis"
)

// LocusToSVG draws a report on a width×height SVG: locus samples as dots,
// asymptotes as dashed rays from the centroid, breakaway points as
// diamonds, poles as crosses and zeros as circles.
func LocusToSVG(r *analysis.Report, width, height int) string {
	if r == nil || width <= 0 || height <= 0 {
		return ""
	}

	rangeX := r.ScanX.Max - r.ScanX.Min
	rangeY := r.ScanY.Max - r.ScanY.Min
	if rangeX <= 0 {
		rangeX = 1
	}
	if rangeY <= 0 {
		rangeY = 1
	}
	px := func(re float64) float64 { return (re - r.ScanX.Min) / rangeX * float64(width) }
	py := func(im float64) float64 { return float64(height) - (im-r.ScanY.Min)/rangeY*float64(height) }

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<defs><clipPath id="view"><rect width="%d" height="%d"/></clipPath></defs>
`, width, height, width, height, width, height))

	// axes
	sb.WriteString(`<g stroke="#333333" stroke-width="1">` + "\n")
	if r.ScanX.Min <= 0 && r.ScanX.Max >= 0 {
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="0" x2="%.1f" y2="%d"/>`+"\n", px(0), px(0), height))
	}
	if r.ScanY.Min <= 0 && r.ScanY.Max >= 0 {
		sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f"/>`+"\n", py(0), width, py(0)))
	}
	sb.WriteString("</g>\n")

	if r.Centroid != nil {
		reach := math.Hypot(rangeX, rangeY)
		sb.WriteString(`<g stroke="#ff8800" stroke-width="1" stroke-dasharray="6,4" clip-path="url(#view)">` + "\n")
		for _, deg := range r.Asymptotes {
			rad := deg * math.Pi / 180
			x0, y0 := r.Centroid.Re, r.Centroid.Im
			x1, y1 := x0+reach*math.Cos(rad), y0+reach*math.Sin(rad)
			sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n",
				px(x0), py(y0), px(x1), py(y1)))
		}
		sb.WriteString("</g>\n")
	}

	sb.WriteString(`<g fill="#00ff00">` + "\n")
	for _, p := range r.Locus {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="1.2"/>`+"\n", px(p.Re), py(p.Im)))
	}
	sb.WriteString("</g>\n")

	const m = 5.0
	sb.WriteString(`<g fill="#ffff00">` + "\n")
	for _, b := range r.Breakaway {
		x, y := px(b), py(0)
		sb.WriteString(fmt.Sprintf(`<polygon class="breakaway" points="%.1f,%.1f %.1f,%.1f %.1f,%.1f %.1f,%.1f"/>`+"\n",
			x, y-m, x+m, y, x, y+m, x-m, y))
	}
	sb.WriteString("</g>\n")

	sb.WriteString(`<g fill="none" stroke="#00ffff" stroke-width="2">` + "\n")
	for _, z := range r.Zeros {
		sb.WriteString(fmt.Sprintf(`<circle class="zero" cx="%.1f" cy="%.1f" r="%.1f"/>`+"\n", px(z.Re), py(z.Im), m))
	}
	sb.WriteString("</g>\n")

	sb.WriteString(`<g stroke="#ff0066" stroke-width="2">` + "\n")
	for _, p := range r.Poles {
		x, y := px(p.Re), py(p.Im)
		sb.WriteString(fmt.Sprintf(`<path class="pole" d="M%.1f,%.1f L%.1f,%.1f M%.1f,%.1f L%.1f,%.1f"/>`+"\n",
			x-m, y-m, x+m, y+m, x-m, y+m, x+m, y-m))
	}
	sb.WriteString("</g>\n")

	sb.WriteString(fmt.Sprintf(`<text x="8" y="16" fill="#aaaaaa" font-family="monospace" font-size="12">root locus: %s</text>`+"\n",
		escape(r.Name)))
	sb.WriteString("</svg>")
	return sb.String()
}

func escape(s string) string {
	return strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;").Replace(s)
}
