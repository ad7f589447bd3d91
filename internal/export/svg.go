package export

import (
	"fmt"
	"html"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/odelab/internal/analysis"
)

type bounds struct {
	minX, maxX, minY, maxY float64
}

// curveBounds spans every non-empty curve with 10% padding.
func curveBounds(curves []analysis.Curve) (bounds, bool) {
	var b bounds
	found := false
	for _, c := range curves {
		if c.Series.Len() == 0 {
			continue
		}
		lox, hix := floats.Min(c.Series.Xs), floats.Max(c.Series.Xs)
		loy, hiy := floats.Min(c.Series.Ys), floats.Max(c.Series.Ys)
		if !found {
			b = bounds{lox, hix, loy, hiy}
			found = true
			continue
		}
		b.minX, b.maxX = min(b.minX, lox), max(b.maxX, hix)
		b.minY, b.maxY = min(b.minY, loy), max(b.maxY, hiy)
	}
	if !found {
		return b, false
	}

	rangeX := b.maxX - b.minX
	rangeY := b.maxY - b.minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	b.minX -= rangeX * 0.1
	b.maxX += rangeX * 0.1
	b.minY -= rangeY * 0.1
	b.maxY += rangeY * 0.1
	return b, true
}

// CurvesToSVG draws each curve as a polyline in its method color with a
// legend in the top left corner.
func CurvesToSVG(curves []analysis.Curve, title string, width, height int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<text x="%d" y="20" fill="#e0e0e0" font-family="monospace" font-size="14" text-anchor="middle">%s</text>
`, width, height, width, height, width/2, html.EscapeString(title)))

	b, ok := curveBounds(curves)
	if ok {
		rangeX := b.maxX - b.minX
		rangeY := b.maxY - b.minY

		legendY := 40
		for _, c := range curves {
			color := MethodColor(c.Method)
			sb.WriteString(fmt.Sprintf(`<text x="10" y="%d" fill="%s" font-family="monospace" font-size="12">%s</text>
`, legendY, color, html.EscapeString(c.Method.Label())))
			legendY += 16

			if c.Series.Len() == 0 {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color))
			for i := range c.Series.Xs {
				x := (c.Series.Xs[i] - b.minX) / rangeX * float64(width)
				y := float64(height) - (c.Series.Ys[i]-b.minY)/rangeY*float64(height)

				if i == 0 {
					sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
				} else {
					sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
				}
			}
			sb.WriteString(`"/>
`)
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// ReportToSVG renders one view of r.
func ReportToSVG(r *analysis.Report, v analysis.View, width, height int) string {
	title := fmt.Sprintf("%s: %s", v.Title(), r.Equation)
	return CurvesToSVG(r.Curves(v), title, width, height)
}
