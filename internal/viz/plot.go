package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/odelab/internal/analysis"
)

// Plot draws curves as an ascii chart. Empty curves are skipped; when none
// is left the result is a one-line notice.
func Plot(curves []analysis.Curve, v analysis.View, width, height int, theme Theme) string {
	var (
		data    [][]float64
		colors  []asciigraph.AnsiColor
		legends []string
		first   analysis.Curve
	)
	for _, c := range curves {
		if c.Series.Len() == 0 {
			continue
		}
		if data == nil {
			first = c
		}
		ys := c.Series.Ys
		if len(ys) == 1 {
			// asciigraph interpolates between samples
			ys = []float64{ys[0], ys[0]}
		}
		data = append(data, ys)
		colors = append(colors, theme.seriesColor(int(c.Method)))
		legends = append(legends, c.Method.Label())
	}
	if len(data) == 0 {
		return fmt.Sprintf("%s: no samples", v.Title())
	}

	xName, _ := v.Axes()
	x0 := first.Series.Xs[0]
	xn, _ := first.Series.Last()
	caption := fmt.Sprintf("%s  (%s %g to %g, %d points)", v.Title(), xName, x0, xn, first.Series.Len())

	return asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(3),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
	)
}
