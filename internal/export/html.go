package export

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/san-kum/odelab/internal/analysis"
)

// NewLineChart builds an interactive chart of one view of r.
func NewLineChart(r *analysis.Report, v analysis.View) *charts.Line {
	xName, yName := v.Axes()

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "odelab", Theme: "dark", Width: "900px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{Title: v.Title(), Subtitle: subtitle(r)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: xName, NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: yName, NameLocation: "middle", NameGap: 50}),
	)

	for _, c := range r.Curves(v) {
		data := make([]opts.LineData, c.Series.Len())
		for i := range c.Series.Xs {
			data[i] = opts.LineData{Value: []interface{}{c.Series.Xs[i], c.Series.Ys[i]}}
		}
		line.AddSeries(c.Method.Label(), data,
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: MethodColor(c.Method)}),
		)
	}
	return line
}

// WriteHTML renders one chart per view on a single page.
func WriteHTML(w io.Writer, r *analysis.Report) error {
	page := components.NewPage()
	for _, v := range analysis.Views() {
		page.AddCharts(NewLineChart(r, v))
	}
	return page.Render(w)
}

func subtitle(r *analysis.Report) string {
	p := r.Params
	return fmt.Sprintf("%s  x0=%g y0=%g grid=%g step=%g  s0=%g sf=%g sstep=%g",
		r.Equation, p.X0, p.Y0, p.GridSize, p.Step, p.S0, p.Sf, p.SStep)
}
