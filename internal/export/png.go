package export

import (
	"fmt"
	"image/color"
	"io"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/odelab/internal/analysis"
)

// NewPlot builds a gonum plot of one view of r.
func NewPlot(r *analysis.Report, v analysis.View) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s: %s", v.Title(), r.Equation)
	p.X.Label.Text, p.Y.Label.Text = v.Axes()
	p.Add(plotter.NewGrid())

	for _, c := range r.Curves(v) {
		if c.Series.Len() == 0 {
			continue
		}
		pts := make(plotter.XYs, c.Series.Len())
		for i := range c.Series.Xs {
			pts[i] = plotter.XY{X: c.Series.Xs[i], Y: c.Series.Ys[i]}
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Method, err)
		}
		line.Color = hexColor(MethodColor(c.Method))
		line.Width = vg.Points(1.5)

		p.Add(line)
		p.Legend.Add(c.Method.Label(), line)
	}

	p.Legend.Top = true
	p.Legend.Left = true
	return p, nil
}

// WritePNG renders opts.View at opts.Width x opts.Height points.
func WritePNG(w io.Writer, r *analysis.Report, opts Options) error {
	p, err := NewPlot(r, opts.View)
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(vg.Length(opts.Width), vg.Length(opts.Height), "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

func hexColor(s string) color.Color {
	if len(s) != 7 || s[0] != '#' {
		return color.Black
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.Black
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}
