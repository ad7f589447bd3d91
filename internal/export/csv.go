package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/odelab/internal/analysis"
)

// WriteCSV writes every view of r as long-form rows: view,method,x,y.
func WriteCSV(w io.Writer, r *analysis.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"view", "method", "x", "y"}); err != nil {
		return err
	}

	for _, v := range analysis.Views() {
		for _, c := range r.Curves(v) {
			for i := range c.Series.Xs {
				row := []string{
					v.String(),
					c.Method.String(),
					strconv.FormatFloat(c.Series.Xs[i], 'g', -1, 64),
					strconv.FormatFloat(c.Series.Ys[i], 'g', -1, 64),
				}
				if err := cw.Write(row); err != nil {
					return err
				}
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
