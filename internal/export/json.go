package export

import (
	"encoding/json"
	"io"
	"math"

	"github.com/san-kum/odelab/internal/analysis"
	"github.com/san-kum/odelab/internal/ode"
)

type ExportData struct {
	Problem   string                 `json:"problem"`
	Equation  string                 `json:"equation"`
	Params    ExportParams           `json:"params"`
	Views     map[string][]ExportSet `json:"views"`
	Summaries []ExportSummary        `json:"summaries"`
}

type ExportParams struct {
	X0       float64 `json:"x0"`
	Y0       float64 `json:"y0"`
	GridSize float64 `json:"grid_size"`
	Step     float64 `json:"step"`
	S0       float64 `json:"s0"`
	Sf       float64 `json:"sf"`
	SStep    float64 `json:"sstep"`
}

type ExportSet struct {
	Method string    `json:"method"`
	Xs     []float64 `json:"xs"`
	Ys     []float64 `json:"ys"`
}

type ExportSummary struct {
	Method  string             `json:"method"`
	Metrics map[string]float64 `json:"metrics"`
	// nil when the order could not be estimated
	Order *float64 `json:"order"`
}

func exportParams(p ode.Params) ExportParams {
	return ExportParams{
		X0:       p.X0,
		Y0:       p.Y0,
		GridSize: p.GridSize,
		Step:     p.Step,
		S0:       p.S0,
		Sf:       p.Sf,
		SStep:    p.SStep,
	}
}

// NewExportData flattens r into its JSON shape.
func NewExportData(r *analysis.Report) ExportData {
	data := ExportData{
		Problem:  r.Problem,
		Equation: r.Equation,
		Params:   exportParams(r.Params),
		Views:    make(map[string][]ExportSet, len(analysis.Views())),
	}

	for _, v := range analysis.Views() {
		curves := r.Curves(v)
		sets := make([]ExportSet, len(curves))
		for i, c := range curves {
			sets[i] = ExportSet{Method: c.Method.String(), Xs: c.Series.Xs, Ys: c.Series.Ys}
		}
		data.Views[v.String()] = sets
	}

	for _, s := range r.Summarize() {
		es := ExportSummary{Method: s.Method.String(), Metrics: s.Metrics}
		if !math.IsNaN(s.Order) {
			order := s.Order
			es.Order = &order
		}
		data.Summaries = append(data.Summaries, es)
	}
	return data
}

func WriteJSON(w io.Writer, r *analysis.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewExportData(r))
}
