package analysis

import (
	"fmt"

	"github.com/san-kum/odelab/internal/integrators"
	"github.com/san-kum/odelab/internal/metrics"
	"github.com/san-kum/odelab/internal/ode"
)

// Curve is a series labelled with the method that produced it.
type Curve struct {
	Method integrators.Method
	Series ode.Series
}

// Report is a full result set for one parameter set.
type Report struct {
	Problem      string
	Equation     string
	Params       ode.Params
	Trajectories []Curve
	Global       []Curve
	Local        []Curve
	Steps        []Curve
}

// Trajectories integrates every method, exact last.
func Trajectories(p ode.Problem, params ode.Params) ([]Curve, error) {
	curves := make([]Curve, 0, 4)
	for _, m := range integrators.Methods() {
		tr, err := m.Compute(p, params.X0, params.Y0, params.XLimit(), params.Step)
		if err != nil {
			return nil, err
		}
		curves = append(curves, Curve{Method: m, Series: tr})
	}
	return curves, nil
}

func GlobalErrors(p ode.Problem, params ode.Params) ([]Curve, error) {
	curves := make([]Curve, 0, 3)
	for _, m := range integrators.Approximations() {
		s, err := GlobalError(p, m, params.X0, params.Y0, params.XLimit(), params.Step)
		if err != nil {
			return nil, err
		}
		curves = append(curves, Curve{Method: m, Series: s})
	}
	return curves, nil
}

func LocalErrors(p ode.Problem, params ode.Params) ([]Curve, error) {
	global, err := GlobalErrors(p, params)
	if err != nil {
		return nil, err
	}
	curves := make([]Curve, len(global))
	for i, g := range global {
		curves[i] = Curve{Method: g.Method, Series: LocalError(g.Series)}
	}
	return curves, nil
}

// SweepOf returns the sweep range stored in params.
func SweepOf(params ode.Params) Sweep {
	return Sweep{S0: params.S0, Sf: params.Sf, SStep: params.SStep}
}

func StepErrorCurves(p ode.Problem, params ode.Params) ([]Curve, error) {
	curves := make([]Curve, 0, 3)
	for _, m := range integrators.Approximations() {
		points, err := StepErrors(p, m, params.X0, params.Y0, params.XLimit(), SweepOf(params))
		if err != nil {
			return nil, err
		}
		curves = append(curves, Curve{Method: m, Series: ode.StepSeries(points)})
	}
	return curves, nil
}

// Run computes every result set for params.
func Run(p ode.Problem, params ode.Params) (*Report, error) {
	r := &Report{
		Problem:  p.Name(),
		Equation: p.Equation(),
		Params:   params,
	}

	var err error
	if r.Trajectories, err = Trajectories(p, params); err != nil {
		return nil, fmt.Errorf("trajectories: %w", err)
	}
	if r.Global, err = GlobalErrors(p, params); err != nil {
		return nil, fmt.Errorf("global errors: %w", err)
	}
	r.Local = make([]Curve, len(r.Global))
	for i, g := range r.Global {
		r.Local[i] = Curve{Method: g.Method, Series: LocalError(g.Series)}
	}
	if r.Steps, err = StepErrorCurves(p, params); err != nil {
		return nil, fmt.Errorf("step errors: %w", err)
	}
	return r, nil
}

// Summary holds metric values and the estimated order for one method.
type Summary struct {
	Method  integrators.Method
	Metrics map[string]float64
	// Order is NaN when the sweep had too few usable samples.
	Order float64
}

// Summarize observes each global error series with the default metrics.
func (r *Report) Summarize() []Summary {
	out := make([]Summary, 0, len(r.Global))
	for i, g := range r.Global {
		s := Summary{
			Method:  g.Method,
			Metrics: Observe(g.Series, metrics.Defaults()...),
			Order:   nan(),
		}
		if i < len(r.Steps) {
			if order, err := EstimateOrder(StepPoints(r.Steps[i].Series)); err == nil {
				s.Order = order
			}
		}
		out = append(out, s)
	}
	return out
}

// Observe feeds series into each metric and collects their values.
func Observe(series ode.Series, ms ...metrics.Metric) map[string]float64 {
	values := make(map[string]float64, len(ms))
	for _, m := range ms {
		m.Reset()
		for i := range series.Xs {
			m.Observe(series.Xs[i], series.Ys[i])
		}
		values[m.Name()] = m.Value()
	}
	return values
}

// StepPoints converts a step sweep series back into (1/step, error) pairs.
func StepPoints(s ode.Series) []ode.StepPoint {
	points := make([]ode.StepPoint, s.Len())
	for i := range s.Xs {
		points[i] = ode.StepPoint{InverseStep: s.Xs[i], Error: s.Ys[i]}
	}
	return points
}
