package ode

import "math"

// Problem is a scalar first-order ODE y' = f(x, y) together with the family
// of exact solutions y = g(x, C).
type Problem interface {
	Name() string
	// Equation is a human readable form of the right-hand side.
	Equation() string
	Derivative(x, y float64) float64
	Exact(x, c float64) float64
	// Constant fits C so that Exact(x0, C) == y0.
	Constant(x0, y0 float64) (float64, error)
}

// Trajectory is a sequence of sampled points. Xs and Ys always have the
// same length.
type Trajectory struct {
	Xs []float64
	Ys []float64
}

// Series is a trajectory-shaped error series.
type Series = Trajectory

func (t Trajectory) Len() int { return len(t.Xs) }

// Last returns the final sample. The trajectory must not be empty.
func (t Trajectory) Last() (x, y float64) {
	n := len(t.Xs) - 1
	return t.Xs[n], t.Ys[n]
}

func (t Trajectory) Clone() Trajectory {
	c := Trajectory{
		Xs: make([]float64, len(t.Xs)),
		Ys: make([]float64, len(t.Ys)),
	}
	copy(c.Xs, t.Xs)
	copy(c.Ys, t.Ys)
	return c
}

func (t Trajectory) IsValid() bool {
	if len(t.Xs) != len(t.Ys) {
		return false
	}
	for i := range t.Xs {
		if !Finite(t.Xs[i]) || !Finite(t.Ys[i]) {
			return false
		}
	}
	return true
}

// StepPoint is one sample of a step-error sweep.
type StepPoint struct {
	InverseStep float64
	Error       float64
}

// StepSeries converts sweep points into a plottable series.
func StepSeries(points []StepPoint) Series {
	s := Series{
		Xs: make([]float64, len(points)),
		Ys: make([]float64, len(points)),
	}
	for i, p := range points {
		s.Xs[i] = p.InverseStep
		s.Ys[i] = p.Error
	}
	return s
}

// Params are the scalar inputs of a run.
type Params struct {
	X0       float64
	Y0       float64
	GridSize float64
	Step     float64
	S0       float64
	Sf       float64
	SStep    float64
}

// XLimit is the right end of the integration interval.
func (p Params) XLimit() float64 {
	return p.X0 + p.GridSize
}

func DefaultParams() Params {
	return Params{
		X0:       1,
		Y0:       2,
		GridSize: 9,
		Step:     1,
		S0:       0.5,
		Sf:       5,
		SStep:    0.5,
	}
}

func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
