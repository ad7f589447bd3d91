package problems

import "math"

// Linear is y' = y − x, defined everywhere.
type Linear struct{}

func NewLinear() *Linear {
	return &Linear{}
}

func (l *Linear) Name() string     { return "linear" }
func (l *Linear) Equation() string { return "y' = y - x" }

func (l *Linear) Derivative(x, y float64) float64 {
	return y - x
}

func (l *Linear) Exact(x, c float64) float64 {
	return x + 1 + c*math.Exp(x)
}

func (l *Linear) Constant(x0, y0 float64) (float64, error) {
	return (y0 - x0 - 1) * math.Exp(-x0), nil
}
