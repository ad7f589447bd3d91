package analysis

import (
	"fmt"
	"math"

	"github.com/san-kum/odelab/internal/integrators"
	"github.com/san-kum/odelab/internal/ode"
)

// Difference returns |exact − approx| sampled at the exact xs.
func Difference(exact, approx ode.Trajectory) (ode.Series, error) {
	if exact.Len() != approx.Len() {
		return ode.Series{}, fmt.Errorf("%w: exact %d, approx %d", ode.ErrLengthMismatch, exact.Len(), approx.Len())
	}

	s := ode.Series{
		Xs: make([]float64, exact.Len()),
		Ys: make([]float64, exact.Len()),
	}
	copy(s.Xs, exact.Xs)
	for i := range exact.Ys {
		s.Ys[i] = math.Abs(exact.Ys[i] - approx.Ys[i])
	}
	return s, nil
}

// GlobalError integrates m and the exact solution over the same grid and
// returns their absolute difference.
func GlobalError(p ode.Problem, m integrators.Method, x0, y0, xLimit, step float64) (ode.Series, error) {
	exact, err := integrators.Exact.Compute(p, x0, y0, xLimit, step)
	if err != nil {
		return ode.Series{}, err
	}
	approx, err := m.Compute(p, x0, y0, xLimit, step)
	if err != nil {
		return ode.Series{}, err
	}
	return Difference(exact, approx)
}

// LocalError is the first difference of a global error series. The first
// sample is the global error itself; the rest may be negative.
func LocalError(global ode.Series) ode.Series {
	local := ode.Series{
		Xs: make([]float64, global.Len()),
		Ys: make([]float64, global.Len()),
	}
	copy(local.Xs, global.Xs)

	prev := 0.0
	for i, g := range global.Ys {
		if i == 0 {
			local.Ys[i] = g
		} else {
			local.Ys[i] = g - prev
		}
		prev = g
	}
	return local
}

// Accumulate sums a local error series back into a global one.
func Accumulate(local ode.Series) ode.Series {
	global := ode.Series{
		Xs: make([]float64, local.Len()),
		Ys: make([]float64, local.Len()),
	}
	copy(global.Xs, local.Xs)

	sum := 0.0
	for i, l := range local.Ys {
		sum += l
		global.Ys[i] = sum
	}
	return global
}
