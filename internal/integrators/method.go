package integrators

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/odelab/internal/ode"
)

// DefaultMaxPoints caps the length of a single trajectory.
const DefaultMaxPoints = 1_000_000

// Method selects one of the fixed-step schemes.
type Method int

const (
	Euler Method = iota
	ImprovedEuler
	RungeKutta4
	Exact
)

var methodNames = [...]string{
	Euler:         "euler",
	ImprovedEuler: "improved_euler",
	RungeKutta4:   "runge_kutta",
	Exact:         "exact",
}

var methodLabels = [...]string{
	Euler:         "Euler",
	ImprovedEuler: "Improved Euler",
	RungeKutta4:   "Runge-Kutta",
	Exact:         "Exact",
}

var methodAliases = map[string]Method{
	"euler":          Euler,
	"improved_euler": ImprovedEuler,
	"improved-euler": ImprovedEuler,
	"heun":           ImprovedEuler,
	"runge_kutta":    RungeKutta4,
	"runge-kutta":    RungeKutta4,
	"rk4":            RungeKutta4,
	"exact":          Exact,
}

// Methods returns every method in display order.
func Methods() []Method {
	return []Method{Euler, ImprovedEuler, RungeKutta4, Exact}
}

// Approximations returns the methods that carry discretization error.
func Approximations() []Method {
	return []Method{Euler, ImprovedEuler, RungeKutta4}
}

func ParseMethod(name string) (Method, error) {
	m, ok := methodAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown method: %s", name)
	}
	return m, nil
}

func (m Method) valid() bool {
	return m >= Euler && m <= Exact
}

func (m Method) String() string {
	if !m.valid() {
		return fmt.Sprintf("method(%d)", int(m))
	}
	return methodNames[m]
}

// Label is the display name used in legends.
func (m Method) Label() string {
	if !m.valid() {
		return m.String()
	}
	return methodLabels[m]
}

// Order is the global convergence order; Exact reports 0.
func (m Method) Order() int {
	switch m {
	case Euler:
		return 1
	case ImprovedEuler:
		return 2
	case RungeKutta4:
		return 4
	}
	return 0
}

// Compute integrates p from (x0, y0) until x >= xLimit with a fixed step.
func (m Method) Compute(p ode.Problem, x0, y0, xLimit, step float64) (ode.Trajectory, error) {
	return Integrate(p, m, x0, y0, xLimit, step, DefaultMaxPoints)
}

type stepFunc func(p ode.Problem, x, y, h float64) float64

// stepper returns the update rule for m and the first sample value.
func (m Method) stepper(p ode.Problem, x0, y0 float64) (stepFunc, float64, error) {
	switch m {
	case Euler:
		return eulerStep, y0, nil
	case ImprovedEuler:
		return improvedEulerStep, y0, nil
	case RungeKutta4:
		return rk4Step, y0, nil
	case Exact:
		c, err := p.Constant(x0, y0)
		if err != nil {
			return nil, 0, err
		}
		exact := func(p ode.Problem, x, _, h float64) float64 {
			return p.Exact(x+h, c)
		}
		return exact, p.Exact(x0, c), nil
	}
	return nil, 0, fmt.Errorf("unknown method: %d", int(m))
}

// Integrate runs the stepping loop shared by every method. The loop stops
// once x >= xLimit, so the last sample may overshoot xLimit by up to step.
func Integrate(p ode.Problem, m Method, x0, y0, xLimit, step float64, maxPoints int) (ode.Trajectory, error) {
	if !(step > 0) {
		return ode.Trajectory{}, fmt.Errorf("%s: %w (got %g)", m, ode.ErrInvalidStep, step)
	}

	n := 1.0
	if xLimit > x0 {
		n = math.Ceil((xLimit-x0)/step) + 1
	}
	if maxPoints > 0 && n > float64(maxPoints) {
		return ode.Trajectory{}, fmt.Errorf("%s: %w (%.0f > %d)", m, ode.ErrTooManyPoints, n, maxPoints)
	}

	advance, y, err := m.stepper(p, x0, y0)
	if err != nil {
		return ode.Trajectory{}, fmt.Errorf("%s: %w", m, err)
	}

	// float accumulation can add one extra step
	capacity := int(n) + 1
	tr := ode.Trajectory{
		Xs: make([]float64, 0, capacity),
		Ys: make([]float64, 0, capacity),
	}

	x := x0
	tr.Xs = append(tr.Xs, x)
	tr.Ys = append(tr.Ys, y)

	for x < xLimit {
		y = advance(p, x, y, step)
		x += step

		if !ode.Finite(x) || !ode.Finite(y) {
			return tr, &ode.StepError{Method: m.String(), Index: len(tr.Xs), X: x, Wrapped: ode.ErrNonFinite}
		}
		if maxPoints > 0 && len(tr.Xs) >= maxPoints {
			return tr, &ode.StepError{Method: m.String(), Index: len(tr.Xs), X: x, Wrapped: ode.ErrTooManyPoints}
		}

		tr.Xs = append(tr.Xs, x)
		tr.Ys = append(tr.Ys, y)
	}

	return tr, nil
}
