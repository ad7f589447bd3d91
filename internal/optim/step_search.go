package optim

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/san-kum/odelab/internal/analysis"
	"github.com/san-kum/odelab/internal/integrators"
	"github.com/san-kum/odelab/internal/ode"
)

// Choice is the outcome of a step search for one method.
type Choice struct {
	Method      integrators.Method
	InverseStep float64
	Error       float64
	Found       bool
}

func (c Choice) Step() float64 {
	if !c.Found {
		return math.NaN()
	}
	return 1 / c.InverseStep
}

// StepSearch looks for the coarsest step that keeps the endpoint error of a
// method within Tolerance.
type StepSearch struct {
	Tolerance  float64
	Candidates []float64
}

func NewStepSearch(tol float64, candidates []float64) *StepSearch {
	sorted := make([]float64, len(candidates))
	copy(sorted, candidates)
	sort.Float64s(sorted)
	return &StepSearch{Tolerance: tol, Candidates: sorted}
}

// Doubling returns s0, 2·s0, 4·s0, ... up to max.
func Doubling(s0, max float64) []float64 {
	if !(s0 > 0) {
		return nil
	}
	var out []float64
	for s := s0; s <= max; s *= 2 {
		out = append(out, s)
	}
	return out
}

// Search tries candidates in ascending order and stops at the first inverse
// step whose endpoint error is within tolerance. When none qualifies the
// choice holds the last candidate tried with Found unset.
func (s *StepSearch) Search(ctx context.Context, p ode.Problem, m integrators.Method, x0, y0, xLimit float64) (Choice, error) {
	if !(s.Tolerance >= 0) {
		return Choice{}, fmt.Errorf("tolerance must be >= 0, got %g", s.Tolerance)
	}
	if len(s.Candidates) == 0 {
		return Choice{}, fmt.Errorf("no candidate steps")
	}

	best := Choice{Method: m}
	for _, inv := range s.Candidates {
		if err := ctx.Err(); err != nil {
			return best, err
		}

		g, err := analysis.GlobalError(p, m, x0, y0, xLimit, 1/inv)
		if err != nil {
			return best, fmt.Errorf("inverse step %g: %w", inv, err)
		}
		_, e := g.Last()

		best.InverseStep = inv
		best.Error = e
		if e <= s.Tolerance {
			best.Found = true
			return best, nil
		}
	}
	return best, nil
}

// FindStep runs the search for every approximate method, one goroutine per
// method. Choices come back in method order.
func FindStep(ctx context.Context, p ode.Problem, params ode.Params, tol float64, candidates []float64) ([]Choice, error) {
	search := NewStepSearch(tol, candidates)

	methods := integrators.Approximations()
	out := make([]Choice, len(methods))
	errs := make([]error, len(methods))

	var wg sync.WaitGroup
	for i, m := range methods {
		wg.Add(1)
		go func(idx int, m integrators.Method) {
			defer wg.Done()
			out[idx], errs[idx] = search.Search(ctx, p, m, params.X0, params.Y0, params.XLimit())
		}(i, m)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methods[i], err)
		}
	}
	return out, nil
}
