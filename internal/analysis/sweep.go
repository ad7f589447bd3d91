package analysis

import (
	"fmt"
	"math"

	"github.com/san-kum/odelab/internal/integrators"
	"github.com/san-kum/odelab/internal/ode"
)

// MaxSweepSamples caps the number of integrations a single sweep may run.
const MaxSweepSamples = 100_000

// Sweep is a range of inverse step sizes s0, s0+sstep, ... up to sf.
type Sweep struct {
	S0, Sf, SStep float64
}

func (s Sweep) Validate() error {
	if !(s.S0 > 0) || !(s.SStep > 0) || math.IsNaN(s.Sf) {
		return fmt.Errorf("%w (s0=%g, sf=%g, sstep=%g)", ode.ErrInvalidSweep, s.S0, s.Sf, s.SStep)
	}
	return nil
}

// Samples lists the inverse steps of the sweep. Each value is computed
// from its index so repeated additions cannot drift past sf.
func (s Sweep) Samples() ([]float64, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.S0 > s.Sf {
		return []float64{}, nil
	}

	n := math.Floor((s.Sf-s.S0)/s.SStep) + 1
	if n > MaxSweepSamples {
		return nil, fmt.Errorf("%w: sweep of %.0f samples", ode.ErrTooManyPoints, n)
	}

	samples := make([]float64, 0, int(n)+1)
	for i := 0; ; i++ {
		v := s.S0 + float64(i)*s.SStep
		if v > s.Sf {
			break
		}
		samples = append(samples, v)
	}
	return samples, nil
}

// StepErrors reruns m and the exact solution for every step 1/s of the
// sweep and records the error at the final sample only. Samples are
// independent and are computed in parallel; the first failing sample in
// sweep order determines the returned error.
func StepErrors(p ode.Problem, m integrators.Method, x0, y0, xLimit float64, sw Sweep) ([]ode.StepPoint, error) {
	samples, err := sw.Samples()
	if err != nil {
		return nil, err
	}

	points := make([]ode.StepPoint, len(samples))
	errs := make([]error, len(samples))
	parallelFor(len(samples), sweepChunk, func(start, end int) {
		for i := start; i < end; i++ {
			points[i], errs[i] = stepError(p, m, x0, y0, xLimit, samples[i])
		}
	})

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return points, nil
}

func stepError(p ode.Problem, m integrators.Method, x0, y0, xLimit, s float64) (ode.StepPoint, error) {
	step := 1 / s

	exact, err := integrators.Exact.Compute(p, x0, y0, xLimit, step)
	if err != nil {
		return ode.StepPoint{}, fmt.Errorf("sweep s=%g: %w", s, err)
	}
	approx, err := m.Compute(p, x0, y0, xLimit, step)
	if err != nil {
		return ode.StepPoint{}, fmt.Errorf("sweep s=%g: %w", s, err)
	}

	_, ye := exact.Last()
	_, ya := approx.Last()
	return ode.StepPoint{InverseStep: s, Error: math.Abs(ye - ya)}, nil
}
