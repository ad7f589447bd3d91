package ode

import (
	"errors"
	"fmt"
)

// Domain errors for integration and analysis.
var (
	// ErrInvalidStep indicates a step size that is zero, negative or NaN.
	ErrInvalidStep = errors.New("ode: step must be positive")

	// ErrSingular indicates the initial point sits on a singularity of the
	// equation, so the solution constant cannot be fitted.
	ErrSingular = errors.New("ode: initial point is singular (x0 = 0)")

	// ErrNonFinite indicates a method produced NaN or Inf.
	ErrNonFinite = errors.New("ode: non-finite value (NaN or Inf detected)")

	// ErrTooManyPoints indicates the trajectory would exceed the point cap.
	ErrTooManyPoints = errors.New("ode: trajectory exceeds point limit")

	// ErrInvalidSweep indicates a sweep range with s0 <= 0 or sstep <= 0.
	ErrInvalidSweep = errors.New("ode: sweep requires s0 > 0 and sstep > 0")

	// ErrParameterBounds indicates a parameter value outside its valid range.
	ErrParameterBounds = errors.New("ode: parameter out of valid bounds")

	// ErrLengthMismatch indicates two trajectories that do not share samples.
	ErrLengthMismatch = errors.New("ode: trajectories have different lengths")
)

// StepError wraps an error with the position where integration failed.
type StepError struct {
	Method  string
	Index   int
	X       float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: step %d (x=%.4g): %v", e.Method, e.Index, e.X, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
