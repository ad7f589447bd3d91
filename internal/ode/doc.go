// Package ode provides the core vocabulary for fixed-step integration of
// scalar initial value problems.
//
// The package defines the types shared by the solvers and the error
// analyzer:
//
//   - [Problem]: a first-order ODE y' = f(x, y) with a closed-form solution
//   - [Trajectory]: sampled points (xs, ys) produced by a method
//   - [Series]: a trajectory-shaped error series
//   - [StepPoint]: one sample of an error-vs-step-size sweep
//
// # Example
//
//	p := problems.NewPracticum()
//	tr, err := integrators.RungeKutta4.Compute(p, 1, 2, 10, 0.5)
//
// # Preconditions
//
// Derivatives may be singular (the practicum equation divides by x). A
// method never silently carries NaN or Inf forward: integration stops with
// [ErrNonFinite] wrapped in a [StepError].
package ode
