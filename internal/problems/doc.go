// Package problems provides concrete initial value problems.
//
// Each problem implements [ode.Problem]: the right-hand side of the
// equation, its closed-form solution family and the fitting of the
// solution constant to an initial point.
//
//   - [Practicum]: y' = 2x³ + 2y/x with y = x⁴ + Cx²
//   - [Linear]: y' = y − x with y = x + 1 + Ceˣ
//
// [Practicum] can either fit C to (x0, y0) or hold it fixed, which models an
// initial condition assumed to lie on a known curve.
package problems
