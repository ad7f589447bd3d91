package integrators

import "github.com/san-kum/odelab/internal/ode"

// eulerStep evaluates the slope at the pre-step point.
func eulerStep(p ode.Problem, x, y, h float64) float64 {
	return y + p.Derivative(x, y)*h
}

// improvedEulerStep is Heun's predictor-corrector.
func improvedEulerStep(p ode.Problem, x, y, h float64) float64 {
	k1 := p.Derivative(x, y)
	k2 := p.Derivative(x+h, y+h*k1)
	return y + h/2*(k1+k2)
}
