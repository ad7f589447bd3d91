package integrators

import "github.com/san-kum/odelab/internal/ode"

func rk4Step(p ode.Problem, x, y, h float64) float64 {
	half := h * 0.5

	k1 := p.Derivative(x, y)
	k2 := p.Derivative(x+half, y+half*k1)
	k3 := p.Derivative(x+half, y+half*k2)
	k4 := p.Derivative(x+h, y+h*k3)

	return y + h/6*(k1+2*k2+2*k3+k4)
}
