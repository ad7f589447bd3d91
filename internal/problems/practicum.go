package problems

import (
	"fmt"

	"github.com/san-kum/odelab/internal/ode"
)

// ConstantMode selects how the solution constant is obtained.
type ConstantMode string

const (
	ConstantFitted ConstantMode = "fit"
	ConstantFixed  ConstantMode = "fixed"
)

// Practicum is y' = 2x³ + 2y/x. The equation is undefined at x = 0.
type Practicum struct {
	Mode  ConstantMode
	Fixed float64
}

func NewPracticum() *Practicum {
	return &Practicum{Mode: ConstantFitted}
}

// NewPracticumFixed returns the variant whose exact curve always uses c.
func NewPracticumFixed(c float64) *Practicum {
	return &Practicum{Mode: ConstantFixed, Fixed: c}
}

func (p *Practicum) Name() string {
	return "practicum"
}

func (p *Practicum) Equation() string {
	return "y' = 2x^3 + 2y/x"
}

func (p *Practicum) Derivative(x, y float64) float64 {
	return 2*x*x*x + 2*y/x
}

func (p *Practicum) Exact(x, c float64) float64 {
	x2 := x * x
	return x2*x2 + c*x2
}

func (p *Practicum) Constant(x0, y0 float64) (float64, error) {
	if p.Mode == ConstantFixed {
		return p.Fixed, nil
	}
	if x0 == 0 {
		return 0, ode.ErrSingular
	}
	x2 := x0 * x0
	return (y0 - x2*x2) / x2, nil
}

func (p *Practicum) String() string {
	if p.Mode == ConstantFixed {
		return fmt.Sprintf("%s (C=%g)", p.Equation(), p.Fixed)
	}
	return p.Equation()
}
