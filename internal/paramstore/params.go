package paramstore

import (
	"errors"
	"fmt"

	"github.com/san-kum/odelab/internal/ode"
)

// Parameter names accepted by the store.
const (
	X0       = "x0"
	Y0       = "y0"
	GridSize = "grid_size"
	Step     = "step"
	S0       = "s0"
	Sf       = "sf"
	SStep    = "sstep"
)

var ErrUnknownParameter = errors.New("paramstore: unknown parameter")

var names = []string{X0, Y0, GridSize, Step, S0, Sf, SStep}

// Names lists the parameters in display order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Known reports whether name is a parameter.
func Known(name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// Get reads one named value from params.
func Get(params ode.Params, name string) (float64, error) {
	f, err := field(&params, name)
	if err != nil {
		return 0, err
	}
	return *f, nil
}

// With returns a copy of params with name set to v.
func With(params ode.Params, name string, v float64) (ode.Params, error) {
	f, err := field(&params, name)
	if err != nil {
		return params, err
	}
	*f = v
	return params, nil
}

func field(p *ode.Params, name string) (*float64, error) {
	switch name {
	case X0:
		return &p.X0, nil
	case Y0:
		return &p.Y0, nil
	case GridSize:
		return &p.GridSize, nil
	case Step:
		return &p.Step, nil
	case S0:
		return &p.S0, nil
	case Sf:
		return &p.Sf, nil
	case SStep:
		return &p.SStep, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownParameter, name)
}

// Check validates a single value against the bounds of its parameter.
// params supplies the other values for checks that need them.
func Check(p ode.Problem, params ode.Params, name string, v float64) error {
	if !Known(name) {
		return fmt.Errorf("%w: %q", ErrUnknownParameter, name)
	}
	if !ode.Finite(v) {
		return fmt.Errorf("%s: %w (must be finite, got %g)", name, ode.ErrParameterBounds, v)
	}

	switch name {
	case Step, S0, SStep:
		if v <= 0 {
			return fmt.Errorf("%s: %w (must be > 0, got %g)", name, ode.ErrParameterBounds, v)
		}
	case GridSize:
		if v < 0 {
			return fmt.Errorf("%s: %w (must be >= 0, got %g)", name, ode.ErrParameterBounds, v)
		}
	case X0, Y0:
		next, _ := With(params, name, v)
		if _, err := p.Constant(next.X0, next.Y0); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// Validate checks every parameter of params.
func Validate(p ode.Problem, params ode.Params) error {
	for _, name := range names {
		v, _ := Get(params, name)
		if err := Check(p, params, name, v); err != nil {
			return err
		}
	}
	return nil
}
