package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/odelab/internal/integrators"
	"github.com/san-kum/odelab/internal/ode"
	"github.com/san-kum/odelab/internal/problems"
)

// ProblemFactory builds a problem for the requested constant handling.
type ProblemFactory func(mode problems.ConstantMode, c float64) (ode.Problem, error)

type Registry struct {
	problems map[string]ProblemFactory
}

func NewRegistry() *Registry {
	r := &Registry{
		problems: make(map[string]ProblemFactory),
	}

	r.problems["practicum"] = func(mode problems.ConstantMode, c float64) (ode.Problem, error) {
		switch mode {
		case problems.ConstantFitted, "":
			return problems.NewPracticum(), nil
		case problems.ConstantFixed:
			return problems.NewPracticumFixed(c), nil
		}
		return nil, fmt.Errorf("unknown constant mode: %s", mode)
	}
	r.problems["linear"] = func(mode problems.ConstantMode, c float64) (ode.Problem, error) {
		if mode == problems.ConstantFixed {
			return nil, fmt.Errorf("linear: fixed constant not supported")
		}
		return problems.NewLinear(), nil
	}

	return r
}

// Register adds or replaces a problem factory.
func (r *Registry) Register(name string, fn ProblemFactory) {
	r.problems[name] = fn
}

func (r *Registry) GetProblem(name string, mode problems.ConstantMode, c float64) (ode.Problem, error) {
	fn, ok := r.problems[name]
	if !ok {
		return nil, fmt.Errorf("unknown problem: %s", name)
	}
	return fn(mode, c)
}

func (r *Registry) GetMethod(name string) (integrators.Method, error) {
	return integrators.ParseMethod(name)
}

func (r *Registry) ListProblems() []string {
	names := make([]string, 0, len(r.problems))
	for name := range r.problems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) ListMethods() []string {
	methods := integrators.Methods()
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = m.String()
	}
	return names
}
