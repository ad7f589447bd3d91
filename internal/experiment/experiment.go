package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/odelab/internal/analysis"
	"github.com/san-kum/odelab/internal/ode"
	"github.com/san-kum/odelab/internal/paramstore"
	"github.com/san-kum/odelab/internal/problems"
)

type Config struct {
	Name     string
	Problem  string
	Mode     problems.ConstantMode
	Constant float64
	Params   ode.Params
}

type Experiment struct {
	cfg     Config
	problem ode.Problem
}

// Result is a report together with its per-method summaries.
type Result struct {
	Name      string
	Report    *analysis.Report
	Summaries []analysis.Summary
}

// New resolves the problem and validates the parameters.
func New(r *Registry, cfg Config) (*Experiment, error) {
	p, err := r.GetProblem(cfg.Problem, cfg.Mode, cfg.Constant)
	if err != nil {
		return nil, err
	}
	if err := paramstore.Validate(p, cfg.Params); err != nil {
		return nil, err
	}
	return &Experiment{cfg: cfg, problem: p}, nil
}

func (e *Experiment) Problem() ode.Problem { return e.problem }

// Store returns a parameter store seeded with the experiment's values.
func (e *Experiment) Store() *paramstore.Store {
	return paramstore.New(e.problem, e.cfg.Params)
}

func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report, err := analysis.Run(e.problem, e.cfg.Params)
	if err != nil {
		if e.cfg.Name != "" {
			return nil, fmt.Errorf("%s: %w", e.cfg.Name, err)
		}
		return nil, err
	}

	return &Result{
		Name:      e.cfg.Name,
		Report:    report,
		Summaries: report.Summarize(),
	}, nil
}
