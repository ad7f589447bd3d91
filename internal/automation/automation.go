package automation

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/odelab/internal/config"
	"github.com/san-kum/odelab/internal/experiment"
	"github.com/san-kum/odelab/internal/paramstore"
	"github.com/san-kum/odelab/internal/problems"
)

// Scenario is a named batch of runs loaded from yaml.
type Scenario struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Preset      string     `yaml:"preset"`
	Runs        []Run      `yaml:"runs"`
	Vary        *Variation `yaml:"vary"`
}

// Run overrides the scenario base. Zero fields inherit.
type Run struct {
	Name     string                `yaml:"name"`
	Problem  string                `yaml:"problem"`
	Mode     problems.ConstantMode `yaml:"constant_mode"`
	Constant *float64              `yaml:"constant"`
	Params   map[string]float64    `yaml:"params"`
}

// Variation expands into Count evenly spaced runs of one parameter.
type Variation struct {
	Param string  `yaml:"param"`
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	Count int     `yaml:"count"`
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &scenario, nil
}

// Expand returns the explicit runs followed by the variation runs.
func (s *Scenario) Expand() ([]Run, error) {
	runs := make([]Run, 0, len(s.Runs))
	runs = append(runs, s.Runs...)

	if s.Vary == nil {
		return runs, nil
	}
	v := s.Vary
	if !paramstore.Known(v.Param) {
		return nil, fmt.Errorf("vary: %w: %q", paramstore.ErrUnknownParameter, v.Param)
	}
	if v.Count < 1 {
		return nil, fmt.Errorf("vary: count must be >= 1, got %d", v.Count)
	}

	inc := 0.0
	if v.Count > 1 {
		inc = (v.Max - v.Min) / float64(v.Count-1)
	}
	for i := 0; i < v.Count; i++ {
		val := v.Min + float64(i)*inc
		runs = append(runs, Run{
			Name:   fmt.Sprintf("%s=%g", v.Param, val),
			Params: map[string]float64{v.Param: val},
		})
	}
	return runs, nil
}

func (s *Scenario) base() (*config.Config, error) {
	if s.Preset == "" {
		return config.DefaultConfig(), nil
	}
	cfg := config.GetPreset(s.Preset)
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset: %s", s.Preset)
	}
	return cfg, nil
}

// Resolve applies the run's overrides to base.
func (r Run) Resolve(base *config.Config) (experiment.Config, error) {
	cfg := base.Clone()
	if r.Problem != "" {
		cfg.Problem = r.Problem
	}
	if r.Mode != "" {
		cfg.Constant.Mode = r.Mode
	}
	if r.Constant != nil {
		cfg.Constant.Value = *r.Constant
	}

	exp := cfg.Experiment(r.Name)
	for name, v := range r.Params {
		next, err := paramstore.With(exp.Params, name, v)
		if err != nil {
			return exp, err
		}
		exp.Params = next
	}
	return exp, nil
}

// RunScenario executes every run in order and reports progress to w.
func RunScenario(ctx context.Context, scenario *Scenario, registry *experiment.Registry, w io.Writer) ([]*experiment.Result, error) {
	base, err := scenario.base()
	if err != nil {
		return nil, err
	}
	runs, err := scenario.Expand()
	if err != nil {
		return nil, err
	}

	results := make([]*experiment.Result, 0, len(runs))
	for i, run := range runs {
		if run.Name == "" {
			run.Name = fmt.Sprintf("run-%d", i+1)
		}
		fmt.Fprintf(w, "Running %d/%d: %s\n", i+1, len(runs), run.Name)

		cfg, err := run.Resolve(base)
		if err != nil {
			return results, fmt.Errorf("run %d: %w", i+1, err)
		}

		exp, err := experiment.New(registry, cfg)
		if err != nil {
			return results, fmt.Errorf("run %d setup: %w", i+1, err)
		}

		result, err := exp.Run(ctx)
		if err != nil {
			return results, fmt.Errorf("run %d: %w", i+1, err)
		}

		results = append(results, result)
	}

	return results, nil
}
