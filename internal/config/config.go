package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/odelab/internal/experiment"
	"github.com/san-kum/odelab/internal/ode"
	"github.com/san-kum/odelab/internal/paramstore"
	"github.com/san-kum/odelab/internal/problems"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "ODELAB_"

const (
	DefaultProblem  = "practicum"
	DefaultTheme    = "cyberpunk"
	DefaultConstant = 1.0
)

type Config struct {
	Problem  string         `yaml:"problem" env:"PROBLEM"`
	Constant ConstantConfig `yaml:"constant" envPrefix:"CONSTANT_"`
	Params   ParamsConfig   `yaml:"params"`
	Theme    string         `yaml:"theme" env:"THEME"`
}

type ConstantConfig struct {
	Mode  problems.ConstantMode `yaml:"mode" env:"MODE"`
	Value float64               `yaml:"value" env:"VALUE"`
}

type ParamsConfig struct {
	X0       float64 `yaml:"x0" env:"X0"`
	Y0       float64 `yaml:"y0" env:"Y0"`
	GridSize float64 `yaml:"grid_size" env:"GRID_SIZE"`
	Step     float64 `yaml:"step" env:"STEP"`
	S0       float64 `yaml:"s0" env:"S0"`
	Sf       float64 `yaml:"sf" env:"SF"`
	SStep    float64 `yaml:"sstep" env:"SSTEP"`
}

func DefaultConfig() *Config {
	return &Config{
		Problem: DefaultProblem,
		Constant: ConstantConfig{
			Mode:  problems.ConstantFitted,
			Value: DefaultConstant,
		},
		Params: FromParams(ode.DefaultParams()),
		Theme:  DefaultTheme,
	}
}

func FromParams(p ode.Params) ParamsConfig {
	return ParamsConfig{
		X0:       p.X0,
		Y0:       p.Y0,
		GridSize: p.GridSize,
		Step:     p.Step,
		S0:       p.S0,
		Sf:       p.Sf,
		SStep:    p.SStep,
	}
}

func (p ParamsConfig) ToParams() ode.Params {
	return ode.Params{
		X0:       p.X0,
		Y0:       p.Y0,
		GridSize: p.GridSize,
		Step:     p.Step,
		S0:       p.S0,
		Sf:       p.Sf,
		SStep:    p.SStep,
	}
}

// Load reads a yaml file over the defaults. Keys missing from the file
// keep their default values.
func Load(path string) (*Config, error) {
	return LoadWith(path, DefaultConfig())
}

// LoadWith reads a yaml file over a copy of base.
func LoadWith(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ParseEnv overrides fields from ODELAB_* environment variables. Unset
// variables leave the current values alone.
func ParseEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Clone returns a copy safe to modify. Presets are shared values.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// NewProblem resolves the configured problem through r.
func (c *Config) NewProblem(r *experiment.Registry) (ode.Problem, error) {
	return r.GetProblem(c.Problem, c.Constant.Mode, c.Constant.Value)
}

// Experiment converts the config into a runnable experiment config.
func (c *Config) Experiment(name string) experiment.Config {
	return experiment.Config{
		Name:     name,
		Problem:  c.Problem,
		Mode:     c.Constant.Mode,
		Constant: c.Constant.Value,
		Params:   c.Params.ToParams(),
	}
}

func (c *Config) Validate() error {
	switch c.Constant.Mode {
	case problems.ConstantFitted, problems.ConstantFixed:
	default:
		return fmt.Errorf("constant mode must be %q or %q, got %q", problems.ConstantFitted, problems.ConstantFixed, c.Constant.Mode)
	}
	p, err := c.NewProblem(experiment.NewRegistry())
	if err != nil {
		return err
	}
	return paramstore.Validate(p, c.Params.ToParams())
}
