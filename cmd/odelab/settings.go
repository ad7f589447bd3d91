package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/san-kum/odelab/internal/config"
	"github.com/san-kum/odelab/internal/experiment"
	"github.com/san-kum/odelab/internal/paramstore"
	"github.com/san-kum/odelab/internal/problems"
)

// loadConfig layers preset, config file, ODELAB_* variables and explicitly
// set flags, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
		logger.Printf("preset %s", preset)
	}

	if configFile != "" {
		loaded, err := config.LoadWith(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		logger.Printf("config file %s", configFile)
	}

	if err := config.ParseEnv(cfg); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("problem") {
		cfg.Problem = problemName
	}
	if flags.Changed("constant-mode") {
		cfg.Constant.Mode = problems.ConstantMode(constantMode)
	}
	if flags.Changed("constant") {
		cfg.Constant.Value = constant
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}

	overrides := []struct {
		flag string
		dst  *float64
		val  float64
	}{
		{"x0", &cfg.Params.X0, x0},
		{"y0", &cfg.Params.Y0, y0},
		{"grid-size", &cfg.Params.GridSize, gridSize},
		{"step", &cfg.Params.Step, step},
		{"s0", &cfg.Params.S0, s0},
		{"sf", &cfg.Params.Sf, sf},
		{"sstep", &cfg.Params.SStep, sstep},
	}
	for _, o := range overrides {
		if flags.Changed(o.flag) {
			*o.dst = o.val
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.Printf("problem=%s constant=%s(%g) params=%+v", cfg.Problem, cfg.Constant.Mode, cfg.Constant.Value, cfg.Params)
	return cfg, nil
}

// newStore resolves the configuration into a parameter store.
func newStore(cmd *cobra.Command) (*paramstore.Store, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	p, err := cfg.NewProblem(experiment.NewRegistry())
	if err != nil {
		return nil, nil, err
	}
	return paramstore.New(p, cfg.Params.ToParams()), cfg, nil
}
