package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/odelab/internal/ode"
	"github.com/san-kum/odelab/internal/problems"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "practicum", cfg.Problem)
	assert.Equal(t, problems.ConstantFitted, cfg.Constant.Mode)
	assert.Equal(t, ode.DefaultParams(), cfg.Params.ToParams())
	assert.NoError(t, cfg.Validate())
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("fixed")
	require.NotNil(t, cfg)
	assert.Equal(t, problems.ConstantFixed, cfg.Constant.Mode)
	assert.Equal(t, 1.0, cfg.Constant.Value)

	cfg.Params.Step = 99
	assert.Equal(t, 1.0, Presets["fixed"].Params.Step, "preset must not be mutated through a copy")
}

func TestGetPresetNotFound(t *testing.T) {
	assert.Nil(t, GetPreset("nonexistent"))
}

func TestListPresets(t *testing.T) {
	assert.Equal(t, []string{"fine", "fixed", "linear", "practicum"}, ListPresets())
}

func TestPresetsValid(t *testing.T) {
	for _, name := range ListPresets() {
		assert.NoError(t, GetPreset(name).Validate(), name)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad mode", func(c *Config) { c.Constant.Mode = "guess" }, "constant mode"},
		{"unknown problem", func(c *Config) { c.Problem = "heat" }, "unknown problem"},
		{"zero step", func(c *Config) { c.Params.Step = 0 }, "step"},
		{"negative grid", func(c *Config) { c.Params.GridSize = -2 }, "grid_size"},
		{"singular x0", func(c *Config) { c.Params.X0 = 0 }, "singular"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "odelab.yaml")

	cfg := GetPreset("fine")
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("params:\n  step: 0.5\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.Params.Step)
	assert.Equal(t, 2.0, cfg.Params.Y0)
	assert.Equal(t, "practicum", cfg.Problem)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("ODELAB_PROBLEM", "linear")
	t.Setenv("ODELAB_STEP", "0.125")
	t.Setenv("ODELAB_CONSTANT_MODE", "fixed")

	cfg := DefaultConfig()
	require.NoError(t, ParseEnv(cfg))

	assert.Equal(t, "linear", cfg.Problem)
	assert.Equal(t, 0.125, cfg.Params.Step)
	assert.Equal(t, problems.ConstantFixed, cfg.Constant.Mode)
	assert.Equal(t, 2.0, cfg.Params.Y0, "unset variables keep their values")
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("ODELAB_STEP", "not-a-number")

	err := ParseEnv(DefaultConfig())
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "parse env:"))
}

func TestLoadWithPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "over.yaml")
	require.NoError(t, os.WriteFile(path, []byte("params:\n  grid_size: 2\n"), 0644))

	base := GetPreset("linear")
	cfg, err := LoadWith(path, base)
	require.NoError(t, err)

	assert.Equal(t, "linear", cfg.Problem)
	assert.Equal(t, 2.0, cfg.Params.GridSize)
	assert.Equal(t, 3.0, base.Params.GridSize, "base must not change")
}
