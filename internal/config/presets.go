package config

import (
	"sort"

	"github.com/san-kum/odelab/internal/problems"
)

var Presets = map[string]*Config{
	"practicum": {
		Problem:  "practicum",
		Constant: ConstantConfig{Mode: problems.ConstantFitted, Value: DefaultConstant},
		Params:   ParamsConfig{X0: 1, Y0: 2, GridSize: 9, Step: 1, S0: 0.5, Sf: 5, SStep: 0.5},
		Theme:    DefaultTheme,
	},
	// exact curve pinned to y = x^4 + x^2
	"fixed": {
		Problem:  "practicum",
		Constant: ConstantConfig{Mode: problems.ConstantFixed, Value: 1},
		Params:   ParamsConfig{X0: 1, Y0: 2, GridSize: 10, Step: 1, S0: 0.5, Sf: 5, SStep: 0.5},
		Theme:    DefaultTheme,
	},
	"fine": {
		Problem:  "practicum",
		Constant: ConstantConfig{Mode: problems.ConstantFitted, Value: DefaultConstant},
		Params:   ParamsConfig{X0: 1, Y0: 2, GridSize: 9, Step: 0.1, S0: 1, Sf: 50, SStep: 1},
		Theme:    DefaultTheme,
	},
	"linear": {
		Problem:  "linear",
		Constant: ConstantConfig{Mode: problems.ConstantFitted, Value: DefaultConstant},
		Params:   ParamsConfig{X0: 0, Y0: 2, GridSize: 3, Step: 0.25, S0: 1, Sf: 16, SStep: 1},
		Theme:    "ocean",
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
