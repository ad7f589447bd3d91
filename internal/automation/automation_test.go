package automation

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/odelab/internal/experiment"
	"github.com/san-kum/odelab/internal/paramstore"
	"github.com/san-kum/odelab/internal/problems"
)

const scenarioYAML = `
name: convergence
description: halve the step
preset: practicum
runs:
  - name: coarse
    params:
      step: 1
  - name: fixed
    constant_mode: fixed
    constant: 1
    params:
      step: 0.5
vary:
  param: step
  min: 0.25
  max: 1
  count: 4
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadScenario(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, scenarioYAML))
	require.NoError(t, err)

	assert.Equal(t, "convergence", sc.Name)
	assert.Equal(t, "practicum", sc.Preset)
	require.Len(t, sc.Runs, 2)
	assert.Equal(t, problems.ConstantFixed, sc.Runs[1].Mode)
	require.NotNil(t, sc.Runs[1].Constant)
	assert.Equal(t, 1.0, *sc.Runs[1].Constant)
	require.NotNil(t, sc.Vary)
	assert.Equal(t, 4, sc.Vary.Count)
}

func TestExpand(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, scenarioYAML))
	require.NoError(t, err)

	runs, err := sc.Expand()
	require.NoError(t, err)
	require.Len(t, runs, 6)

	var names []string
	for _, r := range runs[2:] {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"step=0.25", "step=0.5", "step=0.75", "step=1"}, names)
}

func TestExpandInvalidVariation(t *testing.T) {
	sc := &Scenario{Vary: &Variation{Param: "h", Count: 2}}
	_, err := sc.Expand()
	assert.ErrorIs(t, err, paramstore.ErrUnknownParameter)

	sc = &Scenario{Vary: &Variation{Param: paramstore.Step, Count: 0}}
	_, err = sc.Expand()
	assert.Error(t, err)
}

func TestRunScenario(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, scenarioYAML))
	require.NoError(t, err)

	var out bytes.Buffer
	results, err := RunScenario(context.Background(), sc, experiment.NewRegistry(), &out)
	require.NoError(t, err)
	require.Len(t, results, 6)

	assert.Equal(t, "coarse", results[0].Name)
	assert.Equal(t, 0.5, results[1].Report.Params.Step)
	assert.Equal(t, 0.25, results[2].Report.Params.Step)
	assert.Contains(t, out.String(), "Running 6/6: step=1")

	// smaller steps shrink the final euler error
	final := func(i int) float64 { return results[i].Summaries[0].Metrics["final"] }
	assert.Less(t, final(2), final(5))
}

func TestRunScenarioStopsOnInvalidRun(t *testing.T) {
	sc := &Scenario{Runs: []Run{
		{Name: "ok"},
		{Name: "bad", Params: map[string]float64{paramstore.Step: -1}},
		{Name: "never"},
	}}

	var out bytes.Buffer
	results, err := RunScenario(context.Background(), sc, experiment.NewRegistry(), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run 2")
	assert.Len(t, results, 1)
}

func TestRunScenarioUnknownPreset(t *testing.T) {
	_, err := RunScenario(context.Background(), &Scenario{Preset: "nope"}, experiment.NewRegistry(), &bytes.Buffer{})
	assert.Error(t, err)
}
