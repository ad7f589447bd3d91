package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewCycle(t *testing.T) {
	v := ViewSolutions
	var seen []string
	for range Views() {
		seen = append(seen, v.String())
		v = v.Next()
	}
	assert.Equal(t, []string{"solutions", "global", "local", "steps"}, seen)
	assert.Equal(t, ViewSolutions, v)
}

func TestParseView(t *testing.T) {
	for _, v := range Views() {
		got, err := ParseView(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	got, err := ParseView("Graphs")
	require.NoError(t, err)
	assert.Equal(t, ViewSolutions, got)

	_, err = ParseView("phase")
	assert.Error(t, err)
}

func TestReportCurves(t *testing.T) {
	r := &Report{
		Trajectories: []Curve{{}, {}, {}, {}},
		Global:       []Curve{{}},
		Local:        []Curve{{}, {}},
		Steps:        []Curve{{}, {}, {}},
	}

	assert.Len(t, r.Curves(ViewSolutions), 4)
	assert.Len(t, r.Curves(ViewGlobal), 1)
	assert.Len(t, r.Curves(ViewLocal), 2)
	assert.Len(t, r.Curves(ViewSteps), 3)
}
