package optim

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/odelab/internal/analysis"
	"github.com/san-kum/odelab/internal/integrators"
	"github.com/san-kum/odelab/internal/ode"
	"github.com/san-kum/odelab/internal/problems"
)

func TestDoubling(t *testing.T) {
	assert.Equal(t, []float64{1, 2, 4, 8}, Doubling(1, 10))
	assert.Equal(t, []float64{0.5}, Doubling(0.5, 0.5))
	assert.Nil(t, Doubling(0, 10))
}

func TestFindStepMeetsTolerance(t *testing.T) {
	p := problems.NewPracticum()
	params := ode.DefaultParams()
	params.GridSize = 1

	choices, err := FindStep(context.Background(), p, params, 1e-2, Doubling(1, 4096))
	require.NoError(t, err)
	require.Len(t, choices, 3)

	for _, c := range choices {
		require.True(t, c.Found, c.Method.String())
		assert.LessOrEqual(t, c.Error, 1e-2)

		// one candidate coarser must fail
		if c.InverseStep > 1 {
			g, err := analysis.GlobalError(p, c.Method, params.X0, params.Y0, params.XLimit(), 2/c.InverseStep)
			require.NoError(t, err)
			_, e := g.Last()
			assert.Greater(t, e, 1e-2, c.Method.String())
		}
	}

	// higher order methods need fewer steps
	assert.Greater(t, choices[0].InverseStep, choices[1].InverseStep)
	assert.GreaterOrEqual(t, choices[1].InverseStep, choices[2].InverseStep)
}

func TestSearchNotFound(t *testing.T) {
	s := NewStepSearch(1e-12, []float64{2, 1})
	c, err := s.Search(context.Background(), problems.NewPracticum(), integrators.Euler, 1, 2, 10)
	require.NoError(t, err)

	assert.False(t, c.Found)
	assert.Equal(t, 2.0, c.InverseStep, "candidates are tried in ascending order")
	assert.True(t, math.IsNaN(c.Step()))
}

func TestSearchErrors(t *testing.T) {
	p := problems.NewPracticum()

	_, err := NewStepSearch(-1, []float64{1}).Search(context.Background(), p, integrators.Euler, 1, 2, 3)
	assert.Error(t, err)

	_, err = NewStepSearch(1, nil).Search(context.Background(), p, integrators.Euler, 1, 2, 3)
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewStepSearch(1, []float64{1}).Search(ctx, p, integrators.Euler, 1, 2, 3)
	assert.ErrorIs(t, err, context.Canceled)
}
