package analysis

import (
	"errors"
	"math"

	"github.com/san-kum/odelab/internal/ode"
	"gonum.org/v1/gonum/stat"
)

var ErrInsufficientData = errors.New("analysis: need at least two positive error samples")

// EstimateOrder fits log(error) = b − p·log(1/step) by least squares and
// returns p, so error ∝ step^p. Zero and non-finite errors are skipped.
func EstimateOrder(points []ode.StepPoint) (float64, error) {
	xs := make([]float64, 0, len(points))
	ys := make([]float64, 0, len(points))
	for _, pt := range points {
		if !(pt.Error > 0) || !ode.Finite(pt.Error) || !(pt.InverseStep > 0) {
			continue
		}
		xs = append(xs, math.Log(pt.InverseStep))
		ys = append(ys, math.Log(pt.Error))
	}

	if len(xs) < 2 || stat.Variance(xs, nil) == 0 {
		return 0, ErrInsufficientData
	}

	_, slope := stat.LinearRegression(xs, ys, nil, false)
	return -slope, nil
}

func nan() float64 { return math.NaN() }
