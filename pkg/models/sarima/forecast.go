package sarima

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/skycastdev/skycast/pkg/timeseries"
)

// ForecastResult is one future step on the original (undifferenced) scale.
type ForecastResult struct {
	Mean          float64
	Variance      float64
	StandardError float64
	Lower         float64
	Upper         float64
}

// Forecast projects the fitted state forward for the given number of steps.
// No measurement updates happen during projection, so the forecast variance
// never decreases with the horizon.
func (m *Model) Forecast(steps int) ([]ForecastResult, error) {
	if steps < 1 {
		return nil, ErrInvalidHorizon
	}
	if !m.fitted {
		return nil, ErrModelNotFitted
	}

	// Predicted means of the differenced series via repeated application of
	// the transition matrix.
	diffMeans := make([]float64, steps)
	a := mat.VecDenseCopyOf(m.state)
	var next mat.VecDense
	for h := 0; h < steps; h++ {
		next.MulVec(m.ss.trans, a)
		a.CopyVec(&next)
		diffMeans[h] = a.AtVec(0)
	}

	means := timeseries.Integrate(diffMeans, m.original, m.order.D, m.order.SD, m.order.Period)

	// Forecast variance on the original scale from the psi weights of the
	// full integrated process.
	psi := psiWeights(m.order, m.arParams, m.maParams, m.sarParams, m.smaParams, steps)
	z := distuv.UnitNormal.Quantile(0.5 + m.confidence/2)

	results := make([]ForecastResult, steps)
	cum := 0.0
	for h := 0; h < steps; h++ {
		cum += psi[h] * psi[h]
		variance := m.variance * cum
		se := math.Sqrt(variance)
		results[h] = ForecastResult{
			Mean:          means[h],
			Variance:      variance,
			StandardError: se,
			Lower:         means[h] - z*se,
			Upper:         means[h] + z*se,
		}
	}
	return results, nil
}
