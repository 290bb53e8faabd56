// Package sarima implements a seasonal ARIMA model in linear Gaussian
// state-space form, fitted by maximum likelihood through a Kalman filter.
package sarima

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/skycastdev/skycast/pkg/timeseries"
)

var (
	ErrInsufficientData = errors.New("insufficient data points for the specified order")
	ErrDegenerateSeries = errors.New("series has zero variance")
	ErrInvalidHorizon   = errors.New("forecast horizon must be positive")
	ErrModelNotFitted   = errors.New("model must be fitted before forecasting")
)

const (
	defaultConfidence = 0.95
	defaultMaxIter    = 500
)

// Model is a SARIMA model. A model is created for one series, fitted once,
// and consumed by Forecast; it holds no state shared with other fits.
type Model struct {
	order      Order
	mode       FitMode
	confidence float64
	maxIter    int

	arParams  []float64
	maParams  []float64
	sarParams []float64
	smaParams []float64
	variance  float64

	original []float64
	diffData []float64
	ss       *stateSpace
	state    *mat.VecDense
	cov      *mat.Dense

	diagnostics Diagnostics
	fitted      bool
}

// New creates an unfitted model with the given order.
func New(order Order, opts ...Option) (*Model, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}
	m := &Model{
		order:      order,
		mode:       Unconstrained,
		confidence: defaultConfidence,
		maxIter:    defaultMaxIter,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Order returns the model order.
func (m *Model) Order() Order {
	return m.order
}

// Confidence returns the two-sided confidence level used for forecast
// intervals.
func (m *Model) Confidence() float64 {
	return m.confidence
}

// IsFitted reports whether Fit has completed.
func (m *Model) IsFitted() bool {
	return m.fitted
}

// Diagnostics returns the fit diagnostics. Zero value before Fit.
func (m *Model) Diagnostics() Diagnostics {
	return m.diagnostics
}

// Coefficients returns the fitted AR, MA, seasonal AR and seasonal MA
// coefficients.
func (m *Model) Coefficients() (ar, ma, sar, sma []float64) {
	return cloneFloats(m.arParams), cloneFloats(m.maParams),
		cloneFloats(m.sarParams), cloneFloats(m.smaParams)
}

// Fit estimates the model coefficients from values by maximizing the
// Gaussian log-likelihood of the differenced series. Structural problems
// (too short, constant) fail fast before any numerical work; optimizer
// non-convergence never fails, the best coefficients found are kept and
// reported through Diagnostics.
func (m *Model) Fit(values []float64) error {
	if len(values) < m.order.minObservations() {
		return ErrInsufficientData
	}
	if isConstant(values) {
		return ErrDegenerateSeries
	}

	m.original = cloneFloats(values)
	m.diffData = timeseries.Difference(m.original, m.order.D, m.order.SD, m.order.Period)

	m.estimate()
	m.fitted = true
	return nil
}

func isConstant(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}

func cloneFloats(src []float64) []float64 {
	out := make([]float64, len(src))
	copy(out, src)
	return out
}
