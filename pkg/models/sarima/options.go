package sarima

// FitMode selects how coefficients are treated during likelihood
// maximization.
type FitMode int

const (
	// Unconstrained optimizes raw coefficients with no stationarity or
	// invertibility restriction. Numerical instability on pathological
	// series is possible and accepted.
	Unconstrained FitMode = iota
	// Constrained maps every raw coefficient through tanh into (-1, 1),
	// keeping each polynomial factor stationary and invertible.
	Constrained
)

type Option func(*Model)

func WithFitMode(mode FitMode) Option {
	return func(m *Model) {
		m.mode = mode
	}
}

// WithConfidenceLevel sets the two-sided confidence level for forecast
// intervals. Values outside (0, 1) are ignored.
func WithConfidenceLevel(level float64) Option {
	return func(m *Model) {
		if level > 0 && level < 1 {
			m.confidence = level
		}
	}
}

// WithMaxIterations caps the optimizer's major iterations.
func WithMaxIterations(n int) Option {
	return func(m *Model) {
		if n > 0 {
			m.maxIter = n
		}
	}
}
