package sarima

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
)

// estimate maximizes the concentrated log-likelihood over the ARMA
// coefficient vector with Nelder-Mead. The best vector seen is tracked
// independently of the optimizer outcome, so a capped or failed run still
// leaves the model fitted.
func (m *Model) estimate() {
	k := m.order.numParams()
	x0 := m.startPoint()

	if k == 0 || len(m.diffData) <= m.order.stateDim() {
		// Nothing the likelihood can distinguish; keep the start point.
		m.finalize(x0)
		m.diagnostics.Converged = true
		m.diagnostics.Status = "no effective observations"
		return
	}

	bestX := cloneFloats(x0)
	bestF := math.Inf(1)
	objective := func(x []float64) float64 {
		f := m.negLogLik(x)
		if f < bestF {
			bestF = f
			bestX = cloneFloats(x)
		}
		return f
	}

	if math.IsInf(objective(x0), 1) {
		// The seeded start is invalid for this series; the zero vector
		// always yields a valid filter pass.
		x0 = make([]float64, k)
	}

	problem := optimize.Problem{Func: objective}
	settings := &optimize.Settings{
		MajorIterations: m.maxIter,
		Converger: &optimize.FunctionConverge{
			Absolute:   1e-10,
			Iterations: 50,
		},
	}

	result, err := optimize.Minimize(problem, x0, settings, &optimize.NelderMead{})
	switch {
	case err != nil:
		m.diagnostics.Converged = false
		m.diagnostics.Status = err.Error()
	default:
		m.diagnostics.Status = result.Status.String()
		m.diagnostics.Converged = result.Status == optimize.FunctionConvergence ||
			result.Status == optimize.Success ||
			result.Status == optimize.MethodConverge
	}
	if result != nil {
		m.diagnostics.Iterations = result.Stats.MajorIterations
		m.diagnostics.FuncEvaluations = result.Stats.FuncEvaluations
	}

	m.finalize(bestX)
}

// negLogLik evaluates one candidate coefficient vector. Invalid trials
// (singular or non-finite innovation variance) report +Inf instead of
// aborting the fit.
func (m *Model) negLogLik(x []float64) float64 {
	ar, ma, sar, sma := m.paramsFromVector(x)
	ss := newStateSpace(m.order, ar, ma, sar, sma)
	res := ss.filter(m.diffData)
	if !res.ok {
		return math.Inf(1)
	}
	return -res.logLik
}

// finalize installs the coefficient vector and runs one last filter pass to
// capture the filtered state, covariance, and innovation variance.
func (m *Model) finalize(x []float64) {
	res := m.installParams(x)
	if !res.ok {
		// Should not happen for the tracked best, but the zero vector is
		// always filterable.
		res = m.installParams(make([]float64, len(x)))
	}

	m.variance = res.variance
	m.state = res.state
	m.cov = mat.NewDense(m.ss.dim, m.ss.dim, nil)
	m.cov.Scale(res.variance, res.cov)

	m.diagnostics.LogLikelihood = res.logLik
	m.diagnostics.Variance = res.variance

	// Information criteria over the effective observation count.
	nEff := len(m.diffData) - m.order.stateDim()
	if nEff < 0 {
		nEff = 0
	}
	params := float64(m.order.numParams() + 1)
	n := float64(nEff)
	m.diagnostics.AIC = -2*res.logLik + 2*params
	m.diagnostics.BIC = -2*res.logLik + params*math.Log(math.Max(n, 1))
	if n-params-1 > 0 {
		m.diagnostics.AICc = m.diagnostics.AIC + 2*params*(params+1)/(n-params-1)
	} else {
		m.diagnostics.AICc = math.Inf(1)
	}
}

func (m *Model) installParams(x []float64) filterResult {
	ar, ma, sar, sma := m.paramsFromVector(x)
	m.arParams, m.maParams, m.sarParams, m.smaParams = ar, ma, sar, sma
	m.ss = newStateSpace(m.order, ar, ma, sar, sma)
	return m.ss.filter(m.diffData)
}

// paramsFromVector splits the flat optimizer vector into the four
// coefficient groups, squashing through tanh in Constrained mode.
func (m *Model) paramsFromVector(x []float64) (ar, ma, sar, sma []float64) {
	transform := func(v float64) float64 { return v }
	if m.mode == Constrained {
		transform = math.Tanh
	}

	take := func(n int) []float64 {
		out := make([]float64, n)
		for i := range out {
			out[i] = transform(x[0])
			x = x[1:]
		}
		return out
	}
	ar = take(m.order.P)
	sar = take(m.order.SP)
	ma = take(m.order.Q)
	sma = take(m.order.SQ)
	return ar, ma, sar, sma
}

// startPoint seeds AR terms from the autocorrelation of the differenced
// series and MA terms with a small constant, deterministically.
func (m *Model) startPoint() []float64 {
	x := make([]float64, 0, m.order.numParams())
	for i := 0; i < m.order.P; i++ {
		x = append(x, 0.5*autocorr(m.diffData, i+1))
	}
	for i := 0; i < m.order.SP; i++ {
		x = append(x, 0.5*autocorr(m.diffData, (i+1)*m.order.Period))
	}
	for i := 0; i < m.order.Q+m.order.SQ; i++ {
		x = append(x, 0.1)
	}
	return x
}

// autocorr computes the sample autocorrelation of x at the given lag.
func autocorr(x []float64, lag int) float64 {
	n := len(x)
	if lag <= 0 || n <= lag {
		return 0
	}
	mean := 0.0
	for _, v := range x {
		mean += v
	}
	mean /= float64(n)

	c0 := 0.0
	for _, v := range x {
		c0 += (v - mean) * (v - mean)
	}
	if c0 == 0 {
		return 0
	}
	ck := 0.0
	for t := lag; t < n; t++ {
		ck += (x[t] - mean) * (x[t-lag] - mean)
	}
	return ck / c0
}
