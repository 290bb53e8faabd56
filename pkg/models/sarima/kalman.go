package sarima

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	// diffuseKappa approximates a diffuse prior on the initial state.
	diffuseKappa = 1e6
	// minVariance keeps the concentrated innovation variance strictly
	// positive on noiseless series.
	minVariance = 1e-12
)

// filterResult carries the outcome of one Kalman forward pass with the
// innovation variance concentrated out (unit-variance filtering).
type filterResult struct {
	ok       bool
	logLik   float64
	variance float64
	state    *mat.VecDense // filtered state mean after the last observation
	cov      *mat.Dense    // filtered state covariance, unit-variance scale
}

// filter runs the Kalman forward pass over y, accumulating the concentrated
// Gaussian log-likelihood. The first dim innovations are excluded from the
// likelihood to burn in the diffuse prior. A trial producing a non-positive
// or non-finite innovation variance is reported as invalid, never a panic.
func (ss *stateSpace) filter(y []float64) filterResult {
	r := ss.dim

	a := mat.NewVecDense(r, nil)
	p := mat.NewDense(r, r, nil)
	for i := 0; i < r; i++ {
		p.Set(i, i, diffuseKappa)
	}

	noise := mat.NewDense(r, r, nil)
	noise.Outer(1, ss.sel, ss.sel)

	var (
		pred    mat.VecDense
		tp, ptt mat.Dense
		gain    mat.VecDense
		corr    mat.Dense
	)

	burn := r
	sumLogF := 0.0
	ssq := 0.0
	nEff := 0

	for t, yt := range y {
		// State prediction.
		pred.MulVec(ss.trans, a)
		a.CopyVec(&pred)
		tp.Mul(ss.trans, p)
		ptt.Mul(&tp, ss.trans.T())
		p.Copy(&ptt)
		p.Add(p, noise)

		f := p.At(0, 0)
		if f <= 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return filterResult{}
		}

		// Measurement update.
		v := yt - a.AtVec(0)
		gain.ScaleVec(1/f, p.ColView(0))
		a.AddScaledVec(a, v, &gain)
		corr.Outer(1, &gain, p.RowView(0))
		p.Sub(p, &corr)

		if t >= burn {
			sumLogF += math.Log(f)
			ssq += v * v / f
			nEff++
		}
	}

	res := filterResult{ok: true, state: a, cov: p}
	if nEff == 0 {
		// Too few observations beyond the burn-in; the model is still
		// usable for projection, with a collapsed innovation variance.
		return res
	}

	n := float64(nEff)
	res.variance = ssq / n
	if res.variance < minVariance {
		res.variance = minVariance
	}
	res.logLik = -0.5*n*(math.Log(2*math.Pi)+1+math.Log(res.variance)) - 0.5*sumLogF
	if math.IsNaN(res.logLik) || math.IsInf(res.logLik, 0) {
		return filterResult{}
	}
	return res
}
