package sarima

import "gonum.org/v1/gonum/mat"

// stateSpace is the Harvey representation of the ARMA process left after
// differencing: state dimension r = max(p+m*P, q+m*Q+1), transition matrix
// with the reduced AR coefficients in the first column and an identity
// superdiagonal, selection vector (1, theta_1, ...), observation vector e1.
type stateSpace struct {
	dim   int
	phi   []float64 // reduced-form AR coefficients, phi[0] at lag 1
	theta []float64 // reduced-form MA coefficients, theta[0] at lag 1
	trans *mat.Dense
	sel   *mat.VecDense
}

// polyMul multiplies two lag polynomials given as coefficient slices with the
// constant term at index 0.
func polyMul(a, b []float64) []float64 {
	if len(a) == 0 || len(b) == 0 {
		return []float64{1}
	}
	out := make([]float64, len(a)+len(b)-1)
	for i, av := range a {
		if av == 0 {
			continue
		}
		for j, bv := range b {
			out[i+j] += av * bv
		}
	}
	return out
}

// arPoly builds the expanded polynomial phi(B) * PHI(B^m) with the
// convention 1 - c_1*B - c_2*B^2 - ...
func arPoly(ar, sar []float64, period int) []float64 {
	return polyMul(lagPoly(ar, 1, -1), lagPoly(sar, period, -1))
}

// maPoly builds the expanded polynomial theta(B) * THETA(B^m) with the
// convention 1 + c_1*B + c_2*B^2 + ...
func maPoly(ma, sma []float64, period int) []float64 {
	return polyMul(lagPoly(ma, 1, 1), lagPoly(sma, period, 1))
}

// lagPoly expands coefficients at multiples of step into a dense polynomial
// 1 + sign*c_1*B^step + sign*c_2*B^(2*step) + ...
func lagPoly(coeffs []float64, step int, sign float64) []float64 {
	out := make([]float64, len(coeffs)*step+1)
	out[0] = 1
	for i, c := range coeffs {
		out[(i+1)*step] = sign * c
	}
	return out
}

// diffPoly expands (1-B)^d * (1-B^m)^sd.
func diffPoly(d, sd, period int) []float64 {
	out := []float64{1}
	for i := 0; i < d; i++ {
		out = polyMul(out, []float64{1, -1})
	}
	seasonal := make([]float64, period+1)
	seasonal[0] = 1
	seasonal[period] = -1
	for i := 0; i < sd; i++ {
		out = polyMul(out, seasonal)
	}
	return out
}

// newStateSpace assembles the transition matrix and selection vector for the
// given coefficient sets.
func newStateSpace(order Order, ar, ma, sar, sma []float64) *stateSpace {
	dim := order.stateDim()

	full := arPoly(ar, sar, order.Period)
	phi := make([]float64, dim)
	for i := 1; i < len(full) && i <= dim; i++ {
		phi[i-1] = -full[i]
	}

	fullMA := maPoly(ma, sma, order.Period)
	theta := make([]float64, dim-1)
	for i := 1; i < len(fullMA) && i <= dim-1; i++ {
		theta[i-1] = fullMA[i]
	}

	trans := mat.NewDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		trans.Set(i, 0, phi[i])
		if i+1 < dim {
			trans.Set(i, i+1, 1)
		}
	}

	sel := mat.NewVecDense(dim, nil)
	sel.SetVec(0, 1)
	for i, t := range theta {
		sel.SetVec(i+1, t)
	}

	return &stateSpace{
		dim:   dim,
		phi:   phi,
		theta: theta,
		trans: trans,
		sel:   sel,
	}
}

// psiWeights returns the first n MA-infinity weights of the full integrated
// process, including the differencing operators. psi[0] is always 1.
func psiWeights(order Order, ar, ma, sar, sma []float64, n int) []float64 {
	full := polyMul(arPoly(ar, sar, order.Period), diffPoly(order.D, order.SD, order.Period))
	fullMA := maPoly(ma, sma, order.Period)

	psi := make([]float64, n)
	if n == 0 {
		return psi
	}
	psi[0] = 1
	for j := 1; j < n; j++ {
		if j < len(fullMA) {
			psi[j] = fullMA[j]
		}
		for k := 1; k < len(full) && k <= j; k++ {
			psi[j] -= full[k] * psi[j-k]
		}
	}
	return psi
}
