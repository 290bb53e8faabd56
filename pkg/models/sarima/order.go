package sarima

import "errors"

var ErrInvalidOrder = errors.New("model order components must be non-negative with a seasonal period > 1")

// Order represents SARIMA model order (p, d, q) x (P, D, Q)_m. It is an
// explicit immutable value passed into the model constructor; the estimator
// carries no hidden default.
type Order struct {
	P int // Non-seasonal AR order
	D int // Non-seasonal differencing order
	Q int // Non-seasonal MA order
	// Seasonal components
	SP     int // Seasonal AR order
	SD     int // Seasonal differencing order
	SQ     int // Seasonal MA order
	Period int // Seasonal period, e.g. 12
}

// DefaultOrder returns the (1,1,1)x(1,1,1)_12 order used for every weather
// channel.
func DefaultOrder() Order {
	return Order{P: 1, D: 1, Q: 1, SP: 1, SD: 1, SQ: 1, Period: 12}
}

// Validate checks the order components.
func (o Order) Validate() error {
	if o.P < 0 || o.D < 0 || o.Q < 0 || o.SP < 0 || o.SD < 0 || o.SQ < 0 {
		return ErrInvalidOrder
	}
	if (o.SP > 0 || o.SD > 0 || o.SQ > 0) && o.Period < 2 {
		return ErrInvalidOrder
	}
	return nil
}

// arLag returns the order of the expanded autoregressive polynomial.
func (o Order) arLag() int {
	return o.P + o.Period*o.SP
}

// maLag returns the order of the expanded moving-average polynomial.
func (o Order) maLag() int {
	return o.Q + o.Period*o.SQ
}

// stateDim returns the Harvey state-space dimension.
func (o Order) stateDim() int {
	dim := o.arLag()
	if m := o.maLag() + 1; m > dim {
		dim = m
	}
	if dim < 1 {
		dim = 1
	}
	return dim
}

// minObservations returns the shortest series the differencing transforms of
// this order can be applied to and inverted from.
func (o Order) minObservations() int {
	n := o.D + o.SD*o.Period
	if n < 1 {
		n = 1
	}
	return n
}

// numParams returns the number of free ARMA coefficients.
func (o Order) numParams() int {
	return o.P + o.SP + o.Q + o.SQ
}
