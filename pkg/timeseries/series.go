// Package timeseries provides the daily time series type and the
// differencing transforms used by the forecasting models.
package timeseries

import (
	"errors"
	"math"
	"time"
)

var (
	ErrLengthMismatch   = errors.New("dates and values must have the same length")
	ErrEmptySeries      = errors.New("series must not be empty")
	ErrIrregularCadence = errors.New("series must have strictly increasing daily dates")
)

// Series is an ordered daily time series. Dates are strictly increasing with
// an exact one day step; irregular input is rejected at construction rather
// than resampled.
type Series struct {
	Dates  []time.Time
	Values []float64
}

// New creates a series after validating length and daily cadence.
func New(dates []time.Time, values []float64) (*Series, error) {
	if len(dates) != len(values) {
		return nil, ErrLengthMismatch
	}
	if len(values) == 0 {
		return nil, ErrEmptySeries
	}
	for i := 1; i < len(dates); i++ {
		if !dates[i].Equal(dates[i-1].AddDate(0, 0, 1)) {
			return nil, ErrIrregularCadence
		}
	}
	return &Series{Dates: dates, Values: values}, nil
}

// FromValues creates a series of consecutive days starting at start.
func FromValues(start time.Time, values []float64) *Series {
	dates := make([]time.Time, len(values))
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
	}
	return &Series{Dates: dates, Values: values}
}

// Len returns the number of observations.
func (s *Series) Len() int {
	return len(s.Values)
}

// Last returns the final date and value of the series.
func (s *Series) Last() (time.Time, float64) {
	n := len(s.Values)
	return s.Dates[n-1], s.Values[n-1]
}

// Mean calculates the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s.Values {
		sum += v
	}
	return sum / float64(len(s.Values))
}

// Variance calculates the sample variance of the series.
func (s *Series) Variance() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	mean := s.Mean()
	sumSq := 0.0
	for _, v := range s.Values {
		diff := v - mean
		sumSq += diff * diff
	}
	return sumSq / float64(len(s.Values)-1)
}

// Std calculates the standard deviation of the series.
func (s *Series) Std() float64 {
	return math.Sqrt(s.Variance())
}

// Min returns the minimum value in the series.
func (s *Series) Min() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	min := s.Values[0]
	for _, v := range s.Values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the maximum value in the series.
func (s *Series) Max() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	max := s.Values[0]
	for _, v := range s.Values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// IsConstant reports whether every value in the series is identical.
func (s *Series) IsConstant() bool {
	return len(s.Values) > 0 && s.Min() == s.Max()
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	dates := make([]time.Time, len(s.Dates))
	copy(dates, s.Dates)
	values := make([]float64, len(s.Values))
	copy(values, s.Values)
	return &Series{Dates: dates, Values: values}
}

// FutureDates returns the n consecutive days immediately following the last
// date of the series.
func (s *Series) FutureDates(n int) []time.Time {
	last := s.Dates[len(s.Dates)-1]
	dates := make([]time.Time, n)
	for i := range dates {
		dates[i] = last.AddDate(0, 0, i+1)
	}
	return dates
}
