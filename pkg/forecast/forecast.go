// Package forecast exposes the fit-and-forecast entry point over a daily
// time series.
package forecast

import (
	"time"

	"github.com/skycastdev/skycast/pkg/models/sarima"
	"github.com/skycastdev/skycast/pkg/timeseries"
)

// Point is one forecast step: predicted mean with two-sided confidence
// bounds, on the original series scale.
type Point struct {
	Date  time.Time
	Mean  float64
	Lower float64
	Upper float64
}

// Forecast is an ordered sequence of forecast points for consecutive days
// immediately following the fitted series. Owned by the caller; holds no
// reference back to the fitted model.
type Forecast struct {
	Points []Point
	Level  float64
}

// Means returns the point predictions.
func (f *Forecast) Means() []float64 {
	out := make([]float64, len(f.Points))
	for i, p := range f.Points {
		out[i] = p.Mean
	}
	return out
}

// Dates returns the forecast dates.
func (f *Forecast) Dates() []time.Time {
	out := make([]time.Time, len(f.Points))
	for i, p := range f.Points {
		out[i] = p.Date
	}
	return out
}

// Result bundles a forecast with the fit diagnostics so callers can inspect
// convergence without the fit ever failing on poor quality.
type Result struct {
	Forecast    *Forecast
	Diagnostics sarima.Diagnostics
}

// FitAndForecast fits a (1,1,1)x(1,1,1)_12 model to the series and projects
// it forecastDays steps ahead.
func FitAndForecast(series *timeseries.Series, forecastDays int, opts ...sarima.Option) (*Forecast, error) {
	res, err := FitAndForecastOrder(series, forecastDays, sarima.DefaultOrder(), opts...)
	if err != nil {
		return nil, err
	}
	return res.Forecast, nil
}

// FitAndForecastOrder is FitAndForecast with an explicit model order,
// returning the fit diagnostics alongside the forecast.
func FitAndForecastOrder(series *timeseries.Series, forecastDays int, order sarima.Order, opts ...sarima.Option) (*Result, error) {
	if forecastDays < 1 {
		return nil, sarima.ErrInvalidHorizon
	}

	model, err := sarima.New(order, opts...)
	if err != nil {
		return nil, err
	}
	if err := model.Fit(series.Values); err != nil {
		return nil, err
	}
	steps, err := model.Forecast(forecastDays)
	if err != nil {
		return nil, err
	}

	dates := series.FutureDates(forecastDays)
	points := make([]Point, forecastDays)
	for i, s := range steps {
		points[i] = Point{
			Date:  dates[i],
			Mean:  s.Mean,
			Lower: s.Lower,
			Upper: s.Upper,
		}
	}
	return &Result{
		Forecast:    &Forecast{Points: points, Level: model.Confidence()},
		Diagnostics: model.Diagnostics(),
	}, nil
}
