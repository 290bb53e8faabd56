package forecast

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/skycastdev/skycast/pkg/models/sarima"
	"github.com/skycastdev/skycast/pkg/timeseries"
)

var testStart = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func testSeries(n int) *timeseries.Series {
	values := make([]float64, n)
	for i := range values {
		ti := float64(i)
		values[i] = 15 + 0.1*ti + 4*math.Sin(2*math.Pi*ti/12) + 0.5*float64(i%5-2)
	}
	return timeseries.FromValues(testStart, values)
}

func TestFitAndForecastDates(t *testing.T) {
	series := testSeries(60)

	fc, err := FitAndForecast(series, 10)
	if err != nil {
		t.Fatalf("FitAndForecast() failed: %v", err)
	}

	if len(fc.Points) != 10 {
		t.Fatalf("len(Points) = %d, want 10", len(fc.Points))
	}
	last, _ := series.Last()
	for i, p := range fc.Points {
		want := last.AddDate(0, 0, i+1)
		if !p.Date.Equal(want) {
			t.Errorf("Points[%d].Date = %v, want %v", i, p.Date, want)
		}
		if p.Lower > p.Mean || p.Upper < p.Mean {
			t.Errorf("Points[%d] bounds [%v, %v] do not bracket mean %v",
				i, p.Lower, p.Upper, p.Mean)
		}
	}
	if fc.Level != 0.95 {
		t.Errorf("Level = %v, want 0.95", fc.Level)
	}
}

func TestFitAndForecastErrors(t *testing.T) {
	constant := timeseries.FromValues(testStart, make([]float64, 30))

	tests := []struct {
		name    string
		series  *timeseries.Series
		days    int
		wantErr error
	}{
		{name: "zero horizon", series: testSeries(60), days: 0, wantErr: sarima.ErrInvalidHorizon},
		{name: "negative horizon", series: testSeries(60), days: -3, wantErr: sarima.ErrInvalidHorizon},
		{name: "short series", series: testSeries(12), days: 5, wantErr: sarima.ErrInsufficientData},
		{name: "constant series", series: constant, days: 5, wantErr: sarima.ErrDegenerateSeries},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FitAndForecast(tt.series, tt.days); !errors.Is(err, tt.wantErr) {
				t.Errorf("FitAndForecast() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFitAndForecastOrderDiagnostics(t *testing.T) {
	res, err := FitAndForecastOrder(testSeries(60), 7, sarima.DefaultOrder())
	if err != nil {
		t.Fatalf("FitAndForecastOrder() failed: %v", err)
	}

	if res.Forecast == nil || len(res.Forecast.Points) != 7 {
		t.Fatal("forecast missing or wrong length")
	}
	d := res.Diagnostics
	if math.IsNaN(d.LogLikelihood) {
		t.Error("diagnostics not populated")
	}
	if d.Status == "" {
		t.Error("convergence status not populated")
	}
}

func TestForecastAccessors(t *testing.T) {
	fc, err := FitAndForecast(testSeries(60), 4)
	if err != nil {
		t.Fatalf("FitAndForecast() failed: %v", err)
	}

	means := fc.Means()
	dates := fc.Dates()
	if len(means) != 4 || len(dates) != 4 {
		t.Fatalf("accessor lengths = %d, %d, want 4", len(means), len(dates))
	}
	for i := range means {
		if means[i] != fc.Points[i].Mean {
			t.Errorf("Means[%d] = %v, want %v", i, means[i], fc.Points[i].Mean)
		}
		if !dates[i].Equal(fc.Points[i].Date) {
			t.Errorf("Dates[%d] = %v, want %v", i, dates[i], fc.Points[i].Date)
		}
	}
}

func TestFitAndForecastOptions(t *testing.T) {
	fc, err := FitAndForecast(testSeries(60), 5, sarima.WithConfidenceLevel(0.8))
	if err != nil {
		t.Fatalf("FitAndForecast() failed: %v", err)
	}
	if fc.Level != 0.8 {
		t.Errorf("Level = %v, want 0.8", fc.Level)
	}
}
