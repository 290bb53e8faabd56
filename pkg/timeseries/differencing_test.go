package timeseries

import (
	"math"
	"testing"
)

func almostEqual(t *testing.T, got, want, tol float64, label string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (tol %v)", label, got, want, tol)
	}
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		lag    int
		want   []float64
	}{
		{
			name:   "first difference",
			values: []float64{1, 2, 4, 7},
			lag:    1,
			want:   []float64{1, 2, 3},
		},
		{
			name:   "seasonal difference",
			values: []float64{1, 2, 3, 4, 6, 9},
			lag:    3,
			want:   []float64{3, 4, 6},
		},
		{
			name:   "too short",
			values: []float64{1, 2},
			lag:    3,
			want:   []float64{},
		},
		{
			name:   "zero lag",
			values: []float64{1, 2},
			lag:    0,
			want:   []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(tt.values, tt.lag)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Diff[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDifferenceLength(t *testing.T) {
	values := make([]float64, 60)
	for i := range values {
		values[i] = float64(i * i)
	}

	got := Difference(values, 1, 1, 12)
	if len(got) != 60-1-12 {
		t.Fatalf("len = %d, want %d", len(got), 60-1-12)
	}
}

// Differencing a series and integrating the differenced tail back must
// reproduce the held-out part of the original series exactly.
func TestIntegrateRoundTrip(t *testing.T) {
	tests := []struct {
		name          string
		d, sd, period int
	}{
		{name: "first and seasonal", d: 1, sd: 1, period: 12},
		{name: "double first difference", d: 2, sd: 0, period: 12},
		{name: "seasonal only", d: 0, sd: 1, period: 12},
		{name: "first only", d: 1, sd: 0, period: 12},
	}

	const n, holdout = 48, 10
	series := make([]float64, n)
	for i := range series {
		ti := float64(i)
		series[i] = 10 + 0.3*ti + 0.01*ti*ti + 3*math.Sin(2*math.Pi*ti/12)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diffed := Difference(series, tt.d, tt.sd, tt.period)
			drop := tt.d + tt.sd*tt.period

			if len(diffed) != n-drop {
				t.Fatalf("differenced len = %d, want %d", len(diffed), n-drop)
			}

			history := series[:n-holdout]
			tail := diffed[len(diffed)-holdout:]

			got := Integrate(tail, history, tt.d, tt.sd, tt.period)
			if len(got) != holdout {
				t.Fatalf("integrated len = %d, want %d", len(got), holdout)
			}
			for i := range got {
				almostEqual(t, got[i], series[n-holdout+i], 1e-9, "integrated value")
			}
		})
	}
}

func TestIntegrateNoDifferencing(t *testing.T) {
	history := []float64{1, 2, 3}
	forecasts := []float64{4, 5}

	got := Integrate(forecasts, history, 0, 0, 12)
	for i := range got {
		if got[i] != forecasts[i] {
			t.Errorf("Integrate[%d] = %v, want %v", i, got[i], forecasts[i])
		}
	}
}
