package timeseries

// Diff returns the lag-k difference of values, shortening the slice by k.
// An empty slice is returned when there are not enough observations.
func Diff(values []float64, lag int) []float64 {
	if lag <= 0 || len(values) <= lag {
		return []float64{}
	}
	result := make([]float64, len(values)-lag)
	for i := lag; i < len(values); i++ {
		result[i-lag] = values[i] - values[i-lag]
	}
	return result
}

// Difference applies d rounds of first differencing followed by sd rounds of
// seasonal differencing at lag period.
func Difference(values []float64, d, sd, period int) []float64 {
	out := values
	for i := 0; i < d; i++ {
		out = Diff(out, 1)
	}
	for i := 0; i < sd; i++ {
		out = Diff(out, period)
	}
	return out
}

// Integrate is the inverse of Difference for values that continue the series.
// diffed holds future values on the fully differenced scale; history is the
// original series the differencing was derived from. Seasonal differencing is
// undone first, using the tail of the d-differenced history, then first
// differencing is undone by cumulative summation from the history tail.
func Integrate(diffed, history []float64, d, sd, period int) []float64 {
	// Reconstruct every intermediate differencing stage of the history.
	// stages[i] -> stages[i+1] is a lag-1 step for i < d, a lag-period step after.
	stages := make([][]float64, 0, d+sd+1)
	cur := history
	stages = append(stages, cur)
	for i := 0; i < d; i++ {
		cur = Diff(cur, 1)
		stages = append(stages, cur)
	}
	for i := 0; i < sd; i++ {
		cur = Diff(cur, period)
		stages = append(stages, cur)
	}

	out := make([]float64, len(diffed))
	copy(out, diffed)

	for i := d + sd - 1; i >= 0; i-- {
		lag := 1
		if i >= d {
			lag = period
		}
		base := stages[i]
		n := len(base)
		integrated := make([]float64, len(out))
		for j := range out {
			if j < lag {
				idx := n - lag + j
				integrated[j] = out[j]
				if idx >= 0 && idx < n {
					integrated[j] += base[idx]
				}
			} else {
				integrated[j] = out[j] + integrated[j-lag]
			}
		}
		out = integrated
	}
	return out
}
