// Package weather models daily weather observations and runs the three
// independent channel forecasts.
package weather

import (
	"errors"
	"time"

	"github.com/skycastdev/skycast/pkg/timeseries"
)

var ErrNoObservations = errors.New("no observations loaded")

// Observation is one daily weather record.
type Observation struct {
	Date        time.Time
	Temperature float64
	Humidity    float64
	WindSpeed   float64
}

// Channel identifies one of the three independently modeled quantities.
type Channel int

const (
	Temperature Channel = iota
	Humidity
	WindSpeed
)

func (c Channel) String() string {
	switch c {
	case Temperature:
		return "temperature"
	case Humidity:
		return "humidity"
	case WindSpeed:
		return "wind_speed"
	default:
		return "unknown"
	}
}

// Series extracts one measurement channel as a daily time series, validating
// cadence in the process.
func Series(obs []Observation, channel Channel) (*timeseries.Series, error) {
	if len(obs) == 0 {
		return nil, ErrNoObservations
	}
	dates := make([]time.Time, len(obs))
	values := make([]float64, len(obs))
	for i, o := range obs {
		dates[i] = o.Date
		switch channel {
		case Humidity:
			values[i] = o.Humidity
		case WindSpeed:
			values[i] = o.WindSpeed
		default:
			values[i] = o.Temperature
		}
	}
	return timeseries.New(dates, values)
}
