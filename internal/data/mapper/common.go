package mapper

import (
	"time"

	"github.com/skycastdev/skycast/internal/weather"
)

// BinaryObservation is the packed on-disk record layout. The struct must not
// be padded for the mmap reader, so the date travels as unix nanoseconds.
type BinaryObservation struct {
	TimeStamp   int64
	Temperature float64
	Humidity    float64
	WindSpeed   float64
}

func (b BinaryObservation) ToObservation(obs *weather.Observation) {
	obs.Date = time.Unix(0, b.TimeStamp).UTC()
	obs.Temperature = b.Temperature
	obs.Humidity = b.Humidity
	obs.WindSpeed = b.WindSpeed
}

func FromObservation(obs weather.Observation) BinaryObservation {
	return BinaryObservation{
		TimeStamp:   obs.Date.UnixNano(),
		Temperature: obs.Temperature,
		Humidity:    obs.Humidity,
		WindSpeed:   obs.WindSpeed,
	}
}
