package main

import "flag"

const (
	DefaultForecastDays = 10
	DefaultConfidence   = 0.95
	ObservationTable    = "observations"
)

var (
	csvPath      = flag.String("csv", "", "observations CSV file (date,temperature,humidity,wind_speed)")
	binPath      = flag.String("bin", "", "packed binary observations file")
	dbPath       = flag.String("db", "", "DuckDB observations database")
	forecastDays = flag.Int("days", DefaultForecastDays, "forecast horizon in days (1-60)")
	window       = flag.Int("window", 0, "fit only the most recent N observations (0 = all)")
	confidence   = flag.Float64("level", DefaultConfidence, "two-sided confidence level for forecast bounds")
	constrained  = flag.Bool("constrained", false, "constrain coefficients to the stationary region")
	verbose      = flag.Bool("v", false, "verbose logging")
)
