package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/govalues/decimal"
	"go.uber.org/zap"

	"github.com/skycastdev/skycast/internal/data/duckdb"
	"github.com/skycastdev/skycast/internal/data/mapper"
	"github.com/skycastdev/skycast/internal/dbg"
	"github.com/skycastdev/skycast/internal/weather"
	"github.com/skycastdev/skycast/pkg/forecast"
	"github.com/skycastdev/skycast/pkg/models/sarima"
)

func main() {
	flag.Parse()

	logger := dbg.NewLogger(*verbose)
	defer func(logger *zap.Logger) {
		_ = logger.Sync()
	}(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	obs, err := loadObservations(ctx)
	if err != nil {
		logger.Fatal("unable to load observations", zap.Error(err))
	}
	if *window > 0 && len(obs) > *window {
		obs = obs[len(obs)-*window:]
	}
	printSummary(obs)

	opts := []sarima.Option{sarima.WithConfidenceLevel(*confidence)}
	if *constrained {
		opts = append(opts, sarima.WithFitMode(sarima.Constrained))
	}

	bundle, err := weather.ForecastAll(ctx, logger, obs, *forecastDays, opts...)
	if err != nil {
		logger.Fatal("forecast failed", zap.Error(err))
	}

	printBundle(bundle)
}

func loadObservations(ctx context.Context) ([]weather.Observation, error) {
	switch {
	case *csvPath != "":
		return weather.ReadCSV(*csvPath)
	case *binPath != "":
		records, err := mapper.ReadAll(*binPath)
		if err != nil {
			return nil, err
		}
		obs := make([]weather.Observation, len(records))
		for i, r := range records {
			r.ToObservation(&obs[i])
		}
		return obs, nil
	case *dbPath != "":
		reader := duckdb.NewReader(*dbPath)
		if err := reader.Connect(); err != nil {
			return nil, err
		}
		defer reader.Close()

		var obs []weather.Observation
		err := reader.LoadObservations(ctx, ObservationTable, time.Time{}, time.Now(),
			func(o weather.Observation) error {
				obs = append(obs, o)
				return nil
			})
		return obs, err
	default:
		return nil, fmt.Errorf("one of -csv, -bin or -db is required")
	}
}

func printSummary(obs []weather.Observation) {
	if len(obs) == 0 {
		return
	}
	fmt.Printf("history: %d observations, %s to %s\n", len(obs),
		obs[0].Date.Format("2006-01-02"), obs[len(obs)-1].Date.Format("2006-01-02"))
	fmt.Println("channel      mean    std     min     max")
	for _, channel := range []weather.Channel{weather.Temperature, weather.Humidity, weather.WindSpeed} {
		s, err := weather.Series(obs, channel)
		if err != nil {
			continue
		}
		fmt.Printf("%-11s  %-6s  %-6s  %-6s  %-6s\n", channel,
			rescale(s.Mean()), rescale(s.Std()), rescale(s.Min()), rescale(s.Max()))
	}
	fmt.Println()
}

func printBundle(bundle *weather.Bundle) {
	fmt.Printf("run %s, %d day forecast (%.0f%% bounds)\n",
		bundle.RunID, len(bundle.Dates), bundle.Temperature.Level*100)
	fmt.Println("date        temperature          humidity             wind_speed")
	for i, date := range bundle.Dates {
		fmt.Printf("%s  %s  %s  %s\n",
			date.Format("2006-01-02"),
			cell(bundle.Temperature, i),
			cell(bundle.Humidity, i),
			cell(bundle.WindSpeed, i))
	}
}

// cell renders one forecast point as mean [lower, upper] at a fixed scale.
func cell(f *forecast.Forecast, i int) string {
	p := f.Points[i]
	return fmt.Sprintf("%s [%s, %s]", rescale(p.Mean), rescale(p.Lower), rescale(p.Upper))
}

func rescale(v float64) string {
	d, err := decimal.NewFromFloat64(v)
	if err != nil {
		return fmt.Sprintf("%.2f", v)
	}
	return d.Rescale(2).String()
}
