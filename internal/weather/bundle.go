package weather

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/skycastdev/skycast/pkg/forecast"
	"github.com/skycastdev/skycast/pkg/models/sarima"
)

// MaxForecastDays is the upper bound the interactive caller imposed on the
// horizon. The model core itself only requires a positive horizon.
const MaxForecastDays = 60

var ErrInvalidForecastDays = errors.New("forecast days must be between 1 and 60")

// Bundle holds the three channel forecasts aligned on the same future dates.
type Bundle struct {
	RunID       uuid.UUID
	Dates       []time.Time
	Temperature *forecast.Forecast
	Humidity    *forecast.Forecast
	WindSpeed   *forecast.Forecast
}

// ForecastAll fits and forecasts the three channels concurrently. The fits
// share no state; each operates on its own series and model. A channel that
// fails structurally fails the whole bundle, while non-convergence is only
// logged.
func ForecastAll(ctx context.Context, logger *zap.Logger, obs []Observation, days int, opts ...sarima.Option) (*Bundle, error) {
	if days < 1 || days > MaxForecastDays {
		return nil, ErrInvalidForecastDays
	}
	if len(obs) == 0 {
		return nil, ErrNoObservations
	}

	bundle := &Bundle{RunID: uuid.New()}
	log := logger.With(zap.Stringer("run_id", bundle.RunID))
	log.Info("forecasting weather channels",
		zap.Int("observations", len(obs)),
		zap.Int("forecast_days", days))

	targets := map[Channel]**forecast.Forecast{
		Temperature: &bundle.Temperature,
		Humidity:    &bundle.Humidity,
		WindSpeed:   &bundle.WindSpeed,
	}

	g, ctx := errgroup.WithContext(ctx)
	for channel, target := range targets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			series, err := Series(obs, channel)
			if err != nil {
				return err
			}
			res, err := forecast.FitAndForecastOrder(series, days, sarima.DefaultOrder(), opts...)
			if err != nil {
				log.Error("channel fit failed",
					zap.Stringer("channel", channel), zap.Error(err))
				return err
			}
			if !res.Diagnostics.Converged {
				log.Warn("channel fit did not converge, using best coefficients",
					zap.Stringer("channel", channel),
					zap.String("status", res.Diagnostics.Status),
					zap.Int("iterations", res.Diagnostics.Iterations))
			}
			log.Info("channel forecast ready",
				zap.Stringer("channel", channel),
				zap.Float64("log_likelihood", res.Diagnostics.LogLikelihood),
				zap.Float64("aic", res.Diagnostics.AIC))
			*target = res.Forecast
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	bundle.Dates = bundle.Temperature.Dates()
	return bundle, nil
}
