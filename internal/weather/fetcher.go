package weather

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Fetcher retrieves and normalizes weather for a resolved Location and records
// the location in the search history on success.
type Fetcher struct {
	source  ForecastSource
	history History
	now     func() time.Time
	log     logrus.FieldLogger
}

// NewFetcher creates a Fetcher. history may be nil.
func NewFetcher(source ForecastSource, history History, log logrus.FieldLogger) *Fetcher {
	return &Fetcher{
		source:  source,
		history: history,
		now:     time.Now,
		log:     log,
	}
}

// Fetch returns the current conditions and the next five days for loc.
func (f *Fetcher) Fetch(ctx context.Context, loc Location) (Report, error) {
	name := loc.DisplayName()

	payload, err := f.source.Forecast(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		return Report{}, fmt.Errorf("fetch weather for %s: %w", name, err)
	}

	current, forecast, err := NormalizeForecast(payload, loc, f.now())
	if err != nil {
		return Report{}, fmt.Errorf("normalize weather for %s: %w", name, err)
	}

	var history []string
	if f.history != nil {
		history = f.history.Record(ctx, name)
	}

	f.log.WithFields(logrus.Fields{
		"location": name,
		"provider": f.source.Name(),
		"tempC":    current.TemperatureC,
	}).Info("weather fetched")

	return Report{
		Location: loc,
		Current:  current,
		Forecast: forecast,
		History:  history,
	}, nil
}

// NormalizeForecast converts an upstream payload into the domain model. Daily
// index 0 is the location's current day and is skipped; indices 1 through 5
// become the forecast.
func NormalizeForecast(payload ForecastPayload, loc Location, observedAt time.Time) (CurrentWeather, []ForecastDay, error) {
	daily := payload.Daily
	n := len(daily.Time)
	if len(daily.WeatherCode) != n || len(daily.MaxTemperatureC) != n || len(daily.MinTemperatureC) != n {
		return CurrentWeather{}, nil, fmt.Errorf("%w: daily arrays differ in length (time=%d code=%d max=%d min=%d)",
			ErrMalformedForecast, n, len(daily.WeatherCode), len(daily.MaxTemperatureC), len(daily.MinTemperatureC))
	}
	if n < ForecastDays+1 {
		return CurrentWeather{}, nil, fmt.Errorf("%w: need %d daily entries, got %d", ErrMalformedForecast, ForecastDays+1, n)
	}

	forecast := make([]ForecastDay, 0, ForecastDays)
	for i := 1; i <= ForecastDays; i++ {
		date, err := ParseDate(daily.Time[i])
		if err != nil {
			return CurrentWeather{}, nil, fmt.Errorf("%w: %v", ErrMalformedForecast, err)
		}
		if len(forecast) > 0 {
			if prev := forecast[len(forecast)-1].Date; date.DaysSince(prev) != 1 {
				return CurrentWeather{}, nil, fmt.Errorf("%w: %s does not follow %s", ErrMalformedForecast, date, prev)
			}
		}
		forecast = append(forecast, ForecastDay{
			Date:            date,
			WeatherCode:     daily.WeatherCode[i],
			MaxTemperatureC: roundHalfUp(daily.MaxTemperatureC[i]),
			MinTemperatureC: roundHalfUp(daily.MinTemperatureC[i]),
		})
	}

	current := CurrentWeather{
		LocationLabel: loc.DisplayName(),
		TemperatureC:  roundHalfUp(payload.Current.TemperatureC),
		HumidityPct:   roundHalfUp(payload.Current.HumidityPct),
		WeatherCode:   payload.Current.WeatherCode,
		Timezone:      loc.Timezone,
		ObservedAt:    observedAt,
	}
	return current, forecast, nil
}
