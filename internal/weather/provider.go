package weather

import (
	"context"
)

// Geocoder abstracts a free-text place search (e.g. Open-Meteo geocoding).
// An empty result with a nil error means the service answered with no matches.
type Geocoder interface {
	Name() string
	Search(ctx context.Context, name string, count int) ([]Candidate, error)
}

// ForecastSource abstracts a weather service returning current conditions and
// daily arrays for a coordinate.
type ForecastSource interface {
	Name() string
	Forecast(ctx context.Context, latitude, longitude float64) (ForecastPayload, error)
}

// History is the contract the search-history store must satisfy.
// Record never fails; persistence problems are handled by the store.
type History interface {
	Record(ctx context.Context, name string) []string
}
