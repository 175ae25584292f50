package weather

import (
	"context"
	"time"

	"github.com/i474232898/weather-lookup/internal/metrics"
)

// Service orchestrates the strictly sequential resolve → fetch chain for one
// submitted query.
type Service struct {
	resolver *Resolver
	fetcher  *Fetcher
}

// NewService creates a new Service.
func NewService(resolver *Resolver, fetcher *Fetcher) *Service {
	return &Service{
		resolver: resolver,
		fetcher:  fetcher,
	}
}

// Lookup resolves query to a Location and fetches its weather. Geocoding
// always completes before the weather request starts.
func (s *Service) Lookup(ctx context.Context, query string) (Report, error) {
	start := time.Now()

	loc, err := s.resolver.Resolve(ctx, query)
	if err != nil {
		metrics.ObserveLookup(outcome(err), time.Since(start))
		return Report{}, err
	}

	report, err := s.fetcher.Fetch(ctx, loc)
	metrics.ObserveLookup(outcome(err), time.Since(start))
	return report, err
}
