package providers

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// RateLimitedGeocoder wraps a Geocoder with a token-bucket limiter. It is used
// for typeahead, where every keystroke would otherwise hit the upstream.
type RateLimitedGeocoder struct {
	geocoder weather.Geocoder
	limiter  *rate.Limiter
	name     string
}

// NewRateLimitedGeocoder allows rps requests per second with the given burst.
func NewRateLimitedGeocoder(geocoder weather.Geocoder, rps float64, burst int) *RateLimitedGeocoder {
	return &RateLimitedGeocoder{
		geocoder: geocoder,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
		name:     fmt.Sprintf("%s [Rate Limited]", geocoder.Name()),
	}
}

// Search waits for limiter permission or context cancellation, then forwards.
func (r *RateLimitedGeocoder) Search(ctx context.Context, name string, count int) ([]weather.Candidate, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.geocoder.Search(ctx, name, count)
}

func (r *RateLimitedGeocoder) Name() string {
	return r.name
}

var _ weather.Geocoder = (*RateLimitedGeocoder)(nil)
