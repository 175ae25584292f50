package weather

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/i474232898/weather-lookup/internal/common"
	"github.com/i474232898/weather-lookup/internal/metrics"
)

// DefaultResolveCount is the number of candidates requested per strategy.
const DefaultResolveCount = 50

// Resolver turns free-text queries into a single validated Location.
type Resolver struct {
	geocoder Geocoder
	count    int
	log      logrus.FieldLogger
}

// NewResolver creates a Resolver. A non-positive count uses DefaultResolveCount.
func NewResolver(geocoder Geocoder, count int, log logrus.FieldLogger) *Resolver {
	if count <= 0 {
		count = DefaultResolveCount
	}
	return &Resolver{geocoder: geocoder, count: count, log: log}
}

// Resolve searches with the full query first and, if that yields nothing and
// the query has a comma, with the bare city name before the first comma.
func (r *Resolver) Resolve(ctx context.Context, query string) (Location, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return Location{}, &NotFoundError{Query: q}
	}

	candidates, err := r.search(ctx, "full", q)
	lastErr := err

	if len(candidates) == 0 && strings.Contains(q, ",") {
		if bare := common.BeforeFirst(q, ","); bare != "" && bare != q {
			candidates, err = r.search(ctx, "city", bare)
			if err != nil {
				lastErr = err
			}
		}
	}

	// A failed search counts as an empty one; the cause stays reachable
	// through NotFoundError.Unwrap.
	if len(candidates) == 0 {
		return Location{}, &NotFoundError{Query: q, Err: lastErr}
	}

	best, _ := BestMatch(q, candidates)
	loc, err := best.Location()
	if err != nil {
		return Location{}, err
	}

	r.log.WithFields(logrus.Fields{
		"query":      q,
		"location":   loc.DisplayName(),
		"candidates": len(candidates),
	}).Debug("resolved location")
	return loc, nil
}

func (r *Resolver) search(ctx context.Context, strategy, name string) ([]Candidate, error) {
	metrics.GeocodingSearches.WithLabelValues(strategy).Inc()

	candidates, err := r.geocoder.Search(ctx, name, r.count)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"strategy": strategy,
			"name":     name,
			"provider": r.geocoder.Name(),
		}).WithError(err).Warn("geocoding search failed")
		return nil, err
	}

	r.log.WithFields(logrus.Fields{
		"strategy": strategy,
		"name":     name,
		"results":  len(candidates),
	}).Debug("geocoding search")
	return candidates, nil
}
