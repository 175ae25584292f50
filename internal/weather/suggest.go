package weather

import (
	"context"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/i474232898/weather-lookup/internal/metrics"
)

const (
	// MinSuggestChars is the shortest input that triggers a lookup.
	MinSuggestChars = 2
	// DefaultSuggestLimit caps the number of suggestions returned.
	DefaultSuggestLimit = 5
)

// Suggester provides typeahead candidates. Suggestions are advisory: lookup
// failures are logged and yield an empty list.
type Suggester struct {
	geocoder Geocoder
	limit    int
	log      logrus.FieldLogger
}

func NewSuggester(geocoder Geocoder, limit int, log logrus.FieldLogger) *Suggester {
	if limit <= 0 || limit > DefaultSuggestLimit {
		limit = DefaultSuggestLimit
	}
	return &Suggester{geocoder: geocoder, limit: limit, log: log}
}

// Suggest returns up to the configured limit of candidates for partial input.
// The result is never nil.
func (s *Suggester) Suggest(ctx context.Context, partial string) []Candidate {
	if utf8.RuneCountInString(partial) < MinSuggestChars {
		return []Candidate{}
	}

	candidates, err := s.geocoder.Search(ctx, partial, s.limit)
	if err != nil {
		metrics.SuggestionFailures.Inc()
		s.log.WithField("partial", partial).WithError(err).Warn("suggestion lookup failed")
		return []Candidate{}
	}
	if candidates == nil {
		return []Candidate{}
	}
	if len(candidates) > s.limit {
		candidates = candidates[:s.limit]
	}
	return candidates
}
