package providers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-lookup/internal/weather"
)

type stubGeocoder struct {
	calls int
}

func (s *stubGeocoder) Name() string { return "stub" }

func (s *stubGeocoder) Search(_ context.Context, name string, _ int) ([]weather.Candidate, error) {
	s.calls++
	return []weather.Candidate{{Name: name}}, nil
}

func TestRateLimitedGeocoderForwards(t *testing.T) {
	inner := &stubGeocoder{}
	g := NewRateLimitedGeocoder(inner, 100, 1)

	got, err := g.Search(context.Background(), "Oslo", 5)
	require.NoError(t, err)
	assert.Equal(t, "Oslo", got[0].Name)
	assert.Equal(t, "stub [Rate Limited]", g.Name())
}

func TestRateLimitedGeocoderHonoursContext(t *testing.T) {
	inner := &stubGeocoder{}
	g := NewRateLimitedGeocoder(inner, 0.01, 1)

	_, err := g.Search(context.Background(), "Os", 5)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = g.Search(ctx, "Osl", 5)
	assert.Error(t, err)
	assert.Equal(t, 1, inner.calls)
}
