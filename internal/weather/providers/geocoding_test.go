package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-lookup/internal/weather"
)

func TestGeocoderSearch(t *testing.T) {
	queries := make(chan url.Values, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries <- r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[
			{"name":"Canton","admin1":"Michigan","admin2":"Wayne","country":"United States","latitude":42.30865,"longitude":-83.48216,"timezone":"America/Detroit"},
			{"name":"Null Island","country":"Nowhere","latitude":0,"longitude":0},
			{"name":"Ghost","country":"Nowhere"}
		]}`))
	}))
	defer srv.Close()

	g := NewOpenMeteoGeocoder(srv.Client(), srv.URL, "")
	got, err := g.Search(context.Background(), "Canton, Michigan", 50)
	require.NoError(t, err)

	q := <-queries
	assert.Equal(t, "Canton, Michigan", q.Get("name"))
	assert.Equal(t, "50", q.Get("count"))
	assert.Equal(t, "en", q.Get("language"))
	assert.Equal(t, "json", q.Get("format"))

	require.Len(t, got, 3)
	assert.Equal(t, "Canton", got[0].Name)
	assert.Equal(t, "Michigan", got[0].Admin1)
	assert.Equal(t, "Wayne", got[0].Admin2)
	assert.Equal(t, "America/Detroit", got[0].Timezone)
	require.NotNil(t, got[0].Latitude)
	assert.InDelta(t, 42.30865, *got[0].Latitude, 1e-9)

	require.NotNil(t, got[1].Latitude, "zero coordinates are present, not missing")
	assert.Equal(t, 0.0, *got[1].Latitude)
	assert.Nil(t, got[2].Latitude)
	assert.Nil(t, got[2].Longitude)
}

func TestGeocoderNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"generationtime_ms":0.5}`))
	}))
	defer srv.Close()

	got, err := NewOpenMeteoGeocoder(srv.Client(), srv.URL, "de").Search(context.Background(), "zzzz", 5)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGeocoderUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Parameter count must be between 1 and 100", http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := NewOpenMeteoGeocoder(srv.Client(), srv.URL, "").Search(context.Background(), "Paris", 500)

	var upstream *weather.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "geocoding", upstream.Service)
	assert.Equal(t, http.StatusBadRequest, upstream.Status)
	assert.Contains(t, upstream.Body, "Parameter count must be between 1 and 100")
}

func TestGeocoderWithoutClient(t *testing.T) {
	_, err := NewOpenMeteoGeocoder(nil, "", "").Search(context.Background(), "Paris", 5)
	assert.ErrorIs(t, err, errNoHTTPClient)
}
