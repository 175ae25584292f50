package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// DefaultGeocodingURL is the Open-Meteo geocoding search endpoint.
const DefaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"

// OpenMeteoGeocoder implements weather.Geocoder for the Open-Meteo geocoding API.
type OpenMeteoGeocoder struct {
	name     string
	baseURL  string
	language string
	client   *http.Client
	circuit  *gobreaker.CircuitBreaker
}

func NewOpenMeteoGeocoder(client *http.Client, baseURL, language string) *OpenMeteoGeocoder {
	if baseURL == "" {
		baseURL = DefaultGeocodingURL
	}
	if language == "" {
		language = "en"
	}
	return &OpenMeteoGeocoder{
		name:     "openmeteo-geocoding",
		baseURL:  baseURL,
		language: language,
		client:   client,
		circuit:  newBreaker("openmeteo-geocoding"),
	}
}

func (g *OpenMeteoGeocoder) Name() string {
	return g.name
}

// Search returns candidates in upstream relevance order. The service omits
// "results" entirely when nothing matches.
func (g *OpenMeteoGeocoder) Search(ctx context.Context, name string, count int) ([]weather.Candidate, error) {
	values := url.Values{}
	values.Set("name", name)
	values.Set("count", strconv.Itoa(count))
	values.Set("language", g.language)
	values.Set("format", "json")

	u := fmt.Sprintf("%s?%s", g.baseURL, values.Encode())
	resp, err := doRequest(ctx, g.client, g.circuit, "geocoding", u)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		Results []struct {
			Name      string   `json:"name"`
			Admin1    string   `json:"admin1"`
			Admin2    string   `json:"admin2"`
			Country   string   `json:"country"`
			Latitude  *float64 `json:"latitude"`
			Longitude *float64 `json:"longitude"`
			Timezone  string   `json:"timezone"`
		} `json:"results"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode geocoding response: %w", err)
	}

	candidates := make([]weather.Candidate, 0, len(payload.Results))
	for _, r := range payload.Results {
		candidates = append(candidates, weather.Candidate{
			Name:      r.Name,
			Admin1:    r.Admin1,
			Admin2:    r.Admin2,
			Country:   r.Country,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
			Timezone:  r.Timezone,
		})
	}
	return candidates, nil
}
