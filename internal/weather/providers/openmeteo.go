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

// DefaultForecastURL is the Open-Meteo forecast endpoint.
const DefaultForecastURL = "https://api.open-meteo.com/v1/forecast"

// OpenMeteoProvider implements weather.ForecastSource for Open-Meteo.
type OpenMeteoProvider struct {
	name    string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewOpenMeteoProvider(client *http.Client, baseURL string) *OpenMeteoProvider {
	if baseURL == "" {
		baseURL = DefaultForecastURL
	}
	return &OpenMeteoProvider{
		name:    "openmeteo",
		baseURL: baseURL,
		client:  client,
		circuit: newBreaker("openmeteo-forecast"),
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

// Forecast requests current conditions and daily arrays with timezone=auto,
// so daily dates are calendar days in the location's own timezone.
func (p *OpenMeteoProvider) Forecast(ctx context.Context, latitude, longitude float64) (weather.ForecastPayload, error) {
	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	values.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	values.Set("current", "temperature_2m,relative_humidity_2m,weather_code")
	values.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min")
	values.Set("timezone", "auto")

	u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
	resp, err := doRequest(ctx, p.client, p.circuit, "weather", u)
	if err != nil {
		return weather.ForecastPayload{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Current struct {
			Temperature float64 `json:"temperature_2m"`
			Humidity    float64 `json:"relative_humidity_2m"`
			WeatherCode int     `json:"weather_code"`
		} `json:"current"`
		Daily struct {
			Time        []string  `json:"time"`
			WeatherCode []int     `json:"weather_code"`
			MaxTemp     []float64 `json:"temperature_2m_max"`
			MinTemp     []float64 `json:"temperature_2m_min"`
		} `json:"daily"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.ForecastPayload{}, fmt.Errorf("decode openmeteo forecast: %w", err)
	}

	return weather.ForecastPayload{
		Current: weather.CurrentBlock{
			TemperatureC: payload.Current.Temperature,
			HumidityPct:  payload.Current.Humidity,
			WeatherCode:  payload.Current.WeatherCode,
		},
		Daily: weather.DailyBlock{
			Time:            payload.Daily.Time,
			WeatherCode:     payload.Daily.WeatherCode,
			MaxTemperatureC: payload.Daily.MaxTemp,
			MinTemperatureC: payload.Daily.MinTemp,
		},
	}, nil
}
