package weather

import (
	"math"
	"time"
)

// Location is a resolved, validated geographic point.
// Latitude/Longitude are always finite.
type Location struct {
	Name      string  `json:"name"`
	Admin1    string  `json:"admin1,omitempty"`
	Admin2    string  `json:"admin2,omitempty"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}

// DisplayName returns the formatted, human-readable name of the location.
func (l Location) DisplayName() string {
	return FormatLocation(l.Name, l.Admin1, l.Admin2, l.Country)
}

// Candidate is one geocoding search result before disambiguation.
// Coordinates are pointers because upstream records may omit them.
type Candidate struct {
	Name      string   `json:"name"`
	Admin1    string   `json:"admin1,omitempty"`
	Admin2    string   `json:"admin2,omitempty"`
	Country   string   `json:"country"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Timezone  string   `json:"timezone,omitempty"`
}

// DisplayName returns the formatted, human-readable name of the candidate.
func (c Candidate) DisplayName() string {
	return FormatLocation(c.Name, c.Admin1, c.Admin2, c.Country)
}

// Location converts the candidate into a Location, failing with
// InvalidCoordinatesError when latitude or longitude is missing or not finite.
func (c Candidate) Location() (Location, error) {
	if !usable(c.Latitude) || !usable(c.Longitude) {
		return Location{}, &InvalidCoordinatesError{Location: c.DisplayName()}
	}
	return Location{
		Name:      c.Name,
		Admin1:    c.Admin1,
		Admin2:    c.Admin2,
		Country:   c.Country,
		Latitude:  *c.Latitude,
		Longitude: *c.Longitude,
		Timezone:  c.Timezone,
	}, nil
}

func usable(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}

// CurrentWeather is the normalized current-conditions view for one resolution.
type CurrentWeather struct {
	LocationLabel string    `json:"locationLabel"`
	TemperatureC  int       `json:"temperatureC"`
	HumidityPct   int       `json:"humidityPercent"`
	WeatherCode   int       `json:"weatherCode"`
	Timezone      string    `json:"timezone"`
	ObservedAt    time.Time `json:"observedAt"`
}

// ForecastDay is one day of the multi-day forecast.
type ForecastDay struct {
	Date            Date `json:"date"`
	WeatherCode     int  `json:"weatherCode"`
	MaxTemperatureC int  `json:"maxTemperatureC"`
	MinTemperatureC int  `json:"minTemperatureC"`
}

// ForecastDays is the number of future days carried by a Report.
const ForecastDays = 5

// Report is the result of a successful fetch.
type Report struct {
	Location Location       `json:"location"`
	Current  CurrentWeather `json:"current"`
	Forecast []ForecastDay  `json:"forecast"`

	// History is the search history after this report's location was recorded.
	History []string `json:"history"`
}

// ForecastPayload is the decoded upstream forecast response, before normalization.
// Daily arrays are parallel and index 0 is the location's current day.
type ForecastPayload struct {
	Current CurrentBlock
	Daily   DailyBlock
}

// CurrentBlock holds the upstream instant readings.
type CurrentBlock struct {
	TemperatureC float64
	HumidityPct  float64
	WeatherCode  int
}

// DailyBlock holds the upstream per-day parallel arrays.
type DailyBlock struct {
	Time            []string
	WeatherCode     []int
	MaxTemperatureC []float64
	MinTemperatureC []float64
}
