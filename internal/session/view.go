package session

import (
	"fmt"
	"time"

	"github.com/i474232898/weather-lookup/internal/weather"
)

const observedLayout = "Monday, January 2, 2006 3:04 PM MST"

// View is the rendered, display-ready form of State.
type View struct {
	Query       string           `json:"query"`
	Loading     bool             `json:"loading"`
	Error       string           `json:"error,omitempty"`
	Unit        weather.Unit     `json:"unit"`
	Current     *CurrentView     `json:"current,omitempty"`
	Forecast    []DayView        `json:"forecast"`
	Suggestions []SuggestionView `json:"suggestions"`
	History     []string         `json:"history"`
}

// CurrentView is the rendered current conditions.
type CurrentView struct {
	Location     string            `json:"location"`
	Temperature  string            `json:"temperature"`
	TemperatureC int               `json:"temperatureC"`
	Humidity     string            `json:"humidity"`
	Condition    weather.Condition `json:"condition"`
	Timezone     string            `json:"timezone"`
	ObservedAt   string            `json:"observedAt"`
}

// DayView is one rendered forecast day.
type DayView struct {
	Date      weather.Date      `json:"date"`
	Label     string            `json:"label"`
	Max       string            `json:"max"`
	Min       string            `json:"min"`
	Condition weather.Condition `json:"condition"`
}

// SuggestionView is one entry of the suggestion dropdown.
type SuggestionView struct {
	DisplayName string   `json:"displayName"`
	Name        string   `json:"name"`
	Admin1      string   `json:"admin1,omitempty"`
	Country     string   `json:"country"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

// Render converts state into a View. Day labels are computed against today's
// date in the displayed location's timezone.
func Render(s State, now time.Time) View {
	v := View{
		Query:       s.Query,
		Loading:     s.Loading,
		Error:       s.Error,
		Unit:        s.Unit,
		Forecast:    []DayView{},
		Suggestions: RenderSuggestions(s.Suggestions),
		History:     append([]string{}, s.History...),
	}

	if s.Current == nil {
		return v
	}

	cur := s.Current
	tz := weather.LoadTimezone(cur.Timezone)
	v.Current = &CurrentView{
		Location:     cur.LocationLabel,
		Temperature:  weather.ToDisplayTemperature(cur.TemperatureC, s.Unit),
		TemperatureC: cur.TemperatureC,
		Humidity:     fmt.Sprintf("%d%%", cur.HumidityPct),
		Condition:    weather.LookupCondition(cur.WeatherCode),
		Timezone:     cur.Timezone,
		ObservedAt:   cur.ObservedAt.In(tz).Format(observedLayout),
	}

	today := weather.TodayIn(cur.Timezone, now)
	for _, day := range s.Forecast {
		v.Forecast = append(v.Forecast, DayView{
			Date:      day.Date,
			Label:     weather.LabelDay(day.Date, today),
			Max:       weather.ToDisplayTemperature(day.MaxTemperatureC, s.Unit),
			Min:       weather.ToDisplayTemperature(day.MinTemperatureC, s.Unit),
			Condition: weather.LookupCondition(day.WeatherCode),
		})
	}
	return v
}

// RenderSuggestions converts candidates for the suggestion dropdown.
func RenderSuggestions(candidates []weather.Candidate) []SuggestionView {
	out := make([]SuggestionView, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, SuggestionView{
			DisplayName: c.DisplayName(),
			Name:        c.Name,
			Admin1:      c.Admin1,
			Country:     c.Country,
			Latitude:    c.Latitude,
			Longitude:   c.Longitude,
		})
	}
	return out
}
