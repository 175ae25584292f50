package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-lookup/internal/weather"
)

func TestRenderEmptyState(t *testing.T) {
	v := Render(State{Unit: weather.UnitCelsius}, time.Now())

	assert.Nil(t, v.Current)
	assert.NotNil(t, v.Forecast)
	assert.Empty(t, v.Forecast)
	assert.NotNil(t, v.Suggestions)
	assert.NotNil(t, v.History)
}

func TestRenderLabelsDaysInLocationTimezone(t *testing.T) {
	r := report("Tokyo", "Japan")
	r.Current.Timezone = "Asia/Tokyo"
	s := State{Unit: weather.UnitCelsius}
	s.submitSucceeded(r)

	// 16:00 UTC on the 19th is 01:00 on the 20th in Tokyo.
	v := Render(s, time.Date(2026, 10, 19, 16, 0, 0, 0, time.UTC))

	require.Len(t, v.Forecast, weather.ForecastDays)
	assert.Equal(t, []string{"Today", "Tomorrow", "Thursday", "Friday", "Saturday"}, []string{
		v.Forecast[0].Label, v.Forecast[1].Label, v.Forecast[2].Label, v.Forecast[3].Label, v.Forecast[4].Label,
	})
	assert.Equal(t, "Monday, October 19, 2026 11:05 PM JST", v.Current.ObservedAt)
}

func TestRenderCurrent(t *testing.T) {
	s := State{Unit: weather.UnitFahrenheit}
	s.submitSucceeded(report("Oslo", "Norway"))

	v := Render(s, time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC))

	require.NotNil(t, v.Current)
	assert.Equal(t, "Oslo, Norway", v.Current.Location)
	assert.Equal(t, "32°F", v.Current.Temperature)
	assert.Equal(t, "50%", v.Current.Humidity)
	assert.Equal(t, "Partly cloudy", v.Current.Condition.Description)
	assert.Equal(t, "Tomorrow", v.Forecast[0].Label)
}

func TestRenderSuggestions(t *testing.T) {
	lat := 0.0
	got := RenderSuggestions([]weather.Candidate{
		{Name: "Null Island", Country: "Nowhere", Latitude: &lat, Longitude: &lat},
		{Name: "Springfield", Admin1: "Illinois", Country: "United States"},
	})

	require.Len(t, got, 2)
	assert.Equal(t, "Null Island, Nowhere", got[0].DisplayName)
	assert.Equal(t, "Springfield, Illinois, United States", got[1].DisplayName)
	assert.Nil(t, got[1].Latitude)
}
