package weather

import (
	"context"
	"sync"
)

func ptr(v float64) *float64 { return &v }

func candidate(name, admin1, country string, lat, lon float64) Candidate {
	return Candidate{
		Name:      name,
		Admin1:    admin1,
		Country:   country,
		Latitude:  ptr(lat),
		Longitude: ptr(lon),
		Timezone:  "UTC",
	}
}

// fakeGeocoder answers from fixed tables and records every searched name.
type fakeGeocoder struct {
	mu      sync.Mutex
	results map[string][]Candidate
	errs    map[string]error
	calls   []string
	counts  []int
}

func (g *fakeGeocoder) Name() string { return "fake" }

func (g *fakeGeocoder) Search(_ context.Context, name string, count int) ([]Candidate, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, name)
	g.counts = append(g.counts, count)
	if err := g.errs[name]; err != nil {
		return nil, err
	}
	return g.results[name], nil
}

type fakeSource struct {
	payload ForecastPayload
	err     error
	lat     float64
	lon     float64
}

func (s *fakeSource) Name() string { return "fake" }

func (s *fakeSource) Forecast(_ context.Context, latitude, longitude float64) (ForecastPayload, error) {
	s.lat, s.lon = latitude, longitude
	return s.payload, s.err
}

type fakeHistory struct {
	recorded []string
}

func (h *fakeHistory) Record(_ context.Context, name string) []string {
	h.recorded = append([]string{name}, h.recorded...)
	return append([]string{}, h.recorded...)
}

// sixDayPayload is today plus five future days starting at 2026-10-19.
func sixDayPayload() ForecastPayload {
	return ForecastPayload{
		Current: CurrentBlock{TemperatureC: 12.6, HumidityPct: 81, WeatherCode: 3},
		Daily: DailyBlock{
			Time:            []string{"2026-10-19", "2026-10-20", "2026-10-21", "2026-10-22", "2026-10-23", "2026-10-24"},
			WeatherCode:     []int{3, 61, 0, 2, 95, 71},
			MaxTemperatureC: []float64{14.2, 15.5, 16.4, 13.0, 11.49, -0.5},
			MinTemperatureC: []float64{8.1, 9.5, 7.6, 6.0, 4.2, -2.5},
		},
	}
}
