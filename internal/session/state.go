package session

import (
	"slices"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// State is everything the user surface displays. It changes only through the
// transition methods below, called by Controller under its lock.
type State struct {
	Query    string
	Loading  bool
	Error    string
	Unit     weather.Unit
	Location *weather.Location
	Current  *weather.CurrentWeather
	Forecast []weather.ForecastDay

	Suggestions []weather.Candidate
	History     []string
}

func (s *State) submitStarted(query string) {
	s.Query = query
	s.Loading = true
	s.Error = ""
}

func (s *State) submitSucceeded(report weather.Report) {
	loc := report.Location
	current := report.Current
	s.Loading = false
	s.Error = ""
	s.Location = &loc
	s.Current = &current
	s.Forecast = slices.Clone(report.Forecast)
}

// submitFailed clears the previous result so an error is never shown next to
// weather for a different query.
func (s *State) submitFailed(message string) {
	s.Loading = false
	s.Error = message
	s.Location = nil
	s.Current = nil
	s.Forecast = nil
}

func (s *State) suggestionsUpdated(candidates []weather.Candidate) {
	s.Suggestions = append([]weather.Candidate{}, candidates...)
}

func (s *State) historyUpdated(history []string) {
	s.History = append([]string{}, history...)
}

func (s *State) unitUpdated(unit weather.Unit) {
	s.Unit = unit
}

// clone returns a copy sharing no mutable memory with s.
func (s State) clone() State {
	out := s
	if s.Location != nil {
		loc := *s.Location
		out.Location = &loc
	}
	if s.Current != nil {
		cur := *s.Current
		out.Current = &cur
	}
	out.Forecast = slices.Clone(s.Forecast)
	out.Suggestions = slices.Clone(s.Suggestions)
	out.History = slices.Clone(s.History)
	return out
}
