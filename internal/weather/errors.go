package weather

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMalformedForecast is returned when the upstream daily block cannot be
// normalized into a contiguous five-day forecast.
var ErrMalformedForecast = errors.New("malformed forecast payload")

// NotFoundError is returned when no geocoding candidate exists for a query.
// Err holds the last geocoding failure when a search could not be completed.
type NotFoundError struct {
	Query string
	Err   error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf(`location %q not found. Please try "City, State/Region, Country" format (e.g., "Canton, Michigan, United States")`, e.Query)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// InvalidCoordinatesError is returned when the chosen candidate has no usable coordinates.
type InvalidCoordinatesError struct {
	Location string
}

func (e *InvalidCoordinatesError) Error() string {
	return "invalid coordinates for location: " + e.Location
}

// UpstreamError carries a non-success response from a remote service.
type UpstreamError struct {
	Service string
	Status  int
	Body    string
}

func (e *UpstreamError) Error() string {
	text := http.StatusText(e.Status)
	if e.Body == "" {
		return fmt.Sprintf("%s api error: %d %s", e.Service, e.Status, text)
	}
	return fmt.Sprintf("%s api error: %d %s. %s", e.Service, e.Status, text, e.Body)
}

// UserMessage converts a resolution or fetch failure into the single message
// shown to the user.
func UserMessage(err error) string {
	var (
		notFound *NotFoundError
		invalid  *InvalidCoordinatesError
		upstream *UpstreamError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &notFound):
		return notFound.Error()
	case errors.As(err, &invalid):
		return invalid.Error()
	case errors.As(err, &upstream):
		return fmt.Sprintf("%s service error: %d %s", upstream.Service, upstream.Status, http.StatusText(upstream.Status))
	case errors.Is(err, ErrMalformedForecast):
		return "weather service returned an incomplete forecast"
	default:
		return "failed to fetch weather: " + err.Error()
	}
}

// outcome labels err for metrics.
func outcome(err error) string {
	var (
		notFound *NotFoundError
		invalid  *InvalidCoordinatesError
		upstream *UpstreamError
	)
	switch {
	case err == nil:
		return "success"
	case errors.As(err, &notFound):
		return "not_found"
	case errors.As(err, &invalid):
		return "invalid_coordinates"
	case errors.As(err, &upstream):
		return "upstream_error"
	case errors.Is(err, ErrMalformedForecast):
		return "malformed"
	default:
		return "error"
	}
}
