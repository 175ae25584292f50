package weather

import (
	"strings"

	"github.com/i474232898/weather-lookup/internal/common"
)

// FormatLocation renders a display name: "name, admin1, country" when admin1
// is present, otherwise "name, country". admin2 is never shown.
func FormatLocation(name, admin1, _, country string) string {
	if admin1 != "" {
		return name + ", " + admin1 + ", " + country
	}
	return name + ", " + country
}

// BestMatch picks the candidate to resolve a query to. The default is the
// first candidate (upstream relevance order). When the query carries a comma,
// the first candidate whose display name matches the query as a
// case-insensitive substring in either direction wins instead.
func BestMatch(query string, candidates []Candidate) (Candidate, bool) {
	if len(candidates) == 0 {
		return Candidate{}, false
	}
	query = strings.TrimSpace(query)
	if strings.Contains(query, ",") {
		for _, c := range candidates {
			if common.ContainsEitherFold(c.DisplayName(), query) {
				return c, true
			}
		}
	}
	return candidates[0], true
}
