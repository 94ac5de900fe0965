package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/scribelabs/marketscribe/domain"
)

// maxSuggestions caps the autocomplete response size.
const maxSuggestions = 5

// knownLocations backs the market autocomplete. Includes the regulated
// markets the guideline set carries jurisdiction rules for.
var knownLocations = []string{
	"New York, NY, United States",
	"Los Angeles, CA, United States",
	"London, England, United Kingdom",
	"Paris, France",
	"Tokyo, Japan",
	"Sydney, Australia",
	"Toronto, Canada",
	"Berlin, Germany",
	"Madrid, Spain",
	"Rome, Italy",
	"New Jersey, United States",
	"Ontario, Canada",
	"Oregon, United States",
	"Pennsylvania, United States",
	"Michigan, United States",
}

// LocationSuggest returns market autocomplete matches.
// GET /location_suggest?q=
func (h *Handler) LocationSuggest(c echo.Context) error {
	query := strings.ToLower(c.QueryParam("q"))

	suggestions := make([]domain.LocationSuggestion, 0, maxSuggestions)
	for _, loc := range knownLocations {
		if !strings.Contains(strings.ToLower(loc), query) {
			continue
		}
		suggestions = append(suggestions, domain.LocationSuggestion{CanonicalName: loc})
		if len(suggestions) == maxSuggestions {
			break
		}
	}

	return c.JSON(http.StatusOK, suggestions)
}
