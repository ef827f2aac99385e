package schedule

import (
	"strings"

	"github.com/triptide/go-trip-timeline/internal/core/model"
)

// Aggregates are trip-wide statistics derived from the full itinerary,
// not just the selected day.
type Aggregates struct {
	TotalPlaces int    `json:"totalPlaces"`
	TotalMeals  int    `json:"totalMeals"`
	RouteString string `json:"routeString"`
}

// RouteSeparator joins the stops of the route summary line.
const RouteSeparator = "  →  "

// maxRouteStops caps the route summary at the first distinct stops.
const maxRouteStops = 3

// mealCategories is the closed set of categories counted as meals.
// Membership is exact after lower-casing; no substring matching.
var mealCategories = map[string]struct{}{
	"breakfast":  {},
	"lunch":      {},
	"dinner":     {},
	"food":       {},
	"restaurant": {},
	"cafe":       {},
}

// IsMealCategory reports whether a category counts as a meal,
// case-insensitively.
func IsMealCategory(category string) bool {
	_, ok := mealCategories[strings.ToLower(category)]
	return ok
}

// Aggregate derives the trip statistics from an assembled itinerary.
func Aggregate(itinerary model.Itinerary) Aggregates {
	agg := Aggregates{}
	for _, day := range itinerary.Days {
		agg.TotalPlaces += len(day.Events)
		for _, event := range day.Events {
			if IsMealCategory(event.Category) {
				agg.TotalMeals++
			}
		}
	}
	agg.RouteString = routeSummary(itinerary)
	return agg
}

// routeSummary collects up to three distinct primary location names in
// encounter order (day order, then event order) and joins them with the
// arrow separator. Dedup is case-sensitive, first seen wins. An itinerary
// with no usable locations yields "" and the caller renders no route line.
func routeSummary(itinerary model.Itinerary) string {
	seen := make(map[string]struct{})
	var stops []string

	for _, day := range itinerary.Days {
		for _, event := range day.Events {
			name := PrimaryLocation(event.Location)
			if name == "" {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			stops = append(stops, name)
			if len(stops) == maxRouteStops {
				return strings.Join(stops, RouteSeparator)
			}
		}
	}

	return strings.Join(stops, RouteSeparator)
}

// PrimaryLocation reduces a location to the substring before the first
// comma, trimmed: "Giza, Cairo" yields "Giza".
func PrimaryLocation(location string) string {
	name, _, _ := strings.Cut(location, ",")
	return strings.TrimSpace(name)
}
