package formatter

import (
	"github.com/triptide/go-trip-timeline/internal/core/model"
	"github.com/triptide/go-trip-timeline/internal/core/schedule"
)

// TripReport is the render-ready view of an itinerary for the summary
// surfaces: one row per day plus the trip-wide aggregates.
type TripReport struct {
	Title       string   `json:"title"`
	Days        []DayRow `json:"days"`
	TotalPlaces int      `json:"totalPlaces"`
	TotalMeals  int      `json:"totalMeals"`
	RouteString string   `json:"routeString"`
}

// DayRow is one summary line.
type DayRow struct {
	Day        int    `json:"day"`
	Date       string `json:"date"`
	Title      string `json:"title"`
	Events     int    `json:"events"`
	Meals      int    `json:"meals"`
	FirstStart string `json:"firstStart"` // empty when the day has no events
	LastEnd    string `json:"lastEnd"`
}

// BuildTripReport derives the report from an assembled itinerary.
func BuildTripReport(itinerary model.Itinerary) TripReport {
	agg := schedule.Aggregate(itinerary)

	report := TripReport{
		Title:       itinerary.Title,
		Days:        make([]DayRow, 0, len(itinerary.Days)),
		TotalPlaces: agg.TotalPlaces,
		TotalMeals:  agg.TotalMeals,
		RouteString: agg.RouteString,
	}

	for _, day := range itinerary.Days {
		row := DayRow{
			Day:    day.Day,
			Date:   day.Date,
			Title:  day.Title,
			Events: len(day.Events),
		}
		for _, event := range day.Events {
			if schedule.IsMealCategory(event.Category) {
				row.Meals++
			}
		}
		if len(day.Events) > 0 {
			// Events are already sorted by start time.
			row.FirstStart = day.Events[0].StartTime
			row.LastEnd = day.Events[len(day.Events)-1].EndTime
		}
		report.Days = append(report.Days, row)
	}

	return report
}

// Formatter renders a trip report to stdout.
type Formatter interface {
	Format(report TripReport) error
}
