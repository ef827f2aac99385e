package formatter

import (
	"fmt"
	"strings"

	"github.com/triptide/go-trip-timeline/internal/util"
)

// SummaryFormatter prints a compact sectioned overview of the trip.
type SummaryFormatter struct{}

// NewSummaryFormatter creates a new instance of SummaryFormatter.
func NewSummaryFormatter() *SummaryFormatter {
	return &SummaryFormatter{}
}

// Format formats and outputs the trip summary.
func (f *SummaryFormatter) Format(report TripReport) error {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println(report.Title)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()

	if len(report.Days) == 0 {
		fmt.Println("No days planned")
		fmt.Println()
		fmt.Println(strings.Repeat("=", 60))
		return nil
	}

	firstDate := report.Days[0].Date
	lastDate := report.Days[len(report.Days)-1].Date
	if firstDate != "" && lastDate != "" {
		if firstDate == lastDate {
			fmt.Printf("Date: %s\n", firstDate)
		} else {
			fmt.Printf("Dates: %s to %s\n", firstDate, lastDate)
		}
		fmt.Println()
	}

	fmt.Println("Trip Overview:")
	fmt.Printf("  Days:   %d\n", len(report.Days))
	fmt.Printf("  Places: %d\n", report.TotalPlaces)
	fmt.Printf("  Meals:  %d\n", report.TotalMeals)
	if report.RouteString != "" {
		fmt.Printf("  Route:  %s\n", report.RouteString)
	}
	fmt.Println()

	fmt.Println("Days:")
	fmt.Println(strings.Repeat("-", 60))
	for _, row := range report.Days {
		fmt.Printf("\n%s\n", util.FormatDayLabel(row.Day, row.Title))
		if row.Date != "" {
			fmt.Printf("  Date:   %s\n", row.Date)
		}
		fmt.Printf("  Events: %s", util.FormatCount(row.Events, "event"))
		if row.Meals > 0 {
			fmt.Printf(" (%s)", util.FormatCount(row.Meals, "meal"))
		}
		fmt.Println()
		if row.FirstStart != "" {
			fmt.Printf("  Hours:  %s\n", util.FormatClockRange(row.FirstStart, row.LastEnd))
		}
	}

	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))

	return nil
}
