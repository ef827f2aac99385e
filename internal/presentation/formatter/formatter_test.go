package formatter

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/triptide/go-trip-timeline/internal/core/model"
)

func sampleItinerary() model.Itinerary {
	return model.Itinerary{
		Title: "Egypt Adventure",
		Days: []model.DayPlan{
			{
				Day:   1,
				Date:  "2026-03-02",
				Title: "Day 1: Cairo",
				Events: []model.CalendarEvent{
					{Title: "Breakfast", StartTime: "08:00", EndTime: "09:00", Location: "Cairo, Egypt", Category: "Breakfast"},
					{Title: "Egyptian Museum", StartTime: "10:00", EndTime: "13:00", Location: "Cairo, Egypt", Category: "culture"},
					{Title: "Pyramids", StartTime: "15:00", EndTime: "18:00", Location: "Giza, Egypt", Category: "sightseeing"},
				},
			},
			{
				Day:   2,
				Date:  "2026-03-03",
				Title: "Day 2: Luxor",
				Events: []model.CalendarEvent{
					{Title: "Karnak Temple", StartTime: "09:00", EndTime: "12:00", Location: "Luxor, Egypt", Category: "culture"},
					{Title: "Dinner", StartTime: "19:00", EndTime: "21:00", Location: "Luxor, Egypt", Category: "dinner"},
				},
			},
		},
	}
}

// captureStdout runs fn while collecting everything it prints.
func captureStdout(t *testing.T, fn func() error) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	runErr := fn()

	w.Close()
	os.Stdout = old
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, runErr)

	return string(out)
}

func TestBuildTripReport(t *testing.T) {
	report := BuildTripReport(sampleItinerary())

	assert.Equal(t, "Egypt Adventure", report.Title)
	assert.Equal(t, 5, report.TotalPlaces)
	assert.Equal(t, 2, report.TotalMeals)
	assert.Equal(t, "Cairo  →  Giza  →  Luxor", report.RouteString)

	require.Len(t, report.Days, 2)
	assert.Equal(t, 3, report.Days[0].Events)
	assert.Equal(t, 1, report.Days[0].Meals)
	assert.Equal(t, "08:00", report.Days[0].FirstStart)
	assert.Equal(t, "18:00", report.Days[0].LastEnd)
}

func TestBuildTripReportEmptyItinerary(t *testing.T) {
	report := BuildTripReport(model.Itinerary{Title: "No itinerary"})

	assert.Equal(t, "No itinerary", report.Title)
	assert.Empty(t, report.Days)
	assert.Equal(t, 0, report.TotalPlaces)
	assert.Equal(t, "", report.RouteString)
}

func TestTableFormatter(t *testing.T) {
	output := captureStdout(t, func() error {
		return NewTableFormatter().Format(BuildTripReport(sampleItinerary()))
	})

	for _, want := range []string{
		"Egypt Adventure",
		"Day 1: Cairo",
		"2026-03-03",
		"Total",
		"Route: Cairo  →  Giza  →  Luxor",
	} {
		assert.Contains(t, output, want)
	}
}

func TestTableFormatterOmitsEmptyRoute(t *testing.T) {
	report := BuildTripReport(model.Itinerary{
		Title: "My Trip",
		Days:  []model.DayPlan{{Day: 1, Title: "Day 1"}},
	})

	output := captureStdout(t, func() error {
		return NewTableFormatter().Format(report)
	})

	assert.NotContains(t, output, "Route:")
}

func TestJSONFormatter(t *testing.T) {
	output := captureStdout(t, func() error {
		return NewJSONFormatter().Format(BuildTripReport(sampleItinerary()))
	})

	assert.Contains(t, output, `"totalPlaces": 5`)
	assert.Contains(t, output, `"totalMeals": 2`)
	assert.Contains(t, output, `"routeString"`)
}

func TestCSVFormatter(t *testing.T) {
	output := captureStdout(t, func() error {
		return NewCSVFormatter().Format(BuildTripReport(sampleItinerary()))
	})

	assert.Contains(t, output, "Day,Date,Title,Events,Meals,Start,End")
	assert.Contains(t, output, "1,2026-03-02,Day 1: Cairo,3,1,08:00,18:00")
}

func TestSummaryFormatter(t *testing.T) {
	output := captureStdout(t, func() error {
		return NewSummaryFormatter().Format(BuildTripReport(sampleItinerary()))
	})

	for _, want := range []string{
		"Egypt Adventure",
		"Dates: 2026-03-02 to 2026-03-03",
		"Places: 5",
		"Meals:  2",
		"Route:  Cairo  →  Giza  →  Luxor",
		"3 events",
	} {
		assert.Contains(t, output, want)
	}
}

func TestSummaryFormatterEmpty(t *testing.T) {
	output := captureStdout(t, func() error {
		return NewSummaryFormatter().Format(BuildTripReport(model.Itinerary{Title: "No itinerary"}))
	})

	assert.Contains(t, output, "No itinerary")
	assert.Contains(t, output, "No days planned")
}
