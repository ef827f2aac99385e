package schedule

import (
	"fmt"
	"sort"
	"strings"

	"github.com/triptide/go-trip-timeline/internal/core/model"
)

// AssembleItinerary builds the immutable Itinerary from a raw payload.
// A nil payload yields the terminal empty state: zero days under the
// "No itinerary" sentinel title. A payload whose day list is merely empty
// keeps its own (or the default) trip title, so the two empty cases stay
// distinguishable downstream.
func AssembleItinerary(raw *model.RawItinerary) model.Itinerary {
	if raw == nil {
		return model.Itinerary{Title: model.EmptyTripTitle}
	}

	itinerary := model.Itinerary{
		Title: stringOr(raw.Title, model.DefaultTripTitle),
	}
	for _, rawDay := range raw.DailyPlans {
		itinerary.Days = append(itinerary.Days, assembleDay(rawDay))
	}
	return itinerary
}

// assembleDay normalizes one day record. Days keep the payload order;
// only the events within a day are sorted.
func assembleDay(raw model.RawDayPlan) model.DayPlan {
	day := int(raw.Day)
	if day < 1 {
		day = 1
	}

	// The ordinal must be resolved before the title default so a bare
	// record yields "Day 1", never a null-ish placeholder.
	title := stringOr(raw.Title, fmt.Sprintf("Day %d", day))

	events := make([]model.CalendarEvent, 0, len(raw.Activities))
	for _, activity := range raw.Activities {
		events = append(events, NormalizeActivity(activity))
	}

	// Zero-padded "HH:MM" strings order chronologically under plain string
	// comparison. The stable sort keeps payload order among equal starts,
	// which the hourly resolver's first-match rule depends on.
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartTime < events[j].StartTime
	})

	return model.DayPlan{
		Day:    day,
		Date:   strings.TrimSpace(string(raw.Date)),
		Title:  title,
		Events: events,
	}
}
