package schedule

import (
	"strconv"
	"strings"

	"github.com/triptide/go-trip-timeline/internal/core/model"
)

// HoursPerDay is the fixed size of the hourly slot grid.
const HoursPerDay = 24

// Card extent bounds for the rendered timeline.
const (
	minCardHours = 1
	maxCardHours = 6

	// HourRowLines is the rendered height of one grid hour, in terminal
	// lines; MinCardLines is the floor when a card collapses to the
	// minimum extent.
	HourRowLines = 2
	MinCardLines = 2
)

// HourlySlots maps a day's events onto the fixed 0–23 hour grid. Each slot
// holds the first event (in sorted order) whose start hour equals the slot
// hour, or nil. When two events share a start hour only the first is
// placed; the second stays in the day's event list and in the aggregates
// but is absent from the hourly view. That lossy single-occupancy rule is
// part of the contract, not an oversight to repair here.
func HourlySlots(day model.DayPlan) [HoursPerDay]*model.CalendarEvent {
	var slots [HoursPerDay]*model.CalendarEvent
	for hour := 0; hour < HoursPerDay; hour++ {
		for i := range day.Events {
			if StartHour(day.Events[i].StartTime) == hour {
				slots[hour] = &day.Events[i]
				break
			}
		}
	}
	return slots
}

// StartHour extracts the hour component of a clock string: the integer
// before the first colon. Unparseable values yield -1, which matches no
// slot, so a malformed event simply never appears on the grid.
func StartHour(clock string) int {
	head, _, _ := strings.Cut(clock, ":")
	hour, err := strconv.Atoi(head)
	if err != nil {
		return -1
	}
	return hour
}

// CardHours is the vertical extent of an event card in whole hours:
// end hour minus start hour, clamped to [1, 6].
func CardHours(event model.CalendarEvent) int {
	d := StartHour(event.EndTime) - StartHour(event.StartTime)
	if d < minCardHours {
		return minCardHours
	}
	if d > maxCardHours {
		return maxCardHours
	}
	return d
}

// CardLines converts a card extent to a rendered height in lines. Height
// grows monotonically with the extent and never drops below the floor.
func CardLines(hours int) int {
	lines := hours * HourRowLines
	if lines < MinCardLines {
		return MinCardLines
	}
	return lines
}
