package layout

import (
	"fmt"
	"strings"

	"github.com/triptide/go-trip-timeline/internal/core/model"
	"github.com/triptide/go-trip-timeline/internal/core/schedule"
	"github.com/triptide/go-trip-timeline/internal/util"
)

// categoryIcons maps lower-cased categories to their grid icon. Lookup is
// case-insensitive; unknown categories get the pin.
var categoryIcons = map[string]string{
	"breakfast":   "🍳",
	"lunch":       "🍜",
	"dinner":      "🍽️",
	"food":        "🍽️",
	"restaurant":  "🍽️",
	"cafe":        "☕",
	"culture":     "🏛️",
	"sightseeing": "📍",
	"nature":      "🌿",
	"shopping":    "🛍️",
	"transport":   "🚌",
	"nightlife":   "🌙",
	"hotel":       "🛏️",
}

const defaultIcon = "📍"

func categoryIcon(category string) string {
	if icon, ok := categoryIcons[strings.ToLower(category)]; ok {
		return icon
	}
	return defaultIcon
}

// TimelineRenderer draws one day of an itinerary as a fixed 24-hour grid.
// Each grid hour is schedule.HourRowLines terminal lines tall; an event
// card occupies the rows of its start hour and extends downward for its
// card height.
type TimelineRenderer struct {
	sizer Sizer
}

// NewTimelineRenderer creates a renderer sized to the terminal.
func NewTimelineRenderer() *TimelineRenderer {
	return &TimelineRenderer{}
}

// NewFixedTimelineRenderer creates a renderer with a fixed grid width,
// for piped output and tests.
func NewFixedTimelineRenderer(width int) *TimelineRenderer {
	return &TimelineRenderer{sizer: Sizer{FixedWidth: width}}
}

// RenderDay produces the grid lines for a single day. The caller decides
// how to emit them (plain print or alternate-screen frame).
func (r *TimelineRenderer) RenderDay(day model.DayPlan) []string {
	slots := schedule.HourlySlots(day)
	cardWidth := r.sizer.CardWidth()

	lines := r.renderHeader(day)

	// card holds the remaining body lines of the event currently
	// flowing down the grid. An event starting at a later hour takes
	// over the column, so an over-long card is cut where the next
	// event begins.
	var card []string
	for hour := 0; hour < schedule.HoursPerDay; hour++ {
		if event := slots[hour]; event != nil {
			card = r.renderCard(*event, cardWidth)
		}
		for row := 0; row < schedule.HourRowLines; row++ {
			label := "     "
			if row == 0 {
				label = fmt.Sprintf("%02d:00", hour)
			}
			body := ""
			if len(card) > 0 {
				body, card = card[0], card[1:]
			} else if len(day.Events) == 0 && hour == 12 && row == 0 {
				body = util.FormatMuted(util.CenterText("No scheduled events", cardWidth))
			}
			lines = append(lines, fmt.Sprintf("%s │ %s", util.FormatMuted(label), body))
		}
	}

	return lines
}

func (r *TimelineRenderer) renderHeader(day model.DayPlan) []string {
	heading := util.FormatDayLabel(day.Day, day.Title)
	if day.Date != "" {
		tp := util.GetTimeProvider()
		heading = fmt.Sprintf("%s  %s", heading, util.FormatMuted(tp.FormatISODate(day.Date)))
		if tp.IsToday(day.Date) {
			heading += "  " + util.FormatDataTitle("● today")
		}
	}
	return []string{
		util.FormatOverviewTitle(heading),
		util.FormatSectionSeparator(r.sizer.GridWidth()),
	}
}

// renderCard lays out one event as a bordered card whose height follows
// its hour extent. The minimum card shows only the title row and the
// closing border.
func (r *TimelineRenderer) renderCard(event model.CalendarEvent, width int) []string {
	height := schedule.CardLines(schedule.CardHours(event))

	title := fmt.Sprintf("%s %s  %s", categoryIcon(event.Category), event.Title,
		util.FormatClockRange(event.StartTime, event.EndTime))
	if hours := schedule.StartHour(event.EndTime) - schedule.StartHour(event.StartTime); hours >= 1 {
		title += " · " + util.FormatHours(hours)
	}

	lines := make([]string, 0, height)
	lines = append(lines, "┌ "+util.TruncateToWidth(title, width-2))

	body := make([]string, 0, 2)
	if event.Location != "" {
		body = append(body, event.Location)
	}
	if event.Description != "" {
		body = append(body, event.Description)
	}

	for len(lines) < height-1 {
		text := ""
		if len(body) > 0 {
			text, body = body[0], body[1:]
		}
		lines = append(lines, "│ "+r.sizer.Pad(text, width-2, true))
	}
	lines = append(lines, "└"+strings.Repeat("─", min(width-1, 24)))

	return lines
}
