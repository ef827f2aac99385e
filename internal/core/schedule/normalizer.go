package schedule

import (
	"strings"

	"github.com/triptide/go-trip-timeline/internal/core/model"
)

// NormalizeActivity converts one raw activity record into a CalendarEvent.
// Every field falls back to its documented default when missing, blank, or
// wrong-typed; normalization never fails. Category keeps its original
// casing for display, consumers lower-case at comparison sites.
func NormalizeActivity(raw model.RawActivity) model.CalendarEvent {
	return model.CalendarEvent{
		Title:          stringOr(raw.Title, model.DefaultEventTitle),
		StartTime:      clockOr(raw.StartTime, model.DefaultStartTime),
		EndTime:        clockOr(raw.EndTime, model.DefaultEndTime),
		Location:       strings.TrimSpace(string(raw.LocationName)),
		Description:    strings.TrimSpace(string(raw.Description)),
		Category:       stringOr(raw.Category, model.DefaultCategory),
		BestTimeReason: strings.TrimSpace(string(raw.BestTimeReason)),
	}
}

// stringOr trims the raw value and substitutes the default when nothing
// usable remains.
func stringOr(v model.LooseString, def string) string {
	s := strings.TrimSpace(string(v))
	if s == "" {
		return def
	}
	return s
}

// clockOr defaults a missing clock value and re-establishes the
// fixed-width "HH:MM" precondition at this boundary, so every downstream
// string comparison stays valid.
func clockOr(v model.LooseString, def string) string {
	s := strings.TrimSpace(string(v))
	if s == "" {
		return def
	}
	return padClock(s)
}

// padClock zero-pads a single-digit hour ("9:30" becomes "09:30").
// Values that do not look like H:MM are returned as given; the hourly
// resolver treats them as unplaceable rather than erroring here.
func padClock(s string) string {
	if len(s) == 4 && s[1] == ':' && isDigit(s[0]) && isDigit(s[2]) && isDigit(s[3]) {
		return "0" + s
	}
	return s
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
