package model

// Field defaults applied while normalizing raw activity records.
const (
	DefaultEventTitle = "Activity"
	DefaultStartTime  = "09:00"
	DefaultEndTime    = "10:00"
	DefaultCategory   = "sightseeing"

	// DefaultTripTitle is used when a payload exists but carries no title.
	DefaultTripTitle = "My Trip"

	// EmptyTripTitle marks the terminal no-payload state. It is deliberately
	// distinct from DefaultTripTitle so the presentation layer can tell
	// "empty trip" apart from "no trip at all".
	EmptyTripTitle = "No itinerary"
)

// CalendarEvent is a single normalized, defaulted activity entry.
// StartTime and EndTime are fixed-width zero-padded "HH:MM" strings;
// keeping them as strings is a deliberate contract, the zero padding makes
// lexicographic comparison equivalent to chronological comparison.
type CalendarEvent struct {
	Title          string `json:"title"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	Location       string `json:"location"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	BestTimeReason string `json:"bestTimeReason,omitempty"`
}

// DayPlan is one day's ordered list of events within an Itinerary.
// Events are sorted ascending by StartTime.
type DayPlan struct {
	Day    int             `json:"day"`
	Date   string          `json:"date"`
	Title  string          `json:"title"`
	Events []CalendarEvent `json:"events"`
}

// Itinerary is the full multi-day trip plan derived from a raw payload.
// Days keep their input order; they are not re-sorted by day number.
// The structure is immutable after assembly and safe to share.
type Itinerary struct {
	Title string    `json:"title"`
	Days  []DayPlan `json:"days"`
}

// IsEmpty reports whether the itinerary has no days to show. Both the
// no-payload sentinel and a payload with an empty day list are empty;
// the Title distinguishes them.
func (i Itinerary) IsEmpty() bool {
	return len(i.Days) == 0
}

// TotalEvents counts events across all days.
func (i Itinerary) TotalEvents() int {
	total := 0
	for _, day := range i.Days {
		total += len(day.Events)
	}
	return total
}
