package fixtures

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
)

// Activity is one raw activity record in the planner payload shape. Fields
// are typed interface{} so tests can inject wrong-typed values and exercise
// the tolerant decoding path.
type Activity struct {
	Title          interface{} `json:"title,omitempty"`
	StartTime      interface{} `json:"start_time,omitempty"`
	EndTime        interface{} `json:"end_time,omitempty"`
	LocationName   interface{} `json:"location_name,omitempty"`
	Description    interface{} `json:"description,omitempty"`
	Category       interface{} `json:"category,omitempty"`
	BestTimeReason interface{} `json:"best_time_reason,omitempty"`
}

// DayPlan is one raw day in the payload shape.
type DayPlan struct {
	Day        interface{} `json:"day,omitempty"`
	Date       interface{} `json:"date,omitempty"`
	Title      interface{} `json:"title,omitempty"`
	Activities interface{} `json:"activities,omitempty"`
}

// Trip is a raw itinerary payload under construction.
type Trip struct {
	Title      interface{} `json:"title,omitempty"`
	DailyPlans interface{} `json:"daily_plans,omitempty"`
}

// TripBuilder assembles payload fixtures for tests.
type TripBuilder struct {
	trip Trip
	days []DayPlan
}

func NewTripBuilder(title string) *TripBuilder {
	return &TripBuilder{trip: Trip{Title: title}}
}

// WithRawTitle sets the title to an arbitrary (possibly wrong-typed) value.
func (b *TripBuilder) WithRawTitle(title interface{}) *TripBuilder {
	b.trip.Title = title
	return b
}

// AddDay appends a day with the given ordinal, date and activities.
func (b *TripBuilder) AddDay(day int, date string, activities ...Activity) *TripBuilder {
	b.days = append(b.days, DayPlan{Day: day, Date: date, Activities: activities})
	return b
}

// AddRawDay appends a day record as-is, for malformed-payload cases.
func (b *TripBuilder) AddRawDay(day DayPlan) *TripBuilder {
	b.days = append(b.days, day)
	return b
}

// Build serializes the payload.
func (b *TripBuilder) Build() ([]byte, error) {
	b.trip.DailyPlans = b.days
	return sonic.Marshal(b.trip)
}

// WriteFile serializes the payload into dir under name and returns the path.
func (b *TripBuilder) WriteFile(dir, name string) (string, error) {
	data, err := b.Build()
	if err != nil {
		return "", fmt.Errorf("failed to build trip fixture: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write trip fixture: %w", err)
	}
	return path, nil
}

// SimpleActivity is a shorthand for a fully-typed activity record.
func SimpleActivity(title, start, end, location, category string) Activity {
	return Activity{
		Title:        title,
		StartTime:    start,
		EndTime:      end,
		LocationName: location,
		Category:     category,
	}
}
