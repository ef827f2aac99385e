package model

import (
	"github.com/bytedance/sonic"
)

// RawItinerary mirrors the planner service payload. Every field is
// optional and may arrive with the wrong JSON type; decoding never fails
// on a malformed field, it just leaves the zero value behind.
type RawItinerary struct {
	Title      LooseString `json:"title"`
	DailyPlans RawDayList  `json:"daily_plans"`
}

// RawDayPlan is one untyped day record of the payload.
type RawDayPlan struct {
	Day        LooseInt        `json:"day"`
	Date       LooseString     `json:"date"`
	Title      LooseString     `json:"title"`
	Activities RawActivityList `json:"activities"`
}

// RawActivity is one untyped activity record of the payload.
type RawActivity struct {
	Title          LooseString `json:"title"`
	StartTime      LooseString `json:"start_time"`
	EndTime        LooseString `json:"end_time"`
	LocationName   LooseString `json:"location_name"`
	Description    LooseString `json:"description"`
	Category       LooseString `json:"category"`
	BestTimeReason LooseString `json:"best_time_reason"`
}

// LooseString accepts a JSON string and decodes anything else to "".
type LooseString string

func (s *LooseString) UnmarshalJSON(data []byte) error {
	var str string
	if err := sonic.Unmarshal(data, &str); err == nil {
		*s = LooseString(str)
		return nil
	}

	*s = ""
	return nil
}

// LooseInt accepts a JSON number and decodes anything else to 0.
// Fractional values are truncated.
type LooseInt int

func (n *LooseInt) UnmarshalJSON(data []byte) error {
	var i int
	if err := sonic.Unmarshal(data, &i); err == nil {
		*n = LooseInt(i)
		return nil
	}

	var f float64
	if err := sonic.Unmarshal(data, &f); err == nil {
		*n = LooseInt(int(f))
		return nil
	}

	*n = 0
	return nil
}

// RawDayList accepts a JSON array of day records and decodes anything
// else to an empty list.
type RawDayList []RawDayPlan

func (l *RawDayList) UnmarshalJSON(data []byte) error {
	var days []RawDayPlan
	if err := sonic.Unmarshal(data, &days); err == nil {
		*l = days
		return nil
	}

	*l = nil
	return nil
}

// RawActivityList accepts a JSON array of activity records and decodes
// anything else to an empty list.
type RawActivityList []RawActivity

func (l *RawActivityList) UnmarshalJSON(data []byte) error {
	var activities []RawActivity
	if err := sonic.Unmarshal(data, &activities); err == nil {
		*l = activities
		return nil
	}

	*l = nil
	return nil
}
