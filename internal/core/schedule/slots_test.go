package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/triptide/go-trip-timeline/internal/core/model"
)

func timedEvent(title, start, end string) model.CalendarEvent {
	return model.CalendarEvent{Title: title, StartTime: start, EndTime: end}
}

func TestHourlySlotsPlacement(t *testing.T) {
	day := model.DayPlan{
		Day: 1,
		Events: []model.CalendarEvent{
			timedEvent("Breakfast", "08:00", "09:00"),
			timedEvent("Museum", "10:30", "13:00"),
			timedEvent("Dinner", "19:00", "21:00"),
		},
	}

	slots := HourlySlots(day)

	require.NotNil(t, slots[8])
	assert.Equal(t, "Breakfast", slots[8].Title)
	require.NotNil(t, slots[10])
	assert.Equal(t, "Museum", slots[10].Title)
	require.NotNil(t, slots[19])
	assert.Equal(t, "Dinner", slots[19].Title)

	occupied := map[int]bool{8: true, 10: true, 19: true}
	for hour, slot := range slots {
		if !occupied[hour] {
			assert.Nil(t, slot, "hour %d should be empty", hour)
		}
	}
}

func TestHourlySlotsCollisionDropsSecondEvent(t *testing.T) {
	// Two events sharing a start hour: only the first by sort order is
	// visible on the grid, but both still count in the aggregates.
	itinerary := AssembleItinerary(&model.RawItinerary{
		DailyPlans: model.RawDayList{{
			Activities: model.RawActivityList{
				activity("Khan el-Khalili", "14:00"),
				activity("Al-Azhar Mosque", "14:00"),
			},
		}},
	})

	day := itinerary.Days[0]
	slots := HourlySlots(day)

	require.NotNil(t, slots[14])
	assert.Equal(t, "Khan el-Khalili", slots[14].Title)

	visible := 0
	for _, slot := range slots {
		if slot != nil {
			visible++
		}
	}
	assert.Equal(t, 1, visible)

	assert.Equal(t, 2, Aggregate(itinerary).TotalPlaces)
}

func TestStartHour(t *testing.T) {
	tests := []struct {
		name     string
		clock    string
		expected int
	}{
		{
			name:     "padded morning hour",
			clock:    "09:15",
			expected: 9,
		},
		{
			name:     "evening hour",
			clock:    "19:00",
			expected: 19,
		},
		{
			name:     "midnight",
			clock:    "00:05",
			expected: 0,
		},
		{
			name:     "unparseable text yields sentinel",
			clock:    "noonish",
			expected: -1,
		},
		{
			name:     "empty yields sentinel",
			clock:    "",
			expected: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StartHour(tt.clock))
		})
	}
}

func TestHourlySlotsSkipsUnparseableTimes(t *testing.T) {
	day := model.DayPlan{Events: []model.CalendarEvent{
		timedEvent("Mystery", "sometime", "later"),
	}}

	for _, slot := range HourlySlots(day) {
		assert.Nil(t, slot)
	}
}

func TestCardHours(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected int
	}{
		{
			name:     "two hour visit",
			start:    "10:00",
			end:      "12:00",
			expected: 2,
		},
		{
			name:     "same hour clamps up to one",
			start:    "10:00",
			end:      "10:30",
			expected: 1,
		},
		{
			name:     "end before start clamps up to one",
			start:    "18:00",
			end:      "09:00",
			expected: 1,
		},
		{
			name:     "all day outing clamps down to six",
			start:    "08:00",
			end:      "22:00",
			expected: 6,
		},
		{
			name:     "unparseable end clamps to one",
			start:    "10:00",
			end:      "whenever",
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CardHours(timedEvent("e", tt.start, tt.end)))
		})
	}
}

func TestCardLinesMonotonicWithFloor(t *testing.T) {
	previous := 0
	for hours := minCardHours; hours <= maxCardHours; hours++ {
		lines := CardLines(hours)
		assert.GreaterOrEqual(t, lines, MinCardLines)
		assert.Greater(t, lines, previous)
		previous = lines
	}
}
