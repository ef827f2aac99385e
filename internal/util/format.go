package util

import (
	"fmt"
	"strings"
)

// Helper functions
func FormatCount(n int, singular string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", singular)
	}
	return fmt.Sprintf("%d %ss", n, singular)
}

// FormatClockRange renders a "HH:MM – HH:MM" span, hiding the end when absent
func FormatClockRange(start, end string) string {
	if end == "" {
		return start
	}
	return fmt.Sprintf("%s – %s", start, end)
}

// FormatHours renders a whole-hour duration as "3h"
func FormatHours(hours int) string {
	return fmt.Sprintf("%dh", hours)
}

// FormatDayLabel renders the day heading shown above a schedule,
// e.g. "Day 2 · Temples and Tombs" or just the title when it already
// carries the ordinal.
func FormatDayLabel(day int, title string) string {
	prefix := fmt.Sprintf("Day %d", day)
	if title == "" || title == prefix {
		return prefix
	}
	if strings.HasPrefix(title, prefix) {
		return title
	}
	return fmt.Sprintf("%s · %s", prefix, title)
}
