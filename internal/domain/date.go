package domain

import "time"

// DateOnly strips the time-of-day component, keeping the location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether both times fall on the same calendar date.
// A nil marker never matches.
func SameDay(marker *time.Time, day time.Time) bool {
	if marker == nil {
		return false
	}
	y1, m1, d1 := marker.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
