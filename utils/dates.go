package utils

import (
	"fmt"
	"time"
)

// Layouts used across the catalog and booking records.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04"
	ClockLayout    = "15:04"
)

// ParseDate parses a calendar date in the catalog's "2006-01-02" format.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// ParseTimestamp parses an occupancy boundary. Records come from loosely
// validated historical data, so several layouts are accepted.
func ParseTimestamp(s string) (time.Time, error) {
	layouts := []string{DateTimeLayout, time.RFC3339, DateLayout}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

// CombineDateTime anchors a clock time ("15:04") onto a calendar day,
// producing the concrete check-in/check-out instant for a stay window.
func CombineDateTime(day time.Time, clock string) (time.Time, error) {
	c, err := time.Parse(ClockLayout, clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid clock time %q: %w", clock, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), c.Hour(), c.Minute(), 0, 0, day.Location()), nil
}

// TruncateToDay drops the clock component of a timestamp.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NightsBetween returns the number of billable nights between two calendar
// days, ignoring clock components and rounding partial days up. Never less
// than one: a same-day hall event still bills one day.
func NightsBetween(start, end time.Time) int {
	d := TruncateToDay(end).Sub(TruncateToDay(start))
	if d <= 0 {
		return 1
	}
	nights := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		nights++
	}
	return nights
}

// NightDates lists the calendar dates covered by a stay, one per night,
// starting from the check-in day.
func NightDates(start time.Time, nights int) []string {
	dates := make([]string, 0, nights)
	for i := 0; i < nights; i++ {
		dates = append(dates, start.AddDate(0, 0, i).Format(DateLayout))
	}
	return dates
}
