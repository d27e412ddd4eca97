// Package valueobject contains domain value objects for the Korven backend.
package valueobject

import (
	"time"
)

// DateLayout is the wire and storage layout of calendar dates.
const DateLayout = "2006-01-02"

// DateOf returns the calendar day of t as midnight UTC.
// The day is read in t's own location before it is normalized.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a calendar day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t), nil
}

// FormatDate renders a calendar day as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return DateOf(t).Format(DateLayout)
}

// DaysBetween returns the number of whole calendar days from "from" to "to".
// The result is negative when "to" is before "from".
func DaysBetween(from, to time.Time) int {
	return int(DateOf(to).Sub(DateOf(from)).Hours() / 24)
}

// StartOfDay returns the instant, in UTC, at which the calendar day of day
// begins in loc. A nil loc means UTC.
func StartOfDay(loc *time.Location, day time.Time) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := day.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc).UTC()
}

// DayBounds returns the half-open instant range [start 00:00, end+1 00:00)
// covering every instant of the calendar days start..end as lived in loc.
// Both bounds are returned in UTC.
func DayBounds(loc *time.Location, start, end time.Time) (time.Time, time.Time) {
	return StartOfDay(loc, start), StartOfDay(loc, DateOf(end).AddDate(0, 0, 1))
}
