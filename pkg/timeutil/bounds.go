// Package timeutil provides the day and month boundary math used when
// translating date filters into store queries.
package timeutil

import "time"

// DayLayout is the wire format for plain dates (due dates, filter bounds).
const DayLayout = "2006-01-02"

// ParseDay parses a plain year-month-day string as UTC midnight.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DayLayout, s)
}

// DayStart returns 00:00:00 UTC of the given day string. The boolean reports
// whether the input parsed.
func DayStart(day string) (time.Time, bool) {
	t, err := ParseDay(day)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DayEnd returns 23:59:59.999 UTC of the given day string, so an inclusive
// "to" bound covers the whole day.
func DayEnd(day string) (time.Time, bool) {
	t, err := ParseDay(day)
	if err != nil {
		return time.Time{}, false
	}
	return t.Add(24*time.Hour - time.Millisecond), true
}

// MonthRange returns the first and last calendar day of t's month, both at
// midnight UTC.
func MonthRange(t time.Time) (first, last time.Time) {
	first = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	last = first.AddDate(0, 1, -1)
	return first, last
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
