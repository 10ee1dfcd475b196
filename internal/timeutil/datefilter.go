package timeutil

import "time"

// Date returns the calendar date of t as midnight UTC.
// Core date arithmetic works on these values so that day differences are
// always whole multiples of 24h regardless of the local zone's DST rules.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateKey returns a sortable key for the calendar date of t
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// AddDays returns the calendar date n days after t (n may be negative)
func AddDays(t time.Time, n int) time.Time {
	return Date(t).AddDate(0, 0, n)
}

// DaysBetween returns the number of calendar days from a to b.
// The result is negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(Date(b).Sub(Date(a)).Hours() / 24)
}

// IsWorkday reports whether t falls on Monday through Friday
func IsWorkday(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return true
}

// IsInRange checks if the calendar date of t falls within [start, end] (inclusive)
func IsInRange(t, start, end time.Time) bool {
	d := Date(t)
	return !d.Before(Date(start)) && !d.After(Date(end))
}
