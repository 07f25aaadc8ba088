package models

import "time"

// DateFormat is the wire format for all date-only fields
const DateFormat = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a midnight-UTC time
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}

// FormatDate renders a time as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// SameDate reports whether two times fall on the same calendar date
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DateWithin reports whether d falls inside [start, end] by calendar date
func DateWithin(d, start, end time.Time) bool {
	return !truncate(d).Before(truncate(start)) && !truncate(d).After(truncate(end))
}

func truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
