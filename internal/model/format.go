package model

import (
	"fmt"
	"time"
)

// LocalLayout is the timezone-less ISO-8601 layout used by seed data.
const LocalLayout = "2006-01-02T15:04:05"

// ParseTimestamp parses an ISO-8601 timestamp. Values without an offset are read in loc.
func ParseTimestamp(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(LocalLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders a list date, e.g. "May 15, 2023".
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// FormatDateTime renders a feed timestamp, e.g. "May 15, 10:30 AM".
func FormatDateTime(t time.Time) string {
	return t.Format("Jan 2, 3:04 PM")
}
