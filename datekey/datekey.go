// Package datekey maps instants to the calendar day they fall on.
package datekey

import (
	"fmt"
	"time"
)

// Format is the ISO-8601 calendar date layout used for keys.
const Format = "2006-01-02"

// readFormat is more permissive and accepts 2024-3-1.
const readFormat = "2006-1-2"

// Key identifies one calendar day, e.g. "2024-03-21".
type Key string

// Normalize returns the key of the calendar day t falls on, read in t's own
// location. The time of day is dropped.
func Normalize(t time.Time) Key {
	y, m, d := t.Date()
	return Key(fmt.Sprintf("%04d-%02d-%02d", y, m, d))
}

// Today returns the key for the current day in loc.
func Today(loc *time.Location) Key {
	return Normalize(time.Now().In(loc))
}

// Parse reads a date such as "2024-03-21" or "2024-3-21" and returns
// midnight of that day in loc.
func Parse(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(readFormat, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q want format %q: %w", s, Format, err)
	}
	return t, nil
}

// String implements fmt.Stringer.
func (k Key) String() string { return string(k) }

// Time returns midnight of the keyed day in loc.
func (k Key) Time(loc *time.Location) (time.Time, error) {
	return Parse(string(k), loc)
}
