package domain

import (
	"fmt"
	"time"
)

const dayLayout = "2006-01-02"

// Day is a calendar date in YYYY-MM-DD form, independent of time zone.
type Day string

// ParseDay validates s and returns it as a Day.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return "", fmt.Errorf("parse day %q: %w", s, err)
	}
	return Day(t.Format(dayLayout)), nil
}

// DayOf returns the calendar day of t in t's location.
func DayOf(t time.Time) Day {
	return Day(t.Format(dayLayout))
}

// Time returns midnight UTC of the day. Invalid days yield the zero time.
func (d Day) Time() time.Time {
	t, err := time.Parse(dayLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

func (d Day) String() string { return string(d) }

// IsValid reports whether d is a well-formed calendar date.
func (d Day) IsValid() bool {
	_, err := time.Parse(dayLayout, string(d))
	return err == nil
}
