// Package datemath holds calendar arithmetic used by the daily rotation and
// the relationship counters. All functions work on calendar dates: the clock
// part and the location of the arguments are dropped before counting days.
package datemath

import (
	"errors"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

var (
	ErrBadDate  = errors.New("date must be in YYYY-MM-DD format")
	ErrBadClock = errors.New("time must be in HH:MM format")
)

// Civil returns the calendar date of t as seen in loc, at midnight UTC.
func Civil(t time.Time, loc *time.Location) time.Time {
	if loc != nil {
		t = t.In(loc)
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysElapsed is the signed number of whole days from anchor to today.
func DaysElapsed(today, anchor time.Time) int {
	return int(midnight(today).Sub(midnight(anchor)).Hours() / 24)
}

// CycleDay returns the 1-based position of today in a rotation of
// cycleLength days starting at anchor. Dates before the anchor wrap
// backwards into the previous cycle. cycleLength must be positive.
func CycleDay(today, anchor time.Time, cycleLength int) int {
	r := DaysElapsed(today, anchor) % cycleLength
	if r < 0 {
		r += cycleLength
	}
	return r + 1
}

// NextOccurrence returns the first date on or after today that falls on
// month/day. A day past the end of the month is clamped, so Feb 29 maps to
// Feb 28 in common years.
func NextOccurrence(today time.Time, month time.Month, day int) time.Time {
	today = midnight(today)
	next := onDay(today.Year(), month, day)
	if next.Before(today) {
		next = onDay(today.Year()+1, month, day)
	}
	return next
}

func onDay(year int, month time.Month, day int) time.Time {
	if last := daysIn(year, month); day > last {
		day = last
	}
	if day < 1 {
		day = 1
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrBadDate
	}
	return t, nil
}

// ParseClock parses an HH:MM time of day and returns it normalised.
func ParseClock(s string) (string, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return "", ErrBadClock
	}
	return t.Format(ClockLayout), nil
}
