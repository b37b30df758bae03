package model

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-day wire format used throughout the system
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date in DateLayout, normalized to UTC midnight
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// Midnight normalizes a time to UTC midnight of its calendar day
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDate reports whether two times fall on the same calendar day
func SameDate(a, b time.Time) bool {
	return Midnight(a).Equal(Midnight(b))
}

// EpochDays returns the number of whole days since the Unix epoch
func EpochDays(t time.Time) int64 {
	return Midnight(t).Unix() / 86400
}

// WeekNumber returns the alternation week key: floor(epochDays / 7)
func WeekNumber(t time.Time) int64 {
	return EpochDays(t) / 7
}

// IsWeekend reports whether the date falls on Saturday or Sunday
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// WeekDates returns the 7 consecutive calendar dates starting at weekStart
func WeekDates(weekStart time.Time) []time.Time {
	start := Midnight(weekStart)
	dates := make([]time.Time, 7)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
	}
	return dates
}

// ShiftID derives the stable identifier for a (date, shift type) pair
func ShiftID(date time.Time, shiftType ShiftType) string {
	return fmt.Sprintf("%s-%s", date.Format(DateLayout), shiftType)
}
