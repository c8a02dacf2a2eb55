package model

import (
	"fmt"
	"time"
)

// QuizzDate identifies one calendar day awaiting or holding a timesheet
// answer. It carries no time-of-day and no timezone, so two values for
// the same day always compare equal with ==. Month is zero-based
// (January = 0), matching the persisted queue document format.
type QuizzDate struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// FromDate extracts the calendar day of t in local time, discarding
// the time-of-day.
func FromDate(t time.Time) QuizzDate {
	return QuizzDate{
		Day:   t.Day(),
		Month: int(t.Month()) - 1,
		Year:  t.Year(),
	}
}

// ToDate returns the local-midnight instant of the day d.
func (d QuizzDate) ToDate() time.Time {
	return time.Date(d.Year, time.Month(d.Month+1), d.Day, 0, 0, 0, 0, time.Local)
}

// String renders the day as yyyy-MM-dd, the format used for archive
// rows and worklog start dates.
func (d QuizzDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month+1, d.Day)
}

// ParseQuizzDate parses a yyyy-MM-dd string as produced by String.
func ParseQuizzDate(s string) (QuizzDate, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return QuizzDate{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return FromDate(t), nil
}
