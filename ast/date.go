package ast

import (
	"fmt"
	"time"
)

// DateFormat is the canonical textual representation of a date (ISO 8601).
const DateFormat = "2006-01-02"

// Date represents a calendar date in ISO 8601 format (YYYY-MM-DD). Every price
// record carries the date the quote was observed on.
type Date struct {
	time.Time
}

// NewDate constructs a Date from a year/month/day triple. It returns an error
// if the triple does not name a real calendar date (month 13, Feb 30, Feb 29
// in a non-leap year, and so on). The grammar only guarantees digit widths;
// calendar validity is checked here.
func NewDate(year, month, day int) (Date, error) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

	// time.Date normalizes out-of-range components (e.g. Feb 30 becomes
	// Mar 1), so a round-trip mismatch means the triple was invalid.
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return Date{}, fmt.Errorf("invalid date: %04d-%02d-%02d", year, month, day)
	}

	return Date{Time: t}, nil
}

// MustDate constructs a Date and panics if the triple is invalid.
// Intended for tests and static values.
func MustDate(year, month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// String returns the date in canonical YYYY-MM-DD form.
func (d Date) String() string {
	return d.Format(DateFormat)
}

// IsZero returns true if the Date represents the zero time.
func (d Date) IsZero() bool {
	return d.Time.IsZero()
}
