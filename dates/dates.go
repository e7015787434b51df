// Package dates holds the calendar helpers behind the composite date field.
//
// Two parsers live here:
//
//   - ParseISO / IsValidISO: the strict check. The input must be YYYY-MM-DD
//     and re-rendering the parsed date must reproduce it byte for byte, so
//     "2021-04-31" or "2021-4-1" are rejected.
//   - ParseLenient: the best-effort parser used when a value is assigned
//     programmatically. It accepts most absolute date formats and English
//     relative phrases ("tomorrow", "next friday") resolved against a
//     caller-supplied now.
package dates

import (
	"errors"
	"fmt"
	"time"

	"cloudeng.io/datetime"
)

// ISOLayout is the canonical YYYY-MM-DD layout.
const ISOLayout = "2006-01-02"

var (
	// ErrInvalidISO is returned by ParseISO for anything that is not a real
	// calendar date written exactly as YYYY-MM-DD.
	ErrInvalidISO = errors.New("not a valid YYYY-MM-DD date")

	// ErrUnparseable is returned by ParseLenient when no parser understood
	// the input.
	ErrUnparseable = errors.New("unparseable date")
)

// ParseISO parses s as YYYY-MM-DD and requires that formatting the result
// yields s again.
func ParseISO(s string) (time.Time, error) {
	t, err := time.Parse(ISOLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: %w", s, ErrInvalidISO)
	}
	if t.Format(ISOLayout) != s {
		return time.Time{}, fmt.Errorf("%q: %w", s, ErrInvalidISO)
	}
	return t, nil
}

// IsValidISO reports whether s passes ParseISO.
func IsValidISO(s string) bool {
	_, err := ParseISO(s)
	return err == nil
}

// Format renders t as YYYY-MM-DD.
func Format(t time.Time) string {
	return t.Format(ISOLayout)
}

// Components returns the zero-padded year (4), month (2) and day (2) of t.
func Components(t time.Time) (year, month, day string) {
	return t.Format("2006"), t.Format("01"), t.Format("02")
}

// DaysInMonthFunc returns the number of days in month (1-12) of year.
type DaysInMonthFunc func(year, month int) int

// DaysInMonth is the Gregorian days-in-month lookup, accounting for leap
// years. It returns 0 for a month outside 1-12.
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	return int(datetime.DaysInMonth(year, datetime.Month(month)))
}
