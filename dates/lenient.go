package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/araddon/dateparse"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// Years outside this range cannot be written as YYYY.
const (
	MinYear = 0
	MaxYear = 9999
)

var natural = newNaturalParser()

func newNaturalParser() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}

var isoShape = regexp.MustCompile(`^(\d+)-(\d{1,2})-(\d{1,2})$`)

// ParseLenient makes a best-effort attempt at turning input into a date.
//
// Dash-separated numeric input is handled on its own: a four-digit year,
// month 1-12 and day 1-31 are accepted and a day past the end of the month
// rolls forward ("2021-04-31" is 2021-05-01); anything else of that shape is
// unparseable. Other absolute formats ("March 5, 2021", "2021/03/05") are
// tried next, in now's location. English relative phrases ("tomorrow",
// "next friday", "3 days ago") are resolved against now, but only when the
// phrase is the whole input: "banana tomorrow" is rejected.
//
// Results whose year falls outside MinYear..MaxYear are rejected. The
// returned time may carry a time-of-day component; callers that only want
// the date should format it with ISOLayout.
func ParseLenient(input string, now time.Time) (time.Time, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty input: %w", ErrUnparseable)
	}

	if m := isoShape.FindStringSubmatch(s); m != nil {
		return rollISO(s, m, now.Location())
	}

	if t, err := dateparse.ParseIn(s, now.Location()); err == nil {
		return inRange(s, t)
	}

	r, err := natural.Parse(s, now)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: %w: %v", s, ErrUnparseable, err)
	}
	if r == nil || !covers(s, r) {
		return time.Time{}, fmt.Errorf("%q: %w", s, ErrUnparseable)
	}
	return inRange(s, r.Time)
}

func rollISO(s string, m []string, loc *time.Location) (time.Time, error) {
	if len(m[1]) != 4 {
		return time.Time{}, fmt.Errorf("%q: year: %w", s, ErrUnparseable)
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("%q: %w", s, ErrUnparseable)
	}
	// time.Date normalises overflow: April 31 becomes May 1.
	return inRange(s, time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc))
}

// covers reports whether the match leaves nothing but spaces and
// punctuation unexplained in s.
func covers(s string, r *when.Result) bool {
	end := r.Index + len(r.Text)
	if r.Index < 0 || end > len(s) {
		return false
	}
	rest := s[:r.Index] + s[end:]
	return strings.IndexFunc(rest, func(c rune) bool {
		return unicode.IsLetter(c) || unicode.IsDigit(c)
	}) < 0
}

func inRange(s string, t time.Time) (time.Time, error) {
	if y := t.Year(); y < MinYear || y > MaxYear {
		return time.Time{}, fmt.Errorf("%q: year %d out of range: %w", s, y, ErrUnparseable)
	}
	return t, nil
}
