package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/km-arc/go-forms/dates"
)

// ── Types ────────────────────────────────────────────────────────────────────

// Errors holds validation errors — mirrors Laravel's MessageBag.
// JSON output: {"errors": {"field": ["msg1", "msg2"]}}
//
// *Errors is also the collector form fields report into: see ValidationError.
type Errors struct {
	Bag map[string][]string `json:"errors"`
}

// Add appends msg to the messages recorded for field.
func (e *Errors) Add(field, msg string) {
	if e.Bag == nil {
		e.Bag = make(map[string][]string)
	}
	e.Bag[field] = append(e.Bag[field], msg)
}

// ValidationError records msg against field. It is the hook composite form
// fields call while validating themselves.
func (e *Errors) ValidationError(field, msg string) { e.Add(field, msg) }

// Has returns true if there are any errors.
func (e *Errors) Has() bool { return len(e.Bag) > 0 }

// Get returns every message recorded for field, in insertion order.
func (e *Errors) Get(field string) []string { return e.Bag[field] }

// First returns the first error for a field.
func (e *Errors) First(field string) string {
	if msgs, ok := e.Bag[field]; ok && len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Merge appends every message of other into e.
func (e *Errors) Merge(other *Errors) {
	if other == nil {
		return
	}
	for field, msgs := range other.Bag {
		for _, m := range msgs {
			e.Add(field, m)
		}
	}
}

// ── Validator ────────────────────────────────────────────────────────────────

// Rules is a map of field → pipe-separated rule string.
// e.g. Rules{"birthday": "required|date|before:today"}
type Rules map[string]string

// Validator validates a flat map of input values.
type Validator struct {
	data   map[string]string
	rules  Rules
	errors *Errors
	now    func() time.Time
}

// Make creates a new Validator — mirrors Validator::make($data, $rules).
func Make(data map[string]string, rules Rules) *Validator {
	return &Validator{
		data:   data,
		rules:  rules,
		errors: &Errors{},
		now:    time.Now,
	}
}

// WithClock sets the reference time used to resolve relative dates such as
// "today" in before/after rules.
func (v *Validator) WithClock(now func() time.Time) *Validator {
	if now != nil {
		v.now = now
	}
	return v
}

// Fails runs validation and returns true if any rule fails.
func (v *Validator) Fails() bool {
	v.validate()
	return v.errors.Has()
}

// Passes runs validation and returns true if all rules pass.
func (v *Validator) Passes() bool { return !v.Fails() }

// Errors returns the validation error bag.
func (v *Validator) Errors() *Errors { return v.errors }

// ── Core validation loop ─────────────────────────────────────────────────────

func (v *Validator) validate() {
	v.errors = &Errors{}
	for field, ruleStr := range v.rules {
		value := v.data[field]

		for _, rule := range strings.Split(ruleStr, "|") {
			rule = strings.TrimSpace(rule)
			if rule == "" {
				continue
			}

			// min:3 → name=min, param=3
			name, param, _ := strings.Cut(rule, ":")

			if !v.applyRule(field, value, name, param) {
				break // bail on first failure
			}
		}
	}
}

// applyRule returns true if the rule passes.
func (v *Validator) applyRule(field, value, rule, param string) bool {
	switch rule {
	case "required":
		if strings.TrimSpace(value) == "" {
			v.errors.Add(field, fmt.Sprintf("The %s field is required.", field))
			return false
		}

	case "nullable", "sometimes":
		// Empty input short-circuits the remaining rules silently.
		if value == "" {
			return false
		}

	case "string":

	case "numeric":
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			v.errors.Add(field, fmt.Sprintf("The %s must be a number.", field))
			return false
		}

	case "integer":
		if _, err := strconv.Atoi(value); err != nil {
			v.errors.Add(field, fmt.Sprintf("The %s must be an integer.", field))
			return false
		}

	case "digits":
		n, _ := strconv.Atoi(param)
		if !allDigits(value) || len(value) != n {
			v.errors.Add(field, fmt.Sprintf("The %s must be %d digits.", field, n))
			return false
		}

	case "digits_between":
		lo, hi, ok := twoInts(param)
		if !ok {
			break
		}
		if !allDigits(value) || len(value) < lo || len(value) > hi {
			v.errors.Add(field, fmt.Sprintf("The %s must be between %d and %d digits.", field, lo, hi))
			return false
		}

	case "min":
		n, _ := strconv.Atoi(param)
		if utf8.RuneCountInString(value) < n {
			v.errors.Add(field, fmt.Sprintf("The %s must be at least %d characters.", field, n))
			return false
		}

	case "max":
		n, _ := strconv.Atoi(param)
		if utf8.RuneCountInString(value) > n {
			v.errors.Add(field, fmt.Sprintf("The %s may not be greater than %d characters.", field, n))
			return false
		}

	case "in":
		found := false
		for _, a := range strings.Split(param, ",") {
			if strings.TrimSpace(a) == value {
				found = true
				break
			}
		}
		if !found {
			v.errors.Add(field, fmt.Sprintf("The selected %s is invalid.", field))
			return false
		}

	case "date":
		if !dates.IsValidISO(value) {
			v.errors.Add(field, fmt.Sprintf("The %s is not a valid date.", field))
			return false
		}

	case "date_format":
		layout := goLayout(param)
		t, err := time.Parse(layout, value)
		if err != nil || t.Format(layout) != value {
			v.errors.Add(field, fmt.Sprintf("The %s does not match the format %s.", field, param))
			return false
		}

	case "before", "before_or_equal", "after", "after_or_equal":
		return v.compareDates(field, value, rule, param)
	}

	return true
}

// compareDates implements before/after and their _or_equal variants. The
// value must be a strict ISO date; param may be an ISO date, another field
// name, or a relative phrase such as "today".
func (v *Validator) compareDates(field, value, rule, param string) bool {
	got, err := dates.ParseISO(value)
	if err != nil {
		v.errors.Add(field, fmt.Sprintf("The %s is not a valid date.", field))
		return false
	}
	ref, ok := v.resolveDate(param)
	if !ok {
		v.errors.Add(field, fmt.Sprintf("The %s must be compared against a valid date.", field))
		return false
	}

	var pass bool
	switch rule {
	case "before":
		pass = got.Before(ref)
	case "before_or_equal":
		pass = !got.After(ref)
	case "after":
		pass = got.After(ref)
	case "after_or_equal":
		pass = !got.Before(ref)
	}
	if !pass {
		what := strings.ReplaceAll(rule, "_", " ")
		v.errors.Add(field, fmt.Sprintf("The %s must be a date %s %s.", field, what, param))
	}
	return pass
}

// resolveDate turns a rule parameter into a calendar date at midnight UTC.
func (v *Validator) resolveDate(param string) (time.Time, bool) {
	if t, err := dates.ParseISO(param); err == nil {
		return t, true
	}
	if other, ok := v.data[param]; ok {
		t, err := dates.ParseISO(other)
		return t, err == nil
	}
	t, err := dates.ParseLenient(param, v.now())
	if err != nil {
		return time.Time{}, false
	}
	// Drop the time of day so "today" compares as a whole day.
	t, _ = dates.ParseISO(dates.Format(t))
	return t, true
}

// ── helpers ──────────────────────────────────────────────────────────────────

// phpLayout maps the PHP date() tokens accepted by date_format onto Go
// reference-time fragments.
var phpLayout = strings.NewReplacer(
	"Y", "2006",
	"y", "06",
	"m", "01",
	"n", "1",
	"d", "02",
	"j", "2",
	"M", "Jan",
	"F", "January",
)

func goLayout(param string) string { return phpLayout.Replace(param) }

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func twoInts(param string) (int, int, bool) {
	a, b, ok := strings.Cut(param, ",")
	if !ok {
		return 0, 0, false
	}
	lo, err1 := strconv.Atoi(strings.TrimSpace(a))
	hi, err2 := strconv.Atoi(strings.TrimSpace(b))
	return lo, hi, err1 == nil && err2 == nil
}
