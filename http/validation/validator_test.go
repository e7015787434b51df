package validation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/km-arc/go-forms/http/validation"
)

// ── helpers ──────────────────────────────────────────────────────────────────

var fixedNow = func() time.Time { return time.Date(2024, time.June, 15, 9, 30, 0, 0, time.UTC) }

// pass asserts the validator passes for the given data/rules.
func pass(t *testing.T, label string, data map[string]string, rules validation.Rules) {
	t.Helper()
	t.Run(label, func(t *testing.T) {
		v := validation.Make(data, rules).WithClock(fixedNow)
		assert.False(t, v.Fails(), "expected PASS, errors: %+v", v.Errors().Bag)
	})
}

// fail asserts the validator fails with an error on the given field.
func fail(t *testing.T, label, field string, data map[string]string, rules validation.Rules) {
	t.Helper()
	t.Run(label, func(t *testing.T) {
		v := validation.Make(data, rules).WithClock(fixedNow)
		assert.False(t, v.Passes(), "expected FAIL on field %q", field)
		assert.NotEmpty(t, v.Errors().First(field), "errors: %+v", v.Errors().Bag)
	})
}

// ── presence ─────────────────────────────────────────────────────────────────

func TestValidation_Required(t *testing.T) {
	r := validation.Rules{"name": "required"}

	pass(t, "non-empty value", map[string]string{"name": "Alice"}, r)
	fail(t, "empty string", "name", map[string]string{"name": ""}, r)
	fail(t, "whitespace only", "name", map[string]string{"name": "   "}, r)
	fail(t, "missing key", "name", map[string]string{}, r)
}

func TestValidation_Required_MessageFormat(t *testing.T) {
	v := validation.Make(map[string]string{"name": ""}, validation.Rules{"name": "required"})
	_ = v.Fails()
	assert.Equal(t, "The name field is required.", v.Errors().First("name"))
}

func TestValidation_Nullable(t *testing.T) {
	r := validation.Rules{"birthday": "nullable|date"}

	pass(t, "empty skips date", map[string]string{"birthday": ""}, r)
	pass(t, "valid date", map[string]string{"birthday": "2001-09-11"}, r)
	fail(t, "invalid date", "birthday", map[string]string{"birthday": "2001-09-31"}, r)
}

// ── digits ───────────────────────────────────────────────────────────────────

func TestValidation_Digits(t *testing.T) {
	r := validation.Rules{"year": "digits:4"}

	pass(t, "four digits", map[string]string{"year": "1984"}, r)
	fail(t, "two digits", "year", map[string]string{"year": "84"}, r)
	fail(t, "signed", "year", map[string]string{"year": "-984"}, r)
}

func TestValidation_DigitsBetween(t *testing.T) {
	r := validation.Rules{"day": "digits_between:1,2"}

	pass(t, "one digit", map[string]string{"day": "5"}, r)
	pass(t, "two digits", map[string]string{"day": "05"}, r)
	fail(t, "three digits", "day", map[string]string{"day": "005"}, r)
	fail(t, "letters", "day", map[string]string{"day": "ab"}, r)
}

func TestValidation_MinMaxIn(t *testing.T) {
	pass(t, "min ok", map[string]string{"name": "abc"}, validation.Rules{"name": "min:3"})
	fail(t, "min short", "name", map[string]string{"name": "ab"}, validation.Rules{"name": "min:3"})
	pass(t, "max unicode", map[string]string{"name": "日本語"}, validation.Rules{"name": "max:3"})
	fail(t, "max long", "name", map[string]string{"name": "toolong"}, validation.Rules{"name": "max:5"})
	pass(t, "in list", map[string]string{"order": "ymd"}, validation.Rules{"order": "in:dmy,ymd,mdy"})
	fail(t, "not in list", "order", map[string]string{"order": "ydm"}, validation.Rules{"order": "in:dmy,ymd,mdy"})
}

func TestValidation_Numeric(t *testing.T) {
	pass(t, "integer", map[string]string{"n": "42"}, validation.Rules{"n": "integer"})
	fail(t, "float as integer", "n", map[string]string{"n": "4.2"}, validation.Rules{"n": "integer"})
	pass(t, "float", map[string]string{"n": "4.2"}, validation.Rules{"n": "numeric"})
	fail(t, "word", "n", map[string]string{"n": "four"}, validation.Rules{"n": "numeric"})
}

// ── dates ────────────────────────────────────────────────────────────────────

func TestValidation_Date(t *testing.T) {
	r := validation.Rules{"d": "date"}

	pass(t, "leap day", map[string]string{"d": "2020-02-29"}, r)
	fail(t, "feb 30", "d", map[string]string{"d": "2020-02-30"}, r)
	fail(t, "unpadded", "d", map[string]string{"d": "2020-2-3"}, r)
	fail(t, "words", "d", map[string]string{"d": "tomorrow"}, r)
}

func TestValidation_Date_MessageFormat(t *testing.T) {
	v := validation.Make(map[string]string{"d": "nope"}, validation.Rules{"d": "date"})
	_ = v.Fails()
	assert.Equal(t, "The d is not a valid date.", v.Errors().First("d"))
}

func TestValidation_DateFormat(t *testing.T) {
	pass(t, "Y-m-d", map[string]string{"d": "2020-01-31"}, validation.Rules{"d": "date_format:Y-m-d"})
	pass(t, "d/m/Y", map[string]string{"d": "31/01/2020"}, validation.Rules{"d": "date_format:d/m/Y"})
	fail(t, "wrong order", "d", map[string]string{"d": "01/31/2020"}, validation.Rules{"d": "date_format:d/m/Y"})
	fail(t, "unpadded", "d", map[string]string{"d": "2020-1-31"}, validation.Rules{"d": "date_format:Y-m-d"})
}

func TestValidation_BeforeAfter(t *testing.T) {
	pass(t, "before literal", map[string]string{"d": "2020-01-01"}, validation.Rules{"d": "before:2020-01-02"})
	fail(t, "before equal", "d", map[string]string{"d": "2020-01-02"}, validation.Rules{"d": "before:2020-01-02"})
	pass(t, "before_or_equal", map[string]string{"d": "2020-01-02"}, validation.Rules{"d": "before_or_equal:2020-01-02"})
	pass(t, "after literal", map[string]string{"d": "2020-01-03"}, validation.Rules{"d": "after:2020-01-02"})
	pass(t, "after_or_equal", map[string]string{"d": "2020-01-02"}, validation.Rules{"d": "after_or_equal:2020-01-02"})
	fail(t, "after earlier", "d", map[string]string{"d": "2019-12-31"}, validation.Rules{"d": "after:2020-01-02"})

	pass(t, "before today", map[string]string{"d": "2024-06-14"}, validation.Rules{"d": "before:today"})
	fail(t, "today is not before today", "d", map[string]string{"d": "2024-06-15"}, validation.Rules{"d": "before:today"})

	pass(t, "after other field", map[string]string{"start": "2024-01-01", "end": "2024-02-01"},
		validation.Rules{"end": "after:start"})
	fail(t, "before other field", "end", map[string]string{"start": "2024-01-01", "end": "2023-02-01"},
		validation.Rules{"end": "after:start"})
	fail(t, "bad reference", "d", map[string]string{"d": "2024-01-01"}, validation.Rules{"d": "after:banana"})
}

// ── error bag ────────────────────────────────────────────────────────────────

func TestErrors_CollectorAndMerge(t *testing.T) {
	a := &validation.Errors{}
	a.ValidationError("birthday", "[_Day] Day invalid")
	a.ValidationError("birthday", "Please enter a valid date")

	assert.True(t, a.Has())
	assert.Equal(t, []string{"[_Day] Day invalid", "Please enter a valid date"}, a.Get("birthday"))

	b := &validation.Errors{}
	b.Merge(a)
	b.Merge(nil)
	assert.Equal(t, a.Bag, b.Bag)

	empty := &validation.Errors{}
	assert.False(t, empty.Has())
	assert.Equal(t, "", empty.First("missing"))
}

func TestValidator_RerunDoesNotDuplicate(t *testing.T) {
	v := validation.Make(map[string]string{"d": "x"}, validation.Rules{"d": "date"})
	_ = v.Fails()
	_ = v.Fails()
	assert.Len(t, v.Errors().Get("d"), 1)
}
