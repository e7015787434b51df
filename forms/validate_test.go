package forms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/km-arc/go-forms/forms"
	"github.com/km-arc/go-forms/http/validation"
)

func submit(t *testing.T, day, month, year string, opts ...forms.Option) *forms.DateField {
	t.Helper()
	f := newBirthday(t, "", opts...)
	f.SetSubmittedValue(map[string]string{"_Day": day, "_Month": month, "_Year": year})
	return f
}

// ── pass ─────────────────────────────────────────────────────────────────────

func TestValidate_NoSubmissionAlwaysPasses(t *testing.T) {
	tests := []struct {
		name  string
		field *forms.DateField
	}{
		{"empty", newBirthday(t, "")},
		{"programmatic value", newBirthday(t, "1980-01-01")},
		{"unparseable programmatic value", newBirthday(t, "banana")},
		{"submission then SetValue", submit(t, "40", "40", "40").SetValue("")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := &validation.Errors{}
			assert.True(t, tt.field.Validate(errs))
			assert.False(t, errs.Has())
		})
	}
}

func TestValidate_ValidSubmissionPasses(t *testing.T) {
	tests := []struct{ day, month, year, want string }{
		{"5", "5", "20", "1920-05-05"},
		{"29", "2", "2020", "2020-02-29"},
		{"31", "12", "1999", "1999-12-31"},
		{"01", "01", "2000", "2000-01-01"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			f := submit(t, tt.day, tt.month, tt.year)
			errs := &validation.Errors{}

			assert.True(t, f.Validate(errs))
			assert.False(t, errs.Has())
			assert.Equal(t, tt.want, f.Value())
		})
	}
}

// ── fail ─────────────────────────────────────────────────────────────────────

func TestValidate_Attribution(t *testing.T) {
	tests := []struct {
		name             string
		day, month, year string
		want             []string
	}{
		{"feb 30 leap year", "30", "02", "2020",
			[]string{forms.MessageDayInvalid, forms.MessageInvalidDate}},
		{"feb 29 common year", "29", "2", "2021",
			[]string{forms.MessageDayInvalid, forms.MessageInvalidDate}},
		{"april 31", "31", "4", "2021",
			[]string{forms.MessageDayInvalid, forms.MessageInvalidDate}},
		{"month 13", "01", "13", "2020",
			[]string{forms.MessageMonthInvalid, forms.MessageInvalidDate}},
		{"month 13 with bad day", "45", "13", "2020",
			[]string{forms.MessageMonthInvalid, forms.MessageInvalidDate}},
		{"month 0", "10", "0", "2020",
			[]string{forms.MessageInvalidDate}},
		{"day 0", "0", "6", "2020",
			[]string{forms.MessageInvalidDate}},
		{"everything empty", "", "", "",
			[]string{forms.MessageInvalidDate}},
		{"no year skips day check", "31", "2", "",
			[]string{forms.MessageInvalidDate}},
		{"non numeric", "ab", "cd", "efgh",
			[]string{forms.MessageInvalidDate}},
		// shown as 1400-02-29, but the day check uses the year as typed and
		// 400 is a leap year
		{"day check uses submitted year", "29", "2", "400",
			[]string{forms.MessageInvalidDate}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := submit(t, tt.day, tt.month, tt.year)
			errs := &validation.Errors{}

			assert.False(t, f.Validate(errs))
			assert.Equal(t, tt.want, errs.Get("birthday"))
		})
	}
}

func TestValidate_MessageText(t *testing.T) {
	assert.Equal(t, "[_Month] Month invalid", forms.MessageMonthInvalid)
	assert.Equal(t, "[_Day] Day invalid", forms.MessageDayInvalid)
	assert.Equal(t, "Please enter a valid date", forms.MessageInvalidDate)
}

func TestValidate_WithoutDaysInMonthLookup(t *testing.T) {
	f := submit(t, "30", "02", "2020", forms.WithDaysInMonth(nil))
	errs := &validation.Errors{}

	assert.False(t, f.Validate(errs))
	assert.Equal(t, []string{forms.MessageInvalidDate}, errs.Get("birthday"))
}

func TestValidate_CustomDaysInMonthLookup(t *testing.T) {
	var gotYear, gotMonth int
	lookup := func(year, month int) int {
		gotYear, gotMonth = year, month
		return 28
	}
	f := submit(t, "30", "2", "20", forms.WithDaysInMonth(lookup))
	errs := &validation.Errors{}

	// "20" pads to 1920 and Feb 30 is invalid either way; the lookup sees the
	// submitted year.
	assert.False(t, f.Validate(errs))
	assert.Equal(t, 20, gotYear)
	assert.Equal(t, 2, gotMonth)
	assert.Equal(t, forms.MessageDayInvalid, errs.First("birthday"))
}

func TestValidate_IsRepeatable(t *testing.T) {
	f := submit(t, "30", "02", "2020")

	first := &validation.Errors{}
	second := &validation.Errors{}
	assert.False(t, f.Validate(first))
	assert.False(t, f.Validate(second))
	assert.Equal(t, first.Bag, second.Bag)
}
