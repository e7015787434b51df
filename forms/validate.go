package forms

import (
	"strconv"
	"strings"

	"github.com/km-arc/go-forms/dates"
)

// Collector accumulates validation messages per field name.
// *validation.Errors satisfies it.
type Collector interface {
	ValidationError(field, message string)
}

// Messages reported by DateField.Validate. The bracketed prefix selects the
// sub-field SetMessage routes the message to.
const (
	MessageMonthInvalid = "[_Month] Month invalid"
	MessageDayInvalid   = "[_Day] Day invalid"
	MessageInvalidDate  = "Please enter a valid date"
)

// Validate checks the field once per form validation. A field that has not
// been submitted since its last SetValue always passes, as does a submission
// that produced a real calendar date. Otherwise it fails: a month above 12
// is blamed on the month sub-field, a day past the end of its month on the
// day sub-field, and the generic MessageInvalidDate is always added.
func (f *DateField) Validate(c Collector) bool {
	if f.raw == nil {
		return true
	}
	if f.value != "" && dates.IsValidISO(f.value) {
		return true
	}

	day := atoi(f.raw.Day)
	month := atoi(f.raw.Month)
	year := atoi(f.raw.Year)

	switch {
	case month > 12:
		c.ValidationError(f.name, MessageMonthInvalid)
	case month >= 1 && year != 0 && f.daysInMonth != nil && day > f.daysInMonth(year, month):
		c.ValidationError(f.name, MessageDayInvalid)
	}
	c.ValidationError(f.name, MessageInvalidDate)

	f.logger.Debug("date field rejected",
		"field", f.name, "day", f.raw.Day, "month", f.raw.Month, "year", f.raw.Year)
	return false
}

// atoi reads a submitted component; anything non-numeric counts as 0.
func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
