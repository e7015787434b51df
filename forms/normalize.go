package forms

import (
	"time"

	"github.com/km-arc/go-forms/dates"
)

// SetValue assigns a date programmatically and forgets any earlier
// submission. value is parsed strictly as YYYY-MM-DD first and leniently
// ("5 March 2021", "tomorrow") second. An empty or unparseable value leaves
// the field without a value; when a date is understood the sub-fields show
// its zero-padded year, month and day.
func (f *DateField) SetValue(value string) *DateField {
	f.raw = nil
	f.assign(value)
	return f
}

// SetSubmittedValue takes user input keyed by SlotDay, SlotMonth and
// SlotYear; missing keys count as "". The parts are padded (year to four
// characters behind "19", month and day to two behind "0") and shown back in
// the sub-fields whatever their validity. Only a real calendar date becomes
// the value; anything else is left for Validate to reject.
func (f *DateField) SetSubmittedValue(values map[string]string) *DateField {
	return f.Submit(Submission{
		Day:   values[SlotDay],
		Month: values[SlotMonth],
		Year:  values[SlotYear],
	})
}

// Submit is SetSubmittedValue for an already-split submission.
func (f *DateField) Submit(sub Submission) *DateField {
	f.value = ""

	year := dates.PadYear(sub.Year)
	month := dates.PadMonth(sub.Month)
	day := dates.PadDay(sub.Day)
	f.setDisplay(day, month, year)

	date := year + "-" + month + "-" + day
	if dates.IsValidISO(date) {
		f.assign(date)
	} else {
		f.logger.Debug("submitted date is not a calendar date",
			"field", f.name, "date", date)
	}

	f.raw = &sub
	return f
}

// assign derives the canonical value and the sub-field displays from value.
func (f *DateField) assign(value string) {
	t, ok := f.tidy(value)
	if !ok {
		f.value = ""
		return
	}
	canonical := dates.Format(t)
	if !dates.IsValidISO(canonical) {
		f.logger.Debug("date value outside YYYY-MM-DD",
			"field", f.name, "value", value, "date", canonical)
		f.value = ""
		return
	}
	f.value = canonical
	year, month, day := dates.Components(t)
	f.setDisplay(day, month, year)
}

func (f *DateField) tidy(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(dates.ISOLayout, value); err == nil {
		return t, true
	}

	t, err := dates.ParseLenient(value, f.now())
	if err != nil {
		f.logger.Debug("date value not understood",
			"field", f.name, "value", value, "error", err)
		return time.Time{}, false
	}
	f.logger.Debug("date value parsed leniently",
		"field", f.name, "value", value, "date", dates.Format(t))
	return t, true
}
