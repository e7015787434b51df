package forms

import (
	"log/slog"
	"net/url"
	"time"

	"github.com/km-arc/go-forms/dates"
)

// Slot keys. Sub-fields are named "<name>[_Day]" etc. and submissions are
// keyed by the bare slot.
const (
	SlotDay   = "_Day"
	SlotMonth = "_Month"
	SlotYear  = "_Year"
)

// Submission is the raw day/month/year strings of the last form submission.
type Submission struct {
	Day   string `json:"day"`
	Month string `json:"month"`
	Year  string `json:"year"`
}

// Clock returns the current time. It is only consulted by the lenient
// fallback parser.
type Clock func() time.Time

// Option configures a DateField.
type Option func(*DateField)

// WithClock sets the reference time for relative date input.
func WithClock(now Clock) Option {
	return func(f *DateField) {
		if now != nil {
			f.now = now
		}
	}
}

// WithLogger sets the logger used for parse diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(f *DateField) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithDaysInMonth replaces the calendar lookup used to attribute an error to
// the day sub-field. nil disables day attribution; the generic failure
// message is still reported.
func WithDaysInMonth(fn dates.DaysInMonthFunc) Option {
	return func(f *DateField) { f.daysInMonth = fn }
}

// RouteYearMessagesToYearField sends "[_Year]" messages to the year
// sub-field. Without it they land on the month sub-field, which is how the
// field has always behaved.
func RouteYearMessagesToYearField() Option {
	return func(f *DateField) { f.yearToYear = true }
}

// DateField is a composite date input made of day, month and year text
// fields. Its value is a canonical YYYY-MM-DD string, or "" when no valid
// date is known.
//
// A DateField is not safe for concurrent use; it is meant to live for one
// request.
type DateField struct {
	name    string
	title   string
	order   Order
	value   string
	raw     *Submission
	message Message

	day      Field
	month    Field
	year     Field
	children []Field

	now         Clock
	daysInMonth dates.DaysInMonthFunc
	yearToYear  bool
	logger      *slog.Logger
}

// NewDateField builds the three sub-fields, lays them out in order and
// assigns value through SetValue.
func NewDateField(name, title, value string, order Order, opts ...Option) *DateField {
	f := &DateField{
		name:        name,
		title:       title,
		order:       order,
		now:         time.Now,
		daysInMonth: dates.DaysInMonth,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.day = newSubField(name, SlotDay, "Day")
	f.month = newSubField(name, SlotMonth, "Month")
	f.year = newSubField(name, SlotYear, "Year")
	f.children = order.arrange(f.day, f.month, f.year)

	f.SetValue(value)
	return f
}

func newSubField(parent, slot, title string) *TextField {
	tf := NewTextField(parent+"["+slot+"]", title).SetInputType("number")
	tf.SetAttribute("pattern", "[0-9]*")
	return tf
}

// ── accessors ────────────────────────────────────────────────────────────────

func (f *DateField) Name() string     { return f.name }
func (f *DateField) Title() string    { return f.title }
func (f *DateField) Order() Order     { return f.order }
func (f *DateField) Message() Message { return f.message }

// Value returns the canonical YYYY-MM-DD date, or "" when there is none.
func (f *DateField) Value() string { return f.value }

// HasValue reports whether a valid date is currently held.
func (f *DateField) HasValue() bool { return f.value != "" }

// Time returns the value as a time at midnight UTC.
func (f *DateField) Time() (time.Time, bool) {
	t, err := dates.ParseISO(f.value)
	return t, err == nil
}

// Raw returns the last submission, if one happened after the most recent
// programmatic SetValue.
func (f *DateField) Raw() (Submission, bool) {
	if f.raw == nil {
		return Submission{}, false
	}
	return *f.raw, true
}

// ── sub-fields ───────────────────────────────────────────────────────────────

func (f *DateField) DayField() Field   { return f.day }
func (f *DateField) MonthField() Field { return f.month }
func (f *DateField) YearField() Field  { return f.year }

// SetDayField substitutes the day sub-field and re-arranges Children.
func (f *DateField) SetDayField(field Field) *DateField {
	if field != nil {
		f.day = field
		f.rearrange()
	}
	return f
}

// SetMonthField substitutes the month sub-field and re-arranges Children.
func (f *DateField) SetMonthField(field Field) *DateField {
	if field != nil {
		f.month = field
		f.rearrange()
	}
	return f
}

// SetYearField substitutes the year sub-field and re-arranges Children.
func (f *DateField) SetYearField(field Field) *DateField {
	if field != nil {
		f.year = field
		f.rearrange()
	}
	return f
}

func (f *DateField) rearrange() {
	f.children = f.order.arrange(f.day, f.month, f.year)
}

// Children returns the sub-fields in display order.
func (f *DateField) Children() []Field {
	out := make([]Field, len(f.children))
	copy(out, f.children)
	return out
}

// SetChildren overrides the display collection. It does not change which
// fields back the day, month and year slots.
func (f *DateField) SetChildren(children []Field) *DateField {
	f.children = append([]Field(nil), children...)
	return f
}

func (f *DateField) setDisplay(day, month, year string) {
	f.day.SetValue(day)
	f.month.SetValue(month)
	f.year.SetValue(year)
}

// ── form plumbing ────────────────────────────────────────────────────────────

// SubmitForm reads "<name>[_Day]", "<name>[_Month]" and "<name>[_Year]"
// from values. When none of them is present nothing is submitted and false
// is returned.
func (f *DateField) SubmitForm(values url.Values) bool {
	sub := make(map[string]string, 3)
	found := false
	for _, slot := range []string{SlotDay, SlotMonth, SlotYear} {
		key := f.name + "[" + slot + "]"
		if values.Has(key) {
			sub[slot] = values.Get(key)
			found = true
		}
	}
	if !found {
		return false
	}
	f.SetSubmittedValue(sub)
	return true
}

// ClearMessage empties the composite's and every sub-field's message slot.
func (f *DateField) ClearMessage() {
	f.message = Message{}
	for _, sub := range []Field{f.day, f.month, f.year} {
		sub.SetMessage("", "", "")
	}
}
