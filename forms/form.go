// Package forms implements server-side form fields, centred on DateField: a
// composite day/month/year input that assembles a canonical YYYY-MM-DD
// value, validates it as a real calendar date and attributes errors to the
// sub-field at fault.
//
//	birthday := forms.NewDateField("birthday", "Birthday", "", forms.DMY)
//	form := forms.NewForm("profile", birthday)
//
//	form.Submit(r.PostForm) // birthday[_Day]=30&birthday[_Month]=2&birthday[_Year]=2020
//	if !form.Validate() {
//	    // birthday[_Day] → "Day invalid", birthday → "Please enter a valid date"
//	    res.ValidationError(form.Messages())
//	}
package forms

import (
	"net/url"

	"github.com/km-arc/go-forms/http/validation"
)

// FormField is anything a Form can submit to and validate.
type FormField interface {
	Name() string
	Message() Message
	SetMessage(text string, kind MessageKind, cast MessageCast)
	Validate(c Collector) bool
}

// Submittable fields read their own keys out of request values.
type Submittable interface {
	SubmitForm(values url.Values) bool
}

type messageClearer interface {
	ClearMessage()
}

type composite interface {
	Children() []Field
}

// Form groups fields, feeds them request input and routes validation
// messages back onto them.
type Form struct {
	name   string
	fields []FormField
	errors *validation.Errors
}

// NewForm creates a form over fields, kept in the given order.
func NewForm(name string, fields ...FormField) *Form {
	return &Form{name: name, fields: fields, errors: &validation.Errors{}}
}

func (f *Form) Name() string { return f.name }

// Fields returns the form's fields in order.
func (f *Form) Fields() []FormField { return f.fields }

// Field returns the field with the given name, or nil.
func (f *Form) Field(name string) FormField {
	for _, fld := range f.fields {
		if fld.Name() == name {
			return fld
		}
	}
	return nil
}

// Submit hands values to every Submittable field.
func (f *Form) Submit(values url.Values) *Form {
	for _, fld := range f.fields {
		if s, ok := fld.(Submittable); ok {
			s.SubmitForm(values)
		}
	}
	return f
}

// Validate clears old messages, validates every field into a fresh error
// bag and then routes each collected message through the owning field's
// SetMessage. It reports whether every field passed.
func (f *Form) Validate() bool {
	errs := &validation.Errors{}
	ok := true
	for _, fld := range f.fields {
		if c, isClearer := fld.(messageClearer); isClearer {
			c.ClearMessage()
		} else {
			fld.SetMessage("", "", "")
		}
		if !fld.Validate(errs) {
			ok = false
		}
	}
	for _, fld := range f.fields {
		for _, msg := range errs.Get(fld.Name()) {
			fld.SetMessage(msg, KindError, CastText)
		}
	}
	f.errors = errs
	return ok
}

// Errors returns the bag from the last Validate, messages unrouted.
func (f *Form) Errors() *validation.Errors { return f.errors }

// Messages collects the messages currently held by fields and their
// sub-fields, keyed by input name, e.g. "birthday[_Day]".
func (f *Form) Messages() *validation.Errors {
	out := &validation.Errors{}
	for _, fld := range f.fields {
		if m := fld.Message(); !m.Empty() {
			out.Add(fld.Name(), m.Text)
		}
		c, ok := fld.(composite)
		if !ok {
			continue
		}
		for _, child := range c.Children() {
			if m := child.Message(); !m.Empty() {
				out.Add(child.Name(), m.Text)
			}
		}
	}
	return out
}
