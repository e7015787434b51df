package forms

import (
	"maps"
	"net/url"

	"github.com/km-arc/go-forms/http/validation"
)

// ── Messages ─────────────────────────────────────────────────────────────────

// MessageKind classifies a field message.
type MessageKind string

const (
	KindError   MessageKind = "error"
	KindWarning MessageKind = "warning"
	KindGood    MessageKind = "good"
	KindInfo    MessageKind = "info"
)

// MessageCast tells a renderer how to treat message text.
type MessageCast string

const (
	CastText MessageCast = "text"
	CastHTML MessageCast = "html"
)

// Message is the single message slot every field carries.
type Message struct {
	Text string      `json:"text"`
	Kind MessageKind `json:"kind"`
	Cast MessageCast `json:"cast"`
}

// Empty reports whether no message is set.
func (m Message) Empty() bool { return m.Text == "" }

func newMessage(text string, kind MessageKind, cast MessageCast) Message {
	if text == "" {
		return Message{}
	}
	if kind == "" {
		kind = KindError
	}
	if cast == "" {
		cast = CastText
	}
	return Message{Text: text, Kind: kind, Cast: cast}
}

// ── Field capability ─────────────────────────────────────────────────────────

// Field is a single-value text input. DateField owns three of them and any
// implementation may be substituted for a slot.
type Field interface {
	Name() string
	Title() string
	Value() string
	SetValue(value string)
	Attribute(name string) string
	SetAttribute(name, value string)
	Message() Message
	SetMessage(text string, kind MessageKind, cast MessageCast)
}

// ── TextField ────────────────────────────────────────────────────────────────

// TextField is the default Field. It can also stand on its own in a Form,
// validated by Laravel-style rules.
type TextField struct {
	name      string
	title     string
	inputType string
	value     string
	attrs     map[string]string
	message   Message
	rules     string
}

// NewTextField creates a text input.
func NewTextField(name, title string) *TextField {
	return &TextField{
		name:      name,
		title:     title,
		inputType: "text",
		attrs:     make(map[string]string),
	}
}

func (f *TextField) Name() string              { return f.name }
func (f *TextField) Title() string             { return f.title }
func (f *TextField) Value() string             { return f.value }
func (f *TextField) SetValue(value string)     { f.value = value }
func (f *TextField) InputType() string         { return f.inputType }
func (f *TextField) Message() Message          { return f.message }
func (f *TextField) Attribute(n string) string { return f.attrs[n] }

// SetInputType sets the HTML input type ("text", "number", ...).
func (f *TextField) SetInputType(t string) *TextField {
	f.inputType = t
	return f
}

// SetAttribute sets an extra HTML attribute.
func (f *TextField) SetAttribute(name, value string) {
	f.attrs[name] = value
}

// Attributes returns a copy of the extra HTML attributes.
func (f *TextField) Attributes() map[string]string {
	return maps.Clone(f.attrs)
}

// SetMessage replaces the field message. Empty kind and cast default to
// error and text; empty text clears the slot.
func (f *TextField) SetMessage(text string, kind MessageKind, cast MessageCast) {
	f.message = newMessage(text, kind, cast)
}

// SetRules attaches validation rules, e.g. "required|min:2".
func (f *TextField) SetRules(rules string) *TextField {
	f.rules = rules
	return f
}

// SubmitForm copies the field's own key from values. It reports whether the
// key was present.
func (f *TextField) SubmitForm(values url.Values) bool {
	if !values.Has(f.name) {
		return false
	}
	f.value = values.Get(f.name)
	return true
}

// Validate runs the attached rules and reports failures to c.
func (f *TextField) Validate(c Collector) bool {
	if f.rules == "" {
		return true
	}
	v := validation.Make(map[string]string{f.name: f.value}, validation.Rules{f.name: f.rules})
	if !v.Fails() {
		return true
	}
	for _, msg := range v.Errors().Get(f.name) {
		c.ValidationError(f.name, msg)
	}
	return false
}
