package forms

import "strings"

var messagePrefixes = []string{"[" + SlotYear + "]", "[" + SlotMonth + "]", "[" + SlotDay + "]"}

// SetMessage attaches a message to the field. A message starting with
// "[_Year]", "[_Month]" or "[_Day]" has the prefix (and one following
// space) stripped and is handed to the matching sub-field; anything else
// goes to the composite's own slot.
//
// "[_Year]" messages go to the month sub-field unless the field was built
// with RouteYearMessagesToYearField.
// TODO: confirm whether year messages should always reach the year field,
// then drop the option and the month fallback.
func (f *DateField) SetMessage(text string, kind MessageKind, cast MessageCast) {
	for _, prefix := range messagePrefixes {
		rest, ok := strings.CutPrefix(text, prefix)
		if !ok {
			continue
		}
		rest = strings.TrimPrefix(rest, " ")
		f.messageTarget(prefix).SetMessage(rest, kind, cast)
		return
	}
	f.message = newMessage(text, kind, cast)
}

func (f *DateField) messageTarget(prefix string) Field {
	switch prefix {
	case "[" + SlotYear + "]":
		if f.yearToYear {
			return f.year
		}
		return f.month
	case "[" + SlotMonth + "]":
		return f.month
	default:
		return f.day
	}
}
