package dates

import "strings"

const (
	// YearFiller is laid down in front of short year input, so "85"
	// becomes "1985".
	YearFiller = "19"
	// ZeroFiller pads month and day input.
	ZeroFiller = "0"
)

// PadLeft left-pads s to width characters. The filler is written once from
// the left, truncated if the gap is smaller than it, and any remaining gap is
// zero-filled: PadLeft("5", 4, "19") is "1905" and PadLeft("123", 4, "19")
// is "1123". Strings already at or over width are returned unchanged.
//
// This is plain string arithmetic; the result is never interpreted as a
// number here.
func PadLeft(s string, width int, filler string) string {
	gap := width - len(s)
	if gap <= 0 || filler == "" {
		return s
	}
	prefix := filler
	if len(prefix) > gap {
		prefix = prefix[:gap]
	}
	return prefix + strings.Repeat("0", gap-len(prefix)) + s
}

// PadYear pads a submitted year to four characters with YearFiller.
func PadYear(s string) string { return PadLeft(s, 4, YearFiller) }

// PadMonth pads a submitted month to two characters with ZeroFiller.
func PadMonth(s string) string { return PadLeft(s, 2, ZeroFiller) }

// PadDay pads a submitted day to two characters with ZeroFiller.
func PadDay(s string) string { return PadLeft(s, 2, ZeroFiller) }
