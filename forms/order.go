package forms

import (
	"fmt"
	"strings"
)

// Order is the display order of a DateField's sub-fields. It never affects
// how submitted values are parsed.
type Order int

const (
	DMY Order = iota + 1
	YMD
	MDY
)

// ParseOrder accepts "dmy", "ymd" or "mdy" in any case.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dmy":
		return DMY, nil
	case "ymd":
		return YMD, nil
	case "mdy":
		return MDY, nil
	}
	return 0, fmt.Errorf("forms: unknown date order %q", s)
}

func (o Order) String() string {
	switch o {
	case YMD:
		return "ymd"
	case MDY:
		return "mdy"
	default:
		return "dmy"
	}
}

// arrange lays the three sub-fields out in display order. Anything other
// than YMD or MDY falls back to day-month-year.
func (o Order) arrange(day, month, year Field) []Field {
	switch o {
	case YMD:
		return []Field{year, month, day}
	case MDY:
		return []Field{month, day, year}
	default:
		return []Field{day, month, year}
	}
}
