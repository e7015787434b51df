// Package validation provides Laravel-compatible input validation.
//
// # Overview
//
// Rules are expressed as pipe-separated strings on a map of field names,
// mirroring Laravel's Validator facade.
//
//	v := validation.Make(map[string]string{
//	    "name":     "Alice",
//	    "birthday": "1990-04-12",
//	}, validation.Rules{
//	    "name":     "required|min:2|max:100",
//	    "birthday": "required|date|before:today",
//	})
//
//	if v.Fails() {
//	    // v.Errors() returns *Errors with Bag map[string][]string
//	}
//
// # Available Rules
//
// Presence:
//   - required  — field must be present and non-empty
//   - nullable  — empty value skips the remaining rules
//   - sometimes — same as nullable; kept for Laravel parity
//
// Strings and numbers:
//   - string, min:n, max:n — n counts UTF-8 characters
//   - numeric, integer
//   - digits:n, digits_between:min,max — ASCII digits only
//   - in:a,b,c
//
// Dates:
//   - date — a real calendar date written exactly as YYYY-MM-DD
//   - date_format:Y-m-d — PHP-style format (Y y m n d j M F), strict round-trip
//   - before:x, before_or_equal:x, after:x, after_or_equal:x — x is an ISO
//     date, the name of another field, or a relative phrase ("today")
//
// # Error Bag
//
// Errors serialise to the same JSON structure as Laravel's MessageBag:
//
//	{"errors": {"birthday": ["The birthday is not a valid date."]}}
//
// *Errors also implements the collector interface composite form fields
// report into (ValidationError(field, message)), so a form can gather rule
// failures and field-level failures into one bag.
package validation
