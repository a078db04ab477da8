// Package forms parses optional form and query string values.
//
// The parsing policy is deliberately permissive for filters: a value that
// does not parse as an integer is treated as "not supplied" rather than an
// error, so a bad ?year= parameter falls back to the unfiltered list.
package forms

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar format accepted for all date fields.
const DateLayout = "2006-01-02"

// OptionalInt parses s as an integer. Blank or unparseable input yields nil.
func OptionalInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// StrictOptionalInt parses s as an integer. Blank input yields (nil, nil);
// non-blank input that fails to parse is an error. Used for form bodies,
// where a malformed value must reject the write instead of being dropped.
func StrictOptionalInt(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// OptionalString trims s and yields nil for blank input, so empty form
// fields are stored as absent rather than as empty strings.
func OptionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// ParseDate parses a required date field in DateLayout.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// IsBlank reports whether s is empty after trimming.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Checked reports whether a checkbox-style form value is set.
func Checked(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}
