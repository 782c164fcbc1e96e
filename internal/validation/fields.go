package validation

import (
	"regexp"
	"strings"
	"time"
)

// DateLayout is the wire format for all date fields.
const DateLayout = "2006-01-02"

// TimeLayout is the wire format for time-of-day fields (24h clock).
const TimeLayout = "15:04"

var (
	nameRe        = regexp.MustCompile(`^[A-Za-z\s]+$`)
	strictEmailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	looseEmailRe  = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phone10Re     = regexp.MustCompile(`^[0-9]{10}$`)
	phoneRangeRe  = regexp.MustCompile(`^\d{10,15}$`)
	nicRe         = regexp.MustCompile(`^(\d{9}[vV]|\d{12})$`)
)

// Missing reports whether a string field is absent for required-field
// purposes (empty or whitespace only).
func Missing(s string) bool {
	return strings.TrimSpace(s) == ""
}

// MissingBool reports whether a boolean field was never supplied. An explicit
// false is a present value; only a nil pointer counts as missing. Consent
// flags depend on this distinction.
func MissingBool(b *bool) bool {
	return b == nil
}

// ValidName accepts letters and whitespace only (full names, positions).
func ValidName(s string) bool {
	return nameRe.MatchString(s)
}

// ValidStrictEmail applies the strict email pattern used for room bookings
// and employee records.
func ValidStrictEmail(s string) bool {
	return strictEmailRe.MatchString(s)
}

// ValidLooseEmail applies the looser pattern used for event and kitchen
// contacts. It accepts some inputs the strict pattern rejects; the two are
// deliberately kept separate.
func ValidLooseEmail(s string) bool {
	return looseEmailRe.MatchString(s)
}

// ValidPhone10 requires exactly ten digits.
func ValidPhone10(s string) bool {
	return phone10Re.MatchString(s)
}

// ValidPhoneRange requires ten to fifteen digits (room booking policy).
func ValidPhoneRange(s string) bool {
	return phoneRangeRe.MatchString(s)
}

// ValidNIC accepts a national identity number: nine digits followed by v/V,
// or twelve digits.
func ValidNIC(s string) bool {
	return nicRe.MatchString(s)
}

// ValidContact accepts a free-text contact that is either a ten-digit phone
// number or a loose-format email. The input is trimmed first.
func ValidContact(s string) bool {
	c := strings.TrimSpace(s)
	return ValidPhone10(c) || ValidLooseEmail(c)
}

// DateOnly truncates a timestamp to midnight so date comparisons ignore the
// time of day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// InPast reports whether date falls strictly before today. Both values are
// compared date-only; a date equal to today is not in the past.
func InPast(date, today time.Time) bool {
	return DateOnly(date).Before(DateOnly(today))
}

// ParseDate parses a wire-format date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ParseClockTime parses an HH:MM value onto a fixed reference date so two
// times of day can be compared or subtracted directly.
func ParseClockTime(s string) (time.Time, error) {
	return time.Parse(TimeLayout, s)
}

// HoursBetween returns end minus start in fractional hours. Both values must
// come from ParseClockTime so they share the reference date.
func HoursBetween(start, end time.Time) float64 {
	return end.Sub(start).Hours()
}

// NonNegative reports whether a numeric value is zero or greater.
func NonNegative(v float64) bool {
	return v >= 0
}
