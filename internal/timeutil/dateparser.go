package timeutil

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	// DateLayout is the day-month-year layout used for every date the user types
	DateLayout = "02.01.2006"
	// TimestampLayout is the layout log timestamps are stored in
	TimestampLayout = "02.01.2006 15:04:05"
)

// ErrInvalidDateFormat is returned when a date does not match DD.MM.YYYY
var ErrInvalidDateFormat = errors.New("invalid date format")

var (
	partialDateRe  = regexp.MustCompile(`^\d{1,2}\.\d{1,2}\.?$`)
	isoDateRe      = regexp.MustCompile(`^\d{4}-\d{1,2}-\d{1,2}$`)
	slashedDateRe  = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`)
	tooManyPartsRe = regexp.MustCompile(`^\d+\.\d+\.\d+\.`)
)

// ParseDate parses a date string in DD.MM.YYYY format and returns the
// calendar date (see Date). Single-digit day and month are accepted.
// The returned error always wraps ErrInvalidDateFormat.
func ParseDate(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, fmt.Errorf("%w: date cannot be empty (use DD.MM.YYYY, e.g., 15.01.2025)", ErrInvalidDateFormat)
	}

	if t, err := time.Parse(DateLayout, input); err == nil {
		return Date(t), nil
	}
	if t, err := time.Parse("2.1.2006", input); err == nil {
		return Date(t), nil
	}

	return time.Time{}, buildDateParseError(input)
}

// ParseTimestamp parses a stored log timestamp in the local timezone.
// A bare date is accepted and yields midnight.
func ParseTimestamp(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	if t, err := time.ParseInLocation(TimestampLayout, input, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(DateLayout, input, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: '%s' (use DD.MM.YYYY HH:MM:SS)", ErrInvalidDateFormat, input)
}

// FormatDate formats t as DD.MM.YYYY
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// buildDateParseError creates a helpful error message based on the input pattern
func buildDateParseError(input string) error {
	switch {
	case partialDateRe.MatchString(input):
		return fmt.Errorf("%w: '%s' is missing the year (use DD.MM.YYYY, e.g., %s.2025)", ErrInvalidDateFormat, strings.TrimSuffix(input, "."), strings.TrimSuffix(input, "."))
	case isoDateRe.MatchString(input):
		return fmt.Errorf("%w: '%s' looks like YYYY-MM-DD (use DD.MM.YYYY)", ErrInvalidDateFormat, input)
	case slashedDateRe.MatchString(input):
		return fmt.Errorf("%w: '%s' uses slashes (use dots: DD.MM.YYYY)", ErrInvalidDateFormat, input)
	case tooManyPartsRe.MatchString(input):
		return fmt.Errorf("%w: '%s' has too many date parts (use DD.MM.YYYY)", ErrInvalidDateFormat, input)
	default:
		return fmt.Errorf("%w: '%s' (use DD.MM.YYYY, e.g., 15.01.2025)", ErrInvalidDateFormat, input)
	}
}
