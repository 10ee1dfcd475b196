package entry

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// OngoingDuration is the sentinel stored while work on an entry is still running
const OngoingDuration = "ongoing"

// maxTokenMinutes bounds a single duration component. Larger values are
// treated as malformed so that totals and chart scaling cannot overflow.
const maxTokenMinutes = math.MaxInt32

// durationTokenPattern matches a number followed by an optional unit word,
// e.g. "2h", "30m", "1 hour", "45 mins" or a bare "3".
// Decimal numbers are matched so that they can be rejected as a whole.
var durationTokenPattern = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*([a-z]*)`)

// ParseDuration parses a free-text duration and returns it in minutes.
//
// Accepted components are "<n>h" and "<n>m" in either order or alone
// ("1h 30m", "30m1h", "45m", "1h30m"). A bare integer is hours, which
// covers the legacy "N hours" form. Empty input and "ongoing" are 0.
//
// Parsing is lenient: unknown units and decimal numbers contribute 0
// instead of failing, so a sloppy entry never blocks logging. So does a
// component that exceeds maxTokenMinutes once converted to minutes.
func ParseDuration(input string) int {
	text := strings.ToLower(strings.TrimSpace(input))
	if text == "" || text == OngoingDuration {
		return 0
	}

	minutes := 0
	for _, match := range durationTokenPattern.FindAllStringSubmatch(text, -1) {
		value, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}

		switch unitOf(match[2]) {
		case "h":
			if value > maxTokenMinutes/60 {
				continue
			}
			value *= 60
		case "m":
			if value > maxTokenMinutes {
				continue
			}
		default:
			continue
		}
		minutes += value
	}
	return minutes
}

// unitOf normalizes a unit word to "h" or "m". Unknown words yield "".
func unitOf(word string) string {
	switch word {
	case "", "h", "hr", "hrs", "hour", "hours":
		return "h"
	case "m", "min", "mins", "minute", "minutes":
		return "m"
	}
	return ""
}

// FormatDuration formats minutes as "{h}h" or "{h}h {m}m".
// Zero (or negative) minutes format as the empty string.
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// IsOngoing reports whether a duration text is the ongoing sentinel
func IsOngoing(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), OngoingDuration)
}
