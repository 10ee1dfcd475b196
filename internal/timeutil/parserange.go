package timeutil

import (
	"fmt"
	"time"
)

// ParseDateRangeFlags parses --from/--to flag values into an inclusive date range.
// An empty from leaves start zero (unbounded). An empty to defaults to today.
// Returns an error if from is after to.
func ParseDateRangeFlags(fromStr, toStr string, today time.Time) (start, end time.Time, err error) {
	if fromStr != "" {
		start, err = ParseDate(fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --from date: %w", err)
		}
	}

	if toStr != "" {
		end, err = ParseDate(toStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --to date: %w", err)
		}
	} else {
		end = Date(today)
	}

	if !start.IsZero() && start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("--from date (%s) is after --to date (%s)",
			FormatDate(start), FormatDate(end))
	}

	return start, end, nil
}
