package cmd

import (
	"fmt"
	"time"

	"github.com/xolan/blogger/internal/config"
	"github.com/xolan/blogger/internal/timeutil"
)

func failServices(err error) {
	_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
	_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	if path, pathErr := config.GetConfigPath(); pathErr == nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that your config file is valid TOML: %s\n", path)
	} else {
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
	}
	deps.Exit(1)
}

func failDateFlag(flag, value string, err error) {
	_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid --%s date '%s'\n", flag, value)
	_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use DD.MM.YYYY, e.g. 15.01.2025")
	deps.Exit(1)
}

func failUsage(msg string, usage ...string) {
	_, _ = fmt.Fprintf(deps.Stderr, "Error: %s\n", msg)
	if len(usage) > 0 {
		_, _ = fmt.Fprintln(deps.Stderr, "Usage:")
		for _, u := range usage {
			_, _ = fmt.Fprintf(deps.Stderr, "  %s\n", u)
		}
	}
	deps.Exit(1)
}

// parseDateFlag parses a DD.MM.YYYY flag value. ok is false after a failure was reported.
func parseDateFlag(flag, value string) (day time.Time, ok bool) {
	day, err := timeutil.ParseDate(value)
	if err != nil {
		failDateFlag(flag, value, err)
		return time.Time{}, false
	}
	return day, true
}
