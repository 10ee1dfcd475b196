// Package cli provides the presentation layer for the blogger application.
// It turns entries, sprint buckets and statistics reports into plain text
// lines and prints them for the command handlers and the interactive shell.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/xolan/blogger/internal/entry"
	"github.com/xolan/blogger/internal/storage"
	"github.com/xolan/blogger/internal/timeutil"
)

// Status markers
const (
	DoneMark = "✓"
	OpenMark = "✗"
)

// FormatMinutes formats minutes for display. Zero reads "0m".
// Examples: "0m", "2h", "1h 30m"
func FormatMinutes(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}
	return entry.FormatDuration(minutes)
}

// FormatEntryDuration formats the stored duration of an entry
func FormatEntryDuration(e entry.LogEntry) string {
	if entry.IsOngoing(e.Duration) {
		return entry.OngoingDuration
	}
	return FormatMinutes(e.Minutes())
}

// FormatHours formats a minute average as hours with one decimal
func FormatHours(minutes float64) string {
	return fmt.Sprintf("%.1fh", minutes/60.0)
}

// FormatDay formats a date with its weekday, e.g. "Mon 02.01.2006"
func FormatDay(day time.Time) string {
	return day.Format("Mon " + timeutil.DateLayout)
}

// FormatDateRange formats an inclusive date range, e.g. "30.04.2025 - 13.05.2025"
func FormatDateRange(start, end time.Time) string {
	if timeutil.SameDay(start, end) {
		return timeutil.FormatDate(start)
	}
	return fmt.Sprintf("%s - %s", timeutil.FormatDate(start), timeutil.FormatDate(end))
}

// ShortID returns the prefix of an id that is shown in listings
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// FormatStatus formats the completion flags of an entry for every configured status type.
// Returns format like: "q:✓ jira:✗"
func FormatStatus(e entry.LogEntry, types []entry.StatusType) string {
	parts := make([]string, 0, len(types))
	for _, st := range types {
		mark := OpenMark
		if e.IsComplete(st.Name) {
			mark = DoneMark
		}
		parts = append(parts, st.Name+":"+mark)
	}
	return strings.Join(parts, " ")
}

// FormatEntryLine formats a single entry as one listing line
func FormatEntryLine(e entry.LogEntry, types []entry.StatusType) string {
	line := fmt.Sprintf("[%s] %s  %s (%s)", ShortID(e.ID), e.Timestamp.Format("15:04"), e.Ticket, FormatEntryDuration(e))
	if status := FormatStatus(e, types); status != "" {
		line += "  " + status
	}
	return line
}

// FormatCorruptionWarning formats a ParseWarning into a human-readable string
func FormatCorruptionWarning(warning storage.ParseWarning) string {
	content := warning.Content
	if len(content) > 50 {
		content = content[:47] + "..."
	}
	return fmt.Sprintf("  Record %d: %s (error: %s)", warning.Index, content, warning.Error)
}

// FormatFlag renders a boolean record flag
func FormatFlag(name string, set bool) string {
	if set {
		return name + ":" + DoneMark
	}
	return name + ":" + OpenMark
}

// Pluralize returns the singular or plural form of a word based on count
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	if n := len(word); n > 1 && word[n-1] == 'y' && !strings.ContainsRune("aeiou", rune(word[n-2])) {
		return word[:n-1] + "ies"
	}
	return word + "s"
}
