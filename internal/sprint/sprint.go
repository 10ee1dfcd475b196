package sprint

import (
	"errors"
	"fmt"
	"time"

	"github.com/xolan/blogger/internal/entry"
	"github.com/xolan/blogger/internal/timeutil"
)

// ErrInvalidDuration is returned when a sprint is shorter than one week
var ErrInvalidDuration = errors.New("sprint duration must be at least 1 week")

// Config anchors the sprint sequence. Sprint 0 starts on Epoch.
type Config struct {
	Epoch         time.Time
	DurationWeeks int
}

// Validate checks the sprint length
func (c Config) Validate() error {
	if c.DurationWeeks < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidDuration, c.DurationWeeks)
	}
	return nil
}

// Days returns the sprint length in days
func (c Config) Days() int {
	return c.DurationWeeks * 7
}

// Range returns the first and last date (inclusive) of the sprint with the given index
func Range(cfg Config, index int) (time.Time, time.Time) {
	days := cfg.Days()
	start := timeutil.AddDays(cfg.Epoch, index*days)
	end := timeutil.AddDays(start, days-1)
	return start, end
}

// IndexOf returns the index of the sprint containing day.
// Days before the epoch have negative indices.
func IndexOf(cfg Config, day time.Time) int {
	return floorDiv(timeutil.DaysBetween(cfg.Epoch, day), cfg.Days())
}

// CurrentIndex returns the index of the sprint containing today
func CurrentIndex(cfg Config, today time.Time) int {
	return IndexOf(cfg, today)
}

// HistoryRange returns the smallest and largest sprint indices covering
// every date between earliest and latest.
func HistoryRange(cfg Config, earliest, latest time.Time) (int, int) {
	return IndexOf(cfg, earliest), IndexOf(cfg, latest)
}

// floorDiv divides rounding towards negative infinity
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Bucket holds the logs of one sprint
type Bucket struct {
	Index        int
	Start        time.Time
	End          time.Time
	Entries      []entry.LogEntry
	Days         []entry.DayGroup
	TotalMinutes int
}

// IsEmpty reports whether the sprint has no logs
func (b Bucket) IsEmpty() bool {
	return len(b.Entries) == 0
}

// Contains reports whether day falls inside the sprint
func (b Bucket) Contains(day time.Time) bool {
	return timeutil.IsInRange(day, b.Start, b.End)
}

// History returns one bucket per sprint from the earliest to the latest log,
// in ascending order. Past sprints without logs are kept; a sprint that ends
// after today and has no logs is omitted.
func History(cfg Config, logs []entry.LogEntry, today time.Time) []Bucket {
	if len(logs) == 0 {
		return nil
	}

	sorted := entry.SortedAscending(logs)
	minIndex, maxIndex := HistoryRange(cfg, sorted[0].Date(), sorted[len(sorted)-1].Date())

	byIndex := make(map[int][]entry.LogEntry)
	for _, e := range sorted {
		idx := IndexOf(cfg, e.Date())
		byIndex[idx] = append(byIndex[idx], e)
	}

	today = timeutil.Date(today)
	var buckets []Bucket
	for idx := minIndex; idx <= maxIndex; idx++ {
		start, end := Range(cfg, idx)
		entries := byIndex[idx]
		if len(entries) == 0 && end.After(today) {
			continue
		}

		groups := entry.GroupByDate(entries)
		total := 0
		for _, g := range groups {
			total += g.TotalMinutes()
		}
		buckets = append(buckets, Bucket{
			Index:        idx,
			Start:        start,
			End:          end,
			Entries:      entries,
			Days:         groups,
			TotalMinutes: total,
		})
	}
	return buckets
}

// Current returns the bucket for the sprint containing today, empty or not
func Current(cfg Config, logs []entry.LogEntry, today time.Time) Bucket {
	idx := CurrentIndex(cfg, today)
	start, end := Range(cfg, idx)

	var entries []entry.LogEntry
	for _, e := range entry.SortedAscending(logs) {
		if timeutil.IsInRange(e.Date(), start, end) {
			entries = append(entries, e)
		}
	}

	groups := entry.GroupByDate(entries)
	total := 0
	for _, g := range groups {
		total += g.TotalMinutes()
	}
	return Bucket{
		Index:        idx,
		Start:        start,
		End:          end,
		Entries:      entries,
		Days:         groups,
		TotalMinutes: total,
	}
}
