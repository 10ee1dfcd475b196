package cli

import (
	"strconv"
	"strings"

	"github.com/xolan/blogger/internal/stats"
)

// BarGlyph is the character a bar is drawn with
const BarGlyph = "█"

// TodayMarker is appended to the bar of the current day
const TodayMarker = "← today"

// RenderBarChart renders one line per bar, newest date first:
//
//	Mon 02.01.2006 │████ 8h ← today
func RenderBarChart(chart stats.Chart, valueLabel func(int) string) []string {
	lines := make([]string, 0, len(chart.Bars))
	for _, bar := range chart.Bars {
		var b strings.Builder
		b.WriteString(FormatDay(bar.Date))
		b.WriteString(" │")
		b.WriteString(strings.Repeat(BarGlyph, bar.Length))
		b.WriteString(" ")
		b.WriteString(valueLabel(bar.Value))
		if bar.IsToday {
			b.WriteString(" ")
			b.WriteString(TodayMarker)
		}
		lines = append(lines, b.String())
	}
	return lines
}

// CountLabel labels a bar with a plain number
func CountLabel(value int) string {
	return strconv.Itoa(value)
}
