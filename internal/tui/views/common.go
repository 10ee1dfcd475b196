// Package views holds the tabs of the dashboard. Each view loads its data
// through the services inside a tea.Cmd and keeps the result in its model.
package views

import (
	"fmt"
	"strings"

	"github.com/xolan/blogger/internal/cli"
	"github.com/xolan/blogger/internal/entry"
	"github.com/xolan/blogger/internal/tui/ui"
)

// renderStatus renders the status marks of an entry, one per status type
func renderStatus(e entry.LogEntry, types []entry.StatusType, styles ui.Styles) string {
	parts := make([]string, 0, len(types))
	for i, st := range types {
		mark := styles.StatusOpen.Render(cli.OpenMark)
		if e.IsComplete(st.Name) {
			mark = styles.StatusDone.Render(cli.DoneMark)
		}
		parts = append(parts, fmt.Sprintf("%d:%s %s", i+1, st.Name, mark))
	}
	return strings.Join(parts, "  ")
}

// renderEntryLine renders one log row: time, ticket, duration and status marks
func renderEntryLine(e entry.LogEntry, types []entry.StatusType, styles ui.Styles, width int) string {
	ticket := e.Ticket
	limit := max(20, width-50)
	if len([]rune(ticket)) > limit {
		ticket = string([]rune(ticket)[:limit-1]) + "…"
	}
	return fmt.Sprintf("%s  %s  %s  %s",
		e.Timestamp.Format("15:04"),
		styles.EntryTicket.Render(ticket),
		styles.EntryDuration.Render("("+cli.FormatEntryDuration(e)+")"),
		renderStatus(e, types, styles))
}

// renderLines styles rendered report lines: headings bold, today highlighted
func renderLines(lines []string, styles ui.Styles) string {
	var b strings.Builder
	for _, line := range lines {
		switch {
		case strings.HasSuffix(line, cli.TodayMarker):
			line = styles.Today.Render(line)
		case strings.HasSuffix(line, ":") && !strings.HasPrefix(line, " "):
			line = styles.DayHeader.Render(line)
		case strings.Contains(line, cli.BarGlyph):
			line = styles.Bar.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// renderStatLine renders a "label value" row
func renderStatLine(styles ui.Styles, label, value string) string {
	return styles.StatLabel.Render(fmt.Sprintf("%-16s", label)) + " " + styles.StatValue.Render(value) + "\n"
}

// clampCursor keeps a cursor inside [0, n)
func clampCursor(cursor, n int) int {
	if cursor >= n {
		cursor = n - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}
