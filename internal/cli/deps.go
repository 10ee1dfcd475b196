package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/xolan/blogger/internal/service"
)

// Deps contains all dependencies for CLI operations
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Exit   func(code int)

	// Services
	Services *service.Services
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	todayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#50fa7b"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffb86c"))
)

// Println writes a single line to stdout
func (d *Deps) Println(line string) {
	_, _ = fmt.Fprintln(d.Stdout, line)
}

// Printf writes a formatted message to stdout
func (d *Deps) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(d.Stdout, format, args...)
}

// PrintLines writes rendered lines to stdout. Section headings and the
// current day are highlighted when the terminal supports colour.
func (d *Deps) PrintLines(lines []string) {
	for _, line := range lines {
		switch {
		case isHeading(line):
			line = headingStyle.Render(line)
		case strings.HasSuffix(line, TodayMarker):
			line = todayStyle.Render(line)
		}
		_, _ = fmt.Fprintln(d.Stdout, line)
	}
}

// Fail prints an error with optional details and hints to stderr and exits with code 1
func (d *Deps) Fail(msg string, err error, hints ...string) {
	_, _ = fmt.Fprintf(d.Stderr, "Error: %s\n", msg)
	if err != nil {
		_, _ = fmt.Fprintf(d.Stderr, "Details: %v\n", err)
	}
	for _, h := range hints {
		_, _ = fmt.Fprintf(d.Stderr, "Hint: %s\n", h)
	}
	d.Exit(1)
}

// Warn prints a warning line to stderr
func (d *Deps) Warn(format string, args ...any) {
	_, _ = fmt.Fprintln(d.Stderr, warningStyle.Render("Warning: "+fmt.Sprintf(format, args...)))
}

func isHeading(line string) bool {
	return strings.HasSuffix(line, ":") && !strings.HasPrefix(line, " ")
}
