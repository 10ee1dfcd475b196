package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"github.com/xolan/blogger/internal/cli"
	"github.com/xolan/blogger/internal/cli/handlers"
	"github.com/xolan/blogger/internal/entry"
	"github.com/xolan/blogger/internal/osutil"
)

// DefaultBanner is shown when no banner file is configured
const DefaultBanner = "B-LOGGER\nYour Retro B-logging Companion"

var (
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8be9fd"))
	titleStyle  = lipgloss.NewStyle().Reverse(true)
)

// Prompter reads one line of input after showing a prompt.
// Prompt returns io.EOF when the input ends or the user aborts with Ctrl-C.
type Prompter interface {
	Prompt(prompt string) (string, error)
	Close() error
}

// linerPrompter reads input with line editing and history
type linerPrompter struct {
	state *liner.State
}

func newLinerPrompter() Prompter {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	state.SetCompleter(func(line string) []string {
		var out []string
		for _, item := range shellMenu {
			if strings.HasPrefix(item.key, line) {
				out = append(out, item.key)
			}
		}
		return out
	})
	return &linerPrompter{state: state}
}

func (p *linerPrompter) Prompt(prompt string) (string, error) {
	line, err := p.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		p.state.AppendHistory(line)
	}
	return line, nil
}

func (p *linerPrompter) Close() error {
	return p.state.Close()
}

// scannerPrompter reads plain lines, used for piped input and tests
type scannerPrompter struct {
	out     io.Writer
	scanner *bufio.Scanner
}

// NewScannerPrompter returns a Prompter reading lines from in and writing prompts to out
func NewScannerPrompter(in io.Reader, out io.Writer) Prompter {
	return &scannerPrompter{out: out, scanner: bufio.NewScanner(in)}
}

func (p *scannerPrompter) Prompt(prompt string) (string, error) {
	_, _ = fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.scanner.Text(), nil
}

func (p *scannerPrompter) Close() error {
	return nil
}

type menuItem struct {
	key   string
	label string
	run   func(s *shell) error
}

var shellMenu = []menuItem{
	{"1", "Create new log", (*shell).createLog},
	{"2", "View logs", (*shell).viewLogs},
	{"3", "Edit log status", (*shell).editStatus},
	{"4", "Delete log", (*shell).deleteLog},
	{"5", "Statistics", (*shell).showStats},
	{"6", "Sprint", (*shell).showSprint},
	{"7", "Exit", nil},
}

// shell is the interactive menu loop
type shell struct {
	deps   *cli.Deps
	prompt Prompter
	banner string
}

// runShell starts the interactive menu. Ctrl-C or end of input leave it cleanly.
func runShell() {
	d := handlerDeps()
	if d == nil {
		return
	}
	// handler failures are reported and the loop continues
	d.Exit = func(int) {}

	prompter := deps.Prompter()
	defer func() { _ = prompter.Close() }()

	s := &shell{deps: d, prompt: prompter, banner: loadBanner(d.Services.Config.Get().Banner)}
	if err := s.run(); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
	}
}

// loadBanner reads the banner file, falling back to the built-in banner
func loadBanner(path string) string {
	if path == "" {
		return DefaultBanner
	}
	expanded, err := osutil.ExpandHome(path)
	if err != nil {
		return DefaultBanner
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return DefaultBanner
	}
	return strings.TrimRight(string(data), "\n")
}

func (s *shell) run() error {
	for {
		s.deps.Println(bannerStyle.Render(s.banner))
		s.deps.Println("")
		s.deps.Println(titleStyle.Render("B-Logger"))
		for _, item := range shellMenu {
			s.deps.Printf("%s. %s\n", item.key, item.label)
		}

		choice, err := s.ask(fmt.Sprintf("\nEnter your choice (1-%d): ", len(shellMenu)))
		if err != nil {
			return exitOnEOF(err)
		}

		item, ok := findMenuItem(choice)
		if !ok {
			s.deps.Printf("Invalid choice '%s'\n", choice)
			continue
		}
		if item.run == nil {
			return nil
		}
		if err := item.run(s); err != nil {
			return exitOnEOF(err)
		}
	}
}

func findMenuItem(choice string) (menuItem, bool) {
	switch strings.ToLower(choice) {
	case "q", "quit", "exit":
		choice = shellMenu[len(shellMenu)-1].key
	}
	for _, item := range shellMenu {
		if item.key == choice {
			return item, true
		}
	}
	return menuItem{}, false
}

// exitOnEOF turns the end of input into a clean exit
func exitOnEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *shell) ask(prompt string) (string, error) {
	line, err := s.prompt.Prompt(prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *shell) pause() error {
	_, err := s.prompt.Prompt("\nPress Enter to continue...")
	return err
}

func (s *shell) createLog() error {
	s.deps.Println(titleStyle.Render("Create New Log"))

	ticket, err := s.ask("Enter your log here: ")
	if err != nil {
		return err
	}
	description, err := s.ask("Enter description: ")
	if err != nil {
		return err
	}
	duration, err := s.ask("Time spent (e.g. 1h30m, ongoing): ")
	if err != nil {
		return err
	}

	e, err := s.deps.Services.Log.Create(ticket, description, duration, nil)
	if err != nil {
		s.deps.Fail("Failed to create log", err)
		return nil
	}
	if err := s.updateStatus(e); err != nil {
		return err
	}
	s.deps.Printf("Logged: %s (%s)\n", e.Ticket, cli.FormatEntryDuration(*e))
	return nil
}

// updateStatus asks for every status type and then for subtasks
func (s *shell) updateStatus(e *entry.LogEntry) error {
	s.deps.Printf("Current log: %s - %s\n", e.Ticket, e.Description)

	for _, st := range s.deps.Services.Log.StatusTypes() {
		answer, err := s.ask(fmt.Sprintf("Update %s status (x for %s, c for %s): ", st.Name, cli.OpenMark, cli.DoneMark))
		if err != nil {
			return err
		}
		if answer == "" {
			continue
		}
		if _, err := s.deps.Services.Log.SetStatus(e.ID, st.Name, strings.EqualFold(answer, "c")); err != nil {
			s.deps.Fail("Failed to update status", err)
			return nil
		}
	}

	for {
		answer, err := s.ask("Add subtask? (y/n): ")
		if err != nil {
			return err
		}
		if !strings.EqualFold(answer, "y") {
			return nil
		}
		text, err := s.ask("Enter subtask description: ")
		if err != nil {
			return err
		}
		updated, err := s.deps.Services.Log.AddSubtask(e.ID, text)
		if err != nil {
			s.deps.Fail("Failed to add subtask", err)
			continue
		}
		s.deps.Printf("Added subtask: %s\n", text)
		s.deps.Println("Current subtasks:")
		for i, task := range updated.Subtasks {
			s.deps.Printf("%d. %s\n", i+1, task)
		}
		s.deps.Println("")
	}
}

// printNumbered lists every entry with a 1-based number, oldest first
func (s *shell) printNumbered() ([]entry.LogEntry, error) {
	logs, _, err := s.deps.Services.Log.All()
	if err != nil {
		return nil, err
	}
	logs = entry.SortedAscending(logs)

	s.deps.Println(titleStyle.Render("Log History"))
	if len(logs) == 0 {
		s.deps.Println("No logs available")
	}
	types := s.deps.Services.Log.StatusTypes()
	for i, e := range logs {
		line := fmt.Sprintf("%d. %s %s", i+1, e.Timestamp.String(), e.Ticket)
		if e.Description != "" {
			line += " - " + e.Description
		}
		s.deps.Printf("%s (%s) %s\n", line, cli.FormatEntryDuration(e), cli.FormatStatus(e, types))
		for _, sub := range e.Subtasks {
			s.deps.Printf("   └─ %s\n", sub)
		}
	}
	return logs, nil
}

// pick asks for an entry number; 0 or an invalid answer selects nothing
func (s *shell) pick(logs []entry.LogEntry, action string) (*entry.LogEntry, error) {
	answer, err := s.ask(fmt.Sprintf("Enter log number to %s (0 to cancel): ", action))
	if err != nil {
		return nil, err
	}
	n, convErr := strconv.Atoi(answer)
	if convErr != nil {
		s.deps.Println("Invalid input")
		return nil, nil
	}
	if n < 1 || n > len(logs) {
		if n != 0 {
			s.deps.Printf("No log number %d\n", n)
		}
		return nil, nil
	}
	return &logs[n-1], nil
}

func (s *shell) viewLogs() error {
	if _, err := s.printNumbered(); err != nil {
		s.deps.Fail("Failed to read logs", err)
	}
	return s.pause()
}

func (s *shell) editStatus() error {
	logs, err := s.printNumbered()
	if err != nil {
		s.deps.Fail("Failed to read logs", err)
		return nil
	}
	e, err := s.pick(logs, "edit")
	if err != nil || e == nil {
		return err
	}
	return s.updateStatus(e)
}

func (s *shell) deleteLog() error {
	logs, err := s.printNumbered()
	if err != nil {
		s.deps.Fail("Failed to read logs", err)
		return nil
	}
	e, err := s.pick(logs, "delete")
	if err != nil || e == nil {
		return err
	}

	confirm, err := s.ask(fmt.Sprintf("Are you sure you want to delete log %s? (y/n): ", e.Ticket))
	if err != nil {
		return err
	}
	if !strings.EqualFold(confirm, "y") {
		return nil
	}
	handlers.DeleteEntry(s.deps, e.ID, true)
	return s.pause()
}

func (s *shell) showStats() error {
	handlers.ShowStats(s.deps)
	return s.pause()
}

func (s *shell) showSprint() error {
	handlers.ShowCurrentSprint(s.deps)
	return s.pause()
}
