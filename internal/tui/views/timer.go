package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/blogger/internal/cli"
	"github.com/xolan/blogger/internal/service"
	"github.com/xolan/blogger/internal/timer"
	"github.com/xolan/blogger/internal/tui/ui"
)

// TimerModel is the model for the ongoing entry view
type TimerModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width   int
	height  int
	status  *service.TimerStatus
	now     time.Time
	err     error
	message string

	// Input state for starting an entry
	inputMode bool
	input     textinput.Model
}

// NewTimerModel creates a new timer view model
func NewTimerModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) TimerModel {
	ti := textinput.New()
	ti.Placeholder = "Ticket (e.g. QI-1234 fix login)..."
	ti.CharLimit = 200
	ti.Width = 50

	return TimerModel{
		services: services,
		styles:   styles,
		keys:     keys,
		input:    ti,
	}
}

// timerStatusMsg is sent when the ongoing entry was looked up
type timerStatusMsg struct {
	status  *service.TimerStatus
	now     time.Time
	message string
	err     error
}

// timerTickMsg is sent every second to update the elapsed time
type timerTickMsg time.Time

// Init implements tea.Model
func (m TimerModel) Init() tea.Cmd {
	return tea.Batch(
		m.loadStatus(""),
		m.tickTimer(),
	)
}

// Update implements tea.Model
func (m TimerModel) Update(msg tea.Msg) (TimerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.inputMode {
			return m.handleInputMode(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Start):
			if !m.Running() {
				m.inputMode = true
				m.input.SetValue("")
				m.input.Focus()
				return m, textinput.Blink
			}
		case key.Matches(msg, m.keys.Stop):
			if m.Running() {
				return m, m.stopTimer()
			}
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadStatus("")
		}
		return m, nil

	case timerStatusMsg:
		m.err = msg.err
		m.inputMode = false
		if msg.err != nil {
			return m, nil
		}
		m.status = msg.status
		m.now = msg.now
		if msg.message == "" {
			return m, nil
		}
		m.message = msg.message
		return m, func() tea.Msg { return ui.LogsChangedMsg{} }

	case timerTickMsg:
		if m.Running() {
			m.now = m.services.Now()
		}
		return m, m.tickTimer()

	case ui.LogsChangedMsg:
		return m, m.loadStatus("")

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// handleInputMode handles key events when entering the ticket to start
func (m TimerModel) handleInputMode(msg tea.KeyMsg) (TimerModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		ticket := strings.TrimSpace(m.input.Value())
		if ticket == "" {
			return m, nil
		}
		m.inputMode = false
		m.input.Blur()
		return m, m.startTimer(ticket)
	case key.Matches(msg, m.keys.Back):
		m.inputMode = false
		m.input.Blur()
		m.input.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Running reports whether an entry is ongoing
func (m TimerModel) Running() bool {
	return m.status != nil && m.status.Running
}

// View implements tea.Model
func (m TimerModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Timer"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	if m.inputMode {
		b.WriteString(m.styles.StatLabel.Render("Start ongoing log"))
		b.WriteString("\n\n")
		b.WriteString(m.styles.StatLabel.Render("Ticket:"))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(m.styles.StatLabel.Render("Enter to start, Esc to cancel"))
		return b.String()
	}

	if !m.Running() {
		b.WriteString(m.styles.TimerStopped.Render("No entry is ongoing"))
		b.WriteString("\n\n")
		if m.message != "" {
			b.WriteString(m.styles.Success.Render(m.message))
			b.WriteString("\n\n")
		}
		b.WriteString(m.styles.StatLabel.Render("Press 's' to start an ongoing log"))
		return b.String()
	}

	state := m.status.State
	b.WriteString(m.styles.TimerRunning.Render("● Ongoing"))
	b.WriteString("\n\n")
	b.WriteString(renderStatLine(m.styles, "Ticket:", state.Entry.Ticket))
	b.WriteString(renderStatLine(m.styles, "Started:", formatStartTime(state.StartedAt, m.now)))
	b.WriteString(m.styles.StatLabel.Render(fmt.Sprintf("%-16s", "Elapsed:")))
	b.WriteString(" ")
	b.WriteString(m.styles.TimerElapsed.Render(timer.FormatElapsed(state.StartedAt, m.now)))
	b.WriteString("\n\n")
	b.WriteString(m.styles.StatLabel.Render("Press 'x' to stop and record the time spent"))

	return b.String()
}

// formatStartTime shows the time alone when the entry started today
func formatStartTime(start, now time.Time) string {
	if start.Year() == now.Year() && start.YearDay() == now.YearDay() {
		return "today at " + start.Format("15:04")
	}
	return cli.FormatDay(start) + " at " + start.Format("15:04")
}

// SetSize sets the view dimensions
func (m *TimerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode returns true when the view is capturing keyboard input
func (m TimerModel) IsInputMode() bool {
	return m.inputMode
}

// loadStatus creates a command to look up the ongoing entry
func (m TimerModel) loadStatus(message string) tea.Cmd {
	return func() tea.Msg {
		status, err := m.services.Timer.Status()
		return timerStatusMsg{status: status, now: m.services.Now(), message: message, err: err}
	}
}

// startTimer creates a command starting an ongoing entry
func (m TimerModel) startTimer(ticket string) tea.Cmd {
	return func() tea.Msg {
		e, _, err := m.services.Timer.Start(ticket)
		if err != nil {
			return timerStatusMsg{err: err}
		}
		status, err := m.services.Timer.Status()
		return timerStatusMsg{
			status:  status,
			now:     m.services.Now(),
			message: fmt.Sprintf("Started: %s at %s", e.Ticket, e.Timestamp.Format("15:04")),
			err:     err,
		}
	}
}

// stopTimer creates a command stopping the ongoing entry
func (m TimerModel) stopTimer() tea.Cmd {
	return func() tea.Msg {
		e, minutes, err := m.services.Timer.Stop()
		if err != nil {
			return timerStatusMsg{err: err}
		}
		status, err := m.services.Timer.Status()
		return timerStatusMsg{
			status:  status,
			now:     m.services.Now(),
			message: fmt.Sprintf("Stopped: %s (%s)", e.Ticket, cli.FormatMinutes(minutes)),
			err:     err,
		}
	}
}

// tickTimer returns a command that sends a tick every second
func (m TimerModel) tickTimer() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
