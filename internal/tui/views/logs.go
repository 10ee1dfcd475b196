package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/blogger/internal/cli"
	"github.com/xolan/blogger/internal/entry"
	"github.com/xolan/blogger/internal/filter"
	"github.com/xolan/blogger/internal/service"
	"github.com/xolan/blogger/internal/tui/ui"
)

// logMode represents the current mode of the logs view
type logMode int

const (
	logModeNormal logMode = iota
	logModeAdd
	logModeSubtask
	logModeDelete
	logModeSearch
)

// form fields of the add mode
const (
	fieldTicket = iota
	fieldDescription
	fieldDuration
	fieldCount
)

// LogsModel is the model for the logs view
type LogsModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width   int
	height  int
	cursor  int
	types   []entry.StatusType
	groups  []entry.DayGroup
	entries []entry.LogEntry // entries in display order, cursor indexes into it
	total   int
	err     error
	message string

	// Filter state
	keyword    string
	incomplete bool

	// Input mode state
	mode         logMode
	inputs       [fieldCount]textinput.Model
	focusedInput int
	subtaskInput textinput.Model
	searchInput  textinput.Model
}

// NewLogsModel creates a new logs view model
func NewLogsModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) LogsModel {
	m := LogsModel{
		services: services,
		styles:   styles,
		keys:     keys,
		types:    services.Log.StatusTypes(),
	}

	placeholders := [fieldCount]string{
		"Ticket (e.g. QI-1234 fix login)...",
		"Description (optional)...",
		"Time spent (e.g. 1h30m, ongoing)...",
	}
	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 200
		in.Width = 50
		m.inputs[i] = in
	}
	m.inputs[fieldDuration].CharLimit = 20
	m.inputs[fieldDuration].Width = 20

	m.subtaskInput = textinput.New()
	m.subtaskInput.Placeholder = "Subtask description..."
	m.subtaskInput.CharLimit = 200
	m.subtaskInput.Width = 50

	m.searchInput = textinput.New()
	m.searchInput.Placeholder = "Search ticket, description or subtasks..."
	m.searchInput.CharLimit = 100
	m.searchInput.Width = 40

	return m
}

// logsLoadedMsg is sent when the log file was read
type logsLoadedMsg struct {
	result *service.ListResult
	err    error
}

// logActionMsg is sent when a mutation finished
type logActionMsg struct {
	message string
	err     error
}

// Init implements tea.Model
func (m LogsModel) Init() tea.Cmd {
	return m.loadLogs()
}

// Update implements tea.Model
func (m LogsModel) Update(msg tea.Msg) (LogsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case logModeAdd:
			return m.handleAddMode(msg)
		case logModeSubtask:
			return m.handleSubtaskMode(msg)
		case logModeDelete:
			return m.handleDeleteMode(msg)
		case logModeSearch:
			return m.handleSearchMode(msg)
		}
		return m.handleNormalMode(msg)

	case logsLoadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.setResult(msg.result)
		}
		return m, nil

	case logActionMsg:
		m.mode = logModeNormal
		m.err = msg.err
		m.message = msg.message
		if msg.err != nil {
			return m, nil
		}
		return m, func() tea.Msg { return ui.LogsChangedMsg{} }

	case ui.LogsChangedMsg:
		return m, m.loadLogs()

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

func (m LogsModel) handleNormalMode(msg tea.KeyMsg) (LogsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadLogs()
	case key.Matches(msg, m.keys.ToggleFirst):
		return m, m.toggleStatus(0)
	case key.Matches(msg, m.keys.ToggleNth):
		return m, m.toggleStatus(ui.StatusIndex(msg.String()))
	case key.Matches(msg, m.keys.IncompleteOn):
		m.incomplete = !m.incomplete
		return m, m.loadLogs()
	case key.Matches(msg, m.keys.New):
		m.mode = logModeAdd
		for i := range m.inputs {
			m.inputs[i].SetValue("")
			m.inputs[i].Blur()
		}
		m.focusedInput = fieldTicket
		m.inputs[fieldTicket].Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.AddSubtask):
		if _, ok := m.selected(); ok {
			m.mode = logModeSubtask
			m.subtaskInput.SetValue("")
			m.subtaskInput.Focus()
			return m, textinput.Blink
		}
	case key.Matches(msg, m.keys.Delete):
		if _, ok := m.selected(); ok {
			m.mode = logModeDelete
		}
	case key.Matches(msg, m.keys.Search):
		m.mode = logModeSearch
		m.searchInput.SetValue(m.keyword)
		m.searchInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Back):
		if m.keyword != "" {
			m.keyword = ""
			return m, m.loadLogs()
		}
	}
	return m, nil
}

// handleAddMode handles key events of the new log form
func (m LogsModel) handleAddMode(msg tea.KeyMsg) (LogsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		ticket := strings.TrimSpace(m.inputs[fieldTicket].Value())
		if ticket == "" {
			return m, nil
		}
		m.inputs[m.focusedInput].Blur()
		return m, m.createLog(ticket, m.inputs[fieldDescription].Value(), m.inputs[fieldDuration].Value())
	case key.Matches(msg, m.keys.Back):
		m.mode = logModeNormal
		m.inputs[m.focusedInput].Blur()
		return m, nil
	case msg.String() == "tab", msg.String() == "shift+tab":
		m.inputs[m.focusedInput].Blur()
		step := 1
		if msg.String() == "shift+tab" {
			step = fieldCount - 1
		}
		m.focusedInput = (m.focusedInput + step) % fieldCount
		m.inputs[m.focusedInput].Focus()
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.inputs[m.focusedInput], cmd = m.inputs[m.focusedInput].Update(msg)
	return m, cmd
}

// handleSubtaskMode handles key events of the subtask input
func (m LogsModel) handleSubtaskMode(msg tea.KeyMsg) (LogsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		text := strings.TrimSpace(m.subtaskInput.Value())
		e, ok := m.selected()
		if text == "" || !ok {
			return m, nil
		}
		m.subtaskInput.Blur()
		return m, m.addSubtask(e.ID, text)
	case key.Matches(msg, m.keys.Back):
		m.mode = logModeNormal
		m.subtaskInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.subtaskInput, cmd = m.subtaskInput.Update(msg)
	return m, cmd
}

// handleDeleteMode handles key events when in delete confirmation mode
func (m LogsModel) handleDeleteMode(msg tea.KeyMsg) (LogsModel, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if e, ok := m.selected(); ok {
			return m, m.deleteLog(e.ID)
		}
		m.mode = logModeNormal
	case "n", "N", "esc":
		m.mode = logModeNormal
	}
	return m, nil
}

// handleSearchMode handles key events of the search input
func (m LogsModel) handleSearchMode(msg tea.KeyMsg) (LogsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		m.keyword = strings.TrimSpace(m.searchInput.Value())
		m.mode = logModeNormal
		m.searchInput.Blur()
		return m, m.loadLogs()
	case key.Matches(msg, m.keys.Back):
		m.mode = logModeNormal
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// setResult flattens the day groups and keeps the cursor on the same entry
func (m *LogsModel) setResult(result *service.ListResult) {
	var selectedID string
	if e, ok := m.selected(); ok {
		selectedID = e.ID
	}

	m.groups = result.Groups
	m.total = result.Total
	m.entries = make([]entry.LogEntry, 0, len(result.Entries))
	for _, g := range result.Groups {
		m.entries = append(m.entries, g.Entries...)
	}

	m.cursor = len(m.entries) - 1
	if i := entry.FindByID(m.entries, selectedID); selectedID != "" && i >= 0 {
		m.cursor = i
	}
	m.cursor = clampCursor(m.cursor, len(m.entries))
}

// selected returns the entry under the cursor
func (m LogsModel) selected() (entry.LogEntry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return entry.LogEntry{}, false
	}
	return m.entries[m.cursor], true
}

// View implements tea.Model
func (m LogsModel) View() string {
	switch m.mode {
	case logModeAdd:
		return m.renderAddForm()
	case logModeSubtask:
		return m.renderSubtaskForm()
	case logModeDelete:
		return m.renderDeleteConfirm()
	case logModeSearch:
		return m.renderSearch()
	}

	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render(m.title()))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	if len(m.entries) == 0 {
		if m.keyword != "" || m.incomplete {
			b.WriteString(m.styles.StatLabel.Render("No entries match the filter"))
		} else {
			b.WriteString(m.styles.StatLabel.Render("No logs available"))
		}
		b.WriteString("\n\n")
		b.WriteString(m.styles.StatLabel.Render("Press 'n' to add a new log"))
		return b.String()
	}

	lines, cursorLine := m.listLines()
	for _, line := range visibleWindow(lines, cursorLine, m.height-8) {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("─", min(60, max(m.width, 20))))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Total: %s (%d %s)",
		cli.FormatMinutes(m.total),
		len(m.entries),
		cli.Pluralize("entry", len(m.entries))))

	if m.message != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Success.Render(m.message))
	}
	return b.String()
}

func (m LogsModel) title() string {
	title := "Logs"
	var filters []string
	if m.keyword != "" {
		filters = append(filters, fmt.Sprintf("matching '%s'", m.keyword))
	}
	if m.incomplete && len(m.types) > 0 {
		filters = append(filters, "incomplete "+m.types[0].Name)
	}
	if len(filters) > 0 {
		title += " (" + strings.Join(filters, ", ") + ")"
	}
	return title
}

// listLines renders the day groups and returns the line index of the cursor
func (m LogsModel) listLines() ([]string, int) {
	var lines []string
	cursorLine := 0
	index := 0
	for gi, g := range m.groups {
		if gi > 0 {
			lines = append(lines, "")
		}
		header := fmt.Sprintf("%s  (%s)", cli.FormatDay(g.Date), cli.FormatMinutes(g.TotalMinutes()))
		lines = append(lines, m.styles.DayHeader.Render(header))

		for _, e := range g.Entries {
			line := renderEntryLine(e, m.types, m.styles, m.width)
			if index == m.cursor {
				cursorLine = len(lines)
				line = m.styles.EntrySelected.Render("▸ " + line)
			} else {
				line = m.styles.EntryNormal.Render("  " + line)
			}
			lines = append(lines, line)
			if e.Description != "" {
				lines = append(lines, "    "+m.styles.Subtask.Render(e.Description))
			}
			for _, sub := range e.Subtasks {
				lines = append(lines, "    "+m.styles.Subtask.Render("└─ "+sub))
			}
			index++
		}
	}
	return lines, cursorLine
}

// visibleWindow returns at most height lines keeping the cursor line in view
func visibleWindow(lines []string, cursorLine, height int) []string {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	start := cursorLine - height/2
	start = max(0, min(start, len(lines)-height))
	return lines[start : start+height]
}

// renderAddForm renders the new log form
func (m LogsModel) renderAddForm() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("New Log"))
	b.WriteString("\n\n")

	labels := [fieldCount]string{"Ticket:", "Description:", "Time spent:"}
	for i, label := range labels {
		if i == m.focusedInput {
			label = "▸ " + label
		}
		b.WriteString(m.styles.StatLabel.Render(label))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.StatLabel.Render("Tab to switch fields, Enter to save, Esc to cancel"))
	return b.String()
}

// renderSubtaskForm renders the subtask input for the selected log
func (m LogsModel) renderSubtaskForm() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("Add Subtask"))
	b.WriteString("\n\n")
	if e, ok := m.selected(); ok {
		b.WriteString(m.styles.StatLabel.Render("Log: "))
		b.WriteString(m.styles.StatValue.Render(e.Ticket))
		b.WriteString("\n\n")
	}
	b.WriteString(m.subtaskInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.StatLabel.Render("Enter to add, Esc to cancel"))
	return b.String()
}

// renderDeleteConfirm renders the delete confirmation dialog
func (m LogsModel) renderDeleteConfirm() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("Delete Log"))
	b.WriteString("\n\n")

	if e, ok := m.selected(); ok {
		b.WriteString(m.styles.Warning.Render("Are you sure you want to delete this log?"))
		b.WriteString("\n\n")
		b.WriteString(m.styles.StatLabel.Render("Ticket: "))
		b.WriteString(m.styles.StatValue.Render(e.Ticket))
		b.WriteString("\n")
		b.WriteString(m.styles.StatLabel.Render("Date: "))
		b.WriteString(m.styles.StatValue.Render(cli.FormatDay(e.Date())))
		b.WriteString("\n")
		b.WriteString(m.styles.StatLabel.Render("Time spent: "))
		b.WriteString(m.styles.StatValue.Render(cli.FormatEntryDuration(e)))
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.StatLabel.Render("Press Y to confirm, N or Esc to cancel"))
	return b.String()
}

// renderSearch renders the search input
func (m LogsModel) renderSearch() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("Search Logs"))
	b.WriteString("\n\n")
	b.WriteString(m.searchInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.StatLabel.Render("Enter to apply (empty clears), Esc to cancel"))
	return b.String()
}

// SetSize sets the view dimensions
func (m *LogsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode returns true when the view is capturing keyboard input
func (m LogsModel) IsInputMode() bool {
	return m.mode == logModeAdd || m.mode == logModeSubtask || m.mode == logModeSearch
}

// Cursor returns the index of the selected entry
func (m LogsModel) Cursor() int {
	return m.cursor
}

// loadLogs creates a command to read the log file with the current filter
func (m LogsModel) loadLogs() tea.Cmd {
	f := filter.NewFilter(m.keyword, "", "")
	if m.incomplete && len(m.types) > 0 {
		f.Incomplete = m.types[0].Name
	}
	return func() tea.Msg {
		result, err := m.services.Log.List(f)
		return logsLoadedMsg{result: result, err: err}
	}
}

// toggleStatus creates a command flipping the nth status type of the selected entry
func (m LogsModel) toggleStatus(n int) tea.Cmd {
	e, ok := m.selected()
	if !ok || n < 0 || n >= len(m.types) {
		return nil
	}
	name := m.types[n].Name
	return func() tea.Msg {
		updated, complete, err := m.services.Log.ToggleStatus(e.ID, name)
		if err != nil {
			return logActionMsg{err: err}
		}
		mark := cli.OpenMark
		if complete {
			mark = cli.DoneMark
		}
		return logActionMsg{message: fmt.Sprintf("%s: %s %s", updated.Ticket, name, mark)}
	}
}

// createLog creates a command storing a new log
func (m LogsModel) createLog(ticket, description, duration string) tea.Cmd {
	return func() tea.Msg {
		e, err := m.services.Log.Create(ticket, description, duration, nil)
		if err != nil {
			return logActionMsg{err: err}
		}
		return logActionMsg{message: fmt.Sprintf("Logged: %s (%s)", e.Ticket, cli.FormatEntryDuration(*e))}
	}
}

// addSubtask creates a command appending a subtask to a log
func (m LogsModel) addSubtask(id, text string) tea.Cmd {
	return func() tea.Msg {
		e, err := m.services.Log.AddSubtask(id, text)
		if err != nil {
			return logActionMsg{err: err}
		}
		return logActionMsg{message: fmt.Sprintf("Added subtask %d to %s", len(e.Subtasks), e.Ticket)}
	}
}

// deleteLog creates a command removing a log
func (m LogsModel) deleteLog(id string) tea.Cmd {
	return func() tea.Msg {
		e, err := m.services.Log.Delete(id)
		if err != nil {
			return logActionMsg{err: err}
		}
		return logActionMsg{message: fmt.Sprintf("Deleted: %s (%s)", e.Ticket, cli.FormatEntryDuration(*e))}
	}
}
