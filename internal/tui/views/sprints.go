package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/blogger/internal/cli"
	"github.com/xolan/blogger/internal/entry"
	"github.com/xolan/blogger/internal/service"
	"github.com/xolan/blogger/internal/sprint"
	"github.com/xolan/blogger/internal/stats"
	"github.com/xolan/blogger/internal/tui/ui"
)

// SprintsModel is the model for the sprint history view
type SprintsModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width   int
	height  int
	types   []entry.StatusType
	history *service.HistoryResult
	cursor  int
	err     error
}

// NewSprintsModel creates a new sprints view model
func NewSprintsModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) SprintsModel {
	return SprintsModel{
		services: services,
		styles:   styles,
		keys:     keys,
		types:    services.Log.StatusTypes(),
	}
}

// sprintsLoadedMsg is sent when the sprint history was built
type sprintsLoadedMsg struct {
	history *service.HistoryResult
	err     error
}

// Init implements tea.Model
func (m SprintsModel) Init() tea.Cmd {
	return m.loadHistory()
}

// Update implements tea.Model
func (m SprintsModel) Update(msg tea.Msg) (SprintsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.history != nil && m.cursor < len(m.history.Buckets)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadHistory()
		}

	case sprintsLoadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.history = msg.history
			m.cursor = m.currentPosition()
		}

	case ui.LogsChangedMsg:
		return m, m.loadHistory()

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// currentPosition returns the position of the current sprint, or the latest one
func (m SprintsModel) currentPosition() int {
	for i, b := range m.history.Buckets {
		if b.Index == m.history.Current {
			return i
		}
	}
	return clampCursor(len(m.history.Buckets)-1, len(m.history.Buckets))
}

// View implements tea.Model
func (m SprintsModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Sprints"))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		return b.String()
	}
	if m.history == nil {
		b.WriteString("Loading...")
		return b.String()
	}

	cfg := m.history.Config
	b.WriteString(m.styles.StatLabel.Render(fmt.Sprintf("%d-week sprints starting %s",
		cfg.DurationWeeks, cfg.Epoch.Format("02.01.2006"))))
	b.WriteString("\n\n")

	if len(m.history.Buckets) == 0 {
		b.WriteString(m.styles.StatLabel.Render("No logs available"))
		return b.String()
	}

	for i, bucket := range m.history.Buckets {
		header := cli.RenderSprintHeader(bucket, bucket.Index == m.history.Current)
		switch {
		case i == m.cursor:
			b.WriteString(m.styles.EntrySelected.Render("▸ " + header))
		case bucket.Index == m.history.Current:
			b.WriteString(m.styles.Current.Render("  " + header))
		default:
			b.WriteString("  " + header)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderLines(m.detailLines(m.history.Buckets[m.cursor]), m.styles))
	return b.String()
}

// detailLines renders the statistics and day groups of one sprint
func (m SprintsModel) detailLines(bucket sprint.Bucket) []string {
	lines := []string{cli.Rule("=")}
	lines = append(lines, cli.RenderStatistics(stats.CalculateStatistics(bucket.Entries, bucket.Start, bucket.End))...)
	lines = append(lines, "")
	if bucket.IsEmpty() {
		return append(lines, "No logs in this sprint")
	}
	return append(lines, cli.RenderDayGroups(bucket.Days, m.types)...)
}

// SetSize sets the view dimensions
func (m *SprintsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// loadHistory creates a command to build the sprint history
func (m SprintsModel) loadHistory() tea.Cmd {
	return func() tea.Msg {
		history, err := m.services.Sprint.History()
		return sprintsLoadedMsg{history: history, err: err}
	}
}
