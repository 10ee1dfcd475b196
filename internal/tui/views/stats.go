package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/blogger/internal/cli"
	"github.com/xolan/blogger/internal/service"
	"github.com/xolan/blogger/internal/tui/ui"
)

// StatsModel is the model for the statistics view
type StatsModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width  int
	height int
	result *service.StatsResult
	report []string
	offset int
	err    error
}

// NewStatsModel creates a new stats view model
func NewStatsModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) StatsModel {
	return StatsModel{
		services: services,
		styles:   styles,
		keys:     keys,
	}
}

// statsLoadedMsg is sent when the report was built
type statsLoadedMsg struct {
	result *service.StatsResult
	err    error
}

// Init implements tea.Model
func (m StatsModel) Init() tea.Cmd {
	return m.loadStats()
}

// Update implements tea.Model
func (m StatsModel) Update(msg tea.Msg) (StatsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.offset > 0 {
				m.offset--
			}
		case key.Matches(msg, m.keys.Down):
			if m.offset < len(m.report)-1 {
				m.offset++
			}
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadStats()
		}

	case statsLoadedMsg:
		m.err = msg.err
		m.result = msg.result
		m.report = nil
		if msg.result != nil {
			m.report = cli.RenderStatsReport(msg.result.Report)
		}
		m.offset = min(m.offset, max(0, len(m.report)-1))

	case ui.LogsChangedMsg:
		return m, m.loadStats()

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// View implements tea.Model
func (m StatsModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Statistics"))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		return b.String()
	}

	if m.result == nil {
		b.WriteString("Loading...")
		return b.String()
	}

	if n := len(m.result.Warnings); n > 0 {
		b.WriteString(m.styles.Warning.Render(fmt.Sprintf("%d corrupted %s skipped", n, cli.Pluralize("record", n))))
		b.WriteString("\n\n")
	}

	lines := m.report[m.offset:]
	if m.height > 8 && len(lines) > m.height-8 {
		lines = lines[:m.height-8]
	}
	b.WriteString(renderLines(lines, m.styles))
	return b.String()
}

// SetSize sets the view dimensions
func (m *StatsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// loadStats creates a command to build the statistics report
func (m StatsModel) loadStats() tea.Cmd {
	return func() tea.Msg {
		result, err := m.services.Stats.Report()
		return statsLoadedMsg{result: result, err: err}
	}
}
