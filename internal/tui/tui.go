// Package tui provides the terminal dashboard of blogger.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xolan/blogger/internal/service"
	"github.com/xolan/blogger/internal/tui/ui"
	"github.com/xolan/blogger/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabLogs Tab = iota
	TabTimer
	TabStats
	TabSprints
	TabConfig
)

var tabNames = []string{"Logs", "Timer", "Stats", "Sprints", "Config"}

// Model is the root dashboard model
type Model struct {
	services *service.Services

	// UI state
	activeTab Tab
	width     int
	height    int
	showHelp  bool
	err       error

	// View models
	logsView    views.LogsModel
	timerView   views.TimerModel
	statsView   views.StatsModel
	sprintsView views.SprintsModel
	configView  views.ConfigModel

	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// themeSavedMsg reports the result of persisting the selected theme
type themeSavedMsg struct {
	err error
}

// New creates a new dashboard model
func New(services *service.Services) Model {
	themeProvider := ui.NewThemeProvider(services.Config.Get().Theme)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	return Model{
		services:      services,
		activeTab:     TabLogs,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		logsView:      views.NewLogsModel(services, styles, keys),
		timerView:     views.NewTimerModel(services, styles, keys),
		statsView:     views.NewStatsModel(services, styles, keys),
		sprintsView:   views.NewSprintsModel(services, styles, keys),
		configView:    views.NewConfigModel(services, themeProvider, styles, keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.logsView.Init(),
		m.timerView.Init(),
	)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Text inputs own every key, including tab and q
		if m.isInputMode() {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil
		case key.Matches(msg, m.keys.NextTab):
			return m.switchTab(Tab((int(m.activeTab) + 1) % len(tabNames)))
		case key.Matches(msg, m.keys.PrevTab):
			return m.switchTab(Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames)))
		case key.Matches(msg, m.keys.Tab1):
			return m.switchTab(TabLogs)
		case key.Matches(msg, m.keys.Tab2):
			return m.switchTab(TabTimer)
		case key.Matches(msg, m.keys.Tab3):
			return m.switchTab(TabStats)
		case key.Matches(msg, m.keys.Tab4):
			return m.switchTab(TabSprints)
		case key.Matches(msg, m.keys.Tab5):
			return m.switchTab(TabConfig)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := m.height - 4 // tabs and status bar
		m.logsView.SetSize(m.width, contentHeight)
		m.timerView.SetSize(m.width, contentHeight)
		m.statsView.SetSize(m.width, contentHeight)
		m.sprintsView.SetSize(m.width, contentHeight)
		m.configView.SetSize(m.width, contentHeight)
		return m, nil

	case ui.LogsChangedMsg:
		// every view showing log data reloads
		var cmds [4]tea.Cmd
		m.logsView, cmds[0] = m.logsView.Update(msg)
		m.timerView, cmds[1] = m.timerView.Update(msg)
		m.statsView, cmds[2] = m.statsView.Update(msg)
		m.sprintsView, cmds[3] = m.sprintsView.Update(msg)
		return m, tea.Batch(cmds[:]...)

	case ui.ThemeChangeRequestMsg:
		themeMsg := m.themeProvider.Apply(msg.ThemeName)
		m.styles = themeMsg.Styles
		m.logsView, _ = m.logsView.Update(themeMsg)
		m.timerView, _ = m.timerView.Update(themeMsg)
		m.statsView, _ = m.statsView.Update(themeMsg)
		m.sprintsView, _ = m.sprintsView.Update(themeMsg)
		m.configView, _ = m.configView.Update(themeMsg)

		return m, m.saveThemeConfig(themeMsg.ThemeName)

	case themeSavedMsg:
		m.err = msg.err
		return m, nil
	}

	switch m.activeTab {
	case TabLogs:
		m.logsView, cmd = m.logsView.Update(msg)
	case TabTimer:
		m.timerView, cmd = m.timerView.Update(msg)
	case TabStats:
		m.statsView, cmd = m.statsView.Update(msg)
	case TabSprints:
		m.sprintsView, cmd = m.sprintsView.Update(msg)
	case TabConfig:
		m.configView, cmd = m.configView.Update(msg)
	}

	return m, cmd
}

// switchTab activates a tab and reloads its data
func (m Model) switchTab(tab Tab) (Model, tea.Cmd) {
	m.activeTab = tab
	return m, m.initCurrentView()
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.activeTab {
	case TabLogs:
		b.WriteString(m.logsView.View())
	case TabTimer:
		b.WriteString(m.timerView.View())
	case TabStats:
		b.WriteString(m.statsView.View())
	case TabSprints:
		b.WriteString(m.sprintsView.View())
	case TabConfig:
		b.WriteString(m.configView.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	return m.styles.App.Render(b.String())
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	var parts []string

	switch {
	case m.err != nil:
		parts = append(parts, m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
	case m.isInputMode():
		parts = append(parts, m.renderKeyHelp("Tab", "switch field"))
		parts = append(parts, m.renderKeyHelp("Enter", "save"))
		parts = append(parts, m.renderKeyHelp("Esc", "cancel"))
	default:
		switch m.activeTab {
		case TabLogs:
			parts = append(parts, m.renderKeyHelp("space/1-9", "toggle status"))
			parts = append(parts, m.renderKeyHelp("n", "new"))
			parts = append(parts, m.renderKeyHelp("a", "subtask"))
			parts = append(parts, m.renderKeyHelp("d", "delete"))
			parts = append(parts, m.renderKeyHelp("/", "search"))
			parts = append(parts, m.renderKeyHelp("i", "incomplete"))
		case TabTimer:
			parts = append(parts, m.renderKeyHelp("s", "start"))
			parts = append(parts, m.renderKeyHelp("x", "stop"))
		case TabStats, TabSprints:
			parts = append(parts, m.renderKeyHelp("j/k", "scroll"))
			parts = append(parts, m.renderKeyHelp("r", "refresh"))
		case TabConfig:
			parts = append(parts, m.renderKeyHelp("t", "themes"))
		}

		parts = append(parts, m.renderKeyHelp("F1-F5", "views"))
		parts = append(parts, m.renderKeyHelp("?", "help"))
		parts = append(parts, m.renderKeyHelp("q", "quit"))
	}

	content := strings.Join(parts, "  ")
	if padding := m.width - lipgloss.Width(content); padding > 0 {
		content += strings.Repeat(" ", padding)
	}
	return m.styles.StatusBar.Render(content)
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

// isInputMode checks if the current view is capturing keyboard input
func (m Model) isInputMode() bool {
	switch m.activeTab {
	case TabLogs:
		return m.logsView.IsInputMode()
	case TabTimer:
		return m.timerView.IsInputMode()
	case TabConfig:
		return m.configView.SelectingTheme()
	}
	return false
}

// initCurrentView reloads the data of the active view
func (m Model) initCurrentView() tea.Cmd {
	switch m.activeTab {
	case TabLogs:
		return m.logsView.Init()
	case TabTimer:
		return m.timerView.Init()
	case TabStats:
		return m.statsView.Init()
	case TabSprints:
		return m.sprintsView.Init()
	case TabConfig:
		return m.configView.Init()
	}
	return nil
}

// saveThemeConfig persists the theme to the config file
func (m Model) saveThemeConfig(themeName string) tea.Cmd {
	return func() tea.Msg {
		return themeSavedMsg{err: m.services.Config.SetTheme(themeName)}
	}
}

// renderHelpOverlay renders the keyboard shortcuts of the active view
func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.ViewTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n\n")

	help.WriteString(m.styles.StatLabel.Render("Global:"))
	help.WriteString("\n")
	help.WriteString("  Tab/F1-F5  Switch views\n")
	help.WriteString("  ?          Toggle help\n")
	help.WriteString("  q          Quit\n")
	help.WriteString("\n")

	switch m.activeTab {
	case TabLogs:
		help.WriteString(m.styles.StatLabel.Render("Logs:"))
		help.WriteString("\n")
		help.WriteString("  j/k        Navigate up/down\n")
		help.WriteString("  space      Toggle first status type\n")
		help.WriteString("  1-9        Toggle nth status type\n")
		help.WriteString("  n          New log\n")
		help.WriteString("  a          Add subtask\n")
		help.WriteString("  d          Delete log\n")
		help.WriteString("  /          Search, Esc clears\n")
		help.WriteString("  i          Incomplete only\n")
		help.WriteString("  r          Refresh\n")
	case TabTimer:
		help.WriteString(m.styles.StatLabel.Render("Timer:"))
		help.WriteString("\n")
		help.WriteString("  s          Start ongoing log\n")
		help.WriteString("  x          Stop and record time\n")
		help.WriteString("  r          Refresh\n")
	case TabStats:
		help.WriteString(m.styles.StatLabel.Render("Stats:"))
		help.WriteString("\n")
		help.WriteString("  j/k        Scroll\n")
		help.WriteString("  r          Refresh\n")
	case TabSprints:
		help.WriteString(m.styles.StatLabel.Render("Sprints:"))
		help.WriteString("\n")
		help.WriteString("  j/k        Select sprint\n")
		help.WriteString("  r          Refresh\n")
	case TabConfig:
		help.WriteString(m.styles.StatLabel.Render("Config:"))
		help.WriteString("\n")
		help.WriteString("  t/Enter    Open theme selector\n")
		help.WriteString("  j/k        Navigate themes\n")
		help.WriteString("  Esc        Cancel\n")
	}

	help.WriteString("\n")
	help.WriteString(m.styles.StatLabel.Render("Press ? to close"))

	return m.styles.App.Render(m.styles.Dialog.Render(help.String()))
}

// Run starts the dashboard
func Run(services *service.Services) error {
	p := tea.NewProgram(New(services), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
