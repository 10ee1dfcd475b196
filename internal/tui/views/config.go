package views

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/blogger/internal/cli"
	"github.com/xolan/blogger/internal/config"
	"github.com/xolan/blogger/internal/service"
	"github.com/xolan/blogger/internal/sprint"
	"github.com/xolan/blogger/internal/storage"
	"github.com/xolan/blogger/internal/tui/ui"
)

// themeRows is the height of the theme picker list
const themeRows = 10

// ConfigModel shows the effective settings, the health of the data files
// and the theme picker.
type ConfigModel struct {
	services      *service.Services
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap

	width  int
	height int

	settings settingsSnapshot
	loaded   bool
	err      error

	picking     bool
	themes      []string
	themeCursor int
}

// settingsSnapshot is everything the view shows, read in one command
type settingsSnapshot struct {
	config  config.Config
	path    string
	exists  bool
	files   []storage.StorageHealth
	current *sprint.Bucket
}

type settingsLoadedMsg struct {
	settings settingsSnapshot
	err      error
}

// NewConfigModel creates a new config view model
func NewConfigModel(services *service.Services, themeProvider *ui.ThemeProvider, styles ui.Styles, keys ui.KeyMap) ConfigModel {
	m := ConfigModel{
		services:      services,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		themes:        themeProvider.AvailableThemes(),
	}
	m.themeCursor = m.themeIndex(themeProvider.CurrentName())
	return m
}

// Init implements tea.Model
func (m ConfigModel) Init() tea.Cmd {
	return m.loadSettings()
}

// Update implements tea.Model
func (m ConfigModel) Update(msg tea.Msg) (ConfigModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.picking {
			return m.updatePicker(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Select), key.Matches(msg, m.keys.Theme):
			m.picking = true
			m.themeCursor = m.themeIndex(m.themeName())
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadSettings()
		}

	case settingsLoadedMsg:
		m.loaded = true
		m.err = msg.err
		if msg.err == nil {
			m.settings = msg.settings
		}

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		m.settings.config.Theme = msg.ThemeName
	}

	return m, nil
}

func (m ConfigModel) updatePicker(msg tea.KeyMsg) (ConfigModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.themeCursor = clampCursor(m.themeCursor-1, len(m.themes))
	case key.Matches(msg, m.keys.Down):
		m.themeCursor = clampCursor(m.themeCursor+1, len(m.themes))
	case key.Matches(msg, m.keys.Select):
		m.picking = false
		if len(m.themes) == 0 {
			return m, nil
		}
		name := m.themes[m.themeCursor]
		return m, func() tea.Msg { return ui.ThemeChangeRequestMsg{ThemeName: name} }
	case key.Matches(msg, m.keys.Back):
		m.picking = false
	}
	return m, nil
}

// themeName is the theme in effect, falling back to the built-in default
func (m ConfigModel) themeName() string {
	if m.settings.config.Theme != "" {
		return m.settings.config.Theme
	}
	return m.themeProvider.CurrentName()
}

func (m ConfigModel) themeIndex(name string) int {
	for i, t := range m.themes {
		if t == name {
			return i
		}
	}
	return 0
}

// View implements tea.Model
func (m ConfigModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("Configuration"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render("Failed to read settings: " + m.err.Error()))
		return b.String()
	}
	if !m.loaded {
		return b.String() + "Loading..."
	}

	s := m.settings
	b.WriteString(renderStatLine(m.styles, "Config file:", s.path))
	if s.exists {
		b.WriteString(renderStatLine(m.styles, "Status:", "file exists"))
	} else {
		b.WriteString(m.styles.StatLabel.Render(fmt.Sprintf("%-16s", "Status:")) + " " +
			m.styles.Warning.Render("Using defaults (no config file)") + "\n")
	}

	b.WriteString(m.section("Storage"))
	for _, f := range s.files {
		b.WriteString(renderStatLine(m.styles, filepath.Base(f.Path)+":", describeFile(f)))
	}

	b.WriteString(m.section("Sprint"))
	b.WriteString(renderStatLine(m.styles, "sprint.epoch:", s.config.Sprint.Epoch))
	b.WriteString(renderStatLine(m.styles, "duration_weeks:", fmt.Sprint(s.config.Sprint.DurationWeeks)))
	if s.current != nil {
		b.WriteString(renderStatLine(m.styles, "current:",
			fmt.Sprintf("Sprint %d  %s", s.current.Index, cli.FormatDateRange(s.current.Start, s.current.End))))
	}

	b.WriteString(m.section("Status types"))
	for i, st := range s.config.StatusTypes {
		value := st.Name
		if st.Prefix != "" {
			value += fmt.Sprintf(" (prefix %s)", st.Prefix)
		}
		if st.Default {
			value += "  default complete"
		}
		b.WriteString(renderStatLine(m.styles, fmt.Sprintf("key %d:", i+1), value))
	}

	b.WriteString(m.section("Dashboard"))
	if m.picking {
		b.WriteString(m.renderPicker())
	} else {
		b.WriteString(renderStatLine(m.styles, "theme:", m.themeName()))
		b.WriteString("\n")
		b.WriteString(m.styles.StatusHelp.Render("Press Enter or 't' to change theme"))
	}
	return b.String()
}

func (m ConfigModel) section(title string) string {
	return "\n" + m.styles.DayHeader.Render(title) + "\n"
}

// describeFile summarises a data file for the storage section
func describeFile(f storage.StorageHealth) string {
	if !f.Exists {
		return "not created yet"
	}
	desc := fmt.Sprintf("%d %s", f.ValidRecords, cli.Pluralize("record", f.ValidRecords))
	if f.CorruptedRecords > 0 {
		desc += fmt.Sprintf(", %d corrupted", f.CorruptedRecords)
	}
	if len(f.Backups) > 0 {
		desc += fmt.Sprintf(", %d %s", len(f.Backups), cli.Pluralize("backup", len(f.Backups)))
	}
	return desc
}

func (m ConfigModel) renderPicker() string {
	current := m.themeName()
	lines := make([]string, len(m.themes))
	for i, name := range m.themes {
		label := name
		if name == current {
			label += " (current)"
		}
		if i == m.themeCursor {
			lines[i] = m.styles.EntrySelected.Render("▸ " + label)
		} else {
			lines[i] = "  " + m.styles.StatValue.Render(label)
		}
	}

	var b strings.Builder
	b.WriteString(m.styles.StatLabel.Render("Select a theme"))
	b.WriteString(fmt.Sprintf(" (%d/%d)\n", m.themeCursor+1, len(m.themes)))
	for _, line := range visibleWindow(lines, m.themeCursor, themeRows) {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.StatusHelp.Render("↑/↓ navigate  Enter select  Esc cancel"))
	return b.String()
}

// SetSize sets the view dimensions
func (m *ConfigModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SelectingTheme reports whether the theme picker is open
func (m ConfigModel) SelectingTheme() bool {
	return m.picking
}

func (m ConfigModel) loadSettings() tea.Cmd {
	return func() tea.Msg {
		s := settingsSnapshot{
			config: m.services.Config.Get(),
			path:   m.services.Config.GetPath(),
			exists: m.services.Config.Exists(),
		}
		files, err := m.services.Health()
		if err != nil {
			return settingsLoadedMsg{err: err}
		}
		s.files = files
		if current, err := m.services.Sprint.Current(); err == nil {
			s.current = &current.Bucket
		}
		return settingsLoadedMsg{settings: s}
	}
}
