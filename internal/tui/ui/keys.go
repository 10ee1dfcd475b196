package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap contains all key bindings for the dashboard
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Tab navigation. Digits are taken by status toggles, so tabs jump on function keys.
	NextTab key.Binding
	PrevTab key.Binding
	Tab1    key.Binding
	Tab2    key.Binding
	Tab3    key.Binding
	Tab4    key.Binding
	Tab5    key.Binding

	// Actions
	Select  key.Binding
	Back    key.Binding
	Quit    key.Binding
	Help    key.Binding
	Refresh key.Binding

	// Log-specific
	New          key.Binding
	Delete       key.Binding
	Search       key.Binding
	ToggleFirst  key.Binding
	ToggleNth    key.Binding
	AddSubtask   key.Binding
	IncompleteOn key.Binding

	// Timer-specific
	Start key.Binding
	Stop  key.Binding

	// Config-specific
	Theme key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),

		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev view"),
		),
		Tab1: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "logs"),
		),
		Tab2: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("F2", "timer"),
		),
		Tab3: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("F3", "stats"),
		),
		Tab4: key.NewBinding(
			key.WithKeys("f4"),
			key.WithHelp("F4", "sprints"),
		),
		Tab5: key.NewBinding(
			key.WithKeys("f5"),
			key.WithHelp("F5", "config"),
		),

		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),

		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new log"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		ToggleFirst: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle first status"),
		),
		ToggleNth: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "toggle nth status"),
		),
		AddSubtask: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add subtask"),
		),
		IncompleteOn: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "incomplete only"),
		),

		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start"),
		),
		Stop: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "stop"),
		),

		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "themes"),
		),
	}
}

// StatusIndex returns the zero-based status type index selected by a digit key,
// or -1 when the key is not a digit from 1 to 9.
func StatusIndex(keyName string) int {
	if len(keyName) != 1 || keyName[0] < '1' || keyName[0] > '9' {
		return -1
	}
	return int(keyName[0] - '1')
}
