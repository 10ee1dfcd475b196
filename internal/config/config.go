package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/natefinch/atomic"

	"github.com/xolan/blogger/internal/entry"
	"github.com/xolan/blogger/internal/osutil"
	"github.com/xolan/blogger/internal/sprint"
	"github.com/xolan/blogger/internal/timeutil"
)

const (
	// AppName is the application name used for config directory
	AppName = "blogger"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
	// DefaultEpoch is the start of sprint 0 when none is configured
	DefaultEpoch = "30.04.2025"
	// DefaultDurationWeeks is the sprint length when none is configured
	DefaultDurationWeeks = 2
	// DefaultTheme is the dashboard theme when none is configured
	DefaultTheme = "dracula"
)

// ErrUnknownStatusType is returned when a status type name is not configured
var ErrUnknownStatusType = errors.New("unknown status type")

// SprintSettings configures the sprint calendar
type SprintSettings struct {
	// Epoch is the first day of sprint 0 (DD.MM.YYYY)
	Epoch string `toml:"epoch"`
	// DurationWeeks is the sprint length in weeks
	DurationWeeks int `toml:"duration_weeks"`
}

// Config represents the application configuration
type Config struct {
	// DataDir holds logs.json, scripts.json and links.json. Empty means the config directory.
	DataDir string `toml:"data_dir"`
	// Theme is the bubbletint theme id used by the dashboard
	Theme string `toml:"theme"`
	// Banner is an optional text file printed when the interactive shell starts
	Banner string `toml:"banner"`
	// Sprint configures the sprint calendar
	Sprint SprintSettings `toml:"sprint"`
	// StatusTypes are the completion flags tracked on each log entry
	StatusTypes []entry.StatusType `toml:"status_types"`
}

// DefaultConfig returns a Config with the two built-in status types and a
// two-week sprint starting on DefaultEpoch.
func DefaultConfig() Config {
	return Config{
		Theme: DefaultTheme,
		Sprint: SprintSettings{
			Epoch:         DefaultEpoch,
			DurationWeeks: DefaultDurationWeeks,
		},
		StatusTypes: entry.DefaultStatusTypes(),
	}
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	appDir, err := osutil.AppDir(AppName)
	if err != nil {
		return "", err
	}
	return filepath.Join(appDir, ConfigFile), nil
}

// Load reads and validates the config file at path.
// Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	cfg.StatusTypes = nil
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	if !md.IsDefined("status_types") {
		cfg.StatusTypes = entry.DefaultStatusTypes()
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown config key '%s'", undecoded[0])
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault loads the config file, or returns DefaultConfig if it does not exist.
// Any other failure (unreadable, invalid) is returned as an error.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, err
	}
	return Load(path)
}

// Normalize trims and lowercases names so comparisons are stable
func (c *Config) Normalize() {
	c.DataDir = strings.TrimSpace(c.DataDir)
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	c.Sprint.Epoch = strings.TrimSpace(c.Sprint.Epoch)
	for i := range c.StatusTypes {
		c.StatusTypes[i].Name = strings.ToLower(strings.TrimSpace(c.StatusTypes[i].Name))
		c.StatusTypes[i].Prefix = strings.TrimSpace(c.StatusTypes[i].Prefix)
	}
}

// Validate checks the sprint settings and the status type list
func (c *Config) Validate() error {
	if _, err := c.SprintConfig(); err != nil {
		return err
	}

	seen := make(map[string]bool, len(c.StatusTypes))
	for i, st := range c.StatusTypes {
		if st.Name == "" {
			return fmt.Errorf("invalid status_types[%d]: name cannot be empty", i)
		}
		if strings.ContainsAny(st.Name, " \t") {
			return fmt.Errorf("invalid status type '%s': name cannot contain spaces", st.Name)
		}
		if seen[st.Name] {
			return fmt.Errorf("invalid status type '%s': defined more than once", st.Name)
		}
		seen[st.Name] = true
	}
	return nil
}

// SprintConfig parses the sprint settings
func (c Config) SprintConfig() (sprint.Config, error) {
	epoch, err := timeutil.ParseDate(c.Sprint.Epoch)
	if err != nil {
		return sprint.Config{}, fmt.Errorf("invalid sprint epoch: %w", err)
	}
	sc := sprint.Config{Epoch: epoch, DurationWeeks: c.Sprint.DurationWeeks}
	if err := sc.Validate(); err != nil {
		return sprint.Config{}, fmt.Errorf("invalid sprint duration_weeks: %w", err)
	}
	return sc, nil
}

// StatusType looks up a configured status type by name (case-insensitive)
func (c Config) StatusType(name string) (entry.StatusType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, st := range c.StatusTypes {
		if st.Name == name {
			return st, nil
		}
	}
	return entry.StatusType{}, fmt.Errorf("%w: '%s' (configured: %s)", ErrUnknownStatusType, name, strings.Join(c.StatusTypeNames(), ", "))
}

// StatusTypeNames returns the configured status type names in order
func (c Config) StatusTypeNames() []string {
	names := make([]string, 0, len(c.StatusTypes))
	for _, st := range c.StatusTypes {
		names = append(names, st.Name)
	}
	return names
}

// ResolveDataDir returns the absolute data directory, creating it if needed.
// An empty DataDir resolves to the config directory.
func (c Config) ResolveDataDir() (string, error) {
	if c.DataDir == "" {
		return osutil.AppDir(AppName)
	}
	dir, err := osutil.ExpandHome(c.DataDir)
	if err != nil {
		return "", err
	}
	if err := osutil.Provider.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// Save writes cfg to path as TOML, replacing the file atomically
func Save(path string, cfg Config) error {
	var buf bytes.Buffer
	buf.WriteString("# blogger configuration file\n\n")
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GenerateSampleConfig returns a commented sample configuration file
func GenerateSampleConfig() string {
	return fmt.Sprintf(`# blogger configuration file
#
# Every key is optional; the values shown are the defaults.

# Directory holding logs.json, scripts.json and links.json.
# Empty means the directory this file lives in. "~" is expanded.
# data_dir = "~/worklogs"

# Dashboard theme (see "blogger tui" and press t to cycle), e.g.
# "dracula", "nord", "gruvbox_dark", "tokyo_night"
# theme = %q

# Text file printed when the interactive shell starts
# banner = "~/.config/blogger/banner.txt"

[sprint]
# First day of sprint 0 (DD.MM.YYYY)
# epoch = %q
# Sprint length in weeks (at least 1)
# duration_weeks = %d

# Status types are completion flags tracked on every log entry.
# prefix selects the tickets listed by "blogger tickets <name>".
# Declaring any [[status_types]] replaces the built-in list.
#
# [[status_types]]
# name = "q"
# prefix = "QI-"
# default = false
#
# [[status_types]]
# name = "jira"
# prefix = ""
# default = false
`, DefaultTheme, DefaultEpoch, DefaultDurationWeeks)
}
