package service

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/xolan/blogger/internal/config"
	"github.com/xolan/blogger/internal/entry"
)

// ErrConfigExists is returned by Init when a config file is already present
var ErrConfigExists = errors.New("config file already exists")

// ConfigService provides operations for managing configuration
type ConfigService struct {
	configPath string
	config     config.Config
}

// NewConfigService creates a new ConfigService
func NewConfigService(configPath string, cfg config.Config) *ConfigService {
	return &ConfigService{
		configPath: configPath,
		config:     cfg,
	}
}

// Get returns the current configuration
func (s *ConfigService) Get() config.Config {
	return s.config
}

// GetPath returns the path to the config file
func (s *ConfigService) GetPath() string {
	return s.configPath
}

// Exists checks if the config file exists
func (s *ConfigService) Exists() bool {
	_, err := os.Stat(s.configPath)
	return err == nil
}

// Update validates cfg and writes it to the config file
func (s *ConfigService) Update(cfg config.Config) error {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := config.Save(s.configPath, cfg); err != nil {
		return err
	}

	s.config = cfg
	return nil
}

// SetTheme stores a new dashboard theme
func (s *ConfigService) SetTheme(theme string) error {
	cfg := s.config
	cfg.Theme = theme
	return s.Update(cfg)
}

// AddStatusType registers a new status type. Existing entries are not touched.
func (s *ConfigService) AddStatusType(st entry.StatusType) error {
	cfg := s.config
	cfg.StatusTypes = append(append([]entry.StatusType(nil), cfg.StatusTypes...), st)
	return s.Update(cfg)
}

// RemoveStatusType unregisters a status type. Existing entries keep their values.
func (s *ConfigService) RemoveStatusType(name string) error {
	if _, err := s.config.StatusType(name); err != nil {
		return err
	}

	cfg := s.config
	name = strings.ToLower(strings.TrimSpace(name))
	kept := make([]entry.StatusType, 0, len(cfg.StatusTypes))
	for _, st := range cfg.StatusTypes {
		if st.Name != name {
			kept = append(kept, st)
		}
	}
	cfg.StatusTypes = kept
	return s.Update(cfg)
}

// Init creates a sample config file
func (s *ConfigService) Init() error {
	if s.Exists() {
		return fmt.Errorf("%w at %s", ErrConfigExists, s.configPath)
	}

	if err := atomic.WriteFile(s.configPath, strings.NewReader(config.GenerateSampleConfig())); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
