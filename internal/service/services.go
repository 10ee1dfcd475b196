package service

import (
	"time"

	"github.com/xolan/blogger/internal/config"
	"github.com/xolan/blogger/internal/entry"
	"github.com/xolan/blogger/internal/record"
	"github.com/xolan/blogger/internal/storage"
)

// Services holds all service instances used by the application
type Services struct {
	Log     *LogService
	Timer   *TimerService
	Sprint  *SprintService
	Stats   *StatsService
	Records *RecordService
	Config  *ConfigService

	paths storage.Paths
	now   Clock
}

// NewServices creates a new Services instance from the user's config file
func NewServices() (*Services, error) {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	dataDir, err := cfg.ResolveDataDir()
	if err != nil {
		return nil, err
	}

	return NewServicesWithPaths(storage.PathsFor(dataDir), configPath, cfg, time.Now), nil
}

// NewServicesWithPaths creates a new Services instance with custom paths and clock (useful for testing)
func NewServicesWithPaths(paths storage.Paths, configPath string, cfg config.Config, now Clock) *Services {
	if now == nil {
		now = time.Now
	}
	return &Services{
		Log:     NewLogService(paths.Logs, cfg, now),
		Timer:   NewTimerService(paths.Logs, cfg, now),
		Sprint:  NewSprintService(paths.Logs, cfg, now),
		Stats:   NewStatsService(paths.Logs, cfg, now),
		Records: NewRecordService(paths.Scripts, paths.Links, now),
		Config:  NewConfigService(configPath, cfg),
		paths:   paths,
		now:     now,
	}
}

// Now returns the current time of the services' clock
func (s *Services) Now() time.Time {
	return s.now()
}

// Paths returns the storage files in use
func (s *Services) Paths() storage.Paths {
	return s.paths
}

// Health checks every storage file
func (s *Services) Health() ([]storage.StorageHealth, error) {
	logs, err := storage.ValidateStorage[entry.LogEntry](s.paths.Logs)
	if err != nil {
		return nil, err
	}
	scripts, err := storage.ValidateStorage[record.MigrationScript](s.paths.Scripts)
	if err != nil {
		return nil, err
	}
	links, err := storage.ValidateStorage[record.Link](s.paths.Links)
	if err != nil {
		return nil, err
	}
	return []storage.StorageHealth{logs, scripts, links}, nil
}
