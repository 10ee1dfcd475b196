package service

import (
	"github.com/xolan/blogger/internal/config"
	"github.com/xolan/blogger/internal/stats"
)

// StatsService provides statistics operations
type StatsService struct {
	file   logFile
	config config.Config
	now    Clock
}

// NewStatsService creates a new StatsService
func NewStatsService(logsPath string, cfg config.Config, now Clock) *StatsService {
	return &StatsService{
		file:   logFile{path: logsPath},
		config: cfg,
		now:    now,
	}
}

// Report builds the statistics over the most recent logged workdays
func (s *StatsService) Report() (*StatsResult, error) {
	result, err := s.file.load()
	if err != nil {
		return nil, err
	}

	return &StatsResult{
		Report:   stats.BuildReport(result.Records, s.config.StatusTypes, s.now()),
		Warnings: result.Warnings,
	}, nil
}
