package service

import (
	"github.com/xolan/blogger/internal/config"
	"github.com/xolan/blogger/internal/entry"
	"github.com/xolan/blogger/internal/sprint"
	"github.com/xolan/blogger/internal/stats"
)

// SprintService provides sprint views over the logs
type SprintService struct {
	file   logFile
	config config.Config
	now    Clock
}

// NewSprintService creates a new SprintService
func NewSprintService(logsPath string, cfg config.Config, now Clock) *SprintService {
	return &SprintService{
		file:   logFile{path: logsPath},
		config: cfg,
		now:    now,
	}
}

// Current returns the sprint containing today
func (s *SprintService) Current() (*SprintResult, error) {
	cfg, logs, err := s.load()
	if err != nil {
		return nil, err
	}

	bucket := sprint.Current(cfg, logs, s.now())
	return &SprintResult{
		Config:     cfg,
		Bucket:     bucket,
		Statistics: stats.CalculateStatistics(bucket.Entries, bucket.Start, bucket.End),
		IsCurrent:  true,
	}, nil
}

// History returns every sprint from the first to the last log
func (s *SprintService) History() (*HistoryResult, error) {
	cfg, logs, err := s.load()
	if err != nil {
		return nil, err
	}

	now := s.now()
	return &HistoryResult{
		Config:  cfg,
		Current: sprint.CurrentIndex(cfg, now),
		Buckets: sprint.History(cfg, logs, now),
	}, nil
}

func (s *SprintService) load() (sprint.Config, []entry.LogEntry, error) {
	cfg, err := s.config.SprintConfig()
	if err != nil {
		return sprint.Config{}, nil, err
	}
	result, err := s.file.load()
	if err != nil {
		return sprint.Config{}, nil, err
	}
	return cfg, result.Records, nil
}
