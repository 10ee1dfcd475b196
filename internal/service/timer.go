package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xolan/blogger/internal/config"
	"github.com/xolan/blogger/internal/entry"
	"github.com/xolan/blogger/internal/timer"
)

// Timer-specific errors
var (
	ErrTimerAlreadyRunning = errors.New("an entry is already ongoing")
	ErrNoOngoingEntry      = errors.New("no ongoing entry")
)

// TimerService starts and stops ongoing log entries
type TimerService struct {
	file   logFile
	config config.Config
	now    Clock
}

// NewTimerService creates a new TimerService
func NewTimerService(logsPath string, cfg config.Config, now Clock) *TimerService {
	return &TimerService{
		file:   logFile{path: logsPath},
		config: cfg,
		now:    now,
	}
}

// Start creates an ongoing entry for ticket.
// If another entry is ongoing, it is returned together with ErrTimerAlreadyRunning.
func (s *TimerService) Start(ticket string) (*entry.LogEntry, *timer.TimerState, error) {
	ticket = strings.TrimSpace(ticket)
	if ticket == "" {
		return nil, nil, ErrEmptyTicket
	}

	result, err := s.file.load()
	if err != nil {
		return nil, nil, err
	}

	e, err := timer.Start(result.Records, s.now(), ticket, s.config.StatusTypes)
	if errors.Is(err, timer.ErrAlreadyRunning) {
		return nil, timer.FindOngoing(result.Records), ErrTimerAlreadyRunning
	}
	if err != nil {
		return nil, nil, err
	}

	if err := s.file.save(append(result.Records, e), len(result.Warnings) > 0); err != nil {
		return nil, nil, err
	}
	return &e, nil, nil
}

// Stop replaces the ongoing sentinel of the latest ongoing entry with the elapsed time
func (s *TimerService) Stop() (*entry.LogEntry, int, error) {
	result, err := s.file.load()
	if err != nil {
		return nil, 0, err
	}

	state := timer.FindOngoing(result.Records)
	if state == nil {
		return nil, 0, ErrNoOngoingEntry
	}

	e := result.Records[state.Index]
	minutes := timer.Stop(&e, s.now())
	result.Records[state.Index] = e

	if err := s.file.save(result.Records, len(result.Warnings) > 0); err != nil {
		return nil, 0, fmt.Errorf("failed to stop entry: %w", err)
	}
	return &e, minutes, nil
}

// Status returns the current ongoing entry, if any
func (s *TimerService) Status() (*TimerStatus, error) {
	result, err := s.file.load()
	if err != nil {
		return nil, err
	}

	state := timer.FindOngoing(result.Records)
	status := &TimerStatus{
		Running: state != nil,
		State:   state,
	}
	if state != nil {
		status.ElapsedTime = s.now().Sub(state.StartedAt)
		if status.ElapsedTime < 0 {
			status.ElapsedTime = 0
		}
	}
	return status, nil
}

// IsRunning checks if an entry is currently ongoing
func (s *TimerService) IsRunning() (bool, error) {
	status, err := s.Status()
	if err != nil {
		return false, err
	}
	return status.Running, nil
}
