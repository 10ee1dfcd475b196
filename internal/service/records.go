package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xolan/blogger/internal/record"
	"github.com/xolan/blogger/internal/storage"
)

// Record errors
var (
	ErrRecordNotFound = errors.New("record not found")
	ErrEmptyScript    = errors.New("script cannot be empty")
	ErrEmptyURL       = errors.New("url cannot be empty")
)

// RecordService manages migration scripts and links
type RecordService struct {
	scriptsPath string
	linksPath   string
	now         Clock
}

// NewRecordService creates a new RecordService
func NewRecordService(scriptsPath, linksPath string, now Clock) *RecordService {
	return &RecordService{
		scriptsPath: scriptsPath,
		linksPath:   linksPath,
		now:         now,
	}
}

// AddScript stores a new migration script record
func (s *RecordService) AddScript(ticket, script string) (*record.MigrationScript, error) {
	script = strings.TrimSpace(script)
	if script == "" {
		return nil, ErrEmptyScript
	}

	scripts, err := s.Scripts()
	if err != nil {
		return nil, err
	}

	rec := record.NewScript(s.now(), strings.TrimSpace(ticket), script)
	if err := storage.WriteScripts(s.scriptsPath, append(scripts, rec)); err != nil {
		return nil, fmt.Errorf("failed to save scripts: %w", err)
	}
	return &rec, nil
}

// Scripts returns every migration script record
func (s *RecordService) Scripts() ([]record.MigrationScript, error) {
	scripts, err := storage.ReadScripts(s.scriptsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read scripts: %w", err)
	}
	if ensureIDs(scripts) {
		if err := storage.WriteScripts(s.scriptsPath, scripts); err != nil {
			return nil, fmt.Errorf("failed to save scripts: %w", err)
		}
	}
	return scripts, nil
}

// ToggleScript flips a flag on the script and returns the new state
func (s *RecordService) ToggleScript(id, flag string) (*record.MigrationScript, bool, error) {
	scripts, err := s.Scripts()
	if err != nil {
		return nil, false, err
	}

	idx := record.FindByID(scripts, id)
	if idx < 0 {
		return nil, false, fmt.Errorf("%w: script '%s'", ErrRecordNotFound, id)
	}

	state, err := scripts[idx].ToggleFlag(flag)
	if err != nil {
		return nil, false, err
	}
	if err := storage.WriteScripts(s.scriptsPath, scripts); err != nil {
		return nil, false, fmt.Errorf("failed to save scripts: %w", err)
	}
	rec := scripts[idx]
	return &rec, state, nil
}

// DeleteScript removes a script record and returns it
func (s *RecordService) DeleteScript(id string) (*record.MigrationScript, error) {
	scripts, err := s.Scripts()
	if err != nil {
		return nil, err
	}

	idx := record.FindByID(scripts, id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: script '%s'", ErrRecordNotFound, id)
	}
	deleted := scripts[idx]

	if err := storage.CreateBackup(s.scriptsPath); err != nil {
		return nil, fmt.Errorf("failed to create backup: %w", err)
	}
	if err := storage.WriteScripts(s.scriptsPath, append(scripts[:idx:idx], scripts[idx+1:]...)); err != nil {
		return nil, fmt.Errorf("failed to save scripts: %w", err)
	}
	return &deleted, nil
}

// AddLink stores a new link record
func (s *RecordService) AddLink(url, comment string) (*record.Link, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, ErrEmptyURL
	}

	links, err := s.Links()
	if err != nil {
		return nil, err
	}

	rec := record.NewLink(s.now(), url, strings.TrimSpace(comment))
	if err := storage.WriteLinks(s.linksPath, append(links, rec)); err != nil {
		return nil, fmt.Errorf("failed to save links: %w", err)
	}
	return &rec, nil
}

// Links returns every link record
func (s *RecordService) Links() ([]record.Link, error) {
	links, err := storage.ReadLinks(s.linksPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read links: %w", err)
	}
	if ensureLinkIDs(links) {
		if err := storage.WriteLinks(s.linksPath, links); err != nil {
			return nil, fmt.Errorf("failed to save links: %w", err)
		}
	}
	return links, nil
}

// DeleteLink removes a link record and returns it
func (s *RecordService) DeleteLink(id string) (*record.Link, error) {
	links, err := s.Links()
	if err != nil {
		return nil, err
	}

	idx := record.FindByID(links, id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: link '%s'", ErrRecordNotFound, id)
	}
	deleted := links[idx]

	if err := storage.CreateBackup(s.linksPath); err != nil {
		return nil, fmt.Errorf("failed to create backup: %w", err)
	}
	if err := storage.WriteLinks(s.linksPath, append(links[:idx:idx], links[idx+1:]...)); err != nil {
		return nil, fmt.Errorf("failed to save links: %w", err)
	}
	return &deleted, nil
}

func ensureIDs(scripts []record.MigrationScript) bool {
	assigned := false
	for i := range scripts {
		if scripts[i].EnsureID() {
			assigned = true
		}
	}
	return assigned
}

func ensureLinkIDs(links []record.Link) bool {
	assigned := false
	for i := range links {
		if links[i].EnsureID() {
			assigned = true
		}
	}
	return assigned
}
