package record

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xolan/blogger/internal/entry"
)

// ErrUnknownFlag is returned when toggling a flag a script does not have
var ErrUnknownFlag = errors.New("unknown script flag")

// Script flag names
const (
	FlagReviewed    = "reviewed"
	FlagAppliedTest = "applied_test"
	FlagAppliedProd = "applied_prod"
)

// ScriptFlags lists the flags of a migration script in display order
var ScriptFlags = []string{FlagReviewed, FlagAppliedTest, FlagAppliedProd}

// MigrationScript tracks a database script through review and rollout
type MigrationScript struct {
	ID          string          `json:"id"`
	Timestamp   entry.Timestamp `json:"timestamp"`
	Ticket      string          `json:"ticket"`
	Script      string          `json:"script"`
	Reviewed    bool            `json:"reviewed"`
	AppliedTest bool            `json:"applied_test"`
	AppliedProd bool            `json:"applied_prod"`
}

// NewScript creates a migration script record stamped at now
func NewScript(now time.Time, ticket, script string) MigrationScript {
	return MigrationScript{
		ID:        uuid.New().String(),
		Timestamp: entry.NewTimestamp(now),
		Ticket:    ticket,
		Script:    script,
	}
}

// Flag returns the state of a named flag
func (s MigrationScript) Flag(name string) (bool, error) {
	p, err := s.flagPtr(name)
	if err != nil {
		return false, err
	}
	return *p, nil
}

// ToggleFlag flips a named flag and returns the new state
func (s *MigrationScript) ToggleFlag(name string) (bool, error) {
	p, err := s.flagPtr(name)
	if err != nil {
		return false, err
	}
	*p = !*p
	return *p, nil
}

// IsDone reports whether the script went through every stage
func (s MigrationScript) IsDone() bool {
	return s.Reviewed && s.AppliedTest && s.AppliedProd
}

func (s *MigrationScript) flagPtr(name string) (*bool, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case FlagReviewed, "review":
		return &s.Reviewed, nil
	case FlagAppliedTest, "test":
		return &s.AppliedTest, nil
	case FlagAppliedProd, "prod":
		return &s.AppliedProd, nil
	}
	return nil, fmt.Errorf("%w: '%s' (use %s)", ErrUnknownFlag, name, strings.Join(ScriptFlags, ", "))
}

// EnsureID assigns an id to records loaded without one
func (s *MigrationScript) EnsureID() bool {
	if s.ID != "" {
		return false
	}
	s.ID = uuid.New().String()
	return true
}

// Link is a bookmarked URL with a comment
type Link struct {
	ID        string          `json:"id"`
	Timestamp entry.Timestamp `json:"timestamp"`
	URL       string          `json:"url"`
	Comment   string          `json:"comment"`
}

// NewLink creates a link record stamped at now
func NewLink(now time.Time, url, comment string) Link {
	return Link{
		ID:        uuid.New().String(),
		Timestamp: entry.NewTimestamp(now),
		URL:       url,
		Comment:   comment,
	}
}

// EnsureID assigns an id to records loaded without one
func (l *Link) EnsureID() bool {
	if l.ID != "" {
		return false
	}
	l.ID = uuid.New().String()
	return true
}

// Identified is implemented by every record addressed by id
type Identified interface {
	GetID() string
}

// GetID implements Identified
func (s MigrationScript) GetID() string { return s.ID }

// GetID implements Identified
func (l Link) GetID() string { return l.ID }

// FindByID returns the index of the record with the given id or unique id prefix, or -1
func FindByID[T Identified](records []T, id string) int {
	if id == "" {
		return -1
	}
	for i, r := range records {
		if r.GetID() == id {
			return i
		}
	}
	found := -1
	for i, r := range records {
		if strings.HasPrefix(r.GetID(), id) {
			if found != -1 {
				return -1
			}
			found = i
		}
	}
	return found
}
