package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/xolan/blogger/internal/entry"
	"github.com/xolan/blogger/internal/record"
)

const (
	// LogsFile holds the work log entries
	LogsFile = "logs.json"
	// ScriptsFile holds the migration script records
	ScriptsFile = "scripts.json"
	// LinksFile holds the link bookmarks
	LinksFile = "links.json"
)

// ErrNotArray is returned when a storage file does not contain a JSON array
var ErrNotArray = errors.New("storage file is not a JSON array")

// Paths are the storage files of one data directory
type Paths struct {
	Logs    string
	Scripts string
	Links   string
}

// PathsFor returns the storage file paths inside dataDir
func PathsFor(dataDir string) Paths {
	return Paths{
		Logs:    filepath.Join(dataDir, LogsFile),
		Scripts: filepath.Join(dataDir, ScriptsFile),
		Links:   filepath.Join(dataDir, LinksFile),
	}
}

// All returns every storage file path
func (p Paths) All() []string {
	return []string{p.Logs, p.Scripts, p.Links}
}

// ParseWarning represents a warning about a corrupted or malformed record
type ParseWarning struct {
	Index   int    // Position in the array (1-indexed)
	Content string // Raw JSON of the corrupted record
	Error   string // Description of the parsing error
}

// ReadResult contains the results of reading records from storage,
// including both successfully parsed records and any warnings about
// corrupted or malformed elements.
type ReadResult[T any] struct {
	Records  []T
	Warnings []ParseWarning
}

// ReadWithWarnings reads a JSON array file and decodes each element on its own,
// so that one malformed record does not hide the rest.
// Returns an empty ReadResult if the file doesn't exist or is empty.
func ReadWithWarnings[T any](path string) (ReadResult[T], error) {
	result := ReadResult[T]{
		Records:  []T{},
		Warnings: []ParseWarning{},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return result, nil
		}
		return result, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return result, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return result, fmt.Errorf("%w: %s: %v", ErrNotArray, filepath.Base(path), err)
	}

	for i, msg := range raw {
		var rec T
		if err := json.Unmarshal(msg, &rec); err != nil {
			result.Warnings = append(result.Warnings, ParseWarning{
				Index:   i + 1,
				Content: string(msg),
				Error:   err.Error(),
			})
			continue
		}
		result.Records = append(result.Records, rec)
	}
	return result, nil
}

// Read reads all records of a JSON array file, skipping malformed ones
func Read[T any](path string) ([]T, error) {
	result, err := ReadWithWarnings[T](path)
	return result.Records, err
}

// Write replaces the file with records as an indented JSON array.
// The file is written to a temporary file and renamed into place.
func Write[T any](path string, records []T) error {
	if records == nil {
		records = []T{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return err
	}
	return atomic.WriteFile(path, &buf)
}

// ReadLogs reads the log entries
func ReadLogs(path string) (ReadResult[entry.LogEntry], error) {
	return ReadWithWarnings[entry.LogEntry](path)
}

// WriteLogs writes the log entries sorted ascending by date
func WriteLogs(path string, logs []entry.LogEntry) error {
	return Write(path, entry.SortedAscending(logs))
}

// ReadScripts reads the migration script records
func ReadScripts(path string) ([]record.MigrationScript, error) {
	return Read[record.MigrationScript](path)
}

// WriteScripts writes the migration script records
func WriteScripts(path string, scripts []record.MigrationScript) error {
	return Write(path, scripts)
}

// ReadLinks reads the link records
func ReadLinks(path string) ([]record.Link, error) {
	return Read[record.Link](path)
}

// WriteLinks writes the link records
func WriteLinks(path string, links []record.Link) error {
	return Write(path, links)
}

// StorageHealth contains information about the health status of a storage file.
type StorageHealth struct {
	Path             string
	Exists           bool
	TotalRecords     int            // Number of array elements
	ValidRecords     int            // Number of successfully parsed records
	CorruptedRecords int            // Number of malformed records
	Warnings         []ParseWarning // Detailed information about each corrupted record
	Backups          []BackupInfo   // Rotated backups next to the file
}

// ValidateStorage analyzes a storage file and returns health status information.
// Returns empty health status if the file doesn't exist.
func ValidateStorage[T any](path string) (StorageHealth, error) {
	health := StorageHealth{Path: path, Warnings: []ParseWarning{}}

	backups, err := ListBackups(path)
	if err != nil {
		return health, err
	}
	health.Backups = backups

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return health, nil
		}
		return health, err
	}
	health.Exists = true

	result, err := ReadWithWarnings[T](path)
	if err != nil {
		return health, err
	}

	health.ValidRecords = len(result.Records)
	health.CorruptedRecords = len(result.Warnings)
	health.TotalRecords = health.ValidRecords + health.CorruptedRecords
	health.Warnings = result.Warnings
	return health, nil
}
