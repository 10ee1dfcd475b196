package storage

import (
	"fmt"
	"os"

	"github.com/natefinch/atomic"
)

const (
	// BackupSuffix is the file extension for backup files
	BackupSuffix = ".bak"
	// MaxBackupCount is the maximum number of backup files to keep
	MaxBackupCount = 3
)

// GetBackupPath returns the path to a backup of storagePath with the given rotation number.
// Backup files are named logs.json.bak.N where N is between 1 and MaxBackupCount.
// Lower numbers are more recent (e.g., .bak.1 is the most recent backup).
func GetBackupPath(storagePath string, n int) string {
	return fmt.Sprintf("%s%s.%d", storagePath, BackupSuffix, n)
}

// rotateBackups shifts existing backup files to make room for a new backup.
// It renames .bak.1 -> .bak.2, .bak.2 -> .bak.3, and deletes the oldest .bak.3
// if it exists. This ensures only MaxBackupCount backups are kept.
// Returns an error if any file operation fails (except for missing files, which are OK).
func rotateBackups(storagePath string) error {
	if err := os.Remove(GetBackupPath(storagePath, MaxBackupCount)); err != nil && !os.IsNotExist(err) {
		return err
	}

	for i := MaxBackupCount - 1; i >= 1; i-- {
		current := GetBackupPath(storagePath, i)
		next := GetBackupPath(storagePath, i+1)
		if err := os.Rename(current, next); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	return nil
}

// CreateBackup creates a backup of the storage file before making destructive modifications.
// It rotates existing backups and copies the current storage file to .bak.1.
// If the storage file doesn't exist, no backup is created and no error is returned.
func CreateBackup(storagePath string) error {
	source, err := os.Open(storagePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer func() { _ = source.Close() }()

	if err := rotateBackups(storagePath); err != nil {
		return err
	}

	if err := atomic.WriteFile(GetBackupPath(storagePath, 1), source); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}
	return nil
}

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Number int    // The backup number (1, 2, or 3)
	Path   string // The full path to the backup file
}

// ListBackups returns available backups of storagePath sorted by recency.
// .bak.1 is the most recent backup, .bak.3 is the oldest.
// Returns an empty slice if no backups exist.
func ListBackups(storagePath string) ([]BackupInfo, error) {
	backups := []BackupInfo{}

	for i := 1; i <= MaxBackupCount; i++ {
		path := GetBackupPath(storagePath, i)
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		backups = append(backups, BackupInfo{Number: i, Path: path})
	}

	return backups, nil
}
