package handlers

import (
	"fmt"

	"github.com/xolan/blogger/internal/cli"
)

// ValidateStorage checks the storage files and reports their health
func ValidateStorage(deps *cli.Deps) {
	healths, err := deps.Services.Health()
	if err != nil {
		deps.Fail("Failed to validate storage", err)
		return
	}

	corrupted := 0
	for _, health := range healths {
		deps.Printf("Storage file: %s\n", health.Path)
		deps.Println(cli.Rule("="))
		if !health.Exists {
			deps.Println("Not created yet")
			deps.Println("")
			continue
		}
		deps.Printf("Total records:     %d\n", health.TotalRecords)
		deps.Printf("Valid records:     %d\n", health.ValidRecords)
		deps.Printf("Corrupted records: %d\n", health.CorruptedRecords)
		deps.Printf("Backups:           %d\n", len(health.Backups))

		if len(health.Warnings) > 0 {
			deps.Println("Corrupted records:")
			for _, warning := range health.Warnings {
				deps.Println(cli.FormatCorruptionWarning(warning))
			}
		}
		deps.Println("")
		corrupted += health.CorruptedRecords
	}

	if corrupted == 0 {
		deps.Println("Status: ✓ Storage files are healthy")
		return
	}
	_, _ = fmt.Fprintf(deps.Stderr, "Status: ⚠ Storage has %d corrupted %s\n", corrupted, cli.Pluralize("record", corrupted))
}
