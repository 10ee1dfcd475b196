package service

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/xolan/blogger/internal/filter"
	"github.com/xolan/blogger/internal/storage"
)

func strPtr(s string) *string { return &s }

func TestLogService_Create(t *testing.T) {
	services, _ := newTestServices(t)
	svc := services.Log

	tests := []struct {
		name    string
		ticket  string
		wantErr error
	}{
		{"valid entry", "QI-1 fix login", nil},
		{"empty ticket", "", ErrEmptyTicket},
		{"whitespace ticket", "   ", ErrEmptyTicket},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := svc.Create(tt.ticket, " desc ", "1h", []string{"a", " ", "b"})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if e.ID == "" || e.Description != "desc" {
				t.Errorf("unexpected entry: %+v", e)
			}
			if len(e.Subtasks) != 2 {
				t.Errorf("expected blank subtasks dropped, got %v", e.Subtasks)
			}
			if !e.Timestamp.Equal(fixedNow) {
				t.Errorf("Timestamp = %v, expected injected clock %v", e.Timestamp, fixedNow)
			}
			if _, ok := e.Status["q"]; !ok {
				t.Error("expected status defaults applied")
			}
		})
	}
}

func TestLogService_ListSortedAndGrouped(t *testing.T) {
	services, now := newTestServices(t)
	svc := services.Log

	*now = fixedNow
	_, _ = svc.Create("QI-2 today", "", "30m", nil)
	*now = fixedNow.AddDate(0, 0, -1)
	_, _ = svc.Create("QI-1 yesterday", "", "1h", nil)
	_, _ = svc.Create("standup", "", "15m", nil)

	result, err := svc.List(nil)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(result.Entries) != 3 || result.Entries[0].Ticket != "QI-1 yesterday" {
		t.Errorf("entries not sorted ascending: %v", result.Entries)
	}
	if len(result.Groups) != 2 || len(result.Groups[0].Entries) != 2 {
		t.Errorf("unexpected groups: %+v", result.Groups)
	}
	if result.Total != 105 {
		t.Errorf("Total = %d, expected 105", result.Total)
	}

	filtered, err := svc.List(filter.NewFilter("", "QI-", ""))
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(filtered.Entries) != 2 {
		t.Errorf("expected 2 prefixed entries, got %d", len(filtered.Entries))
	}
}

func TestLogService_AssignsMissingIDs(t *testing.T) {
	services, _ := newTestServices(t)
	path := services.Paths().Logs
	writeFile(t, path, `[{"timestamp": "14.01.2025 10:00:00", "ticket": "legacy", "q_status": "✅", "jira_status": "❌", "subtasks": []}]`)

	logs, _, err := services.Log.All()
	if err != nil {
		t.Fatalf("All() error: %v", err)
	}
	if logs[0].ID == "" {
		t.Fatal("expected id to be assigned")
	}

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), logs[0].ID) {
		t.Error("assigned id should be persisted")
	}
	if strings.Contains(string(data), "q_status") {
		t.Error("legacy fields should not be written back")
	}

	again, _, _ := services.Log.All()
	if again[0].ID != logs[0].ID {
		t.Error("id must be stable across loads")
	}
}

func TestLogService_Edit(t *testing.T) {
	services, _ := newTestServices(t)
	svc := services.Log
	created, _ := svc.Create("QI-1", "", "1h", nil)

	newDate := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	edited, err := svc.Edit(created.ID[:8], EntryChanges{
		Ticket:   strPtr("QI-1 [Q] reviewed"),
		Duration: strPtr("2h 15m"),
		Date:     &newDate,
	})
	if err != nil {
		t.Fatalf("Edit() error: %v", err)
	}
	if edited.Ticket != "QI-1 [Q] reviewed" || edited.Minutes() != 135 {
		t.Errorf("unexpected edited entry: %+v", edited)
	}
	if edited.Timestamp.Day() != 10 || edited.Timestamp.Hour() != fixedNow.Hour() {
		t.Errorf("date change should keep time of day, got %v", edited.Timestamp)
	}

	if _, err := svc.Edit(created.ID, EntryChanges{}); !errors.Is(err, ErrNoChangesSpecified) {
		t.Errorf("expected ErrNoChangesSpecified, got %v", err)
	}
	if _, err := svc.Edit(created.ID, EntryChanges{Ticket: strPtr(" ")}); !errors.Is(err, ErrEmptyTicket) {
		t.Errorf("expected ErrEmptyTicket, got %v", err)
	}
	if _, err := svc.Edit("nope", EntryChanges{Duration: strPtr("1h")}); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestLogService_DeleteCreatesBackup(t *testing.T) {
	services, _ := newTestServices(t)
	svc := services.Log
	first, _ := svc.Create("keep", "", "", nil)
	second, _ := svc.Create("drop", "", "", nil)

	deleted, err := svc.Delete(second.ID)
	if err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if deleted.Ticket != "drop" {
		t.Errorf("deleted = %q, expected %q", deleted.Ticket, "drop")
	}

	logs, _, _ := svc.All()
	if len(logs) != 1 || logs[0].ID != first.ID {
		t.Errorf("unexpected remaining logs: %v", logs)
	}

	backups, _ := storage.ListBackups(services.Paths().Logs)
	if len(backups) != 1 {
		t.Errorf("expected one backup, got %d", len(backups))
	}

	if _, err := svc.Delete(second.ID); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestLogService_ToggleStatus(t *testing.T) {
	services, _ := newTestServices(t)
	svc := services.Log
	e, _ := svc.Create("QI-1", "", "", nil)

	_, state, err := svc.ToggleStatus(e.ID, "Q")
	if err != nil {
		t.Fatalf("ToggleStatus() error: %v", err)
	}
	if !state {
		t.Error("expected q to become complete")
	}

	got, _ := svc.Get(e.ID)
	if !got.IsComplete("q") {
		t.Error("toggle was not persisted")
	}

	if _, _, err := svc.ToggleStatus(e.ID, "review"); !errors.Is(err, ErrUnknownStatusType) {
		t.Errorf("expected ErrUnknownStatusType, got %v", err)
	}

	updated, err := svc.SetStatus(e.ID, "jira", true)
	if err != nil || !updated.IsComplete("jira") {
		t.Errorf("SetStatus() = %+v, %v", updated, err)
	}
}

func TestLogService_Subtasks(t *testing.T) {
	services, _ := newTestServices(t)
	svc := services.Log
	e, _ := svc.Create("QI-1", "", "", []string{"one"})

	if _, err := svc.AddSubtask(e.ID, "two"); err != nil {
		t.Fatalf("AddSubtask() error: %v", err)
	}
	if _, err := svc.AddSubtask(e.ID, "  "); !errors.Is(err, ErrEmptySubtask) {
		t.Errorf("expected ErrEmptySubtask, got %v", err)
	}
	if _, err := svc.EditSubtask(e.ID, 2, "second"); err != nil {
		t.Fatalf("EditSubtask() error: %v", err)
	}

	updated, removed, err := svc.RemoveSubtask(e.ID, 1)
	if err != nil {
		t.Fatalf("RemoveSubtask() error: %v", err)
	}
	if removed != "one" || len(updated.Subtasks) != 1 || updated.Subtasks[0] != "second" {
		t.Errorf("unexpected subtasks after removal: %q, %v", removed, updated.Subtasks)
	}

	if _, _, err := svc.RemoveSubtask(e.ID, 5); !errors.Is(err, ErrSubtaskIndex) {
		t.Errorf("expected ErrSubtaskIndex, got %v", err)
	}
}

func TestLogService_Tickets(t *testing.T) {
	services, _ := newTestServices(t)
	svc := services.Log
	_, _ = svc.Create("QI-1 foo", "", "", nil)
	_, _ = svc.Create("QI-1 [Q] bar", "", "", nil)
	baz, _ := svc.Create("QI-2 baz", "", "", nil)
	_, _ = svc.Create("OPS-1 other", "", "", nil)

	tickets, err := svc.Tickets("q", false)
	if err != nil {
		t.Fatalf("Tickets() error: %v", err)
	}
	if strings.Join(tickets, "|") != "QI-1 [Q] bar|QI-2 baz" {
		t.Errorf("Tickets() = %v", tickets)
	}

	_, _ = svc.SetStatus(baz.ID, "q", true)
	open, _ := svc.Tickets("q", true)
	if strings.Join(open, "|") != "QI-1 [Q] bar" {
		t.Errorf("Tickets(incomplete) = %v", open)
	}

	if _, err := svc.Tickets("nope", false); !errors.Is(err, ErrUnknownStatusType) {
		t.Errorf("expected ErrUnknownStatusType, got %v", err)
	}
}

func TestLogService_OnDate(t *testing.T) {
	services, now := newTestServices(t)
	svc := services.Log
	_, _ = svc.Create("today", "", "", nil)
	*now = fixedNow.AddDate(0, 0, -2)
	_, _ = svc.Create("earlier", "", "", nil)

	logs, err := svc.OnDate(fixedNow)
	if err != nil {
		t.Fatalf("OnDate() error: %v", err)
	}
	if len(logs) != 1 || logs[0].Ticket != "today" {
		t.Errorf("OnDate() = %v", logs)
	}
}

func TestLogService_CorruptFile(t *testing.T) {
	services, _ := newTestServices(t)
	writeFile(t, services.Paths().Logs, `{"not": "an array"}`)

	if _, err := services.Log.List(nil); !errors.Is(err, storage.ErrNotArray) {
		t.Errorf("expected ErrNotArray, got %v", err)
	}
}
