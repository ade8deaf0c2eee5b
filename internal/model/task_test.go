package model

import (
	"errors"
	"testing"
	"time"
)

func TestTaskValidateSuccess(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	task := Task{
		ID:        "task-1",
		Title:     "Buy milk",
		Notes:     "Whole, not skim",
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
		UserID:    "12345",
	}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
}

func TestTaskValidateRejectsBadFields(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	base := Task{
		ID:        "task-1",
		Title:     "Buy milk",
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
		UserID:    "12345",
	}

	cases := []struct {
		name   string
		mutate func(*Task)
	}{
		{"missing id", func(tk *Task) { tk.ID = " " }},
		{"missing title", func(tk *Task) { tk.Title = "" }},
		{"missing user", func(tk *Task) { tk.UserID = "" }},
		{"zero createdAt", func(tk *Task) { tk.CreatedAt = time.Time{} }},
		{"updatedAt before createdAt", func(tk *Task) { tk.UpdatedAt = now.Add(-time.Hour) }},
	}
	for _, tc := range cases {
		task := base
		tc.mutate(&task)
		if err := task.Validate(); err == nil {
			t.Fatalf("%s: expected error, got nil", tc.name)
		}
	}

	task := base
	task.Status = TaskStatus("archived")
	if err := task.Validate(); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got: %v", err)
	}
}

func TestStatusToggleIsItsOwnInverse(t *testing.T) {
	if StatusPending.Toggle() != StatusCompleted {
		t.Fatal("pending should toggle to completed")
	}
	if StatusPending.Toggle().Toggle() != StatusPending {
		t.Fatal("double toggle should restore pending")
	}
	if StatusCompleted.Toggle() != StatusPending {
		t.Fatal("completed should toggle to pending")
	}
}

func TestEnumValidity(t *testing.T) {
	if !FilterAll.IsValid() || !FilterCompleted.IsValid() || !FilterPending.IsValid() {
		t.Fatal("expected filter constants to be valid")
	}
	if FilterStatus("done").IsValid() {
		t.Fatal("unexpected valid filter")
	}
	if !SortLatest.IsValid() || !SortOldest.IsValid() {
		t.Fatal("expected sort constants to be valid")
	}
	if SortOrder("newest").IsValid() {
		t.Fatal("unexpected valid sort order")
	}
}

func TestTaskPatchValidate(t *testing.T) {
	empty := ""
	if err := (TaskPatch{Title: &empty}).Validate(); err == nil {
		t.Fatal("expected error for empty patch title")
	}
	bad := TaskStatus("paused")
	if err := (TaskPatch{Status: &bad}).Validate(); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got: %v", err)
	}
	title := "Renamed"
	status := StatusCompleted
	if err := (TaskPatch{Title: &title, Status: &status}).Validate(); err != nil {
		t.Fatalf("expected valid patch, got: %v", err)
	}
}
