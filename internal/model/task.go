package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidStatus = errors.New("model: invalid task status")
	ErrInvalidFilter = errors.New("model: invalid filter status")
	ErrInvalidSort   = errors.New("model: invalid sort order")
)

type TaskStatus string

const (
	StatusPending   TaskStatus = "pending"
	StatusCompleted TaskStatus = "completed"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted:
		return true
	default:
		return false
	}
}

// Toggle flips pending to completed and back.
func (s TaskStatus) Toggle() TaskStatus {
	if s == StatusCompleted {
		return StatusPending
	}
	return StatusCompleted
}

type FilterStatus string

const (
	FilterAll       FilterStatus = "all"
	FilterCompleted FilterStatus = "completed"
	FilterPending   FilterStatus = "pending"
)

func (f FilterStatus) IsValid() bool {
	switch f {
	case FilterAll, FilterCompleted, FilterPending:
		return true
	default:
		return false
	}
}

type SortOrder string

const (
	SortLatest SortOrder = "latest"
	SortOldest SortOrder = "oldest"
)

func (o SortOrder) IsValid() bool {
	switch o {
	case SortLatest, SortOldest:
		return true
	default:
		return false
	}
}

// Task is one to-do item owned by exactly one user. JSON tags match the
// persisted collection layout, so records written by earlier builds stay
// readable.
type Task struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Notes     string     `json:"notes,omitempty"`
	Status    TaskStatus `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	UserID    string     `json:"userId"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	if strings.TrimSpace(t.UserID) == "" {
		return errors.New("model: task user id is required")
	}
	if t.CreatedAt.IsZero() {
		return errors.New("model: task createdAt is required")
	}
	if t.UpdatedAt.Before(t.CreatedAt) {
		return errors.New("model: task updatedAt precedes createdAt")
	}
	return nil
}

// Suggestion is a task input before it becomes a stored Task. Manual entry
// and AI-generated batches both arrive through this shape, so the task store
// stays agnostic to where a task came from.
type Suggestion struct {
	Title string `json:"title"`
	Notes string `json:"notes"`
}

func (s Suggestion) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return errors.New("model: suggestion title is required")
	}
	return nil
}

// TaskPatch carries the mutable fields of a partial update. Nil means leave
// the field untouched. ID, UserID, and CreatedAt are immutable after
// creation and have no patch entry.
type TaskPatch struct {
	Title  *string
	Notes  *string
	Status *TaskStatus
}

func (p TaskPatch) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return errors.New("model: patch title must not be empty")
	}
	if p.Status != nil && !p.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, *p.Status)
	}
	return nil
}
