package domain

import (
	"strings"
	"time"
)

type Task struct {
	ID            string
	Title         string
	Completed     bool
	PomodoroCount int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewTask builds a task with a trimmed title. The pomodoro count starts at
// zero and is only ever changed by the session recorder and the reconciler.
func NewTask(id, title string, now time.Time) (*Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	return &Task{
		ID:        id,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Rename replaces the title, keeping the trimming rule from NewTask.
func (t *Task) Rename(title string, now time.Time) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	t.Title = title
	t.UpdatedAt = now
	return nil
}

// SetCompleted toggles the done flag. Completion of the task itself is
// independent of pomodoro activity.
func (t *Task) SetCompleted(completed bool, now time.Time) {
	t.Completed = completed
	t.UpdatedAt = now
}

// DisplayID returns a short identifier for display.
func (t *Task) DisplayID() string {
	if len(t.ID) >= 8 {
		return t.ID[:8]
	}
	return t.ID
}
