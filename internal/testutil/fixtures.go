package testutil

import (
	"time"

	"github.com/drake-full-stack/focustools/internal/domain"
	"github.com/google/uuid"
)

// Task options
type TaskOption func(*domain.Task)

func WithCompleted(done bool) TaskOption {
	return func(t *domain.Task) {
		t.Completed = done
	}
}

func WithPomodoroCount(n int) TaskOption {
	return func(t *domain.Task) {
		t.PomodoroCount = n
	}
}

func NewTestTask(title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	t := &domain.Task{
		ID:        uuid.New().String(),
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Session options
type SessionOption func(*domain.Session)

func WithStartedAt(at time.Time) SessionOption {
	return func(s *domain.Session) {
		s.StartedAt = at
		s.EventKey = domain.CompletionEvent{TaskID: s.TaskID, StartedAt: at}.Key()
	}
}

func WithSessionCompleted(done bool) SessionOption {
	return func(s *domain.Session) {
		s.Completed = done
	}
}

func NewTestSession(taskID string, durationSec int, opts ...SessionOption) *domain.Session {
	now := time.Now().UTC()
	startedAt := now.Add(-time.Duration(durationSec) * time.Second)
	s := &domain.Session{
		ID:          uuid.New().String(),
		TaskID:      taskID,
		EventKey:    domain.CompletionEvent{TaskID: taskID, StartedAt: startedAt}.Key(),
		DurationSec: durationSec,
		Completed:   true,
		StartedAt:   startedAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewTestEvent builds a completion event that started durationSec ago.
func NewTestEvent(taskID string, durationSec int) domain.CompletionEvent {
	return domain.CompletionEvent{
		TaskID:      taskID,
		StartedAt:   time.Now().UTC().Add(-time.Duration(durationSec) * time.Second),
		DurationSec: durationSec,
	}
}
