package repository

import (
	"context"
	"time"

	"github.com/drake-full-stack/focustools/internal/domain"
)

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	// Update writes title, completed and updated_at. The pomodoro count is
	// deliberately unreachable from this path; it moves only through
	// IncrementPomodoroCount and SetPomodoroCount.
	Update(ctx context.Context, t *domain.Task) error
	IncrementPomodoroCount(ctx context.Context, id string, now time.Time) error
	SetPomodoroCount(ctx context.Context, id string, count int, now time.Time) error
	Delete(ctx context.Context, id string) error
}

type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	GetByEventKey(ctx context.Context, key string) (*domain.Session, error)
	ListByTask(ctx context.Context, taskID string) ([]*domain.Session, error)
	ListRecent(ctx context.Context, days int) ([]*domain.Session, error)
	CountCompletedByTask(ctx context.Context, taskID string) (int, error)
}
