package service

import (
	"context"
	"time"

	"github.com/drake-full-stack/focustools/internal/domain"
	"github.com/drake-full-stack/focustools/internal/repository"
	"github.com/google/uuid"
)

type taskService struct {
	tasks repository.TaskRepo
}

func NewTaskService(tasks repository.TaskRepo) TaskService {
	return &taskService{tasks: tasks}
}

func (s *taskService) Create(ctx context.Context, title string) (*domain.Task, error) {
	t, err := domain.NewTask(uuid.New().String(), title, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) List(ctx context.Context) ([]*domain.Task, error) {
	return s.tasks.List(ctx)
}

func (s *taskService) Update(ctx context.Context, id string, upd TaskUpdate) (*domain.Task, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if upd.Title != nil {
		if err := t.Rename(*upd.Title, now); err != nil {
			return nil, err
		}
	}
	if upd.Completed != nil {
		t.SetCompleted(*upd.Completed, now)
	}

	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}
