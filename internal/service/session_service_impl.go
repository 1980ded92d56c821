package service

import (
	"context"

	"github.com/drake-full-stack/focustools/internal/domain"
	"github.com/drake-full-stack/focustools/internal/repository"
)

type sessionService struct {
	sessions repository.SessionRepo
}

func NewSessionService(sessions repository.SessionRepo) SessionService {
	return &sessionService{sessions: sessions}
}

func (s *sessionService) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	return s.sessions.GetByID(ctx, id)
}

func (s *sessionService) ListByTask(ctx context.Context, taskID string) ([]*domain.Session, error) {
	return s.sessions.ListByTask(ctx, taskID)
}

func (s *sessionService) ListRecent(ctx context.Context, days int) ([]*domain.Session, error) {
	return s.sessions.ListRecent(ctx, days)
}
