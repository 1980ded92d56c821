package service

import (
	"context"
	"errors"
	"time"

	"github.com/drake-full-stack/focustools/internal/db"
	"github.com/drake-full-stack/focustools/internal/domain"
	"github.com/drake-full-stack/focustools/internal/repository"
	"github.com/google/uuid"
)

type recorder struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time
}

// NewRecorder creates the session recorder. All writes it performs go
// through the unit of work, so a failure at any point leaves no trace.
func NewRecorder(uow db.UnitOfWork, observers ...UseCaseObserver) Recorder {
	return &recorder{
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

// RecordCompletion persists one completion event: it inserts the session and
// increments the owning task's pomodoro count inside a single transaction.
//
// The event key makes retries safe. If an earlier attempt already committed
// this event, the insert hits the unique index and the call resolves to the
// existing session without a second increment.
func (r *recorder) RecordCompletion(ctx context.Context, ev domain.CompletionEvent) (*domain.Session, error) {
	started := r.now().UTC()

	if err := ev.Validate(started); err != nil {
		r.observe(ctx, started, ev, err)
		return nil, err
	}

	session := &domain.Session{
		ID:          uuid.New().String(),
		TaskID:      ev.TaskID,
		EventKey:    ev.Key(),
		DurationSec: ev.DurationSec,
		Completed:   true,
		StartedAt:   ev.StartedAt.UTC(),
		CreatedAt:   started,
		UpdatedAt:   started,
	}

	var recorded *domain.Session
	// ClassifyErr also covers begin/commit failures, which never pass
	// through a repository: an expired context there must still read as
	// store-unavailable.
	err := repository.ClassifyErr(r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txSessions := repository.NewSQLiteSessionRepo(tx)

		// Referential integrity is checked inside the transaction so a task
		// deleted concurrently cannot gain a session.
		if _, err := txTasks.GetByID(ctx, ev.TaskID); err != nil {
			return err
		}

		if err := txSessions.Create(ctx, session); err != nil {
			if errors.Is(err, repository.ErrDuplicateEvent) {
				existing, lookupErr := txSessions.GetByEventKey(ctx, session.EventKey)
				if lookupErr != nil {
					return lookupErr
				}
				// Already counted by the attempt that won; do not increment.
				recorded = existing
				return nil
			}
			return err
		}

		if err := txTasks.IncrementPomodoroCount(ctx, ev.TaskID, started); err != nil {
			return err
		}
		recorded = session
		return nil
	}))
	r.observe(ctx, started, ev, err)
	if err != nil {
		return nil, err
	}
	return recorded, nil
}

func (r *recorder) observe(ctx context.Context, started time.Time, ev domain.CompletionEvent, err error) {
	r.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "record_completion",
		Duration:  r.now().UTC().Sub(started),
		Success:   err == nil,
		Err:       err,
		Fields:    map[string]any{"task_id": ev.TaskID, "duration_sec": ev.DurationSec},
		StartedAt: started,
	})
}
