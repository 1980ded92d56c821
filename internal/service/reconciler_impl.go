package service

import (
	"context"
	"time"

	"github.com/drake-full-stack/focustools/internal/db"
	"github.com/drake-full-stack/focustools/internal/repository"
)

type reconciler struct {
	tasks    repository.TaskRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time
}

// NewReconciler creates the consistency coordinator. It recomputes a task's
// true completed-session count and overwrites the stored aggregate when the
// two disagree. It never consults the timer; the session log is the sole
// source of truth.
func NewReconciler(tasks repository.TaskRepo, uow db.UnitOfWork, observers ...UseCaseObserver) Reconciler {
	return &reconciler{
		tasks:    tasks,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

// ReconcileTask compares the stored count against the session log for one
// task. Both the comparison and any correction happen in one transaction, so
// it serializes against in-flight recorder writes for the same task (SQLite
// admits a single writer per database).
//
// Reconciliation is idempotent: with no intervening writes a second call
// observes equal counts and writes nothing.
func (r *reconciler) ReconcileTask(ctx context.Context, taskID string) (*ReconcileOutcome, error) {
	started := r.now().UTC()

	var outcome *ReconcileOutcome
	err := repository.ClassifyErr(r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txSessions := repository.NewSQLiteSessionRepo(tx)

		task, err := txTasks.GetByID(ctx, taskID)
		if err != nil {
			return err
		}
		actual, err := txSessions.CountCompletedByTask(ctx, taskID)
		if err != nil {
			return err
		}

		outcome = &ReconcileOutcome{
			TaskID:      taskID,
			StoredCount: task.PomodoroCount,
			ActualCount: actual,
			Delta:       actual - task.PomodoroCount,
		}
		if outcome.Delta == 0 {
			return nil
		}
		return txTasks.SetPomodoroCount(ctx, taskID, actual, started)
	}))

	fields := map[string]any{"task_id": taskID, "drift": 0}
	if outcome != nil {
		fields["drift"] = outcome.Delta
	}
	r.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "reconcile_task",
		Duration:  r.now().UTC().Sub(started),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: started,
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

// ReconcileAll sweeps every task. Tasks are reconciled one at a time; the
// sweep as a whole is not atomic and does not need to be, since per-task
// reconciliation is order-independent and converges on repeat.
func (r *reconciler) ReconcileAll(ctx context.Context) ([]ReconcileOutcome, error) {
	tasks, err := r.tasks.List(ctx)
	if err != nil {
		return nil, err
	}

	outcomes := make([]ReconcileOutcome, 0, len(tasks))
	for _, t := range tasks {
		o, err := r.ReconcileTask(ctx, t.ID)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, *o)
	}
	return outcomes, nil
}
