package service

import (
	"context"

	"github.com/drake-full-stack/focustools/internal/domain"
)

// TaskUpdate carries the externally editable task fields. The pomodoro count
// is not here: it moves only through the recorder and the reconciler.
type TaskUpdate struct {
	Title     *string
	Completed *bool
}

type TaskService interface {
	Create(ctx context.Context, title string) (*domain.Task, error)
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	Update(ctx context.Context, id string, upd TaskUpdate) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}

type SessionService interface {
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	ListByTask(ctx context.Context, taskID string) ([]*domain.Session, error)
	ListRecent(ctx context.Context, days int) ([]*domain.Session, error)
}

// Recorder persists completion events. The insert of the session and the
// increment of the owning task's count are one atomic unit: other readers
// see both or neither.
type Recorder interface {
	RecordCompletion(ctx context.Context, ev domain.CompletionEvent) (*domain.Session, error)
}

// ReconcileOutcome reports one task's reconciliation. Delta is the signed
// correction applied to the stored count (zero when the aggregate was
// already consistent).
type ReconcileOutcome struct {
	TaskID      string
	StoredCount int
	ActualCount int
	Delta       int
}

// Drifted reports whether the stored count disagreed with the session log.
func (o ReconcileOutcome) Drifted() bool { return o.Delta != 0 }

// Reconciler repairs drift between a task's stored pomodoro count and its
// session records. It is the sole authority for overwriting the count.
type Reconciler interface {
	ReconcileTask(ctx context.Context, taskID string) (*ReconcileOutcome, error)
	ReconcileAll(ctx context.Context) ([]ReconcileOutcome, error)
}
