package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/drake-full-stack/focustools/internal/db"
	"github.com/drake-full-stack/focustools/internal/domain"
)

// taskColumns is the canonical SELECT column list for tasks.
const taskColumns = `id, title, completed, pomodoro_count, created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo. Pass a *sql.DB for
// standalone use or a transaction's DBTX for use inside a unit of work.
func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (id, title, completed, pomodoro_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Title,
		boolToInt(t.Completed),
		t.PomodoroCount,
		t.CreatedAt.Format(timeLayout),
		t.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", ClassifyErr(err))
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanTask(row)
}

func (r *SQLiteTaskRepo) List(ctx context.Context) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", ClassifyErr(err))
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTaskRow(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	// pomodoro_count is intentionally absent: it is owned by the recorder
	// and the reconciler, never by title/completed edits.
	query := `UPDATE tasks SET title = ?, completed = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Title,
		boolToInt(t.Completed),
		t.UpdatedAt.Format(timeLayout),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", ClassifyErr(err))
	}
	return requireRowAffected(res, "task")
}

func (r *SQLiteTaskRepo) IncrementPomodoroCount(ctx context.Context, id string, now time.Time) error {
	// The increment happens store-side against the live row, so concurrent
	// recorders can never base it on a stale in-memory copy.
	query := `UPDATE tasks SET pomodoro_count = pomodoro_count + 1, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, now.UTC().Format(timeLayout), id)
	if err != nil {
		return fmt.Errorf("incrementing pomodoro count: %w", ClassifyErr(err))
	}
	return requireRowAffected(res, "task")
}

func (r *SQLiteTaskRepo) SetPomodoroCount(ctx context.Context, id string, count int, now time.Time) error {
	query := `UPDATE tasks SET pomodoro_count = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, count, now.UTC().Format(timeLayout), id)
	if err != nil {
		return fmt.Errorf("setting pomodoro count: %w", ClassifyErr(err))
	}
	return requireRowAffected(res, "task")
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	// Sessions cascade with the task (ON DELETE CASCADE).
	query := `DELETE FROM tasks WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", ClassifyErr(err))
	}
	return requireRowAffected(res, "task")
}

// requireRowAffected turns a zero-row write into ErrNotFound.
func requireRowAffected(res sql.Result, entity string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return nil
}

func scanTask(row *sql.Row) (*domain.Task, error) {
	var t domain.Task
	var completed int
	var createdAtStr, updatedAtStr string

	err := row.Scan(&t.ID, &t.Title, &completed, &t.PomodoroCount, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", ClassifyErr(err))
	}
	return populateTask(&t, completed, createdAtStr, updatedAtStr)
}

func scanTaskRow(rows *sql.Rows) (*domain.Task, error) {
	var t domain.Task
	var completed int
	var createdAtStr, updatedAtStr string

	if err := rows.Scan(&t.ID, &t.Title, &completed, &t.PomodoroCount, &createdAtStr, &updatedAtStr); err != nil {
		return nil, fmt.Errorf("scanning task row: %w", err)
	}
	return populateTask(&t, completed, createdAtStr, updatedAtStr)
}

func populateTask(t *domain.Task, completed int, createdAtStr, updatedAtStr string) (*domain.Task, error) {
	t.Completed = intToBool(completed)

	var err error
	t.CreatedAt, err = time.Parse(timeLayout, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	t.UpdatedAt, err = time.Parse(timeLayout, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return t, nil
}
