package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/drake-full-stack/focustools/internal/db"
	"github.com/drake-full-stack/focustools/internal/domain"
)

// sessionColumns is the canonical SELECT column list for sessions.
const sessionColumns = `id, task_id, event_key, duration_sec, completed, started_at, created_at, updated_at`

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo. Pass a *sql.DB for
// standalone use or a transaction's DBTX for use inside a unit of work.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	query := `INSERT INTO sessions (id, task_id, event_key, duration_sec, completed, started_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.TaskID,
		s.EventKey,
		s.DurationSec,
		boolToInt(s.Completed),
		s.StartedAt.Format(timeLayout),
		s.CreatedAt.Format(timeLayout),
		s.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w", ClassifyErr(err))
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = ?`
	return scanSession(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteSessionRepo) GetByEventKey(ctx context.Context, key string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE event_key = ?`
	return scanSession(r.db.QueryRowContext(ctx, query, key))
}

func (r *SQLiteSessionRepo) ListByTask(ctx context.Context, taskID string) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE task_id = ? ORDER BY started_at`
	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("listing sessions by task: %w", ClassifyErr(err))
	}
	defer rows.Close()
	return scanSessions(rows)
}

func (r *SQLiteSessionRepo) ListRecent(ctx context.Context, days int) ([]*domain.Session, error) {
	// Timestamps are stored as RFC3339 text, so the cutoff is computed here
	// in the same format and compared lexicographically.
	cutoff := time.Now().UTC().AddDate(0, 0, -days).Format(timeLayout)
	query := `SELECT ` + sessionColumns + ` FROM sessions
		WHERE started_at >= ?
		ORDER BY started_at DESC`
	rows, err := r.db.QueryContext(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("listing recent sessions: %w", ClassifyErr(err))
	}
	defer rows.Close()
	return scanSessions(rows)
}

func (r *SQLiteSessionRepo) CountCompletedByTask(ctx context.Context, taskID string) (int, error) {
	query := `SELECT COUNT(*) FROM sessions WHERE task_id = ? AND completed = 1`
	var count int
	if err := r.db.QueryRowContext(ctx, query, taskID).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting completed sessions: %w", ClassifyErr(err))
	}
	return count, nil
}

func scanSession(row *sql.Row) (*domain.Session, error) {
	var s domain.Session
	var completed int
	var startedAtStr, createdAtStr, updatedAtStr string

	err := row.Scan(&s.ID, &s.TaskID, &s.EventKey, &s.DurationSec, &completed,
		&startedAtStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning session: %w", ClassifyErr(err))
	}
	return populateSession(&s, completed, startedAtStr, createdAtStr, updatedAtStr)
}

func scanSessions(rows *sql.Rows) ([]*domain.Session, error) {
	var sessions []*domain.Session
	for rows.Next() {
		var s domain.Session
		var completed int
		var startedAtStr, createdAtStr, updatedAtStr string

		err := rows.Scan(&s.ID, &s.TaskID, &s.EventKey, &s.DurationSec, &completed,
			&startedAtStr, &createdAtStr, &updatedAtStr)
		if err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}

		session, parseErr := populateSession(&s, completed, startedAtStr, createdAtStr, updatedAtStr)
		if parseErr != nil {
			return nil, parseErr
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

func populateSession(s *domain.Session, completed int, startedAtStr, createdAtStr, updatedAtStr string) (*domain.Session, error) {
	s.Completed = intToBool(completed)

	var err error
	s.StartedAt, err = time.Parse(timeLayout, startedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing started_at: %w", err)
	}
	s.CreatedAt, err = time.Parse(timeLayout, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	s.UpdatedAt, err = time.Parse(timeLayout, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return s, nil
}
