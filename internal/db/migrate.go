package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent
// (IF NOT EXISTS), so reopening an existing database is safe.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id             TEXT PRIMARY KEY,
		title          TEXT NOT NULL,
		completed      INTEGER NOT NULL DEFAULT 0,
		pomodoro_count INTEGER NOT NULL DEFAULT 0 CHECK(pomodoro_count >= 0),
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS sessions (
		id           TEXT PRIMARY KEY,
		task_id      TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		event_key    TEXT NOT NULL,
		duration_sec INTEGER NOT NULL CHECK(duration_sec >= 1),
		completed    INTEGER NOT NULL DEFAULT 1,
		started_at   TEXT NOT NULL,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_task ON sessions(task_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at)`,

	// One session per logical completion event. A retried completion with the
	// same key must collapse onto the existing row instead of double-counting.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_sessions_event_key ON sessions(event_key)`,
}
