package domain

import "time"

// Session is one completed, timed work interval attributed to a task.
// Sessions are written exactly once by the recorder and never mutated.
type Session struct {
	ID          string
	TaskID      string
	EventKey    string
	DurationSec int
	Completed   bool
	StartedAt   time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
