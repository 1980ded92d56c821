package domain

import (
	"fmt"
	"time"
)

// CompletionEvent is emitted by the timer when a work interval reaches its
// target duration. It carries everything needed to persist a Session.
type CompletionEvent struct {
	TaskID      string
	StartedAt   time.Time
	DurationSec int
}

// Key derives the idempotency key for this event. Two submissions of the same
// logical completion (same task, same start instant) share a key, so a retry
// after a reported conflict can be collapsed onto the already-recorded session.
func (e CompletionEvent) Key() string {
	return fmt.Sprintf("%s@%s", e.TaskID, e.StartedAt.UTC().Format(time.RFC3339Nano))
}

// Validate checks the event against the recorder's input constraints.
// now is injected so callers (and tests) control the clock.
func (e CompletionEvent) Validate(now time.Time) error {
	if e.TaskID == "" {
		return &ValidationError{Field: "taskId", Reason: "must not be empty"}
	}
	if e.DurationSec < 1 {
		return &ValidationError{Field: "duration", Reason: "must be at least 1 second"}
	}
	if e.StartedAt.After(now) {
		return &ValidationError{Field: "startTime", Reason: "must not be in the future"}
	}
	return nil
}
