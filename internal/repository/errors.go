package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound reports that the referenced task or session does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict reports concurrent-write contention. The whole operation
	// may be retried after re-reading current state; the failed attempt left
	// no partial effect.
	ErrConflict = errors.New("write conflict")

	// ErrDuplicateEvent reports that a session for the same completion event
	// already exists. Retried completions resolve to the existing session.
	ErrDuplicateEvent = errors.New("duplicate completion event")

	// ErrUnavailable reports that storage could not be reached in time.
	// The attempt must be treated as failed-unknown, not failed-clean.
	ErrUnavailable = errors.New("store unavailable")
)

// ClassifyErr maps low-level sqlite/database errors onto the package
// sentinels so callers can branch with errors.Is. Unrecognized errors pass
// through unchanged, as do errors already carrying a sentinel.
//
// Exported because transaction begin/commit errors surface outside the
// repositories; services classify those the same way.
func ClassifyErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	msg := err.Error()
	if strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked") {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	if strings.Contains(msg, "UNIQUE constraint failed: sessions.event_key") {
		return fmt.Errorf("%w: %v", ErrDuplicateEvent, err)
	}
	return err
}
