package service

import (
	"context"
	"errors"
	"time"

	"github.com/drake-full-stack/focustools/internal/repository"
)

// RetryOnConflict runs fn, retrying with exponential backoff while it fails
// with a write conflict. SQLite admits one writer at a time, so transient
// SQLITE_BUSY failures under concurrent recording are expected and safe to
// retry: the recorder's event key guarantees a retried completion is never
// counted twice.
//
// Any error other than a conflict is returned immediately.
func RetryOnConflict(ctx context.Context, attempts int, fn func() error) error {
	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		err = fn()
		if err == nil || !errors.Is(err, repository.ErrConflict) {
			return err
		}
		select {
		case <-time.After(time.Millisecond * time.Duration(1<<attempt)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}
