package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/drake-full-stack/focustools/internal/domain"
)

// resolveTask accepts a full task ID or an unambiguous prefix and returns the
// matching task.
func resolveTask(ctx context.Context, app *App, ref string) (*domain.Task, error) {
	if t, err := app.Tasks.GetByID(ctx, ref); err == nil {
		return t, nil
	}

	tasks, err := app.Tasks.List(ctx)
	if err != nil {
		return nil, err
	}

	var matches []*domain.Task
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, ref) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, fmt.Errorf("no task matches %q", ref)
	default:
		return nil, fmt.Errorf("%q is ambiguous: %d tasks match", ref, len(matches))
	}
}
