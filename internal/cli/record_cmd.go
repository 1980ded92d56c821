package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/drake-full-stack/focustools/internal/domain"
	"github.com/drake-full-stack/focustools/internal/service"
	"github.com/spf13/cobra"
)

func newRecordCmd(app *App) *cobra.Command {
	var startStr string
	var durationSec int

	cmd := &cobra.Command{
		Use:   "record <task>",
		Short: "Record a completed session directly",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			task, err := resolveTask(ctx, app, args[0])
			if err != nil {
				return err
			}

			startedAt := time.Now().UTC().Add(-time.Duration(durationSec) * time.Second)
			if startStr != "" {
				startedAt, err = time.Parse(time.RFC3339, startStr)
				if err != nil {
					return fmt.Errorf("parsing --start (want RFC3339, e.g. 2026-01-02T15:04:05Z): %w", err)
				}
			}

			ev := domain.CompletionEvent{
				TaskID:      task.ID,
				StartedAt:   startedAt,
				DurationSec: durationSec,
			}

			var session *domain.Session
			err = service.RetryOnConflict(ctx, 5, func() error {
				var recordErr error
				session, recordErr = app.Recorder.RecordCompletion(ctx, ev)
				return recordErr
			})
			if err != nil {
				return err
			}

			fmt.Printf("Recorded session %s (%d sec) for %q\n", session.ID[:8], session.DurationSec, task.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&startStr, "start", "", "Session start time, RFC3339 (default: now minus duration)")
	cmd.Flags().IntVar(&durationSec, "duration", 1500, "Session duration in seconds")

	return cmd
}
