package cli

import (
	"context"
	"fmt"

	"github.com/drake-full-stack/focustools/internal/domain"
	"github.com/spf13/cobra"
)

func newSessionsCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "sessions [task]",
		Short: "List recorded sessions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var sessions []*domain.Session
			if len(args) == 1 {
				task, err := resolveTask(ctx, app, args[0])
				if err != nil {
					return err
				}
				sessions, err = app.Sessions.ListByTask(ctx, task.ID)
				if err != nil {
					return err
				}
			} else {
				var err error
				sessions, err = app.Sessions.ListRecent(ctx, days)
				if err != nil {
					return err
				}
			}

			if len(sessions) == 0 {
				fmt.Println("No sessions recorded.")
				return nil
			}
			for _, s := range sessions {
				fmt.Printf("%s  %s  %4d sec  task %s\n",
					s.ID[:8], s.StartedAt.Local().Format("2006-01-02 15:04"), s.DurationSec, s.TaskID[:8])
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "How many days back to list when no task is given")

	return cmd
}
