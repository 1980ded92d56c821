package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/drake-full-stack/focustools/internal/tui"
	"github.com/spf13/cobra"
)

func newStartCmd(app *App) *cobra.Command {
	var minutes int

	cmd := &cobra.Command{
		Use:   "start <task>",
		Short: "Run a pomodoro timer for a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return fmt.Errorf("the timer needs an interactive terminal (use 'focus record' to log a session non-interactively)")
			}

			ctx := context.Background()
			task, err := resolveTask(ctx, app, args[0])
			if err != nil {
				return err
			}

			target := app.SessionLength
			if cmd.Flags().Changed("minutes") {
				if minutes < 1 {
					return fmt.Errorf("--minutes must be at least 1")
				}
				target = time.Duration(minutes) * time.Minute
			}

			model, err := tui.NewTimerModel(task, target, app.Recorder)
			if err != nil {
				return err
			}

			final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			if err != nil {
				return fmt.Errorf("running timer: %w", err)
			}

			out, ok := final.(tui.TimerModel)
			if !ok {
				return nil
			}
			if out.Err != nil {
				return fmt.Errorf("recording session: %w", out.Err)
			}
			if out.Recorded == nil {
				fmt.Println("Timer stopped; no session recorded.")
				return nil
			}

			// Re-read for the fresh count rather than trusting a stale copy.
			updated, err := app.Tasks.GetByID(ctx, task.ID)
			if err != nil {
				return err
			}
			fmt.Printf("Session recorded for %q (%d min). Total pomodoros: %d\n",
				updated.Title, out.Recorded.DurationSec/60, updated.PomodoroCount)
			return nil
		},
	}

	cmd.Flags().IntVar(&minutes, "minutes", 25, "Target session length in minutes")

	return cmd
}
