package cli

import (
	"context"
	"fmt"

	"github.com/drake-full-stack/focustools/internal/service"
	"github.com/spf13/cobra"
)

func newReconcileCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "reconcile [task]",
		Short: "Verify task pomodoro counts against session records",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if all {
				outcomes, err := app.Reconciler.ReconcileAll(ctx)
				if err != nil {
					return err
				}
				corrected := 0
				for _, o := range outcomes {
					printOutcome(o)
					if o.Drifted() {
						corrected++
					}
				}
				fmt.Printf("%d task(s) checked, %d corrected\n", len(outcomes), corrected)
				return nil
			}

			if len(args) != 1 {
				return fmt.Errorf("pass a task or use --all")
			}
			task, err := resolveTask(ctx, app, args[0])
			if err != nil {
				return err
			}
			o, err := app.Reconciler.ReconcileTask(ctx, task.ID)
			if err != nil {
				return err
			}
			printOutcome(*o)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Reconcile every task")

	return cmd
}

func printOutcome(o service.ReconcileOutcome) {
	if !o.Drifted() {
		fmt.Printf("%s  ok (%d)\n", o.TaskID[:8], o.ActualCount)
		return
	}
	fmt.Printf("%s  corrected %d -> %d (delta %+d)\n", o.TaskID[:8], o.StoredCount, o.ActualCount, o.Delta)
}
