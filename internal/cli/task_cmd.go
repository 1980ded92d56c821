package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/drake-full-stack/focustools/internal/service"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage focus tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskDoneCmd(app),
		newTaskEditCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add [title]",
		Short: "Create a task",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")
			if title == "" {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("task title is required")
				}
				form := huh.NewForm(huh.NewGroup(
					huh.NewInput().
						Title("Task title").
						Placeholder("Write docs").
						Value(&title),
				))
				if err := form.Run(); err != nil {
					return err
				}
			}

			t, err := app.Tasks.Create(context.Background(), title)
			if err != nil {
				return err
			}
			fmt.Printf("Created task %s: %s\n", t.DisplayID(), t.Title)
			return nil
		},
	}
}

func newTaskListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.List(context.Background())
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Println("No tasks yet. Create one with: focus task add")
				return nil
			}
			for _, t := range tasks {
				mark := " "
				if t.Completed {
					mark = "x"
				}
				fmt.Printf("[%s] %s  %-40s 🍅 %d\n", mark, t.DisplayID(), t.Title, t.PomodoroCount)
			}
			return nil
		},
	}
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <task>",
		Short: "Mark a task as done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			t, err := resolveTask(ctx, app, args[0])
			if err != nil {
				return err
			}
			done := true
			if _, err := app.Tasks.Update(ctx, t.ID, service.TaskUpdate{Completed: &done}); err != nil {
				return err
			}
			fmt.Printf("Done: %s\n", t.Title)
			return nil
		},
	}
}

func newTaskEditCmd(app *App) *cobra.Command {
	var title string
	var completed bool

	cmd := &cobra.Command{
		Use:   "edit <task>",
		Short: "Edit a task's title or completion flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			t, err := resolveTask(ctx, app, args[0])
			if err != nil {
				return err
			}

			var upd service.TaskUpdate
			if cmd.Flags().Changed("title") {
				upd.Title = &title
			}
			if cmd.Flags().Changed("completed") {
				upd.Completed = &completed
			}
			if upd.Title == nil && upd.Completed == nil {
				return fmt.Errorf("nothing to change (use --title or --completed)")
			}

			updated, err := app.Tasks.Update(ctx, t.ID, upd)
			if err != nil {
				return err
			}
			fmt.Printf("Updated %s: %s\n", updated.DisplayID(), updated.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().BoolVar(&completed, "completed", false, "Completion flag")

	return cmd
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <task>",
		Short: "Delete a task and its recorded sessions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			t, err := resolveTask(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Delete(ctx, t.ID); err != nil {
				return err
			}
			fmt.Printf("Deleted %s\n", t.Title)
			return nil
		},
	}
}
