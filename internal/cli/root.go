package cli

import (
	"time"

	"github.com/drake-full-stack/focustools/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands, plus
// the configuration values commands need. main wires it; commands never
// reach for the environment themselves.
type App struct {
	Tasks      service.TaskService
	Sessions   service.SessionService
	Recorder   service.Recorder
	Reconciler service.Reconciler

	// SessionLength is the default pomodoro target duration.
	SessionLength time.Duration

	// IsInteractive reports whether stdin is a terminal; the timer UI and
	// interactive forms only run when it returns true.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "focus" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "focus",
		Short: "Track focus tasks and pomodoro sessions",
	}

	root.AddCommand(
		newTaskCmd(app),
		newStartCmd(app),
		newRecordCmd(app),
		newSessionsCmd(app),
		newReconcileCmd(app),
	)

	return root
}
