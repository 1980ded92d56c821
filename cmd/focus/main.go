package main

import (
	"fmt"
	"io"
	"os"

	"github.com/drake-full-stack/focustools/internal/cli"
	"github.com/drake-full-stack/focustools/internal/config"
	"github.com/drake-full-stack/focustools/internal/db"
	"github.com/drake-full-stack/focustools/internal/repository"
	"github.com/drake-full-stack/focustools/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	taskRepo := repository.NewSQLiteTaskRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)

	// Wire unit of work for the atomic session+count writes
	uow := db.NewSQLiteUnitOfWork(database)

	var telemetry io.Writer
	if cfg.LogTelemetry {
		telemetry = os.Stderr
	}
	observer := service.NewLogUseCaseObserver(telemetry)

	app := &cli.App{
		Tasks:         service.NewTaskService(taskRepo),
		Sessions:      service.NewSessionService(sessionRepo),
		Recorder:      service.NewRecorder(uow, observer),
		Reconciler:    service.NewReconciler(taskRepo, uow, observer),
		SessionLength: cfg.SessionLength,
	}

	// Detect interactive terminal for the timer UI and forms.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
