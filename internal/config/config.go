package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the binary needs at construction time. Nothing
// reads the environment after Load returns; collaborators receive values
// explicitly.
//
// Accepted keys:
//
//	FOCUS_DB               path to the SQLite database (default ~/.focustools/focus.db)
//	FOCUS_SESSION_MINUTES  default pomodoro length in minutes (default 25)
//	FOCUS_LOG              "1" to emit service telemetry on stderr
type Config struct {
	DBPath        string
	SessionLength time.Duration
	LogTelemetry  bool
}

// Load reads configuration from the environment, consulting an optional
// .env file in the working directory first.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbPath := os.Getenv("FOCUS_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".focustools", "focus.db")
	}

	sessionMin := 25
	if v := os.Getenv("FOCUS_SESSION_MINUTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("FOCUS_SESSION_MINUTES must be a positive integer, got %q", v)
		}
		sessionMin = n
	}

	return &Config{
		DBPath:        dbPath,
		SessionLength: time.Duration(sessionMin) * time.Minute,
		LogTelemetry:  os.Getenv("FOCUS_LOG") == "1",
	}, nil
}
