package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FOCUS_DB", "")
	t.Setenv("FOCUS_SESSION_MINUTES", "")
	t.Setenv("FOCUS_LOG", "")
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(cfg.DBPath, filepath.Join(".focustools", "focus.db")))
	assert.Equal(t, 25*time.Minute, cfg.SessionLength)
	assert.False(t, cfg.LogTelemetry)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("FOCUS_DB", "/tmp/custom.db")
	t.Setenv("FOCUS_SESSION_MINUTES", "50")
	t.Setenv("FOCUS_LOG", "1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.db", cfg.DBPath)
	assert.Equal(t, 50*time.Minute, cfg.SessionLength)
	assert.True(t, cfg.LogTelemetry)
}

func TestLoad_RejectsBadSessionLength(t *testing.T) {
	for _, v := range []string{"0", "-5", "abc"} {
		t.Setenv("FOCUS_SESSION_MINUTES", v)
		_, err := Load()
		assert.Errorf(t, err, "value %q should be rejected", v)
	}
}
