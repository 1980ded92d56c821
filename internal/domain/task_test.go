package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func TestNewTask_TrimsTitle(t *testing.T) {
	task, err := NewTask("id-1", "  Write docs  ", testNow)
	require.NoError(t, err)
	assert.Equal(t, "Write docs", task.Title)
	assert.Equal(t, 0, task.PomodoroCount)
	assert.False(t, task.Completed)
	assert.Equal(t, testNow, task.CreatedAt)
	assert.Equal(t, testNow, task.UpdatedAt)
}

func TestNewTask_RejectsEmptyTitle(t *testing.T) {
	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := NewTask("id-1", title, testNow)
		require.Error(t, err, "title %q", title)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "title", verr.Field)
	}
}

func TestRename(t *testing.T) {
	task, err := NewTask("id-1", "Old", testNow)
	require.NoError(t, err)

	later := testNow.Add(time.Hour)
	require.NoError(t, task.Rename("  New  ", later))
	assert.Equal(t, "New", task.Title)
	assert.Equal(t, later, task.UpdatedAt)

	err = task.Rename("  ", later)
	require.Error(t, err)
	assert.Equal(t, "New", task.Title, "failed rename must not change the title")
}

func TestSetCompleted_IndependentOfCount(t *testing.T) {
	task, err := NewTask("id-1", "Write docs", testNow)
	require.NoError(t, err)
	task.PomodoroCount = 3

	task.SetCompleted(true, testNow.Add(time.Hour))
	assert.True(t, task.Completed)
	assert.Equal(t, 3, task.PomodoroCount)
}
