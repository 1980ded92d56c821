package repository

import (
	"context"
	"testing"
	"time"

	"github.com/drake-full-stack/focustools/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	task := testutil.NewTestTask("Write docs")
	require.NoError(t, repo.Create(ctx, task))

	fetched, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, fetched.ID)
	assert.Equal(t, "Write docs", fetched.Title)
	assert.False(t, fetched.Completed)
	assert.Equal(t, 0, fetched.PomodoroCount)
	assert.True(t, fetched.CreatedAt.Equal(task.CreatedAt))
}

func TestTaskRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskRepo_List_NewestFirst(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	older := testutil.NewTestTask("Older")
	older.CreatedAt = older.CreatedAt.Add(-time.Hour)
	newer := testutil.NewTestTask("Newer")
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Newer", tasks[0].Title)
	assert.Equal(t, "Older", tasks[1].Title)
}

func TestTaskRepo_Update_DoesNotTouchCount(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(db)
	ctx := context.Background()

	task := testutil.NewTestTask("Write docs")
	require.NoError(t, repo.Create(ctx, task))
	require.NoError(t, repo.IncrementPomodoroCount(ctx, task.ID, time.Now().UTC()))

	// An edit carrying a wrong in-memory count must not clobber the stored one.
	task.Title = "Write the docs"
	task.Completed = true
	task.PomodoroCount = 99
	task.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, task))

	fetched, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Write the docs", fetched.Title)
	assert.True(t, fetched.Completed)
	assert.Equal(t, 1, fetched.PomodoroCount, "update path must not write pomodoro_count")
}

func TestTaskRepo_Update_NotFound(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))

	task := testutil.NewTestTask("Ghost")
	err := repo.Update(context.Background(), task)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskRepo_IncrementPomodoroCount(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	task := testutil.NewTestTask("Write docs")
	require.NoError(t, repo.Create(ctx, task))

	now := time.Now().UTC()
	require.NoError(t, repo.IncrementPomodoroCount(ctx, task.ID, now))
	require.NoError(t, repo.IncrementPomodoroCount(ctx, task.ID, now))

	fetched, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, fetched.PomodoroCount)
	assert.True(t, fetched.UpdatedAt.Equal(now))

	err = repo.IncrementPomodoroCount(ctx, "nonexistent", now)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskRepo_SetPomodoroCount(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	task := testutil.NewTestTask("Write docs", testutil.WithPomodoroCount(7))
	require.NoError(t, repo.Create(ctx, task))

	require.NoError(t, repo.SetPomodoroCount(ctx, task.ID, 2, time.Now().UTC()))

	fetched, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, fetched.PomodoroCount)
}

func TestTaskRepo_Delete(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	task := testutil.NewTestTask("Write docs")
	require.NoError(t, repo.Create(ctx, task))
	require.NoError(t, repo.Delete(ctx, task.ID))

	_, err := repo.GetByID(ctx, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, task.ID), ErrNotFound)
}
