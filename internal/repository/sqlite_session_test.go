package repository

import (
	"context"
	"testing"
	"time"

	"github.com/drake-full-stack/focustools/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sessionTestSetup creates the owning task session tests need.
func sessionTestSetup(t *testing.T) (*SQLiteSessionRepo, *SQLiteTaskRepo, string) {
	t.Helper()
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	taskRepo := NewSQLiteTaskRepo(db)
	sessRepo := NewSQLiteSessionRepo(db)

	task := testutil.NewTestTask("Write docs")
	require.NoError(t, taskRepo.Create(ctx, task))

	return sessRepo, taskRepo, task.ID
}

func TestSessionRepo_CreateAndGetByID(t *testing.T) {
	repo, _, taskID := sessionTestSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession(taskID, 1500)
	require.NoError(t, repo.Create(ctx, sess))

	fetched, err := repo.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, fetched.ID)
	assert.Equal(t, taskID, fetched.TaskID)
	assert.Equal(t, 1500, fetched.DurationSec)
	assert.True(t, fetched.Completed)
	assert.True(t, fetched.StartedAt.Equal(sess.StartedAt))
}

func TestSessionRepo_GetByID_NotFound(t *testing.T) {
	repo, _, _ := sessionTestSetup(t)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepo_Create_RejectsUnknownTask(t *testing.T) {
	repo, _, _ := sessionTestSetup(t)

	sess := testutil.NewTestSession("no-such-task", 1500)
	err := repo.Create(context.Background(), sess)
	assert.Error(t, err, "foreign key enforcement must reject sessions for missing tasks")
}

func TestSessionRepo_Create_DuplicateEventKey(t *testing.T) {
	repo, _, taskID := sessionTestSetup(t)
	ctx := context.Background()

	at := time.Now().UTC().Add(-30 * time.Minute)
	first := testutil.NewTestSession(taskID, 1500, testutil.WithStartedAt(at))
	require.NoError(t, repo.Create(ctx, first))

	second := testutil.NewTestSession(taskID, 1500, testutil.WithStartedAt(at))
	err := repo.Create(ctx, second)
	assert.ErrorIs(t, err, ErrDuplicateEvent)

	found, err := repo.GetByEventKey(ctx, first.EventKey)
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)
}

func TestSessionRepo_ListByTask_OrderedByStart(t *testing.T) {
	repo, _, taskID := sessionTestSetup(t)
	ctx := context.Background()

	now := time.Now().UTC()
	s1 := testutil.NewTestSession(taskID, 1500, testutil.WithStartedAt(now.Add(-2*time.Hour)))
	s2 := testutil.NewTestSession(taskID, 900, testutil.WithStartedAt(now.Add(-time.Hour)))
	require.NoError(t, repo.Create(ctx, s2))
	require.NoError(t, repo.Create(ctx, s1))

	list, err := repo.ListByTask(ctx, taskID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, s1.ID, list[0].ID)
	assert.Equal(t, s2.ID, list[1].ID)
}

func TestSessionRepo_ListByTask_SubSecondOrdering(t *testing.T) {
	repo, _, taskID := sessionTestSetup(t)
	ctx := context.Background()

	// Timestamps are compared as text, so whole-second and fractional stamps
	// within the same second must still sort chronologically.
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	offsets := []time.Duration{150 * time.Millisecond, 0, 100 * time.Millisecond, 50 * time.Millisecond}
	inserted := make(map[time.Duration]string, len(offsets))
	for _, off := range offsets {
		s := testutil.NewTestSession(taskID, 1500, testutil.WithStartedAt(base.Add(off)))
		require.NoError(t, repo.Create(ctx, s))
		inserted[off] = s.ID
	}

	list, err := repo.ListByTask(ctx, taskID)
	require.NoError(t, err)
	require.Len(t, list, 4)
	for i, off := range []time.Duration{0, 50 * time.Millisecond, 100 * time.Millisecond, 150 * time.Millisecond} {
		assert.Equalf(t, inserted[off], list[i].ID, "position %d", i)
		assert.True(t, list[i].StartedAt.Equal(base.Add(off)))
	}
}

func TestSessionRepo_ListRecent(t *testing.T) {
	repo, _, taskID := sessionTestSetup(t)
	ctx := context.Background()

	old := testutil.NewTestSession(taskID, 1500,
		testutil.WithStartedAt(time.Now().UTC().AddDate(0, 0, -30)))
	recent := testutil.NewTestSession(taskID, 1500,
		testutil.WithStartedAt(time.Now().UTC().Add(-time.Hour)))
	require.NoError(t, repo.Create(ctx, old))
	require.NoError(t, repo.Create(ctx, recent))

	list, err := repo.ListRecent(ctx, 7)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, recent.ID, list[0].ID)
}

func TestSessionRepo_CountCompletedByTask(t *testing.T) {
	repo, _, taskID := sessionTestSetup(t)
	ctx := context.Background()

	now := time.Now().UTC()
	for i := 0; i < 3; i++ {
		s := testutil.NewTestSession(taskID, 1500,
			testutil.WithStartedAt(now.Add(-time.Duration(i+1)*time.Hour)))
		require.NoError(t, repo.Create(ctx, s))
	}
	incomplete := testutil.NewTestSession(taskID, 1500,
		testutil.WithStartedAt(now.Add(-10*time.Hour)),
		testutil.WithSessionCompleted(false))
	require.NoError(t, repo.Create(ctx, incomplete))

	count, err := repo.CountCompletedByTask(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, 3, count, "only completed sessions feed the aggregate")

	count, err = repo.CountCompletedByTask(ctx, "no-such-task")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

// TestCascadeDelete_TaskToSessions verifies that deleting a task cascades to
// its sessions.
func TestCascadeDelete_TaskToSessions(t *testing.T) {
	repo, taskRepo, taskID := sessionTestSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession(taskID, 1500)
	require.NoError(t, repo.Create(ctx, sess))

	require.NoError(t, taskRepo.Delete(ctx, taskID))

	_, err := repo.GetByID(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound, "sessions should be cascade-deleted with their task")
}
