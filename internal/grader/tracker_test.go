package grader

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/linuxlearn/internal/levels"
	"github.com/abhisek/linuxlearn/internal/progress"
	"github.com/abhisek/linuxlearn/internal/store"
)

type countingCompleter struct {
	calls int
	err   error
}

func (c *countingCompleter) CompleteLevel(context.Context, levels.Level) (bool, error) {
	c.calls++
	return c.err == nil, c.err
}

func levelOne(t *testing.T) levels.Level {
	t.Helper()
	l, err := levels.Get(1)
	require.NoError(t, err)
	return l
}

func TestTracker_SequentialCompletion(t *testing.T) {
	ctx := context.Background()
	l := levelOne(t)
	c := &countingCompleter{}
	tr := NewTracker(l, c)

	idx, _ := tr.Current()
	assert.Equal(t, 0, idx)
	assert.Equal(t, "/home/user", tr.Cwd())

	a, err := tr.Submit(ctx, "whoami")
	require.NoError(t, err)
	assert.False(t, a.Correct)
	assert.Equal(t, "user", a.Output)

	for i, ex := range l.Exercises {
		a, err := tr.Submit(ctx, ex.ExpectedCommand)
		require.NoError(t, err)
		assert.True(t, a.Correct, ex.ExpectedCommand)
		assert.True(t, a.ExerciseCompleted)
		assert.Equal(t, i == len(l.Exercises)-1, a.LevelCompleted)
	}
	assert.True(t, tr.AllCompleted())
	assert.Equal(t, 1, c.calls)

	// Re-submitting after completion never re-triggers.
	last := l.Exercises[len(l.Exercises)-1].ExpectedCommand
	a, err = tr.Submit(ctx, last)
	require.NoError(t, err)
	assert.True(t, a.Correct)
	assert.False(t, a.ExerciseCompleted)
	assert.False(t, a.LevelCompleted)
	assert.Equal(t, 1, c.calls)

	assert.Len(t, tr.History(), len(l.Exercises)+2)
}

func TestTracker_CwdThreaded(t *testing.T) {
	ctx := context.Background()
	tr := NewTracker(levelOne(t), nil)
	_, err := tr.Submit(ctx, "cd documents")
	require.NoError(t, err)
	assert.Equal(t, "/home/user/documents", tr.Cwd())

	a, err := tr.Submit(ctx, "pwd")
	require.NoError(t, err)
	assert.Equal(t, "/home/user/documents", a.Output)
}

func TestTracker_BlankAndClear(t *testing.T) {
	ctx := context.Background()
	tr := NewTracker(levelOne(t), nil)
	a, err := tr.Submit(ctx, "   ")
	require.NoError(t, err)
	assert.Equal(t, Attempt{}, a)
	assert.Empty(t, tr.History())

	_, err = tr.Submit(ctx, "ls")
	require.NoError(t, err)
	require.Len(t, tr.History(), 1)
	_, err = tr.Submit(ctx, "clear")
	require.NoError(t, err)
	assert.Empty(t, tr.History())
}

func TestTracker_PreviouslyCompleted(t *testing.T) {
	ctx := context.Background()
	l := levelOne(t)
	c := &countingCompleter{}
	tr := NewTracker(l, c, PreviouslyCompleted(true))
	for range l.Exercises {
		_, err := tr.UseSolution(ctx)
		require.NoError(t, err)
	}
	assert.True(t, tr.AllCompleted())
	assert.Zero(t, c.calls)
}

func TestTracker_CompleterError(t *testing.T) {
	ctx := context.Background()
	l := levelOne(t)
	boom := errors.New("disk full")
	tr := NewTracker(l, &countingCompleter{err: boom})
	var err error
	for range l.Exercises {
		_, err = tr.UseSolution(ctx)
	}
	require.ErrorIs(t, err, boom)
}

func TestUseSolution_AllLevels(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	svc := progress.NewService(mem, nil)

	for _, l := range levels.All() {
		ok, err := svc.IsUnlocked(ctx, l.ID)
		require.NoError(t, err)
		require.True(t, ok, "level %d", l.ID)

		tr := NewTracker(l, svc)
		for i := range l.Exercises {
			a, err := tr.UseSolution(ctx)
			require.NoError(t, err)
			assert.NotContains(t, a.Output, "command not found", "level %d exercise %d", l.ID, i)
		}
		require.True(t, tr.AllCompleted())
	}

	state, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, state.Completed, 15)
	assert.Equal(t, 1585, state.Points)
	assert.Equal(t, levels.TotalPoints(), state.Points)
}
