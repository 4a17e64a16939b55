package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueue_RejectsConcurrentCommand(t *testing.T) {
	q := NewQueue()
	require.NoError(t, q.Begin())
	require.ErrorIs(t, q.Begin(), ErrQueueBusy)
}

func TestQueue_PauseResumeFinish(t *testing.T) {
	q := NewQueue()
	require.NoError(t, q.Begin())

	require.NoError(t, q.Pause(PausedCommand{Command: "find", Args: []string{"algorithms"}, Candidates: []string{"CS 5800", "CS 4820"}}))
	require.Equal(t, AwaitingDisambiguation, q.State())

	// A new command is still rejected while awaiting disambiguation.
	require.ErrorIs(t, q.Begin(), ErrQueueBusy)

	cmd, err := q.Resume()
	require.NoError(t, err)
	require.Equal(t, "find", cmd.Command)
	require.NotEmpty(t, cmd.CorrelationID)
	require.Equal(t, Busy, q.State())

	require.NoError(t, q.Finish())
	require.Equal(t, Idle, q.State())
}

func TestQueue_ResumeWithoutPauseFails(t *testing.T) {
	q := NewQueue()
	require.NoError(t, q.Begin())
	_, err := q.Resume()
	require.ErrorIs(t, err, ErrNotAwaitingDisambiguation)
}

func TestManager_IndependentPerUser(t *testing.T) {
	m := NewManager()
	a := m.Queue("alice")
	b := m.Queue("bob")

	require.NoError(t, a.Begin())
	require.NoError(t, b.Begin(), "a different user's queue must not be blocked")
	require.NotSame(t, a, b)
	require.Same(t, a, m.Queue("alice"))
}
