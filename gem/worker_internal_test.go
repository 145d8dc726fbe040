package gem

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gemdet/matrix"
)

// TestAssignBusyWorkerIsProtocolViolation pins the Busy state so the check is
// deterministic, independent of how fast the goroutine finishes.
func TestAssignBusyWorkerIsProtocolViolation(t *testing.T) {
	w, err := NewWorker(1, 2, 1)
	require.NoError(t, err)
	defer func() { require.NoError(t, w.Close(context.Background())) }()

	r, err := matrix.NewRow(1)
	require.NoError(t, err)

	w.state.Store(int32(StateBusy))
	require.False(t, w.IsFinished())
	require.ErrorIs(t, w.Assign(r, r, decimal.Zero), ErrProtocolViolation)

	w.state.Store(int32(StateIdle))
	require.NoError(t, w.Assign(r, r, decimal.Zero))
	require.NoError(t, w.Wait())
}

func TestClampThreads(t *testing.T) {
	require.Equal(t, 1, clampThreads(5, 0))
	require.Equal(t, 3, clampThreads(8, 3))
	require.Equal(t, 2, clampThreads(2, 3))
	require.Equal(t, 1, clampThreads(-4, 1))
	require.GreaterOrEqual(t, clampThreads(0, 1<<20), 1)
}

// TestShutdownFailsQueuedTask covers a task still in the channel when the
// stop signal is handled.
func TestShutdownFailsQueuedTask(t *testing.T) {
	w := &Worker{index: 1, threads: 2, width: 1, tasks: make(chan task, 1)}
	w.state.Store(int32(StateBusy))
	w.pending.Add(1)
	w.tasks <- task{}

	w.shutdown()
	require.ErrorIs(t, w.Wait(), ErrWorkerStopped)
	require.Equal(t, StateStopped, w.State())
}
