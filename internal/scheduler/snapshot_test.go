package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotScheduler_StartStop(t *testing.T) {
	s := NewSnapshotScheduler(nil, "0 * * * *")

	require.NoError(t, s.Start(context.Background()))
	assert.True(t, s.isRunning)

	// Starting twice is a no-op
	require.NoError(t, s.Start(context.Background()))

	s.Stop()
	assert.False(t, s.isRunning)

	// Stopping twice is safe
	s.Stop()
}

func TestSnapshotScheduler_InvalidSchedule(t *testing.T) {
	s := NewSnapshotScheduler(nil, "not a schedule")

	err := s.Start(context.Background())
	assert.Error(t, err)
	assert.False(t, s.isRunning)
}

func TestSnapshotScheduler_ContextCancelStops(t *testing.T) {
	s := NewSnapshotScheduler(nil, "0 * * * *")

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.Start(ctx))

	cancel()

	// Stop is idempotent, so a direct call after cancellation is fine and
	// guarantees the scheduler is down before asserting.
	s.Stop()
	assert.False(t, s.isRunning)
}
