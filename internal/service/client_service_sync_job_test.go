package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-delta-sync/internal/logger"
)

// countingCoordinator counts SyncAll invocations.
type countingCoordinator struct {
	calls atomic.Int64
	err   error
}

func (c *countingCoordinator) SyncAll(context.Context) error {
	c.calls.Add(1)
	return c.err
}

func TestClientSyncJob_RunsOnTicker(t *testing.T) {
	coordinator := &countingCoordinator{}
	job := NewClientSyncJob(coordinator, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	defer job.Stop()

	require.Eventually(t, func() bool {
		return coordinator.calls.Load() >= 2
	}, time.Second, 5*time.Millisecond, "expected at least two scheduled sessions")
}

func TestClientSyncJob_StopTerminatesJob(t *testing.T) {
	coordinator := &countingCoordinator{}
	job := NewClientSyncJob(coordinator, logger.Nop())

	job.Start(context.Background(), 5*time.Millisecond)
	require.Eventually(t, func() bool {
		return coordinator.calls.Load() >= 1
	}, time.Second, time.Millisecond)

	job.Stop()
	after := coordinator.calls.Load()
	time.Sleep(25 * time.Millisecond)
	assert.Equal(t, after, coordinator.calls.Load(), "job kept running after Stop")
}

func TestClientSyncJob_StopWithoutStart(t *testing.T) {
	job := NewClientSyncJob(&countingCoordinator{}, logger.Nop())
	// must not panic or block
	job.Stop()
}

func TestClientSyncJob_RestartReplacesJob(t *testing.T) {
	coordinator := &countingCoordinator{}
	job := NewClientSyncJob(coordinator, logger.Nop())

	job.Start(context.Background(), time.Hour)
	job.Start(context.Background(), 5*time.Millisecond)
	defer job.Stop()

	require.Eventually(t, func() bool {
		return coordinator.calls.Load() >= 1
	}, time.Second, time.Millisecond, "restarted job should tick with the new interval")
}

func TestClientSyncJob_SessionErrorIsNotFatal(t *testing.T) {
	coordinator := &countingCoordinator{err: ErrFeedUnavailable}
	job := NewClientSyncJob(coordinator, logger.Nop())

	job.Start(context.Background(), 5*time.Millisecond)
	defer job.Stop()

	// failing sessions must not stop the ticker
	require.Eventually(t, func() bool {
		return coordinator.calls.Load() >= 3
	}, time.Second, time.Millisecond)
}
