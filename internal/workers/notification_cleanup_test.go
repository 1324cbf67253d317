package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCleaner struct {
	calls   int
	gotAge  time.Duration
	deleted int64
	err     error
}

func (f *fakeCleaner) CleanReadNotifications(_ context.Context, olderThan time.Duration) (int64, error) {
	f.calls++
	f.gotAge = olderThan
	return f.deleted, f.err
}

func TestNotificationCleanupWorker_Run(t *testing.T) {
	cleaner := &fakeCleaner{deleted: 7}
	w := NewNotificationCleanupWorker(cleaner, 90*24*time.Hour, "@daily")

	assert.EqualValues(t, 7, w.Run(context.Background()))
	assert.Equal(t, 1, cleaner.calls)
	assert.Equal(t, 90*24*time.Hour, cleaner.gotAge)
}

func TestNotificationCleanupWorker_RunErrorIsSwallowed(t *testing.T) {
	cleaner := &fakeCleaner{err: errors.New("db down")}
	w := NewNotificationCleanupWorker(cleaner, time.Hour, "@daily")

	assert.Zero(t, w.Run(context.Background()))
}

func TestNotificationCleanupWorker_StartStop(t *testing.T) {
	w := NewNotificationCleanupWorker(&fakeCleaner{}, time.Hour, "@hourly")
	require.NoError(t, w.Start())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	w.Stop(ctx)
}

func TestNotificationCleanupWorker_InvalidSchedule(t *testing.T) {
	w := NewNotificationCleanupWorker(&fakeCleaner{}, time.Hour, "каждый день")
	assert.Error(t, w.Start())
}
