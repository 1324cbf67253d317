package notifier

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"immo_backend/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flush(t *testing.T, d *Dispatcher) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, d.Flush(ctx))
}

func TestDispatcher_RunsJobs(t *testing.T) {
	m := metrics.New()
	d := NewDispatcher(DispatcherOptions{QueueSize: 8, Workers: 2, Metrics: m})
	defer d.Close(context.Background())

	var ran atomic.Int32
	for i := 0; i < 5; i++ {
		require.True(t, d.Submit(Job{Kind: KindMessage, Run: func(context.Context) error {
			ran.Add(1)
			return nil
		}}))
	}
	flush(t, d)

	assert.Equal(t, int32(5), ran.Load())
	assert.Equal(t, 5.0, testutil.ToFloat64(m.NotificationsEnqueued.WithLabelValues(KindMessage)))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.NotificationsDelivered.WithLabelValues(KindMessage)))
}

func TestDispatcher_DropsWhenFullWithoutBlocking(t *testing.T) {
	m := metrics.New()
	d := NewDispatcher(DispatcherOptions{QueueSize: 1, Workers: 1, Metrics: m})

	release := make(chan struct{})
	started := make(chan struct{})
	blocker := Job{Kind: KindProperty, Run: func(context.Context) error {
		close(started)
		<-release
		return nil
	}}
	require.True(t, d.Submit(blocker))
	<-started

	// воркер занят, в очереди одно место
	require.True(t, d.Submit(Job{Kind: KindProperty, Run: func(context.Context) error { return nil }}))

	done := make(chan bool)
	go func() { done <- d.Submit(Job{Kind: KindProperty, Run: func(context.Context) error { return nil }}) }()

	select {
	case accepted := <-done:
		assert.False(t, accepted, "задача сверх лимита должна быть отброшена")
	case <-time.After(time.Second):
		t.Fatal("Submit заблокировался на полной очереди")
	}

	close(release)
	require.NoError(t, d.Close(context.Background()))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationsDropped.WithLabelValues(KindProperty)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.NotificationsDelivered.WithLabelValues(KindProperty)))
}

func TestDispatcher_CountsFailuresAndPanics(t *testing.T) {
	m := metrics.New()
	d := NewDispatcher(DispatcherOptions{QueueSize: 4, Workers: 1, Metrics: m})
	defer d.Close(context.Background())

	d.Submit(Job{Kind: KindFavorite, Run: func(context.Context) error { return errors.New("db down") }})
	d.Submit(Job{Kind: KindFavorite, Run: func(context.Context) error { panic("boom") }})
	d.Submit(Job{Kind: KindFavorite, Run: func(context.Context) error { return nil }})
	flush(t, d)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.NotificationsFailed.WithLabelValues(KindFavorite)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationsDelivered.WithLabelValues(KindFavorite)))
}

func TestDispatcher_JobContextHasTimeout(t *testing.T) {
	d := NewDispatcher(DispatcherOptions{QueueSize: 1, Workers: 1, JobTimeout: 20 * time.Millisecond})
	defer d.Close(context.Background())

	errCh := make(chan error, 1)
	d.Submit(Job{Kind: KindMessage, Run: func(ctx context.Context) error {
		<-ctx.Done()
		errCh <- ctx.Err()
		return ctx.Err()
	}})

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	case <-time.After(time.Second):
		t.Fatal("job context never expired")
	}
}

func TestDispatcher_SubmitAfterClose(t *testing.T) {
	m := metrics.New()
	d := NewDispatcher(DispatcherOptions{QueueSize: 1, Workers: 1, Metrics: m})
	require.NoError(t, d.Close(context.Background()))
	require.NoError(t, d.Close(context.Background()), "повторный Close безопасен")

	assert.False(t, d.Submit(Job{Kind: KindContact, Run: func(context.Context) error { return nil }}))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationsDropped.WithLabelValues(KindContact)))
}
