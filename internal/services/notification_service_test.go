package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"immo_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapCounter struct {
	mu     sync.Mutex
	values map[uint]int64
	getErr error
}

func newMapCounter() *mapCounter { return &mapCounter{values: map[uint]int64{}} }

func (c *mapCounter) Get(_ context.Context, userID uint) (int64, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return 0, false, c.getErr
	}
	v, ok := c.values[userID]
	return v, ok, nil
}

func (c *mapCounter) Set(_ context.Context, userID uint, count int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[userID] = count
	return nil
}

func (c *mapCounter) Invalidate(_ context.Context, userID uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, userID)
	return nil
}

func seedNotifications(t *testing.T, e *env, userID uint, n int) []models.Notification {
	t.Helper()
	out := make([]models.Notification, 0, n)
	for i := 0; i < n; i++ {
		note := models.Notification{UserID: userID, Type: models.NotificationTypeMessage, Title: "Nouveau message", Message: "test"}
		require.NoError(t, e.repos.Notifications.Create(context.Background(), &note))
		out = append(out, note)
	}
	return out
}

func TestNotificationService_ListIsCappedAndNewestFirst(t *testing.T) {
	e := newEnv(t)
	u := e.user(t, "Amine", models.UserRoleBuyer)
	seedNotifications(t, e, u.ID, 55)

	list, err := e.services.NotificationService.ListNotifications(context.Background(), u.ID)
	require.NoError(t, err)
	require.Len(t, list, 50)
	assert.Greater(t, list[0].ID, list[49].ID)
}

func TestNotificationService_UnreadFlow(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	counter := newMapCounter()
	svc := NewNotificationService(e.repos.Notifications, counter, 0)

	u := e.user(t, "Amine", models.UserRoleBuyer)
	other := e.user(t, "Sarra", models.UserRoleSeller)
	notes := seedNotifications(t, e, u.ID, 3)
	foreign := seedNotifications(t, e, other.ID, 1)

	count, err := svc.GetUnreadCount(ctx, u.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
	assert.EqualValues(t, 3, counter.values[u.ID], "счетчик закэширован")

	require.NoError(t, svc.MarkAsRead(ctx, u.ID, notes[0].ID))
	_, cached := counter.values[u.ID]
	assert.False(t, cached, "кэш сброшен после изменения")

	count, err = svc.GetUnreadCount(ctx, u.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	// чужое уведомление не меняется и ошибки нет
	require.NoError(t, svc.MarkAsRead(ctx, u.ID, foreign[0].ID))
	require.NoError(t, svc.DeleteNotification(ctx, u.ID, foreign[0].ID))
	otherCount, err := svc.GetUnreadCount(ctx, other.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, otherCount)

	require.NoError(t, svc.MarkAllAsRead(ctx, u.ID))
	count, err = svc.GetUnreadCount(ctx, u.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, svc.DeleteNotification(ctx, u.ID, notes[1].ID))
	list, err := svc.ListNotifications(ctx, u.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, svc.DeleteAllNotifications(ctx, u.ID))
	list, err = svc.ListNotifications(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Len(t, e.notificationsFor(other.ID), 1)
}

func TestNotificationService_CacheFailureFallsBackToStore(t *testing.T) {
	e := newEnv(t)
	counter := newMapCounter()
	counter.getErr = errors.New("redis down")
	svc := NewNotificationService(e.repos.Notifications, counter, 0)

	u := e.user(t, "Amine", models.UserRoleBuyer)
	seedNotifications(t, e, u.ID, 2)

	count, err := svc.GetUnreadCount(context.Background(), u.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestNotificationService_CleanReadNotifications(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u := e.user(t, "Amine", models.UserRoleBuyer)

	old := time.Now().Add(-100 * 24 * time.Hour)
	e.store.Now = func() time.Time { return old }
	stale := seedNotifications(t, e, u.ID, 2)
	e.store.Now = time.Now
	fresh := seedNotifications(t, e, u.ID, 1)

	svc := e.services.NotificationService
	require.NoError(t, svc.MarkAsRead(ctx, u.ID, stale[0].ID))
	require.NoError(t, svc.MarkAsRead(ctx, u.ID, fresh[0].ID))

	deleted, err := svc.CleanReadNotifications(ctx, 90*24*time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted, "только старое прочитанное")

	remaining := e.notificationsFor(u.ID)
	require.Len(t, remaining, 2)
	assert.Equal(t, stale[1].ID, remaining[0].ID)
	assert.Equal(t, fresh[0].ID, remaining[1].ID)
}
