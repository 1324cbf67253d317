package services

import (
	"context"
	"time"

	"immo_backend/internal/cache"
	"immo_backend/internal/logger"
	"immo_backend/internal/repositories"
	"immo_backend/internal/services/dto"
)

const defaultNotificationLimit = 50

type NotificationService interface {
	ListNotifications(ctx context.Context, userID uint) ([]dto.NotificationResponse, error)
	GetUnreadCount(ctx context.Context, userID uint) (int64, error)
	MarkAsRead(ctx context.Context, userID, notificationID uint) error
	MarkAllAsRead(ctx context.Context, userID uint) error
	DeleteNotification(ctx context.Context, userID, notificationID uint) error
	DeleteAllNotifications(ctx context.Context, userID uint) error
	CleanReadNotifications(ctx context.Context, olderThan time.Duration) (int64, error)
}

type notificationService struct {
	notifications repositories.NotificationRepository
	unread        cache.UnreadCounter
	limit         int
	now           func() time.Time
}

func NewNotificationService(notifications repositories.NotificationRepository, unread cache.UnreadCounter, limit int) NotificationService {
	if unread == nil {
		unread = cache.NoopUnreadCounter{}
	}
	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	return &notificationService{
		notifications: notifications,
		unread:        unread,
		limit:         limit,
		now:           time.Now,
	}
}

// ---------------- Чтение ----------------

func (s *notificationService) ListNotifications(ctx context.Context, userID uint) ([]dto.NotificationResponse, error) {
	items, err := s.notifications.ListByUser(ctx, userID, s.limit)
	if err != nil {
		return nil, handleRepoError(err)
	}
	out := make([]dto.NotificationResponse, 0, len(items))
	for _, n := range items {
		out = append(out, dto.NotificationResponse{
			ID:        n.ID,
			UserID:    n.UserID,
			Type:      string(n.Type),
			Title:     n.Title,
			Message:   n.Message,
			Data:      rawJSON(n.Data),
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}
	return out, nil
}

// GetUnreadCount читает счетчик из кэша, при промахе считает в базе.
// Недоступный кэш не ломает запрос.
func (s *notificationService) GetUnreadCount(ctx context.Context, userID uint) (int64, error) {
	count, ok, err := s.unread.Get(ctx, userID)
	if err != nil {
		logger.CtxWarn(ctx, "Unread cache read failed", "error", err)
	} else if ok {
		return count, nil
	}

	count, err = s.notifications.CountUnread(ctx, userID)
	if err != nil {
		return 0, handleRepoError(err)
	}
	if err := s.unread.Set(ctx, userID, count); err != nil {
		logger.CtxWarn(ctx, "Unread cache write failed", "error", err)
	}
	return count, nil
}

// ---------------- Изменение ----------------

func (s *notificationService) MarkAsRead(ctx context.Context, userID, notificationID uint) error {
	if err := s.notifications.MarkRead(ctx, userID, notificationID); err != nil {
		return handleRepoError(err)
	}
	s.invalidate(ctx, userID)
	return nil
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, userID uint) error {
	if err := s.notifications.MarkAllRead(ctx, userID); err != nil {
		return handleRepoError(err)
	}
	s.invalidate(ctx, userID)
	return nil
}

func (s *notificationService) DeleteNotification(ctx context.Context, userID, notificationID uint) error {
	if err := s.notifications.Delete(ctx, userID, notificationID); err != nil {
		return handleRepoError(err)
	}
	s.invalidate(ctx, userID)
	return nil
}

func (s *notificationService) DeleteAllNotifications(ctx context.Context, userID uint) error {
	if err := s.notifications.DeleteAll(ctx, userID); err != nil {
		return handleRepoError(err)
	}
	s.invalidate(ctx, userID)
	return nil
}

// CleanReadNotifications удаляет прочитанные уведомления старше olderThan.
// Счетчики непрочитанных при этом не меняются.
func (s *notificationService) CleanReadNotifications(ctx context.Context, olderThan time.Duration) (int64, error) {
	deleted, err := s.notifications.DeleteReadOlderThan(ctx, s.now().Add(-olderThan))
	if err != nil {
		return 0, handleRepoError(err)
	}
	return deleted, nil
}

func (s *notificationService) invalidate(ctx context.Context, userID uint) {
	if err := s.unread.Invalidate(ctx, userID); err != nil {
		logger.CtxWarn(ctx, "Unread cache invalidation failed", "error", err)
	}
}
