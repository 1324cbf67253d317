package memory

import (
	"context"
	"sort"
	"time"

	"immo_backend/internal/models"
	"immo_backend/internal/repositories"
)

type NotificationRepository struct{ s *Store }

func (r *NotificationRepository) Create(_ context.Context, notification *models.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[notification.UserID]; !ok {
		return repositories.ErrUserNotFound
	}
	r.s.stamp(&notification.BaseModel)
	cp := *notification
	r.s.notifications[notification.ID] = &cp
	return nil
}

func (r *NotificationRepository) ListByUser(_ context.Context, userID uint, limit int) ([]models.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []models.Notification
	for _, n := range r.s.notifications {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *NotificationRepository) CountUnread(_ context.Context, userID uint) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var count int64
	for _, n := range r.s.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *NotificationRepository) MarkRead(_ context.Context, userID, notificationID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if n, ok := r.s.notifications[notificationID]; ok && n.UserID == userID {
		n.IsRead = true
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(_ context.Context, userID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, n := range r.s.notifications {
		if n.UserID == userID {
			n.IsRead = true
		}
	}
	return nil
}

func (r *NotificationRepository) Delete(_ context.Context, userID, notificationID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if n, ok := r.s.notifications[notificationID]; ok && n.UserID == userID {
		delete(r.s.notifications, notificationID)
	}
	return nil
}

func (r *NotificationRepository) DeleteAll(_ context.Context, userID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, n := range r.s.notifications {
		if n.UserID == userID {
			delete(r.s.notifications, id)
		}
	}
	return nil
}

func (r *NotificationRepository) DeleteReadOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, nt := range r.s.notifications {
		if nt.IsRead && nt.CreatedAt.Before(cutoff) {
			delete(r.s.notifications, id)
			n++
		}
	}
	return n, nil
}
