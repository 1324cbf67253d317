package workers

import (
	"context"
	"fmt"
	"time"

	"immo_backend/internal/logger"

	"github.com/robfig/cron/v3"
)

const cleanupTimeout = 2 * time.Minute

// ReadNotificationCleaner - то, что умеет удалять старые прочитанные уведомления
type ReadNotificationCleaner interface {
	CleanReadNotifications(ctx context.Context, olderThan time.Duration) (int64, error)
}

// NotificationCleanupWorker по расписанию удаляет прочитанные уведомления
// старше срока хранения. Непрочитанные не трогаются.
type NotificationCleanupWorker struct {
	cleaner   ReadNotificationCleaner
	retention time.Duration
	schedule  string
	cron      *cron.Cron
}

func NewNotificationCleanupWorker(cleaner ReadNotificationCleaner, retention time.Duration, schedule string) *NotificationCleanupWorker {
	return &NotificationCleanupWorker{
		cleaner:   cleaner,
		retention: retention,
		schedule:  schedule,
		cron:      cron.New(),
	}
}

// Start регистрирует задачу и запускает планировщик
func (w *NotificationCleanupWorker) Start() error {
	if _, err := w.cron.AddFunc(w.schedule, w.runOnce); err != nil {
		return fmt.Errorf("invalid cleanup schedule %q: %w", w.schedule, err)
	}
	w.cron.Start()
	logger.Info("Notification cleanup worker started", "schedule", w.schedule, "retention", w.retention)
	return nil
}

// Stop ждет завершения текущего запуска или истечения ctx
func (w *NotificationCleanupWorker) Stop(ctx context.Context) {
	select {
	case <-w.cron.Stop().Done():
	case <-ctx.Done():
	}
	logger.Info("Notification cleanup worker stopped")
}

func (w *NotificationCleanupWorker) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
	defer cancel()
	w.Run(ctx)
}

// Run - один проход очистки
func (w *NotificationCleanupWorker) Run(ctx context.Context) int64 {
	deleted, err := w.cleaner.CleanReadNotifications(ctx, w.retention)
	if err != nil {
		logger.WorkerLog("notification-cleanup", "clean_read", err)
		return 0
	}
	if deleted > 0 {
		logger.Info("Old read notifications removed", "count", deleted)
	}
	return deleted
}
