package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"immo_backend/internal/cache"
	"immo_backend/internal/logger"
	"immo_backend/internal/metrics"
	"immo_backend/internal/models"
	"immo_backend/internal/repositories"

	"gorm.io/datatypes"
)

const (
	KindFavorite = "favorite"
	KindMessage  = "message"
	KindProperty = "property"
	KindContact  = "contact"

	previewLimit = 50
)

// Emitter превращает доменные события в уведомления.
// Все методы только ставят задачу в очередь и сразу возвращаются: ошибки
// доставки никогда не доходят до вызывающего запроса.
type Emitter struct {
	queue         Submitter
	properties    repositories.PropertyRepository
	notifications repositories.NotificationRepository
	unread        cache.UnreadCounter
	publisher     Publisher
	metrics       *metrics.Metrics
	areaLimit     int
}

type EmitterDeps struct {
	Queue         Submitter
	Properties    repositories.PropertyRepository
	Notifications repositories.NotificationRepository
	Unread        cache.UnreadCounter
	Publisher     Publisher
	Metrics       *metrics.Metrics
	AreaLimit     int
}

func NewEmitter(deps EmitterDeps) *Emitter {
	if deps.Unread == nil {
		deps.Unread = cache.NoopUnreadCounter{}
	}
	if deps.Publisher == nil {
		deps.Publisher = NoopPublisher{}
	}
	if deps.AreaLimit <= 0 {
		deps.AreaLimit = 10
	}
	return &Emitter{
		queue:         deps.Queue,
		properties:    deps.Properties,
		notifications: deps.Notifications,
		unread:        deps.Unread,
		publisher:     deps.Publisher,
		metrics:       deps.Metrics,
		areaLimit:     deps.AreaLimit,
	}
}

// NotifyFavorited - владельцу объявления: кто-то добавил его в избранное
func (e *Emitter) NotifyFavorited(propertyID, actorID uint, actorName string) {
	e.queue.Submit(Job{Kind: KindFavorite, Run: func(ctx context.Context) error {
		property, err := e.properties.FindByID(ctx, propertyID)
		if err != nil {
			return fmt.Errorf("lookup property %d: %w", propertyID, err)
		}
		return e.deliver(ctx, KindFavorite, actorID, &models.Notification{
			UserID:  property.UserID,
			Type:    models.NotificationTypeFavorite,
			Title:   "Nouveau favori",
			Message: fmt.Sprintf("%s a ajouté \"%s\" à ses favoris", actorName, property.Title),
			Data:    payload(map[string]any{"propertyId": propertyID, "userId": actorID}),
		})
	}})
}

// NotifyNewMessage - получателю: новое сообщение с превью
func (e *Emitter) NotifyNewMessage(senderID, receiverID uint, senderName, body string) {
	e.queue.Submit(Job{Kind: KindMessage, Run: func(ctx context.Context) error {
		return e.deliver(ctx, KindMessage, senderID, &models.Notification{
			UserID:  receiverID,
			Type:    models.NotificationTypeMessage,
			Title:   "Nouveau message",
			Message: fmt.Sprintf("%s: %s", senderName, Preview(body)),
			Data:    payload(map[string]any{"userId": senderID, "userName": senderName}),
		})
	}})
}

// NotifyNewPropertyInArea - до areaLimit владельцам других объявлений в том же городе
func (e *Emitter) NotifyNewPropertyInArea(propertyID, ownerID uint, city, title string) {
	e.queue.Submit(Job{Kind: KindProperty, Run: func(ctx context.Context) error {
		recipients, err := e.properties.FindOwnersInCity(ctx, city, propertyID, ownerID, e.areaLimit)
		if err != nil {
			return fmt.Errorf("lookup owners in %q: %w", city, err)
		}

		var errs []error
		for _, userID := range recipients {
			err := e.deliver(ctx, KindProperty, ownerID, &models.Notification{
				UserID:  userID,
				Type:    models.NotificationTypeProperty,
				Title:   "Nouvelle propriété disponible",
				Message: fmt.Sprintf("Une nouvelle propriété \"%s\" est disponible à %s", title, city),
				Data:    payload(map[string]any{"propertyId": propertyID}),
			})
			if err != nil {
				errs = append(errs, fmt.Errorf("recipient %d: %w", userID, err))
			}
		}
		return errors.Join(errs...)
	}})
}

// NotifyContact - владельцу: пользователь интересуется объявлением
func (e *Emitter) NotifyContact(propertyID, actorID uint, actorName string) {
	e.queue.Submit(Job{Kind: KindContact, Run: func(ctx context.Context) error {
		property, err := e.properties.FindByID(ctx, propertyID)
		if err != nil {
			return fmt.Errorf("lookup property %d: %w", propertyID, err)
		}
		return e.deliver(ctx, KindContact, actorID, &models.Notification{
			UserID:  property.UserID,
			Type:    models.NotificationTypeMessage,
			Title:   "Intérêt pour votre propriété",
			Message: fmt.Sprintf("%s est intéressé par \"%s\"", actorName, property.Title),
			Data:    payload(map[string]any{"propertyId": propertyID, "userId": actorID, "userName": actorName}),
		})
	}})
}

// deliver - единственная точка записи уведомлений; здесь же отсекаются
// уведомления самому себе
func (e *Emitter) deliver(ctx context.Context, kind string, actorID uint, n *models.Notification) error {
	if n.UserID == actorID {
		e.metrics.NotificationSkipped(kind)
		logger.Debug("Self-notification suppressed", "kind", kind, "user_id", actorID)
		return nil
	}

	if err := e.notifications.Create(ctx, n); err != nil {
		return fmt.Errorf("create notification for user %d: %w", n.UserID, err)
	}

	if err := e.unread.Invalidate(ctx, n.UserID); err != nil {
		logger.Warn("Failed to invalidate unread counter", "user_id", n.UserID, "error", err.Error())
	}
	if err := e.publisher.Publish(ctx, n); err != nil {
		logger.Warn("Failed to publish notification", "notification_id", n.ID, "kind", kind, "error", err.Error())
	}

	logger.Debug("Notification created", "kind", kind, "user_id", n.UserID, "notification_id", n.ID)
	return nil
}

// Preview обрезает текст до 50 символов (рун) и добавляет "..." если он длиннее
func Preview(body string) string {
	runes := []rune(body)
	if len(runes) <= previewLimit {
		return body
	}
	return string(runes[:previewLimit]) + "..."
}

func payload(v map[string]any) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}
