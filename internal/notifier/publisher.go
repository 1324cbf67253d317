package notifier

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"immo_backend/internal/models"

	"github.com/segmentio/kafka-go"
)

// Publisher дублирует сохраненные уведомления во внешний поток
// (push-доставка на мобильные клиенты). Ошибка публикации не влияет на запись в БД.
type Publisher interface {
	Publish(ctx context.Context, n *models.Notification) error
	Close() error
}

// Event - формат сообщения в топике
type Event struct {
	ID        uint            `json:"id"`
	UserID    uint            `json:"userId"`
	Type      string          `json:"type"`
	Title     string          `json:"title"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

func NewEvent(n *models.Notification) Event {
	ev := Event{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		CreatedAt: n.CreatedAt,
	}
	if len(n.Data) > 0 {
		ev.Data = json.RawMessage(n.Data)
	}
	return ev
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 50 * time.Millisecond,
		},
	}
}

// Publish - ключ сообщения = id получателя, чтобы события одного пользователя шли по порядку
func (p *KafkaPublisher) Publish(ctx context.Context, n *models.Notification) error {
	payload, err := json.Marshal(NewEvent(n))
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(n.UserID), 10)),
		Value: payload,
		Time:  time.Now(),
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, *models.Notification) error { return nil }
func (NoopPublisher) Close() error                                        { return nil }
