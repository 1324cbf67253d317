package repositories

import (
	"context"
	"errors"

	"immo_backend/internal/models"

	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	FindByID(ctx context.Context, id uint) (*models.Message, error)
	Delete(ctx context.Context, id uint) error
	// FindThread - переписка двух пользователей по возрастанию времени
	FindThread(ctx context.Context, userID, otherUserID uint) ([]MessageView, error)
	// MarkThreadRead помечает прочитанными только сообщения other -> reader
	MarkThreadRead(ctx context.Context, readerID, otherUserID uint) (int64, error)
	FindConversations(ctx context.Context, userID uint) ([]ConversationView, error)
}

type MessageRepositoryImpl struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &MessageRepositoryImpl{db: db}
}

func (r *MessageRepositoryImpl) Create(ctx context.Context, message *models.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *MessageRepositoryImpl) FindByID(ctx context.Context, id uint) (*models.Message, error) {
	var message models.Message
	err := r.db.WithContext(ctx).First(&message, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return &message, nil
}

func (r *MessageRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Message{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}

func (r *MessageRepositoryImpl) FindThread(ctx context.Context, userID, otherUserID uint) ([]MessageView, error) {
	var thread []MessageView
	err := r.db.WithContext(ctx).
		Table("messages m").
		Select("m.id, m.sender_id, m.receiver_id, m.message, m.is_read, m.created_at, " +
			"s.name AS sender_name, rc.name AS receiver_name").
		Joins("JOIN users s ON s.id = m.sender_id").
		Joins("JOIN users rc ON rc.id = m.receiver_id").
		Where("(m.sender_id = ? AND m.receiver_id = ?) OR (m.sender_id = ? AND m.receiver_id = ?)",
			userID, otherUserID, otherUserID, userID).
		Order("m.created_at ASC, m.id ASC").
		Scan(&thread).Error
	return thread, err
}

func (r *MessageRepositoryImpl) MarkThreadRead(ctx context.Context, readerID, otherUserID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND is_read = ?", otherUserID, readerID, false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}

// conversationsQuery - одно (последнее) сообщение на собеседника.
// ROW_NUMBER поддерживается и PostgreSQL, и MySQL 8.
const conversationsQuery = `
SELECT c.id, c.other_user_id, u.name AS other_user_name, u.photo AS other_user_photo,
       c.message, c.created_at, c.is_read
FROM (
    SELECT m.id, m.message, m.created_at, m.is_read,
           CASE WHEN m.sender_id = ? THEN m.receiver_id ELSE m.sender_id END AS other_user_id,
           ROW_NUMBER() OVER (
               PARTITION BY CASE WHEN m.sender_id = ? THEN m.receiver_id ELSE m.sender_id END
               ORDER BY m.created_at DESC, m.id DESC
           ) AS rn
    FROM messages m
    WHERE m.sender_id = ? OR m.receiver_id = ?
) c
JOIN users u ON u.id = c.other_user_id
WHERE c.rn = 1
ORDER BY c.created_at DESC, c.id DESC`

func (r *MessageRepositoryImpl) FindConversations(ctx context.Context, userID uint) ([]ConversationView, error) {
	var conversations []ConversationView
	err := r.db.WithContext(ctx).
		Raw(conversationsQuery, userID, userID, userID, userID).
		Scan(&conversations).Error
	return conversations, err
}
