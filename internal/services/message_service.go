package services

import (
	"context"
	"errors"

	"immo_backend/internal/logger"
	"immo_backend/internal/models"
	"immo_backend/internal/repositories"
	"immo_backend/internal/services/dto"
	"immo_backend/pkg/apperrors"
)

type MessageService interface {
	ListConversations(ctx context.Context, userID uint) ([]dto.ConversationResponse, error)
	GetThread(ctx context.Context, userID, otherUserID uint) ([]dto.MessageResponse, error)
	SendMessage(ctx context.Context, senderID uint, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	DeleteMessage(ctx context.Context, userID, messageID uint) error
}

type messageService struct {
	users    repositories.UserRepository
	messages repositories.MessageRepository
	notifier Notifier
}

func NewMessageService(users repositories.UserRepository, messages repositories.MessageRepository, notifier Notifier) MessageService {
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	return &messageService{users: users, messages: messages, notifier: notifier}
}

func (s *messageService) ListConversations(ctx context.Context, userID uint) ([]dto.ConversationResponse, error) {
	views, err := s.messages.FindConversations(ctx, userID)
	if err != nil {
		return nil, handleRepoError(err)
	}
	out := make([]dto.ConversationResponse, 0, len(views))
	for _, v := range views {
		out = append(out, dto.ConversationResponse{
			ID:             v.ID,
			OtherUserID:    v.OtherUserID,
			OtherUserName:  v.OtherUserName,
			OtherUserPhoto: v.OtherUserPhoto,
			Message:        v.Message,
			CreatedAt:      v.CreatedAt,
			IsRead:         v.IsRead,
		})
	}
	return out, nil
}

// GetThread возвращает переписку по возрастанию времени и помечает
// прочитанными только входящие сообщения от собеседника.
func (s *messageService) GetThread(ctx context.Context, userID, otherUserID uint) ([]dto.MessageResponse, error) {
	views, err := s.messages.FindThread(ctx, userID, otherUserID)
	if err != nil {
		return nil, handleRepoError(err)
	}

	marked, err := s.messages.MarkThreadRead(ctx, userID, otherUserID)
	if err != nil {
		return nil, handleRepoError(err)
	}
	if marked > 0 {
		logger.CtxDebug(ctx, "Thread marked as read", "other_user_id", otherUserID, "count", marked)
	}

	out := make([]dto.MessageResponse, 0, len(views))
	for _, v := range views {
		out = append(out, dto.MessageResponse{
			ID:           v.ID,
			SenderID:     v.SenderID,
			ReceiverID:   v.ReceiverID,
			Message:      v.Message,
			IsRead:       v.IsRead,
			CreatedAt:    v.CreatedAt,
			SenderName:   v.SenderName,
			ReceiverName: v.ReceiverName,
		})
	}
	return out, nil
}

func (s *messageService) SendMessage(ctx context.Context, senderID uint, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	sender, err := requireActiveUser(ctx, s.users, senderID, apperrors.ErrVisitorCannotMessage)
	if err != nil {
		return nil, err
	}
	if req.ReceiverID == senderID {
		return nil, apperrors.ErrSelfMessage
	}
	if _, err := s.users.FindByID(ctx, req.ReceiverID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrReceiverNotFound
		}
		return nil, handleRepoError(err)
	}

	msg := &models.Message{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Message:    req.Message,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, handleRepoError(err)
	}

	// Уведомление после записи: результат доставки на ответ не влияет
	s.notifier.NotifyNewMessage(senderID, req.ReceiverID, sender.Name, req.Message)

	logger.CtxInfo(ctx, "Message sent", "message_id", msg.ID, "receiver_id", req.ReceiverID)
	return &dto.SendMessageResponse{Message: "Message sent successfully", MessageID: msg.ID}, nil
}

func (s *messageService) DeleteMessage(ctx context.Context, userID, messageID uint) error {
	msg, err := s.messages.FindByID(ctx, messageID)
	if err != nil {
		return handleRepoError(err)
	}
	if msg.SenderID != userID {
		return apperrors.ErrNotMessageSender
	}
	if err := s.messages.Delete(ctx, messageID); err != nil {
		return handleRepoError(err)
	}
	return nil
}
