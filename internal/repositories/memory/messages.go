package memory

import (
	"context"

	"immo_backend/internal/models"
	"immo_backend/internal/repositories"
)

type MessageRepository struct{ s *Store }

func (r *MessageRepository) Create(_ context.Context, message *models.Message) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[message.SenderID]; !ok {
		return repositories.ErrUserNotFound
	}
	if _, ok := r.s.users[message.ReceiverID]; !ok {
		return repositories.ErrUserNotFound
	}
	r.s.stamp(&message.BaseModel)
	cp := *message
	r.s.messages[message.ID] = &cp
	return nil
}

func (r *MessageRepository) FindByID(_ context.Context, id uint) (*models.Message, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	m, ok := r.s.messages[id]
	if !ok {
		return nil, repositories.ErrMessageNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *MessageRepository) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.messages[id]; !ok {
		return repositories.ErrMessageNotFound
	}
	delete(r.s.messages, id)
	return nil
}

func (r *MessageRepository) FindThread(_ context.Context, userID, otherUserID uint) ([]repositories.MessageView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var thread []repositories.MessageView
	for _, m := range r.s.messageList() {
		between := (m.SenderID == userID && m.ReceiverID == otherUserID) ||
			(m.SenderID == otherUserID && m.ReceiverID == userID)
		if !between {
			continue
		}
		sender, okS := r.s.users[m.SenderID]
		receiver, okR := r.s.users[m.ReceiverID]
		if !okS || !okR {
			continue
		}
		thread = append(thread, repositories.MessageView{
			ID:           m.ID,
			SenderID:     m.SenderID,
			ReceiverID:   m.ReceiverID,
			Message:      m.Message,
			IsRead:       m.IsRead,
			CreatedAt:    m.CreatedAt,
			SenderName:   sender.Name,
			ReceiverName: receiver.Name,
		})
	}
	sortThread(thread)
	return thread, nil
}

func (r *MessageRepository) MarkThreadRead(_ context.Context, readerID, otherUserID uint) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, m := range r.s.messages {
		if m.SenderID == otherUserID && m.ReceiverID == readerID && !m.IsRead {
			m.IsRead = true
			n++
		}
	}
	return n, nil
}

func (r *MessageRepository) FindConversations(_ context.Context, userID uint) ([]repositories.ConversationView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return repositories.AggregateConversations(userID, r.s.messageList(), r.s.users), nil
}
