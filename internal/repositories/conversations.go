package repositories

import (
	"sort"

	"immo_backend/internal/models"
)

// AggregateConversations сворачивает сообщения пользователя до одного
// (последнего) сообщения на собеседника. Последнее - максимальный created_at,
// при равенстве - больший id. Результат отсортирован от нового к старому
// по тому же ключу. Собеседники, отсутствующие в users, пропускаются.
func AggregateConversations(userID uint, msgs []models.Message, users map[uint]*models.User) []ConversationView {
	latest := make(map[uint]*models.Message)
	for i := range msgs {
		m := &msgs[i]
		if m.SenderID != userID && m.ReceiverID != userID {
			continue
		}
		other := m.Counterparty(userID)
		if cur, ok := latest[other]; !ok || newer(m, cur) {
			latest[other] = m
		}
	}

	out := make([]ConversationView, 0, len(latest))
	for other, m := range latest {
		u, ok := users[other]
		if !ok {
			continue
		}
		out = append(out, ConversationView{
			ID:             m.ID,
			OtherUserID:    other,
			OtherUserName:  u.Name,
			OtherUserPhoto: u.Photo,
			Message:        m.Message,
			CreatedAt:      m.CreatedAt,
			IsRead:         m.IsRead,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func newer(a, b *models.Message) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}
