package repositories

import (
	"testing"
	"time"

	"immo_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func msg(id, from, to uint, text string, at time.Time) models.Message {
	return models.Message{
		BaseModel:  models.BaseModel{ID: id, CreatedAt: at},
		SenderID:   from,
		ReceiverID: to,
		Message:    text,
	}
}

func TestAggregateConversations_OnePerCounterparty(t *testing.T) {
	t0 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	users := map[uint]*models.User{
		1: {Name: "Amine"},
		2: {Name: "Sarra", Photo: "s.jpg"},
		3: {Name: "Karim"},
	}
	msgs := []models.Message{
		msg(1, 1, 2, "salut", t0),
		msg(2, 2, 1, "bonjour", t0.Add(time.Minute)),
		msg(3, 1, 3, "prix ?", t0.Add(2*time.Minute)),
		msg(4, 2, 3, "hors sujet", t0.Add(3*time.Minute)),
	}

	got := AggregateConversations(1, msgs, users)
	require.Len(t, got, 2)

	assert.Equal(t, uint(3), got[0].OtherUserID, "самый свежий диалог первым")
	assert.Equal(t, "prix ?", got[0].Message)
	assert.Equal(t, uint(2), got[1].OtherUserID)
	assert.Equal(t, "bonjour", got[1].Message)
	assert.Equal(t, "Sarra", got[1].OtherUserName)
	assert.Equal(t, "s.jpg", got[1].OtherUserPhoto)
	assert.Equal(t, uint(2), got[1].ID)
}

func TestAggregateConversations_TieBreakByID(t *testing.T) {
	t0 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	users := map[uint]*models.User{2: {Name: "B"}, 3: {Name: "C"}}
	msgs := []models.Message{
		msg(10, 1, 2, "first", t0),
		msg(11, 2, 1, "second", t0),
		msg(12, 1, 3, "other", t0),
	}

	got := AggregateConversations(1, msgs, users)
	require.Len(t, got, 2)

	// одинаковое время: побеждает больший id как внутри диалога, так и при сортировке
	assert.Equal(t, uint(12), got[0].ID)
	assert.Equal(t, uint(11), got[1].ID)
	assert.Equal(t, "second", got[1].Message)
}

func TestAggregateConversations_Empty(t *testing.T) {
	assert.Empty(t, AggregateConversations(1, nil, nil))
}
