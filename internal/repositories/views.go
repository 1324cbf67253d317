package repositories

import (
	"time"

	"gorm.io/datatypes"
)

// MessageView - сообщение треда с именами участников
type MessageView struct {
	ID           uint
	SenderID     uint
	ReceiverID   uint
	Message      string
	IsRead       bool
	CreatedAt    time.Time
	SenderName   string
	ReceiverName string
}

// ConversationView - последнее сообщение с конкретным собеседником
type ConversationView struct {
	ID             uint // id последнего сообщения
	OtherUserID    uint
	OtherUserName  string
	OtherUserPhoto string
	Message        string
	CreatedAt      time.Time
	IsRead         bool
}

// FavoriteView - избранное вместе с объявлением и именем владельца
type FavoriteView struct {
	ID              uint
	PropertyID      uint
	CreatedAt       time.Time
	Title           string
	Type            string
	TransactionType string
	Price           float64
	City            string
	Images          datatypes.JSON
	OwnerID         uint
	OwnerName       string
}
