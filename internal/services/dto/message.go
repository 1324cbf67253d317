package dto

import "time"

type SendMessageRequest struct {
	ReceiverID uint   `json:"receiverId" validate:"required"`
	Message    string `json:"message" validate:"required,max=5000"`
}

type SendMessageResponse struct {
	Message   string `json:"message"`
	MessageID uint   `json:"messageId"`
}

type MessageResponse struct {
	ID           uint      `json:"id"`
	SenderID     uint      `json:"sender_id"`
	ReceiverID   uint      `json:"receiver_id"`
	Message      string    `json:"message"`
	IsRead       bool      `json:"is_read"`
	CreatedAt    time.Time `json:"created_at"`
	SenderName   string    `json:"sender_name"`
	ReceiverName string    `json:"receiver_name"`
}

type ConversationResponse struct {
	ID             uint      `json:"id"`
	OtherUserID    uint      `json:"other_user_id"`
	OtherUserName  string    `json:"other_user_name"`
	OtherUserPhoto string    `json:"other_user_photo"`
	Message        string    `json:"message"`
	CreatedAt      time.Time `json:"created_at"`
	IsRead         bool      `json:"is_read"`
}
