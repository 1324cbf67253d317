package dto

import (
	"encoding/json"
	"time"
)

type NotificationResponse struct {
	ID        uint            `json:"id"`
	UserID    uint            `json:"user_id"`
	Type      string          `json:"type"`
	Title     string          `json:"title"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data,omitempty"`
	IsRead    bool            `json:"is_read"`
	CreatedAt time.Time       `json:"created_at"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
