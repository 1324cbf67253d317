package dto

import (
	"encoding/json"
	"time"
)

type AddFavoriteRequest struct {
	PropertyID uint `json:"propertyId" validate:"required"`
}

type FavoriteResponse struct {
	ID              uint            `json:"id"` // id объявления
	FavoriteID      uint            `json:"favorite_id"`
	Title           string          `json:"title"`
	Type            string          `json:"type"`
	TransactionType string          `json:"transaction_type"`
	Price           float64         `json:"price"`
	City            string          `json:"city"`
	Images          json.RawMessage `json:"images,omitempty"`
	UserID          uint            `json:"user_id"`
	OwnerName       string          `json:"owner_name"`
	FavoritedAt     time.Time       `json:"favorited_at"`
}

type FavoriteCheckResponse struct {
	IsFavorite bool `json:"isFavorite"`
}
