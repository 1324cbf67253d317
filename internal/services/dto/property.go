package dto

import (
	"encoding/json"
	"time"
)

type CreatePropertyRequest struct {
	Title           string   `json:"title" validate:"required,max=255"`
	Description     string   `json:"description"`
	Type            string   `json:"type" validate:"required,is-property-type"`
	TransactionType string   `json:"transactionType" validate:"required,is-transaction-type"`
	Price           float64  `json:"price" validate:"required,gt=0"`
	City            string   `json:"city" validate:"required,max=100"`
	Address         string   `json:"address"`
	Bedrooms        int      `json:"bedrooms" validate:"min=0"`
	Bathrooms       int      `json:"bathrooms" validate:"min=0"`
	Area            float64  `json:"area" validate:"min=0"`
	Latitude        *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude       *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	Images          []string `json:"images" validate:"omitempty,dive,url"`
}

type PropertyResponse struct {
	ID              uint            `json:"id"`
	UserID          uint            `json:"user_id"`
	OwnerName       string          `json:"owner_name,omitempty"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Type            string          `json:"type"`
	TransactionType string          `json:"transaction_type"`
	Price           float64         `json:"price"`
	City            string          `json:"city"`
	Address         string          `json:"address"`
	Bedrooms        int             `json:"bedrooms"`
	Bathrooms       int             `json:"bathrooms"`
	Area            float64         `json:"area"`
	Latitude        *float64        `json:"latitude"`
	Longitude       *float64        `json:"longitude"`
	Images          json.RawMessage `json:"images,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}
