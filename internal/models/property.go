package models

import (
	"time"

	"gorm.io/datatypes"
)

type Property struct {
	BaseModel
	UserID          uint            `gorm:"not null;index"`
	Title           string          `gorm:"type:varchar(255);not null"`
	Description     string          `gorm:"type:text"`
	Type            string          `gorm:"type:varchar(50);not null"`
	TransactionType TransactionType `gorm:"type:varchar(20);not null"`
	Price           float64         `gorm:"not null"`
	City            string          `gorm:"type:varchar(100);not null;index"`
	Address         string          `gorm:"type:text"`
	Bedrooms        int
	Bathrooms       int
	Area            float64
	Latitude        *float64
	Longitude       *float64
	Images          datatypes.JSON // ["https://...", ...]
	UpdatedAt       time.Time

	Owner     *User      `gorm:"foreignKey:UserID"`
	Favorites []Favorite `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
}
