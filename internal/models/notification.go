package models

import (
	"gorm.io/datatypes"
)

type Notification struct {
	BaseModel
	UserID  uint             `gorm:"not null;index"`
	Type    NotificationType `gorm:"type:varchar(50);not null"` // "message", "favorite", "property"
	Title   string           `gorm:"type:varchar(255);not null"`
	Message string           `gorm:"type:text"`
	Data    datatypes.JSON   // {"propertyId": 1, "userId": 2}
	IsRead  bool             `gorm:"not null;default:false;index"`
}
