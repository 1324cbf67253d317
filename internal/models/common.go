package models

import "time"

// BaseModel - общий набор колонок для всех таблиц (SERIAL id + время создания)
type BaseModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `gorm:"not null;index"`
}
