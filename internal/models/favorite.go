package models

// Favorite - пара (user, property), уникальна на уровне БД
type Favorite struct {
	BaseModel
	UserID     uint `gorm:"not null;uniqueIndex:idx_favorites_user_property"`
	PropertyID uint `gorm:"not null;uniqueIndex:idx_favorites_user_property;index"`

	Property *Property `gorm:"foreignKey:PropertyID"`
}
