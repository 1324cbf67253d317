package repositories

import "gorm.io/gorm"

// Container содержит все репозитории приложения
type Container struct {
	Users         UserRepository
	Properties    PropertyRepository
	Messages      MessageRepository
	Favorites     FavoriteRepository
	Notifications NotificationRepository
}

// NewGormContainer собирает репозитории поверх одного пула GORM
func NewGormContainer(db *gorm.DB) *Container {
	return &Container{
		Users:         NewUserRepository(db),
		Properties:    NewPropertyRepository(db),
		Messages:      NewMessageRepository(db),
		Favorites:     NewFavoriteRepository(db),
		Notifications: NewNotificationRepository(db),
	}
}
