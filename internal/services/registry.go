package services

import (
	"immo_backend/internal/cache"
	"immo_backend/internal/repositories"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	UserService         UserService
	PropertyService     PropertyService
	MessageService      MessageService
	FavoriteService     FavoriteService
	NotificationService NotificationService
}

type ServiceDeps struct {
	Repos             *repositories.Container
	Notifier          Notifier
	Unread            cache.UnreadCounter
	NotificationLimit int
}

func NewServiceContainer(deps ServiceDeps) *ServiceContainer {
	repos := deps.Repos
	return &ServiceContainer{
		UserService:         NewUserService(repos.Users),
		PropertyService:     NewPropertyService(repos.Users, repos.Properties, deps.Notifier),
		MessageService:      NewMessageService(repos.Users, repos.Messages, deps.Notifier),
		FavoriteService:     NewFavoriteService(repos.Users, repos.Properties, repos.Favorites, deps.Notifier),
		NotificationService: NewNotificationService(repos.Notifications, deps.Unread, deps.NotificationLimit),
	}
}
