package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	UserHandler         *UserHandler
	PropertyHandler     *PropertyHandler
	MessageHandler      *MessageHandler
	FavoriteHandler     *FavoriteHandler
	NotificationHandler *NotificationHandler
	HealthHandler       *HealthHandler
}
