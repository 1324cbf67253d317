package services

// Notifier - точка выхода доменных событий в подсистему уведомлений.
// Реализации обязаны возвращаться сразу, без ожидания доставки.
type Notifier interface {
	NotifyFavorited(propertyID, actorID uint, actorName string)
	NotifyNewMessage(senderID, receiverID uint, senderName, body string)
	NotifyNewPropertyInArea(propertyID, ownerID uint, city, title string)
	NotifyContact(propertyID, actorID uint, actorName string)
}

// NoopNotifier ничего не отправляет
type NoopNotifier struct{}

func (NoopNotifier) NotifyFavorited(uint, uint, string)                 {}
func (NoopNotifier) NotifyNewMessage(uint, uint, string, string)        {}
func (NoopNotifier) NotifyNewPropertyInArea(uint, uint, string, string) {}
func (NoopNotifier) NotifyContact(uint, uint, string)                   {}
