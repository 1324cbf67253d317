package models

// Message - направленное ребро sender -> receiver.
// После создания меняется только IsRead.
type Message struct {
	BaseModel
	SenderID   uint   `gorm:"not null;index"`
	ReceiverID uint   `gorm:"not null;index"`
	Message    string `gorm:"type:text;not null"`
	IsRead     bool   `gorm:"not null;default:false"`

	Sender   *User `gorm:"foreignKey:SenderID"`
	Receiver *User `gorm:"foreignKey:ReceiverID"`
}

// Counterparty возвращает собеседника для userID
func (m *Message) Counterparty(userID uint) uint {
	if m.SenderID == userID {
		return m.ReceiverID
	}
	return m.SenderID
}
