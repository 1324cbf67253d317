package models

import "time"

type User struct {
	BaseModel
	Name      string   `gorm:"type:varchar(255);not null"`
	Email     string   `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone     string   `gorm:"type:varchar(50)"`
	Photo     string   `gorm:"type:text"`
	Bio       string   `gorm:"type:text"`
	Role      UserRole `gorm:"type:varchar(20);not null;default:'visitor'"`
	UpdatedAt time.Time

	// Relations (ON DELETE CASCADE на стороне зависимых таблиц)
	Properties    []Property     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Favorites     []Favorite     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Notifications []Notification `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	SentMessages  []Message      `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE"`
	InboxMessages []Message      `gorm:"foreignKey:ReceiverID;constraint:OnDelete:CASCADE"`
}

// CanInteract - посетители (visitor) не могут писать сообщения и добавлять в избранное
func (u *User) CanInteract() bool {
	return u.Role != UserRoleVisitor
}
