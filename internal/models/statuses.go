package models

type UserRole string
type TransactionType string
type NotificationType string

const (
	UserRoleVisitor UserRole = "visitor"
	UserRoleBuyer   UserRole = "buyer"
	UserRoleSeller  UserRole = "seller"

	TransactionTypeSale TransactionType = "sale"
	TransactionTypeRent TransactionType = "rent"

	NotificationTypeMessage  NotificationType = "message"
	NotificationTypeFavorite NotificationType = "favorite"
	NotificationTypeProperty NotificationType = "property"
)

// PropertyTypes - допустимые типы объектов недвижимости
var PropertyTypes = []string{"apartment", "villa", "house", "studio", "land", "office", "commercial"}

// IsValid проверяет, что роль входит в {visitor, buyer, seller}
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleVisitor, UserRoleBuyer, UserRoleSeller:
		return true
	default:
		return false
	}
}

func (t TransactionType) IsValid() bool {
	return t == TransactionTypeSale || t == TransactionTypeRent
}
