package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные переменные для доменных ошибок.
Таксономия: 400 - невалидный ввод, 403 - роль или владение,
404 - сущность не найдена, всё остальное - 500.
*/

// ErrNotFound - фабрика для ошибки "не найдено" (404).
// Используется, когда ошибка репозитория (типа gorm.ErrRecordNotFound)
// должна быть преобразована в AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Users ---

var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

var ErrEmptyProfileUpdate = New(
	CodeValidationFailed,
	"user",
	"No fields to update",
	http.StatusBadRequest,
)

// --- Messages ---

// ErrVisitorCannotMessage - роль visitor не может отправлять сообщения
var ErrVisitorCannotMessage = New(
	CodeForbidden,
	"message",
	"Les visiteurs ne peuvent pas envoyer de messages. Veuillez passer au rôle Acheteur ou Vendeur.",
	http.StatusForbidden,
)

var ErrSelfMessage = New(
	CodeInvalidOperation,
	"message",
	"Vous ne pouvez pas vous envoyer un message",
	http.StatusBadRequest,
)

var ErrReceiverNotFound = New(
	CodeNotFound,
	"message",
	"Receiver not found",
	http.StatusNotFound,
)

var ErrMessageNotFound = New(
	CodeNotFound,
	"message",
	"Message not found",
	http.StatusNotFound,
)

// ErrNotMessageSender - удалить сообщение может только отправитель
var ErrNotMessageSender = New(
	CodeForbidden,
	"message",
	"Not authorized",
	http.StatusForbidden,
)

// --- Favorites ---

var ErrVisitorCannotFavorite = New(
	CodeForbidden,
	"favorite",
	"Les visiteurs ne peuvent pas ajouter aux favoris. Passez au rôle Acheteur pour cette fonctionnalité.",
	http.StatusForbidden,
)

var ErrAlreadyFavorited = New(
	CodeAlreadyExists,
	"favorite",
	"Already in favorites",
	http.StatusBadRequest,
)

// --- Properties ---

var ErrPropertyNotFound = New(
	CodeNotFound,
	"property",
	"Property not found",
	http.StatusNotFound,
)

var ErrSellerOnly = New(
	CodeForbidden,
	"property",
	"Only sellers can create properties",
	http.StatusForbidden,
)

var ErrNotPropertyOwner = New(
	CodeForbidden,
	"property",
	"Not authorized",
	http.StatusForbidden,
)

var ErrVisitorCannotContact = New(
	CodeForbidden,
	"property",
	"Les visiteurs ne peuvent pas contacter les propriétaires. Veuillez passer au rôle Acheteur.",
	http.StatusForbidden,
)

var ErrSelfContact = New(
	CodeInvalidOperation,
	"property",
	"Cannot contact yourself about your own property",
	http.StatusBadRequest,
)

// --- Auth ---

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)
