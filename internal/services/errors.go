package services

import (
	"context"
	"errors"

	"immo_backend/internal/models"
	"immo_backend/internal/repositories"
	"immo_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// handleRepoError переводит ошибки репозиториев в AppError.
// Все, что не распознано, превращается в 500.
func handleRepoError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	switch {
	case errors.Is(err, repositories.ErrUserNotFound):
		return apperrors.ErrUserNotFound
	case errors.Is(err, repositories.ErrPropertyNotFound):
		return apperrors.ErrPropertyNotFound
	case errors.Is(err, repositories.ErrMessageNotFound):
		return apperrors.ErrMessageNotFound
	case errors.Is(err, repositories.ErrFavoriteExists):
		return apperrors.ErrAlreadyFavorited
	case errors.Is(err, repositories.ErrNotificationNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.ErrNotFound(err)
	}
	return apperrors.InternalError(err)
}

// requireActiveUser загружает пользователя и отсекает роль visitor.
// Порядок проверок: сначала 404, затем 403.
func requireActiveUser(ctx context.Context, users repositories.UserRepository, userID uint, forbidden *apperrors.AppError) (*models.User, error) {
	user, err := users.FindByID(ctx, userID)
	if err != nil {
		return nil, handleRepoError(err)
	}
	if !user.CanInteract() {
		return nil, forbidden
	}
	return user, nil
}
