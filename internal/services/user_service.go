package services

import (
	"context"
	"strings"

	"immo_backend/internal/logger"
	"immo_backend/internal/models"
	"immo_backend/internal/repositories"
	"immo_backend/internal/services/dto"
	"immo_backend/pkg/apperrors"
)

type UserService interface {
	GetProfile(ctx context.Context, userID uint) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uint, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
}

type userService struct {
	users repositories.UserRepository
}

func NewUserService(users repositories.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) GetProfile(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, handleRepoError(err)
	}
	return toUserResponse(user), nil
}

// UpdateProfile применяет только переданные поля одним UPDATE.
// Смена роли вступает в силу для следующих запросов сразу, без перевыпуска токена.
func (s *userService) UpdateProfile(ctx context.Context, userID uint, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	if req.IsEmpty() {
		return nil, apperrors.ErrEmptyProfileUpdate
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.ValidationError(map[string]string{"name": "Name cannot be empty"})
		}
		updates["name"] = name
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.Photo != nil {
		updates["photo"] = *req.Photo
	}
	if req.Role != nil {
		role := models.UserRole(*req.Role)
		if !role.IsValid() {
			return nil, apperrors.ValidationError(map[string]string{"role": "Role must be one of visitor, buyer, seller"})
		}
		updates["role"] = role
	}

	if err := s.users.Update(ctx, userID, updates); err != nil {
		return nil, handleRepoError(err)
	}
	if req.Role != nil {
		logger.CtxInfo(ctx, "User role changed", "role", *req.Role)
	}
	return s.GetProfile(ctx, userID)
}

func toUserResponse(u *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Photo:     u.Photo,
		Bio:       u.Bio,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}
