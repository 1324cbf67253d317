package services

import (
	"context"
	"encoding/json"

	"immo_backend/internal/models"
	"immo_backend/internal/repositories"
	"immo_backend/internal/services/dto"
	"immo_backend/pkg/apperrors"
)

type FavoriteService interface {
	AddFavorite(ctx context.Context, userID uint, req *dto.AddFavoriteRequest) error
	RemoveFavorite(ctx context.Context, userID, propertyID uint) error
	ListFavorites(ctx context.Context, userID uint) ([]dto.FavoriteResponse, error)
	IsFavorite(ctx context.Context, userID, propertyID uint) (bool, error)
}

type favoriteService struct {
	users      repositories.UserRepository
	properties repositories.PropertyRepository
	favorites  repositories.FavoriteRepository
	notifier   Notifier
}

func NewFavoriteService(
	users repositories.UserRepository,
	properties repositories.PropertyRepository,
	favorites repositories.FavoriteRepository,
	notifier Notifier,
) FavoriteService {
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	return &favoriteService{
		users:      users,
		properties: properties,
		favorites:  favorites,
		notifier:   notifier,
	}
}

func (s *favoriteService) AddFavorite(ctx context.Context, userID uint, req *dto.AddFavoriteRequest) error {
	user, err := requireActiveUser(ctx, s.users, userID, apperrors.ErrVisitorCannotFavorite)
	if err != nil {
		return err
	}
	if _, err := s.properties.FindByID(ctx, req.PropertyID); err != nil {
		return handleRepoError(err)
	}

	exists, err := s.favorites.Exists(ctx, userID, req.PropertyID)
	if err != nil {
		return handleRepoError(err)
	}
	if exists {
		return apperrors.ErrAlreadyFavorited
	}

	// Параллельный запрос мог успеть раньше: уникальный индекс вернет ErrFavoriteExists
	if err := s.favorites.Create(ctx, &models.Favorite{UserID: userID, PropertyID: req.PropertyID}); err != nil {
		return handleRepoError(err)
	}

	s.notifier.NotifyFavorited(req.PropertyID, userID, user.Name)
	return nil
}

func (s *favoriteService) RemoveFavorite(ctx context.Context, userID, propertyID uint) error {
	return handleRepoError(s.favorites.Delete(ctx, userID, propertyID))
}

func (s *favoriteService) ListFavorites(ctx context.Context, userID uint) ([]dto.FavoriteResponse, error) {
	views, err := s.favorites.ListByUser(ctx, userID)
	if err != nil {
		return nil, handleRepoError(err)
	}
	out := make([]dto.FavoriteResponse, 0, len(views))
	for _, v := range views {
		out = append(out, dto.FavoriteResponse{
			ID:              v.PropertyID,
			FavoriteID:      v.ID,
			Title:           v.Title,
			Type:            v.Type,
			TransactionType: v.TransactionType,
			Price:           v.Price,
			City:            v.City,
			Images:          rawJSON(v.Images),
			UserID:          v.OwnerID,
			OwnerName:       v.OwnerName,
			FavoritedAt:     v.CreatedAt,
		})
	}
	return out, nil
}

func (s *favoriteService) IsFavorite(ctx context.Context, userID, propertyID uint) (bool, error) {
	exists, err := s.favorites.Exists(ctx, userID, propertyID)
	if err != nil {
		return false, handleRepoError(err)
	}
	return exists, nil
}

// rawJSON - пустой столбец JSON отдается как отсутствующее поле
func rawJSON(b []byte) json.RawMessage {
	if len(b) == 0 {
		return nil
	}
	return json.RawMessage(b)
}
