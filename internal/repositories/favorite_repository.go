package repositories

import (
	"context"

	"immo_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteRepository interface {
	// Create вставляет пару (user, property); при конфликте уникального
	// индекса возвращает ErrFavoriteExists
	Create(ctx context.Context, favorite *models.Favorite) error
	Exists(ctx context.Context, userID, propertyID uint) (bool, error)
	Delete(ctx context.Context, userID, propertyID uint) error
	ListByUser(ctx context.Context, userID uint) ([]FavoriteView, error)
}

type FavoriteRepositoryImpl struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &FavoriteRepositoryImpl{db: db}
}

func (r *FavoriteRepositoryImpl) Create(ctx context.Context, favorite *models.Favorite) error {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "property_id"}},
			DoNothing: true,
		}).
		Create(favorite)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteExists
	}
	return nil
}

func (r *FavoriteRepositoryImpl) Exists(ctx context.Context, userID, propertyID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		Count(&count).Error
	return count > 0, err
}

func (r *FavoriteRepositoryImpl) Delete(ctx context.Context, userID, propertyID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		Delete(&models.Favorite{}).Error
}

func (r *FavoriteRepositoryImpl) ListByUser(ctx context.Context, userID uint) ([]FavoriteView, error) {
	var favorites []FavoriteView
	err := r.db.WithContext(ctx).
		Table("favorites f").
		Select("f.id, f.property_id, f.created_at, p.title, p.type, p.transaction_type, p.price, p.city, p.images, " +
			"p.user_id AS owner_id, u.name AS owner_name").
		Joins("JOIN properties p ON p.id = f.property_id").
		Joins("JOIN users u ON u.id = p.user_id").
		Where("f.user_id = ?", userID).
		Order("f.created_at DESC, f.id DESC").
		Scan(&favorites).Error
	return favorites, err
}
