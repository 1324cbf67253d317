package repositories

import (
	"context"
	"errors"

	"immo_backend/internal/models"

	"gorm.io/gorm"
)

type PropertyRepository interface {
	Create(ctx context.Context, property *models.Property) error
	// FindByID возвращает объявление вместе с владельцем
	FindByID(ctx context.Context, id uint) (*models.Property, error)
	Delete(ctx context.Context, id uint) error
	// FindOwnersInCity - до limit различных владельцев объявлений в городе,
	// кроме объявления excludePropertyID и пользователя excludeUserID
	FindOwnersInCity(ctx context.Context, city string, excludePropertyID, excludeUserID uint, limit int) ([]uint, error)
}

type PropertyRepositoryImpl struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &PropertyRepositoryImpl{db: db}
}

func (r *PropertyRepositoryImpl) Create(ctx context.Context, property *models.Property) error {
	return r.db.WithContext(ctx).Create(property).Error
}

func (r *PropertyRepositoryImpl) FindByID(ctx context.Context, id uint) (*models.Property, error) {
	var property models.Property
	err := r.db.WithContext(ctx).Preload("Owner").First(&property, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return &property, nil
}

func (r *PropertyRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Property{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPropertyNotFound
	}
	return nil
}

func (r *PropertyRepositoryImpl) FindOwnersInCity(ctx context.Context, city string, excludePropertyID, excludeUserID uint, limit int) ([]uint, error) {
	var ownerIDs []uint
	err := r.db.WithContext(ctx).
		Model(&models.Property{}).
		Distinct("user_id").
		Where("city = ? AND id <> ? AND user_id <> ?", city, excludePropertyID, excludeUserID).
		Limit(limit).
		Pluck("user_id", &ownerIDs).Error
	return ownerIDs, err
}
