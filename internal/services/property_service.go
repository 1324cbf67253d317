package services

import (
	"context"
	"encoding/json"

	"immo_backend/internal/logger"
	"immo_backend/internal/models"
	"immo_backend/internal/repositories"
	"immo_backend/internal/services/dto"
	"immo_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type PropertyService interface {
	CreateProperty(ctx context.Context, userID uint, req *dto.CreatePropertyRequest) (*dto.PropertyResponse, error)
	GetProperty(ctx context.Context, propertyID uint) (*dto.PropertyResponse, error)
	DeleteProperty(ctx context.Context, userID, propertyID uint) error
	ContactOwner(ctx context.Context, userID, propertyID uint) error
}

type propertyService struct {
	users      repositories.UserRepository
	properties repositories.PropertyRepository
	notifier   Notifier
}

func NewPropertyService(users repositories.UserRepository, properties repositories.PropertyRepository, notifier Notifier) PropertyService {
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	return &propertyService{users: users, properties: properties, notifier: notifier}
}

func (s *propertyService) CreateProperty(ctx context.Context, userID uint, req *dto.CreatePropertyRequest) (*dto.PropertyResponse, error) {
	owner, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, handleRepoError(err)
	}
	if owner.Role != models.UserRoleSeller {
		return nil, apperrors.ErrSellerOnly
	}

	property := &models.Property{
		UserID:          userID,
		Title:           req.Title,
		Description:     req.Description,
		Type:            req.Type,
		TransactionType: models.TransactionType(req.TransactionType),
		Price:           req.Price,
		City:            req.City,
		Address:         req.Address,
		Bedrooms:        req.Bedrooms,
		Bathrooms:       req.Bathrooms,
		Area:            req.Area,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
	}
	if len(req.Images) > 0 {
		images, err := json.Marshal(req.Images)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		property.Images = datatypes.JSON(images)
	}

	if err := s.properties.Create(ctx, property); err != nil {
		return nil, handleRepoError(err)
	}

	s.notifier.NotifyNewPropertyInArea(property.ID, userID, property.City, property.Title)

	logger.CtxInfo(ctx, "Property created", "property_id", property.ID, "city", property.City)
	property.Owner = owner
	return toPropertyResponse(property), nil
}

func (s *propertyService) GetProperty(ctx context.Context, propertyID uint) (*dto.PropertyResponse, error) {
	property, err := s.properties.FindByID(ctx, propertyID)
	if err != nil {
		return nil, handleRepoError(err)
	}
	return toPropertyResponse(property), nil
}

// DeleteProperty - удалить объявление может только владелец; избранные удаляются каскадом
func (s *propertyService) DeleteProperty(ctx context.Context, userID, propertyID uint) error {
	property, err := s.properties.FindByID(ctx, propertyID)
	if err != nil {
		return handleRepoError(err)
	}
	if property.UserID != userID {
		return apperrors.ErrNotPropertyOwner
	}
	return handleRepoError(s.properties.Delete(ctx, propertyID))
}

func (s *propertyService) ContactOwner(ctx context.Context, userID, propertyID uint) error {
	user, err := requireActiveUser(ctx, s.users, userID, apperrors.ErrVisitorCannotContact)
	if err != nil {
		return err
	}
	property, err := s.properties.FindByID(ctx, propertyID)
	if err != nil {
		return handleRepoError(err)
	}
	if property.UserID == userID {
		return apperrors.ErrSelfContact
	}

	s.notifier.NotifyContact(propertyID, userID, user.Name)
	return nil
}

func toPropertyResponse(p *models.Property) *dto.PropertyResponse {
	resp := &dto.PropertyResponse{
		ID:              p.ID,
		UserID:          p.UserID,
		Title:           p.Title,
		Description:     p.Description,
		Type:            p.Type,
		TransactionType: string(p.TransactionType),
		Price:           p.Price,
		City:            p.City,
		Address:         p.Address,
		Bedrooms:        p.Bedrooms,
		Bathrooms:       p.Bathrooms,
		Area:            p.Area,
		Latitude:        p.Latitude,
		Longitude:       p.Longitude,
		Images:          rawJSON(p.Images),
		CreatedAt:       p.CreatedAt,
	}
	if p.Owner != nil {
		resp.OwnerName = p.Owner.Name
	}
	return resp
}
