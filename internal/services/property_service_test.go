package services

import (
	"context"
	"testing"

	"immo_backend/internal/models"
	"immo_backend/internal/services/dto"
	"immo_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func propertyRequest(title, city string) *dto.CreatePropertyRequest {
	return &dto.CreatePropertyRequest{
		Title:           title,
		Type:            "appartement",
		TransactionType: "rent",
		Price:           1200,
		City:            city,
		Images:          []string{"https://cdn.immo.tn/1.jpg"},
	}
}

// Продавцы A и B в Тунисе: объявление B уведомляет A и не уведомляет автора
func TestCreateProperty_NotifiesOwnersInSameCity(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	a := e.user(t, "Amine", models.UserRoleSeller)
	b := e.user(t, "Sarra", models.UserRoleSeller)
	c := e.user(t, "Karim", models.UserRoleSeller)
	e.property(t, a, "Appartement Lac", "Tunis")
	e.property(t, c, "Villa Sfax", "Sfax")

	resp, err := e.services.PropertyService.CreateProperty(ctx, b.ID, propertyRequest("Penthouse Marsa", "Tunis"))
	require.NoError(t, err)
	assert.Equal(t, "Sarra", resp.OwnerName)
	assert.JSONEq(t, `["https://cdn.immo.tn/1.jpg"]`, string(resp.Images))

	e.flush(t)
	notes := e.notificationsFor(a.ID)
	require.Len(t, notes, 1)
	assert.Equal(t, models.NotificationTypeProperty, notes[0].Type)
	assert.Equal(t, "Nouvelle propriété disponible", notes[0].Title)
	assert.Empty(t, e.notificationsFor(b.ID))
	assert.Empty(t, e.notificationsFor(c.ID))
}

func TestCreateProperty_SellerOnly(t *testing.T) {
	e := newEnv(t)
	buyer := e.user(t, "Amine", models.UserRoleBuyer)

	_, err := e.services.PropertyService.CreateProperty(context.Background(), buyer.ID, propertyRequest("Studio", "Tunis"))
	assert.ErrorIs(t, err, apperrors.ErrSellerOnly)

	_, err = e.services.PropertyService.CreateProperty(context.Background(), 999, propertyRequest("Studio", "Tunis"))
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestDeleteProperty_OwnerOnlyAndCascades(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	seller := e.user(t, "Sarra", models.UserRoleSeller)
	buyer := e.user(t, "Amine", models.UserRoleBuyer)
	p := e.property(t, seller, "Villa", "Tunis")
	require.NoError(t, e.services.FavoriteService.AddFavorite(ctx, buyer.ID, &dto.AddFavoriteRequest{PropertyID: p.ID}))

	err := e.services.PropertyService.DeleteProperty(ctx, buyer.ID, p.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotPropertyOwner)

	require.NoError(t, e.services.PropertyService.DeleteProperty(ctx, seller.ID, p.ID))
	assert.Empty(t, e.store.Favorites())

	_, err = e.services.PropertyService.GetProperty(ctx, p.ID)
	assert.ErrorIs(t, err, apperrors.ErrPropertyNotFound)
}

func TestContactOwner(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	seller := e.user(t, "Sarra", models.UserRoleSeller)
	buyer := e.user(t, "Amine", models.UserRoleBuyer)
	visitor := e.user(t, "Invité", models.UserRoleVisitor)
	p := e.property(t, seller, "Villa Carthage", "Tunis")
	svc := e.services.PropertyService

	assert.ErrorIs(t, svc.ContactOwner(ctx, visitor.ID, p.ID), apperrors.ErrVisitorCannotContact)
	assert.ErrorIs(t, svc.ContactOwner(ctx, seller.ID, p.ID), apperrors.ErrSelfContact)
	assert.ErrorIs(t, svc.ContactOwner(ctx, buyer.ID, 404), apperrors.ErrPropertyNotFound)

	require.NoError(t, svc.ContactOwner(ctx, buyer.ID, p.ID))
	e.flush(t)

	notes := e.notificationsFor(seller.ID)
	require.Len(t, notes, 1)
	assert.Equal(t, models.NotificationTypeMessage, notes[0].Type)
	assert.Equal(t, "Intérêt pour votre propriété", notes[0].Title)
	assert.Equal(t, `Amine est intéressé par "Villa Carthage"`, notes[0].Message)
}

// Посетитель C ничего не может сделать, пока не сменит роль
func TestVisitorBecomesBuyer(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	seller := e.user(t, "Sarra", models.UserRoleSeller)
	c := e.user(t, "Chaima", models.UserRoleVisitor)
	p := e.property(t, seller, "Villa", "Tunis")

	_, err := e.services.MessageService.SendMessage(ctx, c.ID, &dto.SendMessageRequest{ReceiverID: seller.ID, Message: "Bonjour"})
	assert.ErrorIs(t, err, apperrors.ErrVisitorCannotMessage)
	err = e.services.FavoriteService.AddFavorite(ctx, c.ID, &dto.AddFavoriteRequest{PropertyID: p.ID})
	assert.ErrorIs(t, err, apperrors.ErrVisitorCannotFavorite)

	role := "buyer"
	_, err = e.services.UserService.UpdateProfile(ctx, c.ID, &dto.UpdateProfileRequest{Role: &role})
	require.NoError(t, err)

	_, err = e.services.MessageService.SendMessage(ctx, c.ID, &dto.SendMessageRequest{ReceiverID: seller.ID, Message: "Bonjour"})
	require.NoError(t, err)
	require.NoError(t, e.services.FavoriteService.AddFavorite(ctx, c.ID, &dto.AddFavoriteRequest{PropertyID: p.ID}))

	e.flush(t)
	assert.Len(t, e.notificationsFor(seller.ID), 2)
}
