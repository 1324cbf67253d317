package services

import (
	"context"
	"sync"
	"testing"

	"immo_backend/internal/models"
	"immo_backend/internal/services/dto"
	"immo_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFavorite_NotifiesOwner(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	seller := e.user(t, "Sarra", models.UserRoleSeller)
	buyer := e.user(t, "Amine", models.UserRoleBuyer)
	p := e.property(t, seller, "Villa Carthage", "Tunis")

	require.NoError(t, e.services.FavoriteService.AddFavorite(ctx, buyer.ID, &dto.AddFavoriteRequest{PropertyID: p.ID}))
	e.flush(t)

	notes := e.notificationsFor(seller.ID)
	require.Len(t, notes, 1)
	assert.Equal(t, `Amine a ajouté "Villa Carthage" à ses favoris`, notes[0].Message)

	ok, err := e.services.FavoriteService.IsFavorite(ctx, buyer.ID, p.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAddFavorite_Duplicate(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	seller := e.user(t, "Sarra", models.UserRoleSeller)
	buyer := e.user(t, "Amine", models.UserRoleBuyer)
	p := e.property(t, seller, "Studio", "Sousse")
	req := &dto.AddFavoriteRequest{PropertyID: p.ID}

	require.NoError(t, e.services.FavoriteService.AddFavorite(ctx, buyer.ID, req))
	err := e.services.FavoriteService.AddFavorite(ctx, buyer.ID, req)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyFavorited)
	assert.Len(t, e.store.Favorites(), 1)
}

func TestAddFavorite_ConcurrentLeavesSingleRow(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	seller := e.user(t, "Sarra", models.UserRoleSeller)
	buyer := e.user(t, "Amine", models.UserRoleBuyer)
	p := e.property(t, seller, "Duplex", "Tunis")

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = e.services.FavoriteService.AddFavorite(ctx, buyer.ID, &dto.AddFavoriteRequest{PropertyID: p.ID})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, apperrors.ErrAlreadyFavorited)
	}
	assert.Equal(t, 1, succeeded)
	assert.Len(t, e.store.Favorites(), 1)
}

func TestAddFavorite_Rejections(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	seller := e.user(t, "Sarra", models.UserRoleSeller)
	visitor := e.user(t, "Invité", models.UserRoleVisitor)
	p := e.property(t, seller, "Studio", "Sousse")

	err := e.services.FavoriteService.AddFavorite(ctx, visitor.ID, &dto.AddFavoriteRequest{PropertyID: p.ID})
	assert.ErrorIs(t, err, apperrors.ErrVisitorCannotFavorite)

	err = e.services.FavoriteService.AddFavorite(ctx, visitor.ID, &dto.AddFavoriteRequest{PropertyID: 777})
	assert.ErrorIs(t, err, apperrors.ErrVisitorCannotFavorite, "роль проверяется до существования объявления")

	err = e.services.FavoriteService.AddFavorite(ctx, seller.ID, &dto.AddFavoriteRequest{PropertyID: 777})
	assert.ErrorIs(t, err, apperrors.ErrPropertyNotFound)

	assert.Empty(t, e.store.Favorites())
}

func TestAddFavorite_OwnPropertyNoNotification(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	seller := e.user(t, "Sarra", models.UserRoleSeller)
	p := e.property(t, seller, "Studio", "Sousse")

	require.NoError(t, e.services.FavoriteService.AddFavorite(ctx, seller.ID, &dto.AddFavoriteRequest{PropertyID: p.ID}))
	e.flush(t)

	assert.Len(t, e.store.Favorites(), 1)
	assert.Empty(t, e.store.Notifications())
}

func TestListAndRemoveFavorites(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	seller := e.user(t, "Sarra", models.UserRoleSeller)
	buyer := e.user(t, "Amine", models.UserRoleBuyer)
	p1 := e.property(t, seller, "Villa", "Tunis")
	p2 := e.property(t, seller, "Studio", "Sfax")
	svc := e.services.FavoriteService

	require.NoError(t, svc.AddFavorite(ctx, buyer.ID, &dto.AddFavoriteRequest{PropertyID: p1.ID}))
	require.NoError(t, svc.AddFavorite(ctx, buyer.ID, &dto.AddFavoriteRequest{PropertyID: p2.ID}))

	list, err := svc.ListFavorites(ctx, buyer.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, p2.ID, list[0].ID, "новые избранные первыми")
	assert.Equal(t, "Sarra", list[0].OwnerName)

	require.NoError(t, svc.RemoveFavorite(ctx, buyer.ID, p1.ID))
	require.NoError(t, svc.RemoveFavorite(ctx, buyer.ID, p1.ID), "повторное удаление не ошибка")

	ok, err := svc.IsFavorite(ctx, buyer.ID, p1.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
