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

func strPtr(s string) *string { return &s }

func TestUpdateProfile_PartialUpdate(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u := e.user(t, "Amine", models.UserRoleBuyer)

	resp, err := e.services.UserService.UpdateProfile(ctx, u.ID, &dto.UpdateProfileRequest{Phone: strPtr("+216 20 000 000")})
	require.NoError(t, err)
	assert.Equal(t, "Amine", resp.Name, "не переданные поля не меняются")
	assert.Equal(t, "+216 20 000 000", resp.Phone)
	assert.Equal(t, "buyer", resp.Role)

	resp, err = e.services.UserService.UpdateProfile(ctx, u.ID, &dto.UpdateProfileRequest{Name: strPtr("  Amine B.  "), Role: strPtr("seller")})
	require.NoError(t, err)
	assert.Equal(t, "Amine B.", resp.Name)
	assert.Equal(t, "seller", resp.Role)
}

func TestUpdateProfile_Rejections(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u := e.user(t, "Amine", models.UserRoleBuyer)
	svc := e.services.UserService

	_, err := svc.UpdateProfile(ctx, u.ID, &dto.UpdateProfileRequest{})
	assert.ErrorIs(t, err, apperrors.ErrEmptyProfileUpdate)

	_, err = svc.UpdateProfile(ctx, u.ID, &dto.UpdateProfileRequest{Name: strPtr("   ")})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode)

	_, err = svc.UpdateProfile(ctx, u.ID, &dto.UpdateProfileRequest{Role: strPtr("admin")})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode)

	_, err = svc.UpdateProfile(ctx, 999, &dto.UpdateProfileRequest{Bio: strPtr("x")})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	profile, err := svc.GetProfile(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Amine", profile.Name)
	assert.Equal(t, "buyer", profile.Role)
}
