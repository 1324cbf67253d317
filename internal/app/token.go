package app

import (
	"context"
	"fmt"

	"immo_backend/database"
	"immo_backend/internal/auth"
	"immo_backend/internal/config"
	"immo_backend/internal/logger"
	"immo_backend/internal/repositories"
)

// IssueToken выпускает JWT для существующего пользователя.
// Вход по паролю в этом сервисе не реализован, токены выдает внешний auth.
func IssueToken(userID uint) (string, error) {
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	logger.Init(cfg.Server.Env)

	db, err := database.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return "", err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	user, err := repositories.NewUserRepository(db).FindByID(context.Background(), userID)
	if err != nil {
		return "", fmt.Errorf("user %d: %w", userID, err)
	}
	return auth.NewTokenManager(cfg.JWT.Secret, cfg.JWTTTL()).GenerateToken(user.ID, user.Role)
}
