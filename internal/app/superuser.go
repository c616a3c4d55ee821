package app

import (
	"context"

	"job-portal/internal/auth"
	"job-portal/internal/auth/token"
	"job-portal/internal/config"
	"job-portal/internal/profile"
	"job-portal/internal/shared/connection"

	"go.uber.org/zap"
)

// CreateSuperuser provisions a superadmin account directly against the database.
func CreateSuperuser(ctx context.Context, cfg *config.Config, req auth.CreateSuperuserRequest) (auth.UserResponse, error) {
	logger := zap.L().Named("app.createsuperuser")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Postgres(), 3)
	if err != nil {
		return auth.UserResponse{}, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return auth.UserResponse{}, err
	}
	defer sqlDB.Close()

	tokens := token.NewManager(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	svc := auth.NewService(sqlDB, auth.NewRepository(gormDB), profile.NewRepository(gormDB), nil, tokens, logger)
	return svc.CreateSuperuser(ctx, req)
}
