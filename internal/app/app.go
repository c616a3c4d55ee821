package app

import (
	"context"
	"fmt"

	"job-portal/internal/application"
	"job-portal/internal/auth"
	"job-portal/internal/config"
	"job-portal/internal/job"
	"job-portal/internal/messaging/kafka"
	"job-portal/internal/profile"
	"job-portal/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewLogger builds the process logger and installs it as the zap global.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}

// BuildApp connects the stores, optionally migrates the schema and mounts every
// module on the router. The returned func releases the connections.
func BuildApp(router *gin.Engine, cfg *config.Config, logger *zap.Logger) (func(), error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Postgres(), 5)
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}
	logger.Info("redis connection established")

	cleanup := func() {
		_ = rdb.Close()
		_ = sqlDB.Close()
	}

	if cfg.Database.AutoMigrate {
		if err := Migrate(context.Background(), gormDB, kafka.NewOutboxRepository(sqlDB)); err != nil {
			cleanup()
			return nil, err
		}
		logger.Info("schema migrated")
	}

	if err := registerModules(router, cfg, sqlDB, gormDB, rdb, logger); err != nil {
		cleanup()
		return nil, err
	}
	return cleanup, nil
}

// Migrate creates or updates the tables in dependency order.
func Migrate(ctx context.Context, db *gorm.DB, outbox kafka.OutboxRepository) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&auth.User{},
		&profile.Recruiter{},
		&profile.Employee{},
		&job.Job{},
		&application.Application{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	if err := outbox.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("outbox schema: %w", err)
	}
	return nil
}

func pingRedis(ctx context.Context, rdb *redis.Client) error {
	return rdb.Ping(ctx).Err()
}
