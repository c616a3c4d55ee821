package app

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"job-portal/internal/application"
	"job-portal/internal/auth"
	"job-portal/internal/auth/token"
	"job-portal/internal/bootstrap"
	"job-portal/internal/config"
	"job-portal/internal/job"
	"job-portal/internal/messaging/kafka"
	"job-portal/internal/middleware"
	"job-portal/internal/profile"
	"job-portal/internal/rbac"
	"job-portal/internal/rbac/infra"
	"job-portal/internal/shared/response"
	"job-portal/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	pages := cfg.Pagination()
	audit := bootstrap.NewStdoutAuditLogger(logger)

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	profileRepo := profile.NewRepository(gormDB)
	jobRepo := job.NewRepository(gormDB)
	applicationRepo := application.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer, logger)
	if err != nil {
		return err
	}

	tokens := token.NewManager(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	authMW := middleware.AuthMiddleware(tokens)

	// --- Services ---
	resolver := profile.NewResolver(profileRepo, rdb, logger)
	authService := auth.NewService(db, authRepo, profileRepo, outboxRepo, tokens, logger)
	profileService := profile.NewService(profileRepo, resolver, logger)
	jobService := job.NewService(jobRepo, resolver, logger)
	applicationService := application.NewService(db, applicationRepo, resolver, outboxRepo, logger)
	userService := user.NewService(userRepo, audit, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, logger)
	profileHandler := profile.NewHandler(profileService, logger)
	jobHandler := job.NewHandler(jobService, pages, logger)
	applicationHandler := application.NewHandler(applicationService, pages, logger)
	userHandler := user.NewHandler(userService, pages, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	router.GET("/health", healthCheck(db, rdb))

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, authMW, logger)
		profile.RegisterRoutes(api, profileHandler, authMW, logger)
		job.RegisterRoutes(api, jobHandler, rbacService, authMW, rdb, logger)
		application.RegisterRoutes(api, applicationHandler, rbacService, authMW, rdb, logger)
		user.RegisterRoutes(api, userHandler, rbacService, authMW, logger)
		rbac.RegisterRoutes(api, rbacHandler, rbacService, authMW, logger)
	}

	return nil
}

func healthCheck(db *sql.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := gin.H{"database": "ok", "redis": "ok"}
		code := http.StatusOK
		if err := db.PingContext(ctx); err != nil {
			status["database"] = err.Error()
			code = http.StatusServiceUnavailable
		}
		if err := pingRedis(ctx, rdb); err != nil {
			status["redis"] = err.Error()
			code = http.StatusServiceUnavailable
		}

		if code != http.StatusOK {
			response.Error(c, code, "UNAVAILABLE", "Service unavailable", status)
			return
		}
		response.Success(c, code, "ok", status, nil)
	}
}
