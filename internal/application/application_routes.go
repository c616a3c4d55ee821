package application

import (
	"time"

	"job-portal/internal/access"
	"job-portal/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	authMW gin.HandlerFunc,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	apps := r.Group("/applications")
	apps.Use(authMW)
	apps.Use(middleware.ContextLogger(logger))
	apps.Use(middleware.RBACAuthorize(rbacService, access.ResourceApplication, logger))
	{
		apps.GET("", middleware.RateLimitByUser(3, 10), handler.List)
		apps.GET("/:id", middleware.RateLimitByUser(3, 10), handler.GetByID)
		apps.POST("",
			middleware.RateLimitByUser(0.2, 3),
			middleware.Idempotency(rdb, 24*time.Hour, logger),
			handler.Create,
		)
		apps.PUT("/:id", middleware.RateLimitByUser(0.5, 2), handler.Update)
		apps.PATCH("/:id", middleware.RateLimitByUser(0.5, 2), handler.Patch)
		apps.DELETE("/:id", middleware.RateLimitByUser(0.2, 1), handler.Delete)
	}
}
