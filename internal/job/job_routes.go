package job

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
	jobs := r.Group("/jobs")
	jobs.Use(authMW)
	jobs.Use(middleware.ContextLogger(logger))
	jobs.Use(middleware.RBACAuthorize(rbacService, access.ResourceJob, logger))
	{
		jobs.GET("", middleware.RateLimitByUser(3, 10), handler.List)
		jobs.GET("/:id", middleware.RateLimitByUser(3, 10), handler.GetByID)
		jobs.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Idempotency(rdb, 24*time.Hour, logger),
			handler.Create,
		)
		jobs.PUT("/:id", middleware.RateLimitByUser(0.5, 2), handler.Update)
		jobs.PATCH("/:id", middleware.RateLimitByUser(0.5, 2), handler.Patch)
		jobs.DELETE("/:id", middleware.RateLimitByUser(0.2, 1), handler.Delete)
	}
}
