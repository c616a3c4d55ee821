package user

import (
	"job-portal/internal/access"
	"job-portal/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	authMW gin.HandlerFunc,
	logger *zap.Logger,
) {
	users := r.Group("/users")
	users.Use(authMW)
	users.Use(middleware.ContextLogger(logger))
	users.Use(middleware.RBACAuthorize(rbacService, access.ResourceUser, logger))
	{
		users.GET("", middleware.RateLimitByUser(3, 10), handler.GetAll)
		users.GET("/:id", middleware.RateLimitByUser(3, 10), handler.GetByID)
		users.PATCH("/:id/status", middleware.RateLimitByUser(0.5, 2), handler.ToggleStatus)
		users.POST("/:id/force-reset-password", middleware.RateLimitByUser(0.5, 2), handler.ForceResetPassword)
	}
}
