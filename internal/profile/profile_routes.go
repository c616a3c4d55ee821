package profile

import (
	"job-portal/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc, logger *zap.Logger) {
	profiles := r.Group("/profiles")
	profiles.Use(authMW, middleware.ContextLogger(logger))
	{
		profiles.GET("/me", handler.GetMe)
		profiles.PUT("/me", middleware.RateLimitByUser(2, 5), handler.UpdateMe)
		profiles.PATCH("/me", middleware.RateLimitByUser(2, 5), handler.UpdateMe)
	}
}
