package auth

import (
	"job-portal/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc, logger *zap.Logger) {
	ctxLogger := middleware.ContextLogger(logger)

	auth := r.Group("/auth")
	{
		auth.POST("", ctxLogger, middleware.RateLimitByIP(0.2, 5), handler.Auth)
		auth.POST("/refresh", ctxLogger, middleware.RateLimitByIP(0.5, 5), handler.RefreshToken)
		auth.GET("/me", authMW, ctxLogger, middleware.RateLimitByUser(2, 5), handler.Me)
		auth.POST("/logout", authMW, ctxLogger, middleware.RateLimitByUser(2, 5), handler.Logout)
	}
}
