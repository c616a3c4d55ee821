package rbac

import (
	"job-portal/internal/access"
	"job-portal/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterRoutes mounts the policy introspection endpoints, restricted to user administrators.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, service Service, auth gin.HandlerFunc, logger *zap.Logger) {
	group := r.Group("/rbac")
	group.Use(auth, middleware.ContextLogger(logger), middleware.RBACAuthorize(service, access.ResourceUser, logger))
	{
		group.GET("/policies", handler.ListPolicies)
		group.GET("/enforce", handler.Enforce)
	}
}
