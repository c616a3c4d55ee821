package middleware

import (
	"net/http"

	"job-portal/internal/access"
	"job-portal/internal/shared/apperror"
	"job-portal/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RBACService is satisfied by rbac.Service.
type RBACService interface {
	Enforce(actor access.Actor, res access.Resource, verb access.Verb) (bool, error)
}

// RBACAuthorize is the collection-level gate. The verb comes from the HTTP method.
func RBACAuthorize(service RBACService, resource access.Resource, logger *zap.Logger) gin.HandlerFunc {
	log := logger.Named("middleware.rbac")
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, apperror.CodeUnauthorized, apperror.ErrUnauthorized.Message)
			return
		}

		verb, ok := access.VerbFromHTTPMethod(c.Request.Method)
		if !ok {
			response.Abort(c, http.StatusMethodNotAllowed, apperror.CodeInvalidInput, "Method not allowed")
			return
		}

		allowed, err := service.Enforce(actor, resource, verb)
		if err != nil {
			log.Error("rbac enforce failed",
				zap.String("resource", string(resource)),
				zap.String("verb", verb.String()),
				zap.Error(err),
			)
			response.Abort(c, http.StatusInternalServerError, apperror.CodeInternalError, apperror.ErrInternal.Message)
			return
		}

		if !allowed {
			log.Debug("rbac denied",
				zap.String("user_id", actor.UserID.String()),
				zap.String("role", actor.Role.String()),
				zap.String("resource", string(resource)),
				zap.String("verb", verb.String()),
			)
			response.Abort(c, http.StatusForbidden, apperror.CodeForbidden, apperror.ErrForbidden.Message)
			return
		}
		c.Next()
	}
}
