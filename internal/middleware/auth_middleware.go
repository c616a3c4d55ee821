package middleware

import (
	"errors"
	"net/http"
	"strings"

	"job-portal/internal/access"
	"job-portal/internal/auth/token"
	"job-portal/internal/shared/apperror"
	"job-portal/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const (
	ContextActor  = "actor"
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// TokenParser verifies a raw bearer token of the given type.
type TokenParser interface {
	Parse(raw string, want token.Type) (*token.Claims, error)
}

// AuthMiddleware resolves the bearer token into an access.Actor stored on the gin context.
func AuthMiddleware(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found || strings.TrimSpace(tokenString) == "" {
			response.Abort(c, http.StatusUnauthorized, apperror.CodeUnauthorized, apperror.ErrUnauthorized.Message)
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(tokenString), token.TypeAccess)
		if err != nil {
			msg := "Given token not valid for any token type"
			if errors.Is(err, token.ErrExpired) {
				msg = "Token is expired"
			}
			response.Abort(c, http.StatusUnauthorized, apperror.CodeUnauthorized, msg)
			return
		}

		actor, err := claims.Actor()
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Given token not valid for any token type")
			return
		}

		c.Set(ContextActor, actor)
		c.Set(ContextUserID, actor.UserID.String())
		c.Set(ContextRole, actor.Role.String())

		c.Next()
	}
}

// GetActor returns the actor set by AuthMiddleware.
func GetActor(c *gin.Context) (access.Actor, bool) {
	v, ok := c.Get(ContextActor)
	if !ok {
		return access.Actor{}, false
	}
	actor, ok := v.(access.Actor)
	return actor, ok && actor.Authenticated()
}
