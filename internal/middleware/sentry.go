package middleware

import (
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
)

// ReportServerErrors sends 5xx responses to Sentry. It is a no-op unless
// sentrygin.New is mounted earlier in the chain.
func ReportServerErrors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < http.StatusInternalServerError {
			return
		}
		hub := sentrygin.GetHubFromContext(c)
		if hub == nil {
			return
		}

		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetTag(ContextRequestID, c.GetString(ContextRequestID))
			scope.SetTag("route", c.FullPath())
			if uid := c.GetString(ContextUserID); uid != "" {
				scope.SetUser(sentry.User{ID: uid})
			}
			if err := c.Errors.Last(); err != nil {
				hub.CaptureException(err.Err)
				return
			}
			hub.CaptureMessage(fmt.Sprintf("%d %s %s", status, c.Request.Method, c.FullPath()))
		})
	}
}
