package middlewares

import (
	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

// ReportError sends err to Sentry tagged with the request id. Without an
// initialized Sentry client it does nothing.
func ReportError(c *gin.Context, err error, msg string) {
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetRequest(c.Request)
		scope.SetTag("request_id", GetRequestID(c))
		scope.SetExtra("message", msg)
		sentry.CaptureException(err)
	})
}
