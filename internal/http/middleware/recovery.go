package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"donorhub.app/api/common/logger"
)

// Recovery turns a panic into a 500 that carries the request id once Logger has assigned one.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			ctx := c.Request.Context()

			slog.ErrorContext(ctx, "panic recovered",
				"error", rec,
				"method", c.Request.Method,
				"route", c.FullPath(),
				"stack", string(debug.Stack()),
			)

			body := gin.H{"error": "internal server error"}
			if id := logger.GetLogFields(ctx).RequestID; id != nil {
				body["request_id"] = *id
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, body)
		}()
		c.Next()
	}
}
