package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/storeadmin/internal/common"
	"github.com/dmitrijs2005/storeadmin/internal/logging"
	"github.com/dmitrijs2005/storeadmin/internal/server/i18n"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// cors allows any origin and answers preflight requests itself.
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}

// requestLogger tags the request with an id (taken from X-Request-ID when
// the caller sent one) and logs it on the way in and out.
func requestLogger(l logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(common.RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(common.RequestIDHeader, id)

		start := time.Now()
		ctx := c.Request.Context()
		l.Info(ctx, "request", "method", c.Request.Method, "path", c.Request.URL.Path, "request_id", id)

		c.Next()

		l.Debug(ctx, "response",
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
			"request_id", id)
	}
}

// recovery turns a panic into a 500 with the panic value in the message.
func recovery(l logging.Logger, cat *i18n.Catalog) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		l.Error(c.Request.Context(), "panic recovered",
			"error", fmt.Sprint(recovered),
			"path", c.Request.URL.Path,
			"request_id", c.GetString(requestIDKey))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": fmt.Sprintf("%s: %v", cat.InternalError, recovered),
		})
	})
}
