package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/davidtimmons/pragmatic-architecture/internal/pkg/logging"
)

const RequestIdHeader = "X-Request-Id"

// NewRequestIdMiddleware tags every request with an id and logs its outcome.
// A caller-supplied X-Request-Id is kept so ids stay stable across proxies.
func NewRequestIdMiddleware(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := c.GetHeader(RequestIdHeader)
		if requestId == "" {
			requestId = uuid.NewString()
		}

		c.Header(RequestIdHeader, requestId)
		c.Next()

		logger.Info("request handled",
			"request_id", requestId,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
		)
	}
}
