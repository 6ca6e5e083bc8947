package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"nextplay-automation/pkg/log"
)

// RequestIDHeader carries the request ID back to the caller and accepts
// an inbound ID from upstream proxies.
const RequestIDHeader = "X-Request-ID"

// RequestID attaches a request ID to the request context for log
// correlation. An inbound X-Request-ID is honored; otherwise one is minted.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		ctx := log.ContextWithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}
