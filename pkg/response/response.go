package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 JSON with the payload serialized directly (no envelope).
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error sends 400 JSON with the given user-facing message.
func Error(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrResp{Error: message})
}

// InternalError sends 500 with a non-specific message.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrResp{Error: DefaultErrorMessage})
}

// TooManyRequests sends 429 for rate-limited clients.
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, ErrResp{Error: RateLimitedMessage})
}
