package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Rate limiting is applied at the server level, not per route.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("", h.Automate)
}
