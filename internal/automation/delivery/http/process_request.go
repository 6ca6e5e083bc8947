package http

import (
	"github.com/gin-gonic/gin"
)

// processAutomateReq binds and validates the automation request body.
func (h *handler) processAutomateReq(c *gin.Context) (automateReq, error) {
	var req automateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
