package http

import (
	"github.com/gin-gonic/gin"

	"nextplay-automation/pkg/response"
)

// Automate godoc
// @Summary     Classify a message and run its automation
// @Description Detects the customer's intent and returns the reply from the matching automation handler.
// @Tags        Automation
// @Accept      json
// @Produce     json
// @Param       body body automateReq true "Customer message"
// @Success     200 {object} automateResp
// @Failure     400 {object} response.ErrResp "Invalid payload or generation failure"
// @Failure     429 {object} response.ErrResp "Rate limited"
// @Router      /api/v1/automation [POST]
func (h *handler) Automate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAutomateReq(c)
	if err != nil {
		h.l.Warnf(ctx, "automation.http.Automate.processAutomateReq: %v", err)
		response.Error(c, MsgInvalidPayload)
		return
	}

	result, err := h.uc.Automate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "automation.http.Automate.uc.Automate: %v", err)
		response.Error(c, h.mapErrorMessage(err))
		return
	}

	response.OK(c, h.newAutomateResp(result))
}
