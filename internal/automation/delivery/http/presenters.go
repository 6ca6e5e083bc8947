package http

import (
	"nextplay-automation/internal/automation"
	"nextplay-automation/internal/model"
	"nextplay-automation/pkg/response"
)

// --- Request DTOs ---

type automateReq struct {
	Message string `json:"message" binding:"required"`
	// Pointer so an absent field defaults while a present empty or unknown
	// value fails the oneof check.
	Channel      *string `json:"channel"      binding:"omitempty,oneof=chat email call"`
	CustomerName string  `json:"customerName" binding:"omitempty,max=255"`
}

func (r automateReq) toInput() automation.AutomateInput {
	channel := model.DefaultChannel
	if r.Channel != nil {
		channel = model.Channel(*r.Channel)
	}
	return automation.AutomateInput{
		Message:      r.Message,
		Channel:      channel,
		CustomerName: r.CustomerName,
	}
}

// --- Response DTOs ---

type automateResp struct {
	Intent string           `json:"intent"`
	Reply  string           `json:"reply"`
	Time   response.ISOTime `json:"time"`
}

func (h *handler) newAutomateResp(result automation.Result) automateResp {
	return automateResp{
		Intent: string(result.Intent),
		Reply:  result.Reply,
		Time:   response.ISOTime(result.Time),
	}
}
