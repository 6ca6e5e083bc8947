package handlers

import (
	"context"
	"fmt"

	"nextplay-automation/pkg/llmprovider"
	"nextplay-automation/pkg/log"
)

// General is the fallback handler for unclassified messages on chat and call channels.
type General struct {
	llm Generator
	cfg Config
	l   log.Logger
}

// Reply generates a general-purpose reply for the given message.
func (h *General) Reply(ctx context.Context, message string) (string, error) {
	resp, err := h.llm.GenerateText(ctx, &llmprovider.Request{
		System:      PromptGeneral,
		Messages:    []llmprovider.Message{{Role: "user", Text: message}},
		Temperature: h.cfg.Temperature,
		MaxTokens:   h.cfg.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("general handler: %w", err)
	}
	return resp.Text, nil
}
