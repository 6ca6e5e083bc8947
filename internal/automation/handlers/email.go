package handlers

import (
	"context"
	"fmt"

	"nextplay-automation/pkg/llmprovider"
	"nextplay-automation/pkg/log"
)

// Email is the fallback handler for unclassified messages arriving over email.
type Email struct {
	llm Generator
	cfg Config
	l   log.Logger
}

// Reply generates a full email reply for the given message.
func (h *Email) Reply(ctx context.Context, message string) (string, error) {
	resp, err := h.llm.GenerateText(ctx, &llmprovider.Request{
		System:      PromptEmail,
		Messages:    []llmprovider.Message{{Role: "user", Text: message}},
		Temperature: h.cfg.Temperature,
		MaxTokens:   h.cfg.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("email handler: %w", err)
	}
	return resp.Text, nil
}
