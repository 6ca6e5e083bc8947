package handlers

import (
	"context"
	"fmt"

	"nextplay-automation/pkg/llmprovider"
	"nextplay-automation/pkg/log"
)

// Sales produces replies for purchase and seller inquiries.
type Sales struct {
	llm Generator
	cfg Config
	l   log.Logger
}

// Reply generates a sales reply for the given message.
func (h *Sales) Reply(ctx context.Context, message string) (string, error) {
	resp, err := h.llm.GenerateText(ctx, &llmprovider.Request{
		System:      PromptSales,
		Messages:    []llmprovider.Message{{Role: "user", Text: message}},
		Temperature: h.cfg.Temperature,
		MaxTokens:   h.cfg.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("sales handler: %w", err)
	}
	return resp.Text, nil
}
