package handlers

import (
	"context"
	"fmt"

	"nextplay-automation/pkg/llmprovider"
	"nextplay-automation/pkg/log"
)

// Support produces replies for product issues and how-to questions.
type Support struct {
	llm Generator
	cfg Config
	l   log.Logger
}

// Reply generates a support reply for the given message.
func (h *Support) Reply(ctx context.Context, message string) (string, error) {
	resp, err := h.llm.GenerateText(ctx, &llmprovider.Request{
		System:      PromptSupport,
		Messages:    []llmprovider.Message{{Role: "user", Text: message}},
		Temperature: h.cfg.Temperature,
		MaxTokens:   h.cfg.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("support handler: %w", err)
	}
	return resp.Text, nil
}
