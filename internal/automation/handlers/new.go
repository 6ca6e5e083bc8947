package handlers

import (
	"context"

	"nextplay-automation/pkg/gcalendar"
	"nextplay-automation/pkg/llmprovider"
	"nextplay-automation/pkg/log"
)

// Generator is the slice of the provider manager the generative handlers need.
type Generator interface {
	GenerateText(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Config holds shared generation settings for the reply handlers.
type Config struct {
	Temperature float64
	MaxTokens   int
}

// NewSales creates the handler for purchase and seller inquiries.
func NewSales(llm Generator, cfg Config, l log.Logger) *Sales {
	return &Sales{llm: llm, cfg: cfg, l: l}
}

// NewSupport creates the handler for product issues and how-to questions.
func NewSupport(llm Generator, cfg Config, l log.Logger) *Support {
	return &Support{llm: llm, cfg: cfg, l: l}
}

// NewEmail creates the fallback handler for messages arriving over email.
func NewEmail(llm Generator, cfg Config, l log.Logger) *Email {
	return &Email{llm: llm, cfg: cfg, l: l}
}

// NewGeneral creates the fallback handler for chat and call channels.
func NewGeneral(llm Generator, cfg Config, l log.Logger) *General {
	return &General{llm: llm, cfg: cfg, l: l}
}

// NewPayment creates the canned payment-link handler.
func NewPayment() *Payment {
	return &Payment{}
}

// NewCall creates the call-scheduling handler. The calendar client is optional;
// when nil, no hold event is booked and the reply is still produced.
func NewCall(calendar *gcalendar.Client, calendarID string, l log.Logger) *Call {
	return &Call{calendar: calendar, calendarID: calendarID, l: l}
}
