package llmprovider

import (
	"context"

	"nextplay-automation/pkg/gemini"
	"nextplay-automation/pkg/openai"
)

// OpenAIAdapter adapts pkg/openai to the llmprovider.Provider interface
type OpenAIAdapter struct {
	client openai.IOpenAI
}

// NewOpenAIAdapter creates a new OpenAI adapter
func NewOpenAIAdapter(client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{client: client}
}

// GenerateText implements Provider interface
func (a *OpenAIAdapter) GenerateText(ctx context.Context, req *Request) (*Response, error) {
	openaiReq := &openai.Request{
		System:      req.System,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]openai.Message, len(req.Messages)),
	}
	for i, msg := range req.Messages {
		openaiReq.Messages[i] = openai.Message{Role: msg.Role, Text: msg.Text}
	}

	resp, err := a.client.GenerateText(ctx, openaiReq)
	if err != nil {
		return nil, err
	}

	out := &Response{
		Text:         resp.Text,
		ProviderName: "openai",
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name implements Provider interface
func (a *OpenAIAdapter) Name() string {
	return "openai"
}

// Model implements Provider interface
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

// GeminiAdapter adapts pkg/gemini to the llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateText implements Provider interface
func (a *GeminiAdapter) GenerateText(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		System:      req.System,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]gemini.Message, len(req.Messages)),
	}
	for i, msg := range req.Messages {
		geminiReq.Messages[i] = gemini.Message{Role: msg.Role, Text: msg.Text}
	}

	resp, err := a.client.GenerateText(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	out := &Response{
		Text:         resp.Text,
		ProviderName: "gemini",
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name implements Provider interface
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model implements Provider interface
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}
