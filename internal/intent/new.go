package intent

import (
	"context"

	"nextplay-automation/pkg/llmprovider"
	"nextplay-automation/pkg/log"
)

// Classifier is the interface for intent classification
type Classifier interface {
	Classify(ctx context.Context, message string) (Intent, error)
}

// Generator is the slice of the provider manager the classifier needs.
type Generator interface {
	GenerateText(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// LLMClassifier classifies customer intent using an LLM
type LLMClassifier struct {
	llm Generator
	l   log.Logger
}

// Ensure LLMClassifier implements Classifier interface
var _ Classifier = (*LLMClassifier)(nil)

// New creates a new LLMClassifier
func New(llm Generator, l log.Logger) *LLMClassifier {
	return &LLMClassifier{
		llm: llm,
		l:   l,
	}
}
