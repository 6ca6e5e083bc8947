package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"nextplay-automation/pkg/llmprovider"
)

// Classify determines the customer intent from a message.
// A transport or provider failure is returned as an error, never silently
// mapped to UNKNOWN, so callers can distinguish "no match" from "classifier down".
func (c *LLMClassifier) Classify(ctx context.Context, message string) (Intent, error) {
	prompt := fmt.Sprintf(PromptClassifierSystem, message)

	resp, err := c.llm.GenerateText(ctx, &llmprovider.Request{
		Messages: []llmprovider.Message{
			{Role: "user", Text: prompt},
		},
		Temperature: ClassifierTemperature,
		MaxTokens:   ClassifierMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %s: %w", LogPrefixClassify, ErrMsgLLMCallFailed, err)
	}

	responseText := stripCodeFences(resp.Text)
	if responseText == "" {
		return "", fmt.Errorf("%s: %s", LogPrefixClassify, ErrMsgEmptyResponse)
	}

	var output classifierOutput
	if err := json.Unmarshal([]byte(responseText), &output); err != nil {
		return "", fmt.Errorf("%s: %s: %w", LogPrefixClassify, ErrMsgJSONParseFailed, err)
	}

	// A label outside the closed set means the model answered but found no
	// specific match, which is the UNKNOWN case, not a failure.
	if !output.Intent.Valid() {
		c.l.Warnf(ctx, "%s: unrecognized label %q, mapping to UNKNOWN", LogPrefixClassify, output.Intent)
		return IntentUnknown, nil
	}

	c.l.Infof(ctx, "%s: classified as %s (confidence: %d%%)", LogPrefixClassify, output.Intent, output.Confidence)
	return output.Intent, nil
}

// stripCodeFences removes markdown code blocks if present (```json ... ```)
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSuffix(s, "```")
		return strings.TrimSpace(s)
	}
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
		return strings.TrimSpace(s)
	}
	return s
}
