package intent

// Log prefixes
const (
	LogPrefixClassify = "internal.intent.Classify"
)

// Classifier prompt
const (
	PromptClassifierSystem = `You are an intent classifier for inbound customer messages. Analyze the message and determine the customer's intent.

Message: "%s"

Possible intents:
1. BUY: The customer wants to purchase, asks about pricing, plans, or availability
2. SELL: The customer offers to sell something to us or proposes a vendor/partner deal
3. SUPPORT: The customer reports a problem, bug, outage, or asks how to use the product
4. PAYMENT: The customer wants to pay, asks for an invoice or a payment link
5. CALL: The customer asks to schedule a call or talk to a person
6. UNKNOWN: None of the above clearly applies

Return JSON with this format:
{
  "intent": "BUY|SELL|SUPPORT|PAYMENT|CALL|UNKNOWN",
  "confidence": 0-100,
  "reasoning": "Short explanation"
}

Return ONLY the JSON object. No markdown, no code blocks, no extra text.`
)

// Classifier configuration
const (
	ClassifierTemperature = 0.1
	ClassifierMaxTokens   = 128
)

// Error messages
const (
	ErrMsgLLMCallFailed   = "LLM call failed"
	ErrMsgEmptyResponse   = "empty LLM response"
	ErrMsgJSONParseFailed = "failed to parse classifier JSON"
)
