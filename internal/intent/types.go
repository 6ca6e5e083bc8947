package intent

// Intent is the closed classification label for a customer message.
// Values are produced exclusively by a Classifier; nothing else constructs them.
type Intent string

const (
	IntentBuy     Intent = "BUY"
	IntentSell    Intent = "SELL"
	IntentSupport Intent = "SUPPORT"
	IntentPayment Intent = "PAYMENT"
	IntentCall    Intent = "CALL"
	IntentUnknown Intent = "UNKNOWN"
)

// Valid reports whether i is a member of the closed intent set.
func (i Intent) Valid() bool {
	switch i {
	case IntentBuy, IntentSell, IntentSupport, IntentPayment, IntentCall, IntentUnknown:
		return true
	}
	return false
}

// classifierOutput is the structured JSON the model is asked to return.
type classifierOutput struct {
	Intent     Intent `json:"intent"`
	Confidence int    `json:"confidence"` // 0-100
	Reasoning  string `json:"reasoning"`
}
