package handlers

import "context"

// PaymentReply is the canned payment reply. It is byte-identical across calls
// and independent of the message and customer name.
const PaymentReply = "You can complete your payment securely here: https://pay.nextplay.app/checkout. " +
	"Once the payment goes through you'll receive a receipt by email within a few minutes. " +
	"If anything looks off, just reply to this message and our billing team will take a look."

// Payment produces the canned payment-link reply. It takes no input.
type Payment struct{}

// Reply returns the payment-link reply.
func (h *Payment) Reply(ctx context.Context) (string, error) {
	return PaymentReply, nil
}
