package usecase

import (
	"context"
	"fmt"
	"strings"

	"nextplay-automation/internal/automation"
	"nextplay-automation/internal/intent"
	"nextplay-automation/internal/model"
)

// SellerInquiryMessage is the fixed handler input for SELL intents. The
// original workflow always sends this literal instead of the customer's
// message; this is intentional pending a dedicated seller-inquiry handler.
const SellerInquiryMessage = "Handle seller inquiry"

// DefaultCustomerName is used when the request carries no customer name.
const DefaultCustomerName = "Customer"

// Automate runs one classification-and-dispatch cycle.
func (uc *implUseCase) Automate(ctx context.Context, input automation.AutomateInput) (automation.Result, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return automation.Result{}, automation.ErrEmptyMessage
	}

	channel := input.Channel
	if channel == "" {
		channel = model.DefaultChannel
	}
	if _, err := model.ParseChannel(string(channel)); err != nil {
		return automation.Result{}, fmt.Errorf("%w: %v", automation.ErrInvalidChannel, err)
	}

	detected, err := uc.classifier.Classify(ctx, message)
	if err != nil {
		uc.l.Errorf(ctx, "automation: classification failed: %v", err)
		return automation.Result{}, fmt.Errorf("%w: %v", automation.ErrClassification, err)
	}

	reply, err := uc.dispatch(ctx, detected, channel, message, input.CustomerName)
	if err != nil {
		uc.l.Errorf(ctx, "automation: handler failed for intent %s: %v", detected, err)
		return automation.Result{}, fmt.Errorf("%w: %v", automation.ErrHandler, err)
	}

	uc.l.Infof(ctx, "automation: intent=%s channel=%s reply_len=%d", detected, channel, len(reply))

	return automation.Result{
		Intent: detected,
		Reply:  reply,
		Time:   uc.now(),
	}, nil
}

// dispatch selects and invokes exactly one handler for the detected intent.
// Every member of the intent enumeration has an explicit arm; the default arm
// only fires for values outside the closed set.
func (uc *implUseCase) dispatch(ctx context.Context, detected intent.Intent, channel model.Channel, message, customerName string) (string, error) {
	switch detected {
	case intent.IntentBuy:
		return uc.handlers.Sales.Reply(ctx, message)

	case intent.IntentSell:
		return uc.handlers.Sales.Reply(ctx, SellerInquiryMessage)

	case intent.IntentSupport:
		return uc.handlers.Support.Reply(ctx, message)

	case intent.IntentPayment:
		return uc.handlers.Payment.Reply(ctx)

	case intent.IntentCall:
		name := customerName
		if name == "" {
			name = DefaultCustomerName
		}
		return uc.handlers.Call.Reply(ctx, name)

	case intent.IntentUnknown:
		if channel == model.ChannelEmail {
			return uc.handlers.Email.Reply(ctx, message)
		}
		return uc.handlers.General.Reply(ctx, message)

	default:
		return "", fmt.Errorf("unhandled intent %q", detected)
	}
}
