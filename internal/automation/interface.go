package automation

import "context"

// UseCase defines the business logic interface for the automation domain.
type UseCase interface {
	// Automate validates the inbound request, classifies the customer intent,
	// dispatches to exactly one handler, and returns the assembled result.
	Automate(ctx context.Context, input AutomateInput) (Result, error)
}
