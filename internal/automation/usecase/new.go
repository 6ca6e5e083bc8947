package usecase

import (
	"context"
	"time"

	"nextplay-automation/internal/intent"
	pkgLog "nextplay-automation/pkg/log"
)

// MessageHandler produces a reply from the customer message text.
type MessageHandler interface {
	Reply(ctx context.Context, message string) (string, error)
}

// PaymentHandler produces a reply without consulting the message or customer name.
type PaymentHandler interface {
	Reply(ctx context.Context) (string, error)
}

// CallHandler produces a reply from the customer name only.
type CallHandler interface {
	Reply(ctx context.Context, customerName string) (string, error)
}

// Handlers bundles the automation handlers the dispatcher selects from.
type Handlers struct {
	Sales   MessageHandler
	Support MessageHandler
	Email   MessageHandler
	General MessageHandler
	Payment PaymentHandler
	Call    CallHandler
}

type implUseCase struct {
	l          pkgLog.Logger
	classifier intent.Classifier
	handlers   Handlers
	now        func() time.Time
}

// New creates a new automation UseCase instance.
func New(l pkgLog.Logger, classifier intent.Classifier, handlers Handlers) *implUseCase {
	return &implUseCase{
		l:          l,
		classifier: classifier,
		handlers:   handlers,
		now:        time.Now,
	}
}

// WithClock overrides the timestamp source. Used in tests.
func (uc *implUseCase) WithClock(now func() time.Time) *implUseCase {
	uc.now = now
	return uc
}
