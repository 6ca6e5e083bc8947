package http

import (
	"errors"

	"nextplay-automation/internal/automation"
)

// User-facing error messages. Validation problems get a different message
// than runtime failures so the caller knows whether to fix the payload or
// retry, but neither leaks internal detail.
const (
	MsgInvalidPayload = "Invalid payload. Please check your request body."
	MsgGenerateFailed = "Unable to generate response. Please try again later."
)

// mapErrorMessage translates domain errors into a user-facing message.
// Validation errors from the use case layer are payload problems; everything
// else (classification, handler, unexpected) is reported generically.
func (h *handler) mapErrorMessage(err error) string {
	switch {
	case errors.Is(err, automation.ErrEmptyMessage),
		errors.Is(err, automation.ErrInvalidChannel):
		return MsgInvalidPayload
	default:
		return MsgGenerateFailed
	}
}
