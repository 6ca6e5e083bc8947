package automation

import "errors"

// Domain-specific errors for the automation package.
var (
	ErrEmptyMessage   = errors.New("message is empty")
	ErrInvalidChannel = errors.New("channel is not one of chat, email, call")
	ErrClassification = errors.New("intent classification failed")
	ErrHandler        = errors.New("automation handler failed")
)
