package response

// User-facing messages shared across handlers.
const (
	// DefaultErrorMessage is the non-specific message for unexpected failures.
	DefaultErrorMessage = "Something went wrong. Please try again later."

	// RateLimitedMessage is returned when a client exceeds the request budget.
	RateLimitedMessage = "Too many requests. Please slow down."
)
