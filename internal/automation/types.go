package automation

import (
	"time"

	"nextplay-automation/internal/intent"
	"nextplay-automation/internal/model"
)

// AutomateInput is the validated inbound request for one automation run.
type AutomateInput struct {
	Message      string        // raw customer message text
	Channel      model.Channel // parsed at the boundary; empty means default
	CustomerName string        // optional; defaulted at handler-invocation time
}

// Result is the complete, immutable output of one dispatch cycle.
// It is either fully populated or not produced at all.
type Result struct {
	Intent intent.Intent
	Reply  string
	Time   time.Time
}
