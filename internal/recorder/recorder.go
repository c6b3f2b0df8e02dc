package recorder

import "time"

// Outcome labels.
const (
	OutcomeOK      = "ok"
	OutcomeFailed  = "failed"
	OutcomeUnknown = "unknown"
)

// Recorder counts what the bot does. Implementations must be safe for concurrent use.
type Recorder interface {
	// RecordMessage counts one dispatched message by intent and outcome.
	RecordMessage(intent, outcome string)
	// RecordLookup counts one gateway call and how long it took.
	RecordLookup(source, outcome string, elapsed time.Duration)
}
