package recorder

import "time"

// NoopRecorder is a no-op implementation used when metrics are not exposed.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordMessage(_, _ string)                  {}
func (n *NoopRecorder) RecordLookup(_, _ string, _ time.Duration) {}
