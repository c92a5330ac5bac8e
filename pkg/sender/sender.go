package sender

import "context"

// Sender delivers a push and reports the outcome.
type Sender interface {
	Send(ctx context.Context, p Push) Outcome
}

// Recorder receives every attempt that obtained an HTTP status.
// Implementations must not fail the send; errors are theirs to handle.
type Recorder interface {
	Record(appName, alertText string, statusCode int)
}

// NopRecorder drops every record.
type NopRecorder struct{}

// Record does nothing.
func (NopRecorder) Record(string, string, int) {}
