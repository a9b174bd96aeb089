package async

import (
	"context"
	"time"
)

// Job points at one inbound email message awaiting extraction.
type Job struct {
	MessageID   string    `json:"message_id"`
	Force       bool      `json:"force,omitempty"` // reprocess even if already persisted
	SubmittedAt time.Time `json:"submitted_at"`
	TraceID     string    `json:"trace_id,omitempty"`
}

// Handler consumes one job. Implemented by the extraction pipeline. A forced
// job re-extracts the message even when an invoice row already exists.
type Handler interface {
	HandleMessage(ctx context.Context, messageID string, force bool) error
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
