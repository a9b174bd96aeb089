package common

import (
	"context"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
	ContextKeyMessageID contextKey = "message_id"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from context
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithMessageID adds a source message ID to the context
func WithMessageID(ctx context.Context, messageID string) context.Context {
	return context.WithValue(ctx, ContextKeyMessageID, messageID)
}

// MessageIDFromContext extracts the source message ID from context
func MessageIDFromContext(ctx context.Context) string {
	if messageID, ok := ctx.Value(ContextKeyMessageID).(string); ok {
		return messageID
	}
	return ""
}
