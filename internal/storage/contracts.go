package storage

import (
	"context"
	"time"
)

// BlobStore persists raw emails, attachments, and extraction artifacts under
// opaque keys. Implementations: Google Cloud Storage for the daemon, a local
// directory for batch runs and tests.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (uri string, err error)
	Get(ctx context.Context, key string) ([]byte, error)
	Presign(key string, ttl time.Duration) (string, error)
}
