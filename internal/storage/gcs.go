package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"time"

	gcs "cloud.google.com/go/storage"
)

// GCSStore stores blobs in a Google Cloud Storage bucket under a fixed key
// prefix. Credentials come from application default credentials.
type GCSStore struct {
	client *gcs.Client
	bucket string
	prefix string
	logger *slog.Logger
}

func NewGCSStore(ctx context.Context, bucket, prefix string, logger *slog.Logger) (*GCSStore, error) {
	if bucket == "" {
		return nil, fmt.Errorf("bucket name is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}
	return &GCSStore{client: client, bucket: bucket, prefix: prefix, logger: logger}, nil
}

func (s *GCSStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	object := s.objectName(key)
	wc := s.client.Bucket(s.bucket).Object(object).NewWriter(ctx)
	wc.ContentType = contentType

	if _, err := wc.Write(data); err != nil {
		wc.Close()
		return "", fmt.Errorf("write object %s: %w", object, err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("close object %s: %w", object, err)
	}

	uri := fmt.Sprintf("gs://%s/%s", s.bucket, object)
	s.logger.Debug("blob stored", "uri", uri, "bytes", len(data))
	return uri, nil
}

func (s *GCSStore) Get(ctx context.Context, key string) ([]byte, error) {
	object := s.objectName(key)
	rc, err := s.client.Bucket(s.bucket).Object(object).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("open object %s: %w", object, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read object %s: %w", object, err)
	}
	return data, nil
}

func (s *GCSStore) Presign(key string, ttl time.Duration) (string, error) {
	opts := &gcs.SignedURLOptions{
		Scheme:  gcs.SigningSchemeV4,
		Method:  "GET",
		Expires: time.Now().Add(ttl),
	}
	url, err := s.client.Bucket(s.bucket).SignedURL(s.objectName(key), opts)
	if err != nil {
		return "", fmt.Errorf("sign url for %s: %w", key, err)
	}
	return url, nil
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}

func (s *GCSStore) objectName(key string) string {
	if s.prefix == "" {
		return key
	}
	return path.Join(s.prefix, key)
}
