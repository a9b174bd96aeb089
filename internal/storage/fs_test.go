package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSStoreRoundTrip(t *testing.T) {
	s, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	uri, err := s.Put(context.Background(), "inbox/raw/msg-1.json", []byte(`{"id":"msg-1"}`), "application/json")
	require.NoError(t, err)
	assert.Contains(t, uri, "file://")

	data, err := s.Get(context.Background(), "inbox/raw/msg-1.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"msg-1"}`, string(data))

	url, err := s.Presign("inbox/raw/msg-1.json", time.Minute)
	require.NoError(t, err)
	assert.Contains(t, url, "msg-1.json")
}

func TestFSStoreRejectsTraversalKeys(t *testing.T) {
	s, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	_, err = s.Put(context.Background(), "../escape.txt", []byte("x"), "text/plain")
	assert.Error(t, err)

	_, err = s.Get(context.Background(), "/etc/passwd")
	assert.Error(t, err)
}

func TestFSStoreGetMissingKey(t *testing.T) {
	s, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	_, err = s.Get(context.Background(), "inbox/raw/nope.json")
	assert.Error(t, err)
}
