package async

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingHandler struct {
	mu     sync.Mutex
	seen   []string
	forced []bool
	done   chan struct{}
	want   int
}

func (h *countingHandler) HandleMessage(_ context.Context, messageID string, force bool) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.seen = append(h.seen, messageID)
	h.forced = append(h.forced, force)
	if len(h.seen) == h.want {
		close(h.done)
	}
	return nil
}

func TestWorkerQueueProcessesAllJobs(t *testing.T) {
	h := &countingHandler{done: make(chan struct{}), want: 5}
	q := NewWorkerQueue(h, nil, WithWorkers(2), WithQueueSize(8))

	for _, id := range []string{"m1", "m2", "m3", "m4", "m5"} {
		require.NoError(t, q.Enqueue(context.Background(), Job{MessageID: id}))
	}

	select {
	case <-h.done:
	case <-time.After(5 * time.Second):
		t.Fatal("jobs not processed in time")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	h.mu.Lock()
	defer h.mu.Unlock()
	assert.ElementsMatch(t, []string{"m1", "m2", "m3", "m4", "m5"}, h.seen)
}

func TestWorkerQueueForwardsForceFlag(t *testing.T) {
	h := &countingHandler{done: make(chan struct{}), want: 2}
	q := NewWorkerQueue(h, nil, WithWorkers(1), WithQueueSize(4))

	require.NoError(t, q.Enqueue(context.Background(), Job{MessageID: "m1", Force: true}))
	require.NoError(t, q.Enqueue(context.Background(), Job{MessageID: "m2"}))

	select {
	case <-h.done:
	case <-time.After(5 * time.Second):
		t.Fatal("jobs not processed in time")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	h.mu.Lock()
	defer h.mu.Unlock()
	assert.Equal(t, []string{"m1", "m2"}, h.seen)
	assert.Equal(t, []bool{true, false}, h.forced)
}

func TestWorkerQueueEnqueueAfterShutdownIsNoop(t *testing.T) {
	h := &countingHandler{done: make(chan struct{}), want: 1}
	q := NewWorkerQueue(h, nil, WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	assert.NoError(t, q.Enqueue(context.Background(), Job{MessageID: "late"}))

	h.mu.Lock()
	defer h.mu.Unlock()
	assert.Empty(t, h.seen)
}

func TestWorkerQueueShutdownDrainsPendingJobs(t *testing.T) {
	h := &countingHandler{done: make(chan struct{}), want: 3}
	q := NewWorkerQueue(h, nil, WithWorkers(1), WithQueueSize(8))

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, q.Enqueue(context.Background(), Job{MessageID: id}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	h.mu.Lock()
	defer h.mu.Unlock()
	assert.Len(t, h.seen, 3)
}
