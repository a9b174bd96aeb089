package async

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const popTimeout = 5 * time.Second

// RedisQueue pushes jobs onto a Redis list so extraction survives restarts and
// can fan out across processes. Enqueue LPUSHes; consumers BRPOP and hand the
// job to the same Handler the in-process queue uses.
type RedisQueue struct {
	client  *redis.Client
	key     string
	handler Handler
	logger  *slog.Logger
	timeout time.Duration

	wg     sync.WaitGroup
	cancel context.CancelFunc

	mu     sync.Mutex
	closed bool
}

func NewRedisQueue(client *redis.Client, key string, handler Handler, workers int, processTimeout time.Duration, logger *slog.Logger) *RedisQueue {
	if logger == nil {
		logger = slog.Default()
	}
	if workers <= 0 {
		workers = 4
	}
	if processTimeout <= 0 {
		processTimeout = 3 * time.Minute
	}

	ctx, cancel := context.WithCancel(context.Background())
	q := &RedisQueue{
		client:  client,
		key:     key,
		handler: handler,
		logger:  logger,
		timeout: processTimeout,
		cancel:  cancel,
	}
	for i := 0; i < workers; i++ {
		q.wg.Add(1)
		go q.consume(ctx, i+1)
	}
	return q
}

func (q *RedisQueue) Enqueue(ctx context.Context, job Job) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("encode job: %w", err)
	}
	if err := q.client.LPush(ctx, q.key, payload).Err(); err != nil {
		return fmt.Errorf("enqueue message %s: %w", job.MessageID, err)
	}
	q.logger.Info("queued message for extraction", "message_id", job.MessageID, "queue", q.key)
	return nil
}

func (q *RedisQueue) consume(ctx context.Context, workerID int) {
	defer q.wg.Done()
	q.logger.Info("redis worker started", "worker_id", workerID, "queue", q.key)

	for {
		res, err := q.client.BRPop(ctx, popTimeout, q.key).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			if ctx.Err() != nil {
				q.logger.Info("redis worker stopped", "worker_id", workerID)
				return
			}
			q.logger.Error("pop failed", "worker_id", workerID, "error", err)
			time.Sleep(time.Second)
			continue
		}
		// BRPOP returns [key, value]
		if len(res) != 2 {
			continue
		}

		var job Job
		if err := json.Unmarshal([]byte(res[1]), &job); err != nil {
			q.logger.Error("malformed job dropped", "worker_id", workerID, "error", err)
			continue
		}

		jobCtx, cancel := context.WithTimeout(ctx, q.timeout)
		err = q.handler.HandleMessage(jobCtx, job.MessageID, job.Force)
		cancel()

		if err != nil {
			q.logger.Error("processing failed", "worker_id", workerID, "message_id", job.MessageID, "error", err)
		} else {
			q.logger.Info("processed message", "worker_id", workerID, "message_id", job.MessageID)
		}
	}
}

func (q *RedisQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()

	q.cancel()
	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("redis workers stopped")
	}
}
