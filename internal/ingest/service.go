package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielolaitan/invoice-agent/internal/async"
)

// SyncStats summarizes one mailbox sweep.
type SyncStats struct {
	Found    uint32
	Enqueued uint32
	Skipped  uint32
	Failed   uint32
}

// InvoiceChecker answers whether a message was already persisted, so resyncs
// do not requeue work the pipeline has finished.
type InvoiceChecker interface {
	ExistsBySourceEmailID(ctx context.Context, sourceEmailID string) (bool, error)
}

// SyncService polls the mail source and enqueues unseen messages for
// extraction.
type SyncService struct {
	source     MailSource
	invoices   InvoiceChecker
	queue      async.Queue
	maxResults int64
	logger     *slog.Logger
}

func NewSyncService(source MailSource, invoices InvoiceChecker, queue async.Queue, maxResults int64, logger *slog.Logger) *SyncService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SyncService{
		source:     source,
		invoices:   invoices,
		queue:      queue,
		maxResults: maxResults,
		logger:     logger,
	}
}

// Run sweeps the mailbox on a fixed interval until the context is cancelled.
func (s *SyncService) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info("mailbox sync started", "interval", interval)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("mailbox sync stopped")
			return
		case <-ticker.C:
			stats, err := s.SyncOnce(ctx)
			if err != nil {
				s.logger.Error("mailbox sync failed", "error", err)
				continue
			}
			if stats.Found > 0 {
				s.logger.Info("mailbox synced",
					"found", stats.Found,
					"enqueued", stats.Enqueued,
					"skipped", stats.Skipped,
					"failed", stats.Failed,
				)
			}
		}
	}
}

// SyncOnce performs a single search-and-enqueue pass. Per-message failures are
// counted, not fatal.
func (s *SyncService) SyncOnce(ctx context.Context) (SyncStats, error) {
	var stats SyncStats

	ids, err := s.source.Search(ctx, s.maxResults)
	if err != nil {
		return stats, fmt.Errorf("search: %w", err)
	}
	stats.Found = uint32(len(ids))

	for _, id := range ids {
		exists, err := s.invoices.ExistsBySourceEmailID(ctx, id)
		if err != nil {
			s.logger.Error("existence check failed", "message_id", id, "error", err)
			stats.Failed++
			continue
		}
		if exists {
			// already persisted; label it so the next search skips it
			if err := s.source.MarkProcessed(ctx, id); err != nil {
				s.logger.Warn("could not label processed message", "message_id", id, "error", err)
			}
			stats.Skipped++
			continue
		}

		job := async.Job{MessageID: id, SubmittedAt: time.Now().UTC()}
		if err := s.queue.Enqueue(ctx, job); err != nil {
			s.logger.Error("enqueue failed", "message_id", id, "error", err)
			stats.Failed++
			continue
		}
		stats.Enqueued++
	}
	return stats, nil
}
