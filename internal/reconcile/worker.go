package reconcile

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielolaitan/invoice-agent/internal/entity"
)

// Registry exposes the vendor and project catalogs the engine matches against.
type Registry interface {
	ListVendors(ctx context.Context) ([]entity.Vendor, error)
	ListProjects(ctx context.Context) ([]entity.Project, error)
}

// InvoiceStore is the slice of the invoice repository the worker needs.
type InvoiceStore interface {
	ListNeedsReconciliation(ctx context.Context, limit int) ([]*entity.Invoice, error)
	SaveReconciliation(ctx context.Context, inv *entity.Invoice) error
}

// Worker periodically sweeps unreconciled invoices through the engine. The
// registry snapshot is reloaded once per sweep so matches within a batch are
// consistent with each other.
type Worker struct {
	registry  Registry
	invoices  InvoiceStore
	interval  time.Duration
	batchSize int
	logger    *slog.Logger
}

func NewWorker(registry Registry, invoices InvoiceStore, interval time.Duration, batchSize int, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if batchSize <= 0 {
		batchSize = 50
	}
	return &Worker{
		registry:  registry,
		invoices:  invoices,
		interval:  interval,
		batchSize: batchSize,
		logger:    logger,
	}
}

// Run sweeps on a fixed interval until the context is cancelled. Sweep errors
// are logged and the loop keeps going.
func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("reconcile worker started",
		"interval", w.interval, "batch_size", w.batchSize)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("reconcile worker stopped")
			return
		case <-ticker.C:
			if n, err := w.RunOnce(ctx); err != nil {
				w.logger.Error("reconcile sweep failed", "error", err)
			} else if n > 0 {
				w.logger.Info("reconcile sweep done", "updated", n)
			}
		}
	}
}

// RunOnce processes one batch and returns how many invoices were updated.
func (w *Worker) RunOnce(ctx context.Context) (int, error) {
	invoices, err := w.invoices.ListNeedsReconciliation(ctx, w.batchSize)
	if err != nil {
		return 0, fmt.Errorf("list invoices: %w", err)
	}
	if len(invoices) == 0 {
		return 0, nil
	}

	engine, err := w.loadEngine(ctx)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, inv := range invoices {
		if !engine.ReconcileInvoice(inv) {
			continue
		}
		if err := w.invoices.SaveReconciliation(ctx, inv); err != nil {
			w.logger.Error("save reconciliation failed", "invoice_id", inv.ID, "error", err)
			continue
		}
		updated++
	}
	return updated, nil
}

func (w *Worker) loadEngine(ctx context.Context) (*Engine, error) {
	vendors, err := w.registry.ListVendors(ctx)
	if err != nil {
		return nil, fmt.Errorf("load vendors: %w", err)
	}
	projects, err := w.registry.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}
	return NewEngine(vendors, projects, w.logger), nil
}
