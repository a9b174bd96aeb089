package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/danielolaitan/invoice-agent/constants"
	"github.com/danielolaitan/invoice-agent/gen/ent"
	"github.com/danielolaitan/invoice-agent/gen/ent/invoice"
	"github.com/danielolaitan/invoice-agent/internal/common"
	"github.com/danielolaitan/invoice-agent/internal/entity"
	"github.com/danielolaitan/invoice-agent/internal/utils"
)

type InvoiceRepository interface {
	Create(ctx context.Context, inv *entity.Invoice) (*entity.Invoice, error)
	UpdateExtraction(ctx context.Context, inv *entity.Invoice) (*entity.Invoice, error)
	GetBySourceEmailID(ctx context.Context, sourceEmailID string) (*entity.Invoice, error)
	ExistsBySourceEmailID(ctx context.Context, sourceEmailID string) (bool, error)
	List(ctx context.Context, fromDate, toDate *time.Time) ([]*entity.Invoice, error)
	ListNeedsReconciliation(ctx context.Context, limit int) ([]*entity.Invoice, error)
	SaveReconciliation(ctx context.Context, inv *entity.Invoice) error
}

type invoiceRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInvoiceRepository(client *ent.Client, logger *slog.Logger) InvoiceRepository {
	return &invoiceRepository{
		client: client,
		logger: logger,
	}
}

// Create persists one invoice per source email. A second insert for the same
// email hits the unique constraint and comes back as ErrAlreadyProcessed so
// retried jobs stay no-ops.
func (r *invoiceRepository) Create(ctx context.Context, inv *entity.Invoice) (*entity.Invoice, error) {
	builder := r.client.Invoice.Create().
		SetSourceEmailID(inv.SourceEmailID).
		SetRawEmailURI(inv.RawEmailURI).
		SetAttachments(inv.Attachments).
		SetRawText(inv.RawText).
		SetExtracted(inv.Extracted).
		SetNormalized(inv.Normalized).
		SetExtra(inv.Extra).
		SetExtractorVersion(inv.ExtractorVersion).
		SetReconciliationStatus(string(inv.ReconciliationStatus))

	if inv.ID != uuid.Nil {
		builder = builder.SetID(inv.ID)
	}
	if len(inv.Tags) > 0 {
		builder = builder.SetTags(inv.Tags)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			r.logger.Info("invoice already persisted", "source_email_id", inv.SourceEmailID)
			return nil, fmt.Errorf("%w: %v", common.ErrAlreadyProcessed, err)
		}
		r.logger.Error("failed to create invoice", "source_email_id", inv.SourceEmailID, "error", err)
		return nil, err
	}
	return utils.ToInvoice(row), nil
}

// UpdateExtraction replaces the extraction output on an existing row during a
// forced reprocess. Rows a human already settled (manual or ignored) keep
// their status and normalized view; everything else goes back to needs_review
// for the next reconciliation sweep.
func (r *invoiceRepository) UpdateExtraction(ctx context.Context, inv *entity.Invoice) (*entity.Invoice, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	row, err := tx.Invoice.Query().
		Where(invoice.SourceEmailID(inv.SourceEmailID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}

	update := tx.Invoice.UpdateOne(row).
		SetRawEmailURI(inv.RawEmailURI).
		SetAttachments(inv.Attachments).
		SetRawText(inv.RawText).
		SetExtracted(inv.Extracted).
		SetExtra(inv.Extra).
		SetExtractorVersion(inv.ExtractorVersion)

	status := constants.ReconciliationStatus(row.ReconciliationStatus)
	if status != constants.StatusManual && status != constants.StatusIgnored {
		update = update.
			SetReconciliationStatus(string(constants.StatusNeedsReview)).
			SetNormalized(entity.Normalized{}).
			ClearVendorID().
			ClearProjectID()
	}

	row, err = update.Save(ctx)
	if err != nil {
		r.logger.Error("failed to update extraction", "source_email_id", inv.SourceEmailID, "error", err)
		return nil, err
	}

	err = tx.InvoiceAudit.Create().
		SetInvoiceID(row.ID).
		SetActor("engine").
		SetFieldName("extracted").
		SetNewValue(inv.ExtractorVersion).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to write audit entry", "invoice_id", row.ID, "error", err)
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return utils.ToInvoice(row), nil
}

func (r *invoiceRepository) GetBySourceEmailID(ctx context.Context, sourceEmailID string) (*entity.Invoice, error) {
	row, err := r.client.Invoice.Query().
		Where(invoice.SourceEmailID(sourceEmailID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return utils.ToInvoice(row), nil
}

func (r *invoiceRepository) ExistsBySourceEmailID(ctx context.Context, sourceEmailID string) (bool, error) {
	return r.client.Invoice.Query().
		Where(invoice.SourceEmailID(sourceEmailID)).
		Exist(ctx)
}

func (r *invoiceRepository) List(ctx context.Context, fromDate, toDate *time.Time) ([]*entity.Invoice, error) {
	q := r.client.Invoice.Query()
	if fromDate != nil {
		q = q.Where(invoice.CreatedAtGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(invoice.CreatedAtLTE(*toDate))
	}
	rows, err := q.Order(invoice.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list invoices", "error", err)
		return nil, err
	}

	result := make([]*entity.Invoice, len(rows))
	for i, row := range rows {
		result[i] = utils.ToInvoice(row)
	}
	return result, nil
}

func (r *invoiceRepository) ListNeedsReconciliation(ctx context.Context, limit int) ([]*entity.Invoice, error) {
	rows, err := r.client.Invoice.Query().
		Where(invoice.ReconciliationStatus(string(constants.StatusNeedsReview))).
		Order(invoice.ByCreatedAt()).
		Limit(limit).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list unreconciled invoices", "error", err)
		return nil, err
	}

	result := make([]*entity.Invoice, len(rows))
	for i, row := range rows {
		result[i] = utils.ToInvoice(row)
	}
	return result, nil
}

// SaveReconciliation writes back the normalized view plus an audit entry in
// one transaction.
func (r *invoiceRepository) SaveReconciliation(ctx context.Context, inv *entity.Invoice) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	update := tx.Invoice.UpdateOneID(inv.ID).
		SetNormalized(inv.Normalized).
		SetExtra(inv.Extra).
		SetReconciliationStatus(string(inv.ReconciliationStatus))
	if inv.Normalized.VendorID != nil {
		update = update.SetVendorID(*inv.Normalized.VendorID)
	}
	if inv.Normalized.ProjectID != nil {
		update = update.SetProjectID(*inv.Normalized.ProjectID)
	}
	if err = update.Exec(ctx); err != nil {
		r.logger.Error("failed to save reconciliation", "invoice_id", inv.ID, "error", err)
		return err
	}

	err = tx.InvoiceAudit.Create().
		SetInvoiceID(inv.ID).
		SetActor("engine").
		SetFieldName("reconciliation_status").
		SetNewValue(string(inv.ReconciliationStatus)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to write audit entry", "invoice_id", inv.ID, "error", err)
		return err
	}

	return tx.Commit()
}
