package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/danielolaitan/invoice-agent/constants"
	"github.com/danielolaitan/invoice-agent/internal/common"
	"github.com/danielolaitan/invoice-agent/internal/entity"
	"github.com/danielolaitan/invoice-agent/internal/extract"
	"github.com/danielolaitan/invoice-agent/internal/ingest"
	"github.com/danielolaitan/invoice-agent/internal/repository"
	"github.com/danielolaitan/invoice-agent/internal/storage"
)

// AttachmentExtractor turns attachment bytes into text and candidate line
// items. Satisfied by document.Extractor.
type AttachmentExtractor interface {
	Extract(ctx context.Context, data []byte, filename string) (string, []entity.LineItem)
}

// ItemCategorizer assigns categories and BOM numbers to line items.
type ItemCategorizer interface {
	Categorize(ctx context.Context, items []entity.LineItem) []entity.LineItem
}

// Processor coordinates one message end to end: fetch, archive the raw email,
// extract text and fields from every attachment, categorize line items, and
// persist a single invoice record.
type Processor struct {
	logger           *slog.Logger
	source           ingest.MailSource
	extractor        AttachmentExtractor
	engine           *extract.Engine
	categorizer      ItemCategorizer
	blobs            storage.BlobStore
	invoices         repository.InvoiceRepository
	extractorVersion string
}

func NewProcessor(
	logger *slog.Logger,
	source ingest.MailSource,
	extractor AttachmentExtractor,
	engine *extract.Engine,
	categorizer ItemCategorizer,
	blobs storage.BlobStore,
	invoices repository.InvoiceRepository,
	extractorVersion string,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if extractorVersion == "" {
		extractorVersion = "v1"
	}
	return &Processor{
		logger:           logger,
		source:           source,
		extractor:        extractor,
		engine:           engine,
		categorizer:      categorizer,
		blobs:            blobs,
		invoices:         invoices,
		extractorVersion: extractorVersion,
	}
}

// HandleMessage is the queue entry point: fetch by ID, then process.
func (p *Processor) HandleMessage(ctx context.Context, messageID string, force bool) error {
	msg, err := p.source.Fetch(ctx, messageID)
	if err != nil {
		return fmt.Errorf("fetch message: %w", err)
	}
	_, err = p.ProcessMessage(ctx, msg, force)
	return err
}

// ProcessMessage ingests one email. Reprocessing a message that already has an
// invoice row is a no-op unless force is set: the unique source_email_id
// constraint is the final arbiter even when two workers race. A forced run
// re-extracts and replaces the extraction output on the existing row.
func (p *Processor) ProcessMessage(ctx context.Context, msg *ingest.Message, force bool) (uuid.UUID, error) {
	ctx = common.WithMessageID(ctx, msg.ID)

	exists, err := p.invoices.ExistsBySourceEmailID(ctx, msg.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("existence check: %w", err)
	}
	if exists && !force {
		p.logger.Info("message already processed", "message_id", msg.ID)
		p.markProcessed(ctx, msg.ID)
		return uuid.Nil, nil
	}

	rawURI, attachments, err := p.archive(ctx, msg)
	if err != nil {
		return uuid.Nil, err
	}

	docText, items := p.extractAttachments(ctx, msg)
	fields := p.engine.ExtractAll(docText, msg.Body)

	if items = p.categorizer.Categorize(ctx, items); len(items) > 0 {
		fields[extract.FieldLineItems] = extract.Field{
			Value:      items,
			Confidence: 0.85,
			Provenance: extract.Provenance{Method: "table_extraction_with_categorization"},
		}
	}

	inv := &entity.Invoice{
		ID:                   uuid.New(),
		SourceEmailID:        msg.ID,
		RawEmailURI:          rawURI,
		Attachments:          attachments,
		RawText:              docText,
		Extracted:            fields,
		ExtractorVersion:     p.extractorVersion,
		ReconciliationStatus: constants.StatusNeedsReview,
		Extra:                entity.Extra{AvgConfidence: fields.AverageConfidence()},
	}

	var created *entity.Invoice
	if exists {
		created, err = p.invoices.UpdateExtraction(ctx, inv)
		if err != nil {
			return uuid.Nil, fmt.Errorf("reprocess invoice: %w", err)
		}
		p.logger.Info("message force reprocessed", "message_id", msg.ID, "invoice_id", created.ID)
	} else {
		created, err = p.invoices.Create(ctx, inv)
		if err != nil {
			if errors.Is(err, common.ErrAlreadyProcessed) {
				p.logger.Info("lost insert race, message already persisted", "message_id", msg.ID)
				p.markProcessed(ctx, msg.ID)
				return uuid.Nil, nil
			}
			return uuid.Nil, fmt.Errorf("persist invoice: %w", err)
		}
	}

	p.storeArtifact(ctx, created.ID, fields)
	p.markProcessed(ctx, msg.ID)

	p.logger.Info("message processed",
		"message_id", msg.ID,
		"invoice_id", created.ID,
		"attachments", len(attachments),
		"line_items", len(items),
		"avg_confidence", inv.Extra.AvgConfidence,
	)
	return created.ID, nil
}

// archive stores the raw message and its attachments in the blob store.
func (p *Processor) archive(ctx context.Context, msg *ingest.Message) (string, []entity.Attachment, error) {
	rawJSON, err := json.Marshal(msg)
	if err != nil {
		return "", nil, fmt.Errorf("encode message: %w", err)
	}
	rawURI, err := p.blobs.Put(ctx, "raw/"+msg.ID+".json", rawJSON, "application/json")
	if err != nil {
		return "", nil, fmt.Errorf("store raw message: %w", err)
	}

	attachments := make([]entity.Attachment, 0, len(msg.Attachments))
	for _, att := range msg.Attachments {
		key := "attachments/" + msg.ID + "/" + att.Filename
		uri, err := p.blobs.Put(ctx, key, att.Data, att.MIMEType)
		if err != nil {
			return "", nil, fmt.Errorf("store attachment %s: %w", att.Filename, err)
		}
		attachments = append(attachments, entity.Attachment{
			Filename: att.Filename,
			URI:      uri,
			Format:   constants.FormatForFilename(att.Filename),
		})
	}
	return rawURI, attachments, nil
}

// extractAttachments concatenates text from every readable attachment and
// pools their line items. Unreadable attachments contribute nothing.
func (p *Processor) extractAttachments(ctx context.Context, msg *ingest.Message) (string, []entity.LineItem) {
	var parts []string
	var items []entity.LineItem
	for _, att := range msg.Attachments {
		text, attItems := p.extractor.Extract(ctx, att.Data, att.Filename)
		if strings.TrimSpace(text) == "" {
			p.logger.Warn("attachment yielded no text", "message_id", msg.ID, "filename", att.Filename)
			continue
		}
		parts = append(parts, text)
		items = append(items, attItems...)
	}
	return strings.Join(parts, "\n\n"), items
}

// storeArtifact writes the extraction result as a JSON artifact next to the
// raw mail. Failures are logged, not fatal: the database row is the record.
func (p *Processor) storeArtifact(ctx context.Context, invoiceID uuid.UUID, fields extract.FieldMap) {
	payload, err := json.MarshalIndent(fields, "", "  ")
	if err != nil {
		p.logger.Warn("could not encode extraction artifact", "invoice_id", invoiceID, "error", err)
		return
	}
	if _, err := p.blobs.Put(ctx, "extraction/"+invoiceID.String()+".json", payload, "application/json"); err != nil {
		p.logger.Warn("could not store extraction artifact", "invoice_id", invoiceID, "error", err)
	}
}

func (p *Processor) markProcessed(ctx context.Context, messageID string) {
	if err := p.source.MarkProcessed(ctx, messageID); err != nil {
		p.logger.Warn("could not label processed message", "message_id", messageID, "error", err)
	}
}
