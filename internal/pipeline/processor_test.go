package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielolaitan/invoice-agent/constants"
	"github.com/danielolaitan/invoice-agent/internal/common"
	"github.com/danielolaitan/invoice-agent/internal/entity"
	"github.com/danielolaitan/invoice-agent/internal/extract"
	"github.com/danielolaitan/invoice-agent/internal/ingest"
	"github.com/danielolaitan/invoice-agent/internal/storage"
)

type fakeMailSource struct {
	messages map[string]*ingest.Message
	labeled  []string
}

func (f *fakeMailSource) Search(context.Context, int64) ([]string, error) { return nil, nil }
func (f *fakeMailSource) Fetch(_ context.Context, id string) (*ingest.Message, error) {
	return f.messages[id], nil
}
func (f *fakeMailSource) MarkProcessed(_ context.Context, id string) error {
	f.labeled = append(f.labeled, id)
	return nil
}

type fakeInvoiceRepo struct {
	created  []*entity.Invoice
	updated  []*entity.Invoice
	existing map[string]bool
}

func (f *fakeInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) (*entity.Invoice, error) {
	if f.existing[inv.SourceEmailID] {
		return nil, common.ErrAlreadyProcessed
	}
	f.created = append(f.created, inv)
	return inv, nil
}
func (f *fakeInvoiceRepo) UpdateExtraction(_ context.Context, inv *entity.Invoice) (*entity.Invoice, error) {
	if !f.existing[inv.SourceEmailID] {
		return nil, common.ErrNotFound
	}
	f.updated = append(f.updated, inv)
	return inv, nil
}
func (f *fakeInvoiceRepo) GetBySourceEmailID(context.Context, string) (*entity.Invoice, error) {
	return nil, common.ErrNotFound
}
func (f *fakeInvoiceRepo) ExistsBySourceEmailID(_ context.Context, id string) (bool, error) {
	return f.existing[id], nil
}
func (f *fakeInvoiceRepo) List(context.Context, *time.Time, *time.Time) ([]*entity.Invoice, error) {
	return nil, nil
}
func (f *fakeInvoiceRepo) ListNeedsReconciliation(context.Context, int) ([]*entity.Invoice, error) {
	return nil, nil
}
func (f *fakeInvoiceRepo) SaveReconciliation(context.Context, *entity.Invoice) error { return nil }

type fakeExtractor struct {
	text  string
	items []entity.LineItem
}

func (f *fakeExtractor) Extract(context.Context, []byte, string) (string, []entity.LineItem) {
	return f.text, f.items
}

type passthroughCategorizer struct{}

func (passthroughCategorizer) Categorize(_ context.Context, items []entity.LineItem) []entity.LineItem {
	for i := range items {
		items[i].Category = constants.Other
		items[i].BOMNumber = constants.BOMNumber(constants.Other, i+1)
	}
	return items
}

func receiptMessage(id string) *ingest.Message {
	return &ingest.Message{
		ID:      id,
		From:    "billing@homedepot.com",
		Subject: "Your receipt",
		Body:    "Thank you for shopping with us.\nDate: 01/15/2024",
		Attachments: []ingest.Attachment{{
			Filename: "receipt.pdf",
			MIMEType: "application/pdf",
			Data:     []byte("%PDF-1.4 stub"),
		}},
	}
}

func newTestProcessor(t *testing.T, source ingest.MailSource, repo *fakeInvoiceRepo, ext *fakeExtractor) *Processor {
	t.Helper()
	blobs, err := storage.NewFSStore(t.TempDir())
	require.NoError(t, err)
	return NewProcessor(nil, source, ext, extract.NewEngine(nil), passthroughCategorizer{}, blobs, repo, "v1")
}

func TestProcessMessagePersistsSingleInvoice(t *testing.T) {
	source := &fakeMailSource{messages: map[string]*ingest.Message{"m1": receiptMessage("m1")}}
	repo := &fakeInvoiceRepo{existing: map[string]bool{}}
	ext := &fakeExtractor{
		text: "THE HOME DEPOT\nOrder Total: $326.18\nSubtotal: $307.72",
		items: []entity.LineItem{
			{Description: "12-2 NM-B wire", Quantity: 1, Subtotal: 89.97},
		},
	}
	p := newTestProcessor(t, source, repo, ext)

	id, err := p.ProcessMessage(context.Background(), source.messages["m1"], false)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	require.Len(t, repo.created, 1)
	inv := repo.created[0]
	assert.Equal(t, "m1", inv.SourceEmailID)
	assert.Equal(t, constants.StatusNeedsReview, inv.ReconciliationStatus)
	assert.Equal(t, "v1", inv.ExtractorVersion)
	assert.NotEmpty(t, inv.RawEmailURI)
	require.Len(t, inv.Attachments, 1)
	assert.Equal(t, "receipt.pdf", inv.Attachments[0].Filename)

	vendor, ok := inv.Extracted.String(extract.FieldVendorName)
	require.True(t, ok)
	assert.Equal(t, "HOME DEPOT", vendor)
	total, ok := inv.Extracted.Float(extract.FieldTotalAmount)
	require.True(t, ok)
	assert.Equal(t, 326.18, total)

	itemsField, ok := inv.Extracted[extract.FieldLineItems]
	require.True(t, ok)
	assert.Equal(t, "table_extraction_with_categorization", itemsField.Provenance.Method)
	assert.Greater(t, inv.Extra.AvgConfidence, 0.0)
	assert.Equal(t, []string{"m1"}, source.labeled)
}

func TestProcessMessageSkipsAlreadyPersisted(t *testing.T) {
	source := &fakeMailSource{messages: map[string]*ingest.Message{"m1": receiptMessage("m1")}}
	repo := &fakeInvoiceRepo{existing: map[string]bool{"m1": true}}
	p := newTestProcessor(t, source, repo, &fakeExtractor{})

	id, err := p.ProcessMessage(context.Background(), source.messages["m1"], false)
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, id)
	assert.Empty(t, repo.created)
	// still labeled so the mailbox search stops returning it
	assert.Equal(t, []string{"m1"}, source.labeled)
}

func TestProcessMessageDateFallsBackToBody(t *testing.T) {
	source := &fakeMailSource{messages: map[string]*ingest.Message{"m1": receiptMessage("m1")}}
	repo := &fakeInvoiceRepo{existing: map[string]bool{}}
	ext := &fakeExtractor{text: "ACME SUPPLIES\nOrder Total: $99.00"}
	p := newTestProcessor(t, source, repo, ext)

	_, err := p.ProcessMessage(context.Background(), source.messages["m1"], false)
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	date, ok := repo.created[0].Extracted.String(extract.FieldDate)
	require.True(t, ok)
	assert.Equal(t, "01/15/2024", date)
}

func TestProcessMessageUnreadableAttachmentStillPersists(t *testing.T) {
	source := &fakeMailSource{messages: map[string]*ingest.Message{"m1": receiptMessage("m1")}}
	repo := &fakeInvoiceRepo{existing: map[string]bool{}}
	p := newTestProcessor(t, source, repo, &fakeExtractor{text: ""})

	id, err := p.ProcessMessage(context.Background(), source.messages["m1"], false)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	require.Len(t, repo.created, 1)
	assert.Empty(t, repo.created[0].RawText)
	// no vendor can come from the message body greeting
	_, ok := repo.created[0].Extracted.String(extract.FieldVendorName)
	assert.False(t, ok)
}

func TestProcessMessageForceReextractsExisting(t *testing.T) {
	source := &fakeMailSource{messages: map[string]*ingest.Message{"m1": receiptMessage("m1")}}
	repo := &fakeInvoiceRepo{existing: map[string]bool{"m1": true}}
	ext := &fakeExtractor{text: "THE HOME DEPOT\nOrder Total: $326.18"}
	p := newTestProcessor(t, source, repo, ext)

	id, err := p.ProcessMessage(context.Background(), source.messages["m1"], true)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	assert.Empty(t, repo.created)
	require.Len(t, repo.updated, 1)
	assert.Equal(t, "m1", repo.updated[0].SourceEmailID)
	total, ok := repo.updated[0].Extracted.Float(extract.FieldTotalAmount)
	require.True(t, ok)
	assert.Equal(t, 326.18, total)
	assert.Equal(t, []string{"m1"}, source.labeled)
}

func TestHandleMessageFetchesThenProcesses(t *testing.T) {
	source := &fakeMailSource{messages: map[string]*ingest.Message{"m9": receiptMessage("m9")}}
	repo := &fakeInvoiceRepo{existing: map[string]bool{}}
	p := newTestProcessor(t, source, repo, &fakeExtractor{text: "ACME SUPPLIES\nOrder Total: $10.00"})

	require.NoError(t, p.HandleMessage(context.Background(), "m9", false))
	require.Len(t, repo.created, 1)
	assert.Equal(t, "m9", repo.created[0].SourceEmailID)
}
