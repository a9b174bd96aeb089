// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/danielolaitan/invoice-agent/gen/ent/invoice"
	"github.com/danielolaitan/invoice-agent/gen/ent/invoiceaudit"
	"github.com/danielolaitan/invoice-agent/gen/ent/predicate"
	"github.com/danielolaitan/invoice-agent/gen/ent/project"
	"github.com/danielolaitan/invoice-agent/gen/ent/vendor"
	"github.com/danielolaitan/invoice-agent/internal/entity"
	"github.com/danielolaitan/invoice-agent/internal/extract"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeInvoice      = "Invoice"
	TypeInvoiceAudit = "InvoiceAudit"
	TypeProject      = "Project"
	TypeVendor       = "Vendor"
)

// InvoiceMutation represents an operation that mutates the Invoice nodes in the graph.
type InvoiceMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	source_email_id       *string
	raw_email_uri         *string
	attachments           *[]entity.Attachment
	appendattachments     []entity.Attachment
	raw_text              *string
	extracted             *extract.FieldMap
	normalized            *entity.Normalized
	tags                  *[]string
	appendtags            []string
	extractor_version     *string
	reconciliation_status *string
	extra                 *entity.Extra
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	vendor                *int
	clearedvendor         bool
	project               *int
	clearedproject        bool
	audits                map[uuid.UUID]struct{}
	removedaudits         map[uuid.UUID]struct{}
	clearedaudits         bool
	done                  bool
	oldValue              func(context.Context) (*Invoice, error)
	predicates            []predicate.Invoice
}

var _ ent.Mutation = (*InvoiceMutation)(nil)

// invoiceOption allows management of the mutation configuration using functional options.
type invoiceOption func(*InvoiceMutation)

// newInvoiceMutation creates new mutation for the Invoice entity.
func newInvoiceMutation(c config, op Op, opts ...invoiceOption) *InvoiceMutation {
	m := &InvoiceMutation{
		config:        c,
		op:            op,
		typ:           TypeInvoice,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInvoiceID sets the ID field of the mutation.
func withInvoiceID(id uuid.UUID) invoiceOption {
	return func(m *InvoiceMutation) {
		var (
			err   error
			once  sync.Once
			value *Invoice
		)
		m.oldValue = func(ctx context.Context) (*Invoice, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Invoice.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInvoice sets the old Invoice of the mutation.
func withInvoice(node *Invoice) invoiceOption {
	return func(m *InvoiceMutation) {
		m.oldValue = func(context.Context) (*Invoice, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InvoiceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InvoiceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Invoice entities.
func (m *InvoiceMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InvoiceMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InvoiceMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Invoice.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourceEmailID sets the "source_email_id" field.
func (m *InvoiceMutation) SetSourceEmailID(s string) {
	m.source_email_id = &s
}

// SourceEmailID returns the value of the "source_email_id" field in the mutation.
func (m *InvoiceMutation) SourceEmailID() (r string, exists bool) {
	v := m.source_email_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceEmailID returns the old "source_email_id" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldSourceEmailID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceEmailID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceEmailID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceEmailID: %w", err)
	}
	return oldValue.SourceEmailID, nil
}

// ResetSourceEmailID resets all changes to the "source_email_id" field.
func (m *InvoiceMutation) ResetSourceEmailID() {
	m.source_email_id = nil
}

// SetRawEmailURI sets the "raw_email_uri" field.
func (m *InvoiceMutation) SetRawEmailURI(s string) {
	m.raw_email_uri = &s
}

// RawEmailURI returns the value of the "raw_email_uri" field in the mutation.
func (m *InvoiceMutation) RawEmailURI() (r string, exists bool) {
	v := m.raw_email_uri
	if v == nil {
		return
	}
	return *v, true
}

// OldRawEmailURI returns the old "raw_email_uri" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldRawEmailURI(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawEmailURI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawEmailURI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawEmailURI: %w", err)
	}
	return oldValue.RawEmailURI, nil
}

// ClearRawEmailURI clears the value of the "raw_email_uri" field.
func (m *InvoiceMutation) ClearRawEmailURI() {
	m.raw_email_uri = nil
	m.clearedFields[invoice.FieldRawEmailURI] = struct{}{}
}

// RawEmailURICleared returns if the "raw_email_uri" field was cleared in this mutation.
func (m *InvoiceMutation) RawEmailURICleared() bool {
	_, ok := m.clearedFields[invoice.FieldRawEmailURI]
	return ok
}

// ResetRawEmailURI resets all changes to the "raw_email_uri" field.
func (m *InvoiceMutation) ResetRawEmailURI() {
	m.raw_email_uri = nil
	delete(m.clearedFields, invoice.FieldRawEmailURI)
}

// SetAttachments sets the "attachments" field.
func (m *InvoiceMutation) SetAttachments(e []entity.Attachment) {
	m.attachments = &e
	m.appendattachments = nil
}

// Attachments returns the value of the "attachments" field in the mutation.
func (m *InvoiceMutation) Attachments() (r []entity.Attachment, exists bool) {
	v := m.attachments
	if v == nil {
		return
	}
	return *v, true
}

// OldAttachments returns the old "attachments" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldAttachments(ctx context.Context) (v []entity.Attachment, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttachments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttachments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttachments: %w", err)
	}
	return oldValue.Attachments, nil
}

// AppendAttachments adds e to the "attachments" field.
func (m *InvoiceMutation) AppendAttachments(e []entity.Attachment) {
	m.appendattachments = append(m.appendattachments, e...)
}

// AppendedAttachments returns the list of values that were appended to the "attachments" field in this mutation.
func (m *InvoiceMutation) AppendedAttachments() ([]entity.Attachment, bool) {
	if len(m.appendattachments) == 0 {
		return nil, false
	}
	return m.appendattachments, true
}

// ClearAttachments clears the value of the "attachments" field.
func (m *InvoiceMutation) ClearAttachments() {
	m.attachments = nil
	m.appendattachments = nil
	m.clearedFields[invoice.FieldAttachments] = struct{}{}
}

// AttachmentsCleared returns if the "attachments" field was cleared in this mutation.
func (m *InvoiceMutation) AttachmentsCleared() bool {
	_, ok := m.clearedFields[invoice.FieldAttachments]
	return ok
}

// ResetAttachments resets all changes to the "attachments" field.
func (m *InvoiceMutation) ResetAttachments() {
	m.attachments = nil
	m.appendattachments = nil
	delete(m.clearedFields, invoice.FieldAttachments)
}

// SetRawText sets the "raw_text" field.
func (m *InvoiceMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *InvoiceMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldRawText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ClearRawText clears the value of the "raw_text" field.
func (m *InvoiceMutation) ClearRawText() {
	m.raw_text = nil
	m.clearedFields[invoice.FieldRawText] = struct{}{}
}

// RawTextCleared returns if the "raw_text" field was cleared in this mutation.
func (m *InvoiceMutation) RawTextCleared() bool {
	_, ok := m.clearedFields[invoice.FieldRawText]
	return ok
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *InvoiceMutation) ResetRawText() {
	m.raw_text = nil
	delete(m.clearedFields, invoice.FieldRawText)
}

// SetExtracted sets the "extracted" field.
func (m *InvoiceMutation) SetExtracted(em extract.FieldMap) {
	m.extracted = &em
}

// Extracted returns the value of the "extracted" field in the mutation.
func (m *InvoiceMutation) Extracted() (r extract.FieldMap, exists bool) {
	v := m.extracted
	if v == nil {
		return
	}
	return *v, true
}

// OldExtracted returns the old "extracted" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldExtracted(ctx context.Context) (v extract.FieldMap, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtracted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtracted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtracted: %w", err)
	}
	return oldValue.Extracted, nil
}

// ClearExtracted clears the value of the "extracted" field.
func (m *InvoiceMutation) ClearExtracted() {
	m.extracted = nil
	m.clearedFields[invoice.FieldExtracted] = struct{}{}
}

// ExtractedCleared returns if the "extracted" field was cleared in this mutation.
func (m *InvoiceMutation) ExtractedCleared() bool {
	_, ok := m.clearedFields[invoice.FieldExtracted]
	return ok
}

// ResetExtracted resets all changes to the "extracted" field.
func (m *InvoiceMutation) ResetExtracted() {
	m.extracted = nil
	delete(m.clearedFields, invoice.FieldExtracted)
}

// SetNormalized sets the "normalized" field.
func (m *InvoiceMutation) SetNormalized(e entity.Normalized) {
	m.normalized = &e
}

// Normalized returns the value of the "normalized" field in the mutation.
func (m *InvoiceMutation) Normalized() (r entity.Normalized, exists bool) {
	v := m.normalized
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalized returns the old "normalized" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldNormalized(ctx context.Context) (v entity.Normalized, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalized is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalized requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalized: %w", err)
	}
	return oldValue.Normalized, nil
}

// ClearNormalized clears the value of the "normalized" field.
func (m *InvoiceMutation) ClearNormalized() {
	m.normalized = nil
	m.clearedFields[invoice.FieldNormalized] = struct{}{}
}

// NormalizedCleared returns if the "normalized" field was cleared in this mutation.
func (m *InvoiceMutation) NormalizedCleared() bool {
	_, ok := m.clearedFields[invoice.FieldNormalized]
	return ok
}

// ResetNormalized resets all changes to the "normalized" field.
func (m *InvoiceMutation) ResetNormalized() {
	m.normalized = nil
	delete(m.clearedFields, invoice.FieldNormalized)
}

// SetVendorID sets the "vendor_id" field.
func (m *InvoiceMutation) SetVendorID(i int) {
	m.vendor = &i
}

// VendorID returns the value of the "vendor_id" field in the mutation.
func (m *InvoiceMutation) VendorID() (r int, exists bool) {
	v := m.vendor
	if v == nil {
		return
	}
	return *v, true
}

// OldVendorID returns the old "vendor_id" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldVendorID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendorID: %w", err)
	}
	return oldValue.VendorID, nil
}

// ClearVendorID clears the value of the "vendor_id" field.
func (m *InvoiceMutation) ClearVendorID() {
	m.vendor = nil
	m.clearedFields[invoice.FieldVendorID] = struct{}{}
}

// VendorIDCleared returns if the "vendor_id" field was cleared in this mutation.
func (m *InvoiceMutation) VendorIDCleared() bool {
	_, ok := m.clearedFields[invoice.FieldVendorID]
	return ok
}

// ResetVendorID resets all changes to the "vendor_id" field.
func (m *InvoiceMutation) ResetVendorID() {
	m.vendor = nil
	delete(m.clearedFields, invoice.FieldVendorID)
}

// SetProjectID sets the "project_id" field.
func (m *InvoiceMutation) SetProjectID(i int) {
	m.project = &i
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *InvoiceMutation) ProjectID() (r int, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldProjectID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ClearProjectID clears the value of the "project_id" field.
func (m *InvoiceMutation) ClearProjectID() {
	m.project = nil
	m.clearedFields[invoice.FieldProjectID] = struct{}{}
}

// ProjectIDCleared returns if the "project_id" field was cleared in this mutation.
func (m *InvoiceMutation) ProjectIDCleared() bool {
	_, ok := m.clearedFields[invoice.FieldProjectID]
	return ok
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *InvoiceMutation) ResetProjectID() {
	m.project = nil
	delete(m.clearedFields, invoice.FieldProjectID)
}

// SetTags sets the "tags" field.
func (m *InvoiceMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *InvoiceMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *InvoiceMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *InvoiceMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *InvoiceMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[invoice.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *InvoiceMutation) TagsCleared() bool {
	_, ok := m.clearedFields[invoice.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *InvoiceMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, invoice.FieldTags)
}

// SetExtractorVersion sets the "extractor_version" field.
func (m *InvoiceMutation) SetExtractorVersion(s string) {
	m.extractor_version = &s
}

// ExtractorVersion returns the value of the "extractor_version" field in the mutation.
func (m *InvoiceMutation) ExtractorVersion() (r string, exists bool) {
	v := m.extractor_version
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractorVersion returns the old "extractor_version" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldExtractorVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractorVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractorVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractorVersion: %w", err)
	}
	return oldValue.ExtractorVersion, nil
}

// ResetExtractorVersion resets all changes to the "extractor_version" field.
func (m *InvoiceMutation) ResetExtractorVersion() {
	m.extractor_version = nil
}

// SetReconciliationStatus sets the "reconciliation_status" field.
func (m *InvoiceMutation) SetReconciliationStatus(s string) {
	m.reconciliation_status = &s
}

// ReconciliationStatus returns the value of the "reconciliation_status" field in the mutation.
func (m *InvoiceMutation) ReconciliationStatus() (r string, exists bool) {
	v := m.reconciliation_status
	if v == nil {
		return
	}
	return *v, true
}

// OldReconciliationStatus returns the old "reconciliation_status" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldReconciliationStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReconciliationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReconciliationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReconciliationStatus: %w", err)
	}
	return oldValue.ReconciliationStatus, nil
}

// ResetReconciliationStatus resets all changes to the "reconciliation_status" field.
func (m *InvoiceMutation) ResetReconciliationStatus() {
	m.reconciliation_status = nil
}

// SetExtra sets the "extra" field.
func (m *InvoiceMutation) SetExtra(e entity.Extra) {
	m.extra = &e
}

// Extra returns the value of the "extra" field in the mutation.
func (m *InvoiceMutation) Extra() (r entity.Extra, exists bool) {
	v := m.extra
	if v == nil {
		return
	}
	return *v, true
}

// OldExtra returns the old "extra" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldExtra(ctx context.Context) (v entity.Extra, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtra is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtra requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtra: %w", err)
	}
	return oldValue.Extra, nil
}

// ClearExtra clears the value of the "extra" field.
func (m *InvoiceMutation) ClearExtra() {
	m.extra = nil
	m.clearedFields[invoice.FieldExtra] = struct{}{}
}

// ExtraCleared returns if the "extra" field was cleared in this mutation.
func (m *InvoiceMutation) ExtraCleared() bool {
	_, ok := m.clearedFields[invoice.FieldExtra]
	return ok
}

// ResetExtra resets all changes to the "extra" field.
func (m *InvoiceMutation) ResetExtra() {
	m.extra = nil
	delete(m.clearedFields, invoice.FieldExtra)
}

// SetCreatedAt sets the "created_at" field.
func (m *InvoiceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InvoiceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InvoiceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InvoiceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InvoiceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InvoiceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearVendor clears the "vendor" edge to the Vendor entity.
func (m *InvoiceMutation) ClearVendor() {
	m.clearedvendor = true
	m.clearedFields[invoice.FieldVendorID] = struct{}{}
}

// VendorCleared reports if the "vendor" edge to the Vendor entity was cleared.
func (m *InvoiceMutation) VendorCleared() bool {
	return m.VendorIDCleared() || m.clearedvendor
}

// VendorIDs returns the "vendor" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// VendorID instead. It exists only for internal usage by the builders.
func (m *InvoiceMutation) VendorIDs() (ids []int) {
	if id := m.vendor; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetVendor resets all changes to the "vendor" edge.
func (m *InvoiceMutation) ResetVendor() {
	m.vendor = nil
	m.clearedvendor = false
}

// ClearProject clears the "project" edge to the Project entity.
func (m *InvoiceMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[invoice.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *InvoiceMutation) ProjectCleared() bool {
	return m.ProjectIDCleared() || m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *InvoiceMutation) ProjectIDs() (ids []int) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *InvoiceMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddAuditIDs adds the "audits" edge to the InvoiceAudit entity by ids.
func (m *InvoiceMutation) AddAuditIDs(ids ...uuid.UUID) {
	if m.audits == nil {
		m.audits = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.audits[ids[i]] = struct{}{}
	}
}

// ClearAudits clears the "audits" edge to the InvoiceAudit entity.
func (m *InvoiceMutation) ClearAudits() {
	m.clearedaudits = true
}

// AuditsCleared reports if the "audits" edge to the InvoiceAudit entity was cleared.
func (m *InvoiceMutation) AuditsCleared() bool {
	return m.clearedaudits
}

// RemoveAuditIDs removes the "audits" edge to the InvoiceAudit entity by IDs.
func (m *InvoiceMutation) RemoveAuditIDs(ids ...uuid.UUID) {
	if m.removedaudits == nil {
		m.removedaudits = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.audits, ids[i])
		m.removedaudits[ids[i]] = struct{}{}
	}
}

// RemovedAudits returns the removed IDs of the "audits" edge to the InvoiceAudit entity.
func (m *InvoiceMutation) RemovedAuditsIDs() (ids []uuid.UUID) {
	for id := range m.removedaudits {
		ids = append(ids, id)
	}
	return
}

// AuditsIDs returns the "audits" edge IDs in the mutation.
func (m *InvoiceMutation) AuditsIDs() (ids []uuid.UUID) {
	for id := range m.audits {
		ids = append(ids, id)
	}
	return
}

// ResetAudits resets all changes to the "audits" edge.
func (m *InvoiceMutation) ResetAudits() {
	m.audits = nil
	m.clearedaudits = false
	m.removedaudits = nil
}

// Where appends a list predicates to the InvoiceMutation builder.
func (m *InvoiceMutation) Where(ps ...predicate.Invoice) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InvoiceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InvoiceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Invoice, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InvoiceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InvoiceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Invoice).
func (m *InvoiceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InvoiceMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.source_email_id != nil {
		fields = append(fields, invoice.FieldSourceEmailID)
	}
	if m.raw_email_uri != nil {
		fields = append(fields, invoice.FieldRawEmailURI)
	}
	if m.attachments != nil {
		fields = append(fields, invoice.FieldAttachments)
	}
	if m.raw_text != nil {
		fields = append(fields, invoice.FieldRawText)
	}
	if m.extracted != nil {
		fields = append(fields, invoice.FieldExtracted)
	}
	if m.normalized != nil {
		fields = append(fields, invoice.FieldNormalized)
	}
	if m.vendor != nil {
		fields = append(fields, invoice.FieldVendorID)
	}
	if m.project != nil {
		fields = append(fields, invoice.FieldProjectID)
	}
	if m.tags != nil {
		fields = append(fields, invoice.FieldTags)
	}
	if m.extractor_version != nil {
		fields = append(fields, invoice.FieldExtractorVersion)
	}
	if m.reconciliation_status != nil {
		fields = append(fields, invoice.FieldReconciliationStatus)
	}
	if m.extra != nil {
		fields = append(fields, invoice.FieldExtra)
	}
	if m.created_at != nil {
		fields = append(fields, invoice.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, invoice.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InvoiceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case invoice.FieldSourceEmailID:
		return m.SourceEmailID()
	case invoice.FieldRawEmailURI:
		return m.RawEmailURI()
	case invoice.FieldAttachments:
		return m.Attachments()
	case invoice.FieldRawText:
		return m.RawText()
	case invoice.FieldExtracted:
		return m.Extracted()
	case invoice.FieldNormalized:
		return m.Normalized()
	case invoice.FieldVendorID:
		return m.VendorID()
	case invoice.FieldProjectID:
		return m.ProjectID()
	case invoice.FieldTags:
		return m.Tags()
	case invoice.FieldExtractorVersion:
		return m.ExtractorVersion()
	case invoice.FieldReconciliationStatus:
		return m.ReconciliationStatus()
	case invoice.FieldExtra:
		return m.Extra()
	case invoice.FieldCreatedAt:
		return m.CreatedAt()
	case invoice.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InvoiceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case invoice.FieldSourceEmailID:
		return m.OldSourceEmailID(ctx)
	case invoice.FieldRawEmailURI:
		return m.OldRawEmailURI(ctx)
	case invoice.FieldAttachments:
		return m.OldAttachments(ctx)
	case invoice.FieldRawText:
		return m.OldRawText(ctx)
	case invoice.FieldExtracted:
		return m.OldExtracted(ctx)
	case invoice.FieldNormalized:
		return m.OldNormalized(ctx)
	case invoice.FieldVendorID:
		return m.OldVendorID(ctx)
	case invoice.FieldProjectID:
		return m.OldProjectID(ctx)
	case invoice.FieldTags:
		return m.OldTags(ctx)
	case invoice.FieldExtractorVersion:
		return m.OldExtractorVersion(ctx)
	case invoice.FieldReconciliationStatus:
		return m.OldReconciliationStatus(ctx)
	case invoice.FieldExtra:
		return m.OldExtra(ctx)
	case invoice.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case invoice.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Invoice field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case invoice.FieldSourceEmailID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceEmailID(v)
		return nil
	case invoice.FieldRawEmailURI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawEmailURI(v)
		return nil
	case invoice.FieldAttachments:
		v, ok := value.([]entity.Attachment)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttachments(v)
		return nil
	case invoice.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case invoice.FieldExtracted:
		v, ok := value.(extract.FieldMap)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtracted(v)
		return nil
	case invoice.FieldNormalized:
		v, ok := value.(entity.Normalized)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalized(v)
		return nil
	case invoice.FieldVendorID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendorID(v)
		return nil
	case invoice.FieldProjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case invoice.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case invoice.FieldExtractorVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractorVersion(v)
		return nil
	case invoice.FieldReconciliationStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReconciliationStatus(v)
		return nil
	case invoice.FieldExtra:
		v, ok := value.(entity.Extra)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtra(v)
		return nil
	case invoice.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case invoice.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Invoice field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InvoiceMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InvoiceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Invoice numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InvoiceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(invoice.FieldRawEmailURI) {
		fields = append(fields, invoice.FieldRawEmailURI)
	}
	if m.FieldCleared(invoice.FieldAttachments) {
		fields = append(fields, invoice.FieldAttachments)
	}
	if m.FieldCleared(invoice.FieldRawText) {
		fields = append(fields, invoice.FieldRawText)
	}
	if m.FieldCleared(invoice.FieldExtracted) {
		fields = append(fields, invoice.FieldExtracted)
	}
	if m.FieldCleared(invoice.FieldNormalized) {
		fields = append(fields, invoice.FieldNormalized)
	}
	if m.FieldCleared(invoice.FieldVendorID) {
		fields = append(fields, invoice.FieldVendorID)
	}
	if m.FieldCleared(invoice.FieldProjectID) {
		fields = append(fields, invoice.FieldProjectID)
	}
	if m.FieldCleared(invoice.FieldTags) {
		fields = append(fields, invoice.FieldTags)
	}
	if m.FieldCleared(invoice.FieldExtra) {
		fields = append(fields, invoice.FieldExtra)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InvoiceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InvoiceMutation) ClearField(name string) error {
	switch name {
	case invoice.FieldRawEmailURI:
		m.ClearRawEmailURI()
		return nil
	case invoice.FieldAttachments:
		m.ClearAttachments()
		return nil
	case invoice.FieldRawText:
		m.ClearRawText()
		return nil
	case invoice.FieldExtracted:
		m.ClearExtracted()
		return nil
	case invoice.FieldNormalized:
		m.ClearNormalized()
		return nil
	case invoice.FieldVendorID:
		m.ClearVendorID()
		return nil
	case invoice.FieldProjectID:
		m.ClearProjectID()
		return nil
	case invoice.FieldTags:
		m.ClearTags()
		return nil
	case invoice.FieldExtra:
		m.ClearExtra()
		return nil
	}
	return fmt.Errorf("unknown Invoice nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InvoiceMutation) ResetField(name string) error {
	switch name {
	case invoice.FieldSourceEmailID:
		m.ResetSourceEmailID()
		return nil
	case invoice.FieldRawEmailURI:
		m.ResetRawEmailURI()
		return nil
	case invoice.FieldAttachments:
		m.ResetAttachments()
		return nil
	case invoice.FieldRawText:
		m.ResetRawText()
		return nil
	case invoice.FieldExtracted:
		m.ResetExtracted()
		return nil
	case invoice.FieldNormalized:
		m.ResetNormalized()
		return nil
	case invoice.FieldVendorID:
		m.ResetVendorID()
		return nil
	case invoice.FieldProjectID:
		m.ResetProjectID()
		return nil
	case invoice.FieldTags:
		m.ResetTags()
		return nil
	case invoice.FieldExtractorVersion:
		m.ResetExtractorVersion()
		return nil
	case invoice.FieldReconciliationStatus:
		m.ResetReconciliationStatus()
		return nil
	case invoice.FieldExtra:
		m.ResetExtra()
		return nil
	case invoice.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case invoice.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Invoice field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InvoiceMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.vendor != nil {
		edges = append(edges, invoice.EdgeVendor)
	}
	if m.project != nil {
		edges = append(edges, invoice.EdgeProject)
	}
	if m.audits != nil {
		edges = append(edges, invoice.EdgeAudits)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InvoiceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case invoice.EdgeVendor:
		if id := m.vendor; id != nil {
			return []ent.Value{*id}
		}
	case invoice.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case invoice.EdgeAudits:
		ids := make([]ent.Value, 0, len(m.audits))
		for id := range m.audits {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InvoiceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedaudits != nil {
		edges = append(edges, invoice.EdgeAudits)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InvoiceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case invoice.EdgeAudits:
		ids := make([]ent.Value, 0, len(m.removedaudits))
		for id := range m.removedaudits {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InvoiceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedvendor {
		edges = append(edges, invoice.EdgeVendor)
	}
	if m.clearedproject {
		edges = append(edges, invoice.EdgeProject)
	}
	if m.clearedaudits {
		edges = append(edges, invoice.EdgeAudits)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InvoiceMutation) EdgeCleared(name string) bool {
	switch name {
	case invoice.EdgeVendor:
		return m.clearedvendor
	case invoice.EdgeProject:
		return m.clearedproject
	case invoice.EdgeAudits:
		return m.clearedaudits
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InvoiceMutation) ClearEdge(name string) error {
	switch name {
	case invoice.EdgeVendor:
		m.ClearVendor()
		return nil
	case invoice.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Invoice unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InvoiceMutation) ResetEdge(name string) error {
	switch name {
	case invoice.EdgeVendor:
		m.ResetVendor()
		return nil
	case invoice.EdgeProject:
		m.ResetProject()
		return nil
	case invoice.EdgeAudits:
		m.ResetAudits()
		return nil
	}
	return fmt.Errorf("unknown Invoice edge %s", name)
}

// InvoiceAuditMutation represents an operation that mutates the InvoiceAudit nodes in the graph.
type InvoiceAuditMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	actor          *string
	field_name     *string
	old_value      *string
	new_value      *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	invoice        *uuid.UUID
	clearedinvoice bool
	done           bool
	oldValue       func(context.Context) (*InvoiceAudit, error)
	predicates     []predicate.InvoiceAudit
}

var _ ent.Mutation = (*InvoiceAuditMutation)(nil)

// invoiceauditOption allows management of the mutation configuration using functional options.
type invoiceauditOption func(*InvoiceAuditMutation)

// newInvoiceAuditMutation creates new mutation for the InvoiceAudit entity.
func newInvoiceAuditMutation(c config, op Op, opts ...invoiceauditOption) *InvoiceAuditMutation {
	m := &InvoiceAuditMutation{
		config:        c,
		op:            op,
		typ:           TypeInvoiceAudit,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInvoiceAuditID sets the ID field of the mutation.
func withInvoiceAuditID(id uuid.UUID) invoiceauditOption {
	return func(m *InvoiceAuditMutation) {
		var (
			err   error
			once  sync.Once
			value *InvoiceAudit
		)
		m.oldValue = func(ctx context.Context) (*InvoiceAudit, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InvoiceAudit.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInvoiceAudit sets the old InvoiceAudit of the mutation.
func withInvoiceAudit(node *InvoiceAudit) invoiceauditOption {
	return func(m *InvoiceAuditMutation) {
		m.oldValue = func(context.Context) (*InvoiceAudit, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InvoiceAuditMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InvoiceAuditMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InvoiceAudit entities.
func (m *InvoiceAuditMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InvoiceAuditMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InvoiceAuditMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InvoiceAudit.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetInvoiceID sets the "invoice_id" field.
func (m *InvoiceAuditMutation) SetInvoiceID(u uuid.UUID) {
	m.invoice = &u
}

// InvoiceID returns the value of the "invoice_id" field in the mutation.
func (m *InvoiceAuditMutation) InvoiceID() (r uuid.UUID, exists bool) {
	v := m.invoice
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceID returns the old "invoice_id" field's value of the InvoiceAudit entity.
// If the InvoiceAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceAuditMutation) OldInvoiceID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceID: %w", err)
	}
	return oldValue.InvoiceID, nil
}

// ResetInvoiceID resets all changes to the "invoice_id" field.
func (m *InvoiceAuditMutation) ResetInvoiceID() {
	m.invoice = nil
}

// SetActor sets the "actor" field.
func (m *InvoiceAuditMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *InvoiceAuditMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the InvoiceAudit entity.
// If the InvoiceAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceAuditMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ResetActor resets all changes to the "actor" field.
func (m *InvoiceAuditMutation) ResetActor() {
	m.actor = nil
}

// SetFieldName sets the "field_name" field.
func (m *InvoiceAuditMutation) SetFieldName(s string) {
	m.field_name = &s
}

// FieldName returns the value of the "field_name" field in the mutation.
func (m *InvoiceAuditMutation) FieldName() (r string, exists bool) {
	v := m.field_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldName returns the old "field_name" field's value of the InvoiceAudit entity.
// If the InvoiceAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceAuditMutation) OldFieldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldName: %w", err)
	}
	return oldValue.FieldName, nil
}

// ResetFieldName resets all changes to the "field_name" field.
func (m *InvoiceAuditMutation) ResetFieldName() {
	m.field_name = nil
}

// SetOldValue sets the "old_value" field.
func (m *InvoiceAuditMutation) SetOldValue(s string) {
	m.old_value = &s
}

// OldValue returns the value of the "old_value" field in the mutation.
func (m *InvoiceAuditMutation) OldValue() (r string, exists bool) {
	v := m.old_value
	if v == nil {
		return
	}
	return *v, true
}

// OldOldValue returns the old "old_value" field's value of the InvoiceAudit entity.
// If the InvoiceAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceAuditMutation) OldOldValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOldValue: %w", err)
	}
	return oldValue.OldValue, nil
}

// ClearOldValue clears the value of the "old_value" field.
func (m *InvoiceAuditMutation) ClearOldValue() {
	m.old_value = nil
	m.clearedFields[invoiceaudit.FieldOldValue] = struct{}{}
}

// OldValueCleared returns if the "old_value" field was cleared in this mutation.
func (m *InvoiceAuditMutation) OldValueCleared() bool {
	_, ok := m.clearedFields[invoiceaudit.FieldOldValue]
	return ok
}

// ResetOldValue resets all changes to the "old_value" field.
func (m *InvoiceAuditMutation) ResetOldValue() {
	m.old_value = nil
	delete(m.clearedFields, invoiceaudit.FieldOldValue)
}

// SetNewValue sets the "new_value" field.
func (m *InvoiceAuditMutation) SetNewValue(s string) {
	m.new_value = &s
}

// NewValue returns the value of the "new_value" field in the mutation.
func (m *InvoiceAuditMutation) NewValue() (r string, exists bool) {
	v := m.new_value
	if v == nil {
		return
	}
	return *v, true
}

// OldNewValue returns the old "new_value" field's value of the InvoiceAudit entity.
// If the InvoiceAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceAuditMutation) OldNewValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewValue: %w", err)
	}
	return oldValue.NewValue, nil
}

// ClearNewValue clears the value of the "new_value" field.
func (m *InvoiceAuditMutation) ClearNewValue() {
	m.new_value = nil
	m.clearedFields[invoiceaudit.FieldNewValue] = struct{}{}
}

// NewValueCleared returns if the "new_value" field was cleared in this mutation.
func (m *InvoiceAuditMutation) NewValueCleared() bool {
	_, ok := m.clearedFields[invoiceaudit.FieldNewValue]
	return ok
}

// ResetNewValue resets all changes to the "new_value" field.
func (m *InvoiceAuditMutation) ResetNewValue() {
	m.new_value = nil
	delete(m.clearedFields, invoiceaudit.FieldNewValue)
}

// SetCreatedAt sets the "created_at" field.
func (m *InvoiceAuditMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InvoiceAuditMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InvoiceAudit entity.
// If the InvoiceAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceAuditMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InvoiceAuditMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearInvoice clears the "invoice" edge to the Invoice entity.
func (m *InvoiceAuditMutation) ClearInvoice() {
	m.clearedinvoice = true
	m.clearedFields[invoiceaudit.FieldInvoiceID] = struct{}{}
}

// InvoiceCleared reports if the "invoice" edge to the Invoice entity was cleared.
func (m *InvoiceAuditMutation) InvoiceCleared() bool {
	return m.clearedinvoice
}

// InvoiceIDs returns the "invoice" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InvoiceID instead. It exists only for internal usage by the builders.
func (m *InvoiceAuditMutation) InvoiceIDs() (ids []uuid.UUID) {
	if id := m.invoice; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInvoice resets all changes to the "invoice" edge.
func (m *InvoiceAuditMutation) ResetInvoice() {
	m.invoice = nil
	m.clearedinvoice = false
}

// Where appends a list predicates to the InvoiceAuditMutation builder.
func (m *InvoiceAuditMutation) Where(ps ...predicate.InvoiceAudit) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InvoiceAuditMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InvoiceAuditMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InvoiceAudit, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InvoiceAuditMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InvoiceAuditMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InvoiceAudit).
func (m *InvoiceAuditMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InvoiceAuditMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.invoice != nil {
		fields = append(fields, invoiceaudit.FieldInvoiceID)
	}
	if m.actor != nil {
		fields = append(fields, invoiceaudit.FieldActor)
	}
	if m.field_name != nil {
		fields = append(fields, invoiceaudit.FieldFieldName)
	}
	if m.old_value != nil {
		fields = append(fields, invoiceaudit.FieldOldValue)
	}
	if m.new_value != nil {
		fields = append(fields, invoiceaudit.FieldNewValue)
	}
	if m.created_at != nil {
		fields = append(fields, invoiceaudit.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InvoiceAuditMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case invoiceaudit.FieldInvoiceID:
		return m.InvoiceID()
	case invoiceaudit.FieldActor:
		return m.Actor()
	case invoiceaudit.FieldFieldName:
		return m.FieldName()
	case invoiceaudit.FieldOldValue:
		return m.OldValue()
	case invoiceaudit.FieldNewValue:
		return m.NewValue()
	case invoiceaudit.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InvoiceAuditMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case invoiceaudit.FieldInvoiceID:
		return m.OldInvoiceID(ctx)
	case invoiceaudit.FieldActor:
		return m.OldActor(ctx)
	case invoiceaudit.FieldFieldName:
		return m.OldFieldName(ctx)
	case invoiceaudit.FieldOldValue:
		return m.OldOldValue(ctx)
	case invoiceaudit.FieldNewValue:
		return m.OldNewValue(ctx)
	case invoiceaudit.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown InvoiceAudit field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceAuditMutation) SetField(name string, value ent.Value) error {
	switch name {
	case invoiceaudit.FieldInvoiceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceID(v)
		return nil
	case invoiceaudit.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case invoiceaudit.FieldFieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldName(v)
		return nil
	case invoiceaudit.FieldOldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOldValue(v)
		return nil
	case invoiceaudit.FieldNewValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewValue(v)
		return nil
	case invoiceaudit.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown InvoiceAudit field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InvoiceAuditMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InvoiceAuditMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceAuditMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown InvoiceAudit numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InvoiceAuditMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(invoiceaudit.FieldOldValue) {
		fields = append(fields, invoiceaudit.FieldOldValue)
	}
	if m.FieldCleared(invoiceaudit.FieldNewValue) {
		fields = append(fields, invoiceaudit.FieldNewValue)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InvoiceAuditMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InvoiceAuditMutation) ClearField(name string) error {
	switch name {
	case invoiceaudit.FieldOldValue:
		m.ClearOldValue()
		return nil
	case invoiceaudit.FieldNewValue:
		m.ClearNewValue()
		return nil
	}
	return fmt.Errorf("unknown InvoiceAudit nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InvoiceAuditMutation) ResetField(name string) error {
	switch name {
	case invoiceaudit.FieldInvoiceID:
		m.ResetInvoiceID()
		return nil
	case invoiceaudit.FieldActor:
		m.ResetActor()
		return nil
	case invoiceaudit.FieldFieldName:
		m.ResetFieldName()
		return nil
	case invoiceaudit.FieldOldValue:
		m.ResetOldValue()
		return nil
	case invoiceaudit.FieldNewValue:
		m.ResetNewValue()
		return nil
	case invoiceaudit.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown InvoiceAudit field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InvoiceAuditMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.invoice != nil {
		edges = append(edges, invoiceaudit.EdgeInvoice)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InvoiceAuditMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case invoiceaudit.EdgeInvoice:
		if id := m.invoice; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InvoiceAuditMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InvoiceAuditMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InvoiceAuditMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinvoice {
		edges = append(edges, invoiceaudit.EdgeInvoice)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InvoiceAuditMutation) EdgeCleared(name string) bool {
	switch name {
	case invoiceaudit.EdgeInvoice:
		return m.clearedinvoice
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InvoiceAuditMutation) ClearEdge(name string) error {
	switch name {
	case invoiceaudit.EdgeInvoice:
		m.ClearInvoice()
		return nil
	}
	return fmt.Errorf("unknown InvoiceAudit unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InvoiceAuditMutation) ResetEdge(name string) error {
	switch name {
	case invoiceaudit.EdgeInvoice:
		m.ResetInvoice()
		return nil
	}
	return fmt.Errorf("unknown InvoiceAudit edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op              Op
	typ             string
	id              *int
	name            *string
	codes           *[]string
	appendcodes     []string
	meta            *map[string]interface{}
	created_at      *time.Time
	clearedFields   map[string]struct{}
	invoices        map[uuid.UUID]struct{}
	removedinvoices map[uuid.UUID]struct{}
	clearedinvoices bool
	done            bool
	oldValue        func(context.Context) (*Project, error)
	predicates      []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id int) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetCodes sets the "codes" field.
func (m *ProjectMutation) SetCodes(s []string) {
	m.codes = &s
	m.appendcodes = nil
}

// Codes returns the value of the "codes" field in the mutation.
func (m *ProjectMutation) Codes() (r []string, exists bool) {
	v := m.codes
	if v == nil {
		return
	}
	return *v, true
}

// OldCodes returns the old "codes" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCodes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCodes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCodes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCodes: %w", err)
	}
	return oldValue.Codes, nil
}

// AppendCodes adds s to the "codes" field.
func (m *ProjectMutation) AppendCodes(s []string) {
	m.appendcodes = append(m.appendcodes, s...)
}

// AppendedCodes returns the list of values that were appended to the "codes" field in this mutation.
func (m *ProjectMutation) AppendedCodes() ([]string, bool) {
	if len(m.appendcodes) == 0 {
		return nil, false
	}
	return m.appendcodes, true
}

// ClearCodes clears the value of the "codes" field.
func (m *ProjectMutation) ClearCodes() {
	m.codes = nil
	m.appendcodes = nil
	m.clearedFields[project.FieldCodes] = struct{}{}
}

// CodesCleared returns if the "codes" field was cleared in this mutation.
func (m *ProjectMutation) CodesCleared() bool {
	_, ok := m.clearedFields[project.FieldCodes]
	return ok
}

// ResetCodes resets all changes to the "codes" field.
func (m *ProjectMutation) ResetCodes() {
	m.codes = nil
	m.appendcodes = nil
	delete(m.clearedFields, project.FieldCodes)
}

// SetMeta sets the "meta" field.
func (m *ProjectMutation) SetMeta(value map[string]interface{}) {
	m.meta = &value
}

// Meta returns the value of the "meta" field in the mutation.
func (m *ProjectMutation) Meta() (r map[string]interface{}, exists bool) {
	v := m.meta
	if v == nil {
		return
	}
	return *v, true
}

// OldMeta returns the old "meta" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldMeta(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeta: %w", err)
	}
	return oldValue.Meta, nil
}

// ClearMeta clears the value of the "meta" field.
func (m *ProjectMutation) ClearMeta() {
	m.meta = nil
	m.clearedFields[project.FieldMeta] = struct{}{}
}

// MetaCleared returns if the "meta" field was cleared in this mutation.
func (m *ProjectMutation) MetaCleared() bool {
	_, ok := m.clearedFields[project.FieldMeta]
	return ok
}

// ResetMeta resets all changes to the "meta" field.
func (m *ProjectMutation) ResetMeta() {
	m.meta = nil
	delete(m.clearedFields, project.FieldMeta)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by ids.
func (m *ProjectMutation) AddInvoiceIDs(ids ...uuid.UUID) {
	if m.invoices == nil {
		m.invoices = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.invoices[ids[i]] = struct{}{}
	}
}

// ClearInvoices clears the "invoices" edge to the Invoice entity.
func (m *ProjectMutation) ClearInvoices() {
	m.clearedinvoices = true
}

// InvoicesCleared reports if the "invoices" edge to the Invoice entity was cleared.
func (m *ProjectMutation) InvoicesCleared() bool {
	return m.clearedinvoices
}

// RemoveInvoiceIDs removes the "invoices" edge to the Invoice entity by IDs.
func (m *ProjectMutation) RemoveInvoiceIDs(ids ...uuid.UUID) {
	if m.removedinvoices == nil {
		m.removedinvoices = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.invoices, ids[i])
		m.removedinvoices[ids[i]] = struct{}{}
	}
}

// RemovedInvoices returns the removed IDs of the "invoices" edge to the Invoice entity.
func (m *ProjectMutation) RemovedInvoicesIDs() (ids []uuid.UUID) {
	for id := range m.removedinvoices {
		ids = append(ids, id)
	}
	return
}

// InvoicesIDs returns the "invoices" edge IDs in the mutation.
func (m *ProjectMutation) InvoicesIDs() (ids []uuid.UUID) {
	for id := range m.invoices {
		ids = append(ids, id)
	}
	return
}

// ResetInvoices resets all changes to the "invoices" edge.
func (m *ProjectMutation) ResetInvoices() {
	m.invoices = nil
	m.clearedinvoices = false
	m.removedinvoices = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.codes != nil {
		fields = append(fields, project.FieldCodes)
	}
	if m.meta != nil {
		fields = append(fields, project.FieldMeta)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldName:
		return m.Name()
	case project.FieldCodes:
		return m.Codes()
	case project.FieldMeta:
		return m.Meta()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldCodes:
		return m.OldCodes(ctx)
	case project.FieldMeta:
		return m.OldMeta(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldCodes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCodes(v)
		return nil
	case project.FieldMeta:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeta(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(project.FieldCodes) {
		fields = append(fields, project.FieldCodes)
	}
	if m.FieldCleared(project.FieldMeta) {
		fields = append(fields, project.FieldMeta)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	switch name {
	case project.FieldCodes:
		m.ClearCodes()
		return nil
	case project.FieldMeta:
		m.ClearMeta()
		return nil
	}
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldCodes:
		m.ResetCodes()
		return nil
	case project.FieldMeta:
		m.ResetMeta()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.invoices != nil {
		edges = append(edges, project.EdgeInvoices)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeInvoices:
		ids := make([]ent.Value, 0, len(m.invoices))
		for id := range m.invoices {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedinvoices != nil {
		edges = append(edges, project.EdgeInvoices)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeInvoices:
		ids := make([]ent.Value, 0, len(m.removedinvoices))
		for id := range m.removedinvoices {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinvoices {
		edges = append(edges, project.EdgeInvoices)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeInvoices:
		return m.clearedinvoices
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeInvoices:
		m.ResetInvoices()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// VendorMutation represents an operation that mutates the Vendor nodes in the graph.
type VendorMutation struct {
	config
	op              Op
	typ             string
	id              *int
	canonical_name  *string
	aliases         *[]string
	appendaliases   []string
	meta            *map[string]interface{}
	created_at      *time.Time
	clearedFields   map[string]struct{}
	invoices        map[uuid.UUID]struct{}
	removedinvoices map[uuid.UUID]struct{}
	clearedinvoices bool
	done            bool
	oldValue        func(context.Context) (*Vendor, error)
	predicates      []predicate.Vendor
}

var _ ent.Mutation = (*VendorMutation)(nil)

// vendorOption allows management of the mutation configuration using functional options.
type vendorOption func(*VendorMutation)

// newVendorMutation creates new mutation for the Vendor entity.
func newVendorMutation(c config, op Op, opts ...vendorOption) *VendorMutation {
	m := &VendorMutation{
		config:        c,
		op:            op,
		typ:           TypeVendor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVendorID sets the ID field of the mutation.
func withVendorID(id int) vendorOption {
	return func(m *VendorMutation) {
		var (
			err   error
			once  sync.Once
			value *Vendor
		)
		m.oldValue = func(ctx context.Context) (*Vendor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Vendor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVendor sets the old Vendor of the mutation.
func withVendor(node *Vendor) vendorOption {
	return func(m *VendorMutation) {
		m.oldValue = func(context.Context) (*Vendor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VendorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VendorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VendorMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VendorMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Vendor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCanonicalName sets the "canonical_name" field.
func (m *VendorMutation) SetCanonicalName(s string) {
	m.canonical_name = &s
}

// CanonicalName returns the value of the "canonical_name" field in the mutation.
func (m *VendorMutation) CanonicalName() (r string, exists bool) {
	v := m.canonical_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonicalName returns the old "canonical_name" field's value of the Vendor entity.
// If the Vendor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VendorMutation) OldCanonicalName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonicalName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonicalName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonicalName: %w", err)
	}
	return oldValue.CanonicalName, nil
}

// ResetCanonicalName resets all changes to the "canonical_name" field.
func (m *VendorMutation) ResetCanonicalName() {
	m.canonical_name = nil
}

// SetAliases sets the "aliases" field.
func (m *VendorMutation) SetAliases(s []string) {
	m.aliases = &s
	m.appendaliases = nil
}

// Aliases returns the value of the "aliases" field in the mutation.
func (m *VendorMutation) Aliases() (r []string, exists bool) {
	v := m.aliases
	if v == nil {
		return
	}
	return *v, true
}

// OldAliases returns the old "aliases" field's value of the Vendor entity.
// If the Vendor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VendorMutation) OldAliases(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAliases is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAliases requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAliases: %w", err)
	}
	return oldValue.Aliases, nil
}

// AppendAliases adds s to the "aliases" field.
func (m *VendorMutation) AppendAliases(s []string) {
	m.appendaliases = append(m.appendaliases, s...)
}

// AppendedAliases returns the list of values that were appended to the "aliases" field in this mutation.
func (m *VendorMutation) AppendedAliases() ([]string, bool) {
	if len(m.appendaliases) == 0 {
		return nil, false
	}
	return m.appendaliases, true
}

// ClearAliases clears the value of the "aliases" field.
func (m *VendorMutation) ClearAliases() {
	m.aliases = nil
	m.appendaliases = nil
	m.clearedFields[vendor.FieldAliases] = struct{}{}
}

// AliasesCleared returns if the "aliases" field was cleared in this mutation.
func (m *VendorMutation) AliasesCleared() bool {
	_, ok := m.clearedFields[vendor.FieldAliases]
	return ok
}

// ResetAliases resets all changes to the "aliases" field.
func (m *VendorMutation) ResetAliases() {
	m.aliases = nil
	m.appendaliases = nil
	delete(m.clearedFields, vendor.FieldAliases)
}

// SetMeta sets the "meta" field.
func (m *VendorMutation) SetMeta(value map[string]interface{}) {
	m.meta = &value
}

// Meta returns the value of the "meta" field in the mutation.
func (m *VendorMutation) Meta() (r map[string]interface{}, exists bool) {
	v := m.meta
	if v == nil {
		return
	}
	return *v, true
}

// OldMeta returns the old "meta" field's value of the Vendor entity.
// If the Vendor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VendorMutation) OldMeta(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeta: %w", err)
	}
	return oldValue.Meta, nil
}

// ClearMeta clears the value of the "meta" field.
func (m *VendorMutation) ClearMeta() {
	m.meta = nil
	m.clearedFields[vendor.FieldMeta] = struct{}{}
}

// MetaCleared returns if the "meta" field was cleared in this mutation.
func (m *VendorMutation) MetaCleared() bool {
	_, ok := m.clearedFields[vendor.FieldMeta]
	return ok
}

// ResetMeta resets all changes to the "meta" field.
func (m *VendorMutation) ResetMeta() {
	m.meta = nil
	delete(m.clearedFields, vendor.FieldMeta)
}

// SetCreatedAt sets the "created_at" field.
func (m *VendorMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VendorMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Vendor entity.
// If the Vendor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VendorMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VendorMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by ids.
func (m *VendorMutation) AddInvoiceIDs(ids ...uuid.UUID) {
	if m.invoices == nil {
		m.invoices = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.invoices[ids[i]] = struct{}{}
	}
}

// ClearInvoices clears the "invoices" edge to the Invoice entity.
func (m *VendorMutation) ClearInvoices() {
	m.clearedinvoices = true
}

// InvoicesCleared reports if the "invoices" edge to the Invoice entity was cleared.
func (m *VendorMutation) InvoicesCleared() bool {
	return m.clearedinvoices
}

// RemoveInvoiceIDs removes the "invoices" edge to the Invoice entity by IDs.
func (m *VendorMutation) RemoveInvoiceIDs(ids ...uuid.UUID) {
	if m.removedinvoices == nil {
		m.removedinvoices = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.invoices, ids[i])
		m.removedinvoices[ids[i]] = struct{}{}
	}
}

// RemovedInvoices returns the removed IDs of the "invoices" edge to the Invoice entity.
func (m *VendorMutation) RemovedInvoicesIDs() (ids []uuid.UUID) {
	for id := range m.removedinvoices {
		ids = append(ids, id)
	}
	return
}

// InvoicesIDs returns the "invoices" edge IDs in the mutation.
func (m *VendorMutation) InvoicesIDs() (ids []uuid.UUID) {
	for id := range m.invoices {
		ids = append(ids, id)
	}
	return
}

// ResetInvoices resets all changes to the "invoices" edge.
func (m *VendorMutation) ResetInvoices() {
	m.invoices = nil
	m.clearedinvoices = false
	m.removedinvoices = nil
}

// Where appends a list predicates to the VendorMutation builder.
func (m *VendorMutation) Where(ps ...predicate.Vendor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VendorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VendorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Vendor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VendorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VendorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Vendor).
func (m *VendorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VendorMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.canonical_name != nil {
		fields = append(fields, vendor.FieldCanonicalName)
	}
	if m.aliases != nil {
		fields = append(fields, vendor.FieldAliases)
	}
	if m.meta != nil {
		fields = append(fields, vendor.FieldMeta)
	}
	if m.created_at != nil {
		fields = append(fields, vendor.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VendorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case vendor.FieldCanonicalName:
		return m.CanonicalName()
	case vendor.FieldAliases:
		return m.Aliases()
	case vendor.FieldMeta:
		return m.Meta()
	case vendor.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VendorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case vendor.FieldCanonicalName:
		return m.OldCanonicalName(ctx)
	case vendor.FieldAliases:
		return m.OldAliases(ctx)
	case vendor.FieldMeta:
		return m.OldMeta(ctx)
	case vendor.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Vendor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VendorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case vendor.FieldCanonicalName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonicalName(v)
		return nil
	case vendor.FieldAliases:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAliases(v)
		return nil
	case vendor.FieldMeta:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeta(v)
		return nil
	case vendor.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Vendor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VendorMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VendorMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VendorMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Vendor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VendorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(vendor.FieldAliases) {
		fields = append(fields, vendor.FieldAliases)
	}
	if m.FieldCleared(vendor.FieldMeta) {
		fields = append(fields, vendor.FieldMeta)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VendorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VendorMutation) ClearField(name string) error {
	switch name {
	case vendor.FieldAliases:
		m.ClearAliases()
		return nil
	case vendor.FieldMeta:
		m.ClearMeta()
		return nil
	}
	return fmt.Errorf("unknown Vendor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VendorMutation) ResetField(name string) error {
	switch name {
	case vendor.FieldCanonicalName:
		m.ResetCanonicalName()
		return nil
	case vendor.FieldAliases:
		m.ResetAliases()
		return nil
	case vendor.FieldMeta:
		m.ResetMeta()
		return nil
	case vendor.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Vendor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VendorMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.invoices != nil {
		edges = append(edges, vendor.EdgeInvoices)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VendorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case vendor.EdgeInvoices:
		ids := make([]ent.Value, 0, len(m.invoices))
		for id := range m.invoices {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VendorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedinvoices != nil {
		edges = append(edges, vendor.EdgeInvoices)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VendorMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case vendor.EdgeInvoices:
		ids := make([]ent.Value, 0, len(m.removedinvoices))
		for id := range m.removedinvoices {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VendorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinvoices {
		edges = append(edges, vendor.EdgeInvoices)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VendorMutation) EdgeCleared(name string) bool {
	switch name {
	case vendor.EdgeInvoices:
		return m.clearedinvoices
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VendorMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Vendor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VendorMutation) ResetEdge(name string) error {
	switch name {
	case vendor.EdgeInvoices:
		m.ResetInvoices()
		return nil
	}
	return fmt.Errorf("unknown Vendor edge %s", name)
}
