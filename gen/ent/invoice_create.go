// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/danielolaitan/invoice-agent/gen/ent/invoice"
	"github.com/danielolaitan/invoice-agent/gen/ent/invoiceaudit"
	"github.com/danielolaitan/invoice-agent/gen/ent/project"
	"github.com/danielolaitan/invoice-agent/gen/ent/vendor"
	"github.com/danielolaitan/invoice-agent/internal/entity"
	"github.com/danielolaitan/invoice-agent/internal/extract"
	"github.com/google/uuid"
)

// InvoiceCreate is the builder for creating a Invoice entity.
type InvoiceCreate struct {
	config
	mutation *InvoiceMutation
	hooks    []Hook
}

// SetSourceEmailID sets the "source_email_id" field.
func (_c *InvoiceCreate) SetSourceEmailID(v string) *InvoiceCreate {
	_c.mutation.SetSourceEmailID(v)
	return _c
}

// SetRawEmailURI sets the "raw_email_uri" field.
func (_c *InvoiceCreate) SetRawEmailURI(v string) *InvoiceCreate {
	_c.mutation.SetRawEmailURI(v)
	return _c
}

// SetNillableRawEmailURI sets the "raw_email_uri" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableRawEmailURI(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetRawEmailURI(*v)
	}
	return _c
}

// SetAttachments sets the "attachments" field.
func (_c *InvoiceCreate) SetAttachments(v []entity.Attachment) *InvoiceCreate {
	_c.mutation.SetAttachments(v)
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *InvoiceCreate) SetRawText(v string) *InvoiceCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableRawText(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetRawText(*v)
	}
	return _c
}

// SetExtracted sets the "extracted" field.
func (_c *InvoiceCreate) SetExtracted(v extract.FieldMap) *InvoiceCreate {
	_c.mutation.SetExtracted(v)
	return _c
}

// SetNormalized sets the "normalized" field.
func (_c *InvoiceCreate) SetNormalized(v entity.Normalized) *InvoiceCreate {
	_c.mutation.SetNormalized(v)
	return _c
}

// SetNillableNormalized sets the "normalized" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableNormalized(v *entity.Normalized) *InvoiceCreate {
	if v != nil {
		_c.SetNormalized(*v)
	}
	return _c
}

// SetVendorID sets the "vendor_id" field.
func (_c *InvoiceCreate) SetVendorID(v int) *InvoiceCreate {
	_c.mutation.SetVendorID(v)
	return _c
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableVendorID(v *int) *InvoiceCreate {
	if v != nil {
		_c.SetVendorID(*v)
	}
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *InvoiceCreate) SetProjectID(v int) *InvoiceCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableProjectID(v *int) *InvoiceCreate {
	if v != nil {
		_c.SetProjectID(*v)
	}
	return _c
}

// SetTags sets the "tags" field.
func (_c *InvoiceCreate) SetTags(v []string) *InvoiceCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetExtractorVersion sets the "extractor_version" field.
func (_c *InvoiceCreate) SetExtractorVersion(v string) *InvoiceCreate {
	_c.mutation.SetExtractorVersion(v)
	return _c
}

// SetNillableExtractorVersion sets the "extractor_version" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableExtractorVersion(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetExtractorVersion(*v)
	}
	return _c
}

// SetReconciliationStatus sets the "reconciliation_status" field.
func (_c *InvoiceCreate) SetReconciliationStatus(v string) *InvoiceCreate {
	_c.mutation.SetReconciliationStatus(v)
	return _c
}

// SetNillableReconciliationStatus sets the "reconciliation_status" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableReconciliationStatus(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetReconciliationStatus(*v)
	}
	return _c
}

// SetExtra sets the "extra" field.
func (_c *InvoiceCreate) SetExtra(v entity.Extra) *InvoiceCreate {
	_c.mutation.SetExtra(v)
	return _c
}

// SetNillableExtra sets the "extra" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableExtra(v *entity.Extra) *InvoiceCreate {
	if v != nil {
		_c.SetExtra(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InvoiceCreate) SetCreatedAt(v time.Time) *InvoiceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableCreatedAt(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InvoiceCreate) SetUpdatedAt(v time.Time) *InvoiceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableUpdatedAt(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InvoiceCreate) SetID(v uuid.UUID) *InvoiceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableID(v *uuid.UUID) *InvoiceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetVendor sets the "vendor" edge to the Vendor entity.
func (_c *InvoiceCreate) SetVendor(v *Vendor) *InvoiceCreate {
	return _c.SetVendorID(v.ID)
}

// SetProject sets the "project" edge to the Project entity.
func (_c *InvoiceCreate) SetProject(v *Project) *InvoiceCreate {
	return _c.SetProjectID(v.ID)
}

// AddAuditIDs adds the "audits" edge to the InvoiceAudit entity by IDs.
func (_c *InvoiceCreate) AddAuditIDs(ids ...uuid.UUID) *InvoiceCreate {
	_c.mutation.AddAuditIDs(ids...)
	return _c
}

// AddAudits adds the "audits" edges to the InvoiceAudit entity.
func (_c *InvoiceCreate) AddAudits(v ...*InvoiceAudit) *InvoiceCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAuditIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_c *InvoiceCreate) Mutation() *InvoiceMutation {
	return _c.mutation
}

// Save creates the Invoice in the database.
func (_c *InvoiceCreate) Save(ctx context.Context) (*Invoice, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvoiceCreate) SaveX(ctx context.Context) *Invoice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InvoiceCreate) defaults() {
	if _, ok := _c.mutation.ExtractorVersion(); !ok {
		v := invoice.DefaultExtractorVersion
		_c.mutation.SetExtractorVersion(v)
	}
	if _, ok := _c.mutation.ReconciliationStatus(); !ok {
		v := invoice.DefaultReconciliationStatus
		_c.mutation.SetReconciliationStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := invoice.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := invoice.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := invoice.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvoiceCreate) check() error {
	if _, ok := _c.mutation.SourceEmailID(); !ok {
		return &ValidationError{Name: "source_email_id", err: errors.New(`ent: missing required field "Invoice.source_email_id"`)}
	}
	if v, ok := _c.mutation.SourceEmailID(); ok {
		if err := invoice.SourceEmailIDValidator(v); err != nil {
			return &ValidationError{Name: "source_email_id", err: fmt.Errorf(`ent: validator failed for field "Invoice.source_email_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExtractorVersion(); !ok {
		return &ValidationError{Name: "extractor_version", err: errors.New(`ent: missing required field "Invoice.extractor_version"`)}
	}
	if _, ok := _c.mutation.ReconciliationStatus(); !ok {
		return &ValidationError{Name: "reconciliation_status", err: errors.New(`ent: missing required field "Invoice.reconciliation_status"`)}
	}
	if v, ok := _c.mutation.ReconciliationStatus(); ok {
		if err := invoice.ReconciliationStatusValidator(v); err != nil {
			return &ValidationError{Name: "reconciliation_status", err: fmt.Errorf(`ent: validator failed for field "Invoice.reconciliation_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Invoice.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Invoice.updated_at"`)}
	}
	return nil
}

func (_c *InvoiceCreate) sqlSave(ctx context.Context) (*Invoice, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InvoiceCreate) createSpec() (*Invoice, *sqlgraph.CreateSpec) {
	var (
		_node = &Invoice{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(invoice.Table, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.SourceEmailID(); ok {
		_spec.SetField(invoice.FieldSourceEmailID, field.TypeString, value)
		_node.SourceEmailID = value
	}
	if value, ok := _c.mutation.RawEmailURI(); ok {
		_spec.SetField(invoice.FieldRawEmailURI, field.TypeString, value)
		_node.RawEmailURI = value
	}
	if value, ok := _c.mutation.Attachments(); ok {
		_spec.SetField(invoice.FieldAttachments, field.TypeJSON, value)
		_node.Attachments = value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(invoice.FieldRawText, field.TypeString, value)
		_node.RawText = value
	}
	if value, ok := _c.mutation.Extracted(); ok {
		_spec.SetField(invoice.FieldExtracted, field.TypeJSON, value)
		_node.Extracted = value
	}
	if value, ok := _c.mutation.Normalized(); ok {
		_spec.SetField(invoice.FieldNormalized, field.TypeJSON, value)
		_node.Normalized = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(invoice.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.ExtractorVersion(); ok {
		_spec.SetField(invoice.FieldExtractorVersion, field.TypeString, value)
		_node.ExtractorVersion = value
	}
	if value, ok := _c.mutation.ReconciliationStatus(); ok {
		_spec.SetField(invoice.FieldReconciliationStatus, field.TypeString, value)
		_node.ReconciliationStatus = value
	}
	if value, ok := _c.mutation.Extra(); ok {
		_spec.SetField(invoice.FieldExtra, field.TypeJSON, value)
		_node.Extra = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.VendorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.VendorTable,
			Columns: []string{invoice.VendorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.VendorID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.ProjectTable,
			Columns: []string{invoice.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AuditsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.AuditsTable,
			Columns: []string{invoice.AuditsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceaudit.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InvoiceCreateBulk is the builder for creating many Invoice entities in bulk.
type InvoiceCreateBulk struct {
	config
	err      error
	builders []*InvoiceCreate
}

// Save creates the Invoice entities in the database.
func (_c *InvoiceCreateBulk) Save(ctx context.Context) ([]*Invoice, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Invoice, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvoiceMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InvoiceCreateBulk) SaveX(ctx context.Context) []*Invoice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
