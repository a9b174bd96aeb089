// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/danielolaitan/invoice-agent/gen/ent/invoice"
	"github.com/danielolaitan/invoice-agent/gen/ent/invoiceaudit"
	"github.com/danielolaitan/invoice-agent/gen/ent/predicate"
	"github.com/danielolaitan/invoice-agent/gen/ent/project"
	"github.com/danielolaitan/invoice-agent/gen/ent/vendor"
	"github.com/danielolaitan/invoice-agent/internal/entity"
	"github.com/danielolaitan/invoice-agent/internal/extract"
	"github.com/google/uuid"
)

// InvoiceUpdate is the builder for updating Invoice entities.
type InvoiceUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceMutation
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdate) Where(ps ...predicate.Invoice) *InvoiceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRawEmailURI sets the "raw_email_uri" field.
func (_u *InvoiceUpdate) SetRawEmailURI(v string) *InvoiceUpdate {
	_u.mutation.SetRawEmailURI(v)
	return _u
}

// SetNillableRawEmailURI sets the "raw_email_uri" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableRawEmailURI(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetRawEmailURI(*v)
	}
	return _u
}

// ClearRawEmailURI clears the value of the "raw_email_uri" field.
func (_u *InvoiceUpdate) ClearRawEmailURI() *InvoiceUpdate {
	_u.mutation.ClearRawEmailURI()
	return _u
}

// SetAttachments sets the "attachments" field.
func (_u *InvoiceUpdate) SetAttachments(v []entity.Attachment) *InvoiceUpdate {
	_u.mutation.SetAttachments(v)
	return _u
}

// AppendAttachments appends value to the "attachments" field.
func (_u *InvoiceUpdate) AppendAttachments(v []entity.Attachment) *InvoiceUpdate {
	_u.mutation.AppendAttachments(v)
	return _u
}

// ClearAttachments clears the value of the "attachments" field.
func (_u *InvoiceUpdate) ClearAttachments() *InvoiceUpdate {
	_u.mutation.ClearAttachments()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *InvoiceUpdate) SetRawText(v string) *InvoiceUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableRawText(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *InvoiceUpdate) ClearRawText() *InvoiceUpdate {
	_u.mutation.ClearRawText()
	return _u
}

// SetExtracted sets the "extracted" field.
func (_u *InvoiceUpdate) SetExtracted(v extract.FieldMap) *InvoiceUpdate {
	_u.mutation.SetExtracted(v)
	return _u
}

// ClearExtracted clears the value of the "extracted" field.
func (_u *InvoiceUpdate) ClearExtracted() *InvoiceUpdate {
	_u.mutation.ClearExtracted()
	return _u
}

// SetNormalized sets the "normalized" field.
func (_u *InvoiceUpdate) SetNormalized(v entity.Normalized) *InvoiceUpdate {
	_u.mutation.SetNormalized(v)
	return _u
}

// SetNillableNormalized sets the "normalized" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableNormalized(v *entity.Normalized) *InvoiceUpdate {
	if v != nil {
		_u.SetNormalized(*v)
	}
	return _u
}

// ClearNormalized clears the value of the "normalized" field.
func (_u *InvoiceUpdate) ClearNormalized() *InvoiceUpdate {
	_u.mutation.ClearNormalized()
	return _u
}

// SetVendorID sets the "vendor_id" field.
func (_u *InvoiceUpdate) SetVendorID(v int) *InvoiceUpdate {
	_u.mutation.SetVendorID(v)
	return _u
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableVendorID(v *int) *InvoiceUpdate {
	if v != nil {
		_u.SetVendorID(*v)
	}
	return _u
}

// ClearVendorID clears the value of the "vendor_id" field.
func (_u *InvoiceUpdate) ClearVendorID() *InvoiceUpdate {
	_u.mutation.ClearVendorID()
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *InvoiceUpdate) SetProjectID(v int) *InvoiceUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableProjectID(v *int) *InvoiceUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *InvoiceUpdate) ClearProjectID() *InvoiceUpdate {
	_u.mutation.ClearProjectID()
	return _u
}

// SetTags sets the "tags" field.
func (_u *InvoiceUpdate) SetTags(v []string) *InvoiceUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *InvoiceUpdate) AppendTags(v []string) *InvoiceUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *InvoiceUpdate) ClearTags() *InvoiceUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetExtractorVersion sets the "extractor_version" field.
func (_u *InvoiceUpdate) SetExtractorVersion(v string) *InvoiceUpdate {
	_u.mutation.SetExtractorVersion(v)
	return _u
}

// SetNillableExtractorVersion sets the "extractor_version" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableExtractorVersion(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetExtractorVersion(*v)
	}
	return _u
}

// SetReconciliationStatus sets the "reconciliation_status" field.
func (_u *InvoiceUpdate) SetReconciliationStatus(v string) *InvoiceUpdate {
	_u.mutation.SetReconciliationStatus(v)
	return _u
}

// SetNillableReconciliationStatus sets the "reconciliation_status" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableReconciliationStatus(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetReconciliationStatus(*v)
	}
	return _u
}

// SetExtra sets the "extra" field.
func (_u *InvoiceUpdate) SetExtra(v entity.Extra) *InvoiceUpdate {
	_u.mutation.SetExtra(v)
	return _u
}

// SetNillableExtra sets the "extra" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableExtra(v *entity.Extra) *InvoiceUpdate {
	if v != nil {
		_u.SetExtra(*v)
	}
	return _u
}

// ClearExtra clears the value of the "extra" field.
func (_u *InvoiceUpdate) ClearExtra() *InvoiceUpdate {
	_u.mutation.ClearExtra()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdate) SetUpdatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetVendor sets the "vendor" edge to the Vendor entity.
func (_u *InvoiceUpdate) SetVendor(v *Vendor) *InvoiceUpdate {
	return _u.SetVendorID(v.ID)
}

// SetProject sets the "project" edge to the Project entity.
func (_u *InvoiceUpdate) SetProject(v *Project) *InvoiceUpdate {
	return _u.SetProjectID(v.ID)
}

// AddAuditIDs adds the "audits" edge to the InvoiceAudit entity by IDs.
func (_u *InvoiceUpdate) AddAuditIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.AddAuditIDs(ids...)
	return _u
}

// AddAudits adds the "audits" edges to the InvoiceAudit entity.
func (_u *InvoiceUpdate) AddAudits(v ...*InvoiceAudit) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdate) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearVendor clears the "vendor" edge to the Vendor entity.
func (_u *InvoiceUpdate) ClearVendor() *InvoiceUpdate {
	_u.mutation.ClearVendor()
	return _u
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *InvoiceUpdate) ClearProject() *InvoiceUpdate {
	_u.mutation.ClearProject()
	return _u
}

// ClearAudits clears all "audits" edges to the InvoiceAudit entity.
func (_u *InvoiceUpdate) ClearAudits() *InvoiceUpdate {
	_u.mutation.ClearAudits()
	return _u
}

// RemoveAuditIDs removes the "audits" edge to InvoiceAudit entities by IDs.
func (_u *InvoiceUpdate) RemoveAuditIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.RemoveAuditIDs(ids...)
	return _u
}

// RemoveAudits removes "audits" edges to InvoiceAudit entities.
func (_u *InvoiceUpdate) RemoveAudits(v ...*InvoiceAudit) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdate) check() error {
	if v, ok := _u.mutation.ReconciliationStatus(); ok {
		if err := invoice.ReconciliationStatusValidator(v); err != nil {
			return &ValidationError{Name: "reconciliation_status", err: fmt.Errorf(`ent: validator failed for field "Invoice.reconciliation_status": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RawEmailURI(); ok {
		_spec.SetField(invoice.FieldRawEmailURI, field.TypeString, value)
	}
	if _u.mutation.RawEmailURICleared() {
		_spec.ClearField(invoice.FieldRawEmailURI, field.TypeString)
	}
	if value, ok := _u.mutation.Attachments(); ok {
		_spec.SetField(invoice.FieldAttachments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAttachments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, invoice.FieldAttachments, value)
		})
	}
	if _u.mutation.AttachmentsCleared() {
		_spec.ClearField(invoice.FieldAttachments, field.TypeJSON)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(invoice.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(invoice.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.Extracted(); ok {
		_spec.SetField(invoice.FieldExtracted, field.TypeJSON, value)
	}
	if _u.mutation.ExtractedCleared() {
		_spec.ClearField(invoice.FieldExtracted, field.TypeJSON)
	}
	if value, ok := _u.mutation.Normalized(); ok {
		_spec.SetField(invoice.FieldNormalized, field.TypeJSON, value)
	}
	if _u.mutation.NormalizedCleared() {
		_spec.ClearField(invoice.FieldNormalized, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(invoice.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, invoice.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(invoice.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractorVersion(); ok {
		_spec.SetField(invoice.FieldExtractorVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReconciliationStatus(); ok {
		_spec.SetField(invoice.FieldReconciliationStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Extra(); ok {
		_spec.SetField(invoice.FieldExtra, field.TypeJSON, value)
	}
	if _u.mutation.ExtraCleared() {
		_spec.ClearField(invoice.FieldExtra, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.VendorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VendorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuditsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditsIDs(); len(nodes) > 0 && !_u.mutation.AuditsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceUpdateOne is the builder for updating a single Invoice entity.
type InvoiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceMutation
}

// SetRawEmailURI sets the "raw_email_uri" field.
func (_u *InvoiceUpdateOne) SetRawEmailURI(v string) *InvoiceUpdateOne {
	_u.mutation.SetRawEmailURI(v)
	return _u
}

// SetNillableRawEmailURI sets the "raw_email_uri" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableRawEmailURI(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetRawEmailURI(*v)
	}
	return _u
}

// ClearRawEmailURI clears the value of the "raw_email_uri" field.
func (_u *InvoiceUpdateOne) ClearRawEmailURI() *InvoiceUpdateOne {
	_u.mutation.ClearRawEmailURI()
	return _u
}

// SetAttachments sets the "attachments" field.
func (_u *InvoiceUpdateOne) SetAttachments(v []entity.Attachment) *InvoiceUpdateOne {
	_u.mutation.SetAttachments(v)
	return _u
}

// AppendAttachments appends value to the "attachments" field.
func (_u *InvoiceUpdateOne) AppendAttachments(v []entity.Attachment) *InvoiceUpdateOne {
	_u.mutation.AppendAttachments(v)
	return _u
}

// ClearAttachments clears the value of the "attachments" field.
func (_u *InvoiceUpdateOne) ClearAttachments() *InvoiceUpdateOne {
	_u.mutation.ClearAttachments()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *InvoiceUpdateOne) SetRawText(v string) *InvoiceUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableRawText(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *InvoiceUpdateOne) ClearRawText() *InvoiceUpdateOne {
	_u.mutation.ClearRawText()
	return _u
}

// SetExtracted sets the "extracted" field.
func (_u *InvoiceUpdateOne) SetExtracted(v extract.FieldMap) *InvoiceUpdateOne {
	_u.mutation.SetExtracted(v)
	return _u
}

// ClearExtracted clears the value of the "extracted" field.
func (_u *InvoiceUpdateOne) ClearExtracted() *InvoiceUpdateOne {
	_u.mutation.ClearExtracted()
	return _u
}

// SetNormalized sets the "normalized" field.
func (_u *InvoiceUpdateOne) SetNormalized(v entity.Normalized) *InvoiceUpdateOne {
	_u.mutation.SetNormalized(v)
	return _u
}

// SetNillableNormalized sets the "normalized" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableNormalized(v *entity.Normalized) *InvoiceUpdateOne {
	if v != nil {
		_u.SetNormalized(*v)
	}
	return _u
}

// ClearNormalized clears the value of the "normalized" field.
func (_u *InvoiceUpdateOne) ClearNormalized() *InvoiceUpdateOne {
	_u.mutation.ClearNormalized()
	return _u
}

// SetVendorID sets the "vendor_id" field.
func (_u *InvoiceUpdateOne) SetVendorID(v int) *InvoiceUpdateOne {
	_u.mutation.SetVendorID(v)
	return _u
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableVendorID(v *int) *InvoiceUpdateOne {
	if v != nil {
		_u.SetVendorID(*v)
	}
	return _u
}

// ClearVendorID clears the value of the "vendor_id" field.
func (_u *InvoiceUpdateOne) ClearVendorID() *InvoiceUpdateOne {
	_u.mutation.ClearVendorID()
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *InvoiceUpdateOne) SetProjectID(v int) *InvoiceUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableProjectID(v *int) *InvoiceUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *InvoiceUpdateOne) ClearProjectID() *InvoiceUpdateOne {
	_u.mutation.ClearProjectID()
	return _u
}

// SetTags sets the "tags" field.
func (_u *InvoiceUpdateOne) SetTags(v []string) *InvoiceUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *InvoiceUpdateOne) AppendTags(v []string) *InvoiceUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *InvoiceUpdateOne) ClearTags() *InvoiceUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetExtractorVersion sets the "extractor_version" field.
func (_u *InvoiceUpdateOne) SetExtractorVersion(v string) *InvoiceUpdateOne {
	_u.mutation.SetExtractorVersion(v)
	return _u
}

// SetNillableExtractorVersion sets the "extractor_version" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableExtractorVersion(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetExtractorVersion(*v)
	}
	return _u
}

// SetReconciliationStatus sets the "reconciliation_status" field.
func (_u *InvoiceUpdateOne) SetReconciliationStatus(v string) *InvoiceUpdateOne {
	_u.mutation.SetReconciliationStatus(v)
	return _u
}

// SetNillableReconciliationStatus sets the "reconciliation_status" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableReconciliationStatus(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetReconciliationStatus(*v)
	}
	return _u
}

// SetExtra sets the "extra" field.
func (_u *InvoiceUpdateOne) SetExtra(v entity.Extra) *InvoiceUpdateOne {
	_u.mutation.SetExtra(v)
	return _u
}

// SetNillableExtra sets the "extra" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableExtra(v *entity.Extra) *InvoiceUpdateOne {
	if v != nil {
		_u.SetExtra(*v)
	}
	return _u
}

// ClearExtra clears the value of the "extra" field.
func (_u *InvoiceUpdateOne) ClearExtra() *InvoiceUpdateOne {
	_u.mutation.ClearExtra()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdateOne) SetUpdatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetVendor sets the "vendor" edge to the Vendor entity.
func (_u *InvoiceUpdateOne) SetVendor(v *Vendor) *InvoiceUpdateOne {
	return _u.SetVendorID(v.ID)
}

// SetProject sets the "project" edge to the Project entity.
func (_u *InvoiceUpdateOne) SetProject(v *Project) *InvoiceUpdateOne {
	return _u.SetProjectID(v.ID)
}

// AddAuditIDs adds the "audits" edge to the InvoiceAudit entity by IDs.
func (_u *InvoiceUpdateOne) AddAuditIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.AddAuditIDs(ids...)
	return _u
}

// AddAudits adds the "audits" edges to the InvoiceAudit entity.
func (_u *InvoiceUpdateOne) AddAudits(v ...*InvoiceAudit) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdateOne) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearVendor clears the "vendor" edge to the Vendor entity.
func (_u *InvoiceUpdateOne) ClearVendor() *InvoiceUpdateOne {
	_u.mutation.ClearVendor()
	return _u
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *InvoiceUpdateOne) ClearProject() *InvoiceUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// ClearAudits clears all "audits" edges to the InvoiceAudit entity.
func (_u *InvoiceUpdateOne) ClearAudits() *InvoiceUpdateOne {
	_u.mutation.ClearAudits()
	return _u
}

// RemoveAuditIDs removes the "audits" edge to InvoiceAudit entities by IDs.
func (_u *InvoiceUpdateOne) RemoveAuditIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.RemoveAuditIDs(ids...)
	return _u
}

// RemoveAudits removes "audits" edges to InvoiceAudit entities.
func (_u *InvoiceUpdateOne) RemoveAudits(v ...*InvoiceAudit) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditIDs(ids...)
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdateOne) Where(ps ...predicate.Invoice) *InvoiceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceUpdateOne) Select(field string, fields ...string) *InvoiceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Invoice entity.
func (_u *InvoiceUpdateOne) Save(ctx context.Context) (*Invoice, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdateOne) SaveX(ctx context.Context) *Invoice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdateOne) check() error {
	if v, ok := _u.mutation.ReconciliationStatus(); ok {
		if err := invoice.ReconciliationStatusValidator(v); err != nil {
			return &ValidationError{Name: "reconciliation_status", err: fmt.Errorf(`ent: validator failed for field "Invoice.reconciliation_status": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceUpdateOne) sqlSave(ctx context.Context) (_node *Invoice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Invoice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoice.FieldID)
		for _, f := range fields {
			if !invoice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoice.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RawEmailURI(); ok {
		_spec.SetField(invoice.FieldRawEmailURI, field.TypeString, value)
	}
	if _u.mutation.RawEmailURICleared() {
		_spec.ClearField(invoice.FieldRawEmailURI, field.TypeString)
	}
	if value, ok := _u.mutation.Attachments(); ok {
		_spec.SetField(invoice.FieldAttachments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAttachments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, invoice.FieldAttachments, value)
		})
	}
	if _u.mutation.AttachmentsCleared() {
		_spec.ClearField(invoice.FieldAttachments, field.TypeJSON)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(invoice.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(invoice.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.Extracted(); ok {
		_spec.SetField(invoice.FieldExtracted, field.TypeJSON, value)
	}
	if _u.mutation.ExtractedCleared() {
		_spec.ClearField(invoice.FieldExtracted, field.TypeJSON)
	}
	if value, ok := _u.mutation.Normalized(); ok {
		_spec.SetField(invoice.FieldNormalized, field.TypeJSON, value)
	}
	if _u.mutation.NormalizedCleared() {
		_spec.ClearField(invoice.FieldNormalized, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(invoice.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, invoice.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(invoice.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractorVersion(); ok {
		_spec.SetField(invoice.FieldExtractorVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReconciliationStatus(); ok {
		_spec.SetField(invoice.FieldReconciliationStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Extra(); ok {
		_spec.SetField(invoice.FieldExtra, field.TypeJSON, value)
	}
	if _u.mutation.ExtraCleared() {
		_spec.ClearField(invoice.FieldExtra, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.VendorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VendorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuditsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditsIDs(); len(nodes) > 0 && !_u.mutation.AuditsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Invoice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
