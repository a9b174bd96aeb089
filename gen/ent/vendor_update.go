// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/danielolaitan/invoice-agent/gen/ent/invoice"
	"github.com/danielolaitan/invoice-agent/gen/ent/predicate"
	"github.com/danielolaitan/invoice-agent/gen/ent/vendor"
	"github.com/google/uuid"
)

// VendorUpdate is the builder for updating Vendor entities.
type VendorUpdate struct {
	config
	hooks    []Hook
	mutation *VendorMutation
}

// Where appends a list predicates to the VendorUpdate builder.
func (_u *VendorUpdate) Where(ps ...predicate.Vendor) *VendorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCanonicalName sets the "canonical_name" field.
func (_u *VendorUpdate) SetCanonicalName(v string) *VendorUpdate {
	_u.mutation.SetCanonicalName(v)
	return _u
}

// SetNillableCanonicalName sets the "canonical_name" field if the given value is not nil.
func (_u *VendorUpdate) SetNillableCanonicalName(v *string) *VendorUpdate {
	if v != nil {
		_u.SetCanonicalName(*v)
	}
	return _u
}

// SetAliases sets the "aliases" field.
func (_u *VendorUpdate) SetAliases(v []string) *VendorUpdate {
	_u.mutation.SetAliases(v)
	return _u
}

// AppendAliases appends value to the "aliases" field.
func (_u *VendorUpdate) AppendAliases(v []string) *VendorUpdate {
	_u.mutation.AppendAliases(v)
	return _u
}

// ClearAliases clears the value of the "aliases" field.
func (_u *VendorUpdate) ClearAliases() *VendorUpdate {
	_u.mutation.ClearAliases()
	return _u
}

// SetMeta sets the "meta" field.
func (_u *VendorUpdate) SetMeta(v map[string]interface{}) *VendorUpdate {
	_u.mutation.SetMeta(v)
	return _u
}

// ClearMeta clears the value of the "meta" field.
func (_u *VendorUpdate) ClearMeta() *VendorUpdate {
	_u.mutation.ClearMeta()
	return _u
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by IDs.
func (_u *VendorUpdate) AddInvoiceIDs(ids ...uuid.UUID) *VendorUpdate {
	_u.mutation.AddInvoiceIDs(ids...)
	return _u
}

// AddInvoices adds the "invoices" edges to the Invoice entity.
func (_u *VendorUpdate) AddInvoices(v ...*Invoice) *VendorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInvoiceIDs(ids...)
}

// Mutation returns the VendorMutation object of the builder.
func (_u *VendorUpdate) Mutation() *VendorMutation {
	return _u.mutation
}

// ClearInvoices clears all "invoices" edges to the Invoice entity.
func (_u *VendorUpdate) ClearInvoices() *VendorUpdate {
	_u.mutation.ClearInvoices()
	return _u
}

// RemoveInvoiceIDs removes the "invoices" edge to Invoice entities by IDs.
func (_u *VendorUpdate) RemoveInvoiceIDs(ids ...uuid.UUID) *VendorUpdate {
	_u.mutation.RemoveInvoiceIDs(ids...)
	return _u
}

// RemoveInvoices removes "invoices" edges to Invoice entities.
func (_u *VendorUpdate) RemoveInvoices(v ...*Invoice) *VendorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInvoiceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VendorUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VendorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VendorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VendorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VendorUpdate) check() error {
	if v, ok := _u.mutation.CanonicalName(); ok {
		if err := vendor.CanonicalNameValidator(v); err != nil {
			return &ValidationError{Name: "canonical_name", err: fmt.Errorf(`ent: validator failed for field "Vendor.canonical_name": %w`, err)}
		}
	}
	return nil
}

func (_u *VendorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vendor.Table, vendor.Columns, sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CanonicalName(); ok {
		_spec.SetField(vendor.FieldCanonicalName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Aliases(); ok {
		_spec.SetField(vendor.FieldAliases, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAliases(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, vendor.FieldAliases, value)
		})
	}
	if _u.mutation.AliasesCleared() {
		_spec.ClearField(vendor.FieldAliases, field.TypeJSON)
	}
	if value, ok := _u.mutation.Meta(); ok {
		_spec.SetField(vendor.FieldMeta, field.TypeJSON, value)
	}
	if _u.mutation.MetaCleared() {
		_spec.ClearField(vendor.FieldMeta, field.TypeJSON)
	}
	if _u.mutation.InvoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   vendor.InvoicesTable,
			Columns: []string{vendor.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInvoicesIDs(); len(nodes) > 0 && !_u.mutation.InvoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   vendor.InvoicesTable,
			Columns: []string{vendor.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoicesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   vendor.InvoicesTable,
			Columns: []string{vendor.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vendor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VendorUpdateOne is the builder for updating a single Vendor entity.
type VendorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VendorMutation
}

// SetCanonicalName sets the "canonical_name" field.
func (_u *VendorUpdateOne) SetCanonicalName(v string) *VendorUpdateOne {
	_u.mutation.SetCanonicalName(v)
	return _u
}

// SetNillableCanonicalName sets the "canonical_name" field if the given value is not nil.
func (_u *VendorUpdateOne) SetNillableCanonicalName(v *string) *VendorUpdateOne {
	if v != nil {
		_u.SetCanonicalName(*v)
	}
	return _u
}

// SetAliases sets the "aliases" field.
func (_u *VendorUpdateOne) SetAliases(v []string) *VendorUpdateOne {
	_u.mutation.SetAliases(v)
	return _u
}

// AppendAliases appends value to the "aliases" field.
func (_u *VendorUpdateOne) AppendAliases(v []string) *VendorUpdateOne {
	_u.mutation.AppendAliases(v)
	return _u
}

// ClearAliases clears the value of the "aliases" field.
func (_u *VendorUpdateOne) ClearAliases() *VendorUpdateOne {
	_u.mutation.ClearAliases()
	return _u
}

// SetMeta sets the "meta" field.
func (_u *VendorUpdateOne) SetMeta(v map[string]interface{}) *VendorUpdateOne {
	_u.mutation.SetMeta(v)
	return _u
}

// ClearMeta clears the value of the "meta" field.
func (_u *VendorUpdateOne) ClearMeta() *VendorUpdateOne {
	_u.mutation.ClearMeta()
	return _u
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by IDs.
func (_u *VendorUpdateOne) AddInvoiceIDs(ids ...uuid.UUID) *VendorUpdateOne {
	_u.mutation.AddInvoiceIDs(ids...)
	return _u
}

// AddInvoices adds the "invoices" edges to the Invoice entity.
func (_u *VendorUpdateOne) AddInvoices(v ...*Invoice) *VendorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInvoiceIDs(ids...)
}

// Mutation returns the VendorMutation object of the builder.
func (_u *VendorUpdateOne) Mutation() *VendorMutation {
	return _u.mutation
}

// ClearInvoices clears all "invoices" edges to the Invoice entity.
func (_u *VendorUpdateOne) ClearInvoices() *VendorUpdateOne {
	_u.mutation.ClearInvoices()
	return _u
}

// RemoveInvoiceIDs removes the "invoices" edge to Invoice entities by IDs.
func (_u *VendorUpdateOne) RemoveInvoiceIDs(ids ...uuid.UUID) *VendorUpdateOne {
	_u.mutation.RemoveInvoiceIDs(ids...)
	return _u
}

// RemoveInvoices removes "invoices" edges to Invoice entities.
func (_u *VendorUpdateOne) RemoveInvoices(v ...*Invoice) *VendorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInvoiceIDs(ids...)
}

// Where appends a list predicates to the VendorUpdate builder.
func (_u *VendorUpdateOne) Where(ps ...predicate.Vendor) *VendorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VendorUpdateOne) Select(field string, fields ...string) *VendorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Vendor entity.
func (_u *VendorUpdateOne) Save(ctx context.Context) (*Vendor, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VendorUpdateOne) SaveX(ctx context.Context) *Vendor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VendorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VendorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VendorUpdateOne) check() error {
	if v, ok := _u.mutation.CanonicalName(); ok {
		if err := vendor.CanonicalNameValidator(v); err != nil {
			return &ValidationError{Name: "canonical_name", err: fmt.Errorf(`ent: validator failed for field "Vendor.canonical_name": %w`, err)}
		}
	}
	return nil
}

func (_u *VendorUpdateOne) sqlSave(ctx context.Context) (_node *Vendor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vendor.Table, vendor.Columns, sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Vendor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vendor.FieldID)
		for _, f := range fields {
			if !vendor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vendor.FieldID {
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
	if value, ok := _u.mutation.CanonicalName(); ok {
		_spec.SetField(vendor.FieldCanonicalName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Aliases(); ok {
		_spec.SetField(vendor.FieldAliases, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAliases(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, vendor.FieldAliases, value)
		})
	}
	if _u.mutation.AliasesCleared() {
		_spec.ClearField(vendor.FieldAliases, field.TypeJSON)
	}
	if value, ok := _u.mutation.Meta(); ok {
		_spec.SetField(vendor.FieldMeta, field.TypeJSON, value)
	}
	if _u.mutation.MetaCleared() {
		_spec.ClearField(vendor.FieldMeta, field.TypeJSON)
	}
	if _u.mutation.InvoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   vendor.InvoicesTable,
			Columns: []string{vendor.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInvoicesIDs(); len(nodes) > 0 && !_u.mutation.InvoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   vendor.InvoicesTable,
			Columns: []string{vendor.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoicesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   vendor.InvoicesTable,
			Columns: []string{vendor.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Vendor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vendor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
