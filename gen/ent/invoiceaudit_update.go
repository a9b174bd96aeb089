// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/danielolaitan/invoice-agent/gen/ent/invoiceaudit"
	"github.com/danielolaitan/invoice-agent/gen/ent/predicate"
)

// InvoiceAuditUpdate is the builder for updating InvoiceAudit entities.
type InvoiceAuditUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceAuditMutation
}

// Where appends a list predicates to the InvoiceAuditUpdate builder.
func (_u *InvoiceAuditUpdate) Where(ps ...predicate.InvoiceAudit) *InvoiceAuditUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetActor sets the "actor" field.
func (_u *InvoiceAuditUpdate) SetActor(v string) *InvoiceAuditUpdate {
	_u.mutation.SetActor(v)
	return _u
}

// SetNillableActor sets the "actor" field if the given value is not nil.
func (_u *InvoiceAuditUpdate) SetNillableActor(v *string) *InvoiceAuditUpdate {
	if v != nil {
		_u.SetActor(*v)
	}
	return _u
}

// SetFieldName sets the "field_name" field.
func (_u *InvoiceAuditUpdate) SetFieldName(v string) *InvoiceAuditUpdate {
	_u.mutation.SetFieldName(v)
	return _u
}

// SetNillableFieldName sets the "field_name" field if the given value is not nil.
func (_u *InvoiceAuditUpdate) SetNillableFieldName(v *string) *InvoiceAuditUpdate {
	if v != nil {
		_u.SetFieldName(*v)
	}
	return _u
}

// SetOldValue sets the "old_value" field.
func (_u *InvoiceAuditUpdate) SetOldValue(v string) *InvoiceAuditUpdate {
	_u.mutation.SetOldValue(v)
	return _u
}

// SetNillableOldValue sets the "old_value" field if the given value is not nil.
func (_u *InvoiceAuditUpdate) SetNillableOldValue(v *string) *InvoiceAuditUpdate {
	if v != nil {
		_u.SetOldValue(*v)
	}
	return _u
}

// ClearOldValue clears the value of the "old_value" field.
func (_u *InvoiceAuditUpdate) ClearOldValue() *InvoiceAuditUpdate {
	_u.mutation.ClearOldValue()
	return _u
}

// SetNewValue sets the "new_value" field.
func (_u *InvoiceAuditUpdate) SetNewValue(v string) *InvoiceAuditUpdate {
	_u.mutation.SetNewValue(v)
	return _u
}

// SetNillableNewValue sets the "new_value" field if the given value is not nil.
func (_u *InvoiceAuditUpdate) SetNillableNewValue(v *string) *InvoiceAuditUpdate {
	if v != nil {
		_u.SetNewValue(*v)
	}
	return _u
}

// ClearNewValue clears the value of the "new_value" field.
func (_u *InvoiceAuditUpdate) ClearNewValue() *InvoiceAuditUpdate {
	_u.mutation.ClearNewValue()
	return _u
}

// Mutation returns the InvoiceAuditMutation object of the builder.
func (_u *InvoiceAuditUpdate) Mutation() *InvoiceAuditMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceAuditUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceAuditUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceAuditUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceAuditUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceAuditUpdate) check() error {
	if v, ok := _u.mutation.Actor(); ok {
		if err := invoiceaudit.ActorValidator(v); err != nil {
			return &ValidationError{Name: "actor", err: fmt.Errorf(`ent: validator failed for field "InvoiceAudit.actor": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldName(); ok {
		if err := invoiceaudit.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "InvoiceAudit.field_name": %w`, err)}
		}
	}
	if _u.mutation.InvoiceCleared() && len(_u.mutation.InvoiceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InvoiceAudit.invoice"`)
	}
	return nil
}

func (_u *InvoiceAuditUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoiceaudit.Table, invoiceaudit.Columns, sqlgraph.NewFieldSpec(invoiceaudit.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Actor(); ok {
		_spec.SetField(invoiceaudit.FieldActor, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldName(); ok {
		_spec.SetField(invoiceaudit.FieldFieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OldValue(); ok {
		_spec.SetField(invoiceaudit.FieldOldValue, field.TypeString, value)
	}
	if _u.mutation.OldValueCleared() {
		_spec.ClearField(invoiceaudit.FieldOldValue, field.TypeString)
	}
	if value, ok := _u.mutation.NewValue(); ok {
		_spec.SetField(invoiceaudit.FieldNewValue, field.TypeString, value)
	}
	if _u.mutation.NewValueCleared() {
		_spec.ClearField(invoiceaudit.FieldNewValue, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoiceaudit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceAuditUpdateOne is the builder for updating a single InvoiceAudit entity.
type InvoiceAuditUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceAuditMutation
}

// SetActor sets the "actor" field.
func (_u *InvoiceAuditUpdateOne) SetActor(v string) *InvoiceAuditUpdateOne {
	_u.mutation.SetActor(v)
	return _u
}

// SetNillableActor sets the "actor" field if the given value is not nil.
func (_u *InvoiceAuditUpdateOne) SetNillableActor(v *string) *InvoiceAuditUpdateOne {
	if v != nil {
		_u.SetActor(*v)
	}
	return _u
}

// SetFieldName sets the "field_name" field.
func (_u *InvoiceAuditUpdateOne) SetFieldName(v string) *InvoiceAuditUpdateOne {
	_u.mutation.SetFieldName(v)
	return _u
}

// SetNillableFieldName sets the "field_name" field if the given value is not nil.
func (_u *InvoiceAuditUpdateOne) SetNillableFieldName(v *string) *InvoiceAuditUpdateOne {
	if v != nil {
		_u.SetFieldName(*v)
	}
	return _u
}

// SetOldValue sets the "old_value" field.
func (_u *InvoiceAuditUpdateOne) SetOldValue(v string) *InvoiceAuditUpdateOne {
	_u.mutation.SetOldValue(v)
	return _u
}

// SetNillableOldValue sets the "old_value" field if the given value is not nil.
func (_u *InvoiceAuditUpdateOne) SetNillableOldValue(v *string) *InvoiceAuditUpdateOne {
	if v != nil {
		_u.SetOldValue(*v)
	}
	return _u
}

// ClearOldValue clears the value of the "old_value" field.
func (_u *InvoiceAuditUpdateOne) ClearOldValue() *InvoiceAuditUpdateOne {
	_u.mutation.ClearOldValue()
	return _u
}

// SetNewValue sets the "new_value" field.
func (_u *InvoiceAuditUpdateOne) SetNewValue(v string) *InvoiceAuditUpdateOne {
	_u.mutation.SetNewValue(v)
	return _u
}

// SetNillableNewValue sets the "new_value" field if the given value is not nil.
func (_u *InvoiceAuditUpdateOne) SetNillableNewValue(v *string) *InvoiceAuditUpdateOne {
	if v != nil {
		_u.SetNewValue(*v)
	}
	return _u
}

// ClearNewValue clears the value of the "new_value" field.
func (_u *InvoiceAuditUpdateOne) ClearNewValue() *InvoiceAuditUpdateOne {
	_u.mutation.ClearNewValue()
	return _u
}

// Mutation returns the InvoiceAuditMutation object of the builder.
func (_u *InvoiceAuditUpdateOne) Mutation() *InvoiceAuditMutation {
	return _u.mutation
}

// Where appends a list predicates to the InvoiceAuditUpdate builder.
func (_u *InvoiceAuditUpdateOne) Where(ps ...predicate.InvoiceAudit) *InvoiceAuditUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceAuditUpdateOne) Select(field string, fields ...string) *InvoiceAuditUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InvoiceAudit entity.
func (_u *InvoiceAuditUpdateOne) Save(ctx context.Context) (*InvoiceAudit, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceAuditUpdateOne) SaveX(ctx context.Context) *InvoiceAudit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceAuditUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceAuditUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceAuditUpdateOne) check() error {
	if v, ok := _u.mutation.Actor(); ok {
		if err := invoiceaudit.ActorValidator(v); err != nil {
			return &ValidationError{Name: "actor", err: fmt.Errorf(`ent: validator failed for field "InvoiceAudit.actor": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldName(); ok {
		if err := invoiceaudit.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "InvoiceAudit.field_name": %w`, err)}
		}
	}
	if _u.mutation.InvoiceCleared() && len(_u.mutation.InvoiceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InvoiceAudit.invoice"`)
	}
	return nil
}

func (_u *InvoiceAuditUpdateOne) sqlSave(ctx context.Context) (_node *InvoiceAudit, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoiceaudit.Table, invoiceaudit.Columns, sqlgraph.NewFieldSpec(invoiceaudit.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InvoiceAudit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoiceaudit.FieldID)
		for _, f := range fields {
			if !invoiceaudit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoiceaudit.FieldID {
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
	if value, ok := _u.mutation.Actor(); ok {
		_spec.SetField(invoiceaudit.FieldActor, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldName(); ok {
		_spec.SetField(invoiceaudit.FieldFieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OldValue(); ok {
		_spec.SetField(invoiceaudit.FieldOldValue, field.TypeString, value)
	}
	if _u.mutation.OldValueCleared() {
		_spec.ClearField(invoiceaudit.FieldOldValue, field.TypeString)
	}
	if value, ok := _u.mutation.NewValue(); ok {
		_spec.SetField(invoiceaudit.FieldNewValue, field.TypeString, value)
	}
	if _u.mutation.NewValueCleared() {
		_spec.ClearField(invoiceaudit.FieldNewValue, field.TypeString)
	}
	_node = &InvoiceAudit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoiceaudit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
