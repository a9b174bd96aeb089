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
	"github.com/google/uuid"
)

// InvoiceAuditCreate is the builder for creating a InvoiceAudit entity.
type InvoiceAuditCreate struct {
	config
	mutation *InvoiceAuditMutation
	hooks    []Hook
}

// SetInvoiceID sets the "invoice_id" field.
func (_c *InvoiceAuditCreate) SetInvoiceID(v uuid.UUID) *InvoiceAuditCreate {
	_c.mutation.SetInvoiceID(v)
	return _c
}

// SetActor sets the "actor" field.
func (_c *InvoiceAuditCreate) SetActor(v string) *InvoiceAuditCreate {
	_c.mutation.SetActor(v)
	return _c
}

// SetFieldName sets the "field_name" field.
func (_c *InvoiceAuditCreate) SetFieldName(v string) *InvoiceAuditCreate {
	_c.mutation.SetFieldName(v)
	return _c
}

// SetOldValue sets the "old_value" field.
func (_c *InvoiceAuditCreate) SetOldValue(v string) *InvoiceAuditCreate {
	_c.mutation.SetOldValue(v)
	return _c
}

// SetNillableOldValue sets the "old_value" field if the given value is not nil.
func (_c *InvoiceAuditCreate) SetNillableOldValue(v *string) *InvoiceAuditCreate {
	if v != nil {
		_c.SetOldValue(*v)
	}
	return _c
}

// SetNewValue sets the "new_value" field.
func (_c *InvoiceAuditCreate) SetNewValue(v string) *InvoiceAuditCreate {
	_c.mutation.SetNewValue(v)
	return _c
}

// SetNillableNewValue sets the "new_value" field if the given value is not nil.
func (_c *InvoiceAuditCreate) SetNillableNewValue(v *string) *InvoiceAuditCreate {
	if v != nil {
		_c.SetNewValue(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InvoiceAuditCreate) SetCreatedAt(v time.Time) *InvoiceAuditCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InvoiceAuditCreate) SetNillableCreatedAt(v *time.Time) *InvoiceAuditCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InvoiceAuditCreate) SetID(v uuid.UUID) *InvoiceAuditCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InvoiceAuditCreate) SetNillableID(v *uuid.UUID) *InvoiceAuditCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (_c *InvoiceAuditCreate) SetInvoice(v *Invoice) *InvoiceAuditCreate {
	return _c.SetInvoiceID(v.ID)
}

// Mutation returns the InvoiceAuditMutation object of the builder.
func (_c *InvoiceAuditCreate) Mutation() *InvoiceAuditMutation {
	return _c.mutation
}

// Save creates the InvoiceAudit in the database.
func (_c *InvoiceAuditCreate) Save(ctx context.Context) (*InvoiceAudit, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvoiceAuditCreate) SaveX(ctx context.Context) *InvoiceAudit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceAuditCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceAuditCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InvoiceAuditCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := invoiceaudit.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := invoiceaudit.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvoiceAuditCreate) check() error {
	if _, ok := _c.mutation.InvoiceID(); !ok {
		return &ValidationError{Name: "invoice_id", err: errors.New(`ent: missing required field "InvoiceAudit.invoice_id"`)}
	}
	if _, ok := _c.mutation.Actor(); !ok {
		return &ValidationError{Name: "actor", err: errors.New(`ent: missing required field "InvoiceAudit.actor"`)}
	}
	if v, ok := _c.mutation.Actor(); ok {
		if err := invoiceaudit.ActorValidator(v); err != nil {
			return &ValidationError{Name: "actor", err: fmt.Errorf(`ent: validator failed for field "InvoiceAudit.actor": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FieldName(); !ok {
		return &ValidationError{Name: "field_name", err: errors.New(`ent: missing required field "InvoiceAudit.field_name"`)}
	}
	if v, ok := _c.mutation.FieldName(); ok {
		if err := invoiceaudit.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "InvoiceAudit.field_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "InvoiceAudit.created_at"`)}
	}
	if len(_c.mutation.InvoiceIDs()) == 0 {
		return &ValidationError{Name: "invoice", err: errors.New(`ent: missing required edge "InvoiceAudit.invoice"`)}
	}
	return nil
}

func (_c *InvoiceAuditCreate) sqlSave(ctx context.Context) (*InvoiceAudit, error) {
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

func (_c *InvoiceAuditCreate) createSpec() (*InvoiceAudit, *sqlgraph.CreateSpec) {
	var (
		_node = &InvoiceAudit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(invoiceaudit.Table, sqlgraph.NewFieldSpec(invoiceaudit.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Actor(); ok {
		_spec.SetField(invoiceaudit.FieldActor, field.TypeString, value)
		_node.Actor = value
	}
	if value, ok := _c.mutation.FieldName(); ok {
		_spec.SetField(invoiceaudit.FieldFieldName, field.TypeString, value)
		_node.FieldName = value
	}
	if value, ok := _c.mutation.OldValue(); ok {
		_spec.SetField(invoiceaudit.FieldOldValue, field.TypeString, value)
		_node.OldValue = value
	}
	if value, ok := _c.mutation.NewValue(); ok {
		_spec.SetField(invoiceaudit.FieldNewValue, field.TypeString, value)
		_node.NewValue = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(invoiceaudit.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.InvoiceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoiceaudit.InvoiceTable,
			Columns: []string{invoiceaudit.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.InvoiceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InvoiceAuditCreateBulk is the builder for creating many InvoiceAudit entities in bulk.
type InvoiceAuditCreateBulk struct {
	config
	err      error
	builders []*InvoiceAuditCreate
}

// Save creates the InvoiceAudit entities in the database.
func (_c *InvoiceAuditCreateBulk) Save(ctx context.Context) ([]*InvoiceAudit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InvoiceAudit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvoiceAuditMutation)
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
func (_c *InvoiceAuditCreateBulk) SaveX(ctx context.Context) []*InvoiceAudit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceAuditCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceAuditCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
