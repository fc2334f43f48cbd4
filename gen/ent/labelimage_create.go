// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/labelcheck/labelcheck/gen/ent/label"
	"github.com/labelcheck/labelcheck/gen/ent/labelimage"
)

// LabelImageCreate is the builder for creating a LabelImage entity.
type LabelImageCreate struct {
	config
	mutation *LabelImageMutation
	hooks    []Hook
}

// SetLabelID sets the "label_id" field.
func (_c *LabelImageCreate) SetLabelID(v uuid.UUID) *LabelImageCreate {
	_c.mutation.SetLabelID(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *LabelImageCreate) SetPosition(v int) *LabelImageCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetSourcePath sets the "source_path" field.
func (_c *LabelImageCreate) SetSourcePath(v string) *LabelImageCreate {
	_c.mutation.SetSourcePath(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *LabelImageCreate) SetRole(v string) *LabelImageCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *LabelImageCreate) SetNillableRole(v *string) *LabelImageCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *LabelImageCreate) SetContentHash(v []byte) *LabelImageCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LabelImageCreate) SetCreatedAt(v time.Time) *LabelImageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LabelImageCreate) SetNillableCreatedAt(v *time.Time) *LabelImageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LabelImageCreate) SetID(v uuid.UUID) *LabelImageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LabelImageCreate) SetNillableID(v *uuid.UUID) *LabelImageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetLabel sets the "label" edge to the Label entity.
func (_c *LabelImageCreate) SetLabel(v *Label) *LabelImageCreate {
	return _c.SetLabelID(v.ID)
}

// Mutation returns the LabelImageMutation object of the builder.
func (_c *LabelImageCreate) Mutation() *LabelImageMutation {
	return _c.mutation
}

// Save creates the LabelImage in the database.
func (_c *LabelImageCreate) Save(ctx context.Context) (*LabelImage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LabelImageCreate) SaveX(ctx context.Context) *LabelImage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LabelImageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LabelImageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LabelImageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := labelimage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := labelimage.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LabelImageCreate) check() error {
	if _, ok := _c.mutation.LabelID(); !ok {
		return &ValidationError{Name: "label_id", err: errors.New(`ent: missing required field "LabelImage.label_id"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "LabelImage.position"`)}
	}
	if _, ok := _c.mutation.SourcePath(); !ok {
		return &ValidationError{Name: "source_path", err: errors.New(`ent: missing required field "LabelImage.source_path"`)}
	}
	if v, ok := _c.mutation.SourcePath(); ok {
		if err := labelimage.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "LabelImage.source_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LabelImage.created_at"`)}
	}
	if len(_c.mutation.LabelIDs()) == 0 {
		return &ValidationError{Name: "label", err: errors.New(`ent: missing required edge "LabelImage.label"`)}
	}
	return nil
}

func (_c *LabelImageCreate) sqlSave(ctx context.Context) (*LabelImage, error) {
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

func (_c *LabelImageCreate) createSpec() (*LabelImage, *sqlgraph.CreateSpec) {
	var (
		_node = &LabelImage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(labelimage.Table, sqlgraph.NewFieldSpec(labelimage.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(labelimage.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.SourcePath(); ok {
		_spec.SetField(labelimage.FieldSourcePath, field.TypeString, value)
		_node.SourcePath = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(labelimage.FieldRole, field.TypeString, value)
		_node.Role = &value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(labelimage.FieldContentHash, field.TypeBytes, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(labelimage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.LabelIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   labelimage.LabelTable,
			Columns: []string{labelimage.LabelColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(label.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.LabelID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LabelImageCreateBulk is the builder for creating many LabelImage entities in bulk.
type LabelImageCreateBulk struct {
	config
	err      error
	builders []*LabelImageCreate
}

// Save creates the LabelImage entities in the database.
func (_c *LabelImageCreateBulk) Save(ctx context.Context) ([]*LabelImage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LabelImage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LabelImageMutation)
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
func (_c *LabelImageCreateBulk) SaveX(ctx context.Context) []*LabelImage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LabelImageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LabelImageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
