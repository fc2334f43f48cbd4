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
	"github.com/labelcheck/labelcheck/gen/ent/validationitem"
	"github.com/labelcheck/labelcheck/gen/ent/verificationjob"
)

// ValidationItemCreate is the builder for creating a ValidationItem entity.
type ValidationItemCreate struct {
	config
	mutation *ValidationItemMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *ValidationItemCreate) SetJobID(v uuid.UUID) *ValidationItemCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *ValidationItemCreate) SetPosition(v int) *ValidationItemCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetFieldName sets the "field_name" field.
func (_c *ValidationItemCreate) SetFieldName(v string) *ValidationItemCreate {
	_c.mutation.SetFieldName(v)
	return _c
}

// SetExpectedValue sets the "expected_value" field.
func (_c *ValidationItemCreate) SetExpectedValue(v string) *ValidationItemCreate {
	_c.mutation.SetExpectedValue(v)
	return _c
}

// SetExtractedValue sets the "extracted_value" field.
func (_c *ValidationItemCreate) SetExtractedValue(v string) *ValidationItemCreate {
	_c.mutation.SetExtractedValue(v)
	return _c
}

// SetNillableExtractedValue sets the "extracted_value" field if the given value is not nil.
func (_c *ValidationItemCreate) SetNillableExtractedValue(v *string) *ValidationItemCreate {
	if v != nil {
		_c.SetExtractedValue(*v)
	}
	return _c
}

// SetComparisonStatus sets the "comparison_status" field.
func (_c *ValidationItemCreate) SetComparisonStatus(v string) *ValidationItemCreate {
	_c.mutation.SetComparisonStatus(v)
	return _c
}

// SetComparisonConfidence sets the "comparison_confidence" field.
func (_c *ValidationItemCreate) SetComparisonConfidence(v int) *ValidationItemCreate {
	_c.mutation.SetComparisonConfidence(v)
	return _c
}

// SetComparisonReasoning sets the "comparison_reasoning" field.
func (_c *ValidationItemCreate) SetComparisonReasoning(v string) *ValidationItemCreate {
	_c.mutation.SetComparisonReasoning(v)
	return _c
}

// SetBoxX sets the "box_x" field.
func (_c *ValidationItemCreate) SetBoxX(v float64) *ValidationItemCreate {
	_c.mutation.SetBoxX(v)
	return _c
}

// SetNillableBoxX sets the "box_x" field if the given value is not nil.
func (_c *ValidationItemCreate) SetNillableBoxX(v *float64) *ValidationItemCreate {
	if v != nil {
		_c.SetBoxX(*v)
	}
	return _c
}

// SetBoxY sets the "box_y" field.
func (_c *ValidationItemCreate) SetBoxY(v float64) *ValidationItemCreate {
	_c.mutation.SetBoxY(v)
	return _c
}

// SetNillableBoxY sets the "box_y" field if the given value is not nil.
func (_c *ValidationItemCreate) SetNillableBoxY(v *float64) *ValidationItemCreate {
	if v != nil {
		_c.SetBoxY(*v)
	}
	return _c
}

// SetBoxWidth sets the "box_width" field.
func (_c *ValidationItemCreate) SetBoxWidth(v float64) *ValidationItemCreate {
	_c.mutation.SetBoxWidth(v)
	return _c
}

// SetNillableBoxWidth sets the "box_width" field if the given value is not nil.
func (_c *ValidationItemCreate) SetNillableBoxWidth(v *float64) *ValidationItemCreate {
	if v != nil {
		_c.SetBoxWidth(*v)
	}
	return _c
}

// SetBoxHeight sets the "box_height" field.
func (_c *ValidationItemCreate) SetBoxHeight(v float64) *ValidationItemCreate {
	_c.mutation.SetBoxHeight(v)
	return _c
}

// SetNillableBoxHeight sets the "box_height" field if the given value is not nil.
func (_c *ValidationItemCreate) SetNillableBoxHeight(v *float64) *ValidationItemCreate {
	if v != nil {
		_c.SetBoxHeight(*v)
	}
	return _c
}

// SetBoxAngle sets the "box_angle" field.
func (_c *ValidationItemCreate) SetBoxAngle(v int) *ValidationItemCreate {
	_c.mutation.SetBoxAngle(v)
	return _c
}

// SetNillableBoxAngle sets the "box_angle" field if the given value is not nil.
func (_c *ValidationItemCreate) SetNillableBoxAngle(v *int) *ValidationItemCreate {
	if v != nil {
		_c.SetBoxAngle(*v)
	}
	return _c
}

// SetImageIndex sets the "image_index" field.
func (_c *ValidationItemCreate) SetImageIndex(v int) *ValidationItemCreate {
	_c.mutation.SetImageIndex(v)
	return _c
}

// SetNillableImageIndex sets the "image_index" field if the given value is not nil.
func (_c *ValidationItemCreate) SetNillableImageIndex(v *int) *ValidationItemCreate {
	if v != nil {
		_c.SetImageIndex(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ValidationItemCreate) SetCreatedAt(v time.Time) *ValidationItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ValidationItemCreate) SetNillableCreatedAt(v *time.Time) *ValidationItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ValidationItemCreate) SetID(v uuid.UUID) *ValidationItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ValidationItemCreate) SetNillableID(v *uuid.UUID) *ValidationItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the VerificationJob entity.
func (_c *ValidationItemCreate) SetJob(v *VerificationJob) *ValidationItemCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the ValidationItemMutation object of the builder.
func (_c *ValidationItemCreate) Mutation() *ValidationItemMutation {
	return _c.mutation
}

// Save creates the ValidationItem in the database.
func (_c *ValidationItemCreate) Save(ctx context.Context) (*ValidationItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ValidationItemCreate) SaveX(ctx context.Context) *ValidationItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ValidationItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ValidationItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ValidationItemCreate) defaults() {
	if _, ok := _c.mutation.ImageIndex(); !ok {
		v := validationitem.DefaultImageIndex
		_c.mutation.SetImageIndex(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := validationitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := validationitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ValidationItemCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "ValidationItem.job_id"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "ValidationItem.position"`)}
	}
	if _, ok := _c.mutation.FieldName(); !ok {
		return &ValidationError{Name: "field_name", err: errors.New(`ent: missing required field "ValidationItem.field_name"`)}
	}
	if v, ok := _c.mutation.FieldName(); ok {
		if err := validationitem.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "ValidationItem.field_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExpectedValue(); !ok {
		return &ValidationError{Name: "expected_value", err: errors.New(`ent: missing required field "ValidationItem.expected_value"`)}
	}
	if _, ok := _c.mutation.ComparisonStatus(); !ok {
		return &ValidationError{Name: "comparison_status", err: errors.New(`ent: missing required field "ValidationItem.comparison_status"`)}
	}
	if v, ok := _c.mutation.ComparisonStatus(); ok {
		if err := validationitem.ComparisonStatusValidator(v); err != nil {
			return &ValidationError{Name: "comparison_status", err: fmt.Errorf(`ent: validator failed for field "ValidationItem.comparison_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ComparisonConfidence(); !ok {
		return &ValidationError{Name: "comparison_confidence", err: errors.New(`ent: missing required field "ValidationItem.comparison_confidence"`)}
	}
	if _, ok := _c.mutation.ComparisonReasoning(); !ok {
		return &ValidationError{Name: "comparison_reasoning", err: errors.New(`ent: missing required field "ValidationItem.comparison_reasoning"`)}
	}
	if _, ok := _c.mutation.ImageIndex(); !ok {
		return &ValidationError{Name: "image_index", err: errors.New(`ent: missing required field "ValidationItem.image_index"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ValidationItem.created_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "ValidationItem.job"`)}
	}
	return nil
}

func (_c *ValidationItemCreate) sqlSave(ctx context.Context) (*ValidationItem, error) {
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

func (_c *ValidationItemCreate) createSpec() (*ValidationItem, *sqlgraph.CreateSpec) {
	var (
		_node = &ValidationItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(validationitem.Table, sqlgraph.NewFieldSpec(validationitem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(validationitem.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.FieldName(); ok {
		_spec.SetField(validationitem.FieldFieldName, field.TypeString, value)
		_node.FieldName = value
	}
	if value, ok := _c.mutation.ExpectedValue(); ok {
		_spec.SetField(validationitem.FieldExpectedValue, field.TypeString, value)
		_node.ExpectedValue = value
	}
	if value, ok := _c.mutation.ExtractedValue(); ok {
		_spec.SetField(validationitem.FieldExtractedValue, field.TypeString, value)
		_node.ExtractedValue = &value
	}
	if value, ok := _c.mutation.ComparisonStatus(); ok {
		_spec.SetField(validationitem.FieldComparisonStatus, field.TypeString, value)
		_node.ComparisonStatus = value
	}
	if value, ok := _c.mutation.ComparisonConfidence(); ok {
		_spec.SetField(validationitem.FieldComparisonConfidence, field.TypeInt, value)
		_node.ComparisonConfidence = value
	}
	if value, ok := _c.mutation.ComparisonReasoning(); ok {
		_spec.SetField(validationitem.FieldComparisonReasoning, field.TypeString, value)
		_node.ComparisonReasoning = value
	}
	if value, ok := _c.mutation.BoxX(); ok {
		_spec.SetField(validationitem.FieldBoxX, field.TypeFloat64, value)
		_node.BoxX = &value
	}
	if value, ok := _c.mutation.BoxY(); ok {
		_spec.SetField(validationitem.FieldBoxY, field.TypeFloat64, value)
		_node.BoxY = &value
	}
	if value, ok := _c.mutation.BoxWidth(); ok {
		_spec.SetField(validationitem.FieldBoxWidth, field.TypeFloat64, value)
		_node.BoxWidth = &value
	}
	if value, ok := _c.mutation.BoxHeight(); ok {
		_spec.SetField(validationitem.FieldBoxHeight, field.TypeFloat64, value)
		_node.BoxHeight = &value
	}
	if value, ok := _c.mutation.BoxAngle(); ok {
		_spec.SetField(validationitem.FieldBoxAngle, field.TypeInt, value)
		_node.BoxAngle = &value
	}
	if value, ok := _c.mutation.ImageIndex(); ok {
		_spec.SetField(validationitem.FieldImageIndex, field.TypeInt, value)
		_node.ImageIndex = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(validationitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   validationitem.JobTable,
			Columns: []string{validationitem.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ValidationItemCreateBulk is the builder for creating many ValidationItem entities in bulk.
type ValidationItemCreateBulk struct {
	config
	err      error
	builders []*ValidationItemCreate
}

// Save creates the ValidationItem entities in the database.
func (_c *ValidationItemCreateBulk) Save(ctx context.Context) ([]*ValidationItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ValidationItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ValidationItemMutation)
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
func (_c *ValidationItemCreateBulk) SaveX(ctx context.Context) []*ValidationItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ValidationItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ValidationItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
