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
	"github.com/labelcheck/labelcheck/gen/ent/verificationjob"
)

// LabelCreate is the builder for creating a Label entity.
type LabelCreate struct {
	config
	mutation *LabelMutation
	hooks    []Hook
}

// SetStatus sets the "status" field.
func (_c *LabelCreate) SetStatus(v string) *LabelCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *LabelCreate) SetNillableStatus(v *string) *LabelCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCorrectionDeadline sets the "correction_deadline" field.
func (_c *LabelCreate) SetCorrectionDeadline(v time.Time) *LabelCreate {
	_c.mutation.SetCorrectionDeadline(v)
	return _c
}

// SetNillableCorrectionDeadline sets the "correction_deadline" field if the given value is not nil.
func (_c *LabelCreate) SetNillableCorrectionDeadline(v *time.Time) *LabelCreate {
	if v != nil {
		_c.SetCorrectionDeadline(*v)
	}
	return _c
}

// SetBeverageType sets the "beverage_type" field.
func (_c *LabelCreate) SetBeverageType(v string) *LabelCreate {
	_c.mutation.SetBeverageType(v)
	return _c
}

// SetNillableBeverageType sets the "beverage_type" field if the given value is not nil.
func (_c *LabelCreate) SetNillableBeverageType(v *string) *LabelCreate {
	if v != nil {
		_c.SetBeverageType(*v)
	}
	return _c
}

// SetContainerMl sets the "container_ml" field.
func (_c *LabelCreate) SetContainerMl(v int) *LabelCreate {
	_c.mutation.SetContainerMl(v)
	return _c
}

// SetNillableContainerMl sets the "container_ml" field if the given value is not nil.
func (_c *LabelCreate) SetNillableContainerMl(v *int) *LabelCreate {
	if v != nil {
		_c.SetContainerMl(*v)
	}
	return _c
}

// SetApplicationValues sets the "application_values" field.
func (_c *LabelCreate) SetApplicationValues(v map[string]string) *LabelCreate {
	_c.mutation.SetApplicationValues(v)
	return _c
}

// SetStatusReasoning sets the "status_reasoning" field.
func (_c *LabelCreate) SetStatusReasoning(v string) *LabelCreate {
	_c.mutation.SetStatusReasoning(v)
	return _c
}

// SetNillableStatusReasoning sets the "status_reasoning" field if the given value is not nil.
func (_c *LabelCreate) SetNillableStatusReasoning(v *string) *LabelCreate {
	if v != nil {
		_c.SetStatusReasoning(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LabelCreate) SetCreatedAt(v time.Time) *LabelCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LabelCreate) SetNillableCreatedAt(v *time.Time) *LabelCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LabelCreate) SetUpdatedAt(v time.Time) *LabelCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LabelCreate) SetNillableUpdatedAt(v *time.Time) *LabelCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LabelCreate) SetID(v uuid.UUID) *LabelCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LabelCreate) SetNillableID(v *uuid.UUID) *LabelCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddImageIDs adds the "images" edge to the LabelImage entity by IDs.
func (_c *LabelCreate) AddImageIDs(ids ...uuid.UUID) *LabelCreate {
	_c.mutation.AddImageIDs(ids...)
	return _c
}

// AddImages adds the "images" edges to the LabelImage entity.
func (_c *LabelCreate) AddImages(v ...*LabelImage) *LabelCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddImageIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the VerificationJob entity by IDs.
func (_c *LabelCreate) AddJobIDs(ids ...uuid.UUID) *LabelCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the VerificationJob entity.
func (_c *LabelCreate) AddJobs(v ...*VerificationJob) *LabelCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the LabelMutation object of the builder.
func (_c *LabelCreate) Mutation() *LabelMutation {
	return _c.mutation
}

// Save creates the Label in the database.
func (_c *LabelCreate) Save(ctx context.Context) (*Label, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LabelCreate) SaveX(ctx context.Context) *Label {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LabelCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LabelCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LabelCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := label.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.BeverageType(); !ok {
		v := label.DefaultBeverageType
		_c.mutation.SetBeverageType(v)
	}
	if _, ok := _c.mutation.ContainerMl(); !ok {
		v := label.DefaultContainerMl
		_c.mutation.SetContainerMl(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := label.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := label.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := label.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LabelCreate) check() error {
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Label.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := label.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Label.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BeverageType(); !ok {
		return &ValidationError{Name: "beverage_type", err: errors.New(`ent: missing required field "Label.beverage_type"`)}
	}
	if _, ok := _c.mutation.ContainerMl(); !ok {
		return &ValidationError{Name: "container_ml", err: errors.New(`ent: missing required field "Label.container_ml"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Label.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Label.updated_at"`)}
	}
	return nil
}

func (_c *LabelCreate) sqlSave(ctx context.Context) (*Label, error) {
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

func (_c *LabelCreate) createSpec() (*Label, *sqlgraph.CreateSpec) {
	var (
		_node = &Label{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(label.Table, sqlgraph.NewFieldSpec(label.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(label.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CorrectionDeadline(); ok {
		_spec.SetField(label.FieldCorrectionDeadline, field.TypeTime, value)
		_node.CorrectionDeadline = &value
	}
	if value, ok := _c.mutation.BeverageType(); ok {
		_spec.SetField(label.FieldBeverageType, field.TypeString, value)
		_node.BeverageType = value
	}
	if value, ok := _c.mutation.ContainerMl(); ok {
		_spec.SetField(label.FieldContainerMl, field.TypeInt, value)
		_node.ContainerMl = value
	}
	if value, ok := _c.mutation.ApplicationValues(); ok {
		_spec.SetField(label.FieldApplicationValues, field.TypeJSON, value)
		_node.ApplicationValues = value
	}
	if value, ok := _c.mutation.StatusReasoning(); ok {
		_spec.SetField(label.FieldStatusReasoning, field.TypeString, value)
		_node.StatusReasoning = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(label.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(label.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ImagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   label.ImagesTable,
			Columns: []string{label.ImagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(labelimage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   label.JobsTable,
			Columns: []string{label.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LabelCreateBulk is the builder for creating many Label entities in bulk.
type LabelCreateBulk struct {
	config
	err      error
	builders []*LabelCreate
}

// Save creates the Label entities in the database.
func (_c *LabelCreateBulk) Save(ctx context.Context) ([]*Label, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Label, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LabelMutation)
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
func (_c *LabelCreateBulk) SaveX(ctx context.Context) []*Label {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LabelCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LabelCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
