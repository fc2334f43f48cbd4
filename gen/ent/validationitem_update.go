// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/labelcheck/labelcheck/gen/ent/predicate"
	"github.com/labelcheck/labelcheck/gen/ent/validationitem"
	"github.com/labelcheck/labelcheck/gen/ent/verificationjob"
)

// ValidationItemUpdate is the builder for updating ValidationItem entities.
type ValidationItemUpdate struct {
	config
	hooks    []Hook
	mutation *ValidationItemMutation
}

// Where appends a list predicates to the ValidationItemUpdate builder.
func (_u *ValidationItemUpdate) Where(ps ...predicate.ValidationItem) *ValidationItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *ValidationItemUpdate) SetJobID(v uuid.UUID) *ValidationItemUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *ValidationItemUpdate) SetNillableJobID(v *uuid.UUID) *ValidationItemUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *ValidationItemUpdate) SetPosition(v int) *ValidationItemUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *ValidationItemUpdate) SetNillablePosition(v *int) *ValidationItemUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *ValidationItemUpdate) AddPosition(v int) *ValidationItemUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetJob sets the "job" edge to the VerificationJob entity.
func (_u *ValidationItemUpdate) SetJob(v *VerificationJob) *ValidationItemUpdate {
	return _u.SetJobID(v.ID)
}

// Mutation returns the ValidationItemMutation object of the builder.
func (_u *ValidationItemUpdate) Mutation() *ValidationItemMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the VerificationJob entity.
func (_u *ValidationItemUpdate) ClearJob() *ValidationItemUpdate {
	_u.mutation.ClearJob()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ValidationItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ValidationItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ValidationItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ValidationItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ValidationItemUpdate) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ValidationItem.job"`)
	}
	return nil
}

func (_u *ValidationItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(validationitem.Table, validationitem.Columns, sqlgraph.NewFieldSpec(validationitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(validationitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(validationitem.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.ExtractedValueCleared() {
		_spec.ClearField(validationitem.FieldExtractedValue, field.TypeString)
	}
	if _u.mutation.BoxXCleared() {
		_spec.ClearField(validationitem.FieldBoxX, field.TypeFloat64)
	}
	if _u.mutation.BoxYCleared() {
		_spec.ClearField(validationitem.FieldBoxY, field.TypeFloat64)
	}
	if _u.mutation.BoxWidthCleared() {
		_spec.ClearField(validationitem.FieldBoxWidth, field.TypeFloat64)
	}
	if _u.mutation.BoxHeightCleared() {
		_spec.ClearField(validationitem.FieldBoxHeight, field.TypeFloat64)
	}
	if _u.mutation.BoxAngleCleared() {
		_spec.ClearField(validationitem.FieldBoxAngle, field.TypeInt)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{validationitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ValidationItemUpdateOne is the builder for updating a single ValidationItem entity.
type ValidationItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ValidationItemMutation
}

// SetJobID sets the "job_id" field.
func (_u *ValidationItemUpdateOne) SetJobID(v uuid.UUID) *ValidationItemUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *ValidationItemUpdateOne) SetNillableJobID(v *uuid.UUID) *ValidationItemUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *ValidationItemUpdateOne) SetPosition(v int) *ValidationItemUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *ValidationItemUpdateOne) SetNillablePosition(v *int) *ValidationItemUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *ValidationItemUpdateOne) AddPosition(v int) *ValidationItemUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetJob sets the "job" edge to the VerificationJob entity.
func (_u *ValidationItemUpdateOne) SetJob(v *VerificationJob) *ValidationItemUpdateOne {
	return _u.SetJobID(v.ID)
}

// Mutation returns the ValidationItemMutation object of the builder.
func (_u *ValidationItemUpdateOne) Mutation() *ValidationItemMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the VerificationJob entity.
func (_u *ValidationItemUpdateOne) ClearJob() *ValidationItemUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// Where appends a list predicates to the ValidationItemUpdate builder.
func (_u *ValidationItemUpdateOne) Where(ps ...predicate.ValidationItem) *ValidationItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ValidationItemUpdateOne) Select(field string, fields ...string) *ValidationItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ValidationItem entity.
func (_u *ValidationItemUpdateOne) Save(ctx context.Context) (*ValidationItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ValidationItemUpdateOne) SaveX(ctx context.Context) *ValidationItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ValidationItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ValidationItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ValidationItemUpdateOne) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ValidationItem.job"`)
	}
	return nil
}

func (_u *ValidationItemUpdateOne) sqlSave(ctx context.Context) (_node *ValidationItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(validationitem.Table, validationitem.Columns, sqlgraph.NewFieldSpec(validationitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ValidationItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, validationitem.FieldID)
		for _, f := range fields {
			if !validationitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != validationitem.FieldID {
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
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(validationitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(validationitem.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.ExtractedValueCleared() {
		_spec.ClearField(validationitem.FieldExtractedValue, field.TypeString)
	}
	if _u.mutation.BoxXCleared() {
		_spec.ClearField(validationitem.FieldBoxX, field.TypeFloat64)
	}
	if _u.mutation.BoxYCleared() {
		_spec.ClearField(validationitem.FieldBoxY, field.TypeFloat64)
	}
	if _u.mutation.BoxWidthCleared() {
		_spec.ClearField(validationitem.FieldBoxWidth, field.TypeFloat64)
	}
	if _u.mutation.BoxHeightCleared() {
		_spec.ClearField(validationitem.FieldBoxHeight, field.TypeFloat64)
	}
	if _u.mutation.BoxAngleCleared() {
		_spec.ClearField(validationitem.FieldBoxAngle, field.TypeInt)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ValidationItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{validationitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
