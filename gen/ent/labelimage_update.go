// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/labelcheck/labelcheck/gen/ent/label"
	"github.com/labelcheck/labelcheck/gen/ent/labelimage"
	"github.com/labelcheck/labelcheck/gen/ent/predicate"
)

// LabelImageUpdate is the builder for updating LabelImage entities.
type LabelImageUpdate struct {
	config
	hooks    []Hook
	mutation *LabelImageMutation
}

// Where appends a list predicates to the LabelImageUpdate builder.
func (_u *LabelImageUpdate) Where(ps ...predicate.LabelImage) *LabelImageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLabelID sets the "label_id" field.
func (_u *LabelImageUpdate) SetLabelID(v uuid.UUID) *LabelImageUpdate {
	_u.mutation.SetLabelID(v)
	return _u
}

// SetNillableLabelID sets the "label_id" field if the given value is not nil.
func (_u *LabelImageUpdate) SetNillableLabelID(v *uuid.UUID) *LabelImageUpdate {
	if v != nil {
		_u.SetLabelID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *LabelImageUpdate) SetPosition(v int) *LabelImageUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *LabelImageUpdate) SetNillablePosition(v *int) *LabelImageUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *LabelImageUpdate) AddPosition(v int) *LabelImageUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *LabelImageUpdate) SetSourcePath(v string) *LabelImageUpdate {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *LabelImageUpdate) SetNillableSourcePath(v *string) *LabelImageUpdate {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *LabelImageUpdate) SetRole(v string) *LabelImageUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *LabelImageUpdate) SetNillableRole(v *string) *LabelImageUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *LabelImageUpdate) ClearRole() *LabelImageUpdate {
	_u.mutation.ClearRole()
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *LabelImageUpdate) SetContentHash(v []byte) *LabelImageUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// ClearContentHash clears the value of the "content_hash" field.
func (_u *LabelImageUpdate) ClearContentHash() *LabelImageUpdate {
	_u.mutation.ClearContentHash()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *LabelImageUpdate) SetCreatedAt(v time.Time) *LabelImageUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *LabelImageUpdate) SetNillableCreatedAt(v *time.Time) *LabelImageUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetLabel sets the "label" edge to the Label entity.
func (_u *LabelImageUpdate) SetLabel(v *Label) *LabelImageUpdate {
	return _u.SetLabelID(v.ID)
}

// Mutation returns the LabelImageMutation object of the builder.
func (_u *LabelImageUpdate) Mutation() *LabelImageMutation {
	return _u.mutation
}

// ClearLabel clears the "label" edge to the Label entity.
func (_u *LabelImageUpdate) ClearLabel() *LabelImageUpdate {
	_u.mutation.ClearLabel()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LabelImageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LabelImageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LabelImageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LabelImageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LabelImageUpdate) check() error {
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := labelimage.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "LabelImage.source_path": %w`, err)}
		}
	}
	if _u.mutation.LabelCleared() && len(_u.mutation.LabelIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LabelImage.label"`)
	}
	return nil
}

func (_u *LabelImageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(labelimage.Table, labelimage.Columns, sqlgraph.NewFieldSpec(labelimage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(labelimage.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(labelimage.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(labelimage.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(labelimage.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(labelimage.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(labelimage.FieldContentHash, field.TypeBytes, value)
	}
	if _u.mutation.ContentHashCleared() {
		_spec.ClearField(labelimage.FieldContentHash, field.TypeBytes)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(labelimage.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.LabelCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LabelIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{labelimage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LabelImageUpdateOne is the builder for updating a single LabelImage entity.
type LabelImageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LabelImageMutation
}

// SetLabelID sets the "label_id" field.
func (_u *LabelImageUpdateOne) SetLabelID(v uuid.UUID) *LabelImageUpdateOne {
	_u.mutation.SetLabelID(v)
	return _u
}

// SetNillableLabelID sets the "label_id" field if the given value is not nil.
func (_u *LabelImageUpdateOne) SetNillableLabelID(v *uuid.UUID) *LabelImageUpdateOne {
	if v != nil {
		_u.SetLabelID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *LabelImageUpdateOne) SetPosition(v int) *LabelImageUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *LabelImageUpdateOne) SetNillablePosition(v *int) *LabelImageUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *LabelImageUpdateOne) AddPosition(v int) *LabelImageUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *LabelImageUpdateOne) SetSourcePath(v string) *LabelImageUpdateOne {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *LabelImageUpdateOne) SetNillableSourcePath(v *string) *LabelImageUpdateOne {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *LabelImageUpdateOne) SetRole(v string) *LabelImageUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *LabelImageUpdateOne) SetNillableRole(v *string) *LabelImageUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *LabelImageUpdateOne) ClearRole() *LabelImageUpdateOne {
	_u.mutation.ClearRole()
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *LabelImageUpdateOne) SetContentHash(v []byte) *LabelImageUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// ClearContentHash clears the value of the "content_hash" field.
func (_u *LabelImageUpdateOne) ClearContentHash() *LabelImageUpdateOne {
	_u.mutation.ClearContentHash()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *LabelImageUpdateOne) SetCreatedAt(v time.Time) *LabelImageUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *LabelImageUpdateOne) SetNillableCreatedAt(v *time.Time) *LabelImageUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetLabel sets the "label" edge to the Label entity.
func (_u *LabelImageUpdateOne) SetLabel(v *Label) *LabelImageUpdateOne {
	return _u.SetLabelID(v.ID)
}

// Mutation returns the LabelImageMutation object of the builder.
func (_u *LabelImageUpdateOne) Mutation() *LabelImageMutation {
	return _u.mutation
}

// ClearLabel clears the "label" edge to the Label entity.
func (_u *LabelImageUpdateOne) ClearLabel() *LabelImageUpdateOne {
	_u.mutation.ClearLabel()
	return _u
}

// Where appends a list predicates to the LabelImageUpdate builder.
func (_u *LabelImageUpdateOne) Where(ps ...predicate.LabelImage) *LabelImageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LabelImageUpdateOne) Select(field string, fields ...string) *LabelImageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LabelImage entity.
func (_u *LabelImageUpdateOne) Save(ctx context.Context) (*LabelImage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LabelImageUpdateOne) SaveX(ctx context.Context) *LabelImage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LabelImageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LabelImageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LabelImageUpdateOne) check() error {
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := labelimage.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "LabelImage.source_path": %w`, err)}
		}
	}
	if _u.mutation.LabelCleared() && len(_u.mutation.LabelIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LabelImage.label"`)
	}
	return nil
}

func (_u *LabelImageUpdateOne) sqlSave(ctx context.Context) (_node *LabelImage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(labelimage.Table, labelimage.Columns, sqlgraph.NewFieldSpec(labelimage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LabelImage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, labelimage.FieldID)
		for _, f := range fields {
			if !labelimage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != labelimage.FieldID {
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
		_spec.SetField(labelimage.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(labelimage.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(labelimage.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(labelimage.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(labelimage.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(labelimage.FieldContentHash, field.TypeBytes, value)
	}
	if _u.mutation.ContentHashCleared() {
		_spec.ClearField(labelimage.FieldContentHash, field.TypeBytes)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(labelimage.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.LabelCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LabelIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &LabelImage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{labelimage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
