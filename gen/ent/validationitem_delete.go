// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/labelcheck/labelcheck/gen/ent/predicate"
	"github.com/labelcheck/labelcheck/gen/ent/validationitem"
)

// ValidationItemDelete is the builder for deleting a ValidationItem entity.
type ValidationItemDelete struct {
	config
	hooks    []Hook
	mutation *ValidationItemMutation
}

// Where appends a list predicates to the ValidationItemDelete builder.
func (_d *ValidationItemDelete) Where(ps ...predicate.ValidationItem) *ValidationItemDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ValidationItemDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ValidationItemDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ValidationItemDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(validationitem.Table, sqlgraph.NewFieldSpec(validationitem.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ValidationItemDeleteOne is the builder for deleting a single ValidationItem entity.
type ValidationItemDeleteOne struct {
	_d *ValidationItemDelete
}

// Where appends a list predicates to the ValidationItemDelete builder.
func (_d *ValidationItemDeleteOne) Where(ps ...predicate.ValidationItem) *ValidationItemDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ValidationItemDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{validationitem.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ValidationItemDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
