// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/labelcheck/labelcheck/gen/ent/label"
	"github.com/labelcheck/labelcheck/gen/ent/validationitem"
	"github.com/labelcheck/labelcheck/gen/ent/verificationjob"
)

// VerificationJobCreate is the builder for creating a VerificationJob entity.
type VerificationJobCreate struct {
	config
	mutation *VerificationJobMutation
	hooks    []Hook
}

// SetLabelID sets the "label_id" field.
func (_c *VerificationJobCreate) SetLabelID(v uuid.UUID) *VerificationJobCreate {
	_c.mutation.SetLabelID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *VerificationJobCreate) SetStatus(v string) *VerificationJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableStatus(v *string) *VerificationJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPipelineVariant sets the "pipeline_variant" field.
func (_c *VerificationJobCreate) SetPipelineVariant(v string) *VerificationJobCreate {
	_c.mutation.SetPipelineVariant(v)
	return _c
}

// SetNillablePipelineVariant sets the "pipeline_variant" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillablePipelineVariant(v *string) *VerificationJobCreate {
	if v != nil {
		_c.SetPipelineVariant(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *VerificationJobCreate) SetStartedAt(v time.Time) *VerificationJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableStartedAt(v *time.Time) *VerificationJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *VerificationJobCreate) SetFinishedAt(v time.Time) *VerificationJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableFinishedAt(v *time.Time) *VerificationJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *VerificationJobCreate) SetErrorMessage(v string) *VerificationJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableErrorMessage(v *string) *VerificationJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetOcrText sets the "ocr_text" field.
func (_c *VerificationJobCreate) SetOcrText(v string) *VerificationJobCreate {
	_c.mutation.SetOcrText(v)
	return _c
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableOcrText(v *string) *VerificationJobCreate {
	if v != nil {
		_c.SetOcrText(*v)
	}
	return _c
}

// SetClassifiedJSON sets the "classified_json" field.
func (_c *VerificationJobCreate) SetClassifiedJSON(v json.RawMessage) *VerificationJobCreate {
	_c.mutation.SetClassifiedJSON(v)
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *VerificationJobCreate) SetModelName(v string) *VerificationJobCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableModelName(v *string) *VerificationJobCreate {
	if v != nil {
		_c.SetModelName(*v)
	}
	return _c
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_c *VerificationJobCreate) SetPromptTokens(v int) *VerificationJobCreate {
	_c.mutation.SetPromptTokens(v)
	return _c
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillablePromptTokens(v *int) *VerificationJobCreate {
	if v != nil {
		_c.SetPromptTokens(*v)
	}
	return _c
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_c *VerificationJobCreate) SetCompletionTokens(v int) *VerificationJobCreate {
	_c.mutation.SetCompletionTokens(v)
	return _c
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableCompletionTokens(v *int) *VerificationJobCreate {
	if v != nil {
		_c.SetCompletionTokens(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VerificationJobCreate) SetID(v uuid.UUID) *VerificationJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableID(v *uuid.UUID) *VerificationJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetLabel sets the "label" edge to the Label entity.
func (_c *VerificationJobCreate) SetLabel(v *Label) *VerificationJobCreate {
	return _c.SetLabelID(v.ID)
}

// AddItemIDs adds the "items" edge to the ValidationItem entity by IDs.
func (_c *VerificationJobCreate) AddItemIDs(ids ...uuid.UUID) *VerificationJobCreate {
	_c.mutation.AddItemIDs(ids...)
	return _c
}

// AddItems adds the "items" edges to the ValidationItem entity.
func (_c *VerificationJobCreate) AddItems(v ...*ValidationItem) *VerificationJobCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddItemIDs(ids...)
}

// Mutation returns the VerificationJobMutation object of the builder.
func (_c *VerificationJobCreate) Mutation() *VerificationJobMutation {
	return _c.mutation
}

// Save creates the VerificationJob in the database.
func (_c *VerificationJobCreate) Save(ctx context.Context) (*VerificationJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VerificationJobCreate) SaveX(ctx context.Context) *VerificationJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VerificationJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := verificationjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := verificationjob.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.PromptTokens(); !ok {
		v := verificationjob.DefaultPromptTokens
		_c.mutation.SetPromptTokens(v)
	}
	if _, ok := _c.mutation.CompletionTokens(); !ok {
		v := verificationjob.DefaultCompletionTokens
		_c.mutation.SetCompletionTokens(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := verificationjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VerificationJobCreate) check() error {
	if _, ok := _c.mutation.LabelID(); !ok {
		return &ValidationError{Name: "label_id", err: errors.New(`ent: missing required field "VerificationJob.label_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "VerificationJob.status"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "VerificationJob.started_at"`)}
	}
	if _, ok := _c.mutation.PromptTokens(); !ok {
		return &ValidationError{Name: "prompt_tokens", err: errors.New(`ent: missing required field "VerificationJob.prompt_tokens"`)}
	}
	if _, ok := _c.mutation.CompletionTokens(); !ok {
		return &ValidationError{Name: "completion_tokens", err: errors.New(`ent: missing required field "VerificationJob.completion_tokens"`)}
	}
	if len(_c.mutation.LabelIDs()) == 0 {
		return &ValidationError{Name: "label", err: errors.New(`ent: missing required edge "VerificationJob.label"`)}
	}
	return nil
}

func (_c *VerificationJobCreate) sqlSave(ctx context.Context) (*VerificationJob, error) {
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

func (_c *VerificationJobCreate) createSpec() (*VerificationJob, *sqlgraph.CreateSpec) {
	var (
		_node = &VerificationJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(verificationjob.Table, sqlgraph.NewFieldSpec(verificationjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(verificationjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.PipelineVariant(); ok {
		_spec.SetField(verificationjob.FieldPipelineVariant, field.TypeString, value)
		_node.PipelineVariant = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(verificationjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(verificationjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(verificationjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.OcrText(); ok {
		_spec.SetField(verificationjob.FieldOcrText, field.TypeString, value)
		_node.OcrText = &value
	}
	if value, ok := _c.mutation.ClassifiedJSON(); ok {
		_spec.SetField(verificationjob.FieldClassifiedJSON, field.TypeJSON, value)
		_node.ClassifiedJSON = value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(verificationjob.FieldModelName, field.TypeString, value)
		_node.ModelName = &value
	}
	if value, ok := _c.mutation.PromptTokens(); ok {
		_spec.SetField(verificationjob.FieldPromptTokens, field.TypeInt, value)
		_node.PromptTokens = value
	}
	if value, ok := _c.mutation.CompletionTokens(); ok {
		_spec.SetField(verificationjob.FieldCompletionTokens, field.TypeInt, value)
		_node.CompletionTokens = value
	}
	if nodes := _c.mutation.LabelIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   verificationjob.LabelTable,
			Columns: []string{verificationjob.LabelColumn},
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
	if nodes := _c.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   verificationjob.ItemsTable,
			Columns: []string{verificationjob.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// VerificationJobCreateBulk is the builder for creating many VerificationJob entities in bulk.
type VerificationJobCreateBulk struct {
	config
	err      error
	builders []*VerificationJobCreate
}

// Save creates the VerificationJob entities in the database.
func (_c *VerificationJobCreateBulk) Save(ctx context.Context) ([]*VerificationJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VerificationJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VerificationJobMutation)
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
func (_c *VerificationJobCreateBulk) SaveX(ctx context.Context) []*VerificationJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
