// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/labelcheck/labelcheck/gen/ent/label"
	"github.com/labelcheck/labelcheck/gen/ent/predicate"
	"github.com/labelcheck/labelcheck/gen/ent/validationitem"
	"github.com/labelcheck/labelcheck/gen/ent/verificationjob"
)

// VerificationJobUpdate is the builder for updating VerificationJob entities.
type VerificationJobUpdate struct {
	config
	hooks    []Hook
	mutation *VerificationJobMutation
}

// Where appends a list predicates to the VerificationJobUpdate builder.
func (_u *VerificationJobUpdate) Where(ps ...predicate.VerificationJob) *VerificationJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLabelID sets the "label_id" field.
func (_u *VerificationJobUpdate) SetLabelID(v uuid.UUID) *VerificationJobUpdate {
	_u.mutation.SetLabelID(v)
	return _u
}

// SetNillableLabelID sets the "label_id" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableLabelID(v *uuid.UUID) *VerificationJobUpdate {
	if v != nil {
		_u.SetLabelID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *VerificationJobUpdate) SetStatus(v string) *VerificationJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableStatus(v *string) *VerificationJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPipelineVariant sets the "pipeline_variant" field.
func (_u *VerificationJobUpdate) SetPipelineVariant(v string) *VerificationJobUpdate {
	_u.mutation.SetPipelineVariant(v)
	return _u
}

// SetNillablePipelineVariant sets the "pipeline_variant" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillablePipelineVariant(v *string) *VerificationJobUpdate {
	if v != nil {
		_u.SetPipelineVariant(*v)
	}
	return _u
}

// ClearPipelineVariant clears the value of the "pipeline_variant" field.
func (_u *VerificationJobUpdate) ClearPipelineVariant() *VerificationJobUpdate {
	_u.mutation.ClearPipelineVariant()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *VerificationJobUpdate) SetStartedAt(v time.Time) *VerificationJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableStartedAt(v *time.Time) *VerificationJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *VerificationJobUpdate) SetFinishedAt(v time.Time) *VerificationJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableFinishedAt(v *time.Time) *VerificationJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *VerificationJobUpdate) ClearFinishedAt() *VerificationJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *VerificationJobUpdate) SetErrorMessage(v string) *VerificationJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableErrorMessage(v *string) *VerificationJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *VerificationJobUpdate) ClearErrorMessage() *VerificationJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *VerificationJobUpdate) SetOcrText(v string) *VerificationJobUpdate {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableOcrText(v *string) *VerificationJobUpdate {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *VerificationJobUpdate) ClearOcrText() *VerificationJobUpdate {
	_u.mutation.ClearOcrText()
	return _u
}

// SetClassifiedJSON sets the "classified_json" field.
func (_u *VerificationJobUpdate) SetClassifiedJSON(v json.RawMessage) *VerificationJobUpdate {
	_u.mutation.SetClassifiedJSON(v)
	return _u
}

// AppendClassifiedJSON appends value to the "classified_json" field.
func (_u *VerificationJobUpdate) AppendClassifiedJSON(v json.RawMessage) *VerificationJobUpdate {
	_u.mutation.AppendClassifiedJSON(v)
	return _u
}

// ClearClassifiedJSON clears the value of the "classified_json" field.
func (_u *VerificationJobUpdate) ClearClassifiedJSON() *VerificationJobUpdate {
	_u.mutation.ClearClassifiedJSON()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *VerificationJobUpdate) SetModelName(v string) *VerificationJobUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableModelName(v *string) *VerificationJobUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *VerificationJobUpdate) ClearModelName() *VerificationJobUpdate {
	_u.mutation.ClearModelName()
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *VerificationJobUpdate) SetPromptTokens(v int) *VerificationJobUpdate {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillablePromptTokens(v *int) *VerificationJobUpdate {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *VerificationJobUpdate) AddPromptTokens(v int) *VerificationJobUpdate {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *VerificationJobUpdate) SetCompletionTokens(v int) *VerificationJobUpdate {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableCompletionTokens(v *int) *VerificationJobUpdate {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *VerificationJobUpdate) AddCompletionTokens(v int) *VerificationJobUpdate {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// SetLabel sets the "label" edge to the Label entity.
func (_u *VerificationJobUpdate) SetLabel(v *Label) *VerificationJobUpdate {
	return _u.SetLabelID(v.ID)
}

// AddItemIDs adds the "items" edge to the ValidationItem entity by IDs.
func (_u *VerificationJobUpdate) AddItemIDs(ids ...uuid.UUID) *VerificationJobUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the ValidationItem entity.
func (_u *VerificationJobUpdate) AddItems(v ...*ValidationItem) *VerificationJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the VerificationJobMutation object of the builder.
func (_u *VerificationJobUpdate) Mutation() *VerificationJobMutation {
	return _u.mutation
}

// ClearLabel clears the "label" edge to the Label entity.
func (_u *VerificationJobUpdate) ClearLabel() *VerificationJobUpdate {
	_u.mutation.ClearLabel()
	return _u
}

// ClearItems clears all "items" edges to the ValidationItem entity.
func (_u *VerificationJobUpdate) ClearItems() *VerificationJobUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to ValidationItem entities by IDs.
func (_u *VerificationJobUpdate) RemoveItemIDs(ids ...uuid.UUID) *VerificationJobUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to ValidationItem entities.
func (_u *VerificationJobUpdate) RemoveItems(v ...*ValidationItem) *VerificationJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VerificationJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VerificationJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerificationJobUpdate) check() error {
	if _u.mutation.LabelCleared() && len(_u.mutation.LabelIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VerificationJob.label"`)
	}
	return nil
}

func (_u *VerificationJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verificationjob.Table, verificationjob.Columns, sqlgraph.NewFieldSpec(verificationjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(verificationjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.PipelineVariant(); ok {
		_spec.SetField(verificationjob.FieldPipelineVariant, field.TypeString, value)
	}
	if _u.mutation.PipelineVariantCleared() {
		_spec.ClearField(verificationjob.FieldPipelineVariant, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(verificationjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(verificationjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(verificationjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(verificationjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(verificationjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(verificationjob.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(verificationjob.FieldOcrText, field.TypeString)
	}
	if value, ok := _u.mutation.ClassifiedJSON(); ok {
		_spec.SetField(verificationjob.FieldClassifiedJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedClassifiedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verificationjob.FieldClassifiedJSON, value)
		})
	}
	if _u.mutation.ClassifiedJSONCleared() {
		_spec.ClearField(verificationjob.FieldClassifiedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(verificationjob.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(verificationjob.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(verificationjob.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(verificationjob.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(verificationjob.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(verificationjob.FieldCompletionTokens, field.TypeInt, value)
	}
	if _u.mutation.LabelCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LabelIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verificationjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VerificationJobUpdateOne is the builder for updating a single VerificationJob entity.
type VerificationJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VerificationJobMutation
}

// SetLabelID sets the "label_id" field.
func (_u *VerificationJobUpdateOne) SetLabelID(v uuid.UUID) *VerificationJobUpdateOne {
	_u.mutation.SetLabelID(v)
	return _u
}

// SetNillableLabelID sets the "label_id" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableLabelID(v *uuid.UUID) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetLabelID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *VerificationJobUpdateOne) SetStatus(v string) *VerificationJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableStatus(v *string) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPipelineVariant sets the "pipeline_variant" field.
func (_u *VerificationJobUpdateOne) SetPipelineVariant(v string) *VerificationJobUpdateOne {
	_u.mutation.SetPipelineVariant(v)
	return _u
}

// SetNillablePipelineVariant sets the "pipeline_variant" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillablePipelineVariant(v *string) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetPipelineVariant(*v)
	}
	return _u
}

// ClearPipelineVariant clears the value of the "pipeline_variant" field.
func (_u *VerificationJobUpdateOne) ClearPipelineVariant() *VerificationJobUpdateOne {
	_u.mutation.ClearPipelineVariant()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *VerificationJobUpdateOne) SetStartedAt(v time.Time) *VerificationJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableStartedAt(v *time.Time) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *VerificationJobUpdateOne) SetFinishedAt(v time.Time) *VerificationJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableFinishedAt(v *time.Time) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *VerificationJobUpdateOne) ClearFinishedAt() *VerificationJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *VerificationJobUpdateOne) SetErrorMessage(v string) *VerificationJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableErrorMessage(v *string) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *VerificationJobUpdateOne) ClearErrorMessage() *VerificationJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *VerificationJobUpdateOne) SetOcrText(v string) *VerificationJobUpdateOne {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableOcrText(v *string) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *VerificationJobUpdateOne) ClearOcrText() *VerificationJobUpdateOne {
	_u.mutation.ClearOcrText()
	return _u
}

// SetClassifiedJSON sets the "classified_json" field.
func (_u *VerificationJobUpdateOne) SetClassifiedJSON(v json.RawMessage) *VerificationJobUpdateOne {
	_u.mutation.SetClassifiedJSON(v)
	return _u
}

// AppendClassifiedJSON appends value to the "classified_json" field.
func (_u *VerificationJobUpdateOne) AppendClassifiedJSON(v json.RawMessage) *VerificationJobUpdateOne {
	_u.mutation.AppendClassifiedJSON(v)
	return _u
}

// ClearClassifiedJSON clears the value of the "classified_json" field.
func (_u *VerificationJobUpdateOne) ClearClassifiedJSON() *VerificationJobUpdateOne {
	_u.mutation.ClearClassifiedJSON()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *VerificationJobUpdateOne) SetModelName(v string) *VerificationJobUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableModelName(v *string) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *VerificationJobUpdateOne) ClearModelName() *VerificationJobUpdateOne {
	_u.mutation.ClearModelName()
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *VerificationJobUpdateOne) SetPromptTokens(v int) *VerificationJobUpdateOne {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillablePromptTokens(v *int) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *VerificationJobUpdateOne) AddPromptTokens(v int) *VerificationJobUpdateOne {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *VerificationJobUpdateOne) SetCompletionTokens(v int) *VerificationJobUpdateOne {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableCompletionTokens(v *int) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *VerificationJobUpdateOne) AddCompletionTokens(v int) *VerificationJobUpdateOne {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// SetLabel sets the "label" edge to the Label entity.
func (_u *VerificationJobUpdateOne) SetLabel(v *Label) *VerificationJobUpdateOne {
	return _u.SetLabelID(v.ID)
}

// AddItemIDs adds the "items" edge to the ValidationItem entity by IDs.
func (_u *VerificationJobUpdateOne) AddItemIDs(ids ...uuid.UUID) *VerificationJobUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the ValidationItem entity.
func (_u *VerificationJobUpdateOne) AddItems(v ...*ValidationItem) *VerificationJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the VerificationJobMutation object of the builder.
func (_u *VerificationJobUpdateOne) Mutation() *VerificationJobMutation {
	return _u.mutation
}

// ClearLabel clears the "label" edge to the Label entity.
func (_u *VerificationJobUpdateOne) ClearLabel() *VerificationJobUpdateOne {
	_u.mutation.ClearLabel()
	return _u
}

// ClearItems clears all "items" edges to the ValidationItem entity.
func (_u *VerificationJobUpdateOne) ClearItems() *VerificationJobUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to ValidationItem entities by IDs.
func (_u *VerificationJobUpdateOne) RemoveItemIDs(ids ...uuid.UUID) *VerificationJobUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to ValidationItem entities.
func (_u *VerificationJobUpdateOne) RemoveItems(v ...*ValidationItem) *VerificationJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Where appends a list predicates to the VerificationJobUpdate builder.
func (_u *VerificationJobUpdateOne) Where(ps ...predicate.VerificationJob) *VerificationJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VerificationJobUpdateOne) Select(field string, fields ...string) *VerificationJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VerificationJob entity.
func (_u *VerificationJobUpdateOne) Save(ctx context.Context) (*VerificationJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationJobUpdateOne) SaveX(ctx context.Context) *VerificationJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VerificationJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerificationJobUpdateOne) check() error {
	if _u.mutation.LabelCleared() && len(_u.mutation.LabelIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VerificationJob.label"`)
	}
	return nil
}

func (_u *VerificationJobUpdateOne) sqlSave(ctx context.Context) (_node *VerificationJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verificationjob.Table, verificationjob.Columns, sqlgraph.NewFieldSpec(verificationjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VerificationJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, verificationjob.FieldID)
		for _, f := range fields {
			if !verificationjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != verificationjob.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(verificationjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.PipelineVariant(); ok {
		_spec.SetField(verificationjob.FieldPipelineVariant, field.TypeString, value)
	}
	if _u.mutation.PipelineVariantCleared() {
		_spec.ClearField(verificationjob.FieldPipelineVariant, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(verificationjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(verificationjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(verificationjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(verificationjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(verificationjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(verificationjob.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(verificationjob.FieldOcrText, field.TypeString)
	}
	if value, ok := _u.mutation.ClassifiedJSON(); ok {
		_spec.SetField(verificationjob.FieldClassifiedJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedClassifiedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verificationjob.FieldClassifiedJSON, value)
		})
	}
	if _u.mutation.ClassifiedJSONCleared() {
		_spec.ClearField(verificationjob.FieldClassifiedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(verificationjob.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(verificationjob.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(verificationjob.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(verificationjob.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(verificationjob.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(verificationjob.FieldCompletionTokens, field.TypeInt, value)
	}
	if _u.mutation.LabelCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LabelIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &VerificationJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verificationjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
