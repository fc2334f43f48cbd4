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
	"github.com/labelcheck/labelcheck/gen/ent/verificationjob"
)

// LabelUpdate is the builder for updating Label entities.
type LabelUpdate struct {
	config
	hooks    []Hook
	mutation *LabelMutation
}

// Where appends a list predicates to the LabelUpdate builder.
func (_u *LabelUpdate) Where(ps ...predicate.Label) *LabelUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *LabelUpdate) SetStatus(v string) *LabelUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LabelUpdate) SetNillableStatus(v *string) *LabelUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCorrectionDeadline sets the "correction_deadline" field.
func (_u *LabelUpdate) SetCorrectionDeadline(v time.Time) *LabelUpdate {
	_u.mutation.SetCorrectionDeadline(v)
	return _u
}

// SetNillableCorrectionDeadline sets the "correction_deadline" field if the given value is not nil.
func (_u *LabelUpdate) SetNillableCorrectionDeadline(v *time.Time) *LabelUpdate {
	if v != nil {
		_u.SetCorrectionDeadline(*v)
	}
	return _u
}

// ClearCorrectionDeadline clears the value of the "correction_deadline" field.
func (_u *LabelUpdate) ClearCorrectionDeadline() *LabelUpdate {
	_u.mutation.ClearCorrectionDeadline()
	return _u
}

// SetBeverageType sets the "beverage_type" field.
func (_u *LabelUpdate) SetBeverageType(v string) *LabelUpdate {
	_u.mutation.SetBeverageType(v)
	return _u
}

// SetNillableBeverageType sets the "beverage_type" field if the given value is not nil.
func (_u *LabelUpdate) SetNillableBeverageType(v *string) *LabelUpdate {
	if v != nil {
		_u.SetBeverageType(*v)
	}
	return _u
}

// SetContainerMl sets the "container_ml" field.
func (_u *LabelUpdate) SetContainerMl(v int) *LabelUpdate {
	_u.mutation.ResetContainerMl()
	_u.mutation.SetContainerMl(v)
	return _u
}

// SetNillableContainerMl sets the "container_ml" field if the given value is not nil.
func (_u *LabelUpdate) SetNillableContainerMl(v *int) *LabelUpdate {
	if v != nil {
		_u.SetContainerMl(*v)
	}
	return _u
}

// AddContainerMl adds value to the "container_ml" field.
func (_u *LabelUpdate) AddContainerMl(v int) *LabelUpdate {
	_u.mutation.AddContainerMl(v)
	return _u
}

// SetApplicationValues sets the "application_values" field.
func (_u *LabelUpdate) SetApplicationValues(v map[string]string) *LabelUpdate {
	_u.mutation.SetApplicationValues(v)
	return _u
}

// ClearApplicationValues clears the value of the "application_values" field.
func (_u *LabelUpdate) ClearApplicationValues() *LabelUpdate {
	_u.mutation.ClearApplicationValues()
	return _u
}

// SetStatusReasoning sets the "status_reasoning" field.
func (_u *LabelUpdate) SetStatusReasoning(v string) *LabelUpdate {
	_u.mutation.SetStatusReasoning(v)
	return _u
}

// SetNillableStatusReasoning sets the "status_reasoning" field if the given value is not nil.
func (_u *LabelUpdate) SetNillableStatusReasoning(v *string) *LabelUpdate {
	if v != nil {
		_u.SetStatusReasoning(*v)
	}
	return _u
}

// ClearStatusReasoning clears the value of the "status_reasoning" field.
func (_u *LabelUpdate) ClearStatusReasoning() *LabelUpdate {
	_u.mutation.ClearStatusReasoning()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *LabelUpdate) SetCreatedAt(v time.Time) *LabelUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *LabelUpdate) SetNillableCreatedAt(v *time.Time) *LabelUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LabelUpdate) SetUpdatedAt(v time.Time) *LabelUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddImageIDs adds the "images" edge to the LabelImage entity by IDs.
func (_u *LabelUpdate) AddImageIDs(ids ...uuid.UUID) *LabelUpdate {
	_u.mutation.AddImageIDs(ids...)
	return _u
}

// AddImages adds the "images" edges to the LabelImage entity.
func (_u *LabelUpdate) AddImages(v ...*LabelImage) *LabelUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddImageIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the VerificationJob entity by IDs.
func (_u *LabelUpdate) AddJobIDs(ids ...uuid.UUID) *LabelUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the VerificationJob entity.
func (_u *LabelUpdate) AddJobs(v ...*VerificationJob) *LabelUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the LabelMutation object of the builder.
func (_u *LabelUpdate) Mutation() *LabelMutation {
	return _u.mutation
}

// ClearImages clears all "images" edges to the LabelImage entity.
func (_u *LabelUpdate) ClearImages() *LabelUpdate {
	_u.mutation.ClearImages()
	return _u
}

// RemoveImageIDs removes the "images" edge to LabelImage entities by IDs.
func (_u *LabelUpdate) RemoveImageIDs(ids ...uuid.UUID) *LabelUpdate {
	_u.mutation.RemoveImageIDs(ids...)
	return _u
}

// RemoveImages removes "images" edges to LabelImage entities.
func (_u *LabelUpdate) RemoveImages(v ...*LabelImage) *LabelUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveImageIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the VerificationJob entity.
func (_u *LabelUpdate) ClearJobs() *LabelUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to VerificationJob entities by IDs.
func (_u *LabelUpdate) RemoveJobIDs(ids ...uuid.UUID) *LabelUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to VerificationJob entities.
func (_u *LabelUpdate) RemoveJobs(v ...*VerificationJob) *LabelUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LabelUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LabelUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LabelUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LabelUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LabelUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := label.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LabelUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := label.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Label.status": %w`, err)}
		}
	}
	return nil
}

func (_u *LabelUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(label.Table, label.Columns, sqlgraph.NewFieldSpec(label.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(label.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectionDeadline(); ok {
		_spec.SetField(label.FieldCorrectionDeadline, field.TypeTime, value)
	}
	if _u.mutation.CorrectionDeadlineCleared() {
		_spec.ClearField(label.FieldCorrectionDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.BeverageType(); ok {
		_spec.SetField(label.FieldBeverageType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContainerMl(); ok {
		_spec.SetField(label.FieldContainerMl, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContainerMl(); ok {
		_spec.AddField(label.FieldContainerMl, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ApplicationValues(); ok {
		_spec.SetField(label.FieldApplicationValues, field.TypeJSON, value)
	}
	if _u.mutation.ApplicationValuesCleared() {
		_spec.ClearField(label.FieldApplicationValues, field.TypeJSON)
	}
	if value, ok := _u.mutation.StatusReasoning(); ok {
		_spec.SetField(label.FieldStatusReasoning, field.TypeString, value)
	}
	if _u.mutation.StatusReasoningCleared() {
		_spec.ClearField(label.FieldStatusReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(label.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(label.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ImagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedImagesIDs(); len(nodes) > 0 && !_u.mutation.ImagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{label.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LabelUpdateOne is the builder for updating a single Label entity.
type LabelUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LabelMutation
}

// SetStatus sets the "status" field.
func (_u *LabelUpdateOne) SetStatus(v string) *LabelUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LabelUpdateOne) SetNillableStatus(v *string) *LabelUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCorrectionDeadline sets the "correction_deadline" field.
func (_u *LabelUpdateOne) SetCorrectionDeadline(v time.Time) *LabelUpdateOne {
	_u.mutation.SetCorrectionDeadline(v)
	return _u
}

// SetNillableCorrectionDeadline sets the "correction_deadline" field if the given value is not nil.
func (_u *LabelUpdateOne) SetNillableCorrectionDeadline(v *time.Time) *LabelUpdateOne {
	if v != nil {
		_u.SetCorrectionDeadline(*v)
	}
	return _u
}

// ClearCorrectionDeadline clears the value of the "correction_deadline" field.
func (_u *LabelUpdateOne) ClearCorrectionDeadline() *LabelUpdateOne {
	_u.mutation.ClearCorrectionDeadline()
	return _u
}

// SetBeverageType sets the "beverage_type" field.
func (_u *LabelUpdateOne) SetBeverageType(v string) *LabelUpdateOne {
	_u.mutation.SetBeverageType(v)
	return _u
}

// SetNillableBeverageType sets the "beverage_type" field if the given value is not nil.
func (_u *LabelUpdateOne) SetNillableBeverageType(v *string) *LabelUpdateOne {
	if v != nil {
		_u.SetBeverageType(*v)
	}
	return _u
}

// SetContainerMl sets the "container_ml" field.
func (_u *LabelUpdateOne) SetContainerMl(v int) *LabelUpdateOne {
	_u.mutation.ResetContainerMl()
	_u.mutation.SetContainerMl(v)
	return _u
}

// SetNillableContainerMl sets the "container_ml" field if the given value is not nil.
func (_u *LabelUpdateOne) SetNillableContainerMl(v *int) *LabelUpdateOne {
	if v != nil {
		_u.SetContainerMl(*v)
	}
	return _u
}

// AddContainerMl adds value to the "container_ml" field.
func (_u *LabelUpdateOne) AddContainerMl(v int) *LabelUpdateOne {
	_u.mutation.AddContainerMl(v)
	return _u
}

// SetApplicationValues sets the "application_values" field.
func (_u *LabelUpdateOne) SetApplicationValues(v map[string]string) *LabelUpdateOne {
	_u.mutation.SetApplicationValues(v)
	return _u
}

// ClearApplicationValues clears the value of the "application_values" field.
func (_u *LabelUpdateOne) ClearApplicationValues() *LabelUpdateOne {
	_u.mutation.ClearApplicationValues()
	return _u
}

// SetStatusReasoning sets the "status_reasoning" field.
func (_u *LabelUpdateOne) SetStatusReasoning(v string) *LabelUpdateOne {
	_u.mutation.SetStatusReasoning(v)
	return _u
}

// SetNillableStatusReasoning sets the "status_reasoning" field if the given value is not nil.
func (_u *LabelUpdateOne) SetNillableStatusReasoning(v *string) *LabelUpdateOne {
	if v != nil {
		_u.SetStatusReasoning(*v)
	}
	return _u
}

// ClearStatusReasoning clears the value of the "status_reasoning" field.
func (_u *LabelUpdateOne) ClearStatusReasoning() *LabelUpdateOne {
	_u.mutation.ClearStatusReasoning()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *LabelUpdateOne) SetCreatedAt(v time.Time) *LabelUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *LabelUpdateOne) SetNillableCreatedAt(v *time.Time) *LabelUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LabelUpdateOne) SetUpdatedAt(v time.Time) *LabelUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddImageIDs adds the "images" edge to the LabelImage entity by IDs.
func (_u *LabelUpdateOne) AddImageIDs(ids ...uuid.UUID) *LabelUpdateOne {
	_u.mutation.AddImageIDs(ids...)
	return _u
}

// AddImages adds the "images" edges to the LabelImage entity.
func (_u *LabelUpdateOne) AddImages(v ...*LabelImage) *LabelUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddImageIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the VerificationJob entity by IDs.
func (_u *LabelUpdateOne) AddJobIDs(ids ...uuid.UUID) *LabelUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the VerificationJob entity.
func (_u *LabelUpdateOne) AddJobs(v ...*VerificationJob) *LabelUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the LabelMutation object of the builder.
func (_u *LabelUpdateOne) Mutation() *LabelMutation {
	return _u.mutation
}

// ClearImages clears all "images" edges to the LabelImage entity.
func (_u *LabelUpdateOne) ClearImages() *LabelUpdateOne {
	_u.mutation.ClearImages()
	return _u
}

// RemoveImageIDs removes the "images" edge to LabelImage entities by IDs.
func (_u *LabelUpdateOne) RemoveImageIDs(ids ...uuid.UUID) *LabelUpdateOne {
	_u.mutation.RemoveImageIDs(ids...)
	return _u
}

// RemoveImages removes "images" edges to LabelImage entities.
func (_u *LabelUpdateOne) RemoveImages(v ...*LabelImage) *LabelUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveImageIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the VerificationJob entity.
func (_u *LabelUpdateOne) ClearJobs() *LabelUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to VerificationJob entities by IDs.
func (_u *LabelUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *LabelUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to VerificationJob entities.
func (_u *LabelUpdateOne) RemoveJobs(v ...*VerificationJob) *LabelUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the LabelUpdate builder.
func (_u *LabelUpdateOne) Where(ps ...predicate.Label) *LabelUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LabelUpdateOne) Select(field string, fields ...string) *LabelUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Label entity.
func (_u *LabelUpdateOne) Save(ctx context.Context) (*Label, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LabelUpdateOne) SaveX(ctx context.Context) *Label {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LabelUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LabelUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LabelUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := label.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LabelUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := label.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Label.status": %w`, err)}
		}
	}
	return nil
}

func (_u *LabelUpdateOne) sqlSave(ctx context.Context) (_node *Label, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(label.Table, label.Columns, sqlgraph.NewFieldSpec(label.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Label.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, label.FieldID)
		for _, f := range fields {
			if !label.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != label.FieldID {
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
		_spec.SetField(label.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectionDeadline(); ok {
		_spec.SetField(label.FieldCorrectionDeadline, field.TypeTime, value)
	}
	if _u.mutation.CorrectionDeadlineCleared() {
		_spec.ClearField(label.FieldCorrectionDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.BeverageType(); ok {
		_spec.SetField(label.FieldBeverageType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContainerMl(); ok {
		_spec.SetField(label.FieldContainerMl, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContainerMl(); ok {
		_spec.AddField(label.FieldContainerMl, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ApplicationValues(); ok {
		_spec.SetField(label.FieldApplicationValues, field.TypeJSON, value)
	}
	if _u.mutation.ApplicationValuesCleared() {
		_spec.ClearField(label.FieldApplicationValues, field.TypeJSON)
	}
	if value, ok := _u.mutation.StatusReasoning(); ok {
		_spec.SetField(label.FieldStatusReasoning, field.TypeString, value)
	}
	if _u.mutation.StatusReasoningCleared() {
		_spec.ClearField(label.FieldStatusReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(label.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(label.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ImagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedImagesIDs(); len(nodes) > 0 && !_u.mutation.ImagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Label{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{label.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
