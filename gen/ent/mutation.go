// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/labelcheck/labelcheck/gen/ent/label"
	"github.com/labelcheck/labelcheck/gen/ent/labelimage"
	"github.com/labelcheck/labelcheck/gen/ent/predicate"
	"github.com/labelcheck/labelcheck/gen/ent/validationitem"
	"github.com/labelcheck/labelcheck/gen/ent/verificationjob"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeLabel           = "Label"
	TypeLabelImage      = "LabelImage"
	TypeValidationItem  = "ValidationItem"
	TypeVerificationJob = "VerificationJob"
)

// LabelMutation represents an operation that mutates the Label nodes in the graph.
type LabelMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	status              *string
	correction_deadline *time.Time
	beverage_type       *string
	container_ml        *int
	addcontainer_ml     *int
	application_values  *map[string]string
	status_reasoning    *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	images              map[uuid.UUID]struct{}
	removedimages       map[uuid.UUID]struct{}
	clearedimages       bool
	jobs                map[uuid.UUID]struct{}
	removedjobs         map[uuid.UUID]struct{}
	clearedjobs         bool
	done                bool
	oldValue            func(context.Context) (*Label, error)
	predicates          []predicate.Label
}

var _ ent.Mutation = (*LabelMutation)(nil)

// labelOption allows management of the mutation configuration using functional options.
type labelOption func(*LabelMutation)

// newLabelMutation creates new mutation for the Label entity.
func newLabelMutation(c config, op Op, opts ...labelOption) *LabelMutation {
	m := &LabelMutation{
		config:        c,
		op:            op,
		typ:           TypeLabel,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLabelID sets the ID field of the mutation.
func withLabelID(id uuid.UUID) labelOption {
	return func(m *LabelMutation) {
		var (
			err   error
			once  sync.Once
			value *Label
		)
		m.oldValue = func(ctx context.Context) (*Label, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Label.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLabel sets the old Label of the mutation.
func withLabel(node *Label) labelOption {
	return func(m *LabelMutation) {
		m.oldValue = func(context.Context) (*Label, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LabelMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LabelMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Label entities.
func (m *LabelMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LabelMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LabelMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Label.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStatus sets the "status" field.
func (m *LabelMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *LabelMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Label entity.
// If the Label object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *LabelMutation) ResetStatus() {
	m.status = nil
}

// SetCorrectionDeadline sets the "correction_deadline" field.
func (m *LabelMutation) SetCorrectionDeadline(t time.Time) {
	m.correction_deadline = &t
}

// CorrectionDeadline returns the value of the "correction_deadline" field in the mutation.
func (m *LabelMutation) CorrectionDeadline() (r time.Time, exists bool) {
	v := m.correction_deadline
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectionDeadline returns the old "correction_deadline" field's value of the Label entity.
// If the Label object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelMutation) OldCorrectionDeadline(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectionDeadline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectionDeadline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectionDeadline: %w", err)
	}
	return oldValue.CorrectionDeadline, nil
}

// ClearCorrectionDeadline clears the value of the "correction_deadline" field.
func (m *LabelMutation) ClearCorrectionDeadline() {
	m.correction_deadline = nil
	m.clearedFields[label.FieldCorrectionDeadline] = struct{}{}
}

// CorrectionDeadlineCleared returns if the "correction_deadline" field was cleared in this mutation.
func (m *LabelMutation) CorrectionDeadlineCleared() bool {
	_, ok := m.clearedFields[label.FieldCorrectionDeadline]
	return ok
}

// ResetCorrectionDeadline resets all changes to the "correction_deadline" field.
func (m *LabelMutation) ResetCorrectionDeadline() {
	m.correction_deadline = nil
	delete(m.clearedFields, label.FieldCorrectionDeadline)
}

// SetBeverageType sets the "beverage_type" field.
func (m *LabelMutation) SetBeverageType(s string) {
	m.beverage_type = &s
}

// BeverageType returns the value of the "beverage_type" field in the mutation.
func (m *LabelMutation) BeverageType() (r string, exists bool) {
	v := m.beverage_type
	if v == nil {
		return
	}
	return *v, true
}

// OldBeverageType returns the old "beverage_type" field's value of the Label entity.
// If the Label object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelMutation) OldBeverageType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBeverageType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBeverageType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBeverageType: %w", err)
	}
	return oldValue.BeverageType, nil
}

// ResetBeverageType resets all changes to the "beverage_type" field.
func (m *LabelMutation) ResetBeverageType() {
	m.beverage_type = nil
}

// SetContainerMl sets the "container_ml" field.
func (m *LabelMutation) SetContainerMl(i int) {
	m.container_ml = &i
	m.addcontainer_ml = nil
}

// ContainerMl returns the value of the "container_ml" field in the mutation.
func (m *LabelMutation) ContainerMl() (r int, exists bool) {
	v := m.container_ml
	if v == nil {
		return
	}
	return *v, true
}

// OldContainerMl returns the old "container_ml" field's value of the Label entity.
// If the Label object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelMutation) OldContainerMl(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContainerMl is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContainerMl requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContainerMl: %w", err)
	}
	return oldValue.ContainerMl, nil
}

// AddContainerMl adds i to the "container_ml" field.
func (m *LabelMutation) AddContainerMl(i int) {
	if m.addcontainer_ml != nil {
		*m.addcontainer_ml += i
	} else {
		m.addcontainer_ml = &i
	}
}

// AddedContainerMl returns the value that was added to the "container_ml" field in this mutation.
func (m *LabelMutation) AddedContainerMl() (r int, exists bool) {
	v := m.addcontainer_ml
	if v == nil {
		return
	}
	return *v, true
}

// ResetContainerMl resets all changes to the "container_ml" field.
func (m *LabelMutation) ResetContainerMl() {
	m.container_ml = nil
	m.addcontainer_ml = nil
}

// SetApplicationValues sets the "application_values" field.
func (m *LabelMutation) SetApplicationValues(value map[string]string) {
	m.application_values = &value
}

// ApplicationValues returns the value of the "application_values" field in the mutation.
func (m *LabelMutation) ApplicationValues() (r map[string]string, exists bool) {
	v := m.application_values
	if v == nil {
		return
	}
	return *v, true
}

// OldApplicationValues returns the old "application_values" field's value of the Label entity.
// If the Label object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelMutation) OldApplicationValues(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplicationValues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplicationValues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplicationValues: %w", err)
	}
	return oldValue.ApplicationValues, nil
}

// ClearApplicationValues clears the value of the "application_values" field.
func (m *LabelMutation) ClearApplicationValues() {
	m.application_values = nil
	m.clearedFields[label.FieldApplicationValues] = struct{}{}
}

// ApplicationValuesCleared returns if the "application_values" field was cleared in this mutation.
func (m *LabelMutation) ApplicationValuesCleared() bool {
	_, ok := m.clearedFields[label.FieldApplicationValues]
	return ok
}

// ResetApplicationValues resets all changes to the "application_values" field.
func (m *LabelMutation) ResetApplicationValues() {
	m.application_values = nil
	delete(m.clearedFields, label.FieldApplicationValues)
}

// SetStatusReasoning sets the "status_reasoning" field.
func (m *LabelMutation) SetStatusReasoning(s string) {
	m.status_reasoning = &s
}

// StatusReasoning returns the value of the "status_reasoning" field in the mutation.
func (m *LabelMutation) StatusReasoning() (r string, exists bool) {
	v := m.status_reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusReasoning returns the old "status_reasoning" field's value of the Label entity.
// If the Label object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelMutation) OldStatusReasoning(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusReasoning: %w", err)
	}
	return oldValue.StatusReasoning, nil
}

// ClearStatusReasoning clears the value of the "status_reasoning" field.
func (m *LabelMutation) ClearStatusReasoning() {
	m.status_reasoning = nil
	m.clearedFields[label.FieldStatusReasoning] = struct{}{}
}

// StatusReasoningCleared returns if the "status_reasoning" field was cleared in this mutation.
func (m *LabelMutation) StatusReasoningCleared() bool {
	_, ok := m.clearedFields[label.FieldStatusReasoning]
	return ok
}

// ResetStatusReasoning resets all changes to the "status_reasoning" field.
func (m *LabelMutation) ResetStatusReasoning() {
	m.status_reasoning = nil
	delete(m.clearedFields, label.FieldStatusReasoning)
}

// SetCreatedAt sets the "created_at" field.
func (m *LabelMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LabelMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Label entity.
// If the Label object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LabelMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LabelMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LabelMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Label entity.
// If the Label object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LabelMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddImageIDs adds the "images" edge to the LabelImage entity by ids.
func (m *LabelMutation) AddImageIDs(ids ...uuid.UUID) {
	if m.images == nil {
		m.images = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.images[ids[i]] = struct{}{}
	}
}

// ClearImages clears the "images" edge to the LabelImage entity.
func (m *LabelMutation) ClearImages() {
	m.clearedimages = true
}

// ImagesCleared reports if the "images" edge to the LabelImage entity was cleared.
func (m *LabelMutation) ImagesCleared() bool {
	return m.clearedimages
}

// RemoveImageIDs removes the "images" edge to the LabelImage entity by IDs.
func (m *LabelMutation) RemoveImageIDs(ids ...uuid.UUID) {
	if m.removedimages == nil {
		m.removedimages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.images, ids[i])
		m.removedimages[ids[i]] = struct{}{}
	}
}

// RemovedImages returns the removed IDs of the "images" edge to the LabelImage entity.
func (m *LabelMutation) RemovedImagesIDs() (ids []uuid.UUID) {
	for id := range m.removedimages {
		ids = append(ids, id)
	}
	return
}

// ImagesIDs returns the "images" edge IDs in the mutation.
func (m *LabelMutation) ImagesIDs() (ids []uuid.UUID) {
	for id := range m.images {
		ids = append(ids, id)
	}
	return
}

// ResetImages resets all changes to the "images" edge.
func (m *LabelMutation) ResetImages() {
	m.images = nil
	m.clearedimages = false
	m.removedimages = nil
}

// AddJobIDs adds the "jobs" edge to the VerificationJob entity by ids.
func (m *LabelMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the VerificationJob entity.
func (m *LabelMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the VerificationJob entity was cleared.
func (m *LabelMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the VerificationJob entity by IDs.
func (m *LabelMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the VerificationJob entity.
func (m *LabelMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *LabelMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *LabelMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the LabelMutation builder.
func (m *LabelMutation) Where(ps ...predicate.Label) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LabelMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LabelMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Label, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LabelMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LabelMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Label).
func (m *LabelMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LabelMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.status != nil {
		fields = append(fields, label.FieldStatus)
	}
	if m.correction_deadline != nil {
		fields = append(fields, label.FieldCorrectionDeadline)
	}
	if m.beverage_type != nil {
		fields = append(fields, label.FieldBeverageType)
	}
	if m.container_ml != nil {
		fields = append(fields, label.FieldContainerMl)
	}
	if m.application_values != nil {
		fields = append(fields, label.FieldApplicationValues)
	}
	if m.status_reasoning != nil {
		fields = append(fields, label.FieldStatusReasoning)
	}
	if m.created_at != nil {
		fields = append(fields, label.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, label.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LabelMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case label.FieldStatus:
		return m.Status()
	case label.FieldCorrectionDeadline:
		return m.CorrectionDeadline()
	case label.FieldBeverageType:
		return m.BeverageType()
	case label.FieldContainerMl:
		return m.ContainerMl()
	case label.FieldApplicationValues:
		return m.ApplicationValues()
	case label.FieldStatusReasoning:
		return m.StatusReasoning()
	case label.FieldCreatedAt:
		return m.CreatedAt()
	case label.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LabelMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case label.FieldStatus:
		return m.OldStatus(ctx)
	case label.FieldCorrectionDeadline:
		return m.OldCorrectionDeadline(ctx)
	case label.FieldBeverageType:
		return m.OldBeverageType(ctx)
	case label.FieldContainerMl:
		return m.OldContainerMl(ctx)
	case label.FieldApplicationValues:
		return m.OldApplicationValues(ctx)
	case label.FieldStatusReasoning:
		return m.OldStatusReasoning(ctx)
	case label.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case label.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Label field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LabelMutation) SetField(name string, value ent.Value) error {
	switch name {
	case label.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case label.FieldCorrectionDeadline:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectionDeadline(v)
		return nil
	case label.FieldBeverageType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBeverageType(v)
		return nil
	case label.FieldContainerMl:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContainerMl(v)
		return nil
	case label.FieldApplicationValues:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplicationValues(v)
		return nil
	case label.FieldStatusReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusReasoning(v)
		return nil
	case label.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case label.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Label field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LabelMutation) AddedFields() []string {
	var fields []string
	if m.addcontainer_ml != nil {
		fields = append(fields, label.FieldContainerMl)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LabelMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case label.FieldContainerMl:
		return m.AddedContainerMl()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LabelMutation) AddField(name string, value ent.Value) error {
	switch name {
	case label.FieldContainerMl:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddContainerMl(v)
		return nil
	}
	return fmt.Errorf("unknown Label numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LabelMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(label.FieldCorrectionDeadline) {
		fields = append(fields, label.FieldCorrectionDeadline)
	}
	if m.FieldCleared(label.FieldApplicationValues) {
		fields = append(fields, label.FieldApplicationValues)
	}
	if m.FieldCleared(label.FieldStatusReasoning) {
		fields = append(fields, label.FieldStatusReasoning)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LabelMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LabelMutation) ClearField(name string) error {
	switch name {
	case label.FieldCorrectionDeadline:
		m.ClearCorrectionDeadline()
		return nil
	case label.FieldApplicationValues:
		m.ClearApplicationValues()
		return nil
	case label.FieldStatusReasoning:
		m.ClearStatusReasoning()
		return nil
	}
	return fmt.Errorf("unknown Label nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LabelMutation) ResetField(name string) error {
	switch name {
	case label.FieldStatus:
		m.ResetStatus()
		return nil
	case label.FieldCorrectionDeadline:
		m.ResetCorrectionDeadline()
		return nil
	case label.FieldBeverageType:
		m.ResetBeverageType()
		return nil
	case label.FieldContainerMl:
		m.ResetContainerMl()
		return nil
	case label.FieldApplicationValues:
		m.ResetApplicationValues()
		return nil
	case label.FieldStatusReasoning:
		m.ResetStatusReasoning()
		return nil
	case label.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case label.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Label field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LabelMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.images != nil {
		edges = append(edges, label.EdgeImages)
	}
	if m.jobs != nil {
		edges = append(edges, label.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LabelMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case label.EdgeImages:
		ids := make([]ent.Value, 0, len(m.images))
		for id := range m.images {
			ids = append(ids, id)
		}
		return ids
	case label.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LabelMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedimages != nil {
		edges = append(edges, label.EdgeImages)
	}
	if m.removedjobs != nil {
		edges = append(edges, label.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LabelMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case label.EdgeImages:
		ids := make([]ent.Value, 0, len(m.removedimages))
		for id := range m.removedimages {
			ids = append(ids, id)
		}
		return ids
	case label.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LabelMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedimages {
		edges = append(edges, label.EdgeImages)
	}
	if m.clearedjobs {
		edges = append(edges, label.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LabelMutation) EdgeCleared(name string) bool {
	switch name {
	case label.EdgeImages:
		return m.clearedimages
	case label.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LabelMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Label unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LabelMutation) ResetEdge(name string) error {
	switch name {
	case label.EdgeImages:
		m.ResetImages()
		return nil
	case label.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Label edge %s", name)
}

// LabelImageMutation represents an operation that mutates the LabelImage nodes in the graph.
type LabelImageMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	position      *int
	addposition   *int
	source_path   *string
	role          *string
	content_hash  *[]byte
	created_at    *time.Time
	clearedFields map[string]struct{}
	label         *uuid.UUID
	clearedlabel  bool
	done          bool
	oldValue      func(context.Context) (*LabelImage, error)
	predicates    []predicate.LabelImage
}

var _ ent.Mutation = (*LabelImageMutation)(nil)

// labelimageOption allows management of the mutation configuration using functional options.
type labelimageOption func(*LabelImageMutation)

// newLabelImageMutation creates new mutation for the LabelImage entity.
func newLabelImageMutation(c config, op Op, opts ...labelimageOption) *LabelImageMutation {
	m := &LabelImageMutation{
		config:        c,
		op:            op,
		typ:           TypeLabelImage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLabelImageID sets the ID field of the mutation.
func withLabelImageID(id uuid.UUID) labelimageOption {
	return func(m *LabelImageMutation) {
		var (
			err   error
			once  sync.Once
			value *LabelImage
		)
		m.oldValue = func(ctx context.Context) (*LabelImage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LabelImage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLabelImage sets the old LabelImage of the mutation.
func withLabelImage(node *LabelImage) labelimageOption {
	return func(m *LabelImageMutation) {
		m.oldValue = func(context.Context) (*LabelImage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LabelImageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LabelImageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LabelImage entities.
func (m *LabelImageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LabelImageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LabelImageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LabelImage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLabelID sets the "label_id" field.
func (m *LabelImageMutation) SetLabelID(u uuid.UUID) {
	m.label = &u
}

// LabelID returns the value of the "label_id" field in the mutation.
func (m *LabelImageMutation) LabelID() (r uuid.UUID, exists bool) {
	v := m.label
	if v == nil {
		return
	}
	return *v, true
}

// OldLabelID returns the old "label_id" field's value of the LabelImage entity.
// If the LabelImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelImageMutation) OldLabelID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabelID: %w", err)
	}
	return oldValue.LabelID, nil
}

// ResetLabelID resets all changes to the "label_id" field.
func (m *LabelImageMutation) ResetLabelID() {
	m.label = nil
}

// SetPosition sets the "position" field.
func (m *LabelImageMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *LabelImageMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the LabelImage entity.
// If the LabelImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelImageMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *LabelImageMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *LabelImageMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *LabelImageMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetSourcePath sets the "source_path" field.
func (m *LabelImageMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *LabelImageMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the LabelImage entity.
// If the LabelImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelImageMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *LabelImageMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetRole sets the "role" field.
func (m *LabelImageMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *LabelImageMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the LabelImage entity.
// If the LabelImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelImageMutation) OldRole(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ClearRole clears the value of the "role" field.
func (m *LabelImageMutation) ClearRole() {
	m.role = nil
	m.clearedFields[labelimage.FieldRole] = struct{}{}
}

// RoleCleared returns if the "role" field was cleared in this mutation.
func (m *LabelImageMutation) RoleCleared() bool {
	_, ok := m.clearedFields[labelimage.FieldRole]
	return ok
}

// ResetRole resets all changes to the "role" field.
func (m *LabelImageMutation) ResetRole() {
	m.role = nil
	delete(m.clearedFields, labelimage.FieldRole)
}

// SetContentHash sets the "content_hash" field.
func (m *LabelImageMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *LabelImageMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the LabelImage entity.
// If the LabelImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelImageMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ClearContentHash clears the value of the "content_hash" field.
func (m *LabelImageMutation) ClearContentHash() {
	m.content_hash = nil
	m.clearedFields[labelimage.FieldContentHash] = struct{}{}
}

// ContentHashCleared returns if the "content_hash" field was cleared in this mutation.
func (m *LabelImageMutation) ContentHashCleared() bool {
	_, ok := m.clearedFields[labelimage.FieldContentHash]
	return ok
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *LabelImageMutation) ResetContentHash() {
	m.content_hash = nil
	delete(m.clearedFields, labelimage.FieldContentHash)
}

// SetCreatedAt sets the "created_at" field.
func (m *LabelImageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LabelImageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LabelImage entity.
// If the LabelImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelImageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LabelImageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearLabel clears the "label" edge to the Label entity.
func (m *LabelImageMutation) ClearLabel() {
	m.clearedlabel = true
	m.clearedFields[labelimage.FieldLabelID] = struct{}{}
}

// LabelCleared reports if the "label" edge to the Label entity was cleared.
func (m *LabelImageMutation) LabelCleared() bool {
	return m.clearedlabel
}

// LabelIDs returns the "label" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LabelID instead. It exists only for internal usage by the builders.
func (m *LabelImageMutation) LabelIDs() (ids []uuid.UUID) {
	if id := m.label; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLabel resets all changes to the "label" edge.
func (m *LabelImageMutation) ResetLabel() {
	m.label = nil
	m.clearedlabel = false
}

// Where appends a list predicates to the LabelImageMutation builder.
func (m *LabelImageMutation) Where(ps ...predicate.LabelImage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LabelImageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LabelImageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LabelImage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LabelImageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LabelImageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LabelImage).
func (m *LabelImageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LabelImageMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.label != nil {
		fields = append(fields, labelimage.FieldLabelID)
	}
	if m.position != nil {
		fields = append(fields, labelimage.FieldPosition)
	}
	if m.source_path != nil {
		fields = append(fields, labelimage.FieldSourcePath)
	}
	if m.role != nil {
		fields = append(fields, labelimage.FieldRole)
	}
	if m.content_hash != nil {
		fields = append(fields, labelimage.FieldContentHash)
	}
	if m.created_at != nil {
		fields = append(fields, labelimage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LabelImageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case labelimage.FieldLabelID:
		return m.LabelID()
	case labelimage.FieldPosition:
		return m.Position()
	case labelimage.FieldSourcePath:
		return m.SourcePath()
	case labelimage.FieldRole:
		return m.Role()
	case labelimage.FieldContentHash:
		return m.ContentHash()
	case labelimage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LabelImageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case labelimage.FieldLabelID:
		return m.OldLabelID(ctx)
	case labelimage.FieldPosition:
		return m.OldPosition(ctx)
	case labelimage.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case labelimage.FieldRole:
		return m.OldRole(ctx)
	case labelimage.FieldContentHash:
		return m.OldContentHash(ctx)
	case labelimage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LabelImage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LabelImageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case labelimage.FieldLabelID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabelID(v)
		return nil
	case labelimage.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case labelimage.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case labelimage.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case labelimage.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case labelimage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LabelImage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LabelImageMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, labelimage.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LabelImageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case labelimage.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LabelImageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case labelimage.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown LabelImage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LabelImageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(labelimage.FieldRole) {
		fields = append(fields, labelimage.FieldRole)
	}
	if m.FieldCleared(labelimage.FieldContentHash) {
		fields = append(fields, labelimage.FieldContentHash)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LabelImageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LabelImageMutation) ClearField(name string) error {
	switch name {
	case labelimage.FieldRole:
		m.ClearRole()
		return nil
	case labelimage.FieldContentHash:
		m.ClearContentHash()
		return nil
	}
	return fmt.Errorf("unknown LabelImage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LabelImageMutation) ResetField(name string) error {
	switch name {
	case labelimage.FieldLabelID:
		m.ResetLabelID()
		return nil
	case labelimage.FieldPosition:
		m.ResetPosition()
		return nil
	case labelimage.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case labelimage.FieldRole:
		m.ResetRole()
		return nil
	case labelimage.FieldContentHash:
		m.ResetContentHash()
		return nil
	case labelimage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LabelImage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LabelImageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.label != nil {
		edges = append(edges, labelimage.EdgeLabel)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LabelImageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case labelimage.EdgeLabel:
		if id := m.label; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LabelImageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LabelImageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LabelImageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedlabel {
		edges = append(edges, labelimage.EdgeLabel)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LabelImageMutation) EdgeCleared(name string) bool {
	switch name {
	case labelimage.EdgeLabel:
		return m.clearedlabel
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LabelImageMutation) ClearEdge(name string) error {
	switch name {
	case labelimage.EdgeLabel:
		m.ClearLabel()
		return nil
	}
	return fmt.Errorf("unknown LabelImage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LabelImageMutation) ResetEdge(name string) error {
	switch name {
	case labelimage.EdgeLabel:
		m.ResetLabel()
		return nil
	}
	return fmt.Errorf("unknown LabelImage edge %s", name)
}

// ValidationItemMutation represents an operation that mutates the ValidationItem nodes in the graph.
type ValidationItemMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	position                 *int
	addposition              *int
	field_name               *string
	expected_value           *string
	extracted_value          *string
	comparison_status        *string
	comparison_confidence    *int
	addcomparison_confidence *int
	comparison_reasoning     *string
	box_x                    *float64
	addbox_x                 *float64
	box_y                    *float64
	addbox_y                 *float64
	box_width                *float64
	addbox_width             *float64
	box_height               *float64
	addbox_height            *float64
	box_angle                *int
	addbox_angle             *int
	image_index              *int
	addimage_index           *int
	created_at               *time.Time
	clearedFields            map[string]struct{}
	job                      *uuid.UUID
	clearedjob               bool
	done                     bool
	oldValue                 func(context.Context) (*ValidationItem, error)
	predicates               []predicate.ValidationItem
}

var _ ent.Mutation = (*ValidationItemMutation)(nil)

// validationitemOption allows management of the mutation configuration using functional options.
type validationitemOption func(*ValidationItemMutation)

// newValidationItemMutation creates new mutation for the ValidationItem entity.
func newValidationItemMutation(c config, op Op, opts ...validationitemOption) *ValidationItemMutation {
	m := &ValidationItemMutation{
		config:        c,
		op:            op,
		typ:           TypeValidationItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withValidationItemID sets the ID field of the mutation.
func withValidationItemID(id uuid.UUID) validationitemOption {
	return func(m *ValidationItemMutation) {
		var (
			err   error
			once  sync.Once
			value *ValidationItem
		)
		m.oldValue = func(ctx context.Context) (*ValidationItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ValidationItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withValidationItem sets the old ValidationItem of the mutation.
func withValidationItem(node *ValidationItem) validationitemOption {
	return func(m *ValidationItemMutation) {
		m.oldValue = func(context.Context) (*ValidationItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ValidationItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ValidationItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ValidationItem entities.
func (m *ValidationItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ValidationItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ValidationItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ValidationItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *ValidationItemMutation) SetJobID(u uuid.UUID) {
	m.job = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *ValidationItemMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the ValidationItem entity.
// If the ValidationItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationItemMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *ValidationItemMutation) ResetJobID() {
	m.job = nil
}

// SetPosition sets the "position" field.
func (m *ValidationItemMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *ValidationItemMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the ValidationItem entity.
// If the ValidationItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationItemMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *ValidationItemMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *ValidationItemMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *ValidationItemMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetFieldName sets the "field_name" field.
func (m *ValidationItemMutation) SetFieldName(s string) {
	m.field_name = &s
}

// FieldName returns the value of the "field_name" field in the mutation.
func (m *ValidationItemMutation) FieldName() (r string, exists bool) {
	v := m.field_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldName returns the old "field_name" field's value of the ValidationItem entity.
// If the ValidationItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationItemMutation) OldFieldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldName: %w", err)
	}
	return oldValue.FieldName, nil
}

// ResetFieldName resets all changes to the "field_name" field.
func (m *ValidationItemMutation) ResetFieldName() {
	m.field_name = nil
}

// SetExpectedValue sets the "expected_value" field.
func (m *ValidationItemMutation) SetExpectedValue(s string) {
	m.expected_value = &s
}

// ExpectedValue returns the value of the "expected_value" field in the mutation.
func (m *ValidationItemMutation) ExpectedValue() (r string, exists bool) {
	v := m.expected_value
	if v == nil {
		return
	}
	return *v, true
}

// OldExpectedValue returns the old "expected_value" field's value of the ValidationItem entity.
// If the ValidationItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationItemMutation) OldExpectedValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpectedValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpectedValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpectedValue: %w", err)
	}
	return oldValue.ExpectedValue, nil
}

// ResetExpectedValue resets all changes to the "expected_value" field.
func (m *ValidationItemMutation) ResetExpectedValue() {
	m.expected_value = nil
}

// SetExtractedValue sets the "extracted_value" field.
func (m *ValidationItemMutation) SetExtractedValue(s string) {
	m.extracted_value = &s
}

// ExtractedValue returns the value of the "extracted_value" field in the mutation.
func (m *ValidationItemMutation) ExtractedValue() (r string, exists bool) {
	v := m.extracted_value
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedValue returns the old "extracted_value" field's value of the ValidationItem entity.
// If the ValidationItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationItemMutation) OldExtractedValue(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedValue: %w", err)
	}
	return oldValue.ExtractedValue, nil
}

// ClearExtractedValue clears the value of the "extracted_value" field.
func (m *ValidationItemMutation) ClearExtractedValue() {
	m.extracted_value = nil
	m.clearedFields[validationitem.FieldExtractedValue] = struct{}{}
}

// ExtractedValueCleared returns if the "extracted_value" field was cleared in this mutation.
func (m *ValidationItemMutation) ExtractedValueCleared() bool {
	_, ok := m.clearedFields[validationitem.FieldExtractedValue]
	return ok
}

// ResetExtractedValue resets all changes to the "extracted_value" field.
func (m *ValidationItemMutation) ResetExtractedValue() {
	m.extracted_value = nil
	delete(m.clearedFields, validationitem.FieldExtractedValue)
}

// SetComparisonStatus sets the "comparison_status" field.
func (m *ValidationItemMutation) SetComparisonStatus(s string) {
	m.comparison_status = &s
}

// ComparisonStatus returns the value of the "comparison_status" field in the mutation.
func (m *ValidationItemMutation) ComparisonStatus() (r string, exists bool) {
	v := m.comparison_status
	if v == nil {
		return
	}
	return *v, true
}

// OldComparisonStatus returns the old "comparison_status" field's value of the ValidationItem entity.
// If the ValidationItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationItemMutation) OldComparisonStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComparisonStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComparisonStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComparisonStatus: %w", err)
	}
	return oldValue.ComparisonStatus, nil
}

// ResetComparisonStatus resets all changes to the "comparison_status" field.
func (m *ValidationItemMutation) ResetComparisonStatus() {
	m.comparison_status = nil
}

// SetComparisonConfidence sets the "comparison_confidence" field.
func (m *ValidationItemMutation) SetComparisonConfidence(i int) {
	m.comparison_confidence = &i
	m.addcomparison_confidence = nil
}

// ComparisonConfidence returns the value of the "comparison_confidence" field in the mutation.
func (m *ValidationItemMutation) ComparisonConfidence() (r int, exists bool) {
	v := m.comparison_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldComparisonConfidence returns the old "comparison_confidence" field's value of the ValidationItem entity.
// If the ValidationItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationItemMutation) OldComparisonConfidence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComparisonConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComparisonConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComparisonConfidence: %w", err)
	}
	return oldValue.ComparisonConfidence, nil
}

// AddComparisonConfidence adds i to the "comparison_confidence" field.
func (m *ValidationItemMutation) AddComparisonConfidence(i int) {
	if m.addcomparison_confidence != nil {
		*m.addcomparison_confidence += i
	} else {
		m.addcomparison_confidence = &i
	}
}

// AddedComparisonConfidence returns the value that was added to the "comparison_confidence" field in this mutation.
func (m *ValidationItemMutation) AddedComparisonConfidence() (r int, exists bool) {
	v := m.addcomparison_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetComparisonConfidence resets all changes to the "comparison_confidence" field.
func (m *ValidationItemMutation) ResetComparisonConfidence() {
	m.comparison_confidence = nil
	m.addcomparison_confidence = nil
}

// SetComparisonReasoning sets the "comparison_reasoning" field.
func (m *ValidationItemMutation) SetComparisonReasoning(s string) {
	m.comparison_reasoning = &s
}

// ComparisonReasoning returns the value of the "comparison_reasoning" field in the mutation.
func (m *ValidationItemMutation) ComparisonReasoning() (r string, exists bool) {
	v := m.comparison_reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldComparisonReasoning returns the old "comparison_reasoning" field's value of the ValidationItem entity.
// If the ValidationItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationItemMutation) OldComparisonReasoning(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComparisonReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComparisonReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComparisonReasoning: %w", err)
	}
	return oldValue.ComparisonReasoning, nil
}

// ResetComparisonReasoning resets all changes to the "comparison_reasoning" field.
func (m *ValidationItemMutation) ResetComparisonReasoning() {
	m.comparison_reasoning = nil
}

// SetBoxX sets the "box_x" field.
func (m *ValidationItemMutation) SetBoxX(f float64) {
	m.box_x = &f
	m.addbox_x = nil
}

// BoxX returns the value of the "box_x" field in the mutation.
func (m *ValidationItemMutation) BoxX() (r float64, exists bool) {
	v := m.box_x
	if v == nil {
		return
	}
	return *v, true
}

// OldBoxX returns the old "box_x" field's value of the ValidationItem entity.
// If the ValidationItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationItemMutation) OldBoxX(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBoxX is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBoxX requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBoxX: %w", err)
	}
	return oldValue.BoxX, nil
}

// AddBoxX adds f to the "box_x" field.
func (m *ValidationItemMutation) AddBoxX(f float64) {
	if m.addbox_x != nil {
		*m.addbox_x += f
	} else {
		m.addbox_x = &f
	}
}

// AddedBoxX returns the value that was added to the "box_x" field in this mutation.
func (m *ValidationItemMutation) AddedBoxX() (r float64, exists bool) {
	v := m.addbox_x
	if v == nil {
		return
	}
	return *v, true
}

// ClearBoxX clears the value of the "box_x" field.
func (m *ValidationItemMutation) ClearBoxX() {
	m.box_x = nil
	m.addbox_x = nil
	m.clearedFields[validationitem.FieldBoxX] = struct{}{}
}

// BoxXCleared returns if the "box_x" field was cleared in this mutation.
func (m *ValidationItemMutation) BoxXCleared() bool {
	_, ok := m.clearedFields[validationitem.FieldBoxX]
	return ok
}

// ResetBoxX resets all changes to the "box_x" field.
func (m *ValidationItemMutation) ResetBoxX() {
	m.box_x = nil
	m.addbox_x = nil
	delete(m.clearedFields, validationitem.FieldBoxX)
}

// SetBoxY sets the "box_y" field.
func (m *ValidationItemMutation) SetBoxY(f float64) {
	m.box_y = &f
	m.addbox_y = nil
}

// BoxY returns the value of the "box_y" field in the mutation.
func (m *ValidationItemMutation) BoxY() (r float64, exists bool) {
	v := m.box_y
	if v == nil {
		return
	}
	return *v, true
}

// OldBoxY returns the old "box_y" field's value of the ValidationItem entity.
// If the ValidationItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationItemMutation) OldBoxY(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBoxY is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBoxY requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBoxY: %w", err)
	}
	return oldValue.BoxY, nil
}

// AddBoxY adds f to the "box_y" field.
func (m *ValidationItemMutation) AddBoxY(f float64) {
	if m.addbox_y != nil {
		*m.addbox_y += f
	} else {
		m.addbox_y = &f
	}
}

// AddedBoxY returns the value that was added to the "box_y" field in this mutation.
func (m *ValidationItemMutation) AddedBoxY() (r float64, exists bool) {
	v := m.addbox_y
	if v == nil {
		return
	}
	return *v, true
}

// ClearBoxY clears the value of the "box_y" field.
func (m *ValidationItemMutation) ClearBoxY() {
	m.box_y = nil
	m.addbox_y = nil
	m.clearedFields[validationitem.FieldBoxY] = struct{}{}
}

// BoxYCleared returns if the "box_y" field was cleared in this mutation.
func (m *ValidationItemMutation) BoxYCleared() bool {
	_, ok := m.clearedFields[validationitem.FieldBoxY]
	return ok
}

// ResetBoxY resets all changes to the "box_y" field.
func (m *ValidationItemMutation) ResetBoxY() {
	m.box_y = nil
	m.addbox_y = nil
	delete(m.clearedFields, validationitem.FieldBoxY)
}

// SetBoxWidth sets the "box_width" field.
func (m *ValidationItemMutation) SetBoxWidth(f float64) {
	m.box_width = &f
	m.addbox_width = nil
}

// BoxWidth returns the value of the "box_width" field in the mutation.
func (m *ValidationItemMutation) BoxWidth() (r float64, exists bool) {
	v := m.box_width
	if v == nil {
		return
	}
	return *v, true
}

// OldBoxWidth returns the old "box_width" field's value of the ValidationItem entity.
// If the ValidationItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationItemMutation) OldBoxWidth(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBoxWidth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBoxWidth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBoxWidth: %w", err)
	}
	return oldValue.BoxWidth, nil
}

// AddBoxWidth adds f to the "box_width" field.
func (m *ValidationItemMutation) AddBoxWidth(f float64) {
	if m.addbox_width != nil {
		*m.addbox_width += f
	} else {
		m.addbox_width = &f
	}
}

// AddedBoxWidth returns the value that was added to the "box_width" field in this mutation.
func (m *ValidationItemMutation) AddedBoxWidth() (r float64, exists bool) {
	v := m.addbox_width
	if v == nil {
		return
	}
	return *v, true
}

// ClearBoxWidth clears the value of the "box_width" field.
func (m *ValidationItemMutation) ClearBoxWidth() {
	m.box_width = nil
	m.addbox_width = nil
	m.clearedFields[validationitem.FieldBoxWidth] = struct{}{}
}

// BoxWidthCleared returns if the "box_width" field was cleared in this mutation.
func (m *ValidationItemMutation) BoxWidthCleared() bool {
	_, ok := m.clearedFields[validationitem.FieldBoxWidth]
	return ok
}

// ResetBoxWidth resets all changes to the "box_width" field.
func (m *ValidationItemMutation) ResetBoxWidth() {
	m.box_width = nil
	m.addbox_width = nil
	delete(m.clearedFields, validationitem.FieldBoxWidth)
}

// SetBoxHeight sets the "box_height" field.
func (m *ValidationItemMutation) SetBoxHeight(f float64) {
	m.box_height = &f
	m.addbox_height = nil
}

// BoxHeight returns the value of the "box_height" field in the mutation.
func (m *ValidationItemMutation) BoxHeight() (r float64, exists bool) {
	v := m.box_height
	if v == nil {
		return
	}
	return *v, true
}

// OldBoxHeight returns the old "box_height" field's value of the ValidationItem entity.
// If the ValidationItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationItemMutation) OldBoxHeight(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBoxHeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBoxHeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBoxHeight: %w", err)
	}
	return oldValue.BoxHeight, nil
}

// AddBoxHeight adds f to the "box_height" field.
func (m *ValidationItemMutation) AddBoxHeight(f float64) {
	if m.addbox_height != nil {
		*m.addbox_height += f
	} else {
		m.addbox_height = &f
	}
}

// AddedBoxHeight returns the value that was added to the "box_height" field in this mutation.
func (m *ValidationItemMutation) AddedBoxHeight() (r float64, exists bool) {
	v := m.addbox_height
	if v == nil {
		return
	}
	return *v, true
}

// ClearBoxHeight clears the value of the "box_height" field.
func (m *ValidationItemMutation) ClearBoxHeight() {
	m.box_height = nil
	m.addbox_height = nil
	m.clearedFields[validationitem.FieldBoxHeight] = struct{}{}
}

// BoxHeightCleared returns if the "box_height" field was cleared in this mutation.
func (m *ValidationItemMutation) BoxHeightCleared() bool {
	_, ok := m.clearedFields[validationitem.FieldBoxHeight]
	return ok
}

// ResetBoxHeight resets all changes to the "box_height" field.
func (m *ValidationItemMutation) ResetBoxHeight() {
	m.box_height = nil
	m.addbox_height = nil
	delete(m.clearedFields, validationitem.FieldBoxHeight)
}

// SetBoxAngle sets the "box_angle" field.
func (m *ValidationItemMutation) SetBoxAngle(i int) {
	m.box_angle = &i
	m.addbox_angle = nil
}

// BoxAngle returns the value of the "box_angle" field in the mutation.
func (m *ValidationItemMutation) BoxAngle() (r int, exists bool) {
	v := m.box_angle
	if v == nil {
		return
	}
	return *v, true
}

// OldBoxAngle returns the old "box_angle" field's value of the ValidationItem entity.
// If the ValidationItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationItemMutation) OldBoxAngle(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBoxAngle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBoxAngle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBoxAngle: %w", err)
	}
	return oldValue.BoxAngle, nil
}

// AddBoxAngle adds i to the "box_angle" field.
func (m *ValidationItemMutation) AddBoxAngle(i int) {
	if m.addbox_angle != nil {
		*m.addbox_angle += i
	} else {
		m.addbox_angle = &i
	}
}

// AddedBoxAngle returns the value that was added to the "box_angle" field in this mutation.
func (m *ValidationItemMutation) AddedBoxAngle() (r int, exists bool) {
	v := m.addbox_angle
	if v == nil {
		return
	}
	return *v, true
}

// ClearBoxAngle clears the value of the "box_angle" field.
func (m *ValidationItemMutation) ClearBoxAngle() {
	m.box_angle = nil
	m.addbox_angle = nil
	m.clearedFields[validationitem.FieldBoxAngle] = struct{}{}
}

// BoxAngleCleared returns if the "box_angle" field was cleared in this mutation.
func (m *ValidationItemMutation) BoxAngleCleared() bool {
	_, ok := m.clearedFields[validationitem.FieldBoxAngle]
	return ok
}

// ResetBoxAngle resets all changes to the "box_angle" field.
func (m *ValidationItemMutation) ResetBoxAngle() {
	m.box_angle = nil
	m.addbox_angle = nil
	delete(m.clearedFields, validationitem.FieldBoxAngle)
}

// SetImageIndex sets the "image_index" field.
func (m *ValidationItemMutation) SetImageIndex(i int) {
	m.image_index = &i
	m.addimage_index = nil
}

// ImageIndex returns the value of the "image_index" field in the mutation.
func (m *ValidationItemMutation) ImageIndex() (r int, exists bool) {
	v := m.image_index
	if v == nil {
		return
	}
	return *v, true
}

// OldImageIndex returns the old "image_index" field's value of the ValidationItem entity.
// If the ValidationItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationItemMutation) OldImageIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageIndex: %w", err)
	}
	return oldValue.ImageIndex, nil
}

// AddImageIndex adds i to the "image_index" field.
func (m *ValidationItemMutation) AddImageIndex(i int) {
	if m.addimage_index != nil {
		*m.addimage_index += i
	} else {
		m.addimage_index = &i
	}
}

// AddedImageIndex returns the value that was added to the "image_index" field in this mutation.
func (m *ValidationItemMutation) AddedImageIndex() (r int, exists bool) {
	v := m.addimage_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetImageIndex resets all changes to the "image_index" field.
func (m *ValidationItemMutation) ResetImageIndex() {
	m.image_index = nil
	m.addimage_index = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ValidationItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ValidationItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ValidationItem entity.
// If the ValidationItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ValidationItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearJob clears the "job" edge to the VerificationJob entity.
func (m *ValidationItemMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[validationitem.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the VerificationJob entity was cleared.
func (m *ValidationItemMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *ValidationItemMutation) JobIDs() (ids []uuid.UUID) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *ValidationItemMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the ValidationItemMutation builder.
func (m *ValidationItemMutation) Where(ps ...predicate.ValidationItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ValidationItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ValidationItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ValidationItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ValidationItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ValidationItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ValidationItem).
func (m *ValidationItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ValidationItemMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.job != nil {
		fields = append(fields, validationitem.FieldJobID)
	}
	if m.position != nil {
		fields = append(fields, validationitem.FieldPosition)
	}
	if m.field_name != nil {
		fields = append(fields, validationitem.FieldFieldName)
	}
	if m.expected_value != nil {
		fields = append(fields, validationitem.FieldExpectedValue)
	}
	if m.extracted_value != nil {
		fields = append(fields, validationitem.FieldExtractedValue)
	}
	if m.comparison_status != nil {
		fields = append(fields, validationitem.FieldComparisonStatus)
	}
	if m.comparison_confidence != nil {
		fields = append(fields, validationitem.FieldComparisonConfidence)
	}
	if m.comparison_reasoning != nil {
		fields = append(fields, validationitem.FieldComparisonReasoning)
	}
	if m.box_x != nil {
		fields = append(fields, validationitem.FieldBoxX)
	}
	if m.box_y != nil {
		fields = append(fields, validationitem.FieldBoxY)
	}
	if m.box_width != nil {
		fields = append(fields, validationitem.FieldBoxWidth)
	}
	if m.box_height != nil {
		fields = append(fields, validationitem.FieldBoxHeight)
	}
	if m.box_angle != nil {
		fields = append(fields, validationitem.FieldBoxAngle)
	}
	if m.image_index != nil {
		fields = append(fields, validationitem.FieldImageIndex)
	}
	if m.created_at != nil {
		fields = append(fields, validationitem.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ValidationItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case validationitem.FieldJobID:
		return m.JobID()
	case validationitem.FieldPosition:
		return m.Position()
	case validationitem.FieldFieldName:
		return m.FieldName()
	case validationitem.FieldExpectedValue:
		return m.ExpectedValue()
	case validationitem.FieldExtractedValue:
		return m.ExtractedValue()
	case validationitem.FieldComparisonStatus:
		return m.ComparisonStatus()
	case validationitem.FieldComparisonConfidence:
		return m.ComparisonConfidence()
	case validationitem.FieldComparisonReasoning:
		return m.ComparisonReasoning()
	case validationitem.FieldBoxX:
		return m.BoxX()
	case validationitem.FieldBoxY:
		return m.BoxY()
	case validationitem.FieldBoxWidth:
		return m.BoxWidth()
	case validationitem.FieldBoxHeight:
		return m.BoxHeight()
	case validationitem.FieldBoxAngle:
		return m.BoxAngle()
	case validationitem.FieldImageIndex:
		return m.ImageIndex()
	case validationitem.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ValidationItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case validationitem.FieldJobID:
		return m.OldJobID(ctx)
	case validationitem.FieldPosition:
		return m.OldPosition(ctx)
	case validationitem.FieldFieldName:
		return m.OldFieldName(ctx)
	case validationitem.FieldExpectedValue:
		return m.OldExpectedValue(ctx)
	case validationitem.FieldExtractedValue:
		return m.OldExtractedValue(ctx)
	case validationitem.FieldComparisonStatus:
		return m.OldComparisonStatus(ctx)
	case validationitem.FieldComparisonConfidence:
		return m.OldComparisonConfidence(ctx)
	case validationitem.FieldComparisonReasoning:
		return m.OldComparisonReasoning(ctx)
	case validationitem.FieldBoxX:
		return m.OldBoxX(ctx)
	case validationitem.FieldBoxY:
		return m.OldBoxY(ctx)
	case validationitem.FieldBoxWidth:
		return m.OldBoxWidth(ctx)
	case validationitem.FieldBoxHeight:
		return m.OldBoxHeight(ctx)
	case validationitem.FieldBoxAngle:
		return m.OldBoxAngle(ctx)
	case validationitem.FieldImageIndex:
		return m.OldImageIndex(ctx)
	case validationitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ValidationItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ValidationItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case validationitem.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case validationitem.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case validationitem.FieldFieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldName(v)
		return nil
	case validationitem.FieldExpectedValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpectedValue(v)
		return nil
	case validationitem.FieldExtractedValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedValue(v)
		return nil
	case validationitem.FieldComparisonStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComparisonStatus(v)
		return nil
	case validationitem.FieldComparisonConfidence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComparisonConfidence(v)
		return nil
	case validationitem.FieldComparisonReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComparisonReasoning(v)
		return nil
	case validationitem.FieldBoxX:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBoxX(v)
		return nil
	case validationitem.FieldBoxY:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBoxY(v)
		return nil
	case validationitem.FieldBoxWidth:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBoxWidth(v)
		return nil
	case validationitem.FieldBoxHeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBoxHeight(v)
		return nil
	case validationitem.FieldBoxAngle:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBoxAngle(v)
		return nil
	case validationitem.FieldImageIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageIndex(v)
		return nil
	case validationitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ValidationItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ValidationItemMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, validationitem.FieldPosition)
	}
	if m.addcomparison_confidence != nil {
		fields = append(fields, validationitem.FieldComparisonConfidence)
	}
	if m.addbox_x != nil {
		fields = append(fields, validationitem.FieldBoxX)
	}
	if m.addbox_y != nil {
		fields = append(fields, validationitem.FieldBoxY)
	}
	if m.addbox_width != nil {
		fields = append(fields, validationitem.FieldBoxWidth)
	}
	if m.addbox_height != nil {
		fields = append(fields, validationitem.FieldBoxHeight)
	}
	if m.addbox_angle != nil {
		fields = append(fields, validationitem.FieldBoxAngle)
	}
	if m.addimage_index != nil {
		fields = append(fields, validationitem.FieldImageIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ValidationItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case validationitem.FieldPosition:
		return m.AddedPosition()
	case validationitem.FieldComparisonConfidence:
		return m.AddedComparisonConfidence()
	case validationitem.FieldBoxX:
		return m.AddedBoxX()
	case validationitem.FieldBoxY:
		return m.AddedBoxY()
	case validationitem.FieldBoxWidth:
		return m.AddedBoxWidth()
	case validationitem.FieldBoxHeight:
		return m.AddedBoxHeight()
	case validationitem.FieldBoxAngle:
		return m.AddedBoxAngle()
	case validationitem.FieldImageIndex:
		return m.AddedImageIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ValidationItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case validationitem.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	case validationitem.FieldComparisonConfidence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddComparisonConfidence(v)
		return nil
	case validationitem.FieldBoxX:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBoxX(v)
		return nil
	case validationitem.FieldBoxY:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBoxY(v)
		return nil
	case validationitem.FieldBoxWidth:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBoxWidth(v)
		return nil
	case validationitem.FieldBoxHeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBoxHeight(v)
		return nil
	case validationitem.FieldBoxAngle:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBoxAngle(v)
		return nil
	case validationitem.FieldImageIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddImageIndex(v)
		return nil
	}
	return fmt.Errorf("unknown ValidationItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ValidationItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(validationitem.FieldExtractedValue) {
		fields = append(fields, validationitem.FieldExtractedValue)
	}
	if m.FieldCleared(validationitem.FieldBoxX) {
		fields = append(fields, validationitem.FieldBoxX)
	}
	if m.FieldCleared(validationitem.FieldBoxY) {
		fields = append(fields, validationitem.FieldBoxY)
	}
	if m.FieldCleared(validationitem.FieldBoxWidth) {
		fields = append(fields, validationitem.FieldBoxWidth)
	}
	if m.FieldCleared(validationitem.FieldBoxHeight) {
		fields = append(fields, validationitem.FieldBoxHeight)
	}
	if m.FieldCleared(validationitem.FieldBoxAngle) {
		fields = append(fields, validationitem.FieldBoxAngle)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ValidationItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ValidationItemMutation) ClearField(name string) error {
	switch name {
	case validationitem.FieldExtractedValue:
		m.ClearExtractedValue()
		return nil
	case validationitem.FieldBoxX:
		m.ClearBoxX()
		return nil
	case validationitem.FieldBoxY:
		m.ClearBoxY()
		return nil
	case validationitem.FieldBoxWidth:
		m.ClearBoxWidth()
		return nil
	case validationitem.FieldBoxHeight:
		m.ClearBoxHeight()
		return nil
	case validationitem.FieldBoxAngle:
		m.ClearBoxAngle()
		return nil
	}
	return fmt.Errorf("unknown ValidationItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ValidationItemMutation) ResetField(name string) error {
	switch name {
	case validationitem.FieldJobID:
		m.ResetJobID()
		return nil
	case validationitem.FieldPosition:
		m.ResetPosition()
		return nil
	case validationitem.FieldFieldName:
		m.ResetFieldName()
		return nil
	case validationitem.FieldExpectedValue:
		m.ResetExpectedValue()
		return nil
	case validationitem.FieldExtractedValue:
		m.ResetExtractedValue()
		return nil
	case validationitem.FieldComparisonStatus:
		m.ResetComparisonStatus()
		return nil
	case validationitem.FieldComparisonConfidence:
		m.ResetComparisonConfidence()
		return nil
	case validationitem.FieldComparisonReasoning:
		m.ResetComparisonReasoning()
		return nil
	case validationitem.FieldBoxX:
		m.ResetBoxX()
		return nil
	case validationitem.FieldBoxY:
		m.ResetBoxY()
		return nil
	case validationitem.FieldBoxWidth:
		m.ResetBoxWidth()
		return nil
	case validationitem.FieldBoxHeight:
		m.ResetBoxHeight()
		return nil
	case validationitem.FieldBoxAngle:
		m.ResetBoxAngle()
		return nil
	case validationitem.FieldImageIndex:
		m.ResetImageIndex()
		return nil
	case validationitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ValidationItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ValidationItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, validationitem.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ValidationItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case validationitem.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ValidationItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ValidationItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ValidationItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, validationitem.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ValidationItemMutation) EdgeCleared(name string) bool {
	switch name {
	case validationitem.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ValidationItemMutation) ClearEdge(name string) error {
	switch name {
	case validationitem.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown ValidationItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ValidationItemMutation) ResetEdge(name string) error {
	switch name {
	case validationitem.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown ValidationItem edge %s", name)
}

// VerificationJobMutation represents an operation that mutates the VerificationJob nodes in the graph.
type VerificationJobMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	status                *string
	pipeline_variant      *string
	started_at            *time.Time
	finished_at           *time.Time
	error_message         *string
	ocr_text              *string
	classified_json       *json.RawMessage
	appendclassified_json json.RawMessage
	model_name            *string
	prompt_tokens         *int
	addprompt_tokens      *int
	completion_tokens     *int
	addcompletion_tokens  *int
	clearedFields         map[string]struct{}
	label                 *uuid.UUID
	clearedlabel          bool
	items                 map[uuid.UUID]struct{}
	removeditems          map[uuid.UUID]struct{}
	cleareditems          bool
	done                  bool
	oldValue              func(context.Context) (*VerificationJob, error)
	predicates            []predicate.VerificationJob
}

var _ ent.Mutation = (*VerificationJobMutation)(nil)

// verificationjobOption allows management of the mutation configuration using functional options.
type verificationjobOption func(*VerificationJobMutation)

// newVerificationJobMutation creates new mutation for the VerificationJob entity.
func newVerificationJobMutation(c config, op Op, opts ...verificationjobOption) *VerificationJobMutation {
	m := &VerificationJobMutation{
		config:        c,
		op:            op,
		typ:           TypeVerificationJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVerificationJobID sets the ID field of the mutation.
func withVerificationJobID(id uuid.UUID) verificationjobOption {
	return func(m *VerificationJobMutation) {
		var (
			err   error
			once  sync.Once
			value *VerificationJob
		)
		m.oldValue = func(ctx context.Context) (*VerificationJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VerificationJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVerificationJob sets the old VerificationJob of the mutation.
func withVerificationJob(node *VerificationJob) verificationjobOption {
	return func(m *VerificationJobMutation) {
		m.oldValue = func(context.Context) (*VerificationJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VerificationJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VerificationJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of VerificationJob entities.
func (m *VerificationJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VerificationJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VerificationJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VerificationJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLabelID sets the "label_id" field.
func (m *VerificationJobMutation) SetLabelID(u uuid.UUID) {
	m.label = &u
}

// LabelID returns the value of the "label_id" field in the mutation.
func (m *VerificationJobMutation) LabelID() (r uuid.UUID, exists bool) {
	v := m.label
	if v == nil {
		return
	}
	return *v, true
}

// OldLabelID returns the old "label_id" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldLabelID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabelID: %w", err)
	}
	return oldValue.LabelID, nil
}

// ResetLabelID resets all changes to the "label_id" field.
func (m *VerificationJobMutation) ResetLabelID() {
	m.label = nil
}

// SetStatus sets the "status" field.
func (m *VerificationJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *VerificationJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *VerificationJobMutation) ResetStatus() {
	m.status = nil
}

// SetPipelineVariant sets the "pipeline_variant" field.
func (m *VerificationJobMutation) SetPipelineVariant(s string) {
	m.pipeline_variant = &s
}

// PipelineVariant returns the value of the "pipeline_variant" field in the mutation.
func (m *VerificationJobMutation) PipelineVariant() (r string, exists bool) {
	v := m.pipeline_variant
	if v == nil {
		return
	}
	return *v, true
}

// OldPipelineVariant returns the old "pipeline_variant" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldPipelineVariant(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPipelineVariant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPipelineVariant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPipelineVariant: %w", err)
	}
	return oldValue.PipelineVariant, nil
}

// ClearPipelineVariant clears the value of the "pipeline_variant" field.
func (m *VerificationJobMutation) ClearPipelineVariant() {
	m.pipeline_variant = nil
	m.clearedFields[verificationjob.FieldPipelineVariant] = struct{}{}
}

// PipelineVariantCleared returns if the "pipeline_variant" field was cleared in this mutation.
func (m *VerificationJobMutation) PipelineVariantCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldPipelineVariant]
	return ok
}

// ResetPipelineVariant resets all changes to the "pipeline_variant" field.
func (m *VerificationJobMutation) ResetPipelineVariant() {
	m.pipeline_variant = nil
	delete(m.clearedFields, verificationjob.FieldPipelineVariant)
}

// SetStartedAt sets the "started_at" field.
func (m *VerificationJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *VerificationJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *VerificationJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *VerificationJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *VerificationJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *VerificationJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[verificationjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *VerificationJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *VerificationJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, verificationjob.FieldFinishedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *VerificationJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *VerificationJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *VerificationJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[verificationjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *VerificationJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *VerificationJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, verificationjob.FieldErrorMessage)
}

// SetOcrText sets the "ocr_text" field.
func (m *VerificationJobMutation) SetOcrText(s string) {
	m.ocr_text = &s
}

// OcrText returns the value of the "ocr_text" field in the mutation.
func (m *VerificationJobMutation) OcrText() (r string, exists bool) {
	v := m.ocr_text
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrText returns the old "ocr_text" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldOcrText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrText: %w", err)
	}
	return oldValue.OcrText, nil
}

// ClearOcrText clears the value of the "ocr_text" field.
func (m *VerificationJobMutation) ClearOcrText() {
	m.ocr_text = nil
	m.clearedFields[verificationjob.FieldOcrText] = struct{}{}
}

// OcrTextCleared returns if the "ocr_text" field was cleared in this mutation.
func (m *VerificationJobMutation) OcrTextCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldOcrText]
	return ok
}

// ResetOcrText resets all changes to the "ocr_text" field.
func (m *VerificationJobMutation) ResetOcrText() {
	m.ocr_text = nil
	delete(m.clearedFields, verificationjob.FieldOcrText)
}

// SetClassifiedJSON sets the "classified_json" field.
func (m *VerificationJobMutation) SetClassifiedJSON(jm json.RawMessage) {
	m.classified_json = &jm
	m.appendclassified_json = nil
}

// ClassifiedJSON returns the value of the "classified_json" field in the mutation.
func (m *VerificationJobMutation) ClassifiedJSON() (r json.RawMessage, exists bool) {
	v := m.classified_json
	if v == nil {
		return
	}
	return *v, true
}

// OldClassifiedJSON returns the old "classified_json" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldClassifiedJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassifiedJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassifiedJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassifiedJSON: %w", err)
	}
	return oldValue.ClassifiedJSON, nil
}

// AppendClassifiedJSON adds jm to the "classified_json" field.
func (m *VerificationJobMutation) AppendClassifiedJSON(jm json.RawMessage) {
	m.appendclassified_json = append(m.appendclassified_json, jm...)
}

// AppendedClassifiedJSON returns the list of values that were appended to the "classified_json" field in this mutation.
func (m *VerificationJobMutation) AppendedClassifiedJSON() (json.RawMessage, bool) {
	if len(m.appendclassified_json) == 0 {
		return nil, false
	}
	return m.appendclassified_json, true
}

// ClearClassifiedJSON clears the value of the "classified_json" field.
func (m *VerificationJobMutation) ClearClassifiedJSON() {
	m.classified_json = nil
	m.appendclassified_json = nil
	m.clearedFields[verificationjob.FieldClassifiedJSON] = struct{}{}
}

// ClassifiedJSONCleared returns if the "classified_json" field was cleared in this mutation.
func (m *VerificationJobMutation) ClassifiedJSONCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldClassifiedJSON]
	return ok
}

// ResetClassifiedJSON resets all changes to the "classified_json" field.
func (m *VerificationJobMutation) ResetClassifiedJSON() {
	m.classified_json = nil
	m.appendclassified_json = nil
	delete(m.clearedFields, verificationjob.FieldClassifiedJSON)
}

// SetModelName sets the "model_name" field.
func (m *VerificationJobMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *VerificationJobMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldModelName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ClearModelName clears the value of the "model_name" field.
func (m *VerificationJobMutation) ClearModelName() {
	m.model_name = nil
	m.clearedFields[verificationjob.FieldModelName] = struct{}{}
}

// ModelNameCleared returns if the "model_name" field was cleared in this mutation.
func (m *VerificationJobMutation) ModelNameCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldModelName]
	return ok
}

// ResetModelName resets all changes to the "model_name" field.
func (m *VerificationJobMutation) ResetModelName() {
	m.model_name = nil
	delete(m.clearedFields, verificationjob.FieldModelName)
}

// SetPromptTokens sets the "prompt_tokens" field.
func (m *VerificationJobMutation) SetPromptTokens(i int) {
	m.prompt_tokens = &i
	m.addprompt_tokens = nil
}

// PromptTokens returns the value of the "prompt_tokens" field in the mutation.
func (m *VerificationJobMutation) PromptTokens() (r int, exists bool) {
	v := m.prompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptTokens returns the old "prompt_tokens" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldPromptTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptTokens: %w", err)
	}
	return oldValue.PromptTokens, nil
}

// AddPromptTokens adds i to the "prompt_tokens" field.
func (m *VerificationJobMutation) AddPromptTokens(i int) {
	if m.addprompt_tokens != nil {
		*m.addprompt_tokens += i
	} else {
		m.addprompt_tokens = &i
	}
}

// AddedPromptTokens returns the value that was added to the "prompt_tokens" field in this mutation.
func (m *VerificationJobMutation) AddedPromptTokens() (r int, exists bool) {
	v := m.addprompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetPromptTokens resets all changes to the "prompt_tokens" field.
func (m *VerificationJobMutation) ResetPromptTokens() {
	m.prompt_tokens = nil
	m.addprompt_tokens = nil
}

// SetCompletionTokens sets the "completion_tokens" field.
func (m *VerificationJobMutation) SetCompletionTokens(i int) {
	m.completion_tokens = &i
	m.addcompletion_tokens = nil
}

// CompletionTokens returns the value of the "completion_tokens" field in the mutation.
func (m *VerificationJobMutation) CompletionTokens() (r int, exists bool) {
	v := m.completion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionTokens returns the old "completion_tokens" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldCompletionTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionTokens: %w", err)
	}
	return oldValue.CompletionTokens, nil
}

// AddCompletionTokens adds i to the "completion_tokens" field.
func (m *VerificationJobMutation) AddCompletionTokens(i int) {
	if m.addcompletion_tokens != nil {
		*m.addcompletion_tokens += i
	} else {
		m.addcompletion_tokens = &i
	}
}

// AddedCompletionTokens returns the value that was added to the "completion_tokens" field in this mutation.
func (m *VerificationJobMutation) AddedCompletionTokens() (r int, exists bool) {
	v := m.addcompletion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletionTokens resets all changes to the "completion_tokens" field.
func (m *VerificationJobMutation) ResetCompletionTokens() {
	m.completion_tokens = nil
	m.addcompletion_tokens = nil
}

// ClearLabel clears the "label" edge to the Label entity.
func (m *VerificationJobMutation) ClearLabel() {
	m.clearedlabel = true
	m.clearedFields[verificationjob.FieldLabelID] = struct{}{}
}

// LabelCleared reports if the "label" edge to the Label entity was cleared.
func (m *VerificationJobMutation) LabelCleared() bool {
	return m.clearedlabel
}

// LabelIDs returns the "label" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LabelID instead. It exists only for internal usage by the builders.
func (m *VerificationJobMutation) LabelIDs() (ids []uuid.UUID) {
	if id := m.label; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLabel resets all changes to the "label" edge.
func (m *VerificationJobMutation) ResetLabel() {
	m.label = nil
	m.clearedlabel = false
}

// AddItemIDs adds the "items" edge to the ValidationItem entity by ids.
func (m *VerificationJobMutation) AddItemIDs(ids ...uuid.UUID) {
	if m.items == nil {
		m.items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.items[ids[i]] = struct{}{}
	}
}

// ClearItems clears the "items" edge to the ValidationItem entity.
func (m *VerificationJobMutation) ClearItems() {
	m.cleareditems = true
}

// ItemsCleared reports if the "items" edge to the ValidationItem entity was cleared.
func (m *VerificationJobMutation) ItemsCleared() bool {
	return m.cleareditems
}

// RemoveItemIDs removes the "items" edge to the ValidationItem entity by IDs.
func (m *VerificationJobMutation) RemoveItemIDs(ids ...uuid.UUID) {
	if m.removeditems == nil {
		m.removeditems = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.items, ids[i])
		m.removeditems[ids[i]] = struct{}{}
	}
}

// RemovedItems returns the removed IDs of the "items" edge to the ValidationItem entity.
func (m *VerificationJobMutation) RemovedItemsIDs() (ids []uuid.UUID) {
	for id := range m.removeditems {
		ids = append(ids, id)
	}
	return
}

// ItemsIDs returns the "items" edge IDs in the mutation.
func (m *VerificationJobMutation) ItemsIDs() (ids []uuid.UUID) {
	for id := range m.items {
		ids = append(ids, id)
	}
	return
}

// ResetItems resets all changes to the "items" edge.
func (m *VerificationJobMutation) ResetItems() {
	m.items = nil
	m.cleareditems = false
	m.removeditems = nil
}

// Where appends a list predicates to the VerificationJobMutation builder.
func (m *VerificationJobMutation) Where(ps ...predicate.VerificationJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VerificationJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VerificationJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VerificationJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VerificationJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VerificationJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VerificationJob).
func (m *VerificationJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VerificationJobMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.label != nil {
		fields = append(fields, verificationjob.FieldLabelID)
	}
	if m.status != nil {
		fields = append(fields, verificationjob.FieldStatus)
	}
	if m.pipeline_variant != nil {
		fields = append(fields, verificationjob.FieldPipelineVariant)
	}
	if m.started_at != nil {
		fields = append(fields, verificationjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, verificationjob.FieldFinishedAt)
	}
	if m.error_message != nil {
		fields = append(fields, verificationjob.FieldErrorMessage)
	}
	if m.ocr_text != nil {
		fields = append(fields, verificationjob.FieldOcrText)
	}
	if m.classified_json != nil {
		fields = append(fields, verificationjob.FieldClassifiedJSON)
	}
	if m.model_name != nil {
		fields = append(fields, verificationjob.FieldModelName)
	}
	if m.prompt_tokens != nil {
		fields = append(fields, verificationjob.FieldPromptTokens)
	}
	if m.completion_tokens != nil {
		fields = append(fields, verificationjob.FieldCompletionTokens)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VerificationJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case verificationjob.FieldLabelID:
		return m.LabelID()
	case verificationjob.FieldStatus:
		return m.Status()
	case verificationjob.FieldPipelineVariant:
		return m.PipelineVariant()
	case verificationjob.FieldStartedAt:
		return m.StartedAt()
	case verificationjob.FieldFinishedAt:
		return m.FinishedAt()
	case verificationjob.FieldErrorMessage:
		return m.ErrorMessage()
	case verificationjob.FieldOcrText:
		return m.OcrText()
	case verificationjob.FieldClassifiedJSON:
		return m.ClassifiedJSON()
	case verificationjob.FieldModelName:
		return m.ModelName()
	case verificationjob.FieldPromptTokens:
		return m.PromptTokens()
	case verificationjob.FieldCompletionTokens:
		return m.CompletionTokens()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VerificationJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case verificationjob.FieldLabelID:
		return m.OldLabelID(ctx)
	case verificationjob.FieldStatus:
		return m.OldStatus(ctx)
	case verificationjob.FieldPipelineVariant:
		return m.OldPipelineVariant(ctx)
	case verificationjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case verificationjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case verificationjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case verificationjob.FieldOcrText:
		return m.OldOcrText(ctx)
	case verificationjob.FieldClassifiedJSON:
		return m.OldClassifiedJSON(ctx)
	case verificationjob.FieldModelName:
		return m.OldModelName(ctx)
	case verificationjob.FieldPromptTokens:
		return m.OldPromptTokens(ctx)
	case verificationjob.FieldCompletionTokens:
		return m.OldCompletionTokens(ctx)
	}
	return nil, fmt.Errorf("unknown VerificationJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerificationJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case verificationjob.FieldLabelID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabelID(v)
		return nil
	case verificationjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case verificationjob.FieldPipelineVariant:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPipelineVariant(v)
		return nil
	case verificationjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case verificationjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case verificationjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case verificationjob.FieldOcrText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrText(v)
		return nil
	case verificationjob.FieldClassifiedJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassifiedJSON(v)
		return nil
	case verificationjob.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case verificationjob.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptTokens(v)
		return nil
	case verificationjob.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionTokens(v)
		return nil
	}
	return fmt.Errorf("unknown VerificationJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VerificationJobMutation) AddedFields() []string {
	var fields []string
	if m.addprompt_tokens != nil {
		fields = append(fields, verificationjob.FieldPromptTokens)
	}
	if m.addcompletion_tokens != nil {
		fields = append(fields, verificationjob.FieldCompletionTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VerificationJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case verificationjob.FieldPromptTokens:
		return m.AddedPromptTokens()
	case verificationjob.FieldCompletionTokens:
		return m.AddedCompletionTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerificationJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case verificationjob.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPromptTokens(v)
		return nil
	case verificationjob.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletionTokens(v)
		return nil
	}
	return fmt.Errorf("unknown VerificationJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VerificationJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(verificationjob.FieldPipelineVariant) {
		fields = append(fields, verificationjob.FieldPipelineVariant)
	}
	if m.FieldCleared(verificationjob.FieldFinishedAt) {
		fields = append(fields, verificationjob.FieldFinishedAt)
	}
	if m.FieldCleared(verificationjob.FieldErrorMessage) {
		fields = append(fields, verificationjob.FieldErrorMessage)
	}
	if m.FieldCleared(verificationjob.FieldOcrText) {
		fields = append(fields, verificationjob.FieldOcrText)
	}
	if m.FieldCleared(verificationjob.FieldClassifiedJSON) {
		fields = append(fields, verificationjob.FieldClassifiedJSON)
	}
	if m.FieldCleared(verificationjob.FieldModelName) {
		fields = append(fields, verificationjob.FieldModelName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VerificationJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VerificationJobMutation) ClearField(name string) error {
	switch name {
	case verificationjob.FieldPipelineVariant:
		m.ClearPipelineVariant()
		return nil
	case verificationjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case verificationjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case verificationjob.FieldOcrText:
		m.ClearOcrText()
		return nil
	case verificationjob.FieldClassifiedJSON:
		m.ClearClassifiedJSON()
		return nil
	case verificationjob.FieldModelName:
		m.ClearModelName()
		return nil
	}
	return fmt.Errorf("unknown VerificationJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VerificationJobMutation) ResetField(name string) error {
	switch name {
	case verificationjob.FieldLabelID:
		m.ResetLabelID()
		return nil
	case verificationjob.FieldStatus:
		m.ResetStatus()
		return nil
	case verificationjob.FieldPipelineVariant:
		m.ResetPipelineVariant()
		return nil
	case verificationjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case verificationjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case verificationjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case verificationjob.FieldOcrText:
		m.ResetOcrText()
		return nil
	case verificationjob.FieldClassifiedJSON:
		m.ResetClassifiedJSON()
		return nil
	case verificationjob.FieldModelName:
		m.ResetModelName()
		return nil
	case verificationjob.FieldPromptTokens:
		m.ResetPromptTokens()
		return nil
	case verificationjob.FieldCompletionTokens:
		m.ResetCompletionTokens()
		return nil
	}
	return fmt.Errorf("unknown VerificationJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VerificationJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.label != nil {
		edges = append(edges, verificationjob.EdgeLabel)
	}
	if m.items != nil {
		edges = append(edges, verificationjob.EdgeItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VerificationJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case verificationjob.EdgeLabel:
		if id := m.label; id != nil {
			return []ent.Value{*id}
		}
	case verificationjob.EdgeItems:
		ids := make([]ent.Value, 0, len(m.items))
		for id := range m.items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VerificationJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeditems != nil {
		edges = append(edges, verificationjob.EdgeItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VerificationJobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case verificationjob.EdgeItems:
		ids := make([]ent.Value, 0, len(m.removeditems))
		for id := range m.removeditems {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VerificationJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedlabel {
		edges = append(edges, verificationjob.EdgeLabel)
	}
	if m.cleareditems {
		edges = append(edges, verificationjob.EdgeItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VerificationJobMutation) EdgeCleared(name string) bool {
	switch name {
	case verificationjob.EdgeLabel:
		return m.clearedlabel
	case verificationjob.EdgeItems:
		return m.cleareditems
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VerificationJobMutation) ClearEdge(name string) error {
	switch name {
	case verificationjob.EdgeLabel:
		m.ClearLabel()
		return nil
	}
	return fmt.Errorf("unknown VerificationJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VerificationJobMutation) ResetEdge(name string) error {
	switch name {
	case verificationjob.EdgeLabel:
		m.ResetLabel()
		return nil
	case verificationjob.EdgeItems:
		m.ResetItems()
		return nil
	}
	return fmt.Errorf("unknown VerificationJob edge %s", name)
}
