// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/labelcheck/labelcheck/gen/ent/label"
)

// Label is the model entity for the Label schema.
type Label struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// CorrectionDeadline holds the value of the "correction_deadline" field.
	CorrectionDeadline *time.Time `json:"correction_deadline,omitempty"`
	// BeverageType holds the value of the "beverage_type" field.
	BeverageType string `json:"beverage_type,omitempty"`
	// ContainerMl holds the value of the "container_ml" field.
	ContainerMl int `json:"container_ml,omitempty"`
	// ApplicationValues holds the value of the "application_values" field.
	ApplicationValues map[string]string `json:"application_values,omitempty"`
	// StatusReasoning holds the value of the "status_reasoning" field.
	StatusReasoning *string `json:"status_reasoning,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LabelQuery when eager-loading is set.
	Edges        LabelEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LabelEdges holds the relations/edges for other nodes in the graph.
type LabelEdges struct {
	// Images holds the value of the images edge.
	Images []*LabelImage `json:"images,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*VerificationJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ImagesOrErr returns the Images value or an error if the edge
// was not loaded in eager-loading.
func (e LabelEdges) ImagesOrErr() ([]*LabelImage, error) {
	if e.loadedTypes[0] {
		return e.Images, nil
	}
	return nil, &NotLoadedError{edge: "images"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e LabelEdges) JobsOrErr() ([]*VerificationJob, error) {
	if e.loadedTypes[1] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Label) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case label.FieldApplicationValues:
			values[i] = new([]byte)
		case label.FieldContainerMl:
			values[i] = new(sql.NullInt64)
		case label.FieldStatus, label.FieldBeverageType, label.FieldStatusReasoning:
			values[i] = new(sql.NullString)
		case label.FieldCorrectionDeadline, label.FieldCreatedAt, label.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case label.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Label fields.
func (_m *Label) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case label.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case label.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case label.FieldCorrectionDeadline:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field correction_deadline", values[i])
			} else if value.Valid {
				_m.CorrectionDeadline = new(time.Time)
				*_m.CorrectionDeadline = value.Time
			}
		case label.FieldBeverageType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field beverage_type", values[i])
			} else if value.Valid {
				_m.BeverageType = value.String
			}
		case label.FieldContainerMl:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field container_ml", values[i])
			} else if value.Valid {
				_m.ContainerMl = int(value.Int64)
			}
		case label.FieldApplicationValues:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field application_values", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ApplicationValues); err != nil {
					return fmt.Errorf("unmarshal field application_values: %w", err)
				}
			}
		case label.FieldStatusReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status_reasoning", values[i])
			} else if value.Valid {
				_m.StatusReasoning = new(string)
				*_m.StatusReasoning = value.String
			}
		case label.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case label.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Label.
// This includes values selected through modifiers, order, etc.
func (_m *Label) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryImages queries the "images" edge of the Label entity.
func (_m *Label) QueryImages() *LabelImageQuery {
	return NewLabelClient(_m.config).QueryImages(_m)
}

// QueryJobs queries the "jobs" edge of the Label entity.
func (_m *Label) QueryJobs() *VerificationJobQuery {
	return NewLabelClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this Label.
// Note that you need to call Label.Unwrap() before calling this method if this Label
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Label) Update() *LabelUpdateOne {
	return NewLabelClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Label entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Label) Unwrap() *Label {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Label is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Label) String() string {
	var builder strings.Builder
	builder.WriteString("Label(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.CorrectionDeadline; v != nil {
		builder.WriteString("correction_deadline=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("beverage_type=")
	builder.WriteString(_m.BeverageType)
	builder.WriteString(", ")
	builder.WriteString("container_ml=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContainerMl))
	builder.WriteString(", ")
	builder.WriteString("application_values=")
	builder.WriteString(fmt.Sprintf("%v", _m.ApplicationValues))
	builder.WriteString(", ")
	if v := _m.StatusReasoning; v != nil {
		builder.WriteString("status_reasoning=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Labels is a parsable slice of Label.
type Labels []*Label
