// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/labelcheck/labelcheck/gen/ent/validationitem"
	"github.com/labelcheck/labelcheck/gen/ent/verificationjob"
)

// ValidationItem is the model entity for the ValidationItem schema.
type ValidationItem struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID uuid.UUID `json:"job_id,omitempty"`
	// Position holds the value of the "position" field.
	Position int `json:"position,omitempty"`
	// FieldName holds the value of the "field_name" field.
	FieldName string `json:"field_name,omitempty"`
	// ExpectedValue holds the value of the "expected_value" field.
	ExpectedValue string `json:"expected_value,omitempty"`
	// ExtractedValue holds the value of the "extracted_value" field.
	ExtractedValue *string `json:"extracted_value,omitempty"`
	// ComparisonStatus holds the value of the "comparison_status" field.
	ComparisonStatus string `json:"comparison_status,omitempty"`
	// ComparisonConfidence holds the value of the "comparison_confidence" field.
	ComparisonConfidence int `json:"comparison_confidence,omitempty"`
	// ComparisonReasoning holds the value of the "comparison_reasoning" field.
	ComparisonReasoning string `json:"comparison_reasoning,omitempty"`
	// BoxX holds the value of the "box_x" field.
	BoxX *float64 `json:"box_x,omitempty"`
	// BoxY holds the value of the "box_y" field.
	BoxY *float64 `json:"box_y,omitempty"`
	// BoxWidth holds the value of the "box_width" field.
	BoxWidth *float64 `json:"box_width,omitempty"`
	// BoxHeight holds the value of the "box_height" field.
	BoxHeight *float64 `json:"box_height,omitempty"`
	// BoxAngle holds the value of the "box_angle" field.
	BoxAngle *int `json:"box_angle,omitempty"`
	// ImageIndex holds the value of the "image_index" field.
	ImageIndex int `json:"image_index,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ValidationItemQuery when eager-loading is set.
	Edges        ValidationItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ValidationItemEdges holds the relations/edges for other nodes in the graph.
type ValidationItemEdges struct {
	// Job holds the value of the job edge.
	Job *VerificationJob `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ValidationItemEdges) JobOrErr() (*VerificationJob, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: verificationjob.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ValidationItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case validationitem.FieldBoxX, validationitem.FieldBoxY, validationitem.FieldBoxWidth, validationitem.FieldBoxHeight:
			values[i] = new(sql.NullFloat64)
		case validationitem.FieldPosition, validationitem.FieldComparisonConfidence, validationitem.FieldBoxAngle, validationitem.FieldImageIndex:
			values[i] = new(sql.NullInt64)
		case validationitem.FieldFieldName, validationitem.FieldExpectedValue, validationitem.FieldExtractedValue, validationitem.FieldComparisonStatus, validationitem.FieldComparisonReasoning:
			values[i] = new(sql.NullString)
		case validationitem.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case validationitem.FieldID, validationitem.FieldJobID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ValidationItem fields.
func (_m *ValidationItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case validationitem.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case validationitem.FieldJobID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value != nil {
				_m.JobID = *value
			}
		case validationitem.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case validationitem.FieldFieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field field_name", values[i])
			} else if value.Valid {
				_m.FieldName = value.String
			}
		case validationitem.FieldExpectedValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field expected_value", values[i])
			} else if value.Valid {
				_m.ExpectedValue = value.String
			}
		case validationitem.FieldExtractedValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_value", values[i])
			} else if value.Valid {
				_m.ExtractedValue = new(string)
				*_m.ExtractedValue = value.String
			}
		case validationitem.FieldComparisonStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field comparison_status", values[i])
			} else if value.Valid {
				_m.ComparisonStatus = value.String
			}
		case validationitem.FieldComparisonConfidence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field comparison_confidence", values[i])
			} else if value.Valid {
				_m.ComparisonConfidence = int(value.Int64)
			}
		case validationitem.FieldComparisonReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field comparison_reasoning", values[i])
			} else if value.Valid {
				_m.ComparisonReasoning = value.String
			}
		case validationitem.FieldBoxX:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field box_x", values[i])
			} else if value.Valid {
				_m.BoxX = new(float64)
				*_m.BoxX = value.Float64
			}
		case validationitem.FieldBoxY:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field box_y", values[i])
			} else if value.Valid {
				_m.BoxY = new(float64)
				*_m.BoxY = value.Float64
			}
		case validationitem.FieldBoxWidth:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field box_width", values[i])
			} else if value.Valid {
				_m.BoxWidth = new(float64)
				*_m.BoxWidth = value.Float64
			}
		case validationitem.FieldBoxHeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field box_height", values[i])
			} else if value.Valid {
				_m.BoxHeight = new(float64)
				*_m.BoxHeight = value.Float64
			}
		case validationitem.FieldBoxAngle:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field box_angle", values[i])
			} else if value.Valid {
				_m.BoxAngle = new(int)
				*_m.BoxAngle = int(value.Int64)
			}
		case validationitem.FieldImageIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field image_index", values[i])
			} else if value.Valid {
				_m.ImageIndex = int(value.Int64)
			}
		case validationitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ValidationItem.
// This includes values selected through modifiers, order, etc.
func (_m *ValidationItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the ValidationItem entity.
func (_m *ValidationItem) QueryJob() *VerificationJobQuery {
	return NewValidationItemClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this ValidationItem.
// Note that you need to call ValidationItem.Unwrap() before calling this method if this ValidationItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ValidationItem) Update() *ValidationItemUpdateOne {
	return NewValidationItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ValidationItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ValidationItem) Unwrap() *ValidationItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ValidationItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ValidationItem) String() string {
	var builder strings.Builder
	builder.WriteString("ValidationItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.JobID))
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("field_name=")
	builder.WriteString(_m.FieldName)
	builder.WriteString(", ")
	builder.WriteString("expected_value=")
	builder.WriteString(_m.ExpectedValue)
	builder.WriteString(", ")
	if v := _m.ExtractedValue; v != nil {
		builder.WriteString("extracted_value=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("comparison_status=")
	builder.WriteString(_m.ComparisonStatus)
	builder.WriteString(", ")
	builder.WriteString("comparison_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.ComparisonConfidence))
	builder.WriteString(", ")
	builder.WriteString("comparison_reasoning=")
	builder.WriteString(_m.ComparisonReasoning)
	builder.WriteString(", ")
	if v := _m.BoxX; v != nil {
		builder.WriteString("box_x=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.BoxY; v != nil {
		builder.WriteString("box_y=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.BoxWidth; v != nil {
		builder.WriteString("box_width=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.BoxHeight; v != nil {
		builder.WriteString("box_height=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.BoxAngle; v != nil {
		builder.WriteString("box_angle=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("image_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.ImageIndex))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ValidationItems is a parsable slice of ValidationItem.
type ValidationItems []*ValidationItem
