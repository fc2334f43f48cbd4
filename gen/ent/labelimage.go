// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/labelcheck/labelcheck/gen/ent/label"
	"github.com/labelcheck/labelcheck/gen/ent/labelimage"
)

// LabelImage is the model entity for the LabelImage schema.
type LabelImage struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// LabelID holds the value of the "label_id" field.
	LabelID uuid.UUID `json:"label_id,omitempty"`
	// Position holds the value of the "position" field.
	Position int `json:"position,omitempty"`
	// SourcePath holds the value of the "source_path" field.
	SourcePath string `json:"source_path,omitempty"`
	// Role holds the value of the "role" field.
	Role *string `json:"role,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash []byte `json:"content_hash,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LabelImageQuery when eager-loading is set.
	Edges        LabelImageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LabelImageEdges holds the relations/edges for other nodes in the graph.
type LabelImageEdges struct {
	// Label holds the value of the label edge.
	Label *Label `json:"label,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// LabelOrErr returns the Label value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LabelImageEdges) LabelOrErr() (*Label, error) {
	if e.Label != nil {
		return e.Label, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: label.Label}
	}
	return nil, &NotLoadedError{edge: "label"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LabelImage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case labelimage.FieldContentHash:
			values[i] = new([]byte)
		case labelimage.FieldPosition:
			values[i] = new(sql.NullInt64)
		case labelimage.FieldSourcePath, labelimage.FieldRole:
			values[i] = new(sql.NullString)
		case labelimage.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case labelimage.FieldID, labelimage.FieldLabelID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LabelImage fields.
func (_m *LabelImage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case labelimage.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case labelimage.FieldLabelID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field label_id", values[i])
			} else if value != nil {
				_m.LabelID = *value
			}
		case labelimage.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case labelimage.FieldSourcePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_path", values[i])
			} else if value.Valid {
				_m.SourcePath = value.String
			}
		case labelimage.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = new(string)
				*_m.Role = value.String
			}
		case labelimage.FieldContentHash:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value != nil {
				_m.ContentHash = *value
			}
		case labelimage.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the LabelImage.
// This includes values selected through modifiers, order, etc.
func (_m *LabelImage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLabel queries the "label" edge of the LabelImage entity.
func (_m *LabelImage) QueryLabel() *LabelQuery {
	return NewLabelImageClient(_m.config).QueryLabel(_m)
}

// Update returns a builder for updating this LabelImage.
// Note that you need to call LabelImage.Unwrap() before calling this method if this LabelImage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LabelImage) Update() *LabelImageUpdateOne {
	return NewLabelImageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LabelImage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LabelImage) Unwrap() *LabelImage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LabelImage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LabelImage) String() string {
	var builder strings.Builder
	builder.WriteString("LabelImage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("label_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LabelID))
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("source_path=")
	builder.WriteString(_m.SourcePath)
	builder.WriteString(", ")
	if v := _m.Role; v != nil {
		builder.WriteString("role=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentHash))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LabelImages is a parsable slice of LabelImage.
type LabelImages []*LabelImage
