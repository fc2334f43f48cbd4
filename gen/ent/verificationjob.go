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
	"github.com/labelcheck/labelcheck/gen/ent/verificationjob"
)

// VerificationJob is the model entity for the VerificationJob schema.
type VerificationJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// LabelID holds the value of the "label_id" field.
	LabelID uuid.UUID `json:"label_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// PipelineVariant holds the value of the "pipeline_variant" field.
	PipelineVariant *string `json:"pipeline_variant,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// OcrText holds the value of the "ocr_text" field.
	OcrText *string `json:"ocr_text,omitempty"`
	// ClassifiedJSON holds the value of the "classified_json" field.
	ClassifiedJSON json.RawMessage `json:"classified_json,omitempty"`
	// ModelName holds the value of the "model_name" field.
	ModelName *string `json:"model_name,omitempty"`
	// PromptTokens holds the value of the "prompt_tokens" field.
	PromptTokens int `json:"prompt_tokens,omitempty"`
	// CompletionTokens holds the value of the "completion_tokens" field.
	CompletionTokens int `json:"completion_tokens,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VerificationJobQuery when eager-loading is set.
	Edges        VerificationJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VerificationJobEdges holds the relations/edges for other nodes in the graph.
type VerificationJobEdges struct {
	// Label holds the value of the label edge.
	Label *Label `json:"label,omitempty"`
	// Items holds the value of the items edge.
	Items []*ValidationItem `json:"items,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// LabelOrErr returns the Label value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VerificationJobEdges) LabelOrErr() (*Label, error) {
	if e.Label != nil {
		return e.Label, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: label.Label}
	}
	return nil, &NotLoadedError{edge: "label"}
}

// ItemsOrErr returns the Items value or an error if the edge
// was not loaded in eager-loading.
func (e VerificationJobEdges) ItemsOrErr() ([]*ValidationItem, error) {
	if e.loadedTypes[1] {
		return e.Items, nil
	}
	return nil, &NotLoadedError{edge: "items"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VerificationJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case verificationjob.FieldClassifiedJSON:
			values[i] = new([]byte)
		case verificationjob.FieldPromptTokens, verificationjob.FieldCompletionTokens:
			values[i] = new(sql.NullInt64)
		case verificationjob.FieldStatus, verificationjob.FieldPipelineVariant, verificationjob.FieldErrorMessage, verificationjob.FieldOcrText, verificationjob.FieldModelName:
			values[i] = new(sql.NullString)
		case verificationjob.FieldStartedAt, verificationjob.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case verificationjob.FieldID, verificationjob.FieldLabelID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VerificationJob fields.
func (_m *VerificationJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case verificationjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case verificationjob.FieldLabelID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field label_id", values[i])
			} else if value != nil {
				_m.LabelID = *value
			}
		case verificationjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case verificationjob.FieldPipelineVariant:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pipeline_variant", values[i])
			} else if value.Valid {
				_m.PipelineVariant = new(string)
				*_m.PipelineVariant = value.String
			}
		case verificationjob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case verificationjob.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case verificationjob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case verificationjob.FieldOcrText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ocr_text", values[i])
			} else if value.Valid {
				_m.OcrText = new(string)
				*_m.OcrText = value.String
			}
		case verificationjob.FieldClassifiedJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field classified_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ClassifiedJSON); err != nil {
					return fmt.Errorf("unmarshal field classified_json: %w", err)
				}
			}
		case verificationjob.FieldModelName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_name", values[i])
			} else if value.Valid {
				_m.ModelName = new(string)
				*_m.ModelName = value.String
			}
		case verificationjob.FieldPromptTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_tokens", values[i])
			} else if value.Valid {
				_m.PromptTokens = int(value.Int64)
			}
		case verificationjob.FieldCompletionTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completion_tokens", values[i])
			} else if value.Valid {
				_m.CompletionTokens = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VerificationJob.
// This includes values selected through modifiers, order, etc.
func (_m *VerificationJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLabel queries the "label" edge of the VerificationJob entity.
func (_m *VerificationJob) QueryLabel() *LabelQuery {
	return NewVerificationJobClient(_m.config).QueryLabel(_m)
}

// QueryItems queries the "items" edge of the VerificationJob entity.
func (_m *VerificationJob) QueryItems() *ValidationItemQuery {
	return NewVerificationJobClient(_m.config).QueryItems(_m)
}

// Update returns a builder for updating this VerificationJob.
// Note that you need to call VerificationJob.Unwrap() before calling this method if this VerificationJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VerificationJob) Update() *VerificationJobUpdateOne {
	return NewVerificationJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VerificationJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VerificationJob) Unwrap() *VerificationJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VerificationJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VerificationJob) String() string {
	var builder strings.Builder
	builder.WriteString("VerificationJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("label_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LabelID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.PipelineVariant; v != nil {
		builder.WriteString("pipeline_variant=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.OcrText; v != nil {
		builder.WriteString("ocr_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("classified_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClassifiedJSON))
	builder.WriteString(", ")
	if v := _m.ModelName; v != nil {
		builder.WriteString("model_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("prompt_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.PromptTokens))
	builder.WriteString(", ")
	builder.WriteString("completion_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletionTokens))
	builder.WriteByte(')')
	return builder.String()
}

// VerificationJobs is a parsable slice of VerificationJob.
type VerificationJobs []*VerificationJob
