// Code generated by ent, DO NOT EDIT.

package validationitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the validationitem type in the database.
	Label = "validation_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldFieldName holds the string denoting the field_name field in the database.
	FieldFieldName = "field_name"
	// FieldExpectedValue holds the string denoting the expected_value field in the database.
	FieldExpectedValue = "expected_value"
	// FieldExtractedValue holds the string denoting the extracted_value field in the database.
	FieldExtractedValue = "extracted_value"
	// FieldComparisonStatus holds the string denoting the comparison_status field in the database.
	FieldComparisonStatus = "comparison_status"
	// FieldComparisonConfidence holds the string denoting the comparison_confidence field in the database.
	FieldComparisonConfidence = "comparison_confidence"
	// FieldComparisonReasoning holds the string denoting the comparison_reasoning field in the database.
	FieldComparisonReasoning = "comparison_reasoning"
	// FieldBoxX holds the string denoting the box_x field in the database.
	FieldBoxX = "box_x"
	// FieldBoxY holds the string denoting the box_y field in the database.
	FieldBoxY = "box_y"
	// FieldBoxWidth holds the string denoting the box_width field in the database.
	FieldBoxWidth = "box_width"
	// FieldBoxHeight holds the string denoting the box_height field in the database.
	FieldBoxHeight = "box_height"
	// FieldBoxAngle holds the string denoting the box_angle field in the database.
	FieldBoxAngle = "box_angle"
	// FieldImageIndex holds the string denoting the image_index field in the database.
	FieldImageIndex = "image_index"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// Table holds the table name of the validationitem in the database.
	Table = "validation_items"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "validation_items"
	// JobInverseTable is the table name for the VerificationJob entity.
	// It exists in this package in order to avoid circular dependency with the "verificationjob" package.
	JobInverseTable = "verification_job"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
)

// Columns holds all SQL columns for validationitem fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldPosition,
	FieldFieldName,
	FieldExpectedValue,
	FieldExtractedValue,
	FieldComparisonStatus,
	FieldComparisonConfidence,
	FieldComparisonReasoning,
	FieldBoxX,
	FieldBoxY,
	FieldBoxWidth,
	FieldBoxHeight,
	FieldBoxAngle,
	FieldImageIndex,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// FieldNameValidator is a validator for the "field_name" field. It is called by the builders before save.
	FieldNameValidator func(string) error
	// ComparisonStatusValidator is a validator for the "comparison_status" field. It is called by the builders before save.
	ComparisonStatusValidator func(string) error
	// DefaultImageIndex holds the default value on creation for the "image_index" field.
	DefaultImageIndex int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ValidationItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByFieldName orders the results by the field_name field.
func ByFieldName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFieldName, opts...).ToFunc()
}

// ByExpectedValue orders the results by the expected_value field.
func ByExpectedValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpectedValue, opts...).ToFunc()
}

// ByExtractedValue orders the results by the extracted_value field.
func ByExtractedValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedValue, opts...).ToFunc()
}

// ByComparisonStatus orders the results by the comparison_status field.
func ByComparisonStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComparisonStatus, opts...).ToFunc()
}

// ByComparisonConfidence orders the results by the comparison_confidence field.
func ByComparisonConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComparisonConfidence, opts...).ToFunc()
}

// ByComparisonReasoning orders the results by the comparison_reasoning field.
func ByComparisonReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComparisonReasoning, opts...).ToFunc()
}

// ByBoxX orders the results by the box_x field.
func ByBoxX(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBoxX, opts...).ToFunc()
}

// ByBoxY orders the results by the box_y field.
func ByBoxY(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBoxY, opts...).ToFunc()
}

// ByBoxWidth orders the results by the box_width field.
func ByBoxWidth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBoxWidth, opts...).ToFunc()
}

// ByBoxHeight orders the results by the box_height field.
func ByBoxHeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBoxHeight, opts...).ToFunc()
}

// ByBoxAngle orders the results by the box_angle field.
func ByBoxAngle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBoxAngle, opts...).ToFunc()
}

// ByImageIndex orders the results by the image_index field.
func ByImageIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImageIndex, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
	)
}
