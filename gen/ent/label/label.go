// Code generated by ent, DO NOT EDIT.

package label

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the label type in the database.
	Label = "label"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCorrectionDeadline holds the string denoting the correction_deadline field in the database.
	FieldCorrectionDeadline = "correction_deadline"
	// FieldBeverageType holds the string denoting the beverage_type field in the database.
	FieldBeverageType = "beverage_type"
	// FieldContainerMl holds the string denoting the container_ml field in the database.
	FieldContainerMl = "container_ml"
	// FieldApplicationValues holds the string denoting the application_values field in the database.
	FieldApplicationValues = "application_values"
	// FieldStatusReasoning holds the string denoting the status_reasoning field in the database.
	FieldStatusReasoning = "status_reasoning"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeImages holds the string denoting the images edge name in mutations.
	EdgeImages = "images"
	// EdgeJobs holds the string denoting the jobs edge name in mutations.
	EdgeJobs = "jobs"
	// Table holds the table name of the label in the database.
	Table = "labels"
	// ImagesTable is the table that holds the images relation/edge.
	ImagesTable = "label_images"
	// ImagesInverseTable is the table name for the LabelImage entity.
	// It exists in this package in order to avoid circular dependency with the "labelimage" package.
	ImagesInverseTable = "label_images"
	// ImagesColumn is the table column denoting the images relation/edge.
	ImagesColumn = "label_id"
	// JobsTable is the table that holds the jobs relation/edge.
	JobsTable = "verification_job"
	// JobsInverseTable is the table name for the VerificationJob entity.
	// It exists in this package in order to avoid circular dependency with the "verificationjob" package.
	JobsInverseTable = "verification_job"
	// JobsColumn is the table column denoting the jobs relation/edge.
	JobsColumn = "label_id"
)

// Columns holds all SQL columns for label fields.
var Columns = []string{
	FieldID,
	FieldStatus,
	FieldCorrectionDeadline,
	FieldBeverageType,
	FieldContainerMl,
	FieldApplicationValues,
	FieldStatusReasoning,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultBeverageType holds the default value on creation for the "beverage_type" field.
	DefaultBeverageType string
	// DefaultContainerMl holds the default value on creation for the "container_ml" field.
	DefaultContainerMl int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Label queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCorrectionDeadline orders the results by the correction_deadline field.
func ByCorrectionDeadline(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectionDeadline, opts...).ToFunc()
}

// ByBeverageType orders the results by the beverage_type field.
func ByBeverageType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBeverageType, opts...).ToFunc()
}

// ByContainerMl orders the results by the container_ml field.
func ByContainerMl(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContainerMl, opts...).ToFunc()
}

// ByStatusReasoning orders the results by the status_reasoning field.
func ByStatusReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatusReasoning, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByImagesCount orders the results by images count.
func ByImagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newImagesStep(), opts...)
	}
}

// ByImages orders the results by images terms.
func ByImages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newImagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByJobsCount orders the results by jobs count.
func ByJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newJobsStep(), opts...)
	}
}

// ByJobs orders the results by jobs terms.
func ByJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newImagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ImagesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ImagesTable, ImagesColumn),
	)
}
func newJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
	)
}
