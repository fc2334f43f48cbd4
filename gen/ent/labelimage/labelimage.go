// Code generated by ent, DO NOT EDIT.

package labelimage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the labelimage type in the database.
	Label = "label_image"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLabelID holds the string denoting the label_id field in the database.
	FieldLabelID = "label_id"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldSourcePath holds the string denoting the source_path field in the database.
	FieldSourcePath = "source_path"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldContentHash holds the string denoting the content_hash field in the database.
	FieldContentHash = "content_hash"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeLabel holds the string denoting the label edge name in mutations.
	EdgeLabel = "label"
	// Table holds the table name of the labelimage in the database.
	Table = "label_images"
	// LabelTable is the table that holds the label relation/edge.
	LabelTable = "label_images"
	// LabelInverseTable is the table name for the Label entity.
	// It exists in this package in order to avoid circular dependency with the "label" package.
	LabelInverseTable = "labels"
	// LabelColumn is the table column denoting the label relation/edge.
	LabelColumn = "label_id"
)

// Columns holds all SQL columns for labelimage fields.
var Columns = []string{
	FieldID,
	FieldLabelID,
	FieldPosition,
	FieldSourcePath,
	FieldRole,
	FieldContentHash,
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
	// SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	SourcePathValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the LabelImage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLabelID orders the results by the label_id field.
func ByLabelID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabelID, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// BySourcePath orders the results by the source_path field.
func BySourcePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourcePath, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByLabelField orders the results by label field.
func ByLabelField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLabelStep(), sql.OrderByField(field, opts...))
	}
}
func newLabelStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LabelInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, LabelTable, LabelColumn),
	)
}
