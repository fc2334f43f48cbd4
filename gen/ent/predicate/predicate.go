// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Label is the predicate function for label builders.
type Label func(*sql.Selector)

// LabelImage is the predicate function for labelimage builders.
type LabelImage func(*sql.Selector)

// ValidationItem is the predicate function for validationitem builders.
type ValidationItem func(*sql.Selector)

// VerificationJob is the predicate function for verificationjob builders.
type VerificationJob func(*sql.Selector)
