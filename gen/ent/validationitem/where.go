// Code generated by ent, DO NOT EDIT.

package validationitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/labelcheck/labelcheck/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldJobID, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldPosition, v))
}

// FieldName applies equality check predicate on the "field_name" field. It's identical to FieldNameEQ.
func FieldName(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldFieldName, v))
}

// ExpectedValue applies equality check predicate on the "expected_value" field. It's identical to ExpectedValueEQ.
func ExpectedValue(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldExpectedValue, v))
}

// ExtractedValue applies equality check predicate on the "extracted_value" field. It's identical to ExtractedValueEQ.
func ExtractedValue(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldExtractedValue, v))
}

// ComparisonStatus applies equality check predicate on the "comparison_status" field. It's identical to ComparisonStatusEQ.
func ComparisonStatus(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldComparisonStatus, v))
}

// ComparisonConfidence applies equality check predicate on the "comparison_confidence" field. It's identical to ComparisonConfidenceEQ.
func ComparisonConfidence(v int) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldComparisonConfidence, v))
}

// ComparisonReasoning applies equality check predicate on the "comparison_reasoning" field. It's identical to ComparisonReasoningEQ.
func ComparisonReasoning(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldComparisonReasoning, v))
}

// BoxX applies equality check predicate on the "box_x" field. It's identical to BoxXEQ.
func BoxX(v float64) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldBoxX, v))
}

// BoxY applies equality check predicate on the "box_y" field. It's identical to BoxYEQ.
func BoxY(v float64) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldBoxY, v))
}

// BoxWidth applies equality check predicate on the "box_width" field. It's identical to BoxWidthEQ.
func BoxWidth(v float64) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldBoxWidth, v))
}

// BoxHeight applies equality check predicate on the "box_height" field. It's identical to BoxHeightEQ.
func BoxHeight(v float64) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldBoxHeight, v))
}

// BoxAngle applies equality check predicate on the "box_angle" field. It's identical to BoxAngleEQ.
func BoxAngle(v int) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldBoxAngle, v))
}

// ImageIndex applies equality check predicate on the "image_index" field. It's identical to ImageIndexEQ.
func ImageIndex(v int) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldImageIndex, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldCreatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNotIn(FieldJobID, vs...))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLTE(FieldPosition, v))
}

// FieldNameEQ applies the EQ predicate on the "field_name" field.
func FieldNameEQ(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldFieldName, v))
}

// FieldNameNEQ applies the NEQ predicate on the "field_name" field.
func FieldNameNEQ(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNEQ(FieldFieldName, v))
}

// FieldNameIn applies the In predicate on the "field_name" field.
func FieldNameIn(vs ...string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldIn(FieldFieldName, vs...))
}

// FieldNameNotIn applies the NotIn predicate on the "field_name" field.
func FieldNameNotIn(vs ...string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNotIn(FieldFieldName, vs...))
}

// FieldNameGT applies the GT predicate on the "field_name" field.
func FieldNameGT(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGT(FieldFieldName, v))
}

// FieldNameGTE applies the GTE predicate on the "field_name" field.
func FieldNameGTE(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGTE(FieldFieldName, v))
}

// FieldNameLT applies the LT predicate on the "field_name" field.
func FieldNameLT(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLT(FieldFieldName, v))
}

// FieldNameLTE applies the LTE predicate on the "field_name" field.
func FieldNameLTE(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLTE(FieldFieldName, v))
}

// FieldNameContains applies the Contains predicate on the "field_name" field.
func FieldNameContains(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldContains(FieldFieldName, v))
}

// FieldNameHasPrefix applies the HasPrefix predicate on the "field_name" field.
func FieldNameHasPrefix(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldHasPrefix(FieldFieldName, v))
}

// FieldNameHasSuffix applies the HasSuffix predicate on the "field_name" field.
func FieldNameHasSuffix(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldHasSuffix(FieldFieldName, v))
}

// FieldNameEqualFold applies the EqualFold predicate on the "field_name" field.
func FieldNameEqualFold(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEqualFold(FieldFieldName, v))
}

// FieldNameContainsFold applies the ContainsFold predicate on the "field_name" field.
func FieldNameContainsFold(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldContainsFold(FieldFieldName, v))
}

// ExpectedValueEQ applies the EQ predicate on the "expected_value" field.
func ExpectedValueEQ(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldExpectedValue, v))
}

// ExpectedValueNEQ applies the NEQ predicate on the "expected_value" field.
func ExpectedValueNEQ(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNEQ(FieldExpectedValue, v))
}

// ExpectedValueIn applies the In predicate on the "expected_value" field.
func ExpectedValueIn(vs ...string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldIn(FieldExpectedValue, vs...))
}

// ExpectedValueNotIn applies the NotIn predicate on the "expected_value" field.
func ExpectedValueNotIn(vs ...string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNotIn(FieldExpectedValue, vs...))
}

// ExpectedValueGT applies the GT predicate on the "expected_value" field.
func ExpectedValueGT(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGT(FieldExpectedValue, v))
}

// ExpectedValueGTE applies the GTE predicate on the "expected_value" field.
func ExpectedValueGTE(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGTE(FieldExpectedValue, v))
}

// ExpectedValueLT applies the LT predicate on the "expected_value" field.
func ExpectedValueLT(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLT(FieldExpectedValue, v))
}

// ExpectedValueLTE applies the LTE predicate on the "expected_value" field.
func ExpectedValueLTE(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLTE(FieldExpectedValue, v))
}

// ExpectedValueContains applies the Contains predicate on the "expected_value" field.
func ExpectedValueContains(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldContains(FieldExpectedValue, v))
}

// ExpectedValueHasPrefix applies the HasPrefix predicate on the "expected_value" field.
func ExpectedValueHasPrefix(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldHasPrefix(FieldExpectedValue, v))
}

// ExpectedValueHasSuffix applies the HasSuffix predicate on the "expected_value" field.
func ExpectedValueHasSuffix(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldHasSuffix(FieldExpectedValue, v))
}

// ExpectedValueEqualFold applies the EqualFold predicate on the "expected_value" field.
func ExpectedValueEqualFold(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEqualFold(FieldExpectedValue, v))
}

// ExpectedValueContainsFold applies the ContainsFold predicate on the "expected_value" field.
func ExpectedValueContainsFold(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldContainsFold(FieldExpectedValue, v))
}

// ExtractedValueEQ applies the EQ predicate on the "extracted_value" field.
func ExtractedValueEQ(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldExtractedValue, v))
}

// ExtractedValueNEQ applies the NEQ predicate on the "extracted_value" field.
func ExtractedValueNEQ(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNEQ(FieldExtractedValue, v))
}

// ExtractedValueIn applies the In predicate on the "extracted_value" field.
func ExtractedValueIn(vs ...string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldIn(FieldExtractedValue, vs...))
}

// ExtractedValueNotIn applies the NotIn predicate on the "extracted_value" field.
func ExtractedValueNotIn(vs ...string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNotIn(FieldExtractedValue, vs...))
}

// ExtractedValueGT applies the GT predicate on the "extracted_value" field.
func ExtractedValueGT(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGT(FieldExtractedValue, v))
}

// ExtractedValueGTE applies the GTE predicate on the "extracted_value" field.
func ExtractedValueGTE(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGTE(FieldExtractedValue, v))
}

// ExtractedValueLT applies the LT predicate on the "extracted_value" field.
func ExtractedValueLT(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLT(FieldExtractedValue, v))
}

// ExtractedValueLTE applies the LTE predicate on the "extracted_value" field.
func ExtractedValueLTE(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLTE(FieldExtractedValue, v))
}

// ExtractedValueContains applies the Contains predicate on the "extracted_value" field.
func ExtractedValueContains(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldContains(FieldExtractedValue, v))
}

// ExtractedValueHasPrefix applies the HasPrefix predicate on the "extracted_value" field.
func ExtractedValueHasPrefix(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldHasPrefix(FieldExtractedValue, v))
}

// ExtractedValueHasSuffix applies the HasSuffix predicate on the "extracted_value" field.
func ExtractedValueHasSuffix(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldHasSuffix(FieldExtractedValue, v))
}

// ExtractedValueIsNil applies the IsNil predicate on the "extracted_value" field.
func ExtractedValueIsNil() predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldIsNull(FieldExtractedValue))
}

// ExtractedValueNotNil applies the NotNil predicate on the "extracted_value" field.
func ExtractedValueNotNil() predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNotNull(FieldExtractedValue))
}

// ExtractedValueEqualFold applies the EqualFold predicate on the "extracted_value" field.
func ExtractedValueEqualFold(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEqualFold(FieldExtractedValue, v))
}

// ExtractedValueContainsFold applies the ContainsFold predicate on the "extracted_value" field.
func ExtractedValueContainsFold(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldContainsFold(FieldExtractedValue, v))
}

// ComparisonStatusEQ applies the EQ predicate on the "comparison_status" field.
func ComparisonStatusEQ(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldComparisonStatus, v))
}

// ComparisonStatusNEQ applies the NEQ predicate on the "comparison_status" field.
func ComparisonStatusNEQ(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNEQ(FieldComparisonStatus, v))
}

// ComparisonStatusIn applies the In predicate on the "comparison_status" field.
func ComparisonStatusIn(vs ...string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldIn(FieldComparisonStatus, vs...))
}

// ComparisonStatusNotIn applies the NotIn predicate on the "comparison_status" field.
func ComparisonStatusNotIn(vs ...string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNotIn(FieldComparisonStatus, vs...))
}

// ComparisonStatusGT applies the GT predicate on the "comparison_status" field.
func ComparisonStatusGT(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGT(FieldComparisonStatus, v))
}

// ComparisonStatusGTE applies the GTE predicate on the "comparison_status" field.
func ComparisonStatusGTE(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGTE(FieldComparisonStatus, v))
}

// ComparisonStatusLT applies the LT predicate on the "comparison_status" field.
func ComparisonStatusLT(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLT(FieldComparisonStatus, v))
}

// ComparisonStatusLTE applies the LTE predicate on the "comparison_status" field.
func ComparisonStatusLTE(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLTE(FieldComparisonStatus, v))
}

// ComparisonStatusContains applies the Contains predicate on the "comparison_status" field.
func ComparisonStatusContains(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldContains(FieldComparisonStatus, v))
}

// ComparisonStatusHasPrefix applies the HasPrefix predicate on the "comparison_status" field.
func ComparisonStatusHasPrefix(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldHasPrefix(FieldComparisonStatus, v))
}

// ComparisonStatusHasSuffix applies the HasSuffix predicate on the "comparison_status" field.
func ComparisonStatusHasSuffix(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldHasSuffix(FieldComparisonStatus, v))
}

// ComparisonStatusEqualFold applies the EqualFold predicate on the "comparison_status" field.
func ComparisonStatusEqualFold(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEqualFold(FieldComparisonStatus, v))
}

// ComparisonStatusContainsFold applies the ContainsFold predicate on the "comparison_status" field.
func ComparisonStatusContainsFold(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldContainsFold(FieldComparisonStatus, v))
}

// ComparisonConfidenceEQ applies the EQ predicate on the "comparison_confidence" field.
func ComparisonConfidenceEQ(v int) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldComparisonConfidence, v))
}

// ComparisonConfidenceNEQ applies the NEQ predicate on the "comparison_confidence" field.
func ComparisonConfidenceNEQ(v int) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNEQ(FieldComparisonConfidence, v))
}

// ComparisonConfidenceIn applies the In predicate on the "comparison_confidence" field.
func ComparisonConfidenceIn(vs ...int) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldIn(FieldComparisonConfidence, vs...))
}

// ComparisonConfidenceNotIn applies the NotIn predicate on the "comparison_confidence" field.
func ComparisonConfidenceNotIn(vs ...int) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNotIn(FieldComparisonConfidence, vs...))
}

// ComparisonConfidenceGT applies the GT predicate on the "comparison_confidence" field.
func ComparisonConfidenceGT(v int) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGT(FieldComparisonConfidence, v))
}

// ComparisonConfidenceGTE applies the GTE predicate on the "comparison_confidence" field.
func ComparisonConfidenceGTE(v int) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGTE(FieldComparisonConfidence, v))
}

// ComparisonConfidenceLT applies the LT predicate on the "comparison_confidence" field.
func ComparisonConfidenceLT(v int) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLT(FieldComparisonConfidence, v))
}

// ComparisonConfidenceLTE applies the LTE predicate on the "comparison_confidence" field.
func ComparisonConfidenceLTE(v int) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLTE(FieldComparisonConfidence, v))
}

// ComparisonReasoningEQ applies the EQ predicate on the "comparison_reasoning" field.
func ComparisonReasoningEQ(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldComparisonReasoning, v))
}

// ComparisonReasoningNEQ applies the NEQ predicate on the "comparison_reasoning" field.
func ComparisonReasoningNEQ(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNEQ(FieldComparisonReasoning, v))
}

// ComparisonReasoningIn applies the In predicate on the "comparison_reasoning" field.
func ComparisonReasoningIn(vs ...string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldIn(FieldComparisonReasoning, vs...))
}

// ComparisonReasoningNotIn applies the NotIn predicate on the "comparison_reasoning" field.
func ComparisonReasoningNotIn(vs ...string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNotIn(FieldComparisonReasoning, vs...))
}

// ComparisonReasoningGT applies the GT predicate on the "comparison_reasoning" field.
func ComparisonReasoningGT(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGT(FieldComparisonReasoning, v))
}

// ComparisonReasoningGTE applies the GTE predicate on the "comparison_reasoning" field.
func ComparisonReasoningGTE(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGTE(FieldComparisonReasoning, v))
}

// ComparisonReasoningLT applies the LT predicate on the "comparison_reasoning" field.
func ComparisonReasoningLT(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLT(FieldComparisonReasoning, v))
}

// ComparisonReasoningLTE applies the LTE predicate on the "comparison_reasoning" field.
func ComparisonReasoningLTE(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLTE(FieldComparisonReasoning, v))
}

// ComparisonReasoningContains applies the Contains predicate on the "comparison_reasoning" field.
func ComparisonReasoningContains(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldContains(FieldComparisonReasoning, v))
}

// ComparisonReasoningHasPrefix applies the HasPrefix predicate on the "comparison_reasoning" field.
func ComparisonReasoningHasPrefix(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldHasPrefix(FieldComparisonReasoning, v))
}

// ComparisonReasoningHasSuffix applies the HasSuffix predicate on the "comparison_reasoning" field.
func ComparisonReasoningHasSuffix(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldHasSuffix(FieldComparisonReasoning, v))
}

// ComparisonReasoningEqualFold applies the EqualFold predicate on the "comparison_reasoning" field.
func ComparisonReasoningEqualFold(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEqualFold(FieldComparisonReasoning, v))
}

// ComparisonReasoningContainsFold applies the ContainsFold predicate on the "comparison_reasoning" field.
func ComparisonReasoningContainsFold(v string) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldContainsFold(FieldComparisonReasoning, v))
}

// BoxXEQ applies the EQ predicate on the "box_x" field.
func BoxXEQ(v float64) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldBoxX, v))
}

// BoxXNEQ applies the NEQ predicate on the "box_x" field.
func BoxXNEQ(v float64) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNEQ(FieldBoxX, v))
}

// BoxXIn applies the In predicate on the "box_x" field.
func BoxXIn(vs ...float64) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldIn(FieldBoxX, vs...))
}

// BoxXNotIn applies the NotIn predicate on the "box_x" field.
func BoxXNotIn(vs ...float64) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNotIn(FieldBoxX, vs...))
}

// BoxXGT applies the GT predicate on the "box_x" field.
func BoxXGT(v float64) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGT(FieldBoxX, v))
}

// BoxXGTE applies the GTE predicate on the "box_x" field.
func BoxXGTE(v float64) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGTE(FieldBoxX, v))
}

// BoxXLT applies the LT predicate on the "box_x" field.
func BoxXLT(v float64) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLT(FieldBoxX, v))
}

// BoxXLTE applies the LTE predicate on the "box_x" field.
func BoxXLTE(v float64) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLTE(FieldBoxX, v))
}

// BoxXIsNil applies the IsNil predicate on the "box_x" field.
func BoxXIsNil() predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldIsNull(FieldBoxX))
}

// BoxXNotNil applies the NotNil predicate on the "box_x" field.
func BoxXNotNil() predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNotNull(FieldBoxX))
}

// BoxYEQ applies the EQ predicate on the "box_y" field.
func BoxYEQ(v float64) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldBoxY, v))
}

// BoxYNEQ applies the NEQ predicate on the "box_y" field.
func BoxYNEQ(v float64) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNEQ(FieldBoxY, v))
}

// BoxYIn applies the In predicate on the "box_y" field.
func BoxYIn(vs ...float64) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldIn(FieldBoxY, vs...))
}

// BoxYNotIn applies the NotIn predicate on the "box_y" field.
func BoxYNotIn(vs ...float64) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNotIn(FieldBoxY, vs...))
}

// BoxYGT applies the GT predicate on the "box_y" field.
func BoxYGT(v float64) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGT(FieldBoxY, v))
}

// BoxYGTE applies the GTE predicate on the "box_y" field.
func BoxYGTE(v float64) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGTE(FieldBoxY, v))
}

// BoxYLT applies the LT predicate on the "box_y" field.
func BoxYLT(v float64) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLT(FieldBoxY, v))
}

// BoxYLTE applies the LTE predicate on the "box_y" field.
func BoxYLTE(v float64) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLTE(FieldBoxY, v))
}

// BoxYIsNil applies the IsNil predicate on the "box_y" field.
func BoxYIsNil() predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldIsNull(FieldBoxY))
}

// BoxYNotNil applies the NotNil predicate on the "box_y" field.
func BoxYNotNil() predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNotNull(FieldBoxY))
}

// BoxWidthEQ applies the EQ predicate on the "box_width" field.
func BoxWidthEQ(v float64) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldBoxWidth, v))
}

// BoxWidthNEQ applies the NEQ predicate on the "box_width" field.
func BoxWidthNEQ(v float64) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNEQ(FieldBoxWidth, v))
}

// BoxWidthIn applies the In predicate on the "box_width" field.
func BoxWidthIn(vs ...float64) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldIn(FieldBoxWidth, vs...))
}

// BoxWidthNotIn applies the NotIn predicate on the "box_width" field.
func BoxWidthNotIn(vs ...float64) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNotIn(FieldBoxWidth, vs...))
}

// BoxWidthGT applies the GT predicate on the "box_width" field.
func BoxWidthGT(v float64) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGT(FieldBoxWidth, v))
}

// BoxWidthGTE applies the GTE predicate on the "box_width" field.
func BoxWidthGTE(v float64) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGTE(FieldBoxWidth, v))
}

// BoxWidthLT applies the LT predicate on the "box_width" field.
func BoxWidthLT(v float64) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLT(FieldBoxWidth, v))
}

// BoxWidthLTE applies the LTE predicate on the "box_width" field.
func BoxWidthLTE(v float64) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLTE(FieldBoxWidth, v))
}

// BoxWidthIsNil applies the IsNil predicate on the "box_width" field.
func BoxWidthIsNil() predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldIsNull(FieldBoxWidth))
}

// BoxWidthNotNil applies the NotNil predicate on the "box_width" field.
func BoxWidthNotNil() predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNotNull(FieldBoxWidth))
}

// BoxHeightEQ applies the EQ predicate on the "box_height" field.
func BoxHeightEQ(v float64) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldBoxHeight, v))
}

// BoxHeightNEQ applies the NEQ predicate on the "box_height" field.
func BoxHeightNEQ(v float64) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNEQ(FieldBoxHeight, v))
}

// BoxHeightIn applies the In predicate on the "box_height" field.
func BoxHeightIn(vs ...float64) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldIn(FieldBoxHeight, vs...))
}

// BoxHeightNotIn applies the NotIn predicate on the "box_height" field.
func BoxHeightNotIn(vs ...float64) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNotIn(FieldBoxHeight, vs...))
}

// BoxHeightGT applies the GT predicate on the "box_height" field.
func BoxHeightGT(v float64) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGT(FieldBoxHeight, v))
}

// BoxHeightGTE applies the GTE predicate on the "box_height" field.
func BoxHeightGTE(v float64) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGTE(FieldBoxHeight, v))
}

// BoxHeightLT applies the LT predicate on the "box_height" field.
func BoxHeightLT(v float64) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLT(FieldBoxHeight, v))
}

// BoxHeightLTE applies the LTE predicate on the "box_height" field.
func BoxHeightLTE(v float64) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLTE(FieldBoxHeight, v))
}

// BoxHeightIsNil applies the IsNil predicate on the "box_height" field.
func BoxHeightIsNil() predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldIsNull(FieldBoxHeight))
}

// BoxHeightNotNil applies the NotNil predicate on the "box_height" field.
func BoxHeightNotNil() predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNotNull(FieldBoxHeight))
}

// BoxAngleEQ applies the EQ predicate on the "box_angle" field.
func BoxAngleEQ(v int) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldBoxAngle, v))
}

// BoxAngleNEQ applies the NEQ predicate on the "box_angle" field.
func BoxAngleNEQ(v int) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNEQ(FieldBoxAngle, v))
}

// BoxAngleIn applies the In predicate on the "box_angle" field.
func BoxAngleIn(vs ...int) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldIn(FieldBoxAngle, vs...))
}

// BoxAngleNotIn applies the NotIn predicate on the "box_angle" field.
func BoxAngleNotIn(vs ...int) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNotIn(FieldBoxAngle, vs...))
}

// BoxAngleGT applies the GT predicate on the "box_angle" field.
func BoxAngleGT(v int) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGT(FieldBoxAngle, v))
}

// BoxAngleGTE applies the GTE predicate on the "box_angle" field.
func BoxAngleGTE(v int) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGTE(FieldBoxAngle, v))
}

// BoxAngleLT applies the LT predicate on the "box_angle" field.
func BoxAngleLT(v int) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLT(FieldBoxAngle, v))
}

// BoxAngleLTE applies the LTE predicate on the "box_angle" field.
func BoxAngleLTE(v int) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLTE(FieldBoxAngle, v))
}

// BoxAngleIsNil applies the IsNil predicate on the "box_angle" field.
func BoxAngleIsNil() predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldIsNull(FieldBoxAngle))
}

// BoxAngleNotNil applies the NotNil predicate on the "box_angle" field.
func BoxAngleNotNil() predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNotNull(FieldBoxAngle))
}

// ImageIndexEQ applies the EQ predicate on the "image_index" field.
func ImageIndexEQ(v int) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldImageIndex, v))
}

// ImageIndexNEQ applies the NEQ predicate on the "image_index" field.
func ImageIndexNEQ(v int) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNEQ(FieldImageIndex, v))
}

// ImageIndexIn applies the In predicate on the "image_index" field.
func ImageIndexIn(vs ...int) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldIn(FieldImageIndex, vs...))
}

// ImageIndexNotIn applies the NotIn predicate on the "image_index" field.
func ImageIndexNotIn(vs ...int) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNotIn(FieldImageIndex, vs...))
}

// ImageIndexGT applies the GT predicate on the "image_index" field.
func ImageIndexGT(v int) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGT(FieldImageIndex, v))
}

// ImageIndexGTE applies the GTE predicate on the "image_index" field.
func ImageIndexGTE(v int) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGTE(FieldImageIndex, v))
}

// ImageIndexLT applies the LT predicate on the "image_index" field.
func ImageIndexLT(v int) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLT(FieldImageIndex, v))
}

// ImageIndexLTE applies the LTE predicate on the "image_index" field.
func ImageIndexLTE(v int) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLTE(FieldImageIndex, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ValidationItem {
	return predicate.ValidationItem(sql.FieldLTE(FieldCreatedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.ValidationItem {
	return predicate.ValidationItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.VerificationJob) predicate.ValidationItem {
	return predicate.ValidationItem(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ValidationItem) predicate.ValidationItem {
	return predicate.ValidationItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ValidationItem) predicate.ValidationItem {
	return predicate.ValidationItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ValidationItem) predicate.ValidationItem {
	return predicate.ValidationItem(sql.NotPredicates(p))
}
