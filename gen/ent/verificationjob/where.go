// Code generated by ent, DO NOT EDIT.

package verificationjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/labelcheck/labelcheck/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldID, id))
}

// LabelID applies equality check predicate on the "label_id" field. It's identical to LabelIDEQ.
func LabelID(v uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldLabelID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldStatus, v))
}

// PipelineVariant applies equality check predicate on the "pipeline_variant" field. It's identical to PipelineVariantEQ.
func PipelineVariant(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldPipelineVariant, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldFinishedAt, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldErrorMessage, v))
}

// OcrText applies equality check predicate on the "ocr_text" field. It's identical to OcrTextEQ.
func OcrText(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldOcrText, v))
}

// ModelName applies equality check predicate on the "model_name" field. It's identical to ModelNameEQ.
func ModelName(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldModelName, v))
}

// PromptTokens applies equality check predicate on the "prompt_tokens" field. It's identical to PromptTokensEQ.
func PromptTokens(v int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldPromptTokens, v))
}

// CompletionTokens applies equality check predicate on the "completion_tokens" field. It's identical to CompletionTokensEQ.
func CompletionTokens(v int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldCompletionTokens, v))
}

// LabelIDEQ applies the EQ predicate on the "label_id" field.
func LabelIDEQ(v uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldLabelID, v))
}

// LabelIDNEQ applies the NEQ predicate on the "label_id" field.
func LabelIDNEQ(v uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldLabelID, v))
}

// LabelIDIn applies the In predicate on the "label_id" field.
func LabelIDIn(vs ...uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldLabelID, vs...))
}

// LabelIDNotIn applies the NotIn predicate on the "label_id" field.
func LabelIDNotIn(vs ...uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldLabelID, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContainsFold(FieldStatus, v))
}

// PipelineVariantEQ applies the EQ predicate on the "pipeline_variant" field.
func PipelineVariantEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldPipelineVariant, v))
}

// PipelineVariantNEQ applies the NEQ predicate on the "pipeline_variant" field.
func PipelineVariantNEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldPipelineVariant, v))
}

// PipelineVariantIn applies the In predicate on the "pipeline_variant" field.
func PipelineVariantIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldPipelineVariant, vs...))
}

// PipelineVariantNotIn applies the NotIn predicate on the "pipeline_variant" field.
func PipelineVariantNotIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldPipelineVariant, vs...))
}

// PipelineVariantGT applies the GT predicate on the "pipeline_variant" field.
func PipelineVariantGT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldPipelineVariant, v))
}

// PipelineVariantGTE applies the GTE predicate on the "pipeline_variant" field.
func PipelineVariantGTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldPipelineVariant, v))
}

// PipelineVariantLT applies the LT predicate on the "pipeline_variant" field.
func PipelineVariantLT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldPipelineVariant, v))
}

// PipelineVariantLTE applies the LTE predicate on the "pipeline_variant" field.
func PipelineVariantLTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldPipelineVariant, v))
}

// PipelineVariantContains applies the Contains predicate on the "pipeline_variant" field.
func PipelineVariantContains(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContains(FieldPipelineVariant, v))
}

// PipelineVariantHasPrefix applies the HasPrefix predicate on the "pipeline_variant" field.
func PipelineVariantHasPrefix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasPrefix(FieldPipelineVariant, v))
}

// PipelineVariantHasSuffix applies the HasSuffix predicate on the "pipeline_variant" field.
func PipelineVariantHasSuffix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasSuffix(FieldPipelineVariant, v))
}

// PipelineVariantIsNil applies the IsNil predicate on the "pipeline_variant" field.
func PipelineVariantIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldPipelineVariant))
}

// PipelineVariantNotNil applies the NotNil predicate on the "pipeline_variant" field.
func PipelineVariantNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldPipelineVariant))
}

// PipelineVariantEqualFold applies the EqualFold predicate on the "pipeline_variant" field.
func PipelineVariantEqualFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEqualFold(FieldPipelineVariant, v))
}

// PipelineVariantContainsFold applies the ContainsFold predicate on the "pipeline_variant" field.
func PipelineVariantContainsFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContainsFold(FieldPipelineVariant, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldFinishedAt))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// OcrTextEQ applies the EQ predicate on the "ocr_text" field.
func OcrTextEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldOcrText, v))
}

// OcrTextNEQ applies the NEQ predicate on the "ocr_text" field.
func OcrTextNEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldOcrText, v))
}

// OcrTextIn applies the In predicate on the "ocr_text" field.
func OcrTextIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldOcrText, vs...))
}

// OcrTextNotIn applies the NotIn predicate on the "ocr_text" field.
func OcrTextNotIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldOcrText, vs...))
}

// OcrTextGT applies the GT predicate on the "ocr_text" field.
func OcrTextGT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldOcrText, v))
}

// OcrTextGTE applies the GTE predicate on the "ocr_text" field.
func OcrTextGTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldOcrText, v))
}

// OcrTextLT applies the LT predicate on the "ocr_text" field.
func OcrTextLT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldOcrText, v))
}

// OcrTextLTE applies the LTE predicate on the "ocr_text" field.
func OcrTextLTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldOcrText, v))
}

// OcrTextContains applies the Contains predicate on the "ocr_text" field.
func OcrTextContains(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContains(FieldOcrText, v))
}

// OcrTextHasPrefix applies the HasPrefix predicate on the "ocr_text" field.
func OcrTextHasPrefix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasPrefix(FieldOcrText, v))
}

// OcrTextHasSuffix applies the HasSuffix predicate on the "ocr_text" field.
func OcrTextHasSuffix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasSuffix(FieldOcrText, v))
}

// OcrTextIsNil applies the IsNil predicate on the "ocr_text" field.
func OcrTextIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldOcrText))
}

// OcrTextNotNil applies the NotNil predicate on the "ocr_text" field.
func OcrTextNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldOcrText))
}

// OcrTextEqualFold applies the EqualFold predicate on the "ocr_text" field.
func OcrTextEqualFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEqualFold(FieldOcrText, v))
}

// OcrTextContainsFold applies the ContainsFold predicate on the "ocr_text" field.
func OcrTextContainsFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContainsFold(FieldOcrText, v))
}

// ClassifiedJSONIsNil applies the IsNil predicate on the "classified_json" field.
func ClassifiedJSONIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldClassifiedJSON))
}

// ClassifiedJSONNotNil applies the NotNil predicate on the "classified_json" field.
func ClassifiedJSONNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldClassifiedJSON))
}

// ModelNameEQ applies the EQ predicate on the "model_name" field.
func ModelNameEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldModelName, v))
}

// ModelNameNEQ applies the NEQ predicate on the "model_name" field.
func ModelNameNEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldModelName, v))
}

// ModelNameIn applies the In predicate on the "model_name" field.
func ModelNameIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldModelName, vs...))
}

// ModelNameNotIn applies the NotIn predicate on the "model_name" field.
func ModelNameNotIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldModelName, vs...))
}

// ModelNameGT applies the GT predicate on the "model_name" field.
func ModelNameGT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldModelName, v))
}

// ModelNameGTE applies the GTE predicate on the "model_name" field.
func ModelNameGTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldModelName, v))
}

// ModelNameLT applies the LT predicate on the "model_name" field.
func ModelNameLT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldModelName, v))
}

// ModelNameLTE applies the LTE predicate on the "model_name" field.
func ModelNameLTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldModelName, v))
}

// ModelNameContains applies the Contains predicate on the "model_name" field.
func ModelNameContains(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContains(FieldModelName, v))
}

// ModelNameHasPrefix applies the HasPrefix predicate on the "model_name" field.
func ModelNameHasPrefix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasPrefix(FieldModelName, v))
}

// ModelNameHasSuffix applies the HasSuffix predicate on the "model_name" field.
func ModelNameHasSuffix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasSuffix(FieldModelName, v))
}

// ModelNameIsNil applies the IsNil predicate on the "model_name" field.
func ModelNameIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldModelName))
}

// ModelNameNotNil applies the NotNil predicate on the "model_name" field.
func ModelNameNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldModelName))
}

// ModelNameEqualFold applies the EqualFold predicate on the "model_name" field.
func ModelNameEqualFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEqualFold(FieldModelName, v))
}

// ModelNameContainsFold applies the ContainsFold predicate on the "model_name" field.
func ModelNameContainsFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContainsFold(FieldModelName, v))
}

// PromptTokensEQ applies the EQ predicate on the "prompt_tokens" field.
func PromptTokensEQ(v int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldPromptTokens, v))
}

// PromptTokensNEQ applies the NEQ predicate on the "prompt_tokens" field.
func PromptTokensNEQ(v int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldPromptTokens, v))
}

// PromptTokensIn applies the In predicate on the "prompt_tokens" field.
func PromptTokensIn(vs ...int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldPromptTokens, vs...))
}

// PromptTokensNotIn applies the NotIn predicate on the "prompt_tokens" field.
func PromptTokensNotIn(vs ...int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldPromptTokens, vs...))
}

// PromptTokensGT applies the GT predicate on the "prompt_tokens" field.
func PromptTokensGT(v int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldPromptTokens, v))
}

// PromptTokensGTE applies the GTE predicate on the "prompt_tokens" field.
func PromptTokensGTE(v int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldPromptTokens, v))
}

// PromptTokensLT applies the LT predicate on the "prompt_tokens" field.
func PromptTokensLT(v int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldPromptTokens, v))
}

// PromptTokensLTE applies the LTE predicate on the "prompt_tokens" field.
func PromptTokensLTE(v int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldPromptTokens, v))
}

// CompletionTokensEQ applies the EQ predicate on the "completion_tokens" field.
func CompletionTokensEQ(v int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldCompletionTokens, v))
}

// CompletionTokensNEQ applies the NEQ predicate on the "completion_tokens" field.
func CompletionTokensNEQ(v int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldCompletionTokens, v))
}

// CompletionTokensIn applies the In predicate on the "completion_tokens" field.
func CompletionTokensIn(vs ...int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldCompletionTokens, vs...))
}

// CompletionTokensNotIn applies the NotIn predicate on the "completion_tokens" field.
func CompletionTokensNotIn(vs ...int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldCompletionTokens, vs...))
}

// CompletionTokensGT applies the GT predicate on the "completion_tokens" field.
func CompletionTokensGT(v int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldCompletionTokens, v))
}

// CompletionTokensGTE applies the GTE predicate on the "completion_tokens" field.
func CompletionTokensGTE(v int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldCompletionTokens, v))
}

// CompletionTokensLT applies the LT predicate on the "completion_tokens" field.
func CompletionTokensLT(v int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldCompletionTokens, v))
}

// CompletionTokensLTE applies the LTE predicate on the "completion_tokens" field.
func CompletionTokensLTE(v int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldCompletionTokens, v))
}

// HasLabel applies the HasEdge predicate on the "label" edge.
func HasLabel() predicate.VerificationJob {
	return predicate.VerificationJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LabelTable, LabelColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLabelWith applies the HasEdge predicate on the "label" edge with a given conditions (other predicates).
func HasLabelWith(preds ...predicate.Label) predicate.VerificationJob {
	return predicate.VerificationJob(func(s *sql.Selector) {
		step := newLabelStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasItems applies the HasEdge predicate on the "items" edge.
func HasItems() predicate.VerificationJob {
	return predicate.VerificationJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasItemsWith applies the HasEdge predicate on the "items" edge with a given conditions (other predicates).
func HasItemsWith(preds ...predicate.ValidationItem) predicate.VerificationJob {
	return predicate.VerificationJob(func(s *sql.Selector) {
		step := newItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VerificationJob) predicate.VerificationJob {
	return predicate.VerificationJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VerificationJob) predicate.VerificationJob {
	return predicate.VerificationJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VerificationJob) predicate.VerificationJob {
	return predicate.VerificationJob(sql.NotPredicates(p))
}
