// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/labelcheck/labelcheck/db/ent/schema"
	"github.com/labelcheck/labelcheck/gen/ent/label"
	"github.com/labelcheck/labelcheck/gen/ent/labelimage"
	"github.com/labelcheck/labelcheck/gen/ent/validationitem"
	"github.com/labelcheck/labelcheck/gen/ent/verificationjob"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	labelFields := schema.Label{}.Fields()
	_ = labelFields
	// labelDescStatus is the schema descriptor for status field.
	labelDescStatus := labelFields[1].Descriptor()
	// label.DefaultStatus holds the default value on creation for the status field.
	label.DefaultStatus = labelDescStatus.Default.(string)
	// label.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	label.StatusValidator = labelDescStatus.Validators[0].(func(string) error)
	// labelDescBeverageType is the schema descriptor for beverage_type field.
	labelDescBeverageType := labelFields[3].Descriptor()
	// label.DefaultBeverageType holds the default value on creation for the beverage_type field.
	label.DefaultBeverageType = labelDescBeverageType.Default.(string)
	// labelDescContainerMl is the schema descriptor for container_ml field.
	labelDescContainerMl := labelFields[4].Descriptor()
	// label.DefaultContainerMl holds the default value on creation for the container_ml field.
	label.DefaultContainerMl = labelDescContainerMl.Default.(int)
	// labelDescCreatedAt is the schema descriptor for created_at field.
	labelDescCreatedAt := labelFields[7].Descriptor()
	// label.DefaultCreatedAt holds the default value on creation for the created_at field.
	label.DefaultCreatedAt = labelDescCreatedAt.Default.(func() time.Time)
	// labelDescUpdatedAt is the schema descriptor for updated_at field.
	labelDescUpdatedAt := labelFields[8].Descriptor()
	// label.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	label.DefaultUpdatedAt = labelDescUpdatedAt.Default.(func() time.Time)
	// label.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	label.UpdateDefaultUpdatedAt = labelDescUpdatedAt.UpdateDefault.(func() time.Time)
	// labelDescID is the schema descriptor for id field.
	labelDescID := labelFields[0].Descriptor()
	// label.DefaultID holds the default value on creation for the id field.
	label.DefaultID = labelDescID.Default.(func() uuid.UUID)
	labelimageFields := schema.LabelImage{}.Fields()
	_ = labelimageFields
	// labelimageDescSourcePath is the schema descriptor for source_path field.
	labelimageDescSourcePath := labelimageFields[3].Descriptor()
	// labelimage.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	labelimage.SourcePathValidator = labelimageDescSourcePath.Validators[0].(func(string) error)
	// labelimageDescCreatedAt is the schema descriptor for created_at field.
	labelimageDescCreatedAt := labelimageFields[6].Descriptor()
	// labelimage.DefaultCreatedAt holds the default value on creation for the created_at field.
	labelimage.DefaultCreatedAt = labelimageDescCreatedAt.Default.(func() time.Time)
	// labelimageDescID is the schema descriptor for id field.
	labelimageDescID := labelimageFields[0].Descriptor()
	// labelimage.DefaultID holds the default value on creation for the id field.
	labelimage.DefaultID = labelimageDescID.Default.(func() uuid.UUID)
	validationitemFields := schema.ValidationItem{}.Fields()
	_ = validationitemFields
	// validationitemDescFieldName is the schema descriptor for field_name field.
	validationitemDescFieldName := validationitemFields[3].Descriptor()
	// validationitem.FieldNameValidator is a validator for the "field_name" field. It is called by the builders before save.
	validationitem.FieldNameValidator = validationitemDescFieldName.Validators[0].(func(string) error)
	// validationitemDescComparisonStatus is the schema descriptor for comparison_status field.
	validationitemDescComparisonStatus := validationitemFields[6].Descriptor()
	// validationitem.ComparisonStatusValidator is a validator for the "comparison_status" field. It is called by the builders before save.
	validationitem.ComparisonStatusValidator = validationitemDescComparisonStatus.Validators[0].(func(string) error)
	// validationitemDescImageIndex is the schema descriptor for image_index field.
	validationitemDescImageIndex := validationitemFields[14].Descriptor()
	// validationitem.DefaultImageIndex holds the default value on creation for the image_index field.
	validationitem.DefaultImageIndex = validationitemDescImageIndex.Default.(int)
	// validationitemDescCreatedAt is the schema descriptor for created_at field.
	validationitemDescCreatedAt := validationitemFields[15].Descriptor()
	// validationitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	validationitem.DefaultCreatedAt = validationitemDescCreatedAt.Default.(func() time.Time)
	// validationitemDescID is the schema descriptor for id field.
	validationitemDescID := validationitemFields[0].Descriptor()
	// validationitem.DefaultID holds the default value on creation for the id field.
	validationitem.DefaultID = validationitemDescID.Default.(func() uuid.UUID)
	verificationjobFields := schema.VerificationJob{}.Fields()
	_ = verificationjobFields
	// verificationjobDescStatus is the schema descriptor for status field.
	verificationjobDescStatus := verificationjobFields[2].Descriptor()
	// verificationjob.DefaultStatus holds the default value on creation for the status field.
	verificationjob.DefaultStatus = verificationjobDescStatus.Default.(string)
	// verificationjobDescStartedAt is the schema descriptor for started_at field.
	verificationjobDescStartedAt := verificationjobFields[4].Descriptor()
	// verificationjob.DefaultStartedAt holds the default value on creation for the started_at field.
	verificationjob.DefaultStartedAt = verificationjobDescStartedAt.Default.(func() time.Time)
	// verificationjobDescPromptTokens is the schema descriptor for prompt_tokens field.
	verificationjobDescPromptTokens := verificationjobFields[10].Descriptor()
	// verificationjob.DefaultPromptTokens holds the default value on creation for the prompt_tokens field.
	verificationjob.DefaultPromptTokens = verificationjobDescPromptTokens.Default.(int)
	// verificationjobDescCompletionTokens is the schema descriptor for completion_tokens field.
	verificationjobDescCompletionTokens := verificationjobFields[11].Descriptor()
	// verificationjob.DefaultCompletionTokens holds the default value on creation for the completion_tokens field.
	verificationjob.DefaultCompletionTokens = verificationjobDescCompletionTokens.Default.(int)
	// verificationjobDescID is the schema descriptor for id field.
	verificationjobDescID := verificationjobFields[0].Descriptor()
	// verificationjob.DefaultID holds the default value on creation for the id field.
	verificationjob.DefaultID = verificationjobDescID.Default.(func() uuid.UUID)
}
