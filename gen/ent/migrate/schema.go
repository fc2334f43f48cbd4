// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LabelsColumns holds the columns for the "labels" table.
	LabelsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "correction_deadline", Type: field.TypeTime, Nullable: true},
		{Name: "beverage_type", Type: field.TypeString, Default: "undetermined"},
		{Name: "container_ml", Type: field.TypeInt, Default: 0},
		{Name: "application_values", Type: field.TypeJSON, Nullable: true},
		{Name: "status_reasoning", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LabelsTable holds the schema information for the "labels" table.
	LabelsTable = &schema.Table{
		Name:       "labels",
		Columns:    LabelsColumns,
		PrimaryKey: []*schema.Column{LabelsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "label_status",
				Unique:  false,
				Columns: []*schema.Column{LabelsColumns[1]},
			},
			{
				Name:    "label_correction_deadline",
				Unique:  false,
				Columns: []*schema.Column{LabelsColumns[2]},
			},
		},
	}
	// LabelImagesColumns holds the columns for the "label_images" table.
	LabelImagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "position", Type: field.TypeInt},
		{Name: "source_path", Type: field.TypeString},
		{Name: "role", Type: field.TypeString, Nullable: true},
		{Name: "content_hash", Type: field.TypeBytes, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "label_id", Type: field.TypeUUID},
	}
	// LabelImagesTable holds the schema information for the "label_images" table.
	LabelImagesTable = &schema.Table{
		Name:       "label_images",
		Columns:    LabelImagesColumns,
		PrimaryKey: []*schema.Column{LabelImagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "label_images_labels_images",
				Columns:    []*schema.Column{LabelImagesColumns[6]},
				RefColumns: []*schema.Column{LabelsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "labelimage_label_id_position",
				Unique:  true,
				Columns: []*schema.Column{LabelImagesColumns[6], LabelImagesColumns[1]},
			},
		},
	}
	// ValidationItemsColumns holds the columns for the "validation_items" table.
	ValidationItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "position", Type: field.TypeInt},
		{Name: "field_name", Type: field.TypeString},
		{Name: "expected_value", Type: field.TypeString},
		{Name: "extracted_value", Type: field.TypeString, Nullable: true},
		{Name: "comparison_status", Type: field.TypeString},
		{Name: "comparison_confidence", Type: field.TypeInt},
		{Name: "comparison_reasoning", Type: field.TypeString},
		{Name: "box_x", Type: field.TypeFloat64, Nullable: true},
		{Name: "box_y", Type: field.TypeFloat64, Nullable: true},
		{Name: "box_width", Type: field.TypeFloat64, Nullable: true},
		{Name: "box_height", Type: field.TypeFloat64, Nullable: true},
		{Name: "box_angle", Type: field.TypeInt, Nullable: true},
		{Name: "image_index", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeUUID},
	}
	// ValidationItemsTable holds the schema information for the "validation_items" table.
	ValidationItemsTable = &schema.Table{
		Name:       "validation_items",
		Columns:    ValidationItemsColumns,
		PrimaryKey: []*schema.Column{ValidationItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "validation_items_verification_job_items",
				Columns:    []*schema.Column{ValidationItemsColumns[15]},
				RefColumns: []*schema.Column{VerificationJobColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "validationitem_job_id_position",
				Unique:  true,
				Columns: []*schema.Column{ValidationItemsColumns[15], ValidationItemsColumns[1]},
			},
		},
	}
	// VerificationJobColumns holds the columns for the "verification_job" table.
	VerificationJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString, Default: "QUEUED"},
		{Name: "pipeline_variant", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "classified_json", Type: field.TypeJSON, Nullable: true},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "prompt_tokens", Type: field.TypeInt, Default: 0},
		{Name: "completion_tokens", Type: field.TypeInt, Default: 0},
		{Name: "label_id", Type: field.TypeUUID},
	}
	// VerificationJobTable holds the schema information for the "verification_job" table.
	VerificationJobTable = &schema.Table{
		Name:       "verification_job",
		Columns:    VerificationJobColumns,
		PrimaryKey: []*schema.Column{VerificationJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "verification_job_labels_jobs",
				Columns:    []*schema.Column{VerificationJobColumns[11]},
				RefColumns: []*schema.Column{LabelsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "verificationjob_label_id",
				Unique:  false,
				Columns: []*schema.Column{VerificationJobColumns[11]},
			},
			{
				Name:    "verificationjob_status",
				Unique:  false,
				Columns: []*schema.Column{VerificationJobColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LabelsTable,
		LabelImagesTable,
		ValidationItemsTable,
		VerificationJobTable,
	}
)

func init() {
	LabelsTable.Annotation = &entsql.Annotation{
		Table: "labels",
	}
	LabelImagesTable.ForeignKeys[0].RefTable = LabelsTable
	LabelImagesTable.Annotation = &entsql.Annotation{
		Table: "label_images",
	}
	ValidationItemsTable.ForeignKeys[0].RefTable = VerificationJobTable
	ValidationItemsTable.Annotation = &entsql.Annotation{
		Table: "validation_items",
	}
	VerificationJobTable.ForeignKeys[0].RefTable = LabelsTable
	VerificationJobTable.Annotation = &entsql.Annotation{
		Table: "verification_job",
	}
}
