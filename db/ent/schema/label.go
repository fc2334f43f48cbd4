package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/labelcheck/labelcheck/constants"
	"github.com/labelcheck/labelcheck/db/ent/schema/utils"
)

type Label struct{ ent.Schema }

func (Label) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "labels"},
	}
}

func (Label) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("status").
			Default(string(constants.LabelStatusPending)).
			Validate(utils.EnumValidator(
				string(constants.LabelStatusPending),
				string(constants.LabelStatusProcessing),
				string(constants.LabelStatusApproved),
				string(constants.LabelStatusPendingReview),
				string(constants.LabelStatusConditionallyApproved),
				string(constants.LabelStatusNeedsCorrection),
				string(constants.LabelStatusRejected),
			)),
		// Only conditionally_approved and needs_correction carry a deadline.
		field.Time("correction_deadline").Optional().Nillable(),
		field.String("beverage_type").
			Default(string(constants.Undetermined)),
		field.Int("container_ml").Default(0),
		// Regulator-submitted application values, keyed by field name.
		field.JSON("application_values", map[string]string{}).
			Optional(),
		field.String("status_reasoning").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Label) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("images", LabelImage.Type),
		edge.To("jobs", VerificationJob.Type),
	}
}

func (Label) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("correction_deadline"),
	}
}

type LabelImage struct{ ent.Schema }

func (LabelImage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "label_images"},
	}
}

func (LabelImage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("label_id", uuid.UUID{}),
		field.Int("position"), // image order within the label submission
		field.String("source_path").NotEmpty(),
		field.String("role").Optional().Nillable(), // front/back/other once classified
		field.Bytes("content_hash").Optional(),
		field.Time("created_at").Default(time.Now),
	}
}

func (LabelImage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("label", Label.Type).
			Ref("images").
			Field("label_id").
			Required().
			Unique(),
	}
}

func (LabelImage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("label_id", "position").Unique(),
	}
}

type VerificationJob struct{ ent.Schema }

func (VerificationJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "verification_job"},
	}
}

func (VerificationJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("label_id", uuid.UUID{}),
		field.String("status").
			Default(string(constants.JobStatusQueued)),
		field.String("pipeline_variant").Optional().Nillable(),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
		field.String("ocr_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("classified_json", json.RawMessage{}).Optional(),
		field.String("model_name").Optional().Nillable(),
		field.Int("prompt_tokens").Default(0),
		field.Int("completion_tokens").Default(0),
	}
}

func (VerificationJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("label", Label.Type).
			Ref("jobs").
			Field("label_id").
			Required().
			Unique(),
		edge.To("items", ValidationItem.Type),
	}
}

func (VerificationJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("label_id"),
		index.Fields("status"),
	}
}
