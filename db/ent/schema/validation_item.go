package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ValidationItem is one field's evaluation within one verification job:
// expected vs extracted value, the comparison verdict, and the geometric
// citation on the source image. Rows are append-only; a re-evaluation writes
// new rows under a new job rather than mutating these.
type ValidationItem struct{ ent.Schema }

func (ValidationItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "validation_items"},
	}
}

func (ValidationItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("job_id", uuid.UUID{}),
		field.Int("position"), // stable ordering within the job
		field.String("field_name").NotEmpty().Immutable(),
		field.String("expected_value").Immutable(),
		field.String("extracted_value").Optional().Nillable().Immutable(),
		field.String("comparison_status").NotEmpty().Immutable(),
		field.Int("comparison_confidence").Immutable(),
		field.String("comparison_reasoning").Immutable(),
		// Normalized bounding box; null when no geometry was resolved.
		field.Float("box_x").Optional().Nillable().Immutable(),
		field.Float("box_y").Optional().Nillable().Immutable(),
		field.Float("box_width").Optional().Nillable().Immutable(),
		field.Float("box_height").Optional().Nillable().Immutable(),
		field.Int("box_angle").Optional().Nillable().Immutable(),
		field.Int("image_index").Default(0).Immutable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (ValidationItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", VerificationJob.Type).
			Ref("items").
			Field("job_id").
			Required().
			Unique(),
	}
}

func (ValidationItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "position").Unique(),
	}
}
