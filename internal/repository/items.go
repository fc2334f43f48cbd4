package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/labelcheck/labelcheck/gen/ent"
	"github.com/labelcheck/labelcheck/gen/ent/validationitem"
	"github.com/labelcheck/labelcheck/internal/compare"
	"github.com/labelcheck/labelcheck/internal/geometry"
)

// ItemInput is one field's evaluation handed to the sink, in display order.
type ItemInput struct {
	FieldName  string
	Expected   string
	Extracted  *string
	Comparison compare.Comparison
	Box        *geometry.BoundingBox
	ImageIndex int
}

type ValidationItemRepository interface {
	CreateAll(ctx context.Context, jobID uuid.UUID, items []ItemInput) error
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]*ent.ValidationItem, error)
}

type validationItemRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewValidationItemRepository(entc *ent.Client, log *slog.Logger) ValidationItemRepository {
	return &validationItemRepo{ent: entc, log: log}
}

// CreateAll writes the ordered evaluation rows for one job in a single bulk
// insert. Rows are append-only by schema; re-evaluations create a new job.
func (r *validationItemRepo) CreateAll(ctx context.Context, jobID uuid.UUID, items []ItemInput) error {
	builders := make([]*ent.ValidationItemCreate, 0, len(items))
	for i, it := range items {
		b := r.ent.ValidationItem.
			Create().
			SetJobID(jobID).
			SetPosition(i).
			SetFieldName(it.FieldName).
			SetExpectedValue(it.Expected).
			SetComparisonStatus(string(it.Comparison.Status)).
			SetComparisonConfidence(it.Comparison.Confidence).
			SetComparisonReasoning(it.Comparison.Reasoning).
			SetImageIndex(it.ImageIndex)
		if it.Extracted != nil {
			b = b.SetExtractedValue(*it.Extracted)
		}
		if it.Box != nil {
			b = b.SetBoxX(it.Box.X).
				SetBoxY(it.Box.Y).
				SetBoxWidth(it.Box.Width).
				SetBoxHeight(it.Box.Height).
				SetBoxAngle(it.Box.Angle)
		}
		builders = append(builders, b)
	}

	if err := r.ent.ValidationItem.CreateBulk(builders...).Exec(ctx); err != nil {
		r.log.Error("validation items create failed", "job_id", jobID, "count", len(items), "err", err)
		return err
	}
	r.log.Info("validation items written", "job_id", jobID, "count", len(items))
	return nil
}

func (r *validationItemRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]*ent.ValidationItem, error) {
	return r.ent.ValidationItem.
		Query().
		Where(validationitem.JobIDEQ(jobID)).
		Order(ent.Asc(validationitem.FieldPosition)).
		All(ctx)
}
